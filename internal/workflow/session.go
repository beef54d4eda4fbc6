// Package workflow implements the init orchestration: deciding which
// configuration values are already known, prompting for the rest, and
// reconciling local intent with remote state.
package workflow

import (
	awsinternal "skylift/internal/aws"
)

// PromptSource records the provenance of a resolved value. A flag beats
// persisted config, which beats an interactive answer, which beats the
// built-in default. Values with Flag or Persisted provenance never
// trigger a prompt.
type PromptSource int

const (
	SourceDefault PromptSource = iota
	SourceInteractive
	SourcePersisted
	SourceFlag
)

func (s PromptSource) String() string {
	switch s {
	case SourceFlag:
		return "flag"
	case SourcePersisted:
		return "persisted config"
	case SourceInteractive:
		return "interactive"
	default:
		return "default"
	}
}

// Session aggregates the values resolved during a single init run. It
// is owned by one Controller run, flushed into the workspace config on
// success, and then discarded.
type Session struct {
	ApplicationName string
	NameSource      PromptSource

	Region       string
	RegionSource PromptSource

	CredentialsValid   bool
	ApplicationExisted bool
	ApplicationCreated bool

	Environments []awsinternal.Environment
}
