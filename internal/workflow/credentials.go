package workflow

import (
	"fmt"

	awsinternal "skylift/internal/aws"
	"skylift/internal/logging"
	"skylift/internal/terminal"
)

const (
	accessKeyPrompt = "Enter your AWS Access Key ID"
	secretKeyPrompt = "Enter your AWS Secret Access Key"
)

// CredentialStore persists interactively collected keys outside the
// workspace config, normally in the AWS shared credentials file.
type CredentialStore interface {
	Write(accessKeyID, secretAccessKey string) error
}

// CredentialResolver implements the single-retry credential protocol:
// an operation failing for lack of credentials triggers one round of
// interactive key collection, then exactly one more attempt.
type CredentialResolver struct {
	Prompt terminal.Prompter
	Store  CredentialStore

	collected bool
}

// Do runs op once. If it fails because no credentials were available
// and none were collected yet this run, the keys are prompted for,
// persisted, and op runs once more; whatever the second attempt yields
// is returned as-is. Every other error class propagates untouched.
func (r *CredentialResolver) Do(op func() error) error {
	err := op()
	if err == nil || !awsinternal.IsNoCredentials(err) {
		return err
	}
	if r.collected {
		// One round of prompting per run, no matter the outcome.
		return err
	}

	if cerr := r.collect(); cerr != nil {
		return cerr
	}
	return op()
}

// Collected reports whether keys were gathered during this run.
func (r *CredentialResolver) Collected() bool {
	return r.collected
}

func (r *CredentialResolver) collect() error {
	accessKey, err := r.Prompt.Ask(accessKeyPrompt)
	if err != nil {
		return err
	}
	secretKey, err := r.Prompt.Ask(secretKeyPrompt)
	if err != nil {
		return err
	}

	// Keys are accepted unconditionally; the retried call is what
	// validates them.
	r.collected = true

	if err := r.Store.Write(accessKey, secretKey); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}
	logging.Debug("Stored collected credentials", map[string]interface{}{
		"profile": awsinternal.Profile,
	})
	return nil
}
