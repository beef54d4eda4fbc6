package workflow

import (
	"fmt"

	awsinternal "skylift/internal/aws"
	"skylift/internal/config"
	"skylift/internal/logging"
	"skylift/internal/resources"
	"skylift/internal/terminal"
)

const appNamePrompt = "Enter an application name"

// ApplicationResolution is the outcome of resolving the target
// application against remote state. Exactly one of Existed and Created
// is true on success.
type ApplicationResolution struct {
	Name    string
	Source  PromptSource
	Existed bool
	Created bool
}

// ApplicationResolver determines the target application name, checks
// whether it exists remotely, and creates it when absent.
type ApplicationResolver struct {
	Prompt  terminal.Prompter
	Console terminal.Console
	Creds   *CredentialResolver

	// Connect builds a fresh region-scoped client. It runs once per
	// describe attempt so credentials collected between attempts take
	// effect.
	Connect func() (awsinternal.Beanstalk, error)

	client awsinternal.Beanstalk
}

// Resolve picks the application name (flag > persisted > prompt),
// issues the describe probe under the credential protocol, and creates
// the application when the describe finds nothing. The name reaches
// the workspace config only after creation or existence is confirmed.
func (r *ApplicationResolver) Resolve(flagName string, cfg *config.Workspace) (ApplicationResolution, error) {
	res := ApplicationResolution{}

	switch {
	case flagName != "":
		res.Name, res.Source = flagName, SourceFlag
	case cfg.ApplicationName != "":
		res.Name, res.Source = cfg.ApplicationName, SourcePersisted
	default:
		name, err := r.Prompt.Ask(appNamePrompt)
		if err != nil {
			return res, err
		}
		if name == "" {
			return res, fmt.Errorf("application name must not be empty")
		}
		res.Name, res.Source = name, SourceInteractive
	}

	// The describe call doubles as the credential probe: this is the
	// only place where a missing-credentials failure is recoverable.
	var apps []awsinternal.Application
	err := r.Creds.Do(func() error {
		client, err := r.Connect()
		if err != nil {
			return err
		}
		r.client = client
		apps, err = client.DescribeApplications([]string{res.Name})
		return err
	})
	if err != nil {
		return res, fmt.Errorf("failed to look up application %s: %w", res.Name, err)
	}

	if len(apps) == 0 {
		if err := r.client.CreateApplication(res.Name, resources.AppDescription); err != nil {
			return res, fmt.Errorf("failed to create application %s: %w", res.Name, err)
		}
		res.Created = true
		r.Console.Tell(fmt.Sprintf(resources.AppCreatedFmt, res.Name))
	} else {
		res.Existed = true
		r.Console.Tell(fmt.Sprintf(resources.AppExistsFmt, res.Name))
	}

	logging.Debug("Resolved application", map[string]interface{}{
		"application_name": res.Name,
		"source":           res.Source.String(),
		"existed":          res.Existed,
		"created":          res.Created,
	})
	return res, nil
}

// Client returns the connected client from the last successful
// describe, for follow-up calls within the same run.
func (r *ApplicationResolver) Client() awsinternal.Beanstalk {
	return r.client
}
