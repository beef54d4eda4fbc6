package workflow

import (
	"errors"

	awsinternal "skylift/internal/aws"
	"skylift/internal/config"
	"skylift/internal/git"
	"skylift/internal/logging"
	"skylift/internal/terminal"
)

// Controller owns one run of the init workflow. Stages run strictly in
// sequence: credentials gate the remote lookups, the region gates the
// client, and the application result gates environment discovery and
// the source control advisory. The workspace config is the only shared
// mutable state and assumes a single writer per workspace.
type Controller struct {
	Store   *config.WorkspaceStore
	Prompt  terminal.Prompter
	Console terminal.Console
	Creds   CredentialStore
	Source  SourceControlDetector

	// NewClient builds a region-scoped Beanstalk client. The profile
	// carries the credential marker of previously collected keys.
	NewClient func(profile, region string) (awsinternal.Beanstalk, error)

	// ApplicationFlag and RegionFlag hold the -a/-r CLI values; empty
	// means unset.
	ApplicationFlag string
	RegionFlag      string
}

// Run executes the init workflow and returns the resolved session. On
// a fatal error the persisted config is left exactly as it was before
// the run: values are flushed only once remote state confirmed them.
func (c *Controller) Run() (*Session, error) {
	cfg, err := c.Store.Load()
	if err != nil {
		if !errors.Is(err, config.ErrNotFound) {
			return nil, err
		}
		// First run in this workspace, or an unreadable config.
		cfg = &config.Workspace{}
	}

	sess := &Session{}
	creds := &CredentialResolver{Prompt: c.Prompt, Store: c.Creds}

	region, regionSrc, err := (&RegionSelector{Prompt: c.Prompt, Console: c.Console}).Resolve(c.RegionFlag, cfg)
	if err != nil {
		return nil, err
	}
	sess.Region, sess.RegionSource = region, regionSrc

	apps := &ApplicationResolver{
		Prompt:  c.Prompt,
		Console: c.Console,
		Creds:   creds,
		Connect: func() (awsinternal.Beanstalk, error) {
			profile := cfg.Profile
			if creds.Collected() {
				profile = awsinternal.Profile
			}
			return c.NewClient(profile, region)
		},
	}
	res, err := apps.Resolve(c.ApplicationFlag, cfg)
	if err != nil {
		return nil, err
	}
	sess.ApplicationName, sess.NameSource = res.Name, res.Source
	sess.ApplicationExisted, sess.ApplicationCreated = res.Existed, res.Created
	sess.CredentialsValid = true

	// Flush what the run learned so later runs skip the prompts.
	cfg.ApplicationName = res.Name
	cfg.Region = region
	if creds.Collected() {
		cfg.Profile = awsinternal.Profile
	}
	if err := c.Store.Save(cfg); err != nil {
		return nil, err
	}

	if res.Existed {
		sess.Environments = (&EnvironmentDiscovery{Console: c.Console}).List(apps.Client(), res.Name)
	}

	detector := c.Source
	if detector == nil {
		detector = git.Detector{}
	}
	adviseSourceControl(detector, c.Store.Root(), c.Console)

	logging.Info("Workspace initialized", map[string]interface{}{
		"application_name": sess.ApplicationName,
		"region":           sess.Region,
		"created":          sess.ApplicationCreated,
	})
	return sess, nil
}
