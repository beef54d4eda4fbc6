// Package resources holds the user-facing message text shared across
// commands. These strings are part of the CLI's observable contract:
// downstream tooling matches on them, so changes here are breaking.
package resources

const (
	// AppDescription is the description attached to applications
	// created by `skylift init`.
	AppDescription = `Application created from the skylift CLI using "skylift init"`

	// AppCreatedFmt announces a successful application creation.
	AppCreatedFmt = "Application %s has been created"

	// AppExistsFmt announces that the application was already present
	// remotely and no create call was made.
	AppExistsFmt = "Application %s already exists"

	// GitNotFound is the advisory emitted when no git tooling is
	// available in the workspace.
	GitNotFound = "Git doesn't appear to be installed. Have you installed it recently?"
)
