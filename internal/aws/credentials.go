package aws

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws/defaults"
	"gopkg.in/ini.v1"
)

// Profile is the shared-credentials profile skylift writes keys to when
// they are collected interactively.
const Profile = "skylift"

// SharedCredentialsPath returns the location of the AWS shared
// credentials file, honoring the standard environment override.
func SharedCredentialsPath() string {
	if path := os.Getenv("AWS_SHARED_CREDENTIALS_FILE"); path != "" {
		return path
	}
	return defaults.SharedCredentialsFilename()
}

// SharedCredentials persists access keys into the AWS shared
// credentials file so later sessions (and other AWS tooling) pick
// them up.
type SharedCredentials struct {
	// Path overrides the credentials file location, mainly for tests.
	Path string
}

// Write stores the key pair under the skylift profile. The file is
// created if needed; any other profiles already present are kept.
func (s SharedCredentials) Write(accessKeyID, secretAccessKey string) error {
	path := s.Path
	if path == "" {
		path = SharedCredentialsPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	f, err := ini.LooseLoad(path)
	if err != nil {
		return fmt.Errorf("failed to load credentials file: %w", err)
	}

	sec := f.Section(Profile)
	sec.Key("aws_access_key_id").SetValue(accessKeyID)
	sec.Key("aws_secret_access_key").SetValue(secretAccessKey)

	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("failed to save credentials file: %w", err)
	}
	return os.Chmod(path, 0600)
}
