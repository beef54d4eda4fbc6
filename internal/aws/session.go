package aws

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
)

// NewSession creates a new AWS session with the specified profile and region
func NewSession(profile string, region string) (*session.Session, error) {
	cfg := aws.NewConfig()
	if region != "" {
		cfg = cfg.WithRegion(region)
	}

	// Create session options with profile
	opts := session.Options{
		Config:            *cfg,
		Profile:           profile,
		SharedConfigState: session.SharedConfigEnable,
	}

	return session.NewSessionWithOptions(opts)
}
