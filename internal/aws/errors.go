package aws

import (
	"errors"

	"github.com/aws/aws-sdk-go/aws/awserr"
)

// IsNoCredentials reports whether err means the SDK could not find any
// usable AWS credentials. Only this class of failure is recoverable by
// collecting keys interactively; every other remote failure is a
// transport error and aborts the run.
func IsNoCredentials(err error) bool {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return false
	}

	switch aerr.Code() {
	case "NoCredentialProviders",
		"EnvAccessKeyNotFound",
		"SharedCredsLoad",
		"MissingAuthenticationToken":
		return true
	}
	return false
}
