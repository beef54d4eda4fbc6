package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecuteVersion(t *testing.T) {
	// Save original args and restore them after test
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"skylift", "version"}
	assert.NoError(t, Execute())
}

func TestExecuteUnknownCommand(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"skylift", "no-such-command"}
	assert.Error(t, Execute())
}

func TestExecuteVersionWithLogFlags(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"skylift", "--log-level", "DEBUG", "--log-format", "json", "version"}
	assert.NoError(t, Execute())
}
