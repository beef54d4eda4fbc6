package aws

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

func TestSharedCredentialsWriteCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aws", "credentials")

	store := SharedCredentials{Path: path}
	require.NoError(t, store.Write("AKIAEXAMPLE", "secret123"))

	f, err := ini.Load(path)
	require.NoError(t, err)
	sec := f.Section(Profile)
	assert.Equal(t, "AKIAEXAMPLE", sec.Key("aws_access_key_id").String())
	assert.Equal(t, "secret123", sec.Key("aws_secret_access_key").String())
}

func TestSharedCredentialsWritePreservesOtherProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")
	existing := "[work]\naws_access_key_id = AKIAWORK\naws_secret_access_key = worksecret\n"
	require.NoError(t, os.WriteFile(path, []byte(existing), 0600))

	store := SharedCredentials{Path: path}
	require.NoError(t, store.Write("AKIANEW", "newsecret"))

	f, err := ini.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "AKIAWORK", f.Section("work").Key("aws_access_key_id").String())
	assert.Equal(t, "AKIANEW", f.Section(Profile).Key("aws_access_key_id").String())
}

func TestSharedCredentialsWriteOverwritesProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")
	store := SharedCredentials{Path: path}

	require.NoError(t, store.Write("AKIAOLD", "oldsecret"))
	require.NoError(t, store.Write("AKIANEW", "newsecret"))

	f, err := ini.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "AKIANEW", f.Section(Profile).Key("aws_access_key_id").String())
	assert.Equal(t, "newsecret", f.Section(Profile).Key("aws_secret_access_key").String())
}

func TestSharedCredentialsPathEnvOverride(t *testing.T) {
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/tmp/custom-credentials")
	assert.Equal(t, "/tmp/custom-credentials", SharedCredentialsPath())
}
