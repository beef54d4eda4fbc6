package workflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skylift/internal/terminal"
)

func TestCredentialDoSuccessFirstTry(t *testing.T) {
	script := &terminal.Script{}
	resolver := &CredentialResolver{Prompt: script, Store: &fakeCredStore{}}

	calls := 0
	err := resolver.Do(func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, script.Asked())
	assert.False(t, resolver.Collected())
}

func TestCredentialDoOtherErrorsPropagate(t *testing.T) {
	script := &terminal.Script{}
	resolver := &CredentialResolver{Prompt: script, Store: &fakeCredStore{}}

	boom := errors.New("connection reset")
	calls := 0
	err := resolver.Do(func() error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, script.Asked())
}

func TestCredentialDoCollectsAndRetriesOnce(t *testing.T) {
	script := &terminal.Script{Answers: []string{"12345", "ABCDEF"}}
	store := &fakeCredStore{}
	resolver := &CredentialResolver{Prompt: script, Store: store}

	calls := 0
	err := resolver.Do(func() error {
		calls++
		if calls == 1 {
			return noCredentialsErr()
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, script.Asked())
	assert.Equal(t, [][2]string{{"12345", "ABCDEF"}}, store.writes)
	assert.True(t, resolver.Collected())
}

func TestCredentialDoSecondFailureIsFinal(t *testing.T) {
	script := &terminal.Script{Answers: []string{"12345", "ABCDEF"}}
	resolver := &CredentialResolver{Prompt: script, Store: &fakeCredStore{}}

	calls := 0
	err := resolver.Do(func() error {
		calls++
		return noCredentialsErr()
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
	// No re-prompting after the retry fails
	assert.Equal(t, 2, script.Asked())
}

func TestCredentialDoNeverPromptsTwicePerRun(t *testing.T) {
	script := &terminal.Script{Answers: []string{"12345", "ABCDEF"}}
	resolver := &CredentialResolver{Prompt: script, Store: &fakeCredStore{}}

	require.Error(t, resolver.Do(func() error { return noCredentialsErr() }))

	// A later operation in the same run fails without prompting again
	calls := 0
	err := resolver.Do(func() error {
		calls++
		return noCredentialsErr()
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, script.Asked())
}

func TestCredentialCollectStoreFailure(t *testing.T) {
	script := &terminal.Script{Answers: []string{"12345", "ABCDEF"}}
	store := &fakeCredStore{err: errors.New("read-only filesystem")}
	resolver := &CredentialResolver{Prompt: script, Store: store}

	calls := 0
	err := resolver.Do(func() error {
		calls++
		return noCredentialsErr()
	})
	require.Error(t, err)
	// The retry never happens when persisting the keys failed
	assert.Equal(t, 1, calls)
}
