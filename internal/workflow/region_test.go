package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	awsinternal "skylift/internal/aws"
	"skylift/internal/config"
	"skylift/internal/terminal"
)

func TestRegionFlagWinsOverPersisted(t *testing.T) {
	script := &terminal.Script{}
	selector := &RegionSelector{Prompt: script, Console: &terminal.Recorder{}}

	region, src, err := selector.Resolve("eu-west-1", &config.Workspace{Region: "us-east-1"})
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", region)
	assert.Equal(t, SourceFlag, src)
	assert.Equal(t, 0, script.Asked())
}

func TestRegionPersistedWinsOverPrompt(t *testing.T) {
	script := &terminal.Script{}
	selector := &RegionSelector{Prompt: script, Console: &terminal.Recorder{}}

	region, src, err := selector.Resolve("", &config.Workspace{Region: "us-east-1"})
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", region)
	assert.Equal(t, SourcePersisted, src)
	assert.Equal(t, 0, script.Asked())
}

func TestRegionIndexThreeIsUSWest2(t *testing.T) {
	script := &terminal.Script{Answers: []string{"y", "3"}}
	console := &terminal.Recorder{}
	selector := &RegionSelector{Prompt: script, Console: console}

	region, src, err := selector.Resolve("", &config.Workspace{})
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", region)
	assert.Equal(t, SourceInteractive, src)
	assert.Equal(t, 2, script.Asked())

	// The list printed to the user is 1-indexed and stable
	require.GreaterOrEqual(t, len(console.Told), 3)
	assert.Equal(t, "3) us-west-2", console.Told[2])
}

func TestRegionDeclineYieldsDefault(t *testing.T) {
	script := &terminal.Script{Answers: []string{"n"}}
	selector := &RegionSelector{Prompt: script, Console: &terminal.Recorder{}}

	region, src, err := selector.Resolve("", &config.Workspace{})
	require.NoError(t, err)
	assert.Equal(t, awsinternal.DefaultRegion, region)
	assert.Equal(t, SourceDefault, src)
	// Declining ends region setup with a single prompt
	assert.Equal(t, 1, script.Asked())
}

func TestRegionInvalidSelection(t *testing.T) {
	tests := []struct {
		name      string
		selection string
	}{
		{name: "not a number", selection: "us-west-2"},
		{name: "zero", selection: "0"},
		{name: "out of range", selection: "99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := &terminal.Script{Answers: []string{"y", tt.selection}}
			selector := &RegionSelector{Prompt: script, Console: &terminal.Recorder{}}

			_, _, err := selector.Resolve("", &config.Workspace{})
			assert.Error(t, err)
		})
	}
}

func TestRegionFlagNotValidatedAgainstList(t *testing.T) {
	selector := &RegionSelector{Prompt: &terminal.Script{}, Console: &terminal.Recorder{}}

	region, src, err := selector.Resolve("us-west-w", &config.Workspace{})
	require.NoError(t, err)
	assert.Equal(t, "us-west-w", region)
	assert.Equal(t, SourceFlag, src)
}
