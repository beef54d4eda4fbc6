package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedRegionIndexThree(t *testing.T) {
	// Option 3 of the interactive list is a public contract.
	require.GreaterOrEqual(t, len(SupportedRegions), 3)
	assert.Equal(t, "us-west-2", SupportedRegions[2])
}

func TestDefaultRegionIsSupported(t *testing.T) {
	assert.Contains(t, SupportedRegions, DefaultRegion)
}
