package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("DAIRY")
	require.NoError(t, err)
	assert.Equal(t, CategoryDairy, c)

	// Empty input defaults instead of failing.
	c, err = ParseCategory("")
	require.NoError(t, err)
	assert.Equal(t, CategoryOther, c)

	_, err = ParseCategory("dairy")
	assert.Error(t, err)

	_, err = ParseCategory("WEAPONS")
	assert.Error(t, err)
}
