package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSingleInputSource(t *testing.T) {
	assert.NoError(t, ValidateSingleInputSource("none", "many", false, true, false))
	assert.EqualError(t, ValidateSingleInputSource("none", "many", false, false), "none")
	assert.EqualError(t, ValidateSingleInputSource("none", "many", true, true), "many")
	assert.EqualError(t, ValidateSingleInputSource("none", "many"), "none")
}
