package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLimitsDefaults(t *testing.T) {
	lim, err := LoadLimits("RENCORE_", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, *DefaultLimits, *lim)
}

func TestLoadLimitsEnv(t *testing.T) {
	lim, err := LoadLimits("RENCORE_", map[string]string{
		"RENCORE_MAX_NUM_LEN":  "32",
		"RENCORE_MAX_TUPLE":    "4",
		"RENCORE_MAX_YEAR":     "9999",
		"OTHER_MAX_INT_DIGITS": "2",
	})
	require.NoError(t, err)
	assert.Equal(t, 32, lim.MaxNumLen)
	assert.Equal(t, 4, lim.MaxTuple)
	assert.Equal(t, 9999, lim.MaxYear)
	assert.Equal(t, DefaultLimits.MaxIntDigits, lim.MaxIntDigits)
	assert.Equal(t, DefaultLimits.MaxHexLen, lim.MaxHexLen)
}

func TestLoadLimitsInvalid(t *testing.T) {
	_, err := LoadLimits("RENCORE_", map[string]string{"RENCORE_MAX_TUPLE": "11"})
	assert.ErrorContains(t, err, "invalid limit MaxTuple=11")

	_, err = LoadLimits("RENCORE_", map[string]string{"RENCORE_MAX_INT_DIGITS": "0"})
	assert.ErrorContains(t, err, "invalid limit MaxIntDigits=0")

	_, err = LoadLimits("RENCORE_", map[string]string{"RENCORE_MAX_HEX_LEN": "x"})
	assert.Error(t, err)
}

func TestLimitsValidate(t *testing.T) {
	assert.NoError(t, DefaultLimits.Validate())

	lim := *DefaultLimits
	lim.MaxYear = 0
	assert.ErrorContains(t, lim.Validate(), "MaxYear")
}
