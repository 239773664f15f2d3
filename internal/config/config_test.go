package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetAll clears every CUBETIMER_ variable for the duration of the test.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CUBETIMER_SCRAMBLE_LENGTH", "CUBETIMER_INSPECTION", "CUBETIMER_STRICT_AXIS",
		"CUBETIMER_SESSION", "CUBETIMER_DB", "CUBETIMER_LOG_LEVEL", "CUBETIMER_LOG_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParse_Defaults(t *testing.T) {
	unsetAll(t)

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, DefaultScrambleLength, cfg.Timer.ScrambleLength)
	assert.False(t, cfg.Timer.Inspection)
	assert.False(t, cfg.Timer.StrictAxis)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("CUBETIMER_SCRAMBLE_LENGTH", "25")
	t.Setenv("CUBETIMER_INSPECTION", "true")
	t.Setenv("CUBETIMER_STRICT_AXIS", "true")
	t.Setenv("CUBETIMER_SESSION", "oh")
	t.Setenv("CUBETIMER_DB", "/tmp/cubetimer.db")
	t.Setenv("CUBETIMER_LOG_LEVEL", "debug")
	t.Setenv("CUBETIMER_LOG_FILE", "/tmp/cubetimer.log")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Timer.ScrambleLength)
	assert.True(t, cfg.Timer.Inspection)
	assert.True(t, cfg.Timer.StrictAxis)
	assert.Equal(t, "oh", cfg.Timer.Session)
	assert.Equal(t, "/tmp/cubetimer.db", cfg.Storage.DBPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/cubetimer.log", cfg.Log.File)
}

func TestParse_Invalid(t *testing.T) {
	unsetAll(t)
	t.Setenv("CUBETIMER_SCRAMBLE_LENGTH", "-3")
	_, err := Parse()
	assert.Error(t, err)

	t.Setenv("CUBETIMER_SCRAMBLE_LENGTH", "twenty")
	_, err = Parse()
	assert.Error(t, err)

	t.Setenv("CUBETIMER_SCRAMBLE_LENGTH", "20")
	t.Setenv("CUBETIMER_LOG_LEVEL", "loud")
	_, err = Parse()
	assert.Error(t, err)
}
