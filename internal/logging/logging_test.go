package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"DEBUG":    zerolog.DebugLevel,
		" info ":   zerolog.InfoLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
		"off":      zerolog.Disabled,
	}
	for raw, expected := range testCases {
		t.Run(raw, func(t *testing.T) {
			lvl, ok := ParseLevel(raw)
			assert.True(t, ok)
			assert.Equal(t, expected, lvl)
		})
	}
	_, ok := ParseLevel("loud")
	assert.False(t, ok)
	_, ok = ParseLevel("")
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogNoColor, "")
	var buf bytes.Buffer
	logger := New(&buf, ProfileRuntime, "warn", true)
	logger.Info().Msg("hidden")
	logger.Warn().Str("type", "LineSymbol").Msg("shown")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "type=LineSymbol")
	assert.Contains(t, out, "app=slyr")
	assert.NotContains(t, out, "\x1b[")
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogNoColor, "true")
	var buf bytes.Buffer
	logger := New(&buf, ProfileRuntime, "debug", false)
	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
	logger.Error().Msg("failed")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestForTests(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogNoColor, "")
	var buf bytes.Buffer
	logger := ForTests(&buf)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	logger.Debug().Msg("decoded")
	assert.Contains(t, buf.String(), "decoded")
}

func TestDefaultConfig(t *testing.T) {
	assert.Equal(t, Config{Level: zerolog.InfoLevel, Timestamp: true}, DefaultConfig(ProfileRuntime))
	assert.Equal(t, Config{Level: zerolog.DebugLevel, NoColor: true}, DefaultConfig(ProfileTest))
}

func TestParseBool(t *testing.T) {
	v, ok := parseBool("1")
	assert.True(t, ok)
	assert.True(t, v)
	_, ok = parseBool("maybe")
	assert.False(t, ok)
	_, ok = parseBool(" ")
	assert.False(t, ok)
}
