package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agenda/logging"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"AGENDA_LOG_LEVEL", "AGENDA_LOG_FORMAT", "AGENDA_LOG_SOURCE", "AGENDA_STRICT_VALIDATION"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.LogSource)
	assert.False(t, cfg.StrictValidation)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("AGENDA_LOG_LEVEL", "debug")
	t.Setenv("AGENDA_LOG_FORMAT", "text")
	t.Setenv("AGENDA_LOG_SOURCE", "true")
	t.Setenv("AGENDA_STRICT_VALIDATION", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.StrictValidation)

	lc := cfg.LoggerConfig()
	assert.Equal(t, logging.LogLevelDebug, lc.Level)
	assert.Equal(t, "text", lc.Format)
	assert.True(t, lc.AddSource)
	assert.Equal(t, "directory", lc.Component)
	assert.Equal(t, os.Stderr, lc.Output)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("level", func(t *testing.T) {
		t.Setenv("AGENDA_LOG_LEVEL", "verbose")
		_, err := Load()
		require.Error(t, err)
	})
	t.Run("format", func(t *testing.T) {
		t.Setenv("AGENDA_LOG_FORMAT", "xml")
		_, err := Load()
		require.Error(t, err)
	})
	t.Run("bool", func(t *testing.T) {
		t.Setenv("AGENDA_STRICT_VALIDATION", "maybe")
		_, err := Load()
		require.Error(t, err)
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logging.LogLevel
	}{
		{"debug", logging.LogLevelDebug},
		{"INFO", logging.LogLevelInfo},
		{"", logging.LogLevelInfo},
		{" warn ", logging.LogLevelWarn},
		{"warning", logging.LogLevelWarn},
		{"Error", logging.LogLevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("trace")
	assert.Error(t, err)
}
