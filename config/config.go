// Package config loads agenda settings from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/hupe1980/agenda/logging"
)

// Config holds the ambient settings of a directory instance.
type Config struct {
	LogLevel         string `env:"AGENDA_LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"AGENDA_LOG_FORMAT" envDefault:"json"`
	LogSource        bool   `env:"AGENDA_LOG_SOURCE" envDefault:"false"`
	StrictValidation bool   `env:"AGENDA_STRICT_VALIDATION" envDefault:"false"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks level and format values.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("invalid log format %q: want json or text", c.LogFormat)
	}
}

// ParseLevel maps a case-insensitive level name to a logging.LogLevel.
func ParseLevel(s string) (logging.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return logging.LogLevelDebug, nil
	case "info", "":
		return logging.LogLevelInfo, nil
	case "warn", "warning":
		return logging.LogLevelWarn, nil
	case "error":
		return logging.LogLevelError, nil
	default:
		return logging.LogLevelInfo, fmt.Errorf("invalid log level %q", s)
	}
}

// LoggerConfig derives the logging configuration. Records go to stderr and
// carry component=directory.
func (c *Config) LoggerConfig() *logging.LoggerConfig {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = logging.LogLevelInfo
	}
	return &logging.LoggerConfig{
		Level:       level,
		Format:      c.LogFormat,
		Output:      os.Stderr,
		AddSource:   c.LogSource,
		Component:   "directory",
		CustomAttrs: map[string]any{},
	}
}
