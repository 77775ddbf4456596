// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"cloudeng.io/errors"
	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvLogLevel  = "WHATDAY_LOG_LEVEL"
	EnvLogFormat = "WHATDAY_LOG_FORMAT"
	EnvLogFile   = "WHATDAY_LOG_FILE"
	EnvNoColor   = "NO_COLOR"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // text, json
	LogFile   string // empty means stderr in plain mode, discarded in the TUI

	// Display
	NoColor bool
}

// Load reads configuration from environment variables, loading a .env file
// from the working directory first if one exists.
func Load() (*Config, error) {
	// Missing .env is the common case.
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:  strings.ToLower(getEnv(EnvLogLevel, "warn")),
		LogFormat: strings.ToLower(getEnv(EnvLogFormat, "text")),
		LogFile:   getEnv(EnvLogFile, ""),
	}
	// NO_COLOR disables color whenever it is present and non-empty.
	cfg.NoColor = os.Getenv(EnvNoColor) != ""

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	errs := errors.M{}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs.Append(fmt.Errorf("%s must be one of: debug, info, warn, error; got %q", EnvLogLevel, c.LogLevel))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs.Append(fmt.Errorf("%s must be one of: text, json; got %q", EnvLogFormat, c.LogFormat))
	}
	return errs.Err()
}

func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}
