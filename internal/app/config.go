package app

import (
	"errors"
	"fmt"
	"slices"
)

// Supported logging options.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json"}
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DataDir     string // directory holding the city trip files
	CatalogPath string // optional HCL catalog replacing the built-in city table

	LogFormat string
	LogLevel  string
	NoColor   bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DataDir == "" {
		return nil, errors.New("DataDir is a required configuration field and cannot be empty")
	}
	if !slices.Contains(LogLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log-level %q: must be one of %v", cfg.LogLevel, LogLevels)
	}
	if !slices.Contains(LogFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log-format %q: must be one of %v", cfg.LogFormat, LogFormats)
	}
	return &cfg, nil
}
