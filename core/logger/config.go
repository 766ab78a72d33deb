package logger

import (
	"fmt"

	"dropbuddy/core/section"
)

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	// zap has no trace level, so trace is treated as debug.
	Level string `toml:"level"`
	// Format is the output format (pretty, json, compact).
	Format string `toml:"format"`
}

// DefaultConfig returns the built-in logging defaults.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "pretty",
	}
}

// Name implements section.Section.
func (c *Config) Name() string {
	return "logging"
}

// LoadFromValue implements section.Section.
func (c *Config) LoadFromValue(value any) error {
	table := section.Table(value)
	if table == nil {
		return nil
	}
	section.String(table, "level", &c.Level)
	section.String(table, "format", &c.Format)
	return nil
}

// Validate implements section.Section.
func (c *Config) Validate() error {
	switch c.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging level %q is not one of trace, debug, info, warn, error", c.Level)
	}
	switch c.Format {
	case "pretty", "json", "compact":
	default:
		return fmt.Errorf("logging format %q is not one of pretty, json, compact", c.Format)
	}
	return nil
}

// Debug reports whether the configured level enables debug output.
func (c *Config) Debug() bool {
	return c.Level == "trace" || c.Level == "debug"
}
