package server

import (
	"fmt"

	"dropbuddy/core/section"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the address the server binds to.
	Host string `toml:"host"`
	// Port is the port where the server will listen.
	Port int `toml:"port"`
	// Timeout is the per-request timeout in seconds.
	Timeout int `toml:"timeout"`
}

// DefaultConfig returns the built-in server defaults.
func DefaultConfig() Config {
	return Config{
		Host:    "127.0.0.1",
		Port:    3000,
		Timeout: 30,
	}
}

// Name implements section.Section.
func (c *Config) Name() string {
	return "server"
}

// LoadFromValue implements section.Section.
func (c *Config) LoadFromValue(value any) error {
	table := section.Table(value)
	if table == nil {
		return nil
	}
	section.String(table, "host", &c.Host)
	section.Int(table, "port", &c.Port)
	section.Int(table, "timeout", &c.Timeout)
	return nil
}

// Validate implements section.Section.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("server host must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("server port %d is out of range", c.Port)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("server timeout must be positive, got %d", c.Timeout)
	}
	return nil
}

// Addr returns the listen address in "host:port" form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
