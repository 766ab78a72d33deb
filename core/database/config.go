package database

import (
	"fmt"

	"dropbuddy/core/section"
)

// Config holds configuration for the database connection pool.
type Config struct {
	// URL is the database DSN. Usually supplied via the DATABASE_URL
	// environment variable; the loader enforces that it is non-empty.
	URL string `toml:"url"`
	// MaxConnections is the maximum number of open connections in the pool.
	MaxConnections int `toml:"max_connections"`
	// MinConnections is the number of warm connections kept idle.
	MinConnections int `toml:"min_connections"`
	// ConnectTimeout is the connection setup timeout in seconds.
	ConnectTimeout int `toml:"connect_timeout"`
	// AcquireTimeout bounds pool checkout in seconds. Checkout waits are
	// governed by the per-request context deadline derived from this value.
	AcquireTimeout int `toml:"acquire_timeout"`
	// IdleTimeout is how long a connection may sit idle, in seconds.
	IdleTimeout int `toml:"idle_timeout"`
	// MaxLifetime is the maximum lifetime of a connection, in seconds.
	MaxLifetime int `toml:"max_lifetime"`
}

// DefaultConfig returns the built-in database defaults. The URL has no
// default; it must come from the file or the environment.
func DefaultConfig() Config {
	return Config{
		MaxConnections: 10,
		MinConnections: 5,
		ConnectTimeout: 30,
		AcquireTimeout: 8,
		IdleTimeout:    8,
		MaxLifetime:    8,
	}
}

// Name implements section.Section.
func (c *Config) Name() string {
	return "database"
}

// LoadFromValue implements section.Section.
func (c *Config) LoadFromValue(value any) error {
	table := section.Table(value)
	if table == nil {
		return nil
	}
	section.String(table, "url", &c.URL)
	section.Int(table, "max_connections", &c.MaxConnections)
	section.Int(table, "min_connections", &c.MinConnections)
	section.Int(table, "connect_timeout", &c.ConnectTimeout)
	section.Int(table, "acquire_timeout", &c.AcquireTimeout)
	section.Int(table, "idle_timeout", &c.IdleTimeout)
	section.Int(table, "max_lifetime", &c.MaxLifetime)
	return nil
}

// Validate implements section.Section. URL requiredness is the loader's
// check, not the section's, so that the missing-variable error can name
// DATABASE_URL.
func (c *Config) Validate() error {
	if c.MaxConnections <= 0 {
		return fmt.Errorf("database max_connections must be positive, got %d", c.MaxConnections)
	}
	if c.MinConnections < 0 || c.MinConnections > c.MaxConnections {
		return fmt.Errorf("database min_connections %d must be between 0 and max_connections %d",
			c.MinConnections, c.MaxConnections)
	}
	for name, v := range map[string]int{
		"connect_timeout": c.ConnectTimeout,
		"acquire_timeout": c.AcquireTimeout,
		"idle_timeout":    c.IdleTimeout,
		"max_lifetime":    c.MaxLifetime,
	} {
		if v <= 0 {
			return fmt.Errorf("database %s must be positive, got %d", name, v)
		}
	}
	return nil
}
