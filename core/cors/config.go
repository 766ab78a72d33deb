package cors

import (
	"fmt"

	"dropbuddy/core/section"
)

// Config holds the cross-origin resource sharing policy.
type Config struct {
	// AllowOrigins is the origin allow-list. "*" allows any origin.
	AllowOrigins []string `toml:"allow_origins"`
	// AllowMethods is the HTTP method allow-list.
	AllowMethods []string `toml:"allow_methods"`
	// AllowHeaders is the request header allow-list.
	AllowHeaders []string `toml:"allow_headers"`
	// AllowCredentials controls whether cookies and Authorization headers
	// may be sent cross-origin.
	AllowCredentials bool `toml:"allow_credentials"`
	// ExposeHeaders lists response headers exposed to the client.
	ExposeHeaders []string `toml:"expose_headers"`
	// MaxAge is the preflight cache duration in seconds.
	MaxAge int `toml:"max_age"`
}

// DefaultConfig returns the built-in CORS defaults: permissive origins, a
// standard method and header set, credentials disabled.
func DefaultConfig() Config {
	return Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: false,
		ExposeHeaders:    []string{"Content-Type", "X-Total-Count"},
		MaxAge:           3600,
	}
}

// Name implements section.Section.
func (c *Config) Name() string {
	return "cors"
}

// LoadFromValue implements section.Section.
func (c *Config) LoadFromValue(value any) error {
	table := section.Table(value)
	if table == nil {
		return nil
	}
	section.StringSlice(table, "allow_origins", &c.AllowOrigins)
	section.StringSlice(table, "allow_methods", &c.AllowMethods)
	section.StringSlice(table, "allow_headers", &c.AllowHeaders)
	section.Bool(table, "allow_credentials", &c.AllowCredentials)
	section.StringSlice(table, "expose_headers", &c.ExposeHeaders)
	section.Int(table, "max_age", &c.MaxAge)
	return nil
}

// Validate implements section.Section.
//
// Browsers refuse credentialed responses that advertise wildcard methods, so
// allow_credentials combined with a "*" method entry is a configuration
// error.
func (c *Config) Validate() error {
	if len(c.AllowOrigins) == 0 {
		return fmt.Errorf("CORS allow_origins must not be empty")
	}
	if len(c.AllowMethods) == 0 {
		return fmt.Errorf("CORS allow_methods must not be empty")
	}
	if len(c.AllowHeaders) == 0 {
		return fmt.Errorf("CORS allow_headers must not be empty")
	}
	if c.AllowCredentials && contains(c.AllowMethods, "*") {
		return fmt.Errorf("Invalid CORS configuration: Cannot combine `Access-Control-Allow-Credentials: true` with `Access-Control-Allow-Methods: *`")
	}
	return nil
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
