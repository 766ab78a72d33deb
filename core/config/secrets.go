package config

import "dropbuddy/core/section"

// SecretsConfig holds sensitive values. Both fields are normally supplied
// through the direct secret environment variables (JWT_SECRET, REDIS_URL)
// rather than the config file.
type SecretsConfig struct {
	// JWTSecret is the token signing secret. The loader enforces that it is
	// non-empty.
	JWTSecret string `toml:"jwt_secret"`
	// RedisURL is the optional cache connection URL.
	RedisURL string `toml:"redis_url"`
}

// DefaultSecretsConfig returns the built-in secrets defaults. Both values
// are empty; jwt_secret must come from the file or the environment.
func DefaultSecretsConfig() SecretsConfig {
	return SecretsConfig{}
}

// Name implements section.Section.
func (c *SecretsConfig) Name() string {
	return "secrets"
}

// LoadFromValue implements section.Section.
func (c *SecretsConfig) LoadFromValue(value any) error {
	table := section.Table(value)
	if table == nil {
		return nil
	}
	section.String(table, "jwt_secret", &c.JWTSecret)
	section.String(table, "redis_url", &c.RedisURL)
	return nil
}

// Validate implements section.Section. Requiredness of the JWT secret is the
// loader's check so the missing-variable error can name JWT_SECRET.
func (c *SecretsConfig) Validate() error {
	return nil
}
