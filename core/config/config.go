package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dropbuddy/core/apperror"
	"dropbuddy/core/cors"
	"dropbuddy/core/database"
	"dropbuddy/core/logger"
	"dropbuddy/core/section"
	"dropbuddy/core/server"
	"dropbuddy/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ConfigFile is the base configuration file name looked up in the load
// directory. A missing file is tolerated; a file that fails to parse is not.
const ConfigFile = "config.toml"

// Config is the resolved application configuration.
// It is divided into sections for better modularity; every section carries a
// complete, defaulted value even when absent from all inputs. After Load
// returns, the value is never mutated and may be shared freely.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `toml:"server"`
	// Database holds the connection URL and pool settings.
	Database database.Config `toml:"database"`
	// Log holds configuration for the logger.
	Log logger.Config `toml:"logging"`
	// Secrets holds sensitive values (JWT secret, cache URL).
	Secrets SecretsConfig `toml:"secrets"`
	// Cors holds the cross-origin policy.
	Cors cors.Config `toml:"cors"`
	// Storage holds configuration for the object storage backend.
	Storage storage.Config `toml:"storage"`
}

// Default returns a Config populated entirely from built-in defaults.
func Default() *Config {
	return &Config{
		Server:   server.DefaultConfig(),
		Database: database.DefaultConfig(),
		Log:      logger.DefaultConfig(),
		Secrets:  DefaultSecretsConfig(),
		Cors:     cors.DefaultConfig(),
		Storage:  storage.DefaultConfig(),
	}
}

// sections returns the sections in merge order. The loader never hard-codes
// per-section logic beyond this list; adding a section means adding it here.
func (c *Config) sections() []section.Section {
	return []section.Section{
		&c.Server,
		&c.Database,
		&c.Log,
		&c.Secrets,
		&c.Cors,
		&c.Storage,
	}
}

// Load resolves the configuration for the process.
//
// Resolution order, later overriding earlier:
//  1. Built-in defaults.
//  2. config.toml in dir (missing file tolerated, parse error fatal).
//  3. APP_<SECTION>_<FIELD> environment variables.
//  4. The direct secret variables DATABASE_URL, JWT_SECRET and REDIS_URL.
//
// Validation runs per section only after all merge passes, followed by the
// required-secret checks. Any error is terminal: no partial configuration is
// ever returned.
func Load(dir string) (*Config, error) {
	// .env never overrides variables already present in the environment.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	cfg := Default()
	sections := cfg.sections()

	fileSettings, err := readConfigFile(filepath.Join(dir, ConfigFile))
	if err != nil {
		return nil, err
	}
	for _, s := range sections {
		if raw, ok := fileSettings[s.Name()]; ok {
			if err := s.LoadFromValue(raw); err != nil {
				return nil, apperror.InvalidConfig(s.Name(), err)
			}
		}
	}

	overlay := envOverlay(os.Environ())
	for _, s := range sections {
		if table, ok := overlay[s.Name()]; ok {
			if err := s.LoadFromValue(table); err != nil {
				return nil, apperror.InvalidConfig(s.Name(), err)
			}
		}
	}

	if url, ok := os.LookupEnv(EnvDatabaseURL); ok {
		cfg.Database.URL = url
	}
	if secret, ok := os.LookupEnv(EnvJWTSecret); ok {
		cfg.Secrets.JWTSecret = secret
	}
	if url, ok := os.LookupEnv(EnvRedisURL); ok {
		cfg.Secrets.RedisURL = url
	}

	for _, s := range sections {
		if err := s.Validate(); err != nil {
			return nil, apperror.InvalidConfig(s.Name(), err)
		}
	}
	if cfg.Database.URL == "" {
		return nil, apperror.MissingVar(EnvDatabaseURL)
	}
	if cfg.Secrets.JWTSecret == "" {
		return nil, apperror.MissingVar(EnvJWTSecret)
	}

	return cfg, nil
}

// readConfigFile parses the base file with viper and returns its settings as
// generic per-section tables. A missing file yields an empty table set.
func readConfigFile(path string) (map[string]any, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	return v.AllSettings(), nil
}

// Redacted returns a copy with secret values masked, for diagnostics output.
func (c *Config) Redacted() Config {
	out := *c
	if out.Database.URL != "" {
		out.Database.URL = "[redacted]"
	}
	if out.Secrets.JWTSecret != "" {
		out.Secrets.JWTSecret = "[redacted]"
	}
	if out.Secrets.RedisURL != "" {
		out.Secrets.RedisURL = "[redacted]"
	}
	if out.Storage.SecretKey != "" {
		out.Storage.SecretKey = "[redacted]"
	}
	return out
}
