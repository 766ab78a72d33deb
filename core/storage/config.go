package storage

import (
	"fmt"

	"dropbuddy/core/section"
)

// Config holds configuration for the object storage backend.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `toml:"endpoint"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `toml:"access_key"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `toml:"secret_key"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `toml:"use_ssl"`
	// Bucket is the name of the bucket uploads are stored in.
	Bucket string `toml:"bucket"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `toml:"region"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `toml:"timeout_seconds"`
	// MaxUploadSizeMB caps the size of a single uploaded file.
	MaxUploadSizeMB int `toml:"max_upload_size_mb"`
}

// DefaultConfig returns the built-in storage defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:        "localhost:9000",
		AccessKey:       "minioadmin",
		SecretKey:       "minioadmin",
		UseSSL:          false,
		Bucket:          "uploads",
		Region:          "",
		TimeoutSeconds:  30,
		MaxUploadSizeMB: 10,
	}
}

// Name implements section.Section.
func (c *Config) Name() string {
	return "storage"
}

// LoadFromValue implements section.Section.
func (c *Config) LoadFromValue(value any) error {
	table := section.Table(value)
	if table == nil {
		return nil
	}
	section.String(table, "endpoint", &c.Endpoint)
	section.String(table, "access_key", &c.AccessKey)
	section.String(table, "secret_key", &c.SecretKey)
	section.Bool(table, "use_ssl", &c.UseSSL)
	section.String(table, "bucket", &c.Bucket)
	section.String(table, "region", &c.Region)
	section.Int(table, "timeout_seconds", &c.TimeoutSeconds)
	section.Int(table, "max_upload_size_mb", &c.MaxUploadSizeMB)
	return nil
}

// Validate implements section.Section.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("storage endpoint must not be empty")
	}
	if c.Bucket == "" {
		return fmt.Errorf("storage bucket must not be empty")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("storage timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	if c.MaxUploadSizeMB <= 0 {
		return fmt.Errorf("storage max_upload_size_mb must be positive, got %d", c.MaxUploadSizeMB)
	}
	return nil
}

// MaxUploadBytes returns the upload size cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadSizeMB) * 1024 * 1024
}
