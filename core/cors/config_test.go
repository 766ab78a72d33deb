package cors_test

import (
	"testing"

	"dropbuddy/core/cors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := cors.DefaultConfig()

	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Equal(t, []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"}, cfg.AllowMethods)
	assert.False(t, cfg.AllowCredentials)
	assert.Equal(t, 3600, cfg.MaxAge)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_CredentialsWithWildcardMethod(t *testing.T) {
	cfg := cors.DefaultConfig()
	cfg.AllowCredentials = true
	cfg.AllowMethods = []string{"*"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t,
		"Invalid CORS configuration: Cannot combine `Access-Control-Allow-Credentials: true` with `Access-Control-Allow-Methods: *`",
		err.Error(),
	)

	// The same method list without credentials is accepted.
	cfg.AllowCredentials = false
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyLists(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*cors.Config)
	}{
		{"EmptyOrigins", func(c *cors.Config) { c.AllowOrigins = nil }},
		{"EmptyMethods", func(c *cors.Config) { c.AllowMethods = []string{} }},
		{"EmptyHeaders", func(c *cors.Config) { c.AllowHeaders = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := cors.DefaultConfig()
			// Credentials and other fields must not matter.
			cfg.AllowCredentials = true
			cfg.AllowOrigins = []string{"https://app.example.com"}
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromValue(t *testing.T) {
	cfg := cors.DefaultConfig()
	err := cfg.LoadFromValue(map[string]any{
		"allow_origins":     []any{"https://app.example.com"},
		"allow_credentials": true,
		"max_age":           int64(60),
		"allow_methods":     42, // mismatched type keeps the default
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowOrigins)
	assert.True(t, cfg.AllowCredentials)
	assert.Equal(t, 60, cfg.MaxAge)
	assert.Equal(t, []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD"}, cfg.AllowMethods)

	// Non-table values are ignored entirely.
	require.NoError(t, cfg.LoadFromValue("nonsense"))
	assert.True(t, cfg.AllowCredentials)
}

func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := cors.DefaultConfig()
		handler, err := cors.New(&cfg)
		require.NoError(t, err)
		assert.NotNil(t, handler)
	})

	t.Run("CredentialedWildcardMethodRejected", func(t *testing.T) {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = []string{"https://app.example.com"}
		cfg.AllowCredentials = true
		cfg.AllowMethods = []string{"*"}

		handler, err := cors.New(&cfg)
		require.Error(t, err)
		assert.Nil(t, handler)
	})

	t.Run("CredentialedWildcardOriginRejected", func(t *testing.T) {
		cfg := cors.DefaultConfig()
		cfg.AllowCredentials = true

		handler, err := cors.New(&cfg)
		require.Error(t, err)
		assert.Nil(t, handler)
	})
}
