package config

import "strings"

// EnvPrefix is the prefix for general configuration overrides. Variables are
// named APP_<SECTION>_<FIELD>, e.g. APP_SERVER_PORT or
// APP_CORS_ALLOW_ORIGINS.
const EnvPrefix = "APP_"

// Secret environment variables read directly, bypassing the prefix
// convention. These take the highest precedence.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvJWTSecret   = "JWT_SECRET"
	EnvRedisURL    = "REDIS_URL"
)

// envOverlay groups APP_-prefixed environment variables into per-section
// tables suitable for Section.LoadFromValue. Section names contain no
// underscore, so the first underscore after the prefix splits section from
// field. Values stay strings; the section coercion helpers handle typing.
func envOverlay(environ []string) map[string]map[string]any {
	overlay := make(map[string]map[string]any)
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		sectionName, field, ok := strings.Cut(strings.TrimPrefix(key, EnvPrefix), "_")
		if !ok || sectionName == "" || field == "" {
			continue
		}
		table := overlay[strings.ToLower(sectionName)]
		if table == nil {
			table = make(map[string]any)
			overlay[strings.ToLower(sectionName)] = table
		}
		table[strings.ToLower(field)] = value
	}
	return overlay
}
