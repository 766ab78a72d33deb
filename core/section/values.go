package section

import (
	"strconv"
	"strings"
)

// Table coerces a generic decoded value into a string-keyed table.
// It returns nil for anything that is not a table, which callers treat as
// "nothing to merge".
func Table(value any) map[string]any {
	switch v := value.(type) {
	case map[string]any:
		return v
	case map[any]any:
		// Some decoders produce interface-keyed maps.
		table := make(map[string]any, len(v))
		for key, val := range v {
			if s, ok := key.(string); ok {
				table[s] = val
			}
		}
		return table
	default:
		return nil
	}
}

// String merges table[key] into dst if the value is a string.
func String(table map[string]any, key string, dst *string) {
	if v, ok := table[key].(string); ok {
		*dst = v
	}
}

// Int merges table[key] into dst if the value is numeric or a numeric string.
// Environment overlays always deliver strings, so "3000" counts as numeric.
func Int(table map[string]any, key string, dst *int) {
	raw, ok := table[key]
	if !ok {
		return
	}
	switch v := raw.(type) {
	case int:
		*dst = v
	case int8:
		*dst = int(v)
	case int16:
		*dst = int(v)
	case int32:
		*dst = int(v)
	case int64:
		*dst = int(v)
	case uint:
		*dst = int(v)
	case uint8:
		*dst = int(v)
	case uint16:
		*dst = int(v)
	case uint32:
		*dst = int(v)
	case uint64:
		*dst = int(v)
	case float32:
		*dst = int(v)
	case float64:
		*dst = int(v)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = i
		}
	}
}

// Bool merges table[key] into dst if the value is a bool or a "true"/"false"
// style string.
func Bool(table map[string]any, key string, dst *bool) {
	raw, ok := table[key]
	if !ok {
		return
	}
	switch v := raw.(type) {
	case bool:
		*dst = v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			*dst = b
		}
	}
}

// StringSlice merges table[key] into dst. Lists arrive as []any or []string
// from file decoding, or as a single comma-separated string from the
// environment overlay.
func StringSlice(table map[string]any, key string, dst *[]string) {
	raw, ok := table[key]
	if !ok {
		return
	}
	switch v := raw.(type) {
	case []string:
		*dst = append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		*dst = out
	case string:
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			*dst = out
		}
	}
}
