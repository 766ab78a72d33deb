package section_test

import (
	"testing"

	"dropbuddy/core/section"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	assert.Equal(t, map[string]any{"a": 1}, section.Table(map[string]any{"a": 1}))
	assert.Equal(t, map[string]any{"a": 1}, section.Table(map[any]any{"a": 1}))
	assert.Nil(t, section.Table("not a table"))
	assert.Nil(t, section.Table(nil))
}

func TestString(t *testing.T) {
	dst := "default"

	section.String(map[string]any{"key": "value"}, "key", &dst)
	assert.Equal(t, "value", dst)

	// Missing key keeps the previous value.
	section.String(map[string]any{}, "key", &dst)
	assert.Equal(t, "value", dst)

	// Type mismatch keeps the previous value.
	section.String(map[string]any{"key": 42}, "key", &dst)
	assert.Equal(t, "value", dst)
}

func TestInt(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"Int", 7, 7},
		{"Int64", int64(7), 7},
		{"Float64", 7.0, 7},
		{"NumericString", "7", 7},
		{"PaddedString", " 7 ", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := -1
			section.Int(map[string]any{"key": tt.value}, "key", &dst)
			assert.Equal(t, tt.want, dst)
		})
	}

	t.Run("NonNumericKeepsPrevious", func(t *testing.T) {
		dst := 42
		section.Int(map[string]any{"key": "nope"}, "key", &dst)
		assert.Equal(t, 42, dst)
	})
}

func TestBool(t *testing.T) {
	dst := false
	section.Bool(map[string]any{"key": true}, "key", &dst)
	assert.True(t, dst)

	section.Bool(map[string]any{"key": "false"}, "key", &dst)
	assert.False(t, dst)

	dst = true
	section.Bool(map[string]any{"key": "not a bool"}, "key", &dst)
	assert.True(t, dst)
}

func TestStringSlice(t *testing.T) {
	t.Run("FromAnySlice", func(t *testing.T) {
		dst := []string{"default"}
		section.StringSlice(map[string]any{"key": []any{"a", "b"}}, "key", &dst)
		assert.Equal(t, []string{"a", "b"}, dst)
	})

	t.Run("FromStringSlice", func(t *testing.T) {
		dst := []string{"default"}
		section.StringSlice(map[string]any{"key": []string{"a"}}, "key", &dst)
		assert.Equal(t, []string{"a"}, dst)
	})

	t.Run("FromCommaSeparated", func(t *testing.T) {
		dst := []string{"default"}
		section.StringSlice(map[string]any{"key": "a, b ,c"}, "key", &dst)
		assert.Equal(t, []string{"a", "b", "c"}, dst)
	})

	t.Run("EmptyStringKeepsPrevious", func(t *testing.T) {
		dst := []string{"default"}
		section.StringSlice(map[string]any{"key": ""}, "key", &dst)
		assert.Equal(t, []string{"default"}, dst)
	})

	t.Run("MissingKeepsPrevious", func(t *testing.T) {
		dst := []string{"default"}
		section.StringSlice(map[string]any{}, "key", &dst)
		assert.Equal(t, []string{"default"}, dst)
	})
}
