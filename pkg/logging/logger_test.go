package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{" warn ", LevelWarn},
		{"warning", LevelWarn},
		{"Error", LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestParseLevel_Unknown(t *testing.T) {
	_, err := ParseLevel("verbose")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestFormatFields(t *testing.T) {
	assert.Empty(t, formatFields(nil, nil))

	out := formatFields(
		map[string]any{"b": 2, "a": 1},
		[]Field{StringField("op", "<")},
	)
	assert.Equal(t, "{a=1, b=2, op=<}", out)
}

func TestFieldHelpers(t *testing.T) {
	assert.Equal(t, Field{Key: "k", Value: "v"}, LogField("k", "v"))
	assert.Equal(t, Field{Key: "name", Value: "nth"}, StringField("name", "nth"))
	assert.Equal(t, Field{Key: "index", Value: 2}, IntField("index", 2))
	assert.Equal(t, Field{Key: "passed", Value: true}, BoolField("passed", true))
}

func TestErrorField_WithError(t *testing.T) {
	err := assert.AnError
	f := ErrorField(err)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, err.Error(), f.Value)
}

func TestErrorField_Nil(t *testing.T) {
	f := ErrorField(nil)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "<nil>", f.Value)
}
