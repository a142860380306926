package render

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	var nilPtr *int
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, "<nil>"},
		{"nil pointer", nilPtr, "<nil>"},
		{"string", "a\"b", `"a\"b"`},
		{"int", 42, "42"},
		{"error", errors.New("boom"), "boom"},
		{"stringer", 2 * time.Second, "2s"},
		{"sorted map", map[string]int{"b": 2, "a": 1}, "map[a:1 b:2]"},
		{"slice", []int{1, 2}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Value(tt.input))
		})
	}
}

func TestDump_SortsKeys(t *testing.T) {
	out := Dump(map[string]int{"b": 2, "a": 1})
	assert.Less(t, strings.Index(out, `"a"`), strings.Index(out, `"b"`))
}
