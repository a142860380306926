package assertion

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"digital.vasic.totems/pkg/check"
)

// ParseAssertionString parses a compact assertion string of the
// form "type:value" into its components. If no colon is present
// the entire string is treated as the type and value is nil.
//
// Examples:
//
//	"contains:func" -> ("contains", "func")
//	"some"          -> ("some", nil)
//	"lt:5"          -> ("lt", "5")
func ParseAssertionString(
	s string,
) (assertionType string, value any) {
	parts := strings.SplitN(s, ":", 2)
	assertionType = parts[0]

	if len(parts) > 1 {
		value = parts[1]
	}

	return
}

// ParseDefinition builds a Definition for target from a compact
// assertion string. The value is decoded as a YAML scalar, so
// "lt:5" compares against the number 5 and "eq:'5'" against the
// string "5". Types that take an operator carry it as a second
// segment, and nth carries the index before it:
//
//	"lt:5"
//	"contains:3"
//	"all:gt:0"
//	"nth:1:eq:b"
func ParseDefinition(target, s string) (Definition, error) {
	assertionType, rest := ParseAssertionString(s)
	def := Definition{Type: assertionType, Target: target}
	if assertionType == "" {
		return def, fmt.Errorf("empty assertion type in %q", s)
	}

	raw, _ := rest.(string)
	if assertionType == "nth" {
		index, tail, _ := strings.Cut(raw, ":")
		n, err := strconv.Atoi(index)
		if err != nil {
			return def, fmt.Errorf("invalid nth index in %q: %w", s, err)
		}
		def.Index = n
		raw = tail
	}

	switch assertionType {
	case "all", "any", "nth", "compare":
		opText, tail, _ := strings.Cut(raw, ":")
		op, err := check.ParseOp(opText)
		if err != nil {
			return def, fmt.Errorf("invalid operator in %q: %w", s, err)
		}
		def.Op = op
		raw = tail
	}

	if rest == nil {
		return def, nil
	}
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return def, fmt.Errorf("invalid value in %q: %w", s, err)
	}
	def.Value = value
	return def, nil
}
