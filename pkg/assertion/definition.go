// Package assertion evaluates declarative assertion definitions
// against named values. Definitions are plain data, so whole suites
// can be kept in YAML or JSON files next to the tests that use them.
// Every built-in evaluator is backed by digital.vasic.totems/pkg/check
// and produces the same diagnostics as the programmatic checks.
package assertion

import "digital.vasic.totems/pkg/check"

// Definition describes a single assertion to evaluate against a
// named value.
type Definition struct {
	// Type is the evaluator type (e.g., "contains", "nth",
	// "lt").
	Type string `json:"type" yaml:"type"`

	// Target is the name of the value to check.
	Target string `json:"target" yaml:"target"`

	// Op is the comparison operator for evaluators that take
	// one. Shorthand types such as "lt" imply it.
	Op check.Op `json:"op,omitempty" yaml:"op,omitempty"`

	// Index is the zero-based position for "nth".
	Index int `json:"index,omitempty" yaml:"index,omitempty"`

	// Value is the expected value.
	Value any `json:"value,omitempty" yaml:"value,omitempty"`

	// Message is a human-readable description shown on
	// failure.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Result captures the outcome of evaluating a single definition.
type Result struct {
	// Type is the assertion type that was evaluated.
	Type string `json:"type"`

	// Target is the name of the value checked.
	Target string `json:"target"`

	// Op is the operator that was applied, if any.
	Op check.Op `json:"op,omitempty"`

	// Expected is the value the assertion expected.
	Expected any `json:"expected"`

	// Actual is the value that was observed.
	Actual any `json:"actual"`

	// Passed indicates whether the assertion succeeded.
	Passed bool `json:"passed"`

	// Message is the diagnostic, prefixed with the definition's
	// own message when it has one.
	Message string `json:"message"`
}
