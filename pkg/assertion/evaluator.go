package assertion

import "digital.vasic.totems/pkg/check"

// Evaluator evaluates a single assertion type against a concrete
// value. Values are normalized before they reach an evaluator: all
// numbers are float64 and slices or arrays are []any.
type Evaluator func(assertion Definition, value any) check.Result
