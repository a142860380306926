// Package gtcmp adapts check results to gotest.tools comparisons, so
// the same checks can be used with gotest.tools/v3/assert:
//
//	assert.Assert(t, gtcmp.Of(check.Nth(xs, 1, check.Eq, 10)))
package gtcmp

import (
	"gotest.tools/v3/assert/cmp"

	"digital.vasic.totems/pkg/check"
)

// Of returns a comparison that reports r.
func Of(r check.Result) cmp.Comparison {
	return func() cmp.Result {
		return result(r)
	}
}

// Lazy returns a comparison that runs fn when the comparison is
// evaluated.
func Lazy(fn func() check.Result) cmp.Comparison {
	return func() cmp.Result {
		return result(fn())
	}
}

func result(r check.Result) cmp.Result {
	if r.Passed {
		return cmp.ResultSuccess
	}
	return cmp.ResultFailure(r.Message)
}
