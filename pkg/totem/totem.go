// Package totem provides fatal test assertions. Each function
// evaluates a check from digital.vasic.totems/pkg/check and, when the
// condition does not hold, reports the diagnostic through testify's
// require.Fail, which aborts the running test with FailNow.
//
// Every function returns true when the assertion passed. With a
// *testing.T a failed assertion never returns; the result matters only
// for TestingT implementations whose FailNow does not stop the caller.
package totem

import (
	"github.com/stretchr/testify/require"

	"digital.vasic.totems/pkg/check"
)

// TestingT is the subset of *testing.T that assertions need. It is
// testify's require.TestingT, so *testing.T, *testing.B and testify
// mocks all satisfy it.
type TestingT = require.TestingT

type tHelper = interface {
	Helper()
}

// Check reports an already evaluated result, failing the test when
// it did not pass.
func Check(t TestingT, r check.Result, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if r.Passed {
		return true
	}

	require.Fail(t, r.Message, msgAndArgs...)
	return false
}
