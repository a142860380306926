package assertion

import (
	"fmt"

	"github.com/stretchr/testify/require"
)

// Require fails t through require.Fail at the first failed result.
// It returns true when every result passed.
func Require(t require.TestingT, results ...Result) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	for _, r := range results {
		if !r.Passed {
			require.Fail(t, r.Message,
				fmt.Sprintf("assertion %q on target %q", r.Type, r.Target))
			return false
		}
	}
	return true
}
