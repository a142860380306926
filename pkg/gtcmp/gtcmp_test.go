package gtcmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gtassert "gotest.tools/v3/assert"

	"digital.vasic.totems/pkg/check"
)

func TestOf(t *testing.T) {
	gtassert.Assert(t, Of(check.Contains([]int{1, 2, 3}, 2)))
	gtassert.Check(t, Of(check.Nth([]string{"a", "b"}, 1, check.Eq, "b")))

	failed := Of(check.Contains([]int{1, 2, 3}, 4))()
	assert.False(t, failed.Success())
}

func TestLazy(t *testing.T) {
	calls := 0
	c := Lazy(func() check.Result {
		calls++
		return check.Ordered(1, 2, check.Lt)
	})
	assert.Zero(t, calls)

	gtassert.Assert(t, c)
	assert.Equal(t, 1, calls)
}

func TestLazy_Failure(t *testing.T) {
	r := Lazy(func() check.Result {
		return check.Ordered(3, 2, check.Lt)
	})()

	assert.False(t, r.Success())
}
