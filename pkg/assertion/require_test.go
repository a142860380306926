package assertion

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingT struct {
	errors  []string
	failed  bool
	helpers int
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() { r.failed = true }

func (r *recordingT) Helper() { r.helpers++ }

func TestRequire(t *testing.T) {
	ok := Result{Type: "eq", Target: "a", Passed: true}
	bad := Result{Type: "lt", Target: "b", Message: "b is too large"}
	worse := Result{Type: "gt", Target: "c", Message: "c is too small"}

	t.Run("all passed", func(t *testing.T) {
		rt := &recordingT{}
		assert.True(t, Require(rt, ok, ok))
		assert.False(t, rt.failed)
		assert.Empty(t, rt.errors)
	})

	t.Run("first failure reported", func(t *testing.T) {
		rt := &recordingT{}
		assert.False(t, Require(rt, ok, bad, worse))
		assert.True(t, rt.failed)
		assert.Len(t, rt.errors, 1)
		assert.Contains(t, rt.errors[0], "b is too large")
		assert.Contains(t, rt.errors[0], `assertion "lt" on target "b"`)
		assert.NotContains(t, rt.errors[0], "c is too small")
		assert.Positive(t, rt.helpers)
	})
}
