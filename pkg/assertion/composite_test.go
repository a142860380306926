package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllPassComposite(t *testing.T) {
	e := NewEngine()
	values := map[string]any{"n": 3, "s": "hello"}

	t.Run("all pass", func(t *testing.T) {
		r := AllPassComposite(e, []Definition{
			{Type: "gt", Target: "n", Value: 1},
			{Type: "contains", Target: "s", Value: "ell"},
		}, values)

		assert.True(t, r.Passed)
		assert.Equal(t, "all 2 assertions passed", r.Message)
	})

	t.Run("one fails", func(t *testing.T) {
		r := AllPassComposite(e, []Definition{
			{Type: "gt", Target: "n", Value: 1},
			{Type: "lt", Target: "n", Value: 1},
		}, values)

		assert.False(t, r.Passed)
		assert.Equal(t, "n", r.Target)
		assert.Contains(t, r.Message, "assertion 'lt' on target 'n' failed")
	})
}

func TestAnyPassComposite(t *testing.T) {
	e := NewEngine()
	values := map[string]any{"n": 3}

	r := AnyPassComposite(e, []Definition{
		{Type: "lt", Target: "n", Value: 1},
		{Type: "eq", Target: "n", Value: 3},
	}, values)
	assert.True(t, r.Passed)
	assert.Equal(t, "assertion 'eq' on target 'n' passed", r.Message)

	r = AnyPassComposite(e, []Definition{
		{Type: "lt", Target: "n", Value: 1},
	}, values)
	assert.False(t, r.Passed)
	assert.Equal(t, "none of 1 assertions passed", r.Message)
}

func TestCompositeEvaluators(t *testing.T) {
	e := NewEngine()

	inRange := CompositeAllPass(e, []Definition{
		{Type: "ge", Target: "lo", Value: 1},
		{Type: "le", Target: "hi", Value: 10},
	})
	require.NoError(t, e.Register("in_range", inRange))

	eitherEnd := CompositeAnyPass(e, []Definition{
		{Type: "eq", Target: "first", Value: 1},
		{Type: "eq", Target: "last", Value: 10},
	})
	require.NoError(t, e.Register("either_end", eitherEnd))

	assert.True(t, e.Evaluate(Definition{Type: "in_range", Target: "x"}, 5).Passed)
	assert.False(t, e.Evaluate(Definition{Type: "in_range", Target: "x"}, 11).Passed)
	assert.True(t, e.Evaluate(Definition{Type: "either_end", Target: "x"}, 10).Passed)
	assert.False(t, e.Evaluate(Definition{Type: "either_end", Target: "x"}, 5).Passed)
}
