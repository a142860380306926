package check

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrdered(t *testing.T) {
	assert.True(t, Ordered(1, 2, Lt).Passed)
	assert.True(t, Ordered(2, 2, Le).Passed)
	assert.True(t, Ordered("b", "a", Gt).Passed)
	assert.True(t, Ordered(2.5, 2.5, Ge).Passed)

	r := Ordered(3, 2, Lt)
	assert.False(t, r.Passed)
	assert.Equal(t, "ordered", r.Check)
	assert.Equal(t, "assertion failed: `(left < right)`\n  left: `3`,\n right: `2`\n", r.Message)
}

func TestOrdered_Message(t *testing.T) {
	r := Ordered(3, 2, Le, "retries %d", 2)
	assert.Equal(t,
		"assertion failed: `(left <= right)`\n  left: `3`,\n right: `2`: retries 2\n",
		r.Message)
}

func TestOrdered_Misuse(t *testing.T) {
	r := Ordered([]int{1}, []int{2}, Lt, "slices")

	assert.False(t, r.Passed)
	assert.ErrorIs(t, r.Err(), ErrNotOrdered)
	assert.Contains(t, r.Message, "\nslices\n")
}

func TestFormatMessage(t *testing.T) {
	assert.Equal(t, "", FormatMessage())
	assert.Equal(t, "plain", FormatMessage("plain"))
	assert.Equal(t, "n=3", FormatMessage("n=%d", 3))
	assert.Equal(t, "42", FormatMessage(42))
	assert.Equal(t, "[7 retries]", FormatMessage(7, "retries"))
}

func TestOrdered_NegationIsComplement(t *testing.T) {
	pairs := []struct {
		name        string
		left, right any
	}{
		{"int less", 1, 2},
		{"int equal", 2, 2},
		{"int greater", 3, 2},
		{"string less", "apple", "banana"},
		{"string equal", "kiwi", "kiwi"},
		{"string greater", "pear", "fig"},
		{"duration less", time.Second, time.Minute},
		{"duration equal", time.Hour, time.Hour},
		{"duration greater", time.Hour, time.Millisecond},
		{"float greater", 2.5, -1.0},
	}

	for _, pair := range pairs {
		t.Run(pair.name, func(t *testing.T) {
			for _, op := range []Op{Eq, Ne, Lt, Le, Gt, Ge} {
				holds := Ordered(pair.left, pair.right, op).Passed
				negated := Ordered(pair.left, pair.right, op.Negate()).Passed
				assert.NotEqual(t, holds, negated, "%v %s %v", pair.left, op, pair.right)
			}
		})
	}
}
