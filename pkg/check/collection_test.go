package check

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	r := Contains([]int{1, 2, 3}, 2)
	assert.True(t, r.Passed)
	assert.Equal(t, "contains", r.Check)
	assert.Equal(t, Eq, r.Op)

	r = Contains([]int{1, 2, 3}, 4)
	assert.False(t, r.Passed)
	assert.Equal(t,
		"assertion failed: (collection contains item)\n"+
			"       item: 4\n"+
			" collection: [1 2 3]\n",
		r.Message)

	assert.False(t, Contains([]string{}, "").Passed)
	assert.False(t, Contains[string](nil, "").Passed)
}

func TestContainsSeq(t *testing.T) {
	assert.True(t, ContainsSeq(slices.Values([]string{"a", "b"}), "b").Passed)

	r := ContainsSeq(slices.Values([]string{"a", "b"}), "c")
	assert.False(t, r.Passed)
	assert.Contains(t, r.Message, `item: "c"`)
	assert.Equal(t, []string{"a", "b"}, r.Actual)
}

func TestContainsSeq_StopsAtMatch(t *testing.T) {
	walked := 0
	seq := func(yield func(int) bool) {
		for i := range 10 {
			walked++
			if !yield(i) {
				return
			}
		}
	}

	assert.True(t, ContainsSeq(seq, 2).Passed)
	assert.Equal(t, 3, walked)
}

func TestContainsEntry(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}

	assert.True(t, ContainsEntry(m, "a", 1).Passed)
	assert.False(t, ContainsEntry(m, "c", 1).Passed)

	r := ContainsEntry(m, "a", 2)
	assert.False(t, r.Passed)
	assert.Contains(t, r.Message, `item: ("a", 2)`)
	assert.Contains(t, r.Message, "collection: map[a:1 b:2]")
}

func TestContainsSubstring(t *testing.T) {
	assert.True(t, ContainsSubstring("hello", "ell").Passed)

	r := ContainsSubstring("hello", "xyz")
	assert.False(t, r.Passed)
	assert.Contains(t, r.Message, `item: "xyz"`)
	assert.Contains(t, r.Message, `collection: "hello"`)
}

func TestAll(t *testing.T) {
	positive := func(n int) bool { return n > 0 }

	assert.True(t, All([]int{1, 2, 3}, positive).Passed)
	assert.True(t, All([]int{}, positive).Passed)

	r := All([]int{1, -2, 3}, positive, "n > 0")
	assert.False(t, r.Passed)
	assert.Equal(t,
		"assertion failed: (all elements of collection match predicate)\n"+
			"  predicate: n > 0\n"+
			" collection: [1 -2 3]\n",
		r.Message)

	r = All([]int{-1}, positive)
	assert.Contains(t, r.Message, "predicate: func(int) bool")
}

func TestAny(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	assert.True(t, Any([]int{1, 2, 3}, even).Passed)
	assert.False(t, Any([]int{}, even).Passed)

	r := Any([]int{1, 3}, even, "even")
	assert.False(t, r.Passed)
	assert.Contains(t, r.Message,
		"assertion failed: (any element of collection matches predicate)\n")
	assert.Contains(t, r.Message, "predicate: even")
}

func TestAllSeq_AnySeq(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	positive := func(n int) bool { return n > 0 }

	assert.True(t, AllSeq(maps.Values(m), positive).Passed)
	assert.True(t, AnySeq(maps.Keys(m), func(k string) bool { return k == "b" }).Passed)
	assert.False(t, AnySeq(slices.Values([]int{}), positive).Passed)
}

func TestNth(t *testing.T) {
	xs := []int{5, 10, 15}

	tests := []struct {
		name     string
		position int
		op       Op
		value    int
		passed   bool
	}{
		{"eq", 1, Eq, 10, true},
		{"ne", 1, Ne, 10, false},
		{"lt", 0, Lt, 6, true},
		{"ge", 2, Ge, 15, true},
		{"gt fails", 2, Gt, 15, false},
		{"missing eq", 3, Eq, 10, false},
		{"missing ne", 3, Ne, 10, false},
		{"negative", -1, Ne, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Nth(xs, tt.position, tt.op, tt.value)
			assert.Equal(t, tt.passed, r.Passed, r.Message)
			assert.Equal(t, "nth", r.Check)
		})
	}
}

func TestNth_Messages(t *testing.T) {
	r := Nth([]int{5, 10, 15}, 1, Eq, 11)
	assert.Equal(t,
		"assertion failed: (collection[1] == value)\n"+
			"  left: 10\n"+
			" right: 11\n",
		r.Message)

	r = Nth([]int{5, 10, 15}, 3, Eq, 10)
	assert.Equal(t,
		"assertion failed: position 3 does not exist in collection (length 3)\n"+
			" collection: [5 10 15]\n",
		r.Message)
}

func TestNth_Diff(t *testing.T) {
	r := Nth([]string{"a\nb\nc"}, 0, Eq, "a\nx\nc")

	assert.False(t, r.Passed)
	assert.Contains(t, r.Message, "\nDiff:\n--- Expected\n+++ Actual\n")
	assert.Contains(t, r.Message, "-x\n")
	assert.Contains(t, r.Message, "+b\n")
}

func TestNth_Unordered(t *testing.T) {
	r := Nth([][]int{{1}}, 0, Lt, []int{2})

	assert.False(t, r.Passed)
	assert.ErrorIs(t, r.Err(), ErrNotOrdered)
}

func TestNthSeq(t *testing.T) {
	seq := slices.Values([]string{"a", "b", "c"})

	assert.True(t, NthSeq(seq, 2, Eq, "c").Passed)
	assert.True(t, NthSeq(seq, 0, Lt, "b").Passed)

	r := NthSeq(seq, 5, Eq, "a")
	assert.False(t, r.Passed)
	assert.Contains(t, r.Message, "position 5 does not exist in collection (length 3)")
}

func TestNthSeq_NegativePositionDoesNotWalk(t *testing.T) {
	walked := 0
	naturals := func(yield func(int) bool) {
		for i := 0; ; i++ {
			walked++
			if !yield(i) {
				return
			}
		}
	}

	for _, op := range []Op{Eq, Ne, Lt, Ge} {
		r := NthSeq(naturals, -1, op, 5)
		assert.False(t, r.Passed, op.String())
		assert.Equal(t, "assertion failed: position -1 does not exist in collection\n", r.Message)
	}
	assert.Zero(t, walked)
}
