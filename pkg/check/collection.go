package check

import (
	"fmt"
	"iter"
	"strings"
)

// Contains passes when some element of collection equals item. An
// empty collection never contains anything.
func Contains[T any](collection []T, item T) Result {
	for _, v := range collection {
		if equal(v, item) {
			return pass("contains", Eq, collection, item, "collection contains item")
		}
	}
	return fail("contains", Eq, collection, item, containsMessage(Render(item), collection))
}

// ContainsSeq is Contains over a sequence. The sequence is walked
// once; the elements seen are kept for the failure message.
func ContainsSeq[T any](seq iter.Seq[T], item T) Result {
	var seen []T
	for v := range seq {
		seen = append(seen, v)
		if equal(v, item) {
			return pass("contains", Eq, seen, item, "collection contains item")
		}
	}
	return fail("contains", Eq, seen, item, containsMessage(Render(item), seen))
}

// ContainsEntry passes when m holds key mapped to a value equal to
// value.
func ContainsEntry[K comparable, V any](m map[K]V, key K, value V) Result {
	entry := fmt.Sprintf("(%s, %s)", Render(key), Render(value))
	if got, ok := m[key]; ok && equal(got, value) {
		return pass("contains", Eq, m, entry, "collection contains item")
	}
	return fail("contains", Eq, m, entry, containsMessage(entry, m))
}

// ContainsSubstring passes when sub occurs in s. It is the string
// form of Contains.
func ContainsSubstring(s, sub string) Result {
	if strings.Contains(s, sub) {
		return pass("contains", Eq, s, sub, "collection contains item")
	}
	return fail("contains", Eq, s, sub, containsMessage(Render(sub), s))
}

func containsMessage(item string, collection any) string {
	return message("(collection contains item)", 1,
		field{"item", item},
		field{"collection", Render(collection)},
	)
}

// All passes when every element satisfies pred. It passes for an
// empty collection. The optional description names the predicate in
// the failure message.
func All[T any](collection []T, pred func(T) bool, description ...string) Result {
	for _, v := range collection {
		if !pred(v) {
			return fail("all", 0, collection, nil,
				predicateMessage(allHeader, pred, description, collection))
		}
	}
	return pass("all", 0, collection, nil, "all elements match predicate")
}

// AllSeq is All over a sequence.
func AllSeq[T any](seq iter.Seq[T], pred func(T) bool, description ...string) Result {
	seen := collect(seq)
	return All(seen, pred, description...)
}

// Any passes when at least one element satisfies pred. It fails for
// an empty collection.
func Any[T any](collection []T, pred func(T) bool, description ...string) Result {
	for _, v := range collection {
		if pred(v) {
			return pass("any", 0, collection, nil, "an element matches predicate")
		}
	}
	return fail("any", 0, collection, nil,
		predicateMessage(anyHeader, pred, description, collection))
}

// AnySeq is Any over a sequence.
func AnySeq[T any](seq iter.Seq[T], pred func(T) bool, description ...string) Result {
	seen := collect(seq)
	return Any(seen, pred, description...)
}

const (
	allHeader = "(all elements of collection match predicate)"
	anyHeader = "(any element of collection matches predicate)"
)

func predicateMessage[T any](
	header string,
	pred func(T) bool,
	description []string,
	collection []T,
) string {
	label := strings.Join(description, " ")
	if label == "" {
		label = fmt.Sprintf("%T", pred)
	}
	return message(header, 1,
		field{"predicate", label},
		field{"collection", Render(collection)},
	)
}

// Nth retrieves the element at the zero-based position and applies op
// between it and value. A position outside the collection fails for
// every operator.
func Nth[T any](collection []T, position int, op Op, value T) Result {
	if position < 0 || position >= len(collection) {
		return missingPosition(position, len(collection), collection, value)
	}
	return nthCompare(position, op, collection[position], value)
}

// NthSeq is Nth over a sequence. The sequence is walked up to the
// position, or to its end when the position does not exist. A
// negative position fails without walking the sequence.
func NthSeq[T any](seq iter.Seq[T], position int, op Op, value T) Result {
	if position < 0 {
		return negativePosition(position, value)
	}

	var seen []T
	for v := range seq {
		if len(seen) == position {
			return nthCompare(position, op, v, value)
		}
		seen = append(seen, v)
	}
	return missingPosition(position, len(seen), seen, value)
}

func missingPosition(position, length int, collection, value any) Result {
	header := fmt.Sprintf(
		"position %d does not exist in collection (length %d)",
		position, length,
	)
	return fail("nth", 0, collection, value, message(header, 1,
		field{"collection", Render(collection)},
	))
}

// negativePosition reports a position before the start of a
// sequence whose length is not known.
func negativePosition(position int, value any) Result {
	header := fmt.Sprintf("position %d does not exist in collection", position)
	return fail("nth", 0, nil, value, message(header, 1))
}

func nthCompare[T any](position int, op Op, elem, value T) Result {
	ok, err := Compare(op, elem, value)
	if err != nil {
		return misuse("nth", op, elem, value, err)
	}

	header := fmt.Sprintf("(collection[%d] %s value)", position, op)
	if ok {
		return pass("nth", op, elem, value, header)
	}
	return fail("nth", op, elem, value, leftRight(header, elem, value))
}

func collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}
