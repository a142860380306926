package totem

import (
	"iter"

	"digital.vasic.totems/pkg/check"
)

// Contains fails the test unless some element of collection equals
// item. Empty collections always fail.
func Contains[T any](t TestingT, collection []T, item T, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.Contains(collection, item), msgAndArgs...)
}

// ContainsSeq is Contains over a sequence.
func ContainsSeq[T any](t TestingT, seq iter.Seq[T], item T, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.ContainsSeq(seq, item), msgAndArgs...)
}

// ContainsEntry fails the test unless m maps key to value.
func ContainsEntry[K comparable, V any](
	t TestingT,
	m map[K]V,
	key K,
	value V,
	msgAndArgs ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.ContainsEntry(m, key, value), msgAndArgs...)
}

// All fails the test when an element does not satisfy pred. An empty
// collection passes. msgAndArgs describe the predicate in the failure
// message, e.g. All(t, xs, positive, "x > 0").
func All[T any](t TestingT, collection []T, pred func(T) bool, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.All(collection, pred, check.FormatMessage(msgAndArgs...)))
}

// AllSeq is All over a sequence.
func AllSeq[T any](t TestingT, seq iter.Seq[T], pred func(T) bool, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.AllSeq(seq, pred, check.FormatMessage(msgAndArgs...)))
}

// Any fails the test unless at least one element satisfies pred. An
// empty collection fails.
func Any[T any](t TestingT, collection []T, pred func(T) bool, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.Any(collection, pred, check.FormatMessage(msgAndArgs...)))
}

// AnySeq is Any over a sequence.
func AnySeq[T any](t TestingT, seq iter.Seq[T], pred func(T) bool, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.AnySeq(seq, pred, check.FormatMessage(msgAndArgs...)))
}

// Nth fails the test unless the element at position satisfies op
// against value. A missing position fails for every operator.
func Nth[T any](
	t TestingT,
	collection []T,
	position int,
	op check.Op,
	value T,
	msgAndArgs ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.Nth(collection, position, op, value), msgAndArgs...)
}

// NthSeq is Nth over a sequence.
func NthSeq[T any](
	t TestingT,
	seq iter.Seq[T],
	position int,
	op check.Op,
	value T,
	msgAndArgs ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.NthSeq(seq, position, op, value), msgAndArgs...)
}
