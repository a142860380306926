package totem

import (
	"digital.vasic.totems/pkg/check"
	"digital.vasic.totems/pkg/outcome"
)

// Chain holds a value that already passed an Ok or Some assertion so
// that follow-up assertions can be made on it:
//
//	totem.ChainOk(t, outcome.From(strconv.Atoi("5"))).WithValue(5)
//
// A Chain is immutable. When the initial assertion failed (possible
// only if FailNow did not stop the test) the Chain is inert and
// WithValue does nothing.
type Chain[T any] struct {
	t     TestingT
	value T
	some  bool
	valid bool
}

// ChainOk asserts that r is Ok and returns a Chain over its value.
func ChainOk[T, E any](t TestingT, r outcome.Result[T, E], msgAndArgs ...any) Chain[T] {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	v, _ := r.Value()
	return Chain[T]{t: t, value: v, valid: Ok(t, r, msgAndArgs...)}
}

// ChainSome asserts that o is Some and returns a Chain over its value.
func ChainSome[T any](t TestingT, o outcome.Option[T], msgAndArgs ...any) Chain[T] {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	v, _ := o.Get()
	return Chain[T]{t: t, value: v, some: true, valid: Some(t, o, msgAndArgs...)}
}

// WithValue fails the test unless the held value equals want.
func (c Chain[T]) WithValue(want T, msgAndArgs ...any) Chain[T] {
	if h, ok := c.t.(tHelper); ok {
		h.Helper()
	}

	if !c.valid {
		return c
	}

	var r check.Result
	if c.some {
		r = check.SomeThat(outcome.Some(c.value), check.Eq, want)
	} else {
		r = check.OkThat(outcome.Ok[T, struct{}](c.value), check.Eq, want)
	}
	Check(c.t, r, msgAndArgs...)
	return c
}

// Value returns the held value and whether the initial assertion
// passed.
func (c Chain[T]) Value() (T, bool) {
	return c.value, c.valid
}
