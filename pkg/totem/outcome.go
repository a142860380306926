package totem

import (
	"digital.vasic.totems/pkg/check"
	"digital.vasic.totems/pkg/outcome"
)

// Ok fails the test unless r is in the Ok arm.
func Ok[T, E any](t TestingT, r outcome.Result[T, E], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.Ok(r), msgAndArgs...)
}

// OkThat fails the test unless r is Ok and op holds between its value
// and want.
func OkThat[T, E any](
	t TestingT,
	r outcome.Result[T, E],
	op check.Op,
	want T,
	msgAndArgs ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.OkThat(r, op, want), msgAndArgs...)
}

// Err fails the test unless r is in the Err arm.
func Err[T, E any](t TestingT, r outcome.Result[T, E], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.Err(r), msgAndArgs...)
}

// ErrThat fails the test unless r is Err and op holds between its
// failure value and want.
func ErrThat[T, E any](
	t TestingT,
	r outcome.Result[T, E],
	op check.Op,
	want E,
	msgAndArgs ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.ErrThat(r, op, want), msgAndArgs...)
}

// Some fails the test unless o holds a value.
func Some[T any](t TestingT, o outcome.Option[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.Some(o), msgAndArgs...)
}

// SomeThat fails the test unless o holds a value and op holds between
// it and want.
func SomeThat[T any](
	t TestingT,
	o outcome.Option[T],
	op check.Op,
	want T,
	msgAndArgs ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.SomeThat(o, op, want), msgAndArgs...)
}

// None fails the test unless o is empty.
func None[T any](t TestingT, o outcome.Option[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.None(o), msgAndArgs...)
}
