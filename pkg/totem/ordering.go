package totem

import "digital.vasic.totems/pkg/check"

// Ordered fails the test unless op holds between left and right.
// msgAndArgs, when given, are formatted and appended to the failure
// message.
func Ordered[V any](t TestingT, left, right V, op check.Op, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.Ordered(left, right, op, msgAndArgs...))
}

// Lt fails the test unless left < right.
func Lt[V any](t TestingT, left, right V, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.Ordered(left, right, check.Lt, msgAndArgs...))
}

// Le fails the test unless left <= right.
func Le[V any](t TestingT, left, right V, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.Ordered(left, right, check.Le, msgAndArgs...))
}

// Gt fails the test unless left > right.
func Gt[V any](t TestingT, left, right V, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.Ordered(left, right, check.Gt, msgAndArgs...))
}

// Ge fails the test unless left >= right.
func Ge[V any](t TestingT, left, right V, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.Ordered(left, right, check.Ge, msgAndArgs...))
}
