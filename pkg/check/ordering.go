package check

import (
	"fmt"
	"strings"
)

// Ordered applies op between left and right. The optional msgAndArgs
// follow the testify convention: a format string and its arguments,
// or a single value. When present the formatted text is appended to
// the failure message.
func Ordered[V any](left, right V, op Op, msgAndArgs ...any) Result {
	ok, err := Compare(op, left, right)
	if err != nil {
		r := misuse("ordered", op, left, right, err)
		r.Message = appendMessage(r.Message, msgAndArgs...)
		return r
	}

	header := fmt.Sprintf("`(left %s right)`", op)
	if ok {
		return pass("ordered", op, left, right, header)
	}

	msg := fmt.Sprintf(
		"assertion failed: %s\n  left: `%s`,\n right: `%s`",
		header, Render(left), Render(right),
	)
	if extra := FormatMessage(msgAndArgs...); extra != "" {
		msg += ": " + extra
	}
	return fail("ordered", op, left, right, msg+"\n")
}

// FormatMessage renders testify-style msgAndArgs. A lone string is
// returned as is, a string followed by arguments is used as a format,
// and anything else is printed with %+v.
func FormatMessage(msgAndArgs ...any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	}

	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%+v", msgAndArgs)
}

// appendMessage adds the formatted msgAndArgs as a trailing line.
func appendMessage(msg string, msgAndArgs ...any) string {
	extra := FormatMessage(msgAndArgs...)
	if extra == "" {
		return msg
	}
	return strings.TrimSuffix(msg, "\n") + "\n" + extra + "\n"
}
