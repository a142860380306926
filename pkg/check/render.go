package check

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"digital.vasic.totems/internal/render"
)

// Render formats a value the way diagnostics display it. Strings are
// quoted, errors and fmt.Stringers use their own text, and everything
// else, containers included, goes through go-spew.
func Render(v any) string {
	return render.Value(v)
}

// field is one labeled line of a diagnostic.
type field struct {
	label string
	value string
}

// message builds "assertion failed: <header>" followed by one line
// per field. Labels are right-aligned to the widest label plus lead
// columns.
func message(header string, lead int, fields ...field) string {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.label))
	}
	width += lead

	var b strings.Builder
	b.WriteString("assertion failed: ")
	b.WriteString(header)
	for _, f := range fields {
		fmt.Fprintf(&b, "\n%*s: %s", width, f.label, f.value)
	}
	b.WriteString("\n")
	return b.String()
}

// leftRight is the common "left / right" diagnostic.
func leftRight(header string, left, right any) string {
	return message(header, 1,
		field{"left", Render(left)},
		field{"right", Render(right)},
	) + diff(right, left)
}

// diff returns a unified diff between the renderings of expected and
// actual, or "" when either renders on a single line or the two
// values have different types.
func diff(expected, actual any) string {
	if expected == nil || actual == nil {
		return ""
	}

	et, at := reflect.TypeOf(expected), reflect.TypeOf(actual)
	if et != at {
		return ""
	}

	var e, a string
	switch et.Kind() {
	case reflect.String:
		e, a = reflect.ValueOf(expected).String(), reflect.ValueOf(actual).String()
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		e, a = render.Dump(expected), render.Dump(actual)
	default:
		return ""
	}

	if !strings.Contains(strings.TrimSpace(e), "\n") &&
		!strings.Contains(strings.TrimSpace(a), "\n") {
		return ""
	}

	out, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(e),
		B:        difflib.SplitLines(a),
		FromFile: "Expected",
		FromDate: "",
		ToFile:   "Actual",
		ToDate:   "",
		Context:  1,
	})
	if out == "" {
		return ""
	}
	return "\nDiff:\n" + out
}
