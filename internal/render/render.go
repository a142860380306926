// Package render formats values for diagnostics and tuple text so
// both show containers the same way.
package render

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

// Config renders values compactly. Map keys are sorted so the same
// container always renders the same way.
var Config = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Value formats v on one line. Strings are quoted, errors and
// fmt.Stringers use their own text, and everything else goes
// through go-spew.
func Value(v any) string {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "<nil>"
	}

	switch val := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(val)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	}
	return Config.Sprintf("%+v", v)
}

// Dump formats v over multiple lines, one element per line.
func Dump(v any) string {
	return Config.Sdump(v)
}
