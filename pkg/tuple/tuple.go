// Package tuple provides fixed-arity heterogeneous tuples, Of1
// through Of17. Fields are read positionally through accessors F0,
// F1, ... that return a Cell carrying the field's position, so a
// check can report "tuple.3" without the caller repeating the index,
// and asking for a position beyond the arity does not compile.
package tuple

//go:generate go run ../../internal/tuplegen -o tuple_gen.go -max 17

import (
	"strconv"
	"strings"

	internalrender "digital.vasic.totems/internal/render"
)

// Cell is a single tuple field together with its position.
type Cell[V any] struct {
	Index int
	Value V
}

// Label returns the diagnostic name of the field, e.g. "tuple.3".
func (c Cell[V]) Label() string {
	return "tuple." + strconv.Itoa(c.Index)
}

func render(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = internalrender.Value(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
