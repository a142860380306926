package check

import (
	"fmt"

	"digital.vasic.totems/pkg/tuple"
)

// Field applies op between a tuple field and want. The field is
// selected at the call site with one of the tuple accessors, e.g.
// Field(t.F3(), Le, 4).
func Field[V any](cell tuple.Cell[V], op Op, want V) Result {
	ok, err := Compare(op, cell.Value, want)
	if err != nil {
		return misuse("field", op, cell.Value, want, err)
	}

	label := cell.Label()
	header := fmt.Sprintf("(%s %s val)", label, op)
	if ok {
		return pass("field", op, cell.Value, want, header)
	}
	return fail("field", op, cell.Value, want, message(header, 0,
		field{"val", Render(want)},
		field{label, Render(cell.Value)},
	))
}
