package totem

import (
	"digital.vasic.totems/pkg/check"
	"digital.vasic.totems/pkg/tuple"
)

// Field fails the test unless op holds between a tuple field and
// want:
//
//	tup := tuple.New3(1, 2, "three")
//	totem.Field(t, tup.F0(), check.Eq, 1)
func Field[V any](
	t TestingT,
	cell tuple.Cell[V],
	op check.Op,
	want V,
	msgAndArgs ...any,
) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return Check(t, check.Field(cell, op, want), msgAndArgs...)
}
