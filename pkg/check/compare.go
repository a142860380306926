package check

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"

	"github.com/stretchr/testify/assert"
)

// comparer is satisfied by types that define their own total order,
// such as time.Time.
type comparer[V any] interface {
	Compare(V) int
}

// equaler is satisfied by types that define their own equality, such
// as time.Time where the monotonic reading must not take part.
type equaler[V any] interface {
	Equal(V) bool
}

// Compare applies op between left and right.
//
// Equality uses the operands' Equal method when they have one, then
// errors.Is for error operands, and deep equality otherwise. Ordering
// is defined for integer, unsigned, floating point and string kinds
// (named types included), and for types with a Compare method.
// Ordering any other type returns an error wrapping ErrNotOrdered.
func Compare[V any](op Op, left, right V) (bool, error) {
	if !op.Valid() {
		return false, fmt.Errorf("%w: %d", ErrUnknownOp, int(op))
	}

	if !op.Ordering() {
		eq := equal(left, right)
		if op == Eq {
			return eq, nil
		}
		return !eq, nil
	}

	if c, ok := any(left).(comparer[V]); ok {
		return fromSign(op, c.Compare(right)), nil
	}

	return orderValues(op, any(left), any(right))
}

func equal[V any](left, right V) bool {
	if e, ok := any(left).(equaler[V]); ok {
		return e.Equal(right)
	}
	if le, ok := any(left).(error); ok {
		if re, ok := any(right).(error); ok && errors.Is(le, re) {
			return true
		}
	}
	return assert.ObjectsAreEqual(left, right)
}

func orderValues(op Op, left, right any) (bool, error) {
	lv, rv := reflect.ValueOf(left), reflect.ValueOf(right)
	if !lv.IsValid() || !rv.IsValid() {
		return false, fmt.Errorf("%w: cannot order <nil>", ErrNotOrdered)
	}

	lk, rk := kindOf(lv), kindOf(rv)
	switch {
	case lk == kindNone || rk == kindNone:
		return false, fmt.Errorf(
			"%w: %s %s %s", ErrNotOrdered, lv.Type(), op, rv.Type(),
		)
	case lk == kindString && rk == kindString:
		return ordered(op, lv.String(), rv.String()), nil
	case lk == kindString || rk == kindString:
		return false, fmt.Errorf(
			"%w: %s %s %s", ErrNotOrdered, lv.Type(), op, rv.Type(),
		)
	case lk == kindInt && rk == kindInt:
		return ordered(op, lv.Int(), rv.Int()), nil
	case lk == kindUint && rk == kindUint:
		return ordered(op, lv.Uint(), rv.Uint()), nil
	}

	// mixed numeric kinds compare as float64
	return ordered(op, asFloat(lv), asFloat(rv)), nil
}

type kind int

const (
	kindNone kind = iota
	kindInt
	kindUint
	kindFloat
	kindString
)

func kindOf(v reflect.Value) kind {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return kindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return kindUint
	case reflect.Float32, reflect.Float64:
		return kindFloat
	case reflect.String:
		return kindString
	}
	return kindNone
}

func asFloat(v reflect.Value) float64 {
	switch kindOf(v) {
	case kindInt:
		return float64(v.Int())
	case kindUint:
		return float64(v.Uint())
	}
	return v.Float()
}

func ordered[T cmp.Ordered](op Op, left, right T) bool {
	switch op {
	case Lt:
		return left < right
	case Le:
		return left <= right
	case Gt:
		return left > right
	case Ge:
		return left >= right
	}
	return false
}

func fromSign(op Op, sign int) bool {
	return ordered(op, sign, 0)
}
