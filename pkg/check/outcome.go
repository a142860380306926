package check

import (
	"fmt"

	"digital.vasic.totems/pkg/outcome"
)

// Ok passes when r is in the Ok arm.
func Ok[T, E any](r outcome.Result[T, E]) Result {
	if r.IsOk() {
		return pass("ok", 0, r, nil, "result is Ok(_)")
	}
	return fail("ok", 0, r, nil, message("(result is Ok(_))", 1,
		field{"result", renderResult(r)},
	))
}

// OkThat passes when r is in the Ok arm and op holds between the Ok
// value and want. A wrong arm fails before any comparison.
func OkThat[T, E any](r outcome.Result[T, E], op Op, want T) Result {
	if arm := Ok(r); !arm.Passed {
		return arm
	}
	v, _ := r.Value()
	return inner("ok", "Ok", op, v, want)
}

// Err passes when r is in the Err arm.
func Err[T, E any](r outcome.Result[T, E]) Result {
	if r.IsErr() {
		return pass("err", 0, r, nil, "result is Err(_)")
	}
	return fail("err", 0, r, nil, message("(result is Err(_))", 1,
		field{"result", renderResult(r)},
	))
}

// ErrThat passes when r is in the Err arm and op holds between the
// Err value and want.
func ErrThat[T, E any](r outcome.Result[T, E], op Op, want E) Result {
	if arm := Err(r); !arm.Passed {
		return arm
	}
	e, _ := r.Failure()
	return inner("err", "Err", op, e, want)
}

// Some passes when o holds a value.
func Some[T any](o outcome.Option[T]) Result {
	if o.IsSome() {
		return pass("some", 0, o, nil, "option is Some(_)")
	}
	return fail("some", 0, o, nil, message("(option is Some(_))", 1,
		field{"option", renderOption(o)},
	))
}

// SomeThat passes when o holds a value and op holds between it and
// want.
func SomeThat[T any](o outcome.Option[T], op Op, want T) Result {
	if arm := Some(o); !arm.Passed {
		return arm
	}
	v, _ := o.Get()
	return inner("some", "Some", op, v, want)
}

// None passes when o is empty. Absence has no inner value, so there
// is no comparison form.
func None[T any](o outcome.Option[T]) Result {
	if o.IsNone() {
		return pass("none", 0, o, nil, "option is None")
	}
	return fail("none", 0, o, nil, message("(option is None)", 1,
		field{"option", renderOption(o)},
	))
}

func inner[V any](check, arm string, op Op, got, want V) Result {
	ok, err := Compare(op, got, want)
	if err != nil {
		return misuse(check, op, got, want, err)
	}

	header := fmt.Sprintf("(%s(left) => { left %s right })", arm, op)
	if ok {
		return pass(check, op, got, want, header)
	}
	return fail(check, op, got, want, leftRight(header, got, want))
}

func renderResult[T, E any](r outcome.Result[T, E]) string {
	if v, ok := r.Value(); ok {
		return "Ok(" + Render(v) + ")"
	}
	e, _ := r.Failure()
	return "Err(" + Render(e) + ")"
}

func renderOption[T any](o outcome.Option[T]) string {
	if v, ok := o.Get(); ok {
		return "Some(" + Render(v) + ")"
	}
	return "None"
}
