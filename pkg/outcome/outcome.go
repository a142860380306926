// Package outcome provides the two-armed Result and the optional
// Option wrappers that the Ok/Err/Some/None checks inspect, along
// with adapters from the usual Go shapes: (value, error) pairs,
// pointers and (value, ok) lookups.
package outcome

import "fmt"

// Result holds either a success value (the Ok arm) or a failure value
// (the Err arm), never both.
type Result[T, E any] struct {
	value   T
	failure E
	ok      bool
}

// Ok returns a Result in the Ok arm.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err returns a Result in the Err arm.
func Err[T, E any](failure E) Result[T, E] {
	return Result[T, E]{failure: failure}
}

// From converts a (value, error) pair. A nil error selects the Ok arm,
// so From(strconv.Atoi("5")) is Ok(5).
func From[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](value)
}

// IsOk reports whether the Result is in the Ok arm.
func (r Result[T, E]) IsOk() bool { return r.ok }

// IsErr reports whether the Result is in the Err arm.
func (r Result[T, E]) IsErr() bool { return !r.ok }

// Value returns the Ok value and true, or the zero value and false.
func (r Result[T, E]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Failure returns the Err value and true, or the zero value and false.
func (r Result[T, E]) Failure() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.failure, true
}

// String renders the Result as Ok(v) or Err(e).
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.failure)
}

// Option holds either a present value (Some) or nothing (None).
type Option[T any] struct {
	value   T
	present bool
}

// Some returns a present Option.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromLookup converts a comma-ok pair such as a map lookup.
func FromLookup[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.present }

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool { return !o.present }

// Get returns the value and true, or the zero value and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// String renders the Option as Some(v) or None.
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
