package check

import "errors"

var (
	// ErrAssertionFailed is the sentinel every failed Result unwraps
	// to.
	ErrAssertionFailed = errors.New("assertion failed")

	// ErrUnknownOp reports an operator outside the defined set.
	ErrUnknownOp = errors.New("unknown operator")

	// ErrNotOrdered reports an ordering operator applied to operands
	// that have no order.
	ErrNotOrdered = errors.New("operands are not ordered")
)

// Result captures the outcome of a single check.
type Result struct {
	// Check names the check that produced the result, e.g.
	// "contains" or "nth".
	Check string `json:"check"`

	// Op is the comparison operator, zero for checks without one.
	Op Op `json:"op,omitempty"`

	// Passed indicates whether the condition held.
	Passed bool `json:"passed"`

	// Actual is the subject value that was inspected.
	Actual any `json:"actual,omitempty"`

	// Expected is the value the subject was compared against.
	Expected any `json:"expected,omitempty"`

	// Message is the diagnostic on failure and a short summary on
	// success.
	Message string `json:"message"`

	cause error
}

// Err returns nil when the result passed and a *Failure otherwise.
func (r Result) Err() error {
	if r.Passed {
		return nil
	}
	return &Failure{Check: r.Check, Message: r.Message, cause: r.cause}
}

// Failure is the error form of a failed Result.
type Failure struct {
	Check   string
	Message string

	cause error
}

// Error returns the diagnostic message.
func (f *Failure) Error() string {
	if f == nil || f.Message == "" {
		return ErrAssertionFailed.Error()
	}
	return f.Message
}

// Unwrap exposes ErrAssertionFailed and, for misuse such as an
// unordered operand, the underlying cause.
func (f *Failure) Unwrap() []error {
	if f.cause == nil {
		return []error{ErrAssertionFailed}
	}
	return []error{ErrAssertionFailed, f.cause}
}

func pass(check string, op Op, actual, expected any, msg string) Result {
	return Result{
		Check:    check,
		Op:       op,
		Passed:   true,
		Actual:   actual,
		Expected: expected,
		Message:  msg,
	}
}

func fail(check string, op Op, actual, expected any, msg string) Result {
	return Result{
		Check:    check,
		Op:       op,
		Passed:   false,
		Actual:   actual,
		Expected: expected,
		Message:  msg,
	}
}

// Misuse reports a check that could not be applied to its operands,
// such as an unknown operator or a value of the wrong shape. The
// Result unwraps to both ErrAssertionFailed and err.
func Misuse(check string, op Op, actual, expected any, err error) Result {
	return misuse(check, op, actual, expected, err)
}

func misuse(check string, op Op, actual, expected any, err error) Result {
	r := fail(check, op, actual, expected, message(err.Error(), 1,
		field{"left", Render(actual)},
		field{"right", Render(expected)},
	))
	r.cause = err
	return r
}
