package assertion

import (
	"errors"
	"fmt"
	"reflect"

	"digital.vasic.totems/pkg/check"
	"digital.vasic.totems/pkg/outcome"
)

// ErrNotCollection reports a collection assertion applied to a
// value that holds no elements.
var ErrNotCollection = errors.New("value is not a collection")

// evaluateContains checks that a collection holds the expected
// element. Strings are searched for a substring and maps for a
// key.
func evaluateContains(
	assertion Definition,
	value any,
) check.Result {
	if s, ok := value.(string); ok {
		if sub, ok := assertion.Value.(string); ok {
			return check.ContainsSubstring(s, sub)
		}
	}

	list, ok := asList(value)
	if !ok {
		return notCollection("contains", assertion, value)
	}
	return check.Contains(list, assertion.Value)
}

// evaluateAll checks that every element satisfies
// "element OP value".
func evaluateAll(
	assertion Definition,
	value any,
) check.Result {
	if r, ok := requireOp("all", assertion, value); !ok {
		return r
	}
	list, ok := elements(value)
	if !ok {
		return notCollection("all", assertion, value)
	}
	if r, ok := orderable("all", assertion, list); !ok {
		return r
	}
	return check.All(list, predicate(assertion), describe(assertion))
}

// evaluateAny checks that at least one element satisfies
// "element OP value".
func evaluateAny(
	assertion Definition,
	value any,
) check.Result {
	if r, ok := requireOp("any", assertion, value); !ok {
		return r
	}
	list, ok := elements(value)
	if !ok {
		return notCollection("any", assertion, value)
	}
	if r, ok := orderable("any", assertion, list); !ok {
		return r
	}
	return check.Any(list, predicate(assertion), describe(assertion))
}

// evaluateNth compares the element at assertion.Index.
func evaluateNth(
	assertion Definition,
	value any,
) check.Result {
	if r, ok := requireOp("nth", assertion, value); !ok {
		return r
	}
	list, ok := elements(value)
	if !ok {
		return notCollection("nth", assertion, value)
	}
	return check.Nth(list, assertion.Index, assertion.Op, assertion.Value)
}

// evaluateCompare applies assertion.Op between the value and the
// expected value.
func evaluateCompare(
	assertion Definition,
	value any,
) check.Result {
	if r, ok := requireOp("ordered", assertion, value); !ok {
		return r
	}
	return check.Ordered(value, assertion.Value, assertion.Op)
}

// shorthand returns a compare evaluator with a fixed operator.
func shorthand(op check.Op) Evaluator {
	return func(assertion Definition, value any) check.Result {
		assertion.Op = op
		return evaluateCompare(assertion, value)
	}
}

// evaluateSome checks that the value is present.
func evaluateSome(
	_ Definition,
	value any,
) check.Result {
	return check.Some(outcome.FromLookup(value, !isNil(value)))
}

// evaluateNone checks that the value is absent.
func evaluateNone(
	_ Definition,
	value any,
) check.Result {
	return check.None(outcome.FromLookup(value, !isNil(value)))
}

// evaluateOk checks that the value is not an error.
func evaluateOk(
	_ Definition,
	value any,
) check.Result {
	return check.Ok(asOutcome(value))
}

// evaluateErr checks that the value is an error. When the
// definition carries a string value, the error text is compared
// against it with assertion.Op, or equality when no operator is
// set.
func evaluateErr(
	assertion Definition,
	value any,
) check.Result {
	r := asOutcome(value)
	want, hasWant := assertion.Value.(string)
	if !hasWant {
		return check.Err(r)
	}
	if arm := check.Err(r); !arm.Passed {
		return arm
	}

	op := assertion.Op
	if op == 0 {
		op = check.Eq
	}
	if res, ok := requireOp("err", Definition{Op: op, Value: want}, value); !ok {
		return res
	}
	failure, _ := r.Failure()
	return check.ErrThat(outcome.Err[any](failure.Error()), op, want)
}

func requireOp(name string, assertion Definition, value any) (check.Result, bool) {
	if assertion.Op.Valid() {
		return check.Result{}, true
	}
	return check.Misuse(name, assertion.Op, value, assertion.Value,
		fmt.Errorf("%w: %s", check.ErrUnknownOp, assertion.Op)), false
}

func notCollection(name string, assertion Definition, value any) check.Result {
	return check.Misuse(name, assertion.Op, value, assertion.Value,
		fmt.Errorf("%w: %T", ErrNotCollection, value))
}

// orderable reports the first element that assertion.Op cannot be
// applied to, so that all and any never skip it.
func orderable(name string, assertion Definition, list []any) (check.Result, bool) {
	for _, element := range list {
		if _, err := check.Compare(assertion.Op, element, assertion.Value); err != nil {
			return check.Misuse(name, assertion.Op, element, assertion.Value, err), false
		}
	}
	return check.Result{}, true
}

// predicate applies assertion.Op to an element. Elements are
// checked by orderable first, so the error is always nil here.
func predicate(assertion Definition) func(any) bool {
	return func(element any) bool {
		ok, _ := check.Compare(assertion.Op, element, assertion.Value)
		return ok
	}
}

func describe(assertion Definition) string {
	return fmt.Sprintf("element %s %s", assertion.Op, check.Render(assertion.Value))
}

// asList returns the elements of a normalized collection. The
// elements of a map are its keys, in sorted order.
func asList(value any) ([]any, bool) {
	if list, ok := elements(value); ok {
		return list, true
	}
	m, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}
	keys := make([]any, 0, len(m))
	for _, k := range sortedKeys(m) {
		keys = append(keys, k)
	}
	return keys, true
}

func elements(value any) ([]any, bool) {
	list, ok := value.([]any)
	return list, ok
}

func asOutcome(value any) outcome.Result[any, error] {
	if err, ok := value.(error); ok && err != nil {
		return outcome.Err[any](err)
	}
	return outcome.Ok[any, error](value)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
