package assertion

import (
	"fmt"

	"digital.vasic.totems/pkg/check"
)

// AllPassComposite evaluates every assertion and passes only
// when all of them pass. The first failure is reported.
func AllPassComposite(
	engine Engine,
	assertions []Definition,
	values map[string]any,
) Result {
	results := engine.EvaluateAll(assertions, values)

	for _, r := range results {
		if !r.Passed {
			return Result{
				Type:   "all_pass",
				Target: r.Target,
				Passed: false,
				Message: fmt.Sprintf(
					"assertion '%s' on target '%s' failed: %s",
					r.Type, r.Target, r.Message,
				),
			}
		}
	}

	return Result{
		Type:   "all_pass",
		Passed: true,
		Message: fmt.Sprintf(
			"all %d assertions passed", len(results),
		),
	}
}

// AnyPassComposite evaluates the assertions and passes when at
// least one of them passes.
func AnyPassComposite(
	engine Engine,
	assertions []Definition,
	values map[string]any,
) Result {
	results := engine.EvaluateAll(assertions, values)

	for _, r := range results {
		if r.Passed {
			return Result{
				Type:   "any_pass",
				Target: r.Target,
				Passed: true,
				Message: fmt.Sprintf(
					"assertion '%s' on target '%s' passed",
					r.Type, r.Target,
				),
			}
		}
	}

	return Result{
		Type:   "any_pass",
		Passed: false,
		Message: fmt.Sprintf(
			"none of %d assertions passed",
			len(results),
		),
	}
}

// CompositeAllPass returns an Evaluator that runs a fixed set of
// sub-assertions against the evaluated value and requires all to
// pass.
func CompositeAllPass(
	engine Engine,
	subAssertions []Definition,
) Evaluator {
	return func(_ Definition, value any) check.Result {
		r := AllPassComposite(engine, subAssertions, fanOut(subAssertions, value))
		return check.Result{
			Check:   r.Type,
			Passed:  r.Passed,
			Actual:  value,
			Message: r.Message,
		}
	}
}

// CompositeAnyPass returns an Evaluator that runs a fixed set of
// sub-assertions against the evaluated value and requires at
// least one to pass.
func CompositeAnyPass(
	engine Engine,
	subAssertions []Definition,
) Evaluator {
	return func(_ Definition, value any) check.Result {
		r := AnyPassComposite(engine, subAssertions, fanOut(subAssertions, value))
		return check.Result{
			Check:   r.Type,
			Passed:  r.Passed,
			Actual:  value,
			Message: r.Message,
		}
	}
}

func fanOut(assertions []Definition, value any) map[string]any {
	values := make(map[string]any, len(assertions))
	for _, a := range assertions {
		values[a.Target] = value
	}
	return values
}
