package assertion

import (
	"fmt"
	"sync"
	"time"

	"digital.vasic.totems/pkg/check"
	"digital.vasic.totems/pkg/logging"
	"digital.vasic.totems/pkg/metrics"
)

// Engine defines the interface for assertion evaluation engines.
type Engine interface {
	// Evaluate checks a single assertion against the given
	// value.
	Evaluate(assertion Definition, value any) Result

	// EvaluateAll checks multiple assertions against a map of
	// named values. Each assertion's Target field is used as
	// the key into the values map.
	EvaluateAll(
		assertions []Definition,
		values map[string]any,
	) []Result

	// Register adds a custom evaluator for the given assertion
	// type. Returns an error if the type is already registered.
	Register(assertionType string, evaluator Evaluator) error
}

// Option configures a DefaultEngine.
type Option func(*DefaultEngine)

// WithLogger sets the logger evaluations are reported to. Loggers
// can be combined, e.g. to keep entries in the test log and show
// them on the console during a verbose run:
//
//	logger := logging.NewMultiLogger(
//		logging.NewTestLogger(t),
//		logging.NewConsoleLogger(testing.Verbose()),
//	)
//	engine := assertion.NewEngine(assertion.WithLogger(logger))
func WithLogger(logger logging.Logger) Option {
	return func(e *DefaultEngine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics sets the recorder every evaluation is counted in.
func WithMetrics(recorder metrics.Recorder) Option {
	return func(e *DefaultEngine) {
		if recorder != nil {
			e.metrics = recorder
		}
	}
}

// DefaultEngine is the standard Engine implementation. It is
// safe for concurrent use.
type DefaultEngine struct {
	mu         sync.RWMutex
	evaluators map[string]Evaluator
	logger     logging.Logger
	metrics    metrics.Recorder
}

// NewEngine creates a DefaultEngine with the built-in evaluators
// pre-registered.
func NewEngine(opts ...Option) *DefaultEngine {
	e := &DefaultEngine{
		evaluators: make(map[string]Evaluator),
		logger:     logging.NullLogger{},
		metrics:    metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.registerDefaults()
	return e
}

func (e *DefaultEngine) registerDefaults() {
	e.evaluators["contains"] = evaluateContains
	e.evaluators["all"] = evaluateAll
	e.evaluators["any"] = evaluateAny
	e.evaluators["nth"] = evaluateNth
	e.evaluators["compare"] = evaluateCompare
	e.evaluators["some"] = evaluateSome
	e.evaluators["none"] = evaluateNone
	e.evaluators["ok"] = evaluateOk
	e.evaluators["err"] = evaluateErr

	for _, op := range []check.Op{
		check.Eq, check.Ne, check.Lt, check.Le, check.Gt, check.Ge,
	} {
		e.evaluators[op.Name()] = shorthand(op)
	}
}

// Register adds a custom evaluator for the given assertion type.
// Returns an error if the type is already registered.
func (e *DefaultEngine) Register(
	assertionType string,
	evaluator Evaluator,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.evaluators[assertionType]; exists {
		return fmt.Errorf(
			"assertion type already registered: %s",
			assertionType,
		)
	}

	e.evaluators[assertionType] = evaluator
	return nil
}

// Evaluate runs a single assertion against the provided value.
// Both the value and the definition's expected value are
// normalized first.
func (e *DefaultEngine) Evaluate(
	assertion Definition,
	value any,
) Result {
	e.mu.RLock()
	evaluator, exists := e.evaluators[assertion.Type]
	e.mu.RUnlock()

	if !exists {
		res := Result{
			Type:   assertion.Type,
			Target: assertion.Target,
			Passed: false,
			Message: fmt.Sprintf(
				"unknown assertion type: %s",
				assertion.Type,
			),
		}
		e.report(res)
		return res
	}

	start := time.Now()
	assertion.Value = normalize(assertion.Value)
	value = normalize(value)
	r := evaluator(assertion, value)
	e.metrics.RecordAssertion(assertion.Type, r.Passed, time.Since(start))

	res := Result{
		Type:     assertion.Type,
		Target:   assertion.Target,
		Op:       r.Op,
		Expected: assertion.Value,
		Actual:   value,
		Passed:   r.Passed,
		Message:  r.Message,
	}
	if assertion.Message != "" {
		res.Message = assertion.Message + ": " + r.Message
	}
	e.report(res)
	return res
}

// EvaluateAll runs multiple assertions against a map of named
// values. Each assertion's Target field is used as the key into
// the values map. If a target is missing, the assertion fails.
func (e *DefaultEngine) EvaluateAll(
	assertions []Definition,
	values map[string]any,
) []Result {
	results := make([]Result, 0, len(assertions))

	for _, a := range assertions {
		value, exists := values[a.Target]
		if !exists {
			res := Result{
				Type:   a.Type,
				Target: a.Target,
				Passed: false,
				Message: fmt.Sprintf(
					"target not found: %s", a.Target,
				),
			}
			e.report(res)
			results = append(results, res)
			continue
		}

		results = append(results, e.Evaluate(a, value))
	}

	return results
}

// HasEvaluator returns true if the given assertion type has a
// registered evaluator.
func (e *DefaultEngine) HasEvaluator(
	assertionType string,
) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, exists := e.evaluators[assertionType]
	return exists
}

func (e *DefaultEngine) report(res Result) {
	fields := []logging.Field{
		logging.StringField("type", res.Type),
		logging.StringField("target", res.Target),
		logging.BoolField("passed", res.Passed),
	}
	e.logger.Debug("assertion evaluated", fields...)
	if !res.Passed {
		e.logger.Warn("assertion failed",
			append(fields, logging.StringField("message", res.Message))...)
	}
}
