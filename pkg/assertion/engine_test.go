package assertion

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"digital.vasic.totems/pkg/check"
	"digital.vasic.totems/pkg/logging"
	"digital.vasic.totems/pkg/metrics"
)

func TestNewEngine_RegistersAllBuiltins(t *testing.T) {
	e := NewEngine()

	builtins := []string{
		"contains", "all", "any", "nth", "compare",
		"eq", "ne", "lt", "le", "gt", "ge",
		"some", "none", "ok", "err",
	}

	for _, name := range builtins {
		assert.True(t, e.HasEvaluator(name),
			"missing built-in evaluator: %s", name)
	}
}

func TestDefaultEngine_Register_Success(t *testing.T) {
	e := NewEngine()

	err := e.Register("custom", func(
		_ Definition, _ any,
	) check.Result {
		return check.Result{Check: "custom", Passed: true, Message: "custom ok"}
	})

	require.NoError(t, err)
	assert.True(t, e.HasEvaluator("custom"))

	r := e.Evaluate(Definition{Type: "custom", Target: "x"}, 1)
	assert.True(t, r.Passed)
	assert.Equal(t, "custom ok", r.Message)
}

func TestDefaultEngine_Register_Duplicate(t *testing.T) {
	e := NewEngine()

	err := e.Register("contains", func(
		_ Definition, _ any,
	) check.Result {
		return check.Result{Passed: true}
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestDefaultEngine_Evaluate_UnknownType(t *testing.T) {
	e := NewEngine()

	r := e.Evaluate(Definition{
		Type:   "nonexistent",
		Target: "x",
	}, "hello")

	assert.False(t, r.Passed)
	assert.Equal(t, "unknown assertion type: nonexistent", r.Message)
}

func TestDefaultEngine_Evaluate_SetsFields(t *testing.T) {
	e := NewEngine()

	r := e.Evaluate(Definition{
		Type:   "lt",
		Target: "count",
		Value:  5,
	}, int64(3))

	assert.True(t, r.Passed)
	assert.Equal(t, "lt", r.Type)
	assert.Equal(t, "count", r.Target)
	assert.Equal(t, check.Lt, r.Op)
	assert.Equal(t, 3.0, r.Actual)
	assert.Equal(t, 5.0, r.Expected)
}

func TestDefaultEngine_Evaluate_PrefixesMessage(t *testing.T) {
	e := NewEngine()

	r := e.Evaluate(Definition{
		Type:    "gt",
		Target:  "count",
		Value:   5,
		Message: "too few rows",
	}, 3)

	assert.False(t, r.Passed)
	assert.Equal(t,
		"too few rows: assertion failed: `(left > right)`\n  left: `3`,\n right: `5`\n",
		r.Message)
}

func TestDefaultEngine_EvaluateAll(t *testing.T) {
	e := NewEngine()

	assertions := []Definition{
		{Type: "contains", Target: "names", Value: "bob"},
		{Type: "nth", Target: "names", Index: 0, Op: check.Eq, Value: "alice"},
		{Type: "ge", Target: "missing", Value: 1},
	}
	values := map[string]any{
		"names": []string{"alice", "bob"},
	}

	results := e.EvaluateAll(assertions, values)
	require.Len(t, results, 3)

	assert.True(t, results[0].Passed)
	assert.True(t, results[1].Passed)
	assert.False(t, results[2].Passed)
	assert.Equal(t, "target not found: missing", results[2].Message)
}

func TestDefaultEngine_ConcurrentUse(t *testing.T) {
	e := NewEngine()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("custom_%d", i)
			assert.NoError(t, e.Register(name, evaluateSome))
			r := e.Evaluate(Definition{Type: name, Target: "x"}, i)
			assert.True(t, r.Passed)
		}(i)
	}
	wg.Wait()
}

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Info(msg string, fields ...logging.Field)  { m.Called(msg, fields) }
func (m *mockLogger) Warn(msg string, fields ...logging.Field)  { m.Called(msg, fields) }
func (m *mockLogger) Error(msg string, fields ...logging.Field) { m.Called(msg, fields) }
func (m *mockLogger) Debug(msg string, fields ...logging.Field) { m.Called(msg, fields) }

func (m *mockLogger) WithFields(fields ...logging.Field) logging.Logger {
	return m
}

func (m *mockLogger) Close() error { return nil }

func TestDefaultEngine_LogsEvaluations(t *testing.T) {
	logger := &mockLogger{}
	logger.On("Debug", "assertion evaluated", mock.Anything).Twice()
	logger.On("Warn", "assertion failed", mock.MatchedBy(func(fields []logging.Field) bool {
		return len(fields) == 4 &&
			fields[0] == logging.StringField("type", "eq") &&
			fields[1] == logging.StringField("target", "x")
	})).Once()

	e := NewEngine(WithLogger(logger))
	e.Evaluate(Definition{Type: "eq", Target: "x", Value: 1}, 1)
	e.Evaluate(Definition{Type: "eq", Target: "x", Value: 1}, 2)

	logger.AssertExpectations(t)
}

func TestWithLogger_IgnoresNil(t *testing.T) {
	e := NewEngine(WithLogger(nil))
	assert.Equal(t, logging.NullLogger{}, e.logger)
}

func TestDefaultEngine_RecordsMetrics(t *testing.T) {
	counters := metrics.NewCounters()
	e := NewEngine(WithMetrics(counters))

	e.EvaluateAll([]Definition{
		{Type: "lt", Target: "n", Value: 5},
		{Type: "lt", Target: "n", Value: 1},
		{Type: "some", Target: "n"},
		{Type: "nope", Target: "n"},
		{Type: "some", Target: "missing"},
	}, map[string]any{"n": 3})

	assert.Equal(t, 1, counters.Get("lt").Passed)
	assert.Equal(t, 1, counters.Get("lt").Failed)
	assert.Equal(t, 1, counters.Get("some").Passed)
	assert.Equal(t, []string{"lt", "some"}, counters.Types())
}

func TestDefaultEngine_MultiLogger(t *testing.T) {
	var console bytes.Buffer
	logger := logging.NewMultiLogger(
		logging.NewTestLogger(t),
		logging.NewConsoleLoggerTo(&console, logging.LevelWarn),
	)
	e := NewEngine(WithLogger(logger))

	e.Evaluate(Definition{Type: "eq", Target: "ok", Value: 1}, 1)
	assert.Empty(t, console.String())

	e.Evaluate(Definition{Type: "eq", Target: "broken", Value: 1}, 2)
	assert.Contains(t, console.String(), "assertion failed")
	assert.Contains(t, console.String(), "target=broken")
	assert.NoError(t, logger.Close())
}
