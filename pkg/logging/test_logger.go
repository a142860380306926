package logging

import "strings"

// TB is the part of testing.TB a TestLogger writes through.
type TB interface {
	Helper()
	Logf(format string, args ...any)
}

// TestLogger routes entries to a test's log, so they are shown only
// for failing or verbose tests and are attributed to that test.
type TestLogger struct {
	tb     TB
	level  LogLevel
	fields map[string]any
}

// NewTestLogger creates a TestLogger that records every level.
func NewTestLogger(tb TB) *TestLogger {
	return &TestLogger{tb: tb, level: LevelDebug, fields: map[string]any{}}
}

// AtLevel returns a copy that drops entries below level.
func (l *TestLogger) AtLevel(level LogLevel) *TestLogger {
	return &TestLogger{tb: l.tb, level: level, fields: l.fields}
}

func (l *TestLogger) log(level LogLevel, msg string, fields []Field) {
	l.tb.Helper()
	if level < l.level {
		return
	}
	line := strings.TrimSpace(level.String() + " " + msg + " " + formatFields(l.fields, fields))
	l.tb.Logf("%s", line)
}

// Info logs an informational message.
func (l *TestLogger) Info(msg string, fields ...Field) {
	l.tb.Helper()
	l.log(LevelInfo, msg, fields)
}

// Warn logs a warning message.
func (l *TestLogger) Warn(msg string, fields ...Field) {
	l.tb.Helper()
	l.log(LevelWarn, msg, fields)
}

// Error logs an error message.
func (l *TestLogger) Error(msg string, fields ...Field) {
	l.tb.Helper()
	l.log(LevelError, msg, fields)
}

// Debug logs a debug message.
func (l *TestLogger) Debug(msg string, fields ...Field) {
	l.tb.Helper()
	l.log(LevelDebug, msg, fields)
}

// WithFields returns a TestLogger with additional default fields.
func (l *TestLogger) WithFields(fields ...Field) Logger {
	return &TestLogger{tb: l.tb, level: l.level, fields: mergeFields(l.fields, fields)}
}

// Close is a no-op.
func (l *TestLogger) Close() error { return nil }
