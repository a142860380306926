package logging

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTB struct {
	helpers int
	lines   []string
}

func (r *recordingTB) Helper() { r.helpers++ }

func (r *recordingTB) Logf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func TestTestLogger_WritesThroughLogf(t *testing.T) {
	tb := &recordingTB{}
	logger := NewTestLogger(tb)

	logger.Debug("d")
	logger.Info("i", IntField("n", 1))
	logger.Warn("w")
	logger.Error("e")

	require.Len(t, tb.lines, 4)
	assert.Equal(t, "DEBUG d", tb.lines[0])
	assert.Equal(t, "INFO i {n=1}", tb.lines[1])
	assert.Equal(t, "WARN w", tb.lines[2])
	assert.Equal(t, "ERROR e", tb.lines[3])
	assert.Positive(t, tb.helpers)
}

func TestTestLogger_AtLevel(t *testing.T) {
	tb := &recordingTB{}
	logger := NewTestLogger(tb).AtLevel(LevelWarn)

	logger.Info("dropped")
	logger.Warn("kept")

	assert.Equal(t, []string{"WARN kept"}, tb.lines)
}

func TestTestLogger_WithFields(t *testing.T) {
	tb := &recordingTB{}
	logger := NewTestLogger(tb).WithFields(StringField("suite", "smoke"))

	logger.Info("run")

	assert.Equal(t, []string{"INFO run {suite=smoke}"}, tb.lines)
	assert.NoError(t, logger.Close())
}

func TestTestLogger_RealTB(t *testing.T) {
	var _ Logger = NewTestLogger(t)
	NewTestLogger(t).Info("visible with -v")
}
