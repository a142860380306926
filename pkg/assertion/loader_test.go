package assertion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.totems/pkg/check"
	"digital.vasic.totems/pkg/logging"
)

func TestLoadDefinitions(t *testing.T) {
	suite, err := LoadDefinitions(filepath.Join("testdata", "suite.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "1", suite.Version)
	require.Len(t, suite.Assertions, 5)
	assert.Equal(t, Definition{
		Type:   "nth",
		Target: "names",
		Index:  0,
		Op:     check.Eq,
		Value:  "alice",
	}, suite.Assertions[1])
	assert.Equal(t, check.Le, suite.Assertions[4].Op)
	assert.Equal(t, "latency budget", suite.Assertions[3].Message)
}

func TestSuite_RunAgainstJSONValues(t *testing.T) {
	suite, err := LoadDefinitions(filepath.Join("testdata", "suite.yaml"))
	require.NoError(t, err)
	values, err := LoadValues(filepath.Join("testdata", "values.json"))
	require.NoError(t, err)

	engine := NewEngine(WithLogger(logging.NewTestLogger(t).AtLevel(logging.LevelWarn)))
	for _, r := range suite.Run(engine, values) {
		assert.True(t, r.Passed, "%s on %s: %s", r.Type, r.Target, r.Message)
	}
}

func TestParseDefinitions_JSON(t *testing.T) {
	suite, err := ParseDefinitions([]byte(`{
		"version": "1",
		"assertions": [{"type": "gt", "target": "n", "value": 1}]
	}`))
	require.NoError(t, err)
	require.Len(t, suite.Assertions, 1)
	assert.Equal(t, 1, suite.Assertions[0].Value)
}

func TestParseDefinitions_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"malformed", "assertions: [", "parse definitions"},
		{"missing type", "assertions:\n  - target: x\n", "assertion 0: missing type"},
		{"missing target", "assertions:\n  - type: some\n", "assertion 0 (some): missing target"},
		{"unknown op", "assertions:\n  - type: nth\n    target: x\n    op: approx\n", "unknown operator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefinitions([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadDefinitions_MissingFile(t *testing.T) {
	_, err := LoadDefinitions(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadValues_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: [1"), 0o600))

	_, err := LoadValues(path)
	assert.Error(t, err)
}
