package check

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOp_Strings(t *testing.T) {
	tests := []struct {
		op       Op
		symbol   string
		name     string
		ordering bool
		negated  Op
	}{
		{Eq, "==", "eq", false, Ne},
		{Ne, "!=", "ne", false, Eq},
		{Lt, "<", "lt", true, Ge},
		{Le, "<=", "le", true, Gt},
		{Gt, ">", "gt", true, Le},
		{Ge, ">=", "ge", true, Lt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.op.Valid())
			assert.Equal(t, tt.symbol, tt.op.String())
			assert.Equal(t, tt.name, tt.op.Name())
			assert.Equal(t, tt.ordering, tt.op.Ordering())
			assert.Equal(t, tt.negated, tt.op.Negate())
		})
	}
}

func TestOp_Invalid(t *testing.T) {
	var op Op
	assert.False(t, op.Valid())
	assert.Equal(t, "Op(0)", op.String())

	_, err := op.MarshalText()
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestParseOp(t *testing.T) {
	for input, want := range map[string]Op{
		"==": Eq, "eq": Eq, "EQ": Eq, " ne ": Ne, "!=": Ne,
		"<": Lt, "lt": Lt, "<=": Le, "Le": Le,
		">": Gt, "gt": Gt, ">=": Ge, "ge": Ge,
	} {
		got, err := ParseOp(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseOp("=~")
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestOp_JSON(t *testing.T) {
	type wrapper struct {
		Op Op `json:"op"`
	}

	data, err := json.Marshal(wrapper{Op: Le})
	require.NoError(t, err)
	assert.JSONEq(t, `{"op": "<="}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"op": "gt"}`), &w))
	assert.Equal(t, Gt, w.Op)

	assert.Error(t, json.Unmarshal([]byte(`{"op": "approx"}`), &w))
}
