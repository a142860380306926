// Package check evaluates assertions without reporting them. Every
// check returns a Result describing whether the condition held and,
// when it did not, a multi-line diagnostic naming the compared
// values. The fatal counterparts that abort a test live in
// digital.vasic.totems/pkg/totem.
package check

import (
	"fmt"
	"strings"
)

// Op is a comparison operator applied between a subject value (left)
// and an expected value (right).
type Op int

const (
	// Eq holds when left == right.
	Eq Op = iota + 1
	// Ne holds when left != right.
	Ne
	// Lt holds when left < right.
	Lt
	// Le holds when left <= right.
	Le
	// Gt holds when left > right.
	Gt
	// Ge holds when left >= right.
	Ge
)

var opSymbols = map[Op]string{
	Eq: "==",
	Ne: "!=",
	Lt: "<",
	Le: "<=",
	Gt: ">",
	Ge: ">=",
}

var opNames = map[Op]string{
	Eq: "eq",
	Ne: "ne",
	Lt: "lt",
	Le: "le",
	Gt: "gt",
	Ge: "ge",
}

// Valid reports whether op is one of the six defined operators.
func (op Op) Valid() bool {
	_, ok := opSymbols[op]
	return ok
}

// String returns the operator symbol, e.g. "<=".
func (op Op) String() string {
	if s, ok := opSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Name returns the short operator name, e.g. "le".
func (op Op) Name() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return fmt.Sprintf("op%d", int(op))
}

// Ordering reports whether the operator needs an order between its
// operands, rather than equality only.
func (op Op) Ordering() bool {
	switch op {
	case Lt, Le, Gt, Ge:
		return true
	}
	return false
}

// Negate returns the operator that holds exactly when op does not,
// for totally ordered operands.
func (op Op) Negate() Op {
	switch op {
	case Eq:
		return Ne
	case Ne:
		return Eq
	case Lt:
		return Ge
	case Le:
		return Gt
	case Gt:
		return Le
	case Ge:
		return Lt
	}
	return op
}

// ParseOp parses an operator from its symbol ("<=") or its name
// ("le"). Names are case-insensitive.
func ParseOp(s string) (Op, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	for op, sym := range opSymbols {
		if trimmed == sym || trimmed == opNames[op] {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// MarshalText encodes the operator as its symbol.
func (op Op) MarshalText() ([]byte, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOp, int(op))
	}
	return []byte(op.String()), nil
}

// UnmarshalText decodes an operator symbol or name.
func (op *Op) UnmarshalText(text []byte) error {
	parsed, err := ParseOp(string(text))
	if err != nil {
		return err
	}
	*op = parsed
	return nil
}
