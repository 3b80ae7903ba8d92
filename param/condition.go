// SPDX-License-Identifier: MIT
// Package: paramspace/param
//
// condition.go: predicates over a dependee value that gate a depender.
//
// Contract:
//   • Conditions are immutable; operands are copied at construction.
//   • Type compatibility with the dependee is checked when the condition is
//     attached (ValidateCondition), never at evaluation time.

package param

import (
	"fmt"
	"strings"
)

// ConditionKind enumerates the closed set of condition variants.
type ConditionKind int

const (
	CondEquals ConditionKind = iota + 1
	CondAnyOf
)

// String returns "equal" or "any_of".
func (k ConditionKind) String() string {
	switch k {
	case CondEquals:
		return "equal"
	case CondAnyOf:
		return "any_of"
	default:
		return fmt.Sprintf("ConditionKind(%d)", int(k))
	}
}

// Condition is satisfied by some values of the dependee parameter.
type Condition interface {
	Kind() ConditionKind
	// Operands returns a copy of the values the condition compares against.
	Operands() []any
	// Test reports whether the dependee value v satisfies the condition.
	Test(v any) bool
	String() string
}

type equalsCond struct{ rhs any }

// Equals is satisfied iff the dependee value equals v.
func Equals(v any) Condition { return equalsCond{rhs: v} }

func (c equalsCond) Kind() ConditionKind { return CondEquals }
func (c equalsCond) Operands() []any     { return []any{c.rhs} }
func (c equalsCond) Test(v any) bool     { return ValuesEqual(c.rhs, v) }
func (c equalsCond) String() string      { return fmt.Sprintf("== %s", FormatValue(c.rhs)) }

type anyOfCond struct{ rhs []any }

// AnyOf is satisfied iff the dependee value is one of vs.
// Panics with ErrEmptyCondition when vs is empty.
// Panics when called without operands (an unsatisfiable gate is a programmer error).
func AnyOf(vs ...any) Condition {
	if len(vs) == 0 {
		panic(ErrEmptyCondition)
	}

	return anyOfCond{rhs: append([]any(nil), vs...)}
}

func (c anyOfCond) Kind() ConditionKind { return CondAnyOf }
func (c anyOfCond) Operands() []any     { return append([]any(nil), c.rhs...) }

func (c anyOfCond) Test(v any) bool {
	for _, r := range c.rhs {
		if ValuesEqual(r, v) {
			return true
		}
	}

	return false
}

func (c anyOfCond) String() string {
	parts := make([]string, len(c.rhs))
	for i, r := range c.rhs {
		parts[i] = FormatValue(r)
	}

	return fmt.Sprintf("in {%s}", strings.Join(parts, ","))
}

// ValidateCondition checks that every operand of cond is a legal value of dependee.
func ValidateCondition(cond Condition, dependee *Parameter) error {
	if cond == nil {
		return fmt.Errorf("nil condition on %s: %w", dependee.ID(), ErrConditionType)
	}
	for _, op := range cond.Operands() {
		if v := dependee.CheckValue(op); v != nil {
			return fmt.Errorf("operand %s for %s: %s: %w", FormatValue(op), dependee.ID(), v.Msg, ErrConditionType)
		}
	}

	return nil
}
