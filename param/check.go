// SPDX-License-Identifier: MIT
// Package: paramspace/param
//
// check.go: single-parameter value validation.
//
// Order of evaluation (first failure wins):
//   (a) special values pass unconditionally;
//   (b) the Go type must match the Kind;
//   (c) numeric values must lie in [lower, upper];
//   (d) categorical values must be one of the levels;
//   (e) the custom check, if any, runs last.

package param

import (
	"fmt"
	"math"
	"strings"
)

// CheckValue validates v against p and returns the first Violation, or nil.
// Complexity: O(|special| + |levels|) plus the cost of the custom check.
func (p *Parameter) CheckValue(v any) *Violation {
	// (a) special values short-circuit everything else.
	for _, s := range p.special {
		if ValuesEqual(s, v) {
			return nil
		}
	}

	// (b)-(d) kind specific checks.
	switch p.kind {
	case Integer:
		f, ok := AsFloat(v)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return NewViolation(TypeViolation, p.id, "must be an integer, got %s", describe(v))
		}
		if f < p.lower || f > p.upper {
			return NewViolation(BoundsViolation, p.id, "element %v is not in [%g, %g]", v, p.lower, p.upper)
		}
	case Real:
		f, ok := AsFloat(v)
		if !ok || math.IsNaN(f) {
			return NewViolation(TypeViolation, p.id, "must be a number, got %s", describe(v))
		}
		if f < p.lower || f > p.upper {
			return NewViolation(BoundsViolation, p.id, "element %v is not in [%g, %g]", v, p.lower, p.upper)
		}
	case Categorical:
		s, ok := v.(string)
		if !ok {
			return NewViolation(TypeViolation, p.id, "must be a string, got %s", describe(v))
		}
		if !p.hasLevel(s) {
			return NewViolation(LevelViolation, p.id, "must be element of set {%s}, but is %q", strings.Join(p.levels, ","), s)
		}
	case Boolean:
		if _, ok := v.(bool); !ok {
			return NewViolation(TypeViolation, p.id, "must be a bool, got %s", describe(v))
		}
	}

	// (e) custom predicate.
	if p.check != nil {
		if err := p.check(v); err != nil {
			return NewViolation(CustomCheckFailure, p.id, "%v", err)
		}
	}

	return nil
}

// Test reports whether v is a legal value for p.
func (p *Parameter) Test(v any) bool { return p.CheckValue(v) == nil }

// Assert returns a non-nil error wrapping the Violation when v is illegal.
func (p *Parameter) Assert(v any) error {
	if viol := p.CheckValue(v); viol != nil {
		return fmt.Errorf("assert %s: %w", p.id, viol)
	}

	return nil
}

func (p *Parameter) hasLevel(s string) bool {
	for _, l := range p.levels {
		if l == s {
			return true
		}
	}

	return false
}

// describe renders a value with its dynamic type for violation messages.
func describe(v any) string {
	if v == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%v (%T)", v, v)
}
