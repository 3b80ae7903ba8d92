// SPDX-License-Identifier: MIT
// Package: paramspace/paramset
//
// check.go: dependency-aware validation of assignments and the values slot.
//
// Order of evaluation (deterministic, first violation wins):
//   1. For each declared id present in the assignment, in insertion order:
//      a. the parameter's own CheckValue;
//      b. every edge gating this id: the dependee must be present and satisfy
//         the condition, else DependencyUnmet attributed to this id.
//   2. Ids present but undeclared, in lexicographic order: UnknownParameterID.
// Absent parameters are always legal.

package paramset

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/paramspace/depgraph"
	"github.com/katalvlaran/paramspace/param"
)

// Check validates a and returns the first Violation, or nil on success.
// Complexity: O(|a| + E) plus per-parameter check costs.
func (ps *ParamSet) Check(a Assignment) *param.Violation {
	return ps.check(a, ps.deps)
}

// Test reports whether a is legal.
func (ps *ParamSet) Test(a Assignment) bool { return ps.Check(a) == nil }

// Assert returns an error wrapping the first Violation, or nil.
func (ps *ParamSet) Assert(a Assignment) error {
	if v := ps.Check(a); v != nil {
		return fmt.Errorf("assert: %w", v)
	}

	return nil
}

// check runs the validation against an explicit graph so AddDependency can
// pre-flight a candidate graph before committing it.
func (ps *ParamSet) check(a Assignment, g *depgraph.Graph) *param.Violation {
	for _, id := range ps.ids {
		v, present := a[id]
		if !present {
			continue
		}
		if viol := ps.params[id].CheckValue(v); viol != nil {
			return viol
		}
		for _, e := range g.EdgesInto(id) {
			dv, ok := a[e.From]
			if !ok {
				return param.NewViolation(param.DependencyUnmet, id,
					"can only be set if %s %s, but %s is absent", e.From, e.Cond, e.From)
			}
			if !e.Cond.Test(dv) {
				return param.NewViolation(param.DependencyUnmet, id,
					"can only be set if %s %s, but %s = %s", e.From, e.Cond, e.From, param.FormatValue(dv))
			}
		}
	}

	var unknown []string
	for id := range a {
		if _, ok := ps.params[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return param.NewViolation(param.UnknownParameterID, unknown[0], "is not declared in the parameter set")
	}

	return nil
}

// Values returns a copy of the current assignment, or nil when unset.
func (ps *ParamSet) Values() Assignment { return ps.values.Clone() }

// HasValues reports whether a current assignment is stored.
func (ps *ParamSet) HasValues() bool { return ps.values != nil }

// SetValues replaces the current assignment after a full Check.
// On failure the stored values are unchanged and the Violation is returned wrapped.
func (ps *ParamSet) SetValues(a Assignment) error {
	if v := ps.Check(a); v != nil {
		return fmt.Errorf("SetValues: %w", v)
	}
	if a == nil {
		a = Assignment{}
	}
	ps.values = a.Clone()

	return nil
}

// ClearValues removes the current assignment.
func (ps *ParamSet) ClearValues() { ps.values = nil }
