// SPDX-License-Identifier: MIT
// Package: paramspace/paramset
//
// methods.go: aggregation and structural mutation.
//
// Every mutator either commits fully or leaves the receiver untouched.

package paramset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/paramspace/depgraph"
	"github.com/katalvlaran/paramspace/param"
)

// Add appends p. Ids are never renamed.
// Errors: ErrNilParameter, ErrDuplicateParameterID.
// Complexity: O(1) amortized.
func (ps *ParamSet) Add(p *param.Parameter) error {
	if p == nil {
		return ErrNilParameter
	}
	if _, dup := ps.params[p.ID()]; dup {
		return fmt.Errorf("Add(%s): %w", p.ID(), ErrDuplicateParameterID)
	}
	if err := ps.deps.AddVertex(p.ID()); err != nil {
		return fmt.Errorf("Add(%s): %w", p.ID(), err)
	}
	ps.params[p.ID()] = p
	ps.ids = append(ps.ids, p.ID())

	return nil
}

// AddSet merges every parameter, dependency edge and stored value of other
// into ps. The merge is atomic: on a duplicate id nothing is added.
// The receiver's trafo is kept; other's trafo is not inherited.
// Complexity: O(|other| + |E(other)|).
func (ps *ParamSet) AddSet(other *ParamSet) error {
	if other == nil {
		return ErrNilParameter
	}
	for _, id := range other.ids {
		if _, dup := ps.params[id]; dup {
			return fmt.Errorf("AddSet: %s: %w", id, ErrDuplicateParameterID)
		}
	}
	// Snapshot first so AddSet(ps) on an alias cannot observe its own growth.
	ids := append([]string(nil), other.ids...)
	edges := other.deps.Edges()
	for _, id := range ids {
		if err := ps.Add(other.params[id]); err != nil {
			return err
		}
	}
	for _, e := range edges {
		// Both endpoints are fresh vertices of a DAG; this cannot cycle.
		if err := ps.deps.AddEdge(e.From, e.To, e.Cond); err != nil {
			return fmt.Errorf("AddSet: %w", err)
		}
	}
	if other.values != nil {
		if ps.values == nil {
			ps.values = make(Assignment, len(other.values))
		}
		for k, v := range other.values {
			ps.values[k] = v
		}
	}

	return nil
}

// Subset keeps only the named ids, in their original order, and every
// dependency edge whose endpoints both survive. Edges touching a removed id
// are dropped silently, as are stored values of removed ids.
// This mutates ps in place; Clone first for independent use.
// Errors: ErrParameterNotFound (no mutation happens).
func (ps *ParamSet) Subset(ids ...string) error {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := ps.params[id]; !ok {
			return fmt.Errorf("Subset: %s: %w", id, ErrParameterNotFound)
		}
		keep[id] = struct{}{}
	}

	kept := make([]string, 0, len(keep))
	for _, id := range ps.ids {
		if _, ok := keep[id]; ok {
			kept = append(kept, id)
			continue
		}
		delete(ps.params, id)
		delete(ps.values, id)
		if err := ps.deps.RemoveVertex(id); err != nil {
			return fmt.Errorf("Subset: %w", err)
		}
	}
	ps.ids = kept

	return nil
}

// Repeat builds a set of n independent copies of p with ids "<id>_rep_<i>"
// (i = 1..n), all sharing the group tag RepTag(p.ID()). n == 0 yields an empty set.
// Errors: ErrNilParameter, ErrInvalidRepeat.
func Repeat(p *param.Parameter, n int) (*ParamSet, error) {
	if p == nil {
		return nil, ErrNilParameter
	}
	if n < 0 {
		return nil, fmt.Errorf("Repeat(%s, %d): %w", p.ID(), n, ErrInvalidRepeat)
	}
	ps, _ := New()
	tag := RepTag(p.ID())
	for i := 1; i <= n; i++ {
		if err := ps.Add(p.WithID(fmt.Sprintf("%s_rep_%d", p.ID(), i), tag)); err != nil {
			return nil, err
		}
	}

	return ps, nil
}

// RepTag returns the group tag Repeat attaches to the copies of id.
func RepTag(id string) string { return id + "_rep" }

// AddDependency gates depender on dependee's value satisfying cond.
//
// Implementation:
//   - Stage 1: both ids must exist and differ; cond must be type-compatible with dependee.
//   - Stage 2: insert into a cloned graph (cycle check runs there).
//   - Stage 3: re-validate stored values against the new graph, then commit.
//
// Errors: ErrParameterNotFound, ErrSelfDependency, param.ErrConditionType,
// ErrCyclicDependency, ErrValuesInvalidated.
func (ps *ParamSet) AddDependency(depender, dependee string, cond param.Condition) error {
	if _, ok := ps.params[depender]; !ok {
		return fmt.Errorf("AddDependency: depender %s: %w", depender, ErrParameterNotFound)
	}
	dp, ok := ps.params[dependee]
	if !ok {
		return fmt.Errorf("AddDependency: dependee %s: %w", dependee, ErrParameterNotFound)
	}
	if depender == dependee {
		return fmt.Errorf("AddDependency(%s): %w", depender, ErrSelfDependency)
	}
	if err := param.ValidateCondition(cond, dp); err != nil {
		return fmt.Errorf("AddDependency(%s on %s): %w", depender, dependee, err)
	}

	next := ps.deps.Clone()
	if err := next.AddEdge(dependee, depender, cond); err != nil {
		if errors.Is(err, depgraph.ErrCycleDetected) {
			return fmt.Errorf("AddDependency(%s on %s): %w", depender, dependee, ErrCyclicDependency)
		}
		return fmt.Errorf("AddDependency(%s on %s): %w", depender, dependee, err)
	}
	if ps.values != nil {
		if v := ps.check(ps.values, next); v != nil {
			return fmt.Errorf("AddDependency(%s on %s): %w: %w", depender, dependee, ErrValuesInvalidated, v)
		}
	}
	ps.deps = next

	return nil
}

// Clone returns an independent ParamSet. Parameters are immutable and shared;
// the id order, dependency graph and values are copied. The trafo function
// value is carried over.
// Complexity: O(V + E).
func (ps *ParamSet) Clone() *ParamSet {
	c := &ParamSet{
		ids:    append([]string(nil), ps.ids...),
		params: make(map[string]*param.Parameter, len(ps.params)),
		deps:   ps.deps.Clone(),
		trafo:  ps.trafo,
		values: ps.values.Clone(),
	}
	for id, p := range ps.params {
		c.params[id] = p
	}

	return c
}

// SetTrafo installs (or, with nil, removes) the trafo.
func (ps *ParamSet) SetTrafo(fn Trafo) { ps.trafo = fn }

// Trafo returns the installed trafo, or nil.
func (ps *ParamSet) Trafo() Trafo { return ps.trafo }

// HasTrafo reports whether a trafo is installed.
func (ps *ParamSet) HasTrafo() bool { return ps.trafo != nil }

// ApplyTrafo runs the trafo on a copy of a. Without a trafo it returns the copy unchanged.
func (ps *ParamSet) ApplyTrafo(a Assignment) Assignment {
	cp := a.Clone()
	if ps.trafo == nil {
		return cp
	}

	return ps.trafo(cp, ps)
}
