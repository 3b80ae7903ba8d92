// SPDX-License-Identifier: MIT
// Package: paramspace/sampler
//
// joint.go: independent composition of samplers over disjoint parameters.
//
// Contract:
//   • Bound parameter sets must be pairwise disjoint (ErrSamplerOverlap).
//   • With a context set, no dependency edge may join parameters owned by
//     different samplers (ErrDependentSamplers). Edges inside one member
//     (e.g. a Hierarchical member) are allowed.
//   • Rows are the column union of the members' rows, in member order.

package sampler

import (
	"fmt"

	"github.com/katalvlaran/paramspace/design"
	"github.com/katalvlaran/paramspace/paramset"
)

// Joint draws each member independently and concatenates their columns.
type Joint struct {
	members []Sampler
	ps      *paramset.ParamSet
}

var _ Sampler = (*Joint)(nil)

// NewJoint composes samplers. ctx, if non-nil, is the ParamSet whose
// dependency edges are checked for independence; it is not otherwise used.
// Errors: ErrNilSampler, ErrSamplerOverlap, ErrDependentSamplers.
// Complexity: O(P + E(ctx)).
func NewJoint(ctx *paramset.ParamSet, samplers ...Sampler) (*Joint, error) {
	owner := make(map[string]int)
	union, _ := paramset.New()
	for i, s := range samplers {
		if s == nil {
			return nil, fmt.Errorf("NewJoint: member %d: %w", i, ErrNilSampler)
		}
		for _, id := range s.ParamSet().IDs() {
			if j, dup := owner[id]; dup {
				return nil, fmt.Errorf("NewJoint: %s bound by members %d and %d: %w", id, j, i, ErrSamplerOverlap)
			}
			owner[id] = i
		}
		if err := union.AddSet(s.ParamSet().Clone()); err != nil {
			return nil, fmt.Errorf("NewJoint: %w", err)
		}
	}
	if ctx != nil {
		for _, e := range ctx.Deps() {
			oi, ok1 := owner[e.From]
			oj, ok2 := owner[e.To]
			if ok1 && ok2 && oi != oj {
				return nil, fmt.Errorf("NewJoint: %s depends on %s: %w", e.To, e.From, ErrDependentSamplers)
			}
		}
	}

	return &Joint{members: append([]Sampler(nil), samplers...), ps: union}, nil
}

func (j *Joint) sealed() {}

// ParamSet returns the union of the members' sets.
func (j *Joint) ParamSet() *paramset.ParamSet { return j.ps }

// Members returns the composed samplers.
func (j *Joint) Members() []Sampler { return append([]Sampler(nil), j.members...) }

// Sample draws n rows from every member and joins them column-wise.
func (j *Joint) Sample(n int) (*design.Design, error) {
	if n < 0 {
		return nil, fmt.Errorf("Joint.Sample(%d): %w", n, ErrNegativeSize)
	}
	rows := make([][]any, n)
	for i := range rows {
		rows[i] = make([]any, 0, j.ps.Len())
	}
	for _, m := range j.members {
		d, err := m.Sample(n)
		if err != nil {
			return nil, err
		}
		for i := range rows {
			rows[i] = append(rows[i], d.Row(i)...)
		}
	}

	return design.New(j.ps, rows)
}
