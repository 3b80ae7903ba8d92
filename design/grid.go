// SPDX-License-Identifier: MIT
// Package: paramspace/design
//
// grid.go: deterministic Cartesian-product designs.
//
// Canonical model:
//   • Categorical/Boolean parameters contribute their full level set.
//   • Bounded numeric parameters contribute `resolution` evenly spaced points
//     spanning [lower, upper]; Integer points are rounded and de-duplicated.
//   • Points failing the parameter's custom check are dropped; an axis left
//     empty is an ErrEmptySamplingDomain.
//   • Rows are emitted row-major: the first parameter varies slowest.
//
// Known relaxation:
//   • Dependency edges are NOT applied. Rows may hold values for parameters
//     whose gate is unmet; callers needing strict compliance run Check
//     (or Design.Violations) afterwards.
//
// Complexity:
//   • Time/Space: O(Π |domain_i| · P) for P parameters.

package design

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/paramspace/param"
	"github.com/katalvlaran/paramspace/paramset"
)

const methodGrid = "Grid"

// GridOption customizes Grid.
type GridOption func(*gridConfig)

type gridConfig struct {
	perParam map[string]int
	logger   *slog.Logger
}

// WithParamResolution overrides the resolution for one numeric parameter.
// Panics if r < 1.
func WithParamResolution(id string, r int) GridOption {
	if r < 1 {
		panic(fmt.Sprintf("design: WithParamResolution(%q, %d)", id, r))
	}
	return func(c *gridConfig) {
		c.perParam[id] = r
	}
}

// WithGridLogger sends a Debug event per generated grid to l. Panics on nil.
func WithGridLogger(l *slog.Logger) GridOption {
	if l == nil {
		panic("design: WithGridLogger(nil)")
	}
	return func(c *gridConfig) {
		c.logger = l
	}
}

// Grid enumerates the Cartesian product of every parameter's grid points.
// resolution applies to numeric parameters without a per-parameter override
// and must then be ≥ 1. A set without parameters yields a single empty row.
//
// Errors: ErrNilParamSet, ErrEmptySamplingDomain, ErrInvalidResolution,
// paramset.ErrParameterNotFound (override for an undeclared id).
func Grid(ps *paramset.ParamSet, resolution int, opts ...GridOption) (*Design, error) {
	if ps == nil {
		return nil, ErrNilParamSet
	}
	cfg := gridConfig{perParam: make(map[string]int)}
	for _, opt := range opts {
		opt(&cfg)
	}
	for id := range cfg.perParam {
		if !ps.Has(id) {
			return nil, fmt.Errorf("%s: resolution override for %s: %w", methodGrid, id, paramset.ErrParameterNotFound)
		}
	}

	// 1) Resolve every axis before allocating any rows (fail fast).
	params := ps.Params()
	axes := make([][]any, len(params))
	total := 1
	for i, p := range params {
		r, ok := cfg.perParam[p.ID()]
		if !ok {
			r = resolution
		}
		pts, err := gridPoints(p, r)
		if err != nil {
			return nil, err
		}
		axes[i] = pts
		total *= len(pts)
	}

	// 2) Odometer enumeration, last axis fastest.
	rows := make([][]any, 0, total)
	idx := make([]int, len(axes))
	for n := 0; n < total; n++ {
		row := make([]any, len(axes))
		for j := range axes {
			row[j] = axes[j][idx[j]]
		}
		rows = append(rows, row)
		for j := len(axes) - 1; j >= 0; j-- {
			idx[j]++
			if idx[j] < len(axes[j]) {
				break
			}
			idx[j] = 0
		}
	}

	d, err := New(ps, rows)
	if err != nil {
		return nil, err
	}
	if cfg.logger != nil {
		cfg.logger.Debug("grid design generated",
			"design", d.ID().String(), "params", len(params), "rows", len(rows), "resolution", resolution)
	}

	return d, nil
}

// gridPoints returns the axis values for one parameter.
func gridPoints(p *param.Parameter, r int) ([]any, error) {
	switch p.Kind() {
	case param.Categorical, param.Boolean:
		var vals []any
		for _, v := range p.DomainValues() {
			if p.Test(v) {
				vals = append(vals, v)
			}
		}
		if len(vals) == 0 {
			return nil, fmt.Errorf("%s: %s has no legal levels: %w", methodGrid, p.ID(), ErrEmptySamplingDomain)
		}
		return vals, nil
	case param.Integer, param.Real:
		if !p.IsBounded() {
			return nil, fmt.Errorf("%s: %s is unbounded: %w", methodGrid, p.ID(), ErrEmptySamplingDomain)
		}
		if r < 1 {
			return nil, fmt.Errorf("%s: %s resolution %d: %w", methodGrid, p.ID(), r, ErrInvalidResolution)
		}
		pts := numericPoints(p, r)
		if !p.HasCustomCheck() {
			return pts, nil
		}
		kept := pts[:0]
		for _, v := range pts {
			if p.Test(v) {
				kept = append(kept, v)
			}
		}
		if len(kept) == 0 {
			return nil, fmt.Errorf("%s: %s has no grid point passing its check: %w", methodGrid, p.ID(), ErrEmptySamplingDomain)
		}
		return kept, nil
	default:
		return nil, fmt.Errorf("%s: %s is %s: %w", methodGrid, p.ID(), p.Kind(), ErrEmptySamplingDomain)
	}
}

// numericPoints spaces r points evenly over [lower, upper]; r == 1 yields lower.
func numericPoints(p *param.Parameter, r int) []any {
	lo, hi := p.Lower(), p.Upper()
	out := make([]any, 0, r)
	var lastInt int
	for i := 0; i < r; i++ {
		x := lo
		if r > 1 {
			t := float64(i) / float64(r-1)
			x = lo*(1-t) + hi*t
		}
		if i == r-1 && r > 1 {
			x = hi // exact upper bound despite rounding error
		}
		if p.Kind() == param.Real {
			out = append(out, x)
			continue
		}
		v := int(math.Round(x))
		if len(out) > 0 && v == lastInt {
			continue
		}
		lastInt = v
		out = append(out, v)
	}

	return out
}
