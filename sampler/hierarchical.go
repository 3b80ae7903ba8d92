// SPDX-License-Identifier: MIT
// Package: paramspace/sampler
//
// hierarchical.go: dependency-aware sampling over a whole ParamSet.
//
// Per row:
//   1) Visit parameters in topological order (dependees first).
//   2) If every edge gating the parameter is satisfied by the values already
//      drawn in this row, draw from its 1D sampler; otherwise store
//      design.NotSampled, which Transpose turns into absence.
//
// A gate on a NotSampled dependee is unmet, so inactivity propagates down
// dependency chains.
//
// Complexity: O(n · (P + E)) draws and condition tests.

package sampler

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/paramspace/depgraph"
	"github.com/katalvlaran/paramspace/design"
	"github.com/katalvlaran/paramspace/paramset"
)

// Hierarchical samples a ParamSet honoring its dependency edges.
type Hierarchical struct {
	ps     *paramset.ParamSet
	order  []int // column indexes in topological order
	gates  [][]depgraph.Edge
	col    map[string]int
	draws  []Sampler1D // by column
	logger *slog.Logger
}

var _ Sampler = (*Hierarchical)(nil)

// NewHierarchical binds one 1D sampler per parameter of ps. Each sampler must
// be bound to the very parameter declared in ps. ps is snapshotted.
// Of opts only WithLogger applies: values come from each member's own RNG.
// Errors: ErrNilSampler, ErrSamplerOverlap, ErrSamplerMismatch,
// ErrMissingSampler, paramset.ErrParameterNotFound.
func NewHierarchical(ps *paramset.ParamSet, samplers []Sampler1D, opts ...Option) (*Hierarchical, error) {
	return newHierarchical(ps, samplers, newConfig(opts...))
}

func newHierarchical(ps *paramset.ParamSet, samplers []Sampler1D, cfg config) (*Hierarchical, error) {
	if ps == nil {
		return nil, design.ErrNilParamSet
	}
	snap := ps.Clone()
	ids := snap.IDs()
	h := &Hierarchical{
		ps:     snap,
		gates:  make([][]depgraph.Edge, len(ids)),
		col:    make(map[string]int, len(ids)),
		draws:  make([]Sampler1D, len(ids)),
		logger: cfg.logger,
	}
	for i, id := range ids {
		h.col[id] = i
		h.gates[i] = snap.DepsOf(id)
	}

	for i, s := range samplers {
		if s == nil {
			return nil, fmt.Errorf("NewHierarchical: sampler %d: %w", i, ErrNilSampler)
		}
		id := s.Param().ID()
		c, ok := h.col[id]
		if !ok {
			return nil, fmt.Errorf("NewHierarchical: %s: %w", id, paramset.ErrParameterNotFound)
		}
		if h.draws[c] != nil {
			return nil, fmt.Errorf("NewHierarchical: %s: %w", id, ErrSamplerOverlap)
		}
		if declared, _ := snap.Get(id); declared != s.Param() {
			return nil, fmt.Errorf("NewHierarchical: %s: %w", id, ErrSamplerMismatch)
		}
		h.draws[c] = s
	}
	for i, id := range ids {
		if h.draws[i] == nil {
			return nil, fmt.Errorf("NewHierarchical: %s: %w", id, ErrMissingSampler)
		}
	}

	topo, err := snap.TopologicalOrder()
	if err != nil {
		return nil, fmt.Errorf("NewHierarchical: %w", err)
	}
	h.order = make([]int, len(topo))
	for i, id := range topo {
		h.order[i] = h.col[id]
	}

	return h, nil
}

func (h *Hierarchical) sealed() {}

// ParamSet returns the snapshot Designs are bound to.
func (h *Hierarchical) ParamSet() *paramset.ParamSet { return h.ps }

// Sample draws n rows, leaving gated-out parameters as design.NotSampled.
func (h *Hierarchical) Sample(n int) (*design.Design, error) {
	if n < 0 {
		return nil, fmt.Errorf("Hierarchical.Sample(%d): %w", n, ErrNegativeSize)
	}
	rows := make([][]any, n)
	skipped := 0
	for i := range rows {
		row := make([]any, len(h.draws))
		for _, c := range h.order {
			if !h.active(row, c) {
				row[c] = design.NotSampled
				skipped++
				continue
			}
			v, err := h.draws[c].Draw()
			if err != nil {
				return nil, err
			}
			row[c] = v
		}
		rows[i] = row
	}
	h.logger.Debug("hierarchical sample", "rows", n, "params", len(h.draws), "gated_cells", skipped)

	return design.New(h.ps, rows)
}

// active reports whether every gate on column c holds for the partial row.
func (h *Hierarchical) active(row []any, c int) bool {
	for _, e := range h.gates[c] {
		v := row[h.col[e.From]]
		if design.IsNotSampled(v) || !e.Cond.Test(v) {
			return false
		}
	}

	return true
}
