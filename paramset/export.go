// SPDX-License-Identifier: MIT
// Package: paramspace/paramset
//
// export.go: read-only inspection surface.
//
// Tabular exports are generated snapshots (one record per parameter or per
// edge). Editing a record never reaches back into the set; structural change
// goes through Add/Subset/AddDependency only.

package paramset

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/paramspace/depgraph"
	"github.com/katalvlaran/paramspace/param"
)

// ParamRecord is one row of the parameter metadata table.
type ParamRecord struct {
	ID          string
	Kind        param.Kind
	Lower       float64
	Upper       float64
	Levels      []string
	NLevels     int // -1 when the domain is not finite
	Default     any
	HasDefault  bool
	Special     []any
	Tags        []string
	Bounded     bool
	Numeric     bool
	Categorical bool
	CustomCheck bool
}

// DepRecord is one row of the dependency table.
type DepRecord struct {
	Depender string
	Dependee string
	CondKind param.ConditionKind
	Operands []any
}

// IDs returns parameter ids in insertion order.
func (ps *ParamSet) IDs() []string { return append([]string(nil), ps.ids...) }

// Len returns the number of parameters.
func (ps *ParamSet) Len() int { return len(ps.ids) }

// Has reports whether id is declared.
func (ps *ParamSet) Has(id string) bool {
	_, ok := ps.params[id]
	return ok
}

// Get returns the parameter named id.
func (ps *ParamSet) Get(id string) (*param.Parameter, bool) {
	p, ok := ps.params[id]
	return p, ok
}

// Params returns the parameters in insertion order.
func (ps *ParamSet) Params() []*param.Parameter {
	out := make([]*param.Parameter, len(ps.ids))
	for i, id := range ps.ids {
		out[i] = ps.params[id]
	}

	return out
}

// IDsWithTag returns, in insertion order, the ids of parameters carrying tag.
func (ps *ParamSet) IDsWithTag(tag string) []string {
	var out []string
	for _, id := range ps.ids {
		if ps.params[id].HasTag(tag) {
			out = append(out, id)
		}
	}

	return out
}

// IsBounded reports whether every parameter is bounded.
func (ps *ParamSet) IsBounded() bool {
	for _, id := range ps.ids {
		if !ps.params[id].IsBounded() {
			return false
		}
	}

	return true
}

// HasDeps reports whether any dependency edge exists.
func (ps *ParamSet) HasDeps() bool { return ps.deps.EdgeCount() > 0 }

// Deps returns a snapshot of all dependency edges in insertion order.
func (ps *ParamSet) Deps() []depgraph.Edge { return ps.deps.Edges() }

// DepsOf returns the edges gating id.
func (ps *ParamSet) DepsOf(id string) []depgraph.Edge { return ps.deps.EdgesInto(id) }

// TopologicalOrder returns ids with every dependee before its dependers;
// unconstrained ids keep insertion order. An error means the acyclicity
// invariant was broken; it names the offending cycle.
func (ps *ParamSet) TopologicalOrder() ([]string, error) {
	order, err := ps.deps.TopologicalSort()
	if err == nil {
		return order, nil
	}
	if has, cyc := ps.deps.DetectCycle(); has {
		return nil, fmt.Errorf("TopologicalOrder: %s: %w", strings.Join(cyc, " -> "), ErrCyclicDependency)
	}

	return nil, fmt.Errorf("TopologicalOrder: %w", err)
}

// Defaults returns the declared defaults, skipping parameters without one.
func (ps *ParamSet) Defaults() Assignment {
	out := Assignment{}
	for _, id := range ps.ids {
		if d, ok := ps.params[id].Default(); ok {
			out[id] = d
		}
	}

	return out
}

// ParamRecords exports one metadata record per parameter, in insertion order.
func (ps *ParamSet) ParamRecords() []ParamRecord {
	out := make([]ParamRecord, 0, len(ps.ids))
	for _, id := range ps.ids {
		p := ps.params[id]
		n, ok := p.Cardinality()
		if !ok {
			n = -1
		}
		def, hasDef := p.Default()
		out = append(out, ParamRecord{
			ID:          id,
			Kind:        p.Kind(),
			Lower:       p.Lower(),
			Upper:       p.Upper(),
			Levels:      p.Levels(),
			NLevels:     n,
			Default:     def,
			HasDefault:  hasDef,
			Special:     p.SpecialValues(),
			Tags:        p.Tags(),
			Bounded:     p.IsBounded(),
			Numeric:     p.IsNumeric(),
			Categorical: p.IsCategorical(),
			CustomCheck: p.HasCustomCheck(),
		})
	}

	return out
}

// DepRecords exports one record per dependency edge, in insertion order.
func (ps *ParamSet) DepRecords() []DepRecord {
	edges := ps.deps.Edges()
	out := make([]DepRecord, len(edges))
	for i, e := range edges {
		out[i] = DepRecord{
			Depender: e.To,
			Dependee: e.From,
			CondKind: e.Cond.Kind(),
			Operands: e.Cond.Operands(),
		}
	}

	return out
}

// String renders the set one parameter per line, with its gates.
func (ps *ParamSet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ParamSet(%d)", len(ps.ids))
	for _, id := range ps.ids {
		fmt.Fprintf(&b, "\n  %s", ps.params[id])
		for _, e := range ps.deps.EdgesInto(id) {
			fmt.Fprintf(&b, " [if %s %s]", e.From, e.Cond)
		}
	}

	return b.String()
}
