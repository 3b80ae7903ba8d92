// SPDX-License-Identifier: MIT
// Package: paramspace/design
//
// design.go: the Design table and its transpose into assignments.
//
// Contract:
//   • A Design is bound at construction to a snapshot (Clone) of the ParamSet
//     it was generated from; later mutation of the caller's set cannot change
//     its columns.
//   • Rows hold raw, pre-trafo values, one column per parameter id. A cell
//     holding NotSampled means "absent for this row".
//   • A Design is read-only after construction and safe for concurrent readers.

package design

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/paramspace/param"
	"github.com/katalvlaran/paramspace/paramset"
)

// Sentinel errors for design construction and generation.
var (
	// ErrNilParamSet indicates a nil *paramset.ParamSet.
	ErrNilParamSet = errors.New("design: nil parameter set")

	// ErrRowWidth indicates a row whose length differs from the number of columns.
	ErrRowWidth = errors.New("design: row width does not match parameter count")

	// ErrEmptySamplingDomain indicates an unbounded, untyped or empty-levels parameter
	// was handed to a generator that must enumerate or draw from its domain.
	ErrEmptySamplingDomain = errors.New("design: empty sampling domain")

	// ErrInvalidResolution indicates a grid resolution below 1.
	ErrInvalidResolution = errors.New("design: invalid grid resolution")
)

type notSampled struct{}

func (notSampled) String() string { return "<not sampled>" }

// NotSampled marks a cell whose parameter was inactive in that row.
// It never leaves the Design: Transpose turns it into true absence.
var NotSampled any = notSampled{}

// IsNotSampled reports whether v is the NotSampled marker.
func IsNotSampled(v any) bool {
	_, ok := v.(notSampled)
	return ok
}

// Design is a tabular collection of raw sampled rows tied to one ParamSet.
type Design struct {
	id      uuid.UUID
	ps      *paramset.ParamSet
	columns []string
	rows    [][]any
}

// New binds rows to a snapshot of ps. Every row must have exactly ps.Len() cells
// in ps.IDs() order. Rows are copied.
// Errors: ErrNilParamSet, ErrRowWidth.
func New(ps *paramset.ParamSet, rows [][]any) (*Design, error) {
	if ps == nil {
		return nil, ErrNilParamSet
	}
	width := ps.Len()
	cp := make([][]any, len(rows))
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("New: row %d has %d cells, want %d: %w", i, len(r), width, ErrRowWidth)
		}
		cp[i] = append([]any(nil), r...)
	}

	return &Design{
		id:      uuid.New(),
		ps:      ps.Clone(),
		columns: ps.IDs(),
		rows:    cp,
	}, nil
}

// ID returns the random identity assigned at construction.
func (d *Design) ID() uuid.UUID { return d.id }

// ParamSet returns the bound snapshot. Callers must not mutate it.
func (d *Design) ParamSet() *paramset.ParamSet { return d.ps }

// Columns returns the column ids in order.
func (d *Design) Columns() []string { return append([]string(nil), d.columns...) }

// Len returns the number of rows.
func (d *Design) Len() int { return len(d.rows) }

// Row returns a copy of row i.
func (d *Design) Row(i int) []any { return append([]any(nil), d.rows[i]...) }

// Rows returns a deep copy of the table.
func (d *Design) Rows() [][]any {
	out := make([][]any, len(d.rows))
	for i, r := range d.rows {
		out[i] = append([]any(nil), r...)
	}

	return out
}

// Column returns the cells of column id, or false if id is not a column.
func (d *Design) Column(id string) ([]any, bool) {
	for j, c := range d.columns {
		if c != id {
			continue
		}
		out := make([]any, len(d.rows))
		for i, r := range d.rows {
			out[i] = r[j]
		}
		return out, true
	}

	return nil, false
}

// Transpose converts every row into an assignment, dropping NotSampled cells.
// With applyTrafo and a trafo on the bound set, each assignment is replaced by
// the trafo's result; the engine does not re-validate that result.
// Complexity: O(rows · columns) plus trafo cost.
func (d *Design) Transpose(applyTrafo bool) []paramset.Assignment {
	out := make([]paramset.Assignment, len(d.rows))
	for i, r := range d.rows {
		a := make(paramset.Assignment, len(r))
		for j, v := range r {
			if IsNotSampled(v) {
				continue
			}
			a[d.columns[j]] = v
		}
		if applyTrafo && d.ps.HasTrafo() {
			a = d.ps.ApplyTrafo(a)
		}
		out[i] = a
	}

	return out
}

// Validate checks every untransformed row against the bound set and returns
// the first failure annotated with its row index. Grid designs over sets with
// dependencies are expected to fail here; sampler designs never do.
func (d *Design) Validate() error {
	for i, a := range d.Transpose(false) {
		if v := d.ps.Check(a); v != nil {
			return fmt.Errorf("row %d: %w", i, v)
		}
	}

	return nil
}

// Violations returns, per row, the Violation of the untransformed assignment (nil when legal).
func (d *Design) Violations() []*param.Violation {
	rows := d.Transpose(false)
	out := make([]*param.Violation, len(rows))
	for i, a := range rows {
		out[i] = d.ps.Check(a)
	}

	return out
}
