// SPDX-License-Identifier: MIT
// Package: paramspace/paramset
//
// types.go: ParamSet, Assignment, Trafo and sentinel errors.
//
// Ownership model:
//   • *ParamSet is a shared handle: assigning it to another variable aliases it,
//     and every alias observes later mutation.
//   • Clone() is the only way to obtain an independent copy.
//   • A ParamSet is not synchronized. Hand Clone()s to concurrent consumers.

package paramset

import (
	"errors"
	"sort"

	"github.com/katalvlaran/paramspace/depgraph"
	"github.com/katalvlaran/paramspace/param"
)

// Sentinel errors for structural operations. All are raised immediately.
var (
	// ErrDuplicateParameterID indicates Add/AddSet would introduce an id twice.
	ErrDuplicateParameterID = errors.New("paramset: duplicate parameter id")

	// ErrParameterNotFound indicates an operation referenced an undeclared id.
	ErrParameterNotFound = errors.New("paramset: parameter not found")

	// ErrSelfDependency indicates AddDependency(x, x, ...).
	ErrSelfDependency = errors.New("paramset: parameter cannot depend on itself")

	// ErrCyclicDependency indicates AddDependency would close a dependency cycle.
	ErrCyclicDependency = errors.New("paramset: cyclic dependency")

	// ErrNilParameter indicates a nil *param.Parameter was passed to Add.
	ErrNilParameter = errors.New("paramset: nil parameter")

	// ErrInvalidRepeat indicates Repeat was asked for a negative count.
	ErrInvalidRepeat = errors.New("paramset: invalid repetition count")

	// ErrValuesInvalidated indicates a structural change would make the stored values illegal.
	ErrValuesInvalidated = errors.New("paramset: change invalidates current values")
)

// Assignment maps parameter ids to values. A parameter whose dependency is not
// met must be absent, never present with a placeholder.
type Assignment map[string]any

// Clone returns a shallow copy (values themselves are not deep-copied).
func (a Assignment) Clone() Assignment {
	if a == nil {
		return nil
	}
	out := make(Assignment, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

// Has reports whether id is present.
func (a Assignment) Has(id string) bool {
	_, ok := a[id]
	return ok
}

// Keys returns the ids in lexicographic order.
func (a Assignment) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Trafo remaps an assignment after sampling. Its body is caller-supplied and
// unchecked by the engine beyond invocation; it may add, drop or retype entries.
// The owner argument is the ParamSet the assignment was sampled from.
type Trafo func(a Assignment, owner *ParamSet) Assignment

// ParamSet is an ordered aggregation of parameters with a dependency graph,
// an optional trafo and an optional current assignment.
type ParamSet struct {
	ids    []string                    // insertion order
	params map[string]*param.Parameter // id → parameter
	deps   *depgraph.Graph
	trafo  Trafo
	values Assignment // nil when unset
}

// New creates a ParamSet from params in the given order.
// Errors: ErrNilParameter, ErrDuplicateParameterID.
func New(params ...*param.Parameter) (*ParamSet, error) {
	ps := &ParamSet{
		params: make(map[string]*param.Parameter, len(params)),
		deps:   depgraph.NewGraph(),
	}
	for _, p := range params {
		if err := ps.Add(p); err != nil {
			return nil, err
		}
	}

	return ps, nil
}
