// SPDX-License-Identifier: MIT
// Package: paramspace/depgraph
//
// types.go: Edge, Graph, sentinel errors and the NewGraph constructor.
//
// Storage:
//   • vertices keeps insertion order; it is the tie-break for every enumeration.
//   • out[dependee] and in[depender] index the same *Edge values, so an edge is
//     removed from both sides or from neither.
//
// Concurrency:
//   • Graph is NOT safe for concurrent mutation. Owners hand out Clone()s to
//     concurrent readers instead of sharing one instance.

package depgraph

import (
	"errors"

	"github.com/katalvlaran/paramspace/param"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that an empty vertex id was supplied.
	ErrEmptyVertexID = errors.New("depgraph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("depgraph: vertex not found")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("depgraph: self-dependency not allowed")

	// ErrCycleDetected indicates that an edge would close (or a traversal found) a directed cycle.
	ErrCycleDetected = errors.New("depgraph: cycle detected")
)

// Visitation colours for depth-first traversals.
const (
	white = iota // not yet visited
	gray         // on the recursion stack
	black        // fully explored
)

// Edge is a directed dependency: From is the dependee, To the depender.
// Cond gates To on the value of From.
type Edge struct {
	From string
	To   string
	Cond param.Condition
}

// Graph is an ordered directed acyclic graph of parameter ids.
type Graph struct {
	vertices []string
	present  map[string]struct{}
	edges    []*Edge            // insertion order
	out      map[string][]*Edge // dependee → edges
	in       map[string][]*Edge // depender → edges
}

// NewGraph returns an empty graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		present: make(map[string]struct{}),
		out:     make(map[string][]*Edge),
		in:      make(map[string][]*Edge),
	}
}
