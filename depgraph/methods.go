// SPDX-License-Identifier: MIT
// Package: paramspace/depgraph
//
// methods.go: vertex/edge lifecycle, queries and cloning.
//
// Invariant: the graph is acyclic after every successful call. AddEdge is the
// only way to insert an edge and it runs the reachability check before commit.

package depgraph

import (
	"fmt"

	"github.com/katalvlaran/paramspace/param"
)

// AddVertex inserts a vertex if missing (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.present[id]; ok {
		return nil
	}
	g.present[id] = struct{}{}
	g.vertices = append(g.vertices, id)

	return nil
}

// HasVertex reports whether id exists (empty id ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.present[id]
	return ok
}

// Vertices returns vertex ids in insertion order.
func (g *Graph) Vertices() []string {
	return append([]string(nil), g.vertices...)
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// RemoveVertex deletes id and every incident edge.
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return fmt.Errorf("RemoveVertex(%s): %w", id, ErrVertexNotFound)
	}

	delete(g.present, id)
	for i, v := range g.vertices {
		if v == id {
			g.vertices = append(g.vertices[:i], g.vertices[i+1:]...)
			break
		}
	}

	// Rebuild the edge catalog without incident edges; adjacency follows.
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept
	g.reindex()

	return nil
}

// reindex rebuilds out/in from the edge catalog.
func (g *Graph) reindex() {
	g.out = make(map[string][]*Edge, len(g.vertices))
	g.in = make(map[string][]*Edge, len(g.vertices))
	for _, e := range g.edges {
		g.out[e.From] = append(g.out[e.From], e)
		g.in[e.To] = append(g.in[e.To], e)
	}
}

// AddEdge inserts the dependency "depender is gated on dependee by cond".
//
// Implementation:
//   - Stage 1: validate ids (non-empty, present, distinct).
//   - Stage 2: reject the edge if dependee is already reachable from depender,
//     since dependee→depender would then close a cycle (direct or transitive).
//   - Stage 3: commit to the catalog and both adjacency indexes.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound, ErrSelfLoop, ErrCycleDetected.
// Complexity: O(V + E) for the reachability check.
func (g *Graph) AddEdge(dependee, depender string, cond param.Condition) error {
	if dependee == "" || depender == "" {
		return ErrEmptyVertexID
	}
	if !g.HasVertex(dependee) {
		return fmt.Errorf("AddEdge(%s→%s): dependee %s: %w", dependee, depender, dependee, ErrVertexNotFound)
	}
	if !g.HasVertex(depender) {
		return fmt.Errorf("AddEdge(%s→%s): depender %s: %w", dependee, depender, depender, ErrVertexNotFound)
	}
	if dependee == depender {
		return fmt.Errorf("AddEdge(%s→%s): %w", dependee, depender, ErrSelfLoop)
	}
	if g.Reachable(depender, dependee) {
		return fmt.Errorf("AddEdge(%s→%s): %s already depends on %s: %w",
			dependee, depender, dependee, depender, ErrCycleDetected)
	}

	e := &Edge{From: dependee, To: depender, Cond: cond}
	g.edges = append(g.edges, e)
	g.out[dependee] = append(g.out[dependee], e)
	g.in[depender] = append(g.in[depender], e)

	return nil
}

// Reachable reports whether a directed path from → … → to exists.
// A vertex reaches itself.
// Complexity: O(V + E).
func (g *Graph) Reachable(from, to string) bool {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return false
	}
	seen := map[string]struct{}{from: {}}
	stack := []string{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == to {
			return true
		}
		for _, e := range g.out[cur] {
			if _, ok := seen[e.To]; ok {
				continue
			}
			seen[e.To] = struct{}{}
			stack = append(stack, e.To)
		}
	}

	return false
}

// Edges returns a snapshot of all edges in insertion order.
// Mutating the returned values never affects the graph.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = *e
	}

	return out
}

// EdgesInto returns the edges whose depender is id.
func (g *Graph) EdgesInto(id string) []Edge {
	return copyEdges(g.in[id])
}

// EdgesFrom returns the edges whose dependee is id.
func (g *Graph) EdgesFrom(id string) []Edge {
	return copyEdges(g.out[id])
}

// Parents returns the distinct dependees of id in edge order.
func (g *Graph) Parents(id string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, e := range g.in[id] {
		if _, ok := seen[e.From]; ok {
			continue
		}
		seen[e.From] = struct{}{}
		out = append(out, e.From)
	}

	return out
}

func copyEdges(es []*Edge) []Edge {
	if len(es) == 0 {
		return nil
	}
	out := make([]Edge, len(es))
	for i, e := range es {
		out[i] = *e
	}

	return out
}

// Clone returns a deep copy: vertices, edge catalog and adjacency.
// Conditions are immutable values and are shared.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	for _, v := range g.vertices {
		c.present[v] = struct{}{}
		c.vertices = append(c.vertices, v)
	}
	for _, e := range g.edges {
		ne := *e
		c.edges = append(c.edges, &ne)
	}
	c.reindex()

	return c
}
