// SPDX-License-Identifier: MIT
// Package: paramspace/depgraph
//
// topological.go: dependee-first ordering and cycle detection.
//
// TopologicalSort walks every vertex in insertion order and, before emitting a
// vertex, recursively emits its dependees (three-colour DFS over incoming
// edges). The result therefore keeps insertion order wherever the graph does
// not force otherwise, which makes sampler column order and tie-breaks stable.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) (recursion stack + state map)

package depgraph

import "fmt"

// topoSorter carries traversal state for one TopologicalSort call.
type topoSorter struct {
	graph *Graph
	state map[string]int
	order []string
}

// TopologicalSort returns all vertices with every dependee before its dependers.
// ErrCycleDetected is only reachable if the acyclicity invariant was broken.
func (g *Graph) TopologicalSort() ([]string, error) {
	t := &topoSorter{
		graph: g,
		state: make(map[string]int, len(g.vertices)),
		order: make([]string, 0, len(g.vertices)),
	}
	for _, v := range g.vertices {
		if t.state[v] == white {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}

	return t.order, nil
}

// visit emits the dependees of id, then id itself (post-order over in-edges).
func (t *topoSorter) visit(id string) error {
	switch t.state[id] {
	case gray:
		return fmt.Errorf("TopologicalSort: at %s: %w", id, ErrCycleDetected)
	case black:
		return nil
	}
	t.state[id] = gray
	for _, e := range t.graph.in[id] {
		if err := t.visit(e.From); err != nil {
			return err
		}
	}
	t.state[id] = black
	t.order = append(t.order, id)

	return nil
}

// DetectCycle searches for a directed cycle along dependee→depender edges.
// It returns the closed cycle path [v0, …, v0] of the first cycle found.
func (g *Graph) DetectCycle() (bool, []string) {
	state := make(map[string]int, len(g.vertices))
	var path []string
	var cycle []string

	var dfs func(id string) bool
	dfs = func(id string) bool {
		state[id] = gray
		path = append(path, id)
		for _, e := range g.out[id] {
			switch state[e.To] {
			case white:
				if dfs(e.To) {
					return true
				}
			case gray:
				// Back-edge: slice the stack from the first occurrence of e.To.
				for i, v := range path {
					if v == e.To {
						cycle = append(append([]string(nil), path[i:]...), e.To)
						return true
					}
				}
			}
		}
		path = path[:len(path)-1]
		state[id] = black

		return false
	}

	for _, v := range g.vertices {
		if state[v] == white && dfs(v) {
			return true, cycle
		}
	}

	return false, nil
}
