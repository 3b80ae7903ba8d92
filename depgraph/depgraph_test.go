package depgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paramspace/depgraph"
	"github.com/katalvlaran/paramspace/param"
)

func newGraph(t *testing.T, ids ...string) *depgraph.Graph {
	t.Helper()
	g := depgraph.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddVertex(id))
	}
	return g
}

// TestAddEdge_Validation covers missing vertices, self-loops and empty ids.
func TestAddEdge_Validation(t *testing.T) {
	g := newGraph(t, "a", "b")
	assert.ErrorIs(t, g.AddEdge("a", "zz", param.Equals(true)), depgraph.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge("zz", "a", param.Equals(true)), depgraph.ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge("a", "a", param.Equals(true)), depgraph.ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge("", "a", param.Equals(true)), depgraph.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddVertex(""), depgraph.ErrEmptyVertexID)
	require.NoError(t, g.AddEdge("a", "b", param.Equals(true)))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_RejectsCycles covers direct and transitive cycles.
func TestAddEdge_RejectsCycles(t *testing.T) {
	g := newGraph(t, "a", "b", "c")
	require.NoError(t, g.AddEdge("a", "b", param.Equals(1)))
	require.NoError(t, g.AddEdge("b", "c", param.Equals(1)))

	assert.ErrorIs(t, g.AddEdge("b", "a", param.Equals(1)), depgraph.ErrCycleDetected)
	assert.ErrorIs(t, g.AddEdge("c", "a", param.Equals(1)), depgraph.ErrCycleDetected)
	assert.Equal(t, 2, g.EdgeCount(), "rejected edges must not be committed")

	has, cyc := g.DetectCycle()
	assert.False(t, has)
	assert.Nil(t, cyc)
}

// TestTopologicalSort_StableOrder checks dependees-first with insertion tie-break.
func TestTopologicalSort_StableOrder(t *testing.T) {
	g := newGraph(t, "b", "x", "d", "a")
	// a gates d, d gates b.
	require.NoError(t, g.AddEdge("a", "d", param.Equals(false)))
	require.NoError(t, g.AddEdge("d", "b", param.AnyOf("x", "y")))

	order, err := g.TopologicalSort()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d", "b", "x"}, order)

	free := newGraph(t, "p", "q", "r")
	order, err = free.TopologicalSort()
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "q", "r"}, order)
}

// TestRemoveVertex_DropsIncidentEdges covers catalog and adjacency consistency.
func TestRemoveVertex_DropsIncidentEdges(t *testing.T) {
	g := newGraph(t, "a", "b", "c")
	require.NoError(t, g.AddEdge("a", "b", param.Equals(1)))
	require.NoError(t, g.AddEdge("b", "c", param.Equals(1)))
	require.NoError(t, g.AddEdge("a", "c", param.Equals(2)))

	require.NoError(t, g.RemoveVertex("b"))
	assert.Equal(t, []string{"a", "c"}, g.Vertices())
	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, "a", edges[0].From)
	assert.Equal(t, "c", edges[0].To)
	assert.Empty(t, g.EdgesFrom("b"))
	assert.Equal(t, []string{"a"}, g.Parents("c"))

	assert.ErrorIs(t, g.RemoveVertex("b"), depgraph.ErrVertexNotFound)
}

// TestClone_Independent verifies that mutating the clone leaves the source intact.
func TestClone_Independent(t *testing.T) {
	g := newGraph(t, "a", "b")
	require.NoError(t, g.AddEdge("a", "b", param.Equals(true)))

	c := g.Clone()
	require.NoError(t, c.AddVertex("z"))
	require.NoError(t, c.RemoveVertex("a"))

	assert.Equal(t, []string{"a", "b"}, g.Vertices())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []string{"b", "z"}, c.Vertices())
	assert.Equal(t, 0, c.EdgeCount())
}

// TestEdges_SnapshotIsReadOnly ensures the export cannot corrupt the graph.
func TestEdges_SnapshotIsReadOnly(t *testing.T) {
	g := newGraph(t, "a", "b")
	require.NoError(t, g.AddEdge("a", "b", param.Equals(true)))

	snap := g.Edges()
	snap[0].To = "a"
	assert.Equal(t, "b", g.Edges()[0].To)
	assert.True(t, g.Reachable("a", "b"))
	assert.False(t, g.Reachable("b", "a"))
}
