package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paramspace/param"
)

// TestDetectCycle_ReportsPath plants a back-edge behind AddEdge's guard, the
// state a corrupted graph would be in.
func TestDetectCycle_ReportsPath(t *testing.T) {
	g := NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("a", "b", param.Equals(1)))
	require.NoError(t, g.AddEdge("b", "c", param.Equals(1)))

	g.edges = append(g.edges, &Edge{From: "c", To: "a", Cond: param.Equals(1)})
	g.reindex()

	has, cyc := g.DetectCycle()
	require.True(t, has)
	assert.Equal(t, []string{"a", "b", "c", "a"}, cyc)

	_, err := g.TopologicalSort()
	assert.ErrorIs(t, err, ErrCycleDetected)
}
