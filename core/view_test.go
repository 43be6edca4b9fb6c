package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvkernel/core"
)

// TestAsGonum_Undirected checks node/edge transfer and component structure.
func TestAsGonum_Undirected(t *testing.T) {
	// 0-1 and 2-3, node 4 isolated.
	g, err := core.NewGraphFromEdges(5, []core.EdgeKey{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)

	gg := g.AsGonum()
	ug, ok := gg.(graph.Undirected)
	require.True(t, ok)

	assert.Equal(t, 5, gg.Nodes().Len())
	assert.True(t, ug.HasEdgeBetween(0, 1))
	assert.False(t, ug.HasEdgeBetween(1, 2))
	assert.Len(t, topo.ConnectedComponents(ug), 3)
}

// TestAsGonum_Directed keeps edge orientation.
func TestAsGonum_Directed(t *testing.T) {
	g, err := core.NewGraph([][]int{{0, 1}, {0, 0}}, core.WithDirected())
	require.NoError(t, err)

	dg, ok := g.AsGonum().(graph.Directed)
	require.True(t, ok)
	assert.True(t, dg.HasEdgeFromTo(0, 1))
	assert.False(t, dg.HasEdgeFromTo(1, 0))
}
