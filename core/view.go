// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating views of a Graph for external graph tooling.
// Determinism:
//   - Nodes are added in index order, edges in Edges() order.

package core

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// AsGonum returns a fresh gonum graph with the same topology: node IDs are
// the node indices, labels are not carried. Undirected graphs map to
// *simple.UndirectedGraph, directed graphs to *simple.DirectedGraph.
//
// The result is independent of g; mutating it does not affect g.
// Complexity: O(n + E).
func (g *Graph) AsGonum() graph.Graph {
	if g.directed {
		dg := simple.NewDirectedGraph()
		g.fillGonum(dg, dg.SetEdge)

		return dg
	}
	ug := simple.NewUndirectedGraph()
	g.fillGonum(ug, ug.SetEdge)

	return ug
}

// fillGonum adds all nodes, then every edge through setEdge.
func (g *Graph) fillGonum(b graph.NodeAdder, setEdge func(graph.Edge)) {
	var v int
	for v = 0; v < g.n; v++ {
		b.AddNode(simple.Node(int64(v)))
	}
	for _, e := range g.Edges() {
		setEdge(simple.Edge{F: simple.Node(int64(e.U)), T: simple.Node(int64(e.V))})
	}
}
