// SPDX-License-Identifier: MIT

// Package fixtures holds the two small molecule-like graphs used across
// tests, examples and the benchmark CLI.
//
//	G1: path 0-1-2, node labels {6,8,7}, every edge labeled 1.
//	G2: tree on 6 nodes (0-1, 1-2, 1-4, 2-3, 4-5), node labels {6,8,8,7,6,6},
//	    every edge labeled 1.
package fixtures

import (
	"github.com/katalvlaran/lvkernel/core"
)

// G1Adjacency is the adjacency of G1.
var G1Adjacency = [][]int{
	{0, 1, 0},
	{1, 0, 1},
	{0, 1, 0},
}

// G2Adjacency is the adjacency of G2.
var G2Adjacency = [][]int{
	{0, 1, 0, 0, 0, 0},
	{1, 0, 1, 0, 1, 0},
	{0, 1, 0, 1, 0, 0},
	{0, 0, 1, 0, 0, 0},
	{0, 1, 0, 0, 0, 1},
	{0, 0, 0, 0, 1, 0},
}

// G1NodeLabels and G2NodeLabels are the node labels of the fixtures.
var (
	G1NodeLabels = map[int]core.Label{0: 6, 1: 8, 2: 7}
	G2NodeLabels = map[int]core.Label{0: 6, 1: 8, 2: 8, 3: 7, 4: 6, 5: 6}
)

// G1 returns the labeled G1.
func G1() *core.Graph { return build(G1Adjacency, G1NodeLabels) }

// G2 returns the labeled G2.
func G2() *core.Graph { return build(G2Adjacency, G2NodeLabels) }

// G1Unlabeled returns G1 without node or edge labels.
func G1Unlabeled() *core.Graph { return must(core.NewGraph(G1Adjacency)) }

// G2Unlabeled returns G2 without node or edge labels.
func G2Unlabeled() *core.Graph { return must(core.NewGraph(G2Adjacency)) }

// build attaches node labels and labels every edge 1.
func build(adj [][]int, nodeLabels map[int]core.Label) *core.Graph {
	edgeLabels := make(map[core.EdgeKey]core.Label)
	var u, v int
	for u = range adj {
		for v = u + 1; v < len(adj); v++ {
			if adj[u][v] == 1 {
				edgeLabels[core.EdgeKey{U: u, V: v}] = 1
			}
		}
	}

	return must(core.NewGraph(adj,
		core.WithNodeLabels(nodeLabels),
		core.WithEdgeLabels(edgeLabels),
	))
}

// must panics on a construction error; fixtures are static and valid.
func must(g *core.Graph, err error) *core.Graph {
	if err != nil {
		panic(err)
	}

	return g
}
