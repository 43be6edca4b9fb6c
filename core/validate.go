// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"
)

// resolve applies options left to right.
func resolve(opts []GraphOption) graphConfig {
	var cfg graphConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// newEmpty allocates an n-node graph with no edges and no labels.
func newEmpty(n int, directed bool) *Graph {
	return &Graph{
		n:        n,
		directed: directed,
		nbrs:     make([][]int, n),
		adj:      make([]bool, n*n),
	}
}

// countEdges counts directed entries, halved for undirected graphs.
func countEdges(g *Graph) int {
	total := 0
	for _, row := range g.nbrs {
		total += len(row)
	}
	if g.directed {
		return total
	}

	return total / 2
}

// attachLabels validates cfg labels against g's topology and stores them.
//
// Implementation:
//   - Stage 1: Node labels: range-check keys, reject NoLabel, fill a dense slice.
//   - Stage 2: Edge labels: visit keys in sorted order so the first reported
//     violation is deterministic; require an edge; mirror undirected labels
//     and reject disagreeing orientations.
func attachLabels(g *Graph, cfg graphConfig) error {
	if cfg.nodeLabels != nil {
		g.nodeLabels = make([]Label, g.n)
		for v := range g.nodeLabels {
			g.nodeLabels[v] = NoLabel
		}
		for _, v := range sortedNodeKeys(cfg.nodeLabels) {
			l := cfg.nodeLabels[v]
			if v < 0 || v >= g.n {
				return fmt.Errorf("node label key %d outside [0,%d): %w", v, g.n, ErrNodeLabelRange)
			}
			if l == NoLabel {
				return fmt.Errorf("node %d: %w", v, ErrReservedLabel)
			}
			g.nodeLabels[v] = l
		}
	}

	if cfg.edgeLabels == nil {
		return nil
	}
	g.edgeLabels = make(map[EdgeKey]Label, len(cfg.edgeLabels)*2)
	for _, k := range sortedEdgeKeys(cfg.edgeLabels) {
		l := cfg.edgeLabels[k]
		if !g.HasEdge(k.U, k.V) {
			return fmt.Errorf("edge label key %s: %w", k, ErrEdgeLabelNoEdge)
		}
		if l == NoLabel {
			return fmt.Errorf("edge %s: %w", k, ErrReservedLabel)
		}
		if !g.directed {
			if other, ok := cfg.edgeLabels[k.Reverse()]; ok && other != l {
				return fmt.Errorf("edge %s labeled %d, %s labeled %d: %w", k, l, k.Reverse(), other, ErrEdgeLabelAsymmetric)
			}
			g.edgeLabels[k.Reverse()] = l
		}
		g.edgeLabels[k] = l
	}

	return nil
}

func sortedNodeKeys(m map[int]Label) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

func sortedEdgeKeys(m map[EdgeKey]Label) []EdgeKey {
	keys := make([]EdgeKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].U != keys[j].U {
			return keys[i].U < keys[j].U
		}
		return keys[i].V < keys[j].V
	})

	return keys
}
