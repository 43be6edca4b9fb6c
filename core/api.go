// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors and read-only accessors.
// Policy:
//   - Validation happens once, in the constructors; accessors never fail on
//     a constructed Graph except for out-of-range node indices.
//   - Every exported function documents complexity.

package core

import (
	"fmt"
	"sort"
)

// NewGraph builds a Graph from a square 0/1 adjacency matrix.
//
// Implementation:
//   - Stage 1: Resolve options into a graphConfig.
//   - Stage 2: Validate shape, entries, diagonal and (undirected) symmetry.
//   - Stage 3: Materialize sorted neighbor lists and the membership table.
//   - Stage 4: Validate and attach node and edge labels.
//
// Errors:
//   - ErrNonSquare, ErrNonBinary, ErrSelfLoop, ErrAsymmetric,
//     ErrNodeLabelRange, ErrEdgeLabelNoEdge, ErrEdgeLabelAsymmetric,
//     ErrReservedLabel; all match errors.Is(err, ErrMalformedGraph).
//
// Complexity:
//   - Time O(n² + L) where L is the number of labels, Space O(n²).
func NewGraph(adjacency [][]int, opts ...GraphOption) (*Graph, error) {
	cfg := resolve(opts)
	n := len(adjacency)

	var (
		i, j int
		row  []int
	)
	// Shape and entry checks come before anything is allocated per node.
	for i, row = range adjacency {
		if len(row) != n {
			return nil, fmt.Errorf("NewGraph: row %d has %d entries, want %d: %w", i, len(row), n, ErrNonSquare)
		}
		for j = range row {
			if row[j] != 0 && row[j] != 1 {
				return nil, fmt.Errorf("NewGraph: entry (%d,%d)=%d: %w", i, j, row[j], ErrNonBinary)
			}
		}
		if row[i] != 0 {
			return nil, fmt.Errorf("NewGraph: node %d: %w", i, ErrSelfLoop)
		}
	}

	g := newEmpty(n, cfg.directed)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if adjacency[i][j] == 0 {
				continue
			}
			if !cfg.directed && adjacency[j][i] == 0 {
				return nil, fmt.Errorf("NewGraph: entry (%d,%d) has no mirror: %w", i, j, ErrAsymmetric)
			}
			g.adj[i*n+j] = true
			g.nbrs[i] = append(g.nbrs[i], j)
		}
	}
	g.size = countEdges(g)

	if err := attachLabels(g, cfg); err != nil {
		return nil, fmt.Errorf("NewGraph: %w", err)
	}

	return g, nil
}

// NewGraphFromEdges builds an n-node Graph from an edge list. For undirected
// graphs each edge may be listed in either orientation (or both).
// Duplicate edges collapse into one.
//
// Errors: as NewGraph; an endpoint outside [0,n) yields ErrNonSquare.
// Complexity: Time O(n² + E log E).
func NewGraphFromEdges(n int, edges []EdgeKey, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraphFromEdges: n=%d: %w", n, ErrNonSquare)
	}
	cfg := resolve(opts)
	g := newEmpty(n, cfg.directed)

	for _, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("NewGraphFromEdges: edge %s outside [0,%d): %w", e, n, ErrNonSquare)
		}
		if e.U == e.V {
			return nil, fmt.Errorf("NewGraphFromEdges: node %d: %w", e.U, ErrSelfLoop)
		}
		g.adj[e.U*n+e.V] = true
		if !cfg.directed {
			g.adj[e.V*n+e.U] = true
		}
	}
	// Rebuild neighbor lists from the table so duplicates vanish and order is ascending.
	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if g.adj[u*n+v] {
				g.nbrs[u] = append(g.nbrs[u], v)
			}
		}
	}
	g.size = countEdges(g)

	if err := attachLabels(g, cfg); err != nil {
		return nil, fmt.Errorf("NewGraphFromEdges: %w", err)
	}

	return g, nil
}

// Order returns the number of nodes. Complexity: O(1).
func (g *Graph) Order() int { return g.n }

// Size returns the number of edges; undirected edges are counted once.
// Complexity: O(1).
func (g *Graph) Size() int { return g.size }

// Directed reports whether the graph was built WithDirected.
func (g *Graph) Directed() bool { return g.directed }

// NodeLabeled reports whether node labels were supplied.
func (g *Graph) NodeLabeled() bool { return g.nodeLabels != nil }

// EdgeLabeled reports whether edge labels were supplied.
func (g *Graph) EdgeLabeled() bool { return g.edgeLabels != nil }

// Neighbors returns the sorted out-neighbors of v (all neighbors when
// undirected). The returned slice is a copy.
//
// Errors: ErrOutOfRange for an index outside [0,n).
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrOutOfRange)
	}
	out := make([]int, len(g.nbrs[v]))
	copy(out, g.nbrs[v])

	return out, nil
}

// Degree returns the out-degree of v, or 0 for an index outside [0,n).
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= g.n {
		return 0
	}

	return len(g.nbrs[v])
}

// HasEdge reports whether u→v is an edge (u–v when undirected).
// Indices outside [0,n) report false. Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}

	return g.adj[u*g.n+v]
}

// NodeLabel returns the label of v, or NoLabel when v is unlabeled, the
// graph carries no node labels, or v is out of range. Complexity: O(1).
func (g *Graph) NodeLabel(v int) Label {
	if g.nodeLabels == nil || v < 0 || v >= g.n {
		return NoLabel
	}

	return g.nodeLabels[v]
}

// EdgeLabel returns the label of u→v, or NoLabel when the edge is unlabeled,
// the graph carries no edge labels, or u→v is not an edge. Complexity: O(1).
func (g *Graph) EdgeLabel(u, v int) Label {
	if g.edgeLabels == nil {
		return NoLabel
	}
	if l, ok := g.edgeLabels[EdgeKey{U: u, V: v}]; ok {
		return l
	}

	return NoLabel
}

// Edges returns every edge in ascending (U,V) order. Undirected edges are
// reported once with U < V. Complexity: O(n + E).
func (g *Graph) Edges() []EdgeKey {
	out := make([]EdgeKey, 0, g.size)
	var u int
	for u = 0; u < g.n; u++ {
		for _, v := range g.nbrs[u] {
			if !g.directed && v < u {
				continue
			}
			out = append(out, EdgeKey{U: u, V: v})
		}
	}

	return out
}

// NodeLabels returns a copy of the node labels keyed by node index; nodes
// without a label are omitted. Nil when the graph carries no node labels.
func (g *Graph) NodeLabels() map[int]Label {
	if g.nodeLabels == nil {
		return nil
	}
	out := make(map[int]Label, g.n)
	for v, l := range g.nodeLabels {
		if l != NoLabel {
			out[v] = l
		}
	}

	return out
}

// LabelHistogram counts nodes per label (NoLabel included), sorted by label.
// Used by diagnostics and by the harness to print fixture summaries.
func (g *Graph) LabelHistogram() []LabelCount {
	counts := make(map[Label]int)
	var v int
	for v = 0; v < g.n; v++ {
		counts[g.NodeLabel(v)]++
	}
	out := make([]LabelCount, 0, len(counts))
	for l, c := range counts {
		out = append(out, LabelCount{Label: l, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })

	return out
}

// LabelCount is one LabelHistogram bucket.
type LabelCount struct {
	Label Label
	Count int
}
