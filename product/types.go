// SPDX-License-Identifier: MIT

// Package product builds derived graphs over node pairs of two input graphs.
//
// Two families are provided:
//
//	Direct:  (u1,u2)~(v1,v2) iff u1~v1 in G1 and u2~v2 in G2. Walks in the
//	          direct product are pairs of simultaneous walks, which is what
//	          random-walk kernels count. Built label-agnostic (all pairs) or
//	          label-aware (equal node labels, equal edge labels).
//	Modular: over label-compatible pairs, (u1,u2)~(v1,v2) iff u1≠v1, u2≠v2
//	          and the two pairs agree on adjacency: both edges with equal edge
//	          labels, or both non-edges. Cliques of the modular product are
//	          exactly the common induced subgraph correspondences counted by
//	          the CSI kernel.
//
// Product graphs are ephemeral values: built by a pure function from two
// immutable core.Graphs, read by one kernel evaluation and dropped.
//
// Node order is deterministic: pairs are enumerated u1-major, u2-minor, and
// only compatible pairs receive an index.
package product

import (
	"errors"

	"github.com/katalvlaran/lvkernel/core"
	"github.com/katalvlaran/lvkernel/matrix"
)

var (
	// ErrGraphNil is returned for a nil input graph. It is core.ErrNilGraph,
	// so it also matches core.ErrMalformedGraph.
	ErrGraphNil = core.ErrNilGraph

	// ErrMixedDirection is returned when one input graph is directed and the other is not.
	ErrMixedDirection = errors.New("product: cannot combine directed and undirected graphs")
)

// Kind identifies how a product Graph was built.
type Kind int

const (
	// KindDirect is the full Cartesian direct product.
	KindDirect Kind = iota
	// KindDirectLabeled restricts the direct product to label-equal nodes and edges.
	KindDirectLabeled
	// KindModular is the label-aware modular product.
	KindModular
)

// String names the kind for logs and errors.
func (k Kind) String() string {
	switch k {
	case KindDirect:
		return "direct"
	case KindDirectLabeled:
		return "direct-labeled"
	case KindModular:
		return "modular"
	default:
		return "unknown"
	}
}

// Pair is a product node: node U1 of the first graph matched with node U2 of the second.
type Pair struct {
	U1 int
	U2 int
}

// Graph is an immutable product graph.
//
// pairs[i] is the pair behind product node i; index maps u1*n2+u2 back to i
// (or -1 for pairs that were filtered out). adj is the product adjacency.
type Graph struct {
	kind     Kind
	directed bool
	n2       int
	pairs    []Pair
	index    []int
	adj      *matrix.Sparse
}

// Kind reports how the graph was built.
func (p *Graph) Kind() Kind { return p.kind }

// Directed reports whether the inputs (and therefore the product) are directed.
func (p *Graph) Directed() bool { return p.directed }

// Order returns the number of product nodes. Complexity: O(1).
func (p *Graph) Order() int { return len(p.pairs) }

// Size returns the number of product edges; undirected edges are counted once.
// Complexity: O(1).
func (p *Graph) Size() int {
	if p.directed {
		return p.adj.NNZ()
	}

	return p.adj.NNZ() / 2
}

// Pair returns the input-node pair behind product node i.
// ok is false when i is out of range.
func (p *Graph) Pair(i int) (pair Pair, ok bool) {
	if i < 0 || i >= len(p.pairs) {
		return Pair{}, false
	}

	return p.pairs[i], true
}

// Index returns the product node for (u1,u2), or -1 when the pair is not a
// product node (filtered by labels or out of range). Complexity: O(1).
func (p *Graph) Index(u1, u2 int) int {
	if u1 < 0 || u2 < 0 || u2 >= p.n2 {
		return -1
	}
	k := u1*p.n2 + u2
	if k >= len(p.index) {
		return -1
	}

	return p.index[k]
}

// Neighbors returns the sorted product neighbors of node i (read-only).
func (p *Graph) Neighbors(i int) []int { return p.adj.Row(i) }

// Adjacency returns the product adjacency matrix.
func (p *Graph) Adjacency() *matrix.Sparse { return p.adj }

// checkInputs validates a pair of input graphs.
func checkInputs(method string, g1, g2 *core.Graph) error {
	if g1 == nil || g2 == nil {
		return errorf(method, ErrGraphNil)
	}
	if g1.Directed() != g2.Directed() {
		return errorf(method, ErrMixedDirection)
	}

	return nil
}

// enumeratePairs assigns indices to compatible pairs, u1-major.
func enumeratePairs(g1, g2 *core.Graph, compatible func(u1, u2 int) bool) ([]Pair, []int) {
	n1, n2 := g1.Order(), g2.Order()
	index := make([]int, n1*n2)
	pairs := make([]Pair, 0, n1*n2)

	var u1, u2 int
	for u1 = 0; u1 < n1; u1++ {
		for u2 = 0; u2 < n2; u2++ {
			if !compatible(u1, u2) {
				index[u1*n2+u2] = -1
				continue
			}
			index[u1*n2+u2] = len(pairs)
			pairs = append(pairs, Pair{U1: u1, U2: u2})
		}
	}

	return pairs, index
}

// labelsMatch is the label-aware node compatibility: NoLabel only matches NoLabel.
func labelsMatch(g1, g2 *core.Graph) func(u1, u2 int) bool {
	return func(u1, u2 int) bool { return g1.NodeLabel(u1) == g2.NodeLabel(u2) }
}

// neighborTable reads every neighbor list once, up front, so the pair loops
// index a table instead of copying a slice per product node.
func neighborTable(g *core.Graph) ([][]int, error) {
	out := make([][]int, g.Order())
	var err error
	for v := range out {
		if out[v], err = g.Neighbors(v); err != nil {
			return nil, err
		}
	}

	return out, nil
}
