// SPDX-License-Identifier: MIT

package product

import (
	"fmt"

	"github.com/katalvlaran/lvkernel/core"
	"github.com/katalvlaran/lvkernel/matrix"
)

const (
	methodDirect  = "Direct"
	methodModular = "Modular"
)

// errorf prefixes err with the builder name, keeping the sentinel for errors.Is.
func errorf(method string, err error) error {
	return fmt.Errorf("product.%s: %w", method, err)
}

// Direct builds the direct product of g1 and g2.
//
// Implementation:
//   - Stage 1: validate inputs (nil, mixed directedness).
//   - Stage 2: enumerate product nodes: all pairs, or label-equal pairs when labelAware.
//   - Stage 3: for every product node (u1,u2) and every neighbor pair
//     (v1,v2) ∈ N(u1)×N(u2) that is a product node, add the edge; when
//     labelAware, require EdgeLabel(u1,v1) == EdgeLabel(u2,v2).
//   - Stage 4: pack into a Sparse adjacency.
//
// Behavior highlights:
//   - An empty product (no compatible pairs) is valid and has Order() == 0.
//   - Direct(g1,g2) and Direct(g2,g1) are isomorphic (swap each pair).
//
// Errors:
//   - ErrGraphNil (matches core.ErrMalformedGraph), ErrMixedDirection.
//
// Complexity:
//   - Time O(n1·n2 + Σ deg1(u1)·deg2(u2)) = O(n1·n2 + |E1|·|E2|), Space O(n1·n2 + |E×|).
func Direct(g1, g2 *core.Graph, labelAware bool) (*Graph, error) {
	if err := checkInputs(methodDirect, g1, g2); err != nil {
		return nil, err
	}

	kind := KindDirect
	compatible := func(int, int) bool { return true }
	if labelAware {
		kind = KindDirectLabeled
		compatible = labelsMatch(g1, g2)
	}
	pairs, index := enumeratePairs(g1, g2, compatible)

	nb1, err := neighborTable(g1)
	if err != nil {
		return nil, errorf(methodDirect, err)
	}
	nb2, err := neighborTable(g2)
	if err != nil {
		return nil, errorf(methodDirect, err)
	}
	n2 := g2.Order()
	rows := make([][]int, len(pairs))

	var j int
	for i, p := range pairs {
		for _, v1 := range nb1[p.U1] {
			for _, v2 := range nb2[p.U2] {
				j = index[v1*n2+v2]
				if j < 0 {
					continue
				}
				if labelAware && g1.EdgeLabel(p.U1, v1) != g2.EdgeLabel(p.U2, v2) {
					continue
				}
				rows[i] = append(rows[i], j)
			}
		}
	}

	adj, err := matrix.NewSparse(len(pairs), rows)
	if err != nil {
		return nil, errorf(methodDirect, err)
	}

	return &Graph{
		kind:     kind,
		directed: g1.Directed(),
		n2:       n2,
		pairs:    pairs,
		index:    index,
		adj:      adj,
	}, nil
}

// Modular builds the label-aware modular product of g1 and g2.
//
// Implementation:
//   - Stage 1: validate inputs.
//   - Stage 2: enumerate label-equal pairs.
//   - Stage 3: for every two product nodes i=(u1,u2), j=(v1,v2) with u1≠v1
//     and u2≠v2, connect them iff the pairs agree on adjacency in both
//     orientations and, where an edge exists, on its label.
//
// Errors:
//   - ErrGraphNil, ErrMixedDirection.
//
// Complexity:
//   - Time O(N²) for N compatible pairs, Space O(N + |E_mod|).
func Modular(g1, g2 *core.Graph) (*Graph, error) {
	if err := checkInputs(methodModular, g1, g2); err != nil {
		return nil, err
	}
	pairs, index := enumeratePairs(g1, g2, labelsMatch(g1, g2))
	rows := make([][]int, len(pairs))

	var i, j int
	for i = 0; i < len(pairs); i++ {
		for j = i + 1; j < len(pairs); j++ {
			if !agree(g1, g2, pairs[i], pairs[j]) {
				continue
			}
			rows[i] = append(rows[i], j)
			rows[j] = append(rows[j], i)
		}
	}

	adj, err := matrix.NewSparse(len(pairs), rows)
	if err != nil {
		return nil, errorf(methodModular, err)
	}

	return &Graph{
		kind:     KindModular,
		directed: false, // compatibility is a symmetric relation
		n2:       g2.Order(),
		pairs:    pairs,
		index:    index,
		adj:      adj,
	}, nil
}

// agree reports whether mapping a.U1→a.U2 and b.U1→b.U2 together is
// consistent: distinct endpoints on both sides, and the same edge/non-edge
// status with equal labels in each orientation.
func agree(g1, g2 *core.Graph, a, b Pair) bool {
	if a.U1 == b.U1 || a.U2 == b.U2 {
		return false
	}

	return sameLink(g1, g2, a.U1, b.U1, a.U2, b.U2) &&
		sameLink(g1, g2, b.U1, a.U1, b.U2, a.U2)
}

// sameLink compares u1→v1 in g1 with u2→v2 in g2.
func sameLink(g1, g2 *core.Graph, u1, v1, u2, v2 int) bool {
	e1, e2 := g1.HasEdge(u1, v1), g2.HasEdge(u2, v2)
	if e1 != e2 {
		return false
	}

	return !e1 || g1.EdgeLabel(u1, v1) == g2.EdgeLabel(u2, v2)
}
