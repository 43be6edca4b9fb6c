// SPDX-License-Identifier: MIT

// Package core defines the immutable, optionally labeled Graph that every
// kernel in lvkernel consumes.
//
// A Graph is built once from a square 0/1 adjacency matrix (or an edge list)
// plus optional node and edge label maps, validated eagerly, and never
// mutated afterwards. Because nothing can change after NewGraph returns, a
// *Graph can be shared freely between goroutines and kernel instances
// without locks.
//
// Labels:
//
//	Node and edge labels are small integers (Label). A node or edge without a
//	label reports NoLabel. NoLabel is a value of its own: two unlabeled nodes
//	are label-compatible, an unlabeled node and a labeled one are not.
//
// Errors:
//
//	ErrMalformedGraph      - root sentinel for every construction failure.
//	ErrNonSquare           - adjacency rows have different length than row count.
//	ErrNonBinary           - adjacency entry other than 0 or 1.
//	ErrSelfLoop            - non-zero diagonal entry.
//	ErrAsymmetric          - undirected adjacency is not symmetric.
//	ErrNodeLabelRange      - node label key outside [0,n).
//	ErrEdgeLabelNoEdge     - edge label key without a matching edge.
//	ErrEdgeLabelAsymmetric - (u,v) and (v,u) carry different labels.
//	ErrReservedLabel       - NoLabel used as an explicit label value.
//	ErrInvalidParameter    - root sentinel for invalid kernel configuration,
//	                         shared by randomwalk, csi and kernel.
//
// Quick example (the 3-node path used by the benchmark harness):
//
//	6───8───7
//
//	g, err := core.NewGraph(
//	    [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}},
//	    core.WithNodeLabels(map[int]core.Label{0: 6, 1: 8, 2: 7}),
//	)
package core
