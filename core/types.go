// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Label/EdgeKey value types, sentinel errors, Graph layout and options.
// Determinism:
//   - Neighbor lists are sorted ascending; all iteration is index ordered.
// Concurrency:
//   - Graph is immutable after NewGraph; concurrent reads need no locking.

package core

import (
	"errors"
	"fmt"
	"math"
)

// Label is a node or edge attribute value (atom type, bond order, ...).
type Label int64

// NoLabel is reported for nodes and edges that carry no label.
// It is reserved: passing it as an explicit label is rejected.
const NoLabel Label = math.MinInt64

// EdgeKey is an ordered node-index pair (U,V).
type EdgeKey struct {
	U int
	V int
}

// Reverse returns (V,U).
func (k EdgeKey) Reverse() EdgeKey { return EdgeKey{U: k.V, V: k.U} }

// String renders the key as "(u,v)".
func (k EdgeKey) String() string { return fmt.Sprintf("(%d,%d)", k.U, k.V) }

// Sentinel errors for graph construction.
var (
	// ErrMalformedGraph is the root of every construction failure.
	// Callers branch with errors.Is(err, ErrMalformedGraph).
	ErrMalformedGraph = errors.New("core: malformed graph")

	// ErrNonSquare indicates an adjacency row whose length differs from the row count.
	ErrNonSquare = fmt.Errorf("%w: adjacency is not square", ErrMalformedGraph)

	// ErrNonBinary indicates an adjacency entry other than 0 or 1.
	ErrNonBinary = fmt.Errorf("%w: adjacency entry is not 0 or 1", ErrMalformedGraph)

	// ErrSelfLoop indicates a non-zero diagonal entry.
	ErrSelfLoop = fmt.Errorf("%w: self-loop", ErrMalformedGraph)

	// ErrAsymmetric indicates an undirected graph whose adjacency is not symmetric.
	ErrAsymmetric = fmt.Errorf("%w: adjacency is not symmetric", ErrMalformedGraph)

	// ErrNodeLabelRange indicates a node label keyed outside [0,n).
	ErrNodeLabelRange = fmt.Errorf("%w: node label references missing node", ErrMalformedGraph)

	// ErrEdgeLabelNoEdge indicates an edge label whose key is not an edge.
	ErrEdgeLabelNoEdge = fmt.Errorf("%w: edge label references missing edge", ErrMalformedGraph)

	// ErrEdgeLabelAsymmetric indicates (u,v) and (v,u) labeled differently in an undirected graph.
	ErrEdgeLabelAsymmetric = fmt.Errorf("%w: edge label differs between orientations", ErrMalformedGraph)

	// ErrReservedLabel indicates NoLabel passed as an explicit label value.
	ErrReservedLabel = fmt.Errorf("%w: label value is reserved", ErrMalformedGraph)

	// ErrNilGraph indicates a nil *Graph where a graph is required.
	ErrNilGraph = fmt.Errorf("%w: graph is nil", ErrMalformedGraph)

	// ErrOutOfRange indicates a node index outside [0,n) passed to an accessor.
	ErrOutOfRange = errors.New("core: node index out of range")
)

// ErrInvalidParameter is the root sentinel for invalid kernel configuration
// (negative step count, k < 1, bad decay, unknown weight function, ...).
// It lives here so that randomwalk, csi and kernel share one root.
var ErrInvalidParameter = errors.New("lvkernel: invalid parameter")

// GraphOption configures NewGraph.
type GraphOption func(c *graphConfig)

// graphConfig collects options before validation; nothing here is trusted
// until NewGraph has checked it against the adjacency.
type graphConfig struct {
	directed   bool
	nodeLabels map[int]Label
	edgeLabels map[EdgeKey]Label
}

// WithDirected accepts an asymmetric adjacency; edges are read as u→v.
func WithDirected() GraphOption {
	return func(c *graphConfig) { c.directed = true }
}

// WithNodeLabels attaches node labels. Nodes missing from the map report NoLabel.
// The map is copied when the option is built; later changes by the caller
// have no effect.
func WithNodeLabels(labels map[int]Label) GraphOption {
	own := make(map[int]Label, len(labels))
	for v, l := range labels {
		own[v] = l
	}

	return func(c *graphConfig) { c.nodeLabels = own }
}

// WithEdgeLabels attaches edge labels keyed by ordered pairs. For undirected
// graphs a label given for one orientation only is mirrored to the other.
// The map is copied when the option is built; later changes by the caller
// have no effect.
func WithEdgeLabels(labels map[EdgeKey]Label) GraphOption {
	own := make(map[EdgeKey]Label, len(labels))
	for k, l := range labels {
		own[k] = l
	}

	return func(c *graphConfig) { c.edgeLabels = own }
}

// Graph is an immutable labeled graph over node indices 0..n-1.
//
// Layout:
//   - nbrs[u] holds the sorted out-neighbors of u (all neighbors when undirected).
//   - adj is an n*n row-major membership table for O(1) HasEdge.
//   - nodeLabels is nil for node-unlabeled graphs, else len n (NoLabel where absent).
//   - edgeLabels is nil for edge-unlabeled graphs; undirected graphs store both orientations.
type Graph struct {
	n        int
	directed bool
	size     int // undirected edges counted once

	nbrs [][]int
	adj  []bool

	nodeLabels []Label
	edgeLabels map[EdgeKey]Label
}
