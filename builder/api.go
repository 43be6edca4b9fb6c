// SPDX-License-Identifier: MIT
// Package: lvkernel/builder
//
// api.go - the BuildGraph orchestrator and the draft constructors write to.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons
//     in order, freezes the draft into an immutable core.Graph.
//   - Each constructor appends a new component; node indices continue where
//     the previous constructor stopped.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvkernel/core"
)

// Constructor appends a topology to d. Constructors validate parameters
// first and return sentinel errors; they never panic.
type Constructor func(d *draft, cfg builderConfig) error

// draft is the mutable edge list behind a graph under construction.
type draft struct {
	n     int
	edges []core.EdgeKey
}

// addNodes reserves k fresh nodes and returns the index of the first.
func (d *draft) addNodes(k int) int {
	base := d.n
	d.n += k

	return base
}

// addEdge records u→v (u–v when undirected).
func (d *draft) addEdge(u, v int) {
	d.edges = append(d.edges, core.EdgeKey{U: u, V: v})
}

// BuildGraph resolves bopts, applies all constructors in order and returns
// the resulting graph.
//
// Errors:
//   - ErrOptionViolation for a bad option.
//   - ErrConstructFailed for a nil constructor or a draft core rejects
//     (for example a label scheme returning core.NoLabel).
//   - Constructor sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//
// Complexity: Σ constructor cost + O(n² + E log E) for core.NewGraphFromEdges.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.err)
	}

	d := &draft{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	var gopts []core.GraphOption
	if cfg.directed {
		gopts = append(gopts, core.WithDirected())
	}
	if cfg.nodeLabelFn != nil {
		labels := make(map[int]core.Label, d.n)
		var v int
		for v = 0; v < d.n; v++ {
			labels[v] = cfg.nodeLabelFn(v, cfg.rng)
		}
		gopts = append(gopts, core.WithNodeLabels(labels))
	}
	if cfg.edgeLabelFn != nil {
		labels := make(map[core.EdgeKey]core.Label, len(d.edges))
		for _, e := range d.edges {
			labels[e] = cfg.edgeLabelFn(e.U, e.V, cfg.rng)
		}
		gopts = append(gopts, core.WithEdgeLabels(labels))
	}

	g, err := core.NewGraphFromEdges(d.n, d.edges, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// New is BuildGraph without options: an unlabeled undirected graph.
func New(cons ...Constructor) (*core.Graph, error) {
	return BuildGraph(nil, cons...)
}
