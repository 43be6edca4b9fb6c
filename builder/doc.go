// SPDX-License-Identifier: MIT

// Package builder constructs deterministic labeled test topologies as
// immutable core.Graph values.
//
// The package offers the following key components:
//
//   - Constructors (each appends one connected component to a draft):
//     Path(n), Cycle(n), Star(n), Complete(n), Wheel(n), RandomSparse(n, p).
//   - BuildGraph(bopts, cons...): resolves options, runs constructors in
//     order (disjoint union, node indices assigned consecutively), then
//     freezes the draft through core.NewGraphFromEdges.
//   - Label schemes:
//     LabelFn for nodes (ConstantLabels, CyclicLabels, RandomLabels) and
//     EdgeLabelFn for edges (ConstantEdgeLabels, EndpointSumLabels).
//   - Options: WithNodeLabels, WithEdgeLabels, WithDirected, WithSeed, WithRand.
//
// Guarantees:
//
//   - Same constructors, options and seed ⇒ identical graphs.
//   - Invalid options are recorded and reported by BuildGraph as
//     ErrOptionViolation; constructors return sentinel errors. Nothing panics.
//   - Without label options the result carries no labels at all.
//
// Composition example: a graph with two components, a labeled triangle and
// an isolated node:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithNodeLabels(builder.ConstantLabels(6))},
//	    builder.Cycle(3), builder.Path(1),
//	)
package builder
