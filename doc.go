// SPDX-License-Identifier: MIT

// Package lvkernel computes graph kernels: similarity scores between small
// labeled graphs such as molecules.
//
// What is in the box:
//
//	core/       immutable Graph: 0/1 adjacency, optional node and edge labels
//	matrix/     sparse CSR adjacency, propagation, gonum conversion, spectral radius
//	product/    direct and modular product graphs over node pairs
//	randomwalk/ random-walk kernels (geometric / exponential series, finite or closed form)
//	csi/        common-subgraph-isomorphism kernel with pluggable weight functions
//	kernel/     fit/transform facade: reference set, parallel batches, gonum score matrix
//	builder/    deterministic labeled topologies for tests and benchmarks
//	config/     viper configuration and zerolog logger factory for the harness
//	bench/      timing harness with a prometheus latency histogram
//	cmd/kernelbench  CLI over bench
//
// Quick start:
//
//	g1, _ := core.NewGraph(adj1, core.WithNodeLabels(labels1))
//	g2, _ := core.NewGraph(adj2, core.WithNodeLabels(labels2))
//
//	k, _ := kernel.NewSubgraphMatching(999, "uniform")
//	_ = k.Fit([]*core.Graph{g1})
//	m, _ := k.Transform(ctx, []*core.Graph{g2}) // 1×1 *mat.Dense
//
// Determinism: every score is a pure function of the two graphs and the
// kernel configuration; batch parallelism never changes results.
//
// Non-goals: classifier training, kernel-matrix normalization, general
// graph algorithms, graph persistence.
package lvkernel
