// SPDX-License-Identifier: MIT

// Package csi implements the common-subgraph-isomorphism (CSI) kernel.
//
// What
//
//   - A correspondence is a partial bijection φ between node subsets of G1
//     and G2 under which node labels are equal, mapped edges carry equal edge
//     labels, and non-edges map to non-edges (the induced subgraphs are
//     isomorphic).
//   - The kernel value is Σ lw(|φ|) over every correspondence with
//     1 ≤ |φ| ≤ k, for a weight function lw.
//   - Correspondences are exactly the cliques of the modular product graph
//     (product.Modular), so enumeration is clique enumeration.
//
// How
//
//	Enumerate walks the clique tree with an explicit stack. Each frame keeps
//	the candidate product nodes that extend the current clique; candidates
//	are kept sorted and only higher-indexed nodes are ever added, so every
//	clique is produced exactly once. Stack depth never exceeds
//	min(k, |V1|, |V2|), and the context is checked before every extension.
//
// Weight functions
//
//	Uniform          lw(s) = 1
//	Increasing       lw(s) = s
//	Decreasing       lw(s) = 1/s
//	StrongDecreasing lw(s) = 1/s²
//
// Complexity
//
//	Exponential in min(k, |V1|, |V2|) in the worst case (the problem is
//	NP-hard); the bound k is what keeps it tractable. Memory O(k·N) for N
//	compatible pairs, plus the O(N²) modular product.
package csi
