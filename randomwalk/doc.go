// SPDX-License-Identifier: MIT

// Package randomwalk computes random-walk graph kernels over the direct
// product of two graphs.
//
// What
//
//   - A walk in G1×G2 is a pair of simultaneous, equally long walks in G1 and
//     G2. The kernel sums, over walk lengths k = 0..p, the number of such
//     walk pairs weighted by a decaying coefficient μ_k:
//
//     K(G1,G2) = Σ_{k=0}^{p} μ_k · 1ᵀ A×^k 1
//
//   - Two coefficient series:
//   - Geometric   μ_k = λ^k      (default, λ = DefaultDecay)
//   - Exponential μ_k = λ^k / k!
//   - Two product flavors:
//   - Unlabeled: every node pair, every edge pair.
//   - Labeled: only pairs with equal node labels, only edge pairs with
//     equal edge labels (WithLabels).
//   - Unbounded mode (WithUnbounded) evaluates the infinite series in closed
//     form with gonum: (I − λA×)⁻¹ for geometric, exp(λA×) for exponential.
//
// Determinism
//
//	Product node order is fixed and propagation visits rows in order, so the
//	finite sum is bit-for-bit reproducible for a given input.
//
// Complexity (N = |V×|, M = |E×|)
//
//   - Finite p:  Time O(n1·n2 + p·M), Memory O(N + M).
//   - Unbounded: Time O(N³), Memory O(N²).
//
// Errors
//
//   - core.ErrInvalidParameter: negative steps, non-positive or non-finite decay.
//   - ErrDivergent: unbounded geometric series with λ·ρ(A×) ≥ 1.
//   - product.ErrGraphNil, product.ErrMixedDirection from the product builder.
package randomwalk
