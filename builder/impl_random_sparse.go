// SPDX-License-Identifier: MIT
// Package: lvkernel/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n,p).
//
// Contract:
//   - n ≥ 1, p ∈ [0,1].
//   - An RNG is required for 0 < p < 1 (ErrNeedRandSource); p = 0 and p = 1
//     are deterministic without one.
//   - Pairs are visited i asc, j asc; undirected graphs consider j > i only,
//     directed graphs every j ≠ i. One draw per visited pair.
//
// Complexity: O(n²).

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for a G(n,p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := d.addNodes(n)
		var i, j int
		for i = 0; i < n; i++ {
			j = i + 1
			if cfg.directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if keep(p, cfg) {
					d.addEdge(base+i, base+j)
				}
			}
		}

		return nil
	}
}

// keep decides one pair; p = 0 and p = 1 never touch the RNG.
func keep(p float64, cfg builderConfig) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
