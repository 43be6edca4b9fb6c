// SPDX-License-Identifier: MIT
// Package: lvkernel/builder
//
// impl_cycle.go - Cycle(n): edges i→(i+1) mod n.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges emitted in ascending i; the closing edge n-1→0 comes last.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := d.addNodes(n)
		var i int
		for i = 0; i < n; i++ {
			d.addEdge(base+i, base+(i+1)%n)
		}

		return nil
	}
}
