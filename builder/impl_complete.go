// SPDX-License-Identifier: MIT
// Package: lvkernel/builder
//
// impl_complete.go - Complete(n): every pair of distinct nodes adjacent.
//
// Directed mode emits both arcs of every pair.
//
// Complexity: O(n²).

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := d.addNodes(n)
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				d.addEdge(base+i, base+j)
				if cfg.directed {
					d.addEdge(base+j, base+i)
				}
			}
		}

		return nil
	}
}
