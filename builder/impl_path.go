// SPDX-License-Identifier: MIT
// Package: lvkernel/builder
//
// impl_path.go - Path(n): nodes 0..n-1, edges i→i+1.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor for the path P_n. Path(1) is a single isolated node.
func Path(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := d.addNodes(n)
		var i int
		for i = 0; i+1 < n; i++ {
			d.addEdge(base+i, base+i+1)
		}

		return nil
	}
}
