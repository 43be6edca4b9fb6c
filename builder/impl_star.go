// SPDX-License-Identifier: MIT
// Package: lvkernel/builder
//
// impl_star.go - Star(n): center 0 joined to leaves 1..n-1.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for the star S_n with n nodes in total.
// The center is the first node of the component.
func Star(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := d.addNodes(n)
		var i int
		for i = 1; i < n; i++ {
			d.addEdge(center, center+i)
		}

		return nil
	}
}
