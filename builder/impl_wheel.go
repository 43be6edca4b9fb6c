// SPDX-License-Identifier: MIT
// Package: lvkernel/builder
//
// impl_wheel.go - Wheel(n): a rim cycle C_{n-1} plus a hub joined to every rim node.
//
// Contract:
//   - n ≥ 4, because the rim must be a cycle of at least 3 nodes.
//   - Rim nodes come first, the hub is the last node of the component.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor for the wheel W_n with n nodes in total.
func Wheel(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		base := d.n
		if err := Cycle(n-1)(d, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		hub := d.addNodes(1)
		var i int
		for i = 0; i < n-1; i++ {
			d.addEdge(base+i, hub)
		}

		return nil
	}
}
