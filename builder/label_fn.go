// SPDX-License-Identifier: MIT
// Package: lvkernel/builder
//
// label_fn.go - node and edge label schemes.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvkernel/core"
)

// LabelFn returns the label of node i. rng is the configured RNG (may be nil).
type LabelFn func(i int, rng *rand.Rand) core.Label

// EdgeLabelFn returns the label of edge (u,v).
type EdgeLabelFn func(u, v int, rng *rand.Rand) core.Label

// ConstantLabels labels every node l.
func ConstantLabels(l core.Label) LabelFn {
	return func(int, *rand.Rand) core.Label { return l }
}

// CyclicLabels labels node i with labels[i mod len(labels)].
// An empty list behaves like ConstantLabels(0).
func CyclicLabels(labels ...core.Label) LabelFn {
	ls := append([]core.Label(nil), labels...)

	return func(i int, _ *rand.Rand) core.Label {
		if len(ls) == 0 {
			return 0
		}

		return ls[i%len(ls)]
	}
}

// RandomLabels draws node labels uniformly from [0, alphabet). With a nil
// RNG (or alphabet < 1) every node gets label 0, so the result stays
// deterministic.
func RandomLabels(alphabet int) LabelFn {
	return func(_ int, rng *rand.Rand) core.Label {
		if rng == nil || alphabet < 1 {
			return 0
		}

		return core.Label(rng.Intn(alphabet))
	}
}

// ConstantEdgeLabels labels every edge l.
func ConstantEdgeLabels(l core.Label) EdgeLabelFn {
	return func(int, int, *rand.Rand) core.Label { return l }
}

// EndpointSumLabels labels edge (u,v) with (u+v) mod modulus; modulus < 1
// is treated as 1.
func EndpointSumLabels(modulus int) EdgeLabelFn {
	if modulus < 1 {
		modulus = 1
	}

	return func(u, v int, _ *rand.Rand) core.Label { return core.Label((u + v) % modulus) }
}
