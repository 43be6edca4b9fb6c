// SPDX-License-Identifier: MIT

package csi

import (
	"fmt"

	"github.com/katalvlaran/lvkernel/core"
)

// ErrUnknownWeightFunction is returned for a weight function outside the
// closed set. It matches core.ErrInvalidParameter.
var ErrUnknownWeightFunction = fmt.Errorf("csi: unknown weight function: %w", core.ErrInvalidParameter)

// WeightFunction maps a correspondence size to its contribution.
type WeightFunction int

const (
	// Uniform counts every correspondence once.
	Uniform WeightFunction = iota
	// Increasing weighs a correspondence by its size.
	Increasing
	// Decreasing weighs a correspondence by 1/size.
	Decreasing
	// StrongDecreasing weighs a correspondence by 1/size².
	StrongDecreasing
)

var weightNames = [...]string{
	Uniform:          "uniform",
	Increasing:       "increasing",
	Decreasing:       "decreasing",
	StrongDecreasing: "strong_decreasing",
}

// ParseWeightFunction maps a configuration name to a WeightFunction.
func ParseWeightFunction(name string) (WeightFunction, error) {
	for w, n := range weightNames {
		if n == name {
			return WeightFunction(w), nil
		}
	}

	return 0, fmt.Errorf("ParseWeightFunction(%q): %w", name, ErrUnknownWeightFunction)
}

// Valid reports whether w belongs to the closed set.
func (w WeightFunction) Valid() bool { return w >= Uniform && w <= StrongDecreasing }

// String returns the configuration name of w.
func (w WeightFunction) String() string {
	if !w.Valid() {
		return fmt.Sprintf("weight(%d)", int(w))
	}

	return weightNames[w]
}

// Weight returns lw(size). Sizes below 1 weigh 0.
func (w WeightFunction) Weight(size int) float64 {
	if size < 1 {
		return 0
	}
	s := float64(size)
	switch w {
	case Increasing:
		return s
	case Decreasing:
		return 1 / s
	case StrongDecreasing:
		return 1 / (s * s)
	default:
		return 1
	}
}

// Counts holds the number of correspondences per size: Counts[s] for
// s = 1..len(Counts)-1. Counts[0] is always 0.
type Counts []int

// Total returns the number of correspondences of every size.
func (c Counts) Total() int {
	t := 0
	for _, n := range c {
		t += n
	}

	return t
}

// MaxSize returns the size of the largest correspondence found, 0 if none.
func (c Counts) MaxSize() int {
	for s := len(c) - 1; s > 0; s-- {
		if c[s] > 0 {
			return s
		}
	}

	return 0
}

// Score returns Σ_s Counts[s]·lw(s).
func (c Counts) Score(w WeightFunction) float64 {
	score := 0.0
	for s := 1; s < len(c); s++ {
		score += float64(c[s]) * w.Weight(s)
	}

	return score
}
