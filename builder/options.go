// SPDX-License-Identifier: MIT
// Package: lvkernel/builder
//
// options.go - functional options for BuildGraph.
//
// Contract:
//   - Options never panic. A meaningless value (nil function, nil RNG) is
//     recorded and BuildGraph fails with ErrOptionViolation.
//   - Determinism is explicit: randomness only through WithSeed / WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes BuildGraph by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithNodeLabels labels every node with fn.
func WithNodeLabels(fn LabelFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.fail("WithNodeLabels(nil)")
			return
		}
		c.nodeLabelFn = fn
	}
}

// WithEdgeLabels labels every edge with fn. For undirected graphs fn is
// called once per edge with u < v.
func WithEdgeLabels(fn EdgeLabelFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.fail("WithEdgeLabels(nil)")
			return
		}
		c.edgeLabelFn = fn
	}
}

// WithDirected builds a directed graph. Path, Star and Wheel emit arcs from
// lower to higher index, Cycle closes with n-1→0, Complete emits both arcs.
func WithDirected() BuilderOption {
	return func(c *builderConfig) { c.directed = true }
}

// WithRand provides an explicit RNG.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r == nil {
			c.fail("WithRand(nil)")
			return
		}
		c.rng = r
	}
}

// WithSeed creates a seeded RNG; use it to freeze RandomSparse and RandomLabels.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// fail records the first violation.
func (c *builderConfig) fail(what string) {
	if c.err == nil {
		c.err = fmt.Errorf("%s: %w", what, ErrOptionViolation)
	}
}
