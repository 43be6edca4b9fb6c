// SPDX-License-Identifier: MIT
// Package: lvkernel/builder
//
// config.go - resolved builder configuration.

package builder

import "math/rand"

// builderConfig is the immutable result of applying BuilderOptions.
type builderConfig struct {
	// nodeLabelFn labels node i of the final graph; nil means unlabeled.
	nodeLabelFn LabelFn

	// edgeLabelFn labels edge (u,v); nil means unlabeled.
	edgeLabelFn EdgeLabelFn

	// directed emits arcs instead of undirected edges.
	directed bool

	// rng drives RandomSparse and RandomLabels; nil unless set.
	rng *rand.Rand

	// err is the first option violation.
	err error
}

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
