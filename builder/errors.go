// SPDX-License-Identifier: MIT
// Package: lvkernel/builder
//
// errors.go - sentinel errors. Callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor or label scheme run without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a draft the core rejected.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid BuilderOption value.
var ErrOptionViolation = errors.New("builder: invalid option value")
