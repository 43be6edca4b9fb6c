// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvkernel/core"
	"github.com/katalvlaran/lvkernel/csi"
	"github.com/katalvlaran/lvkernel/randomwalk"
)

// Sentinel errors for the facade.
var (
	// ErrNotFitted is returned by Transform when no reference set is stored.
	ErrNotFitted = errors.New("kernel: not fitted")

	// ErrEmptyBatch is returned by Transform for an empty query batch.
	ErrEmptyBatch = errors.New("kernel: empty query batch")

	// ErrInvalidParameter is the shared root for configuration errors.
	ErrInvalidParameter = core.ErrInvalidParameter
)

// Family identifies the kernel engine.
type Family int

const (
	// RandomWalk is the label-agnostic random-walk kernel.
	RandomWalk Family = iota
	// RandomWalkLabeled is the label-aware random-walk kernel.
	RandomWalkLabeled
	// SubgraphMatching is the CSI kernel.
	SubgraphMatching
)

// String returns the kernel name used in logs and reports.
func (f Family) String() string {
	switch f {
	case RandomWalk:
		return "random_walk"
	case RandomWalkLabeled:
		return "random_walk_labeled"
	case SubgraphMatching:
		return "subgraph_matching"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// Config is the resolved, read-only configuration of a Kernel.
type Config struct {
	Family Family

	// Random walk.
	Steps     int
	Decay     float64
	Series    randomwalk.Series
	Unbounded bool

	// CSI.
	K      int
	Weight csi.WeightFunction

	// Workers bounds concurrent pair evaluations in Transform.
	Workers int
}

// Option configures a Kernel at construction. Invalid values are recorded
// and reported by the constructor as ErrInvalidParameter.
type Option func(*settings)

// settings collects options before validation.
type settings struct {
	rw      []randomwalk.Option
	rwOnly  []string
	workers int
	logger  zerolog.Logger
	err     error
}

func defaultSettings() settings {
	return settings{
		workers: runtime.GOMAXPROCS(0),
		logger:  zerolog.Nop(),
	}
}

// WithDecay sets the random-walk decay λ (> 0, finite).
func WithDecay(lambda float64) Option {
	return func(s *settings) {
		s.rw = append(s.rw, randomwalk.WithDecay(lambda))
		s.rwOnly = append(s.rwOnly, "WithDecay")
	}
}

// WithSeries selects the random-walk coefficient series.
func WithSeries(series randomwalk.Series) Option {
	return func(s *settings) {
		s.rw = append(s.rw, randomwalk.WithSeries(series))
		s.rwOnly = append(s.rwOnly, "WithSeries")
	}
}

// WithUnbounded sums walks of every length in closed form.
func WithUnbounded() Option {
	return func(s *settings) {
		s.rw = append(s.rw, randomwalk.WithUnbounded())
		s.rwOnly = append(s.rwOnly, "WithUnbounded")
	}
}

// WithWorkers bounds the goroutines Transform uses (n ≥ 1).
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n < 1 {
			s.fail(fmt.Errorf("WithWorkers(%d): must be ≥ 1: %w", n, ErrInvalidParameter))
			return
		}
		s.workers = n
	}
}

// WithLogger sets the logger for fit/transform events (default: disabled).
func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

func (s *settings) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}
