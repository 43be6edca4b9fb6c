// SPDX-License-Identifier: MIT
//
// File: kernel.go
// Role: constructors, Fit, Transform, FitTransform.
// Determinism:
//   - Each matrix cell is computed by a pure engine call; scheduling order
//     does not affect the result.
// Concurrency:
//   - RWMutex around the reference set; errgroup inside Transform.

package kernel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvkernel/core"
	"github.com/katalvlaran/lvkernel/csi"
	"github.com/katalvlaran/lvkernel/randomwalk"
)

// Kernel is a configured graph kernel holding an optional reference set.
// The zero value is not usable; construct with NewRandomWalk,
// NewRandomWalkLabeled or NewSubgraphMatching.
type Kernel struct {
	cfg Config
	rw  randomwalk.Options
	log zerolog.Logger

	mu   sync.RWMutex
	refs []*core.Graph
}

// NewRandomWalk returns the label-agnostic random-walk kernel with walk
// length up to p (p ≥ 0).
func NewRandomWalk(p int, opts ...Option) (*Kernel, error) {
	return newRandomWalk(RandomWalk, p, opts)
}

// NewRandomWalkLabeled returns the label-aware random-walk kernel with walk
// length up to p (p ≥ 0).
func NewRandomWalkLabeled(p int, opts ...Option) (*Kernel, error) {
	return newRandomWalk(RandomWalkLabeled, p, opts)
}

// NewSubgraphMatching returns the CSI kernel with size bound k ≥ 1 and the
// weight function named lw ("uniform", "increasing", "decreasing",
// "strong_decreasing").
func NewSubgraphMatching(k int, lw string, opts ...Option) (*Kernel, error) {
	s := resolve(opts)
	if s.err != nil {
		return nil, fmt.Errorf("NewSubgraphMatching: %w", s.err)
	}
	if len(s.rwOnly) > 0 {
		return nil, fmt.Errorf("NewSubgraphMatching: %s applies to random-walk kernels only: %w", s.rwOnly[0], ErrInvalidParameter)
	}
	if k < 1 {
		return nil, fmt.Errorf("NewSubgraphMatching: k=%d must be ≥ 1: %w", k, ErrInvalidParameter)
	}
	w, err := csi.ParseWeightFunction(lw)
	if err != nil {
		return nil, fmt.Errorf("NewSubgraphMatching: %w", err)
	}

	return &Kernel{
		cfg: Config{Family: SubgraphMatching, K: k, Weight: w, Workers: s.workers},
		log: s.logger,
	}, nil
}

func newRandomWalk(f Family, p int, opts []Option) (*Kernel, error) {
	s := resolve(opts)
	if s.err != nil {
		return nil, fmt.Errorf("New%s: %w", f, s.err)
	}

	rwOpts := append([]randomwalk.Option{randomwalk.WithSteps(p)}, s.rw...)
	if f == RandomWalkLabeled {
		rwOpts = append(rwOpts, randomwalk.WithLabels())
	}
	rw, err := randomwalk.NewOptions(rwOpts...)
	if err != nil {
		return nil, fmt.Errorf("New%s: %w", f, err)
	}

	return &Kernel{
		cfg: Config{
			Family:    f,
			Steps:     rw.Steps,
			Decay:     rw.Decay,
			Series:    rw.Series,
			Unbounded: rw.Unbounded,
			Workers:   s.workers,
		},
		rw:  rw,
		log: s.logger,
	}, nil
}

func resolve(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return s
}

// Name returns the kernel family name.
func (k *Kernel) Name() string { return k.cfg.Family.String() }

// Config returns the resolved configuration.
func (k *Kernel) Config() Config { return k.cfg }

// Fit stores graphs as the reference set, replacing any previous set.
// The slice is copied; the graphs are immutable and shared.
//
// Errors: core.ErrMalformedGraph when any element is nil; the previous
// reference set is kept in that case.
func (k *Kernel) Fit(graphs []*core.Graph) error {
	if err := checkGraphs("Fit", graphs); err != nil {
		return err
	}
	refs := append([]*core.Graph(nil), graphs...)

	k.mu.Lock()
	k.refs = refs
	k.mu.Unlock()

	k.log.Debug().Str("kernel", k.Name()).Int("refs", len(refs)).Msg("fit")

	return nil
}

// Transform scores every query graph against every reference graph.
//
// Implementation:
//   - Stage 1: validate the batch; take the read lock; require a fitted set.
//   - Stage 2: fan out |ref|·|query| pair tasks on an errgroup bounded by
//     Config().Workers; each task writes its own cell.
//   - Stage 3: wait; the first error cancels remaining tasks and is returned.
//
// Errors: ErrEmptyBatch, ErrNotFitted, core.ErrMalformedGraph, engine errors.
func (k *Kernel) Transform(ctx context.Context, graphs []*core.Graph) (*mat.Dense, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	if len(k.refs) == 0 {
		return nil, fmt.Errorf("Transform: %w", ErrNotFitted)
	}
	if len(graphs) == 0 {
		return nil, fmt.Errorf("Transform: %w", ErrEmptyBatch)
	}
	if err := checkGraphs("Transform", graphs); err != nil {
		return nil, err
	}

	start := time.Now()
	rows, cols := len(k.refs), len(graphs)
	data := make([]float64, rows*cols)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(k.cfg.Workers)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			ref, query, cell := k.refs[i], graphs[j], i*cols+j
			g.Go(func() error {
				score, err := k.pair(gctx, ref, query)
				if err != nil {
					return fmt.Errorf("pair (%d,%d): %w", cell/cols, cell%cols, err)
				}
				data[cell] = score

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		k.log.Debug().Str("kernel", k.Name()).Err(err).Msg("transform failed")

		return nil, fmt.Errorf("Transform: %w", err)
	}

	k.log.Debug().
		Str("kernel", k.Name()).
		Int("refs", rows).
		Int("queries", cols).
		Dur("elapsed", time.Since(start)).
		Msg("transform")

	return mat.NewDense(rows, cols, data), nil
}

// FitTransform fits graphs and scores them against themselves.
func (k *Kernel) FitTransform(ctx context.Context, graphs []*core.Graph) (*mat.Dense, error) {
	if err := k.Fit(graphs); err != nil {
		return nil, err
	}

	return k.Transform(ctx, graphs)
}

// pair evaluates k(ref, query) with the configured engine.
func (k *Kernel) pair(ctx context.Context, ref, query *core.Graph) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if k.cfg.Family == SubgraphMatching {
		return csi.Compute(ctx, ref, query, k.cfg.K, k.cfg.Weight)
	}

	return randomwalk.ComputeWith(ref, query, k.rw)
}

func checkGraphs(method string, graphs []*core.Graph) error {
	for i, g := range graphs {
		if g == nil {
			return fmt.Errorf("%s: graph %d: %w", method, i, core.ErrNilGraph)
		}
	}

	return nil
}
