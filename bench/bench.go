// SPDX-License-Identifier: MIT
//
// File: bench.go
// Role: timed fit/transform loop, prometheus latency histogram, report.
// Concurrency:
//   - Run is sequential; each call owns its registry.

package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvkernel/config"
	"github.com/katalvlaran/lvkernel/core"
	"github.com/katalvlaran/lvkernel/kernel"
)

// Case is one kernel configuration to time.
type Case struct {
	Name       string
	Kernel     *kernel.Kernel
	Iterations int
}

// Result is the outcome of Run.
type Result struct {
	Name       string
	Iterations int

	// Matrix is the transform output of the last iteration.
	Matrix *mat.Dense

	// Score is Matrix[0][0], the headline number for a 1×1 run.
	Score float64

	// AvgLatency is the mean fit+transform duration.
	AvgLatency time.Duration

	// Registry holds the run's latency histogram and call counter.
	Registry *prometheus.Registry
}

// metrics are the per-run prometheus collectors.
type metrics struct {
	latency prometheus.Histogram
	calls   *prometheus.CounterVec
}

func newMetrics(reg *prometheus.Registry, kernelName string) (*metrics, error) {
	m := &metrics{
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "lvkernel",
			Subsystem:   "bench",
			Name:        "fit_transform_duration_seconds",
			Help:        "Duration of one fit+transform cycle in seconds",
			ConstLabels: prometheus.Labels{"kernel": kernelName},
			Buckets:     prometheus.ExponentialBuckets(0.000001, 4, 12), // 1µs to ~4s
		}),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "lvkernel",
			Subsystem:   "bench",
			Name:        "fit_transform_total",
			Help:        "Fit+transform cycles by result",
			ConstLabels: prometheus.Labels{"kernel": kernelName},
		}, []string{"result"}),
	}
	for _, c := range []prometheus.Collector{m.latency, m.calls} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("bench: register metrics: %w", err)
		}
	}

	return m, nil
}

// Run fits ref and transforms query c.Iterations times, timing each cycle.
//
// Errors:
//   - core.ErrInvalidParameter for a nil kernel or Iterations < 1.
//   - The first fit/transform error, wrapped; ctx cancellation is checked
//     before every iteration.
func Run(ctx context.Context, c Case, ref, query []*core.Graph) (Result, error) {
	if c.Kernel == nil || c.Iterations < 1 {
		return Result{}, fmt.Errorf("bench.Run(%s): kernel=%v iterations=%d: %w",
			c.Name, c.Kernel != nil, c.Iterations, core.ErrInvalidParameter)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	reg := prometheus.NewRegistry()
	m, err := newMetrics(reg, c.Kernel.Name())
	if err != nil {
		return Result{}, err
	}

	var out *mat.Dense
	var i int
	for i = 0; i < c.Iterations; i++ {
		if err = ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("bench.Run(%s): iteration %d: %w", c.Name, i, err)
		}
		start := time.Now()
		if err = c.Kernel.Fit(ref); err == nil {
			out, err = c.Kernel.Transform(ctx, query)
		}
		m.latency.Observe(time.Since(start).Seconds())
		if err != nil {
			m.calls.WithLabelValues("error").Inc()

			return Result{}, fmt.Errorf("bench.Run(%s): iteration %d: %w", c.Name, i, err)
		}
		m.calls.WithLabelValues("ok").Inc()
	}

	avg, err := averageLatency(m.latency)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Name:       c.Name,
		Iterations: c.Iterations,
		Matrix:     out,
		Score:      out.At(0, 0),
		AvgLatency: avg,
		Registry:   reg,
	}, nil
}

// averageLatency reads sum/count back out of the histogram.
func averageLatency(h prometheus.Histogram) (time.Duration, error) {
	var pb dto.Metric
	if err := h.Write(&pb); err != nil {
		return 0, fmt.Errorf("bench: read histogram: %w", err)
	}
	hist := pb.GetHistogram()
	if hist.GetSampleCount() == 0 {
		return 0, nil
	}
	secs := hist.GetSampleSum() / float64(hist.GetSampleCount())

	return time.Duration(secs * float64(time.Second)), nil
}

// Cases builds the three harness cases (random walk, labeled random walk,
// CSI) from configuration.
func Cases(cfg *config.Config, logger zerolog.Logger) ([]Case, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rwOpts, err := cfg.RandomWalkOptions(logger)
	if err != nil {
		return nil, err
	}

	rw, err := kernel.NewRandomWalk(cfg.Steps(), rwOpts...)
	if err != nil {
		return nil, fmt.Errorf("bench.Cases: %w", err)
	}
	rwl, err := kernel.NewRandomWalkLabeled(cfg.Steps(), rwOpts...)
	if err != nil {
		return nil, fmt.Errorf("bench.Cases: %w", err)
	}
	sm, err := kernel.NewSubgraphMatching(cfg.K(), cfg.WeightName(), cfg.CSIOptions(logger)...)
	if err != nil {
		return nil, fmt.Errorf("bench.Cases: %w", err)
	}

	n := cfg.Iterations()

	return []Case{
		{Name: "Random Walk", Kernel: rw, Iterations: n},
		{Name: "Random Walk Labeled", Kernel: rwl, Iterations: n},
		{Name: "Subgraph Matching", Kernel: sm, Iterations: n},
	}, nil
}

// Report writes one block per result: name, score and average latency.
func Report(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s\n  score:       %.4f\n  avg latency: %s over %d runs\n",
			r.Name, r.Score, r.AvgLatency, r.Iterations); err != nil {
			return err
		}
	}

	return nil
}
