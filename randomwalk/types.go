// SPDX-License-Identifier: MIT

package randomwalk

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvkernel/core"
)

const (
	// DefaultSteps is the maximal walk length p used when none is given.
	DefaultSteps = 4

	// DefaultDecay is the series decay λ used when none is given.
	DefaultDecay = 0.1
)

// ErrDivergent is returned when the unbounded geometric series does not converge.
var ErrDivergent = errors.New("randomwalk: geometric series diverges (decay·ρ(A×) ≥ 1)")

// Series selects the walk-length coefficients μ_k.
type Series int

const (
	// Geometric weighs length-k walks by λ^k.
	Geometric Series = iota
	// Exponential weighs length-k walks by λ^k / k!.
	Exponential
)

// String returns the configuration name of s.
func (s Series) String() string {
	switch s {
	case Geometric:
		return "geometric"
	case Exponential:
		return "exponential"
	default:
		return fmt.Sprintf("series(%d)", int(s))
	}
}

// ParseSeries maps "geometric" / "exponential" to a Series.
func ParseSeries(name string) (Series, error) {
	switch name {
	case "geometric":
		return Geometric, nil
	case "exponential":
		return Exponential, nil
	default:
		return 0, fmt.Errorf("ParseSeries: unknown series %q: %w", name, core.ErrInvalidParameter)
	}
}

// Option configures Compute. Invalid values are recorded and reported by
// Compute (and Options.Validate) as core.ErrInvalidParameter.
type Option func(*Options)

// Options holds the random-walk parameters.
type Options struct {
	// Steps is the maximal walk length p. Ignored when Unbounded.
	Steps int

	// Decay is λ > 0.
	Decay float64

	// Series selects μ_k.
	Series Series

	// Unbounded evaluates the infinite series in closed form.
	Unbounded bool

	// Labeled restricts the product to label-equal nodes and edges.
	Labeled bool

	err error
}

// DefaultOptions returns p = DefaultSteps, λ = DefaultDecay, geometric,
// finite, label-agnostic.
func DefaultOptions() Options {
	return Options{
		Steps:  DefaultSteps,
		Decay:  DefaultDecay,
		Series: Geometric,
	}
}

// WithSteps sets the maximal walk length p (p ≥ 0).
func WithSteps(p int) Option {
	return func(o *Options) {
		if p < 0 {
			o.err = fmt.Errorf("steps must be non-negative (%d): %w", p, core.ErrInvalidParameter)
			return
		}
		o.Steps = p
	}
}

// WithDecay sets λ; it must be positive and finite.
func WithDecay(lambda float64) Option {
	return func(o *Options) {
		if !(lambda > 0) || math.IsInf(lambda, 0) {
			o.err = fmt.Errorf("decay must be positive and finite (%v): %w", lambda, core.ErrInvalidParameter)
			return
		}
		o.Decay = lambda
	}
}

// WithSeries selects the coefficient series.
func WithSeries(s Series) Option {
	return func(o *Options) {
		if s != Geometric && s != Exponential {
			o.err = fmt.Errorf("unknown series %d: %w", int(s), core.ErrInvalidParameter)
			return
		}
		o.Series = s
	}
}

// WithUnbounded sums walks of every length in closed form.
func WithUnbounded() Option {
	return func(o *Options) { o.Unbounded = true }
}

// WithLabels builds the label-aware product.
func WithLabels() Option {
	return func(o *Options) { o.Labeled = true }
}

// NewOptions applies opts over DefaultOptions and validates the result.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.Validate()
}

// Validate reports the first recorded option violation, or a bad field set directly.
func (o Options) Validate() error {
	if o.err != nil {
		return o.err
	}
	if o.Steps < 0 || !(o.Decay > 0) || math.IsInf(o.Decay, 0) {
		return fmt.Errorf("steps=%d decay=%v: %w", o.Steps, o.Decay, core.ErrInvalidParameter)
	}
	if o.Series != Geometric && o.Series != Exponential {
		return fmt.Errorf("unknown series %d: %w", int(o.Series), core.ErrInvalidParameter)
	}

	return nil
}
