// SPDX-License-Identifier: MIT
//
// File: randomwalk.go
// Role: finite walk propagation and gonum closed forms.
// Determinism:
//   - Row-ordered propagation; no maps, no goroutines.
// Concurrency:
//   - Pure functions over immutable inputs; safe to call concurrently.

package randomwalk

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvkernel/core"
	"github.com/katalvlaran/lvkernel/matrix"
	"github.com/katalvlaran/lvkernel/product"
)

// Unlabeled returns the label-agnostic random-walk kernel with walk length
// up to p and default decay.
func Unlabeled(g1, g2 *core.Graph, p int) (float64, error) {
	return Compute(g1, g2, WithSteps(p))
}

// Labeled returns the label-aware random-walk kernel with walk length up to
// p and default decay.
func Labeled(g1, g2 *core.Graph, p int) (float64, error) {
	return Compute(g1, g2, WithSteps(p), WithLabels())
}

// Compute evaluates the random-walk kernel of g1 and g2.
//
// Implementation:
//   - Stage 1: resolve and validate options.
//   - Stage 2: build the direct product (label-aware when Labeled).
//   - Stage 3: empty product → 0.
//   - Stage 4: Unbounded → closed form; otherwise propagate x_k = A×·x_{k-1}
//     from x_0 = 1 and accumulate μ_k·Σx_k for k = 0..p.
//
// Behavior highlights:
//   - p = 0 returns the number of product nodes.
//   - Compute(g1,g2) == Compute(g2,g1).
//
// Complexity: see package doc.
func Compute(g1, g2 *core.Graph, opts ...Option) (float64, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return 0, fmt.Errorf("randomwalk.Compute: %w", err)
	}

	return ComputeWith(g1, g2, o)
}

// ComputeWith is Compute for an already resolved Options value.
func ComputeWith(g1, g2 *core.Graph, o Options) (float64, error) {
	if err := o.Validate(); err != nil {
		return 0, fmt.Errorf("randomwalk.Compute: %w", err)
	}
	prod, err := product.Direct(g1, g2, o.Labeled)
	if err != nil {
		return 0, fmt.Errorf("randomwalk.Compute: %w", err)
	}
	if prod.Order() == 0 {
		return 0, nil
	}

	if o.Unbounded {
		return closedForm(prod.Adjacency(), o)
	}

	return finite(prod.Adjacency(), o)
}

// finite sums μ_k·1ᵀA^k·1 for k = 0..o.Steps.
func finite(a *matrix.Sparse, o Options) (float64, error) {
	n := a.Dim()
	x := make([]float64, n)
	next := make([]float64, n)
	for i := range x {
		x[i] = 1
	}

	total := float64(n) // μ_0 = 1 for both series
	mu := 1.0
	var k int
	for k = 1; k <= o.Steps; k++ {
		if err := a.MulVec(next, x); err != nil {
			return 0, fmt.Errorf("randomwalk.finite: %w", err)
		}
		mu *= coefficientStep(o, k)
		walks := sum(next)
		if walks == 0 {
			break // no walks of length k, none longer either
		}
		total += mu * walks
		x, next = next, x
	}

	return total, nil
}

// coefficientStep returns μ_k / μ_{k-1}.
func coefficientStep(o Options, k int) float64 {
	if o.Series == Exponential {
		return o.Decay / float64(k)
	}

	return o.Decay
}

// closedForm evaluates the infinite series with gonum.
//
//	Geometric:   1ᵀ (I − λA)⁻¹ 1, requires λ·ρ(A) < 1.
//	Exponential: 1ᵀ exp(λA) 1, always converges.
func closedForm(a *matrix.Sparse, o Options) (float64, error) {
	dense, err := a.Dense()
	if err != nil {
		return 0, fmt.Errorf("randomwalk.closedForm: %w", err)
	}
	n := a.Dim()

	var scaled mat.Dense
	scaled.Scale(o.Decay, dense)

	if o.Series == Exponential {
		var e mat.Dense
		e.Exp(&scaled)

		return mat.Sum(&e), nil
	}

	rho, err := a.SpectralRadius()
	if err != nil {
		return 0, fmt.Errorf("randomwalk.closedForm: %w", err)
	}
	if o.Decay*rho >= 1 {
		return 0, fmt.Errorf("randomwalk.closedForm: λ=%v ρ=%v: %w", o.Decay, rho, ErrDivergent)
	}

	// m = I − λA
	m := mat.NewDense(n, n, nil)
	m.Scale(-1, &scaled)
	var i int
	for i = 0; i < n; i++ {
		m.Set(i, i, m.At(i, i)+1)
	}

	ones := make([]float64, n)
	for i = range ones {
		ones[i] = 1
	}
	var x mat.VecDense
	if err = x.SolveVec(m, mat.NewVecDense(n, ones)); err != nil {
		return 0, fmt.Errorf("randomwalk.closedForm: %w: %w", ErrDivergent, err)
	}

	return mat.Sum(&x), nil
}

func sum(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x
	}

	return s
}
