// SPDX-License-Identifier: MIT
//
// File: conversions.go
// Role: Sparse → gonum dense types, and spectral radius.
// Determinism:
//   - Dense fills in row-major order; gonum's LAPACK-backed routines are
//     deterministic for a fixed input.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Dense returns A as a gonum *mat.Dense.
//
// Errors:
//   - ErrEmpty for a 0×0 matrix (gonum does not allow zero-length dense matrices).
//
// Complexity: Time O(n² + nnz), Space O(n²).
func (s *Sparse) Dense() (*mat.Dense, error) {
	if s.n == 0 {
		return nil, fmt.Errorf("Dense: %w", ErrEmpty)
	}
	d := mat.NewDense(s.n, s.n, nil)
	var i int
	for i = 0; i < s.n; i++ {
		for _, j := range s.Row(i) {
			d.Set(i, j, 1)
		}
	}

	return d, nil
}

// Sym returns A as a gonum *mat.SymDense.
//
// Errors:
//   - ErrEmpty for a 0×0 matrix.
//   - ErrAsymmetry when A is not symmetric.
//
// Complexity: Time O(n² + nnz log d), Space O(n²).
func (s *Sparse) Sym() (*mat.SymDense, error) {
	if s.n == 0 {
		return nil, fmt.Errorf("Sym: %w", ErrEmpty)
	}
	if !s.Symmetric() {
		return nil, fmt.Errorf("Sym: %w", ErrAsymmetry)
	}
	sym := mat.NewSymDense(s.n, nil)
	var i int
	for i = 0; i < s.n; i++ {
		for _, j := range s.Row(i) {
			if j >= i {
				sym.SetSym(i, j, 1)
			}
		}
	}

	return sym, nil
}

// SpectralRadius returns max |λ| over the eigenvalues of A.
//
// Implementation:
//   - Stage 1: empty matrix or no entries → 0.
//   - Stage 2: symmetric A → mat.EigenSym (real spectrum).
//   - Stage 3: otherwise → mat.Eigen, magnitude of complex eigenvalues.
//
// Errors:
//   - ErrEigenFailed when the factorization does not converge.
//
// Complexity: Time O(n³), Space O(n²).
func (s *Sparse) SpectralRadius() (float64, error) {
	if s.n == 0 || s.NNZ() == 0 {
		return 0, nil
	}

	if sym, err := s.Sym(); err == nil {
		var es mat.EigenSym
		if ok := es.Factorize(sym, false); !ok {
			return 0, fmt.Errorf("SpectralRadius: %w", ErrEigenFailed)
		}
		rho := 0.0
		for _, v := range es.Values(nil) {
			rho = math.Max(rho, math.Abs(v))
		}

		return rho, nil
	}

	d, err := s.Dense()
	if err != nil {
		return 0, fmt.Errorf("SpectralRadius: %w", err)
	}
	var eg mat.Eigen
	if ok := eg.Factorize(d, mat.EigenNone); !ok {
		return 0, fmt.Errorf("SpectralRadius: %w", ErrEigenFailed)
	}
	rho := 0.0
	for _, v := range eg.Values(nil) {
		rho = math.Max(rho, cmplx.Abs(v))
	}

	return rho, nil
}
