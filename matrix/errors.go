// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with method context
// via %w); tests check them with errors.Is. Nothing here panics on user input.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a dimension is negative or rows do not match n.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a column index outside [0,n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates vector lengths that do not match the matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a symmetric matrix was required but the input wasn't.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrEigenFailed indicates that the eigen decomposition did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrEmpty indicates an operation that is undefined on a 0×0 matrix.
	ErrEmpty = errors.New("matrix: empty matrix")
)
