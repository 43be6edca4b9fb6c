// SPDX-License-Identifier: MIT
// Package matrix_test covers Sparse construction, propagation and gonum conversion.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvkernel/matrix"
)

// path3 is the undirected path 0-1-2.
func path3(t *testing.T) *matrix.Sparse {
	t.Helper()
	s, err := matrix.NewSparse(3, [][]int{{1}, {2, 0}, {1}})
	require.NoError(t, err)

	return s
}

// TestNewSparse_SortsAndDedupes verifies row canonicalization.
func TestNewSparse_SortsAndDedupes(t *testing.T) {
	s, err := matrix.NewSparse(3, [][]int{{2, 1, 2}, nil, {0}})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Dim())
	assert.Equal(t, 3, s.NNZ())
	assert.Equal(t, []int{1, 2}, s.Row(0))
	assert.Empty(t, s.Row(1))
	assert.Nil(t, s.Row(5))
	assert.True(t, s.HasEntry(0, 2))
	assert.False(t, s.HasEntry(1, 0))
	assert.False(t, s.Symmetric())
}

// TestNewSparse_Errors checks shape and range validation.
func TestNewSparse_Errors(t *testing.T) {
	_, err := matrix.NewSparse(2, [][]int{{1}})
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewSparse(-1, nil)
	assert.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewSparse(2, [][]int{{2}, nil})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestMulVec counts walks on the path: A·1 = degrees, A·deg = (2,2,2).
func TestMulVec(t *testing.T) {
	s := path3(t)
	x := []float64{1, 1, 1}
	dst := make([]float64, 3)

	require.NoError(t, s.MulVec(dst, x))
	assert.Equal(t, []float64{1, 2, 1}, dst)

	next := make([]float64, 3)
	require.NoError(t, s.MulVec(next, dst))
	assert.Equal(t, []float64{2, 2, 2}, next)

	assert.ErrorIs(t, s.MulVec(make([]float64, 2), x), matrix.ErrDimensionMismatch)
}

// TestDenseAndSym checks gonum conversion.
func TestDenseAndSym(t *testing.T) {
	s := path3(t)

	d, err := s.Dense()
	require.NoError(t, err)
	r, c := d.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 1.0, d.At(0, 1))
	assert.Equal(t, 0.0, d.At(0, 2))

	sym, err := s.Sym()
	require.NoError(t, err)
	assert.Equal(t, 1.0, sym.At(2, 1))

	directed, err := matrix.NewSparse(2, [][]int{{1}, nil})
	require.NoError(t, err)
	_, err = directed.Sym()
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)

	empty, err := matrix.NewSparse(0, nil)
	require.NoError(t, err)
	_, err = empty.Dense()
	assert.ErrorIs(t, err, matrix.ErrEmpty)
}

// TestSpectralRadius compares against closed forms.
func TestSpectralRadius(t *testing.T) {
	// Path on 3 nodes: eigenvalues ±√2, 0.
	rho, err := path3(t).SpectralRadius()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, rho, 1e-12)

	// Directed 3-cycle: eigenvalues are the cube roots of unity.
	cyc, err := matrix.NewSparse(3, [][]int{{1}, {2}, {0}})
	require.NoError(t, err)
	rho, err = cyc.SpectralRadius()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rho, 1e-9)

	// No edges at all.
	iso, err := matrix.NewSparse(4, make([][]int, 4))
	require.NoError(t, err)
	rho, err = iso.SpectralRadius()
	require.NoError(t, err)
	assert.Equal(t, 0.0, rho)
}
