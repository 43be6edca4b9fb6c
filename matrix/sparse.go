// SPDX-License-Identifier: MIT

// Package matrix - Sparse CSR storage & walk propagation.
//
// Purpose:
//   - Store a 0/1 adjacency as rowPtr/colIdx (CSR): row i owns colIdx[rowPtr[i]:rowPtr[i+1]].
//   - Keep every row sorted and duplicate-free so HasEntry can binary search.
//   - Provide MulVec in O(nnz) with a fixed loop order (bit-identical results run to run).
//
// Complexity quicksheet:
//   - NewSparse: O(n + nnz log d); MulVec: O(n + nnz); HasEntry: O(log d); Row: O(1).

package matrix

import (
	"fmt"
	"sort"
)

// Sparse is an immutable n×n 0/1 matrix in compressed-row form.
type Sparse struct {
	n      int
	rowPtr []int // len n+1, rowPtr[0] == 0
	colIdx []int // len nnz, sorted within each row
}

// NewSparse builds an n×n Sparse from per-row column lists.
//
// Implementation:
//   - Stage 1: validate n >= 0 and len(rows) == n (ErrBadShape).
//   - Stage 2: copy each row, sort it, drop duplicates, range-check columns.
//   - Stage 3: pack into rowPtr/colIdx.
//
// Inputs are copied; rows may be reused by the caller afterwards.
//
// Errors:
//   - ErrBadShape, ErrOutOfRange (wrapped with the offending row).
//
// Complexity:
//   - Time O(n + nnz log d), Space O(n + nnz).
func NewSparse(n int, rows [][]int) (*Sparse, error) {
	if n < 0 || len(rows) != n {
		return nil, fmt.Errorf("NewSparse: n=%d, rows=%d: %w", n, len(rows), ErrBadShape)
	}

	total := 0
	for _, r := range rows {
		total += len(r)
	}
	s := &Sparse{
		n:      n,
		rowPtr: make([]int, n+1),
		colIdx: make([]int, 0, total),
	}

	var (
		i, j int
		buf  []int
	)
	for i = 0; i < n; i++ {
		buf = append(buf[:0], rows[i]...)
		sort.Ints(buf)
		for j = range buf {
			if buf[j] < 0 || buf[j] >= n {
				return nil, fmt.Errorf("NewSparse: row %d column %d: %w", i, buf[j], ErrOutOfRange)
			}
			if j > 0 && buf[j] == buf[j-1] {
				continue
			}
			s.colIdx = append(s.colIdx, buf[j])
		}
		s.rowPtr[i+1] = len(s.colIdx)
	}

	return s, nil
}

// Dim returns n. Complexity: O(1).
func (s *Sparse) Dim() int { return s.n }

// NNZ returns the number of stored (non-zero) entries. Complexity: O(1).
func (s *Sparse) NNZ() int { return len(s.colIdx) }

// Row returns the sorted column indices of row i, or nil when i is out of range.
// The slice aliases internal storage and must be treated as read-only.
// Complexity: O(1).
func (s *Sparse) Row(i int) []int {
	if i < 0 || i >= s.n {
		return nil
	}
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]

	return s.colIdx[lo:hi:hi]
}

// HasEntry reports whether (i,j) is non-zero. Out-of-range indices report false.
// Complexity: O(log deg(i)).
func (s *Sparse) HasEntry(i, j int) bool {
	row := s.Row(i)
	k := sort.SearchInts(row, j)

	return k < len(row) && row[k] == j
}

// MulVec computes dst = A·x.
//
// Implementation:
//   - Stage 1: validate len(dst) == len(x) == n (ErrDimensionMismatch).
//   - Stage 2: for each row, sum x over its column list in ascending order.
//
// dst and x must not share backing storage.
//
// Complexity:
//   - Time O(n + nnz), Space O(1).
func (s *Sparse) MulVec(dst, x []float64) error {
	if len(dst) != s.n || len(x) != s.n {
		return fmt.Errorf("MulVec: n=%d, len(dst)=%d, len(x)=%d: %w", s.n, len(dst), len(x), ErrDimensionMismatch)
	}
	var (
		i, k int
		acc  float64
	)
	for i = 0; i < s.n; i++ {
		acc = 0
		for k = s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			acc += x[s.colIdx[k]]
		}
		dst[i] = acc
	}

	return nil
}

// Symmetric reports whether A equals its transpose. Complexity: O(nnz log d).
func (s *Sparse) Symmetric() bool {
	var i int
	for i = 0; i < s.n; i++ {
		for _, j := range s.Row(i) {
			if !s.HasEntry(j, i) {
				return false
			}
		}
	}

	return true
}
