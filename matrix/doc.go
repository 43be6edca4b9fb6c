// Package matrix provides the sparse adjacency representation that product
// graphs are stored in, plus converters to gonum dense types.
//
// The package provides:
//
//   - Sparse: an immutable n×n 0/1 matrix in compressed-row (CSR) form with
//     an O(nnz) MulVec, which is the inner loop of every finite random-walk
//     series.
//   - Dense / Sym: conversion into gonum's mat.Dense / mat.SymDense for the
//     closed-form series (linear solve, matrix exponential).
//   - SpectralRadius: the largest eigenvalue magnitude, used to decide
//     whether a geometric walk series converges.
//
// Product graphs over two molecules are sparse (a few edges per node pair)
// while their node count is the product of both orders, so the dense form
// is built only when a closed form is requested.
package matrix
