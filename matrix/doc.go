// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 linear-algebra layer used by the
// subspace classifier: a row-major Dense container, input sanitation for
// sample matrices, and the handful of kernels that basis extraction and
// projection scoring need.
//
// What
//
//   - Dense: row-major r×c storage in a single flat slice (offset = i*c + j).
//   - FromRows / FromFlat: turn caller data into a validated Dense
//     (non-empty, rectangular, finite unless explicitly allowed).
//   - Kernels: Mul, Transpose, ScaleRows, Symmetrize.
//   - Statistics: CenterColumns, Scatter, NormalizeRowsL2.
//   - Spectral: Eigen (cyclic Jacobi for symmetric matrices) and
//     SortEigenDesc for ranked eigenpairs.
//   - Bridges to gonum (ToGonum, ToSymGonum, FromGonum) for the solvers that
//     delegate to gonum.org/v1/gonum/mat.
//
// Determinism
//
//	Every loop runs in a fixed i→j(→k) order and no kernel reads from a map, so
//	identical inputs always produce bit-identical outputs.
//
// Errors
//
//	All functions return package sentinels (ErrInvalidDimensions, ErrRagged,
//	ErrNaNInf, ErrDimensionMismatch, ...) wrapped with an operation tag:
//
//	  "Mul: matrix: dimension mismatch"
//
//	Match them with errors.Is. No function panics on user input.
//
// Complexity (r = rows, c = cols, n = order of a square matrix)
//
//   - FromRows: O(r*c). Mul: O(r*k*c). Eigen: O(sweeps * n^3).
package matrix
