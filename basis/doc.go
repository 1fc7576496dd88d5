// SPDX-License-Identifier: MIT

// Package basis extracts a low-dimensional linear basis from the samples of a
// single class.
//
// What
//
//   - Extractor is the strategy interface: Extract(samples, size) returns a
//     size × n_features matrix whose rows span the dominant variation of the
//     samples.
//   - PCA: principal directions of the centered samples, by descending
//     variance. Two solvers: thin SVD (gonum) or cyclic Jacobi on the scatter
//     matrix (package matrix).
//   - Laplacian: locality preserving projection over a kNN affinity graph
//     (package affinity). Solves Xᵀ L X v = λ Xᵀ D X v for the smallest λ.
//   - Func: any caller-supplied function with the Extract signature.
//
// Contracts
//
//   - PCA rows are orthonormal. Laplacian rows have unit length but are not
//     mutually orthogonal. Func rows are whatever the caller returns; only the
//     shape is checked.
//   - Every built-in basis is sign-normalized (largest-magnitude entry of each
//     row positive), so repeated extractions with the same solver agree.
//
// Errors
//
//   - ErrInvalidSize        size < 1 or size > n_features
//   - ErrInsufficientSamples fewer samples than requested directions, or a
//     rank-deficient Laplacian problem
//   - ErrBadBasisShape      a Func returned the wrong shape
//
// Complexity (n samples, d features, k = size)
//
//   - PCA/SVD: O(n·d·min(n,d)). PCA/Jacobi: O(n·d² + sweeps·d³).
//   - Laplacian: O(n²·d + n·d² + d³).
package basis
