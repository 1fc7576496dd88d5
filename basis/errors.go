// SPDX-License-Identifier: MIT

package basis

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ssmethod/matrix"
)

var (
	// ErrNilSamples indicates Extract was called without a sample matrix.
	ErrNilSamples = errors.New("basis: samples matrix is nil")

	// ErrInvalidSize indicates a requested basis size outside [1, n_features].
	ErrInvalidSize = errors.New("basis: invalid basis size")

	// ErrInsufficientSamples indicates the class has too few (or too
	// degenerate) samples to yield the requested number of directions.
	ErrInsufficientSamples = errors.New("basis: insufficient samples")

	// ErrBadBasisShape indicates a custom function returned a matrix that is
	// not size × n_features.
	ErrBadBasisShape = errors.New("basis: basis has wrong shape")

	// ErrNilFunc indicates a nil custom basis function.
	ErrNilFunc = errors.New("basis: nil basis function")

	// ErrUnknownKind indicates a basis kind outside {pca, laplacian, custom}.
	ErrUnknownKind = errors.New("basis: unknown basis kind")

	// ErrUnknownSolver indicates a PCA solver outside {svd, jacobi}.
	ErrUnknownSolver = errors.New("basis: unknown solver")

	// ErrBadTolerance indicates a rank tolerance outside (0, 1).
	ErrBadTolerance = errors.New("basis: rank tolerance must be in (0, 1)")

	// ErrDecomposition indicates a numeric factorization did not succeed.
	ErrDecomposition = errors.New("basis: decomposition failed")
)

// basisErrorf prefixes err with the operation name.
func basisErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// checkRequest enforces the contract shared by every extractor.
func checkRequest(op string, samples *matrix.Dense, size int) (rows, cols int, err error) {
	if samples == nil {
		return 0, 0, basisErrorf(op, ErrNilSamples)
	}
	rows, cols = samples.Shape()
	if size < 1 || size > cols {
		return 0, 0, basisErrorf(op, fmt.Errorf("size %d not in [1, %d]: %w", size, cols, ErrInvalidSize))
	}

	return rows, cols, nil
}
