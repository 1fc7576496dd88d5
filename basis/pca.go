// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ssmethod/matrix"
)

// Solver selects the factorization behind PCA.
type Solver int

const (
	// SolverSVD runs a thin SVD of the centered samples (gonum).
	SolverSVD Solver = iota
	// SolverJacobi diagonalizes the scatter matrix with cyclic Jacobi rotations.
	SolverJacobi
)

// String returns the configuration spelling of s.
func (s Solver) String() string {
	switch s {
	case SolverSVD:
		return "svd"
	case SolverJacobi:
		return "jacobi"
	default:
		return fmt.Sprintf("Solver(%d)", int(s))
	}
}

// ParseSolver accepts "svd" (or "") and "jacobi".
func ParseSolver(s string) (Solver, error) {
	switch s {
	case "", "svd":
		return SolverSVD, nil
	case "jacobi":
		return SolverJacobi, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownSolver)
	}
}

// PCA extracts principal directions. The zero value uses SolverSVD.
type PCA struct {
	solver Solver
}

// PCAOption configures NewPCA.
type PCAOption func(*PCA)

// WithSolver selects the PCA factorization.
func WithSolver(s Solver) PCAOption {
	return func(p *PCA) { p.solver = s }
}

// NewPCA returns a PCA extractor.
// Errors: ErrUnknownSolver.
func NewPCA(opts ...PCAOption) (*PCA, error) {
	p := &PCA{solver: SolverSVD}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.solver != SolverSVD && p.solver != SolverJacobi {
		return nil, basisErrorf("NewPCA", ErrUnknownSolver)
	}

	return p, nil
}

// Solver reports the configured factorization.
func (p *PCA) Solver() Solver { return p.solver }

// Extract returns the top-size principal directions of samples as rows,
// ordered by descending explained variance.
//
// Implementation:
//   - Stage 1: validate size and require at least size samples.
//   - Stage 2: center columns.
//   - Stage 3: SVD → first size rows of Vᵀ; Jacobi → eigenvectors of
//     Xcᵀ Xc sorted by descending eigenvalue.
//   - Stage 4: fix signs.
//
// A single-sample class centers to zero; any unit vectors are then valid and
// the solver's choice is returned.
//
// Errors: ErrNilSamples, ErrInvalidSize, ErrInsufficientSamples, ErrDecomposition.
func (p *PCA) Extract(samples *matrix.Dense, size int) (*matrix.Dense, error) {
	const op = "PCA"
	rows, _, err := checkRequest(op, samples, size)
	if err != nil {
		return nil, err
	}
	if rows < size {
		return nil, basisErrorf(op, fmt.Errorf("%d samples for %d directions: %w", rows, size, ErrInsufficientSamples))
	}

	var out *matrix.Dense
	switch p.solver {
	case SolverJacobi:
		out, err = pcaJacobi(samples, size)
	default:
		out, err = pcaSVD(samples, size)
	}
	if err != nil {
		return nil, basisErrorf(op, err)
	}
	matrix.FixSigns(out)

	return out, nil
}

// pcaSVD factorizes the centered samples Xc = U Σ Vᵀ; singular values come
// out descending, so the leading columns of V are the leading directions.
func pcaSVD(samples *matrix.Dense, size int) (*matrix.Dense, error) {
	xc, _, err := matrix.CenterColumns(samples)
	if err != nil {
		return nil, err
	}
	g, err := matrix.ToGonum(xc)
	if err != nil {
		return nil, err
	}
	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDThin); !ok {
		return nil, fmt.Errorf("thin SVD: %w", ErrDecomposition)
	}
	var v mat.Dense
	svd.VTo(&v)

	return matrix.FromGonum(v.Slice(0, v.RawMatrix().Rows, 0, size).T())
}

// pcaJacobi diagonalizes the scatter matrix in-house.
func pcaJacobi(samples *matrix.Dense, size int) (*matrix.Dense, error) {
	s, _, err := matrix.Scatter(samples)
	if err != nil {
		return nil, err
	}
	vals, vecs, err := matrix.Eigen(s, matrix.DefaultEigenTol, matrix.DefaultEigenSweeps)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecomposition, err)
	}
	_, rowsVecs, err := matrix.SortEigenDesc(vals, vecs)
	if err != nil {
		return nil, err
	}
	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}

	return rowsVecs.SelectRows(idx)
}
