// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ssmethod/affinity"
	"github.com/katalvlaran/ssmethod/matrix"
)

// DefaultRankTol is the relative eigenvalue cutoff below which a direction of
// Xᵀ D X is treated as null.
const DefaultRankTol = 1e-10

// Laplacian extracts locality preserving directions.
type Laplacian struct {
	graphOpts []affinity.Option
	rankTol   float64
	log       zerolog.Logger
}

// LaplacianOption configures NewLaplacian.
type LaplacianOption func(*Laplacian)

// WithGraph forwards options to affinity.Build (neighbors, weighting, width).
func WithGraph(opts ...affinity.Option) LaplacianOption {
	return func(l *Laplacian) { l.graphOpts = append(l.graphOpts, opts...) }
}

// WithRankTol overrides DefaultRankTol.
func WithRankTol(tol float64) LaplacianOption {
	return func(l *Laplacian) { l.rankTol = tol }
}

// WithLogger attaches a logger; disconnected graphs are reported at warn level.
func WithLogger(log zerolog.Logger) LaplacianOption {
	return func(l *Laplacian) { l.log = log }
}

// NewLaplacian returns a Laplacian extractor. Graph options are checked
// against a one-sample probe, so a bad neighbor count or width fails here
// instead of on the first Extract.
func NewLaplacian(opts ...LaplacianOption) (*Laplacian, error) {
	l := &Laplacian{rankTol: DefaultRankTol, log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	if l.rankTol <= 0 || math.IsNaN(l.rankTol) || l.rankTol >= 1 {
		return nil, basisErrorf("NewLaplacian", fmt.Errorf("%g: %w", l.rankTol, ErrBadTolerance))
	}
	probe, err := matrix.NewDense(1, 1)
	if err != nil {
		return nil, basisErrorf("NewLaplacian", err)
	}
	if _, err = affinity.Build(probe, l.graphOpts...); err != nil {
		return nil, basisErrorf("NewLaplacian", err)
	}

	return l, nil
}

// Extract returns size locality preserving directions as unit-length rows,
// ordered by ascending generalized eigenvalue.
//
// Implementation:
//   - Stage 1: validate size; require at least size samples.
//   - Stage 2: kNN graph W, degrees D, L = D − W (package affinity).
//   - Stage 3: A = Xᵀ L X, B = Xᵀ D X (d×d).
//   - Stage 4: B = U Λ Uᵀ; keep λ > tol·λmax (rank r). r < size fails.
//     Whitening P = U_r Λ_r^{-1/2} maps the problem to Pᵀ A P y = μ y.
//   - Stage 5: eigenvectors of Pᵀ A P ascending; v = P y for the first size.
//   - Stage 6: L2-normalize and fix signs.
//
// Errors: ErrNilSamples, ErrInvalidSize, ErrInsufficientSamples, ErrDecomposition.
//
// AI-Hints:
//   - The rows are B-orthogonal, not orthogonal; squared-projection scoring
//     over them is an approximation of subspace distance.
func (l *Laplacian) Extract(samples *matrix.Dense, size int) (*matrix.Dense, error) {
	const op = "Laplacian"
	rows, _, err := checkRequest(op, samples, size)
	if err != nil {
		return nil, err
	}
	if rows < size {
		return nil, basisErrorf(op, fmt.Errorf("%d samples for %d directions: %w", rows, size, ErrInsufficientSamples))
	}

	g, err := affinity.Build(samples, l.graphOpts...)
	if err != nil {
		return nil, basisErrorf(op, err)
	}
	l.log.Debug().Int("order", g.Order()).Int("neighbors", g.K()).
		Stringer("weighting", g.Weighting()).Msg("affinity graph built")
	if _, n := g.Components(); n > 1 {
		l.log.Warn().Int("samples", rows).Int("components", n).Int("neighbors", g.K()).
			Msg("affinity graph is disconnected")
	}

	a, b, err := laplacianPair(samples, g)
	if err != nil {
		return nil, basisErrorf(op, err)
	}

	p, err := whiten(b, l.rankTol)
	if err != nil {
		return nil, basisErrorf(op, err)
	}
	if r := p.Cols(); r < size {
		return nil, basisErrorf(op, fmt.Errorf("rank %d for %d directions: %w", r, size, ErrInsufficientSamples))
	}

	pt, err := matrix.Transpose(p)
	if err != nil {
		return nil, basisErrorf(op, err)
	}
	ap, err := matrix.Mul(a, p)
	if err != nil {
		return nil, basisErrorf(op, err)
	}
	m, err := matrix.Mul(pt, ap)
	if err != nil {
		return nil, basisErrorf(op, err)
	}
	if m, err = matrix.Symmetrize(m); err != nil {
		return nil, basisErrorf(op, err)
	}
	_, ys, err := symEigen(m) // ascending, eigenvectors as columns
	if err != nil {
		return nil, basisErrorf(op, err)
	}

	v, err := matrix.Mul(p, ys) // d × r
	if err != nil {
		return nil, basisErrorf(op, err)
	}
	vt, err := matrix.Transpose(v)
	if err != nil {
		return nil, basisErrorf(op, err)
	}
	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}
	if vt, err = vt.SelectRows(idx); err != nil {
		return nil, basisErrorf(op, err)
	}
	out, _, err := matrix.NormalizeRowsL2(vt)
	if err != nil {
		return nil, basisErrorf(op, err)
	}
	matrix.FixSigns(out)

	return out, nil
}

// laplacianPair returns A = Xᵀ L X and B = Xᵀ D X, both symmetrized.
func laplacianPair(x *matrix.Dense, g *affinity.Graph) (*matrix.Dense, *matrix.Dense, error) {
	xt, err := matrix.Transpose(x)
	if err != nil {
		return nil, nil, err
	}
	lx, err := matrix.Mul(g.Laplacian(), x)
	if err != nil {
		return nil, nil, err
	}
	a, err := matrix.Mul(xt, lx)
	if err != nil {
		return nil, nil, err
	}
	dx, err := matrix.ScaleRows(x, g.Degrees())
	if err != nil {
		return nil, nil, err
	}
	b, err := matrix.Mul(xt, dx)
	if err != nil {
		return nil, nil, err
	}
	if a, err = matrix.Symmetrize(a); err != nil {
		return nil, nil, err
	}
	if b, err = matrix.Symmetrize(b); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// whiten returns P = U_r Λ_r^{-1/2} over the numerically nonzero spectrum of
// the positive semidefinite b, so that Pᵀ b P = I. The column count of P is
// the numerical rank; a zero-rank b yields ErrInsufficientSamples.
func whiten(b *matrix.Dense, tol float64) (*matrix.Dense, error) {
	vals, vecs, err := symEigen(b)
	if err != nil {
		return nil, err
	}
	d := len(vals)
	maxVal := vals[d-1]
	if maxVal <= 0 {
		return nil, fmt.Errorf("degree-weighted scatter is zero: %w", ErrInsufficientSamples)
	}
	cut := tol * maxVal
	keep := make([]int, 0, d)
	for j := d - 1; j >= 0; j-- {
		if vals[j] > cut {
			keep = append(keep, j)
		}
	}

	p, err := matrix.NewDense(d, len(keep))
	if err != nil {
		return nil, err
	}
	pd, vd := p.RawData(), vecs.RawData()
	r := len(keep)
	for k, j := range keep {
		s := 1.0 / math.Sqrt(vals[j])
		for i := 0; i < d; i++ {
			pd[i*r+k] = vd[i*d+j] * s
		}
	}

	return p, nil
}

// symEigen runs gonum's symmetric eigensolver. Eigenvalues are ascending and
// eigenvectors are the COLUMNS of the returned matrix.
func symEigen(m *matrix.Dense) ([]float64, *matrix.Dense, error) {
	sym, err := matrix.ToSymGonum(m)
	if err != nil {
		return nil, nil, err
	}
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, fmt.Errorf("symmetric eigendecomposition: %w", ErrDecomposition)
	}
	var ev mat.Dense
	es.VectorsTo(&ev)
	vecs, err := matrix.FromGonum(&ev)
	if err != nil {
		return nil, nil, err
	}

	return es.Values(nil), vecs, nil
}
