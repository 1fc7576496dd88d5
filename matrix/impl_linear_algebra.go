// SPDX-License-Identifier: MIT
// Package matrix - linear-algebra kernels over *Dense.
//
// Purpose:
//   - The products, transposes and symmetric eigen-decomposition needed by
//     basis extraction (scatter matrices, generalized eigenproblems) and by
//     projection scoring.
//
// Determinism & Policy:
//   - Fixed loop orders (i→k→j for Mul; cyclic p<q sweeps for Jacobi).
//   - Inputs are never mutated; every kernel returns a fresh Dense.

package matrix

import (
	"math"
	"sort"
)

// Operation name constants for unified error wrapping.
const (
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opScaleRows  = "ScaleRows"
	opSymmetrize = "Symmetrize"
	opEigen      = "Eigen"
	opSortEigen  = "SortEigen"
)

// DefaultEigenTol is the relative off-diagonal tolerance used by callers that
// do not tune the Jacobi solver.
const DefaultEigenTol = 1e-12

// DefaultEigenSweeps bounds the number of cyclic Jacobi sweeps.
const DefaultEigenSweeps = 100

// Mul returns the matrix product a × b.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: i→k→j accumulation so the inner loop walks both b and the
//     output row contiguously.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
// Complexity: Time O(r*k*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	r, n, c := a.r, a.c, b.c
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, k, j int
	var aik float64
	for i = 0; i < r; i++ {
		orow := out.data[i*c : (i+1)*c]
		for k = 0; k < n; k++ {
			aik = a.data[i*n+k]
			if aik == 0 {
				continue
			}
			brow := b.data[k*c : (k+1)*c]
			for j = 0; j < c; j++ {
				orow[j] += aik * brow[j]
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	out := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// dot is the unchecked inner product; callers guarantee len(x) == len(y).
func dot(x, y []float64) float64 {
	var s float64
	for i := range x {
		s += x[i] * y[i]
	}

	return s
}

// ScaleRows returns a copy of m with row i multiplied by s[i].
// Used to form D·X for a diagonal D without materializing D.
// Complexity: O(r*c).
func ScaleRows(m *Dense, s []float64) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opScaleRows, ErrNilMatrix)
	}
	if err := ValidateVecLen(s, m.r); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	out := m.Clone()
	for i := 0; i < m.r; i++ {
		row := out.data[i*m.c : (i+1)*m.c]
		for j := range row {
			row[j] *= s[i]
		}
	}

	return out, nil
}

// Symmetrize returns (m + mᵀ)/2, repairing rounding drift in products such
// as Xᵀ(LX) before a symmetric eigensolver sees them.
// Complexity: O(n^2).
func Symmetrize(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	n := m.r
	out := m.Clone()
	var avg float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			avg = 0.5 * (m.data[i*n+j] + m.data[j*n+i])
			out.data[i*n+j], out.data[j*n+i] = avg, avg
		}
	}

	return out, nil
}

// Eigen decomposes a symmetric matrix with cyclic Jacobi rotations.
// Returns eigenvalues (unsorted, diagonal order) and Q whose COLUMNS are the
// corresponding orthonormal eigenvectors, so that A = Q·diag(λ)·Qᵀ.
//
// Implementation:
//   - Stage 1: validate square & symmetric (tolerance scaled by ‖A‖_F).
//   - Stage 2: sweep all pairs p<q in fixed order; rotate whenever A[p,q] != 0.
//     Rotation: θ = (a_qq − a_pp)/(2a_pq), t = sign(θ)/(|θ|+√(θ²+1)),
//     c = 1/√(t²+1), s = t·c; accumulate into Q.
//   - Stage 3: stop when off(A) <= tol·‖A‖_F; fail after maxSweeps.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry (wrapped "Eigen").
//   - ErrEigenFailed when the sweep budget is exhausted.
//
// Complexity:
//   - Time O(sweeps · n^3), Space O(n^2).
//
// AI-Hints:
//   - Pass DefaultEigenTol/DefaultEigenSweeps unless you have a reason not to.
//   - For large n prefer the gonum-backed paths (see gonum.go).
func Eigen(m *Dense, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		tol = DefaultEigenTol
	}
	if maxSweeps <= 0 {
		maxSweeps = DefaultEigenSweeps
	}
	n := m.r
	norm := frobenius(m.data)
	if err := ValidateSymmetric(m, tol*math.Max(norm, 1)); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	a := m.Clone().data
	q := make([]float64, n*n)
	for i := 0; i < n; i++ {
		q[i*n+i] = 1.0
	}

	var (
		sweep, p, r, i       int
		app, aqq, apq        float64
		theta, t, c, s       float64
		aip, aiq, qip, qiq   float64
		nip, niq             float64
		converged            bool
		threshold, offNormSq float64
	)
	threshold = tol * norm
	for sweep = 0; sweep < maxSweeps; sweep++ {
		offNormSq = offDiagonalSq(a, n)
		if math.Sqrt(offNormSq) <= threshold {
			converged = true
			break
		}
		for p = 0; p < n-1; p++ {
			for r = p + 1; r < n; r++ {
				apq = a[p*n+r]
				if apq == 0 {
					continue
				}
				app, aqq = a[p*n+p], a[r*n+r]
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				for i = 0; i < n; i++ {
					if i == p || i == r {
						continue
					}
					aip, aiq = a[i*n+p], a[i*n+r]
					nip = c*aip - s*aiq
					niq = s*aip + c*aiq
					a[i*n+p], a[p*n+i] = nip, nip
					a[i*n+r], a[r*n+i] = niq, niq
				}
				a[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
				a[r*n+r] = s*s*app + 2*c*s*apq + c*c*aqq
				a[p*n+r], a[r*n+p] = 0, 0

				for i = 0; i < n; i++ {
					qip, qiq = q[i*n+p], q[i*n+r]
					q[i*n+p] = c*qip - s*qiq
					q[i*n+r] = s*qip + c*qiq
				}
			}
		}
	}
	if !converged && math.Sqrt(offDiagonalSq(a, n)) > threshold {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = a[i*n+i]
	}

	return vals, &Dense{r: n, c: n, data: q}, nil
}

// SortEigenDesc reorders eigenpairs by descending eigenvalue and returns the
// eigenvectors as ROWS (row k is the k-th ranked vector). Ties keep the
// original column order.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(vals) != Cols(vecs).
// Complexity: O(n log n + n^2).
func SortEigenDesc(vals []float64, vecs *Dense) ([]float64, *Dense, error) {
	if vecs == nil {
		return nil, nil, matrixErrorf(opSortEigen, ErrNilMatrix)
	}
	if len(vals) != vecs.c {
		return nil, nil, matrixErrorf(opSortEigen, ErrDimensionMismatch)
	}
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return vals[order[x]] > vals[order[y]]
	})

	n, k := vecs.r, len(vals)
	outVals := make([]float64, k)
	rows := &Dense{r: k, c: n, data: make([]float64, k*n)}
	for rank, col := range order {
		outVals[rank] = vals[col]
		for i := 0; i < n; i++ {
			rows.data[rank*n+i] = vecs.data[i*vecs.c+col]
		}
	}

	return outVals, rows, nil
}

// offDiagonalSq returns Σ_{i≠j} a[i,j]² for an n×n flat buffer.
func offDiagonalSq(a []float64, n int) float64 {
	var s float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				s += a[i*n+j] * a[i*n+j]
			}
		}
	}

	return s
}

// frobenius returns √(Σ x²).
func frobenius(xs []float64) float64 {
	var s float64
	for _, v := range xs {
		s += v * v
	}

	return math.Sqrt(s)
}
