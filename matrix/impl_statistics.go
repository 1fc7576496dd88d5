// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column centering, scatter matrices and row normalization used by the
//     basis extractors.
//
// Exposed API:
//   - CenterColumns(X)   -> (Xc, means)  // subtract per-column mean
//   - Scatter(X)         -> (S, means)   // Xcᵀ Xc (unnormalized covariance)
//   - NormalizeRowsL2(X) -> (Y, norms)   // unit rows; zero rows stay zero

package matrix

import "math"

const (
	opCenterColumns   = "CenterColumns"
	opScatter         = "Scatter"
	opNormalizeRowsL2 = "NormalizeRowsL2"
)

// CenterColumns returns Xc = X − mean(X, by columns) and the column means.
//
// Implementation:
//   - Stage 1: accumulate column sums in a fixed i→j pass, divide by r.
//   - Stage 2: broadcast-subtract into a fresh copy.
//
// Complexity: Time O(r*c), Space O(r*c).
func CenterColumns(X *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r, c := X.r, X.c
	means := make([]float64, c)
	var i, j int
	for i = 0; i < r; i++ {
		row := X.data[i*c : (i+1)*c]
		for j = 0; j < c; j++ {
			means[j] += row[j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	Xc := X.Clone()
	for i = 0; i < r; i++ {
		row := Xc.data[i*c : (i+1)*c]
		for j = 0; j < c; j++ {
			row[j] -= means[j]
		}
	}

	return Xc, means, nil
}

// Scatter returns S = Xcᵀ Xc (c×c) where Xc is X with centered columns.
// It is defined for a single row (S = 0), which keeps
// one-sample classes usable by PCA with a one-vector basis.
//
// Notes:
//   - Mul evaluates S[i,j] and S[j,i] with the same products in the same
//     order, so the result is exactly symmetric.
//
// Complexity: Time O(r*c^2), Space O(c^2).
func Scatter(X *Dense) (*Dense, []float64, error) {
	Xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opScatter, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opScatter, err)
	}
	S, err := Mul(Xct, Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opScatter, err)
	}

	return S, means, nil
}

// NormalizeRowsL2 scales each row to unit L2 norm and returns the original norms.
// Degenerate rows (norm == 0) are left as zero rows.
// Complexity: Time O(r*c), Space O(r*c).
func NormalizeRowsL2(X *Dense) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL2, err)
	}
	r, c := X.r, X.c
	norms := make([]float64, r)
	Y := X.Clone()
	for i := 0; i < r; i++ {
		row := Y.data[i*c : (i+1)*c]
		norms[i] = math.Sqrt(dot(row, row))
		if norms[i] == 0 {
			continue
		}
		inv := 1.0 / norms[i]
		for j := range row {
			row[j] *= inv
		}
	}

	return Y, norms, nil
}

// FixSigns flips each row in place so that its largest-magnitude entry is
// positive (first such entry on ties). Eigen/SVD solvers return vectors up to
// sign; this pins one representative so repeated runs agree exactly.
// Complexity: O(r*c).
func FixSigns(X *Dense) {
	if X == nil {
		return
	}
	for i := 0; i < X.r; i++ {
		row := X.data[i*X.c : (i+1)*X.c]
		best, bestAbs := 0, -1.0
		for j, v := range row {
			if a := math.Abs(v); a > bestAbs {
				best, bestAbs = j, a
			}
		}
		if row[best] < 0 {
			for j := range row {
				row[j] = -row[j]
			}
		}
	}
}
