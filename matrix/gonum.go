// SPDX-License-Identifier: MIT
// Package matrix - bridges to gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Let solvers that delegate to gonum (thin SVD, EigenSym) consume and
//     produce *Dense without the callers touching gonum types directly.
//   - Every bridge copies; gonum never aliases a Dense buffer.

package matrix

import "gonum.org/v1/gonum/mat"

const (
	opToGonum    = "ToGonum"
	opToSymGonum = "ToSymGonum"
	opFromGonum  = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
// Complexity: O(r*c).
func ToGonum(m *Dense) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf), nil
}

// ToSymGonum copies the upper triangle of a square m into a *mat.SymDense.
// Callers are expected to pass an (approximately) symmetric matrix; run
// Symmetrize first when rounding drift is possible.
// Complexity: O(n^2).
func ToSymGonum(m *Dense) (*mat.SymDense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opToSymGonum, err)
	}
	n := m.r
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, m.data[i*n+j])
		}
	}

	return sym, nil
}

// FromGonum copies any gonum matrix into a new Dense.
// Errors: ErrInvalidDimensions for an empty source.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out, nil
}
