// SPDX-License-Identifier: MIT
// Package matrix - ingestion of caller data into validated Dense matrices.
//
// Purpose:
//   - Single entry point that turns arbitrary sample data into a clean 2D
//     numeric matrix, or fails with a reportable error.
//   - Enforce the numeric policy (finite values) unless the caller opts out.

package matrix

import "fmt"

const (
	opFromRows = "FromRows"
	opFromFlat = "FromFlat"
)

// FromRows copies rows into a new Dense after validating the input.
//
// Implementation:
//   - Stage 1: require at least one row and a non-empty first row.
//   - Stage 2: every row must match the first row's length (ErrRagged otherwise).
//   - Stage 3: copy values, rejecting NaN/±Inf under the default policy.
//
// Errors:
//   - ErrInvalidDimensions: no rows, or zero-length rows.
//   - ErrRagged: row i has a different length; the message names i.
//   - ErrNaNInf: non-finite value at (i, j) while validation is on.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrRagged))
		}
		if o.validateNaNInf {
			if j := firstNonFinite(row); j >= 0 {
				return nil, matrixErrorf(opFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
		}
		copy(out.data[i*c:(i+1)*c], row)
	}

	return out, nil
}

// FromFlat wraps a row-major buffer of length rows*cols.
// The slice is adopted without copying unless WithCopy is given.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shapes.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//   - ErrNaNInf under the default numeric policy.
func FromFlat(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opFromFlat, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opFromFlat, ErrDimensionMismatch)
	}
	if o.validateNaNInf {
		if k := firstNonFinite(data); k >= 0 {
			return nil, matrixErrorf(opFromFlat, denseErrorf(ctxSet, k/cols, k%cols, ErrNaNInf))
		}
	}
	buf := data
	if o.copyData {
		buf = make([]float64, len(data))
		copy(buf, data)
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}
