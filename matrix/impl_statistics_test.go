// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ssmethod/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenterColumns(t *testing.T) {
	x := mustRows(t, [][]float64{{1, 10}, {3, 20}, {5, 30}})
	xc, means, err := matrix.CenterColumns(x)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 20}, means)
	require.Equal(t, [][]float64{{-2, -10}, {0, 0}, {2, 10}}, xc.ToRows())

	_, _, err = matrix.CenterColumns(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScatter(t *testing.T) {
	x := mustRows(t, [][]float64{{1, 0}, {-1, 0}, {0, 2}, {0, -2}})

	s, means, err := matrix.Scatter(x)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, means)
	require.Equal(t, [][]float64{{2, 0}, {0, 8}}, s.ToRows())

	// A single sample has zero scatter rather than an error.
	one, _, err := matrix.Scatter(mustRows(t, [][]float64{{4, 5}}))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0}, {0, 0}}, one.ToRows())
}

// TestScatterExactlySymmetric relies on Mul evaluating mirrored cells identically.
func TestScatterExactlySymmetric(t *testing.T) {
	s, _, err := matrix.Scatter(randDense(t, 20, 6, 7))
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(s, 0))
}

func TestNormalizeRowsL2(t *testing.T) {
	x := mustRows(t, [][]float64{{3, 4}, {0, 0}})
	y, norms, err := matrix.NormalizeRowsL2(x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 0}, norms, tol)
	want := [][]float64{{0.6, 0.8}, {0, 0}}
	got := y.ToRows()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDeltaSlice(t, want[i], got[i], tol, "row %d", i)
	}
	assert.Equal(t, []float64{3, 4}, x.RawRow(0), "input is not mutated")
}

func TestFixSigns(t *testing.T) {
	x := mustRows(t, [][]float64{{0.1, -0.9}, {0.5, -0.5}, {-2, 1}})
	matrix.FixSigns(x)
	assert.Equal(t, [][]float64{{-0.1, 0.9}, {0.5, -0.5}, {2, -1}}, x.ToRows())
	matrix.FixSigns(nil)

	h := 1 / math.Sqrt2
	y := mustRows(t, [][]float64{{-h, -h}})
	matrix.FixSigns(y)
	assert.Equal(t, [][]float64{{h, h}}, y.ToRows())
}
