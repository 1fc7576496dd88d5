package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ssmethod/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRows(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		opts []matrix.Option
		want error
	}{
		{"empty", nil, nil, matrix.ErrInvalidDimensions},
		{"empty first row", [][]float64{{}}, nil, matrix.ErrInvalidDimensions},
		{"ragged", [][]float64{{1, 2}, {3}}, nil, matrix.ErrRagged},
		{"nan", [][]float64{{1, math.NaN()}}, nil, matrix.ErrNaNInf},
		{"inf", [][]float64{{1, 2}, {math.Inf(-1), 0}}, nil, matrix.ErrNaNInf},
		{"inf allowed", [][]float64{{math.Inf(1), 0}}, []matrix.Option{matrix.WithAllowNonFinite()}, nil},
		{"re-enabled", [][]float64{{math.NaN()}}, []matrix.Option{matrix.WithAllowNonFinite(), matrix.WithValidateNonFinite()}, matrix.ErrNaNInf},
		{"ok", [][]float64{{1, 2}, {3, 4}, {5, 6}}, nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.FromRows(tc.rows, tc.opts...)
			if tc.want != nil {
				require.ErrorIs(t, err, tc.want)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tc.rows), m.Rows())
			assert.Equal(t, len(tc.rows[0]), m.Cols())
		})
	}
}

// TestFromRowsCopies checks the caller's rows are not aliased.
func TestFromRowsCopies(t *testing.T) {
	rows := [][]float64{{1, 2}}
	m := mustRows(t, rows)
	rows[0][0] = 100
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}

// TestFromRowsRaggedNamesRow checks the error message carries the row index.
func TestFromRowsRaggedNamesRow(t *testing.T) {
	_, err := matrix.FromRows([][]float64{{1, 2}, {1, 2}, {1}})
	require.ErrorContains(t, err, "row 2")
}

func TestFromFlat(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}

	m, err := matrix.FromFlat(2, 3, data)
	require.NoError(t, err)
	data[0] = -1 // adopted: visible
	v, _ := m.At(0, 0)
	require.Equal(t, -1.0, v)

	c, err := matrix.FromFlat(2, 3, data, matrix.WithCopy())
	require.NoError(t, err)
	data[0] = 7
	v, _ = c.At(0, 0)
	require.Equal(t, -1.0, v)

	_, err = matrix.FromFlat(2, 2, data)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.FromFlat(0, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.FromFlat(1, 2, []float64{0, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
