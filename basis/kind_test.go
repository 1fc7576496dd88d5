// SPDX-License-Identifier: MIT

package basis_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ssmethod/basis"
	"github.com/katalvlaran/ssmethod/matrix"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want basis.Kind
	}{
		{"", basis.KindPCA},
		{"pca", basis.KindPCA},
		{"laplacian", basis.KindLaplacian},
		{"custom", basis.KindCustom},
	}
	for _, tc := range cases {
		got, err := basis.ParseKind(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}
	_, err := basis.ParseKind("ica")
	require.ErrorIs(t, err, basis.ErrUnknownKind)
	assert.Equal(t, "laplacian", basis.KindLaplacian.String())
	assert.Equal(t, "Kind(9)", basis.Kind(9).String())
}

func TestFunc_ShapeChecked(t *testing.T) {
	x := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	first := basis.Func(func(s *matrix.Dense, size int) (*matrix.Dense, error) {
		return s.SelectRows([]int{0})
	})
	b, err := first.Extract(x, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, b.RawRow(0))

	_, err = first.Extract(x, 2)
	require.ErrorIs(t, err, basis.ErrBadBasisShape)

	short := basis.Func(func(*matrix.Dense, int) (*matrix.Dense, error) {
		return matrix.NewDense(1, 2)
	})
	_, err = short.Extract(x, 1)
	require.ErrorIs(t, err, basis.ErrBadBasisShape)

	none := basis.Func(func(*matrix.Dense, int) (*matrix.Dense, error) { return nil, nil })
	_, err = none.Extract(x, 1)
	require.ErrorIs(t, err, basis.ErrBadBasisShape)

	boom := errors.New("boom")
	failing := basis.Func(func(*matrix.Dense, int) (*matrix.Dense, error) { return nil, boom })
	_, err = failing.Extract(x, 1)
	require.ErrorIs(t, err, boom)

	var nilFunc basis.Func
	_, err = nilFunc.Extract(x, 1)
	require.ErrorIs(t, err, basis.ErrNilFunc)
}
