// Package matrix_test contains unit tests for the Dense container.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/ssmethod/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfRange ensures At and Set return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGetAndRowViews covers Set/At plus the copy vs. alias row accessors.
func TestSetGetAndRowViews(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7.5))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)

	row, err := m.Row(1)
	require.NoError(t, err)
	row[0] = 99 // copy: must not leak back
	v, _ = m.At(1, 0)
	require.Equal(t, 0.0, v)

	raw := m.RawRow(1)
	raw[0] = 42 // alias: visible in m
	v, _ = m.At(1, 0)
	require.Equal(t, 42.0, v)
}

// TestCloneIndependence verifies Clone returns an independent buffer.
func TestCloneIndependence(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, -1))
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}

// TestSelectRows keeps the requested order and rejects bad indices.
func TestSelectRows(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 1}, {2, 2}, {3, 3}})

	sub, err := m.SelectRows([]int{2, 0})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{3, 3}, {1, 1}}, sub.ToRows())

	_, err = m.SelectRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = m.SelectRows([]int{3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestString renders one bracketed line per row.
func TestString(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
