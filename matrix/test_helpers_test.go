// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures shared by kernel and statistics tests.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ssmethod/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for floating comparisons in this package.
const tol = 1e-9

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// randDense fills an r×c matrix from a seeded source in [-1, 1).
func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)
	data := m.RawData()
	for k := range data {
		data[k] = 2*rng.Float64() - 1
	}

	return m
}

// randSym builds a random symmetric n×n matrix as (A + Aᵀ)/2.
func randSym(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	s, err := matrix.Symmetrize(randDense(tb, n, n, seed))
	require.NoError(tb, err)

	return s
}

// requireClose asserts element-wise |a-b| <= eps.
func requireClose(tb testing.TB, want, got *matrix.Dense, eps float64) {
	tb.Helper()
	require.Equal(tb, want.Rows(), got.Rows())
	require.Equal(tb, want.Cols(), got.Cols())
	wd, gd := want.RawData(), got.RawData()
	for k := range wd {
		require.InDelta(tb, wd[k], gd[k], eps, "index %d", k)
	}
}
