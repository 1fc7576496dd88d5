// SPDX-License-Identifier: MIT

package basis_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ssmethod/basis"
	"github.com/katalvlaran/ssmethod/matrix"
)

const eps = 1e-9

func mustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// gaussian draws n samples whose j-th feature has standard deviation scale[j].
func gaussian(tb testing.TB, n int, scale []float64, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, len(scale))
		for j, s := range scale {
			rows[i][j] = s * rng.NormFloat64()
		}
	}

	return mustRows(tb, rows)
}

func requireOrthonormalRows(tb testing.TB, b *matrix.Dense) {
	tb.Helper()
	bt, err := matrix.Transpose(b)
	require.NoError(tb, err)
	gram, err := matrix.Mul(b, bt)
	require.NoError(tb, err)
	for i := 0; i < b.Rows(); i++ {
		for j := i; j < b.Rows(); j++ {
			d, err := gram.At(i, j)
			require.NoError(tb, err)
			want := 0.0
			if i == j {
				want = 1
			}
			require.InDelta(tb, want, d, 1e-8, "rows %d,%d", i, j)
		}
	}
}

func solvers() map[string]basis.Solver {
	return map[string]basis.Solver{"svd": basis.SolverSVD, "jacobi": basis.SolverJacobi}
}

func TestPCA_AxisAligned(t *testing.T) {
	x := mustRows(t, [][]float64{{3, 1}, {3, -1}, {-3, 1}, {-3, -1}})
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			p, err := basis.NewPCA(basis.WithSolver(s))
			require.NoError(t, err)
			b, err := p.Extract(x, 2)
			require.NoError(t, err)
			require.Equal(t, 2, b.Rows())
			want := [][]float64{{1, 0}, {0, 1}}
			for i := range want {
				for j := range want[i] {
					v, err := b.At(i, j)
					require.NoError(t, err)
					assert.InDelta(t, want[i][j], v, eps)
				}
			}
		})
	}
}

func TestPCA_SingleAxisClass(t *testing.T) {
	x := mustRows(t, [][]float64{{1, 0}, {2, 0}, {3, 0}, {5, 0}})
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			p, err := basis.NewPCA(basis.WithSolver(s))
			require.NoError(t, err)
			b, err := p.Extract(x, 1)
			require.NoError(t, err)
			row := b.RawRow(0)
			assert.InDelta(t, 1, row[0], eps)
			assert.InDelta(t, 0, row[1], eps)
		})
	}
}

func TestPCA_DeterministicAndOrthonormal(t *testing.T) {
	x := gaussian(t, 40, []float64{5, 4, 3, 2, 1, 0.5}, 11)
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			p, err := basis.NewPCA(basis.WithSolver(s))
			require.NoError(t, err)
			b1, err := p.Extract(x, 4)
			require.NoError(t, err)
			b2, err := p.Extract(x, 4)
			require.NoError(t, err)
			require.Equal(t, b1.RawData(), b2.RawData())
			requireOrthonormalRows(t, b1)

			for i := 0; i < b1.Rows(); i++ {
				row := b1.RawRow(i)
				best := 0
				for j := range row {
					if math.Abs(row[j]) > math.Abs(row[best]) {
						best = j
					}
				}
				assert.Positive(t, row[best], "row %d sign", i)
			}
		})
	}
}

func TestPCA_SolversAgree(t *testing.T) {
	x := gaussian(t, 60, []float64{6, 4, 2.5, 1.5, 1}, 3)
	svd, err := basis.NewPCA()
	require.NoError(t, err)
	jac, err := basis.NewPCA(basis.WithSolver(basis.SolverJacobi))
	require.NoError(t, err)

	a, err := svd.Extract(x, 3)
	require.NoError(t, err)
	b, err := jac.Extract(x, 3)
	require.NoError(t, err)
	ad, bd := a.RawData(), b.RawData()
	for k := range ad {
		assert.InDelta(t, ad[k], bd[k], 1e-7, "index %d", k)
	}
}

func TestPCA_SingleSample(t *testing.T) {
	x := mustRows(t, [][]float64{{4, 2, 7}})
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			p, err := basis.NewPCA(basis.WithSolver(s))
			require.NoError(t, err)
			b, err := p.Extract(x, 1)
			require.NoError(t, err)
			r, c := b.Shape()
			assert.Equal(t, 1, r)
			assert.Equal(t, 3, c)
		})
	}
}

func TestPCA_Errors(t *testing.T) {
	p, err := basis.NewPCA()
	require.NoError(t, err)
	x := gaussian(t, 2, []float64{1, 1, 1, 1}, 1)

	_, err = p.Extract(nil, 1)
	require.ErrorIs(t, err, basis.ErrNilSamples)
	_, err = p.Extract(x, 0)
	require.ErrorIs(t, err, basis.ErrInvalidSize)
	_, err = p.Extract(x, 5)
	require.ErrorIs(t, err, basis.ErrInvalidSize)
	_, err = p.Extract(x, 3)
	require.ErrorIs(t, err, basis.ErrInsufficientSamples)

	_, err = basis.NewPCA(basis.WithSolver(basis.Solver(4)))
	require.ErrorIs(t, err, basis.ErrUnknownSolver)
}

func TestParseSolver(t *testing.T) {
	s, err := basis.ParseSolver("")
	require.NoError(t, err)
	assert.Equal(t, basis.SolverSVD, s)
	s, err = basis.ParseSolver("jacobi")
	require.NoError(t, err)
	assert.Equal(t, "jacobi", s.String())
	_, err = basis.ParseSolver("qr")
	require.ErrorIs(t, err, basis.ErrUnknownSolver)
}
