// SPDX-License-Identifier: MIT

package basis_test

import (
	"testing"

	"github.com/katalvlaran/ssmethod/basis"
	"github.com/katalvlaran/ssmethod/matrix"
)

var sinkBasis *matrix.Dense

func benchExtract(b *testing.B, e basis.Extractor, n, d, size int) {
	b.Helper()
	scale := make([]float64, d)
	for j := range scale {
		scale[j] = float64(d - j)
	}
	x := gaussian(b, n, scale, 42)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := e.Extract(x, size)
		if err != nil {
			b.Fatal(err)
		}
		sinkBasis = out
	}
}

func BenchmarkPCA_SVD_500x64(b *testing.B) {
	p, _ := basis.NewPCA()
	benchExtract(b, p, 500, 64, 10)
}

func BenchmarkPCA_Jacobi_500x64(b *testing.B) {
	p, _ := basis.NewPCA(basis.WithSolver(basis.SolverJacobi))
	benchExtract(b, p, 500, 64, 10)
}

func BenchmarkLaplacian_200x32(b *testing.B) {
	l, _ := basis.NewLaplacian()
	benchExtract(b, l, 200, 32, 8)
}
