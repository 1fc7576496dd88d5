package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/ssmethod/matrix"
)

// ExampleFromRows shows ingestion rejecting ragged input.
func ExampleFromRows() {
	_, err := matrix.FromRows([][]float64{{1, 2}, {3}})
	fmt.Println(err)

	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	fmt.Print(m)
	// Output:
	// FromRows: row 1 has 1 columns, want 2: matrix: ragged rows
	// [1, 2]
	// [3, 4]
}

// ExampleEigen ranks the eigenpairs of a small covariance-like matrix.
func ExampleEigen() {
	a, _ := matrix.FromRows([][]float64{{4, 0}, {0, 1}})
	vals, vecs, _ := matrix.Eigen(a, matrix.DefaultEigenTol, matrix.DefaultEigenSweeps)
	ranked, rows, _ := matrix.SortEigenDesc(vals, vecs)
	fmt.Println(ranked)
	fmt.Print(rows)
	// Output:
	// [4 1]
	// [1, 0]
	// [0, 1]
}
