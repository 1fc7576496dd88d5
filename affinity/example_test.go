// SPDX-License-Identifier: MIT

package affinity_test

import (
	"fmt"

	"github.com/katalvlaran/ssmethod/affinity"
	"github.com/katalvlaran/ssmethod/matrix"
)

// ExampleBuild links each point to its nearest neighbor and reports the
// two clusters that result.
func ExampleBuild() {
	x, _ := matrix.FromRows([][]float64{{0, 0}, {0, 1}, {9, 9}, {9, 8}})
	g, _ := affinity.Build(x, affinity.WithNeighbors(2))

	comp, n := g.Components()
	fmt.Println(n, comp)
	fmt.Println(g.Degrees())
	// Output:
	// 2 [0 0 1 1]
	// [2 2 2 2]
}
