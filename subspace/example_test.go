// SPDX-License-Identifier: MIT

package subspace_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ssmethod/subspace"
)

// ExampleClassifier separates points lying along the x-axis from points
// lying along the y-axis with a one-vector basis per class.
func ExampleClassifier() {
	clf, err := subspace.New[string](subspace.Config{NComponents: 1})
	if err != nil {
		fmt.Println(err)
		return
	}

	X := [][]float64{{1, 0}, {2, 0}, {-3, 0}, {0, 1}, {0, -2}, {0, 5}}
	y := []string{"horizontal", "horizontal", "horizontal", "vertical", "vertical", "vertical"}
	if err = clf.Fit(X, y); err != nil {
		fmt.Println(err)
		return
	}

	pred, _ := clf.Predict([][]float64{{4, 0.5}, {-0.2, -3}}, []string{"horizontal", "vertical"})
	acc, ok := clf.Accuracy()
	fmt.Println(pred, acc, ok)
	// Output:
	// [horizontal vertical] 1 true
}

// ExampleNew shows the explicit rejection of ensembling.
func ExampleNew() {
	_, err := subspace.New[int](subspace.Config{NComponents: 10, NEstimators: 3})
	fmt.Println(errors.Is(err, subspace.ErrUnsupportedConfiguration))
	// Output:
	// true
}
