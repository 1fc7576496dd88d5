// SPDX-License-Identifier: MIT

package subspace_test

import (
	"testing"

	"github.com/katalvlaran/ssmethod/subspace"
)

var sinkPred []int

func benchClassifier(b *testing.B, workers int) (*subspace.Classifier[int], [][]float64) {
	b.Helper()
	X, y := blobs(300, 32, 10, 5)
	c, err := subspace.New[int](subspace.Config{NComponents: 8, Workers: workers})
	if err != nil {
		b.Fatal(err)
	}
	if err = c.Fit(X, y); err != nil {
		b.Fatal(err)
	}

	return c, X
}

func BenchmarkFit_10x300x32(b *testing.B) {
	X, y := blobs(300, 32, 10, 5)
	c, err := subspace.New[int](subspace.Config{NComponents: 8})
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = c.Fit(X, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPredict_Sequential(b *testing.B) {
	c, X := benchClassifier(b, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := c.Predict(X, nil)
		if err != nil {
			b.Fatal(err)
		}
		sinkPred = p
	}
}

func BenchmarkPredict_Parallel(b *testing.B) {
	c, X := benchClassifier(b, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := c.Predict(X, nil)
		if err != nil {
			b.Fatal(err)
		}
		sinkPred = p
	}
}
