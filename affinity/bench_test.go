// SPDX-License-Identifier: MIT

package affinity_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ssmethod/affinity"
	"github.com/katalvlaran/ssmethod/matrix"
)

var sinkGraph *affinity.Graph

func benchSamples(b *testing.B, n, d int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
	m, err := matrix.NewDense(n, d)
	if err != nil {
		b.Fatal(err)
	}
	for k, data := 0, m.RawData(); k < len(data); k++ {
		data[k] = rng.NormFloat64()
	}

	return m
}

func BenchmarkBuild_Adjacency200x16(b *testing.B) {
	x := benchSamples(b, 200, 16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := affinity.Build(x)
		if err != nil {
			b.Fatal(err)
		}
		sinkGraph = g
	}
}

func BenchmarkBuild_Heat200x16(b *testing.B) {
	x := benchSamples(b, 200, 16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := affinity.Build(x, affinity.WithWeighting(affinity.WeightHeat), affinity.WithHeatWidth(4))
		if err != nil {
			b.Fatal(err)
		}
		sinkGraph = g
	}
}
