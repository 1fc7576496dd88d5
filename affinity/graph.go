// SPDX-License-Identifier: MIT

package affinity

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ssmethod/matrix"
)

// Graph is the symmetrized kNN graph over n samples.
// Vertices are sample row indices; the graph is immutable after Build.
type Graph struct {
	n         int           // number of vertices (samples)
	k         int           // effective neighbors per sample after clamping
	weighting Weighting     // edge weighting used by Build
	w         *matrix.Dense // symmetric n×n weights, W = (A + Aᵀ)/2
	degree    []float64     // degree[i] = Σ_j W[i,j]
	adj       [][]int       // adj[i] = j != i with W[i,j] > 0, ascending
}

// neighbor is one candidate in a sample's distance-ranked list.
type neighbor struct {
	idx  int
	dist float64 // squared Euclidean distance
}

// Build constructs the affinity graph over the rows of samples.
//
// Implementation:
//   - Stage 1: resolve options (ErrBadNeighbors, ErrBadWidth, ErrBadWeighting).
//   - Stage 2: for each sample, rank all others by (squared distance, index).
//   - Stage 3: fill the directed relation A row by row, then W = (A + Aᵀ)/2.
//   - Stage 4: derive degrees and sorted adjacency lists.
//
// Behavior highlights:
//   - WeightAdjacency counts the sample itself as the first of its k
//     neighbors, so k = 1 yields a graph of self-loops only.
//   - k is clamped to n (adjacency) or n−1 (heat).
//
// Complexity:
//   - Time O(n²·d + n²·log n), Space O(n²).
func Build(samples *matrix.Dense, opts ...Option) (*Graph, error) {
	if samples == nil {
		return nil, ErrNilSamples
	}
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	n := samples.Rows()
	k := cfg.neighbors
	others := k // how many non-self neighbors each sample receives
	if cfg.weighting == WeightAdjacency {
		others = k - 1
	}
	if others > n-1 {
		others = n - 1
	}
	if cfg.weighting == WeightAdjacency {
		k = others + 1
	} else {
		k = others
	}

	a := make([]float64, n*n) // directed relation, row-major
	ranked := make([]neighbor, 0, n)
	inv := 1.0 / (cfg.width * cfg.width)
	var i, j int
	for i = 0; i < n; i++ {
		xi := samples.RawRow(i)
		ranked = ranked[:0]
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			ranked = append(ranked, neighbor{idx: j, dist: sqDist(xi, samples.RawRow(j))})
		}
		sort.SliceStable(ranked, func(x, y int) bool {
			if ranked[x].dist != ranked[y].dist {
				return ranked[x].dist < ranked[y].dist
			}
			return ranked[x].idx < ranked[y].idx
		})

		if cfg.weighting == WeightAdjacency {
			a[i*n+i] = 1
			for _, nb := range ranked[:others] {
				a[i*n+nb.idx] = 1
			}
			continue
		}
		for _, nb := range ranked[:others] {
			a[i*n+nb.idx] = math.Exp(-nb.dist * inv)
		}
	}

	wdata := make([]float64, n*n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			wdata[i*n+j] = 0.5 * (a[i*n+j] + a[j*n+i])
		}
	}
	w, err := matrix.FromFlat(n, n, wdata)
	if err != nil {
		return nil, fmt.Errorf("affinity: %w", err)
	}

	degree := make([]float64, n)
	adj := make([][]int, n)
	for i = 0; i < n; i++ {
		row := wdata[i*n : (i+1)*n]
		for j = 0; j < n; j++ {
			degree[i] += row[j]
			if j != i && row[j] > 0 {
				adj[i] = append(adj[i], j)
			}
		}
	}

	return &Graph{n: n, k: k, weighting: cfg.weighting, w: w, degree: degree, adj: adj}, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// K returns the effective neighbor count after clamping.
func (g *Graph) K() int { return g.k }

// Weighting reports the edge weighting the graph was built with.
func (g *Graph) Weighting() Weighting { return g.weighting }

// Weight returns W[i,j].
func (g *Graph) Weight(i, j int) (float64, error) {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return 0, fmt.Errorf("(%d,%d): %w", i, j, ErrVertexOutOfRange)
	}
	return g.w.RawRow(i)[j], nil
}

// Neighbors returns the other vertices adjacent to i, ascending.
func (g *Graph) Neighbors(i int) ([]int, error) {
	if i < 0 || i >= g.n {
		return nil, fmt.Errorf("%d: %w", i, ErrVertexOutOfRange)
	}
	out := make([]int, len(g.adj[i]))
	copy(out, g.adj[i])

	return out, nil
}

// Degrees returns a copy of the degree vector (row sums of W).
func (g *Graph) Degrees() []float64 {
	out := make([]float64, g.n)
	copy(out, g.degree)

	return out
}

// Laplacian returns L = D − W.
// Complexity: O(n²).
func (g *Graph) Laplacian() *matrix.Dense {
	l := g.w.Clone()
	data := l.RawData()
	for i := 0; i < g.n; i++ {
		row := data[i*g.n : (i+1)*g.n]
		for j := range row {
			row[j] = -row[j]
		}
		row[i] += g.degree[i]
	}

	return l
}

// sqDist returns ‖x−y‖² for equal-length vectors.
func sqDist(x, y []float64) float64 {
	var s, d float64
	for i := range x {
		d = x[i] - y[i]
		s += d * d
	}

	return s
}
