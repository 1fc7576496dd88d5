// SPDX-License-Identifier: MIT

// Package affinity builds the neighborhood graph over a set of sample vectors
// that locality-preserving projections are defined on.
//
// What
//
//   - Build connects every sample to its k nearest neighbors (squared
//     Euclidean distance, ties broken by lower sample index) and symmetrizes
//     the result: W = (A + Aᵀ)/2, where A is the directed kNN relation.
//   - Two weightings:
//   - WeightAdjacency (default): A[i,j] = 1 for the k nearest samples of i,
//     counting i itself as its own nearest neighbor.
//   - WeightHeat: A[i,j] = exp(−‖xi−xj‖² / width²) for the k nearest other
//     samples of i.
//   - Degrees and Laplacian (L = D − W) expose the graph to the
//     spectral solver; Components counts connected components by BFS.
//
// Determinism
//
//	Neighbor lists are sorted by (distance, index), and BFS expands vertices
//	in ascending index order, so every result is reproducible.
//
// Complexity (n = samples, d = features)
//
//   - Build: O(n² d + n² log n) time, O(n²) space for the dense weight matrix.
//   - Components: O(n + E).
//
// Usage
//
//	g, err := affinity.Build(samples, affinity.WithNeighbors(5))
//	if err != nil {
//	    // ErrNilSamples, ErrBadNeighbors, ErrBadWidth, ErrBadWeighting
//	}
//	L := g.Laplacian()
package affinity
