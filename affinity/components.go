// SPDX-License-Identifier: MIT

package affinity

// Components labels every vertex with the index of its connected component
// and returns the labels together with the component count. Components are
// numbered in order of their smallest vertex.
//
// Implementation:
//   - Stage 1: scan vertices in ascending order; an unlabeled vertex starts a
//     new component.
//   - Stage 2: breadth-first expansion over the sorted adjacency lists.
//
// Complexity: O(n + E) time, O(n) space.
func (g *Graph) Components() ([]int, int) {
	comp := make([]int, g.n)
	for i := range comp {
		comp[i] = -1
	}
	queue := make([]int, 0, g.n)
	count := 0
	for start := 0; start < g.n; start++ {
		if comp[start] >= 0 {
			continue
		}
		comp[start] = count
		queue = append(queue[:0], start)
		for head := 0; head < len(queue); head++ {
			for _, nb := range g.adj[queue[head]] {
				if comp[nb] < 0 {
					comp[nb] = count
					queue = append(queue, nb)
				}
			}
		}
		count++
	}

	return comp, count
}
