// SPDX-License-Identifier: MIT

package grid

// orthogonal holds the 4-neighbourhood offsets: N, E, S, W.
var orthogonal = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Components finds every maximal 4-connected region of cells that satisfy
// keep and are pairwise joined by same(a, b) between neighbours.
// Each component is a slice of row-major indices in BFS order; components
// are returned in order of their first cell in row-major scan.
//
// To convert an index back to (x,y), use Coordinate.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid[T]) Components(keep func(T) bool, same func(a, b T) bool) [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0, v0 := range g.cells {
		if seen[i0] || !keep(v0) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := g.Coordinate(u)
			for _, d := range orthogonal {
				vx, vy := ux+d[0], uy+d[1]
				if !g.InBounds(vx, vy) {
					continue
				}
				vi := g.Index(vx, vy)
				if seen[vi] || !keep(g.cells[vi]) || !same(g.cells[u], g.cells[vi]) {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
