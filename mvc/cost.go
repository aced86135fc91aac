package mvc

import "github.com/katalvlaran/mincover/graph"

// coverCost is the tabu-search objective:
//
//	uncovered(cover) * penalty + |cover|
//
// With penalty > n, removing one uncovered edge always outweighs any growth
// of the cover, steering the search toward feasibility first, size second.
//
// Complexity: O(V + E).
func coverCost(g *graph.Graph, cover []bool, penalty int) int {
	return g.CountUncovered(cover)*penalty + coverSize(cover)
}

// coverSize counts the true entries of a membership vector.
func coverSize(cover []bool) int {
	size := 0
	for _, in := range cover {
		if in {
			size++
		}
	}
	return size
}
