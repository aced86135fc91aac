package mvc

import "github.com/katalvlaran/mincover/graph"

// solveApprox implements the classic greedy factor-2 approximation.
//
// It scans the edge list in its given order; whenever an edge has neither
// endpoint marked, both endpoints join the cover. The triggering edges are
// pairwise vertex-disjoint (a maximal matching), and any optimal cover must
// contain at least one endpoint of each, hence |result| ≤ 2·OPT.
//
// The result depends on edge order but is deterministic for a fixed order:
// running it twice on the same graph yields the identical set.
//
// Complexity: O(V + E) time, O(V) space.
func solveApprox(g *graph.Graph) []int {
	inCover := make([]bool, g.NumVertices())

	var e graph.Edge
	for _, e = range g.Edges() {
		if !inCover[e.U] && !inCover[e.V] {
			inCover[e.U] = true
			inCover[e.V] = true
		}
	}

	// Collect marked vertices; index order ⇒ ascending result.
	cover := make([]int, 0, g.NumVertices())
	for v, in := range inCover {
		if in {
			cover = append(cover, v)
		}
	}
	return cover
}
