// Package mvc - Edmonds–Karp max-flow over a dense capacity matrix.
//
// This is the subroutine behind the matching lower bound: successive
// shortest augmenting paths found by BFS, run to saturation. The networks
// here are tiny (residual vertices + source + sink with unit capacities), so
// a dense matrix beats any adjacency structure and keeps the augmentation
// arithmetic trivial.
package mvc

// maxFlow computes the maximum s→t flow of the given capacity matrix.
// The matrix is copied into a residual matrix owned by this call; the input
// is left untouched.
//
// Complexity: O(V·E²) time, O(V²) space.
func maxFlow(capacity [][]int, s, t int) int {
	n := len(capacity)
	residual := make([][]int, n)
	for i := range capacity {
		residual[i] = append([]int(nil), capacity[i]...)
	}

	var (
		flow   int
		parent []int
	)
	for {
		parent = bfsAugmentingPath(residual, s, t)
		if parent == nil {
			break
		}

		// Bottleneck along the path (always 1 for unit networks, computed
		// generically anyway).
		bottleneck := 0
		for v := t; v != s; v = parent[v] {
			u := parent[v]
			if bottleneck == 0 || residual[u][v] < bottleneck {
				bottleneck = residual[u][v]
			}
		}

		for v := t; v != s; v = parent[v] {
			u := parent[v]
			residual[u][v] -= bottleneck
			residual[v][u] += bottleneck
		}
		flow += bottleneck
	}
	return flow
}

// bfsAugmentingPath finds a fewest-edges s→t path with positive residual
// capacity and returns the predecessor array, or nil when no path remains.
//
// Complexity: O(V²) per call on a dense matrix.
func bfsAugmentingPath(residual [][]int, s, t int) []int {
	n := len(residual)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	parent[s] = s

	queue := make([]int, 0, n)
	queue = append(queue, s)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := 0; v < n; v++ {
			if parent[v] != -1 || residual[u][v] <= 0 {
				continue
			}
			parent[v] = u
			if v == t {
				return parent
			}
			queue = append(queue, v)
		}
	}
	return nil
}
