// Package mvc - matching lower bound for branch-and-bound.
//
// The bound reduces the residual subgraph to a unit-capacity flow network:
// source → left side → right side → sink, every arc with capacity 1. The
// max-flow value equals the size of a matching, and any matching (on any
// subset of the residual edges) lower-bounds the residual cover.
//
// Sides are split by vertex-id parity, mirroring the reference behavior:
// only even↔odd edges enter the network, even-even and odd-odd edges are
// skipped. The split is NOT a verified bipartition of the residual graph —
// it computes a maximum matching of an edge subset, which can only
// under-shoot the true maximum matching. The bound therefore stays
// admissible (never exceeds the optimum), merely weaker on graphs with many
// same-parity edges.
package mvc

import "github.com/RoaringBitmap/roaring/v2"

// matchingLowerBound returns the size of a maximum matching of the even↔odd
// residual edges, a valid lower bound on the vertices still needed to cover
// state.
//
// The flow network and its residual-capacity matrix are built fresh per call
// and discarded; nothing is shared across branch-and-bound nodes.
//
// Complexity: O(V·E²) via Edmonds–Karp on the constructed network.
func (es *edgeSpace) matchingLowerBound(state *roaring.Bitmap) int {
	if state.IsEmpty() {
		return 0
	}

	// Collect the residual vertex set and assign flow-node indices:
	// node 0 = source, 1..|left| = even vertices, then odd vertices, last = sink.
	var (
		left    = make(map[int]int) // even vertex -> flow node
		right   = make(map[int]int) // odd vertex  -> flow node
		pairs   [][2]int            // residual even↔odd edges
		it      = state.Iterator()
		u, v    int
		present = make(map[int]struct{})
	)
	for it.HasNext() {
		pair := es.ends[it.Next()]
		u, v = pair[0], pair[1]
		present[u] = struct{}{}
		present[v] = struct{}{}
		if u%2 != v%2 {
			if u%2 == 0 {
				pairs = append(pairs, [2]int{u, v})
			} else {
				pairs = append(pairs, [2]int{v, u})
			}
		}
	}
	if len(pairs) == 0 {
		return 0
	}

	node := 1
	for w := range present {
		if w%2 == 0 {
			left[w] = node
			node++
		}
	}
	for w := range present {
		if w%2 != 0 {
			right[w] = node
			node++
		}
	}

	var (
		total    = node + 1 // +1 for the sink
		source   = 0
		sink     = node
		capacity = make([][]int, total)
	)
	for i := range capacity {
		capacity[i] = make([]int, total)
	}
	for _, ln := range left {
		capacity[source][ln] = 1
	}
	for _, rn := range right {
		capacity[rn][sink] = 1
	}
	for _, p := range pairs {
		capacity[left[p[0]]][right[p[1]]] = 1
	}

	return maxFlow(capacity, source, sink)
}
