// Package mvc - memoized recursive branching (the full exact search).
//
// Branching rule: pick any uncovered edge (u,v); every valid cover contains
// u or v, so the optimum of a state is the smaller of the two branch optima
// plus the chosen vertex. The memo caches the best cover per residual edge
// set, which collapses the repeated sub-states common on sparse and
// structured graphs.
//
// The memo is keyed by the canonical edge-id encoding from edgeset.go and
// lives strictly inside one Solve call.
package mvc

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/mincover/graph"
)

// memoEngine carries the per-invocation search state.
type memoEngine struct {
	es   *edgeSpace
	memo map[string][]int // canonical state key -> best cover of that state
	dl   softDeadline
}

// solveExactMemo returns a minimum vertex cover of g.
//
// Complexity: exponential worst case; each node costs O(|state|) for key
// encoding plus near-O(1) bitmap branching.
func solveExactMemo(g *graph.Graph, opts Options) ([]int, error) {
	e := &memoEngine{
		es:   newEdgeSpace(g),
		memo: make(map[string][]int),
		dl:   newSoftDeadline(opts.TimeLimit),
	}
	cover, err := e.search(e.es.initialState())
	if err != nil {
		return nil, err
	}
	// The memo owns its slices; hand the caller a private copy.
	out := make([]int, len(cover))
	copy(out, cover)
	return out, nil
}

// search returns the best cover for the residual state.
// The returned slice is memo-owned: callers must copy before extending.
func (e *memoEngine) search(state *roaring.Bitmap) ([]int, error) {
	if state.IsEmpty() {
		return nil, nil // base case: nothing left to cover
	}
	if e.dl.expired() {
		return nil, ErrTimeLimit
	}

	key := e.es.key(state)
	if hit, ok := e.memo[key]; ok {
		return hit, nil
	}

	u, v := e.es.pickEdge(state)

	// Branch 1: commit u.
	subU, err := e.search(e.es.without(state, u))
	if err != nil {
		return nil, err
	}
	coverU := append(append(make([]int, 0, len(subU)+1), u), subU...)

	// Branch 2: commit v. A self-loop has u == v; one branch suffices, but
	// re-running it is harmless and keeps the rule uniform.
	subV, err := e.search(e.es.without(state, v))
	if err != nil {
		return nil, err
	}
	coverV := append(append(make([]int, 0, len(subV)+1), v), subV...)

	best := coverU
	if len(coverV) < len(coverU) {
		best = coverV
	}
	e.memo[key] = best
	return best, nil
}
