// Package mvc - backtracking with a size-only upper-bound prune.
//
// The simplest exact pruning: the incumbent (upper bound) starts at the
// trivial full cover, and any branch whose partial cover already reaches it
// is abandoned — the partial size itself is the lower bound, cruder than
// branch-and-bound's matching bound but free to evaluate.
package mvc

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/mincover/graph"
)

// btEngine carries the per-invocation backtracking state.
type btEngine struct {
	es      *edgeSpace
	ub      int   // size of the best complete cover found so far
	best    []int // the incumbent cover
	current []int // vertices committed on the current path
	dl      softDeadline
	aborted bool
}

// solveBacktracking returns a minimum vertex cover of g.
//
// Complexity: exponential worst case; each node costs O(1) for the prune
// plus the bitmap branch derivation.
func solveBacktracking(g *graph.Graph, opts Options) ([]int, error) {
	n := g.NumVertices()
	e := &btEngine{
		es:      newEdgeSpace(g),
		ub:      n,
		best:    fullCover(n),
		current: make([]int, 0, n),
		dl:      newSoftDeadline(opts.TimeLimit),
	}
	e.search(e.es.initialState())
	if e.aborted {
		return nil, ErrTimeLimit
	}
	return e.best, nil
}

// search explores the branch rooted at state with e.current committed.
func (e *btEngine) search(state *roaring.Bitmap) {
	if e.aborted {
		return
	}
	if e.dl.expired() {
		e.aborted = true
		return
	}

	// Prune: the partial size alone already matches the incumbent.
	if len(e.current) >= e.ub {
		return
	}

	// Complete cover, and the prune above guarantees it is strictly better.
	if state.IsEmpty() {
		e.ub = len(e.current)
		e.best = append(e.best[:0], e.current...)
		return
	}

	u, v := e.es.pickEdge(state)

	e.current = append(e.current, u)
	e.search(e.es.without(state, u))
	e.current = e.current[:len(e.current)-1]

	e.current = append(e.current, v)
	e.search(e.es.without(state, v))
	e.current = e.current[:len(e.current)-1]
}

// fullCover returns the trivial cover {0..n-1}.
func fullCover(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
