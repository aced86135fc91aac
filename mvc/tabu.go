// Package mvc - tabu search over {included, excluded} vertex assignments.
//
// One iteration evaluates flipping every vertex's membership, using delta
// evaluation: only the flipped vertex's neighbors are examined, O(degree)
// per candidate instead of a full O(E) cost recomputation. A flip to state s
// for vertex v is tabu while a forbiddance entry (v,s) has an expiry
// iteration beyond the current one; tabu moves are still allowed when they
// would beat the best global cost (aspiration). The cheapest admissible flip
// wins, ties broken by ascending vertex index; reverting it is then
// forbidden for TabuTenure further iterations.
//
// The recorded best is only ever replaced by a feasible candidate of
// strictly lower cost, so the engine never reports an infeasible cover even
// while the explorer sits in infeasible territory.
package mvc

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/mincover/graph"
)

// tabuKey identifies a forbidden (vertex, target-state) flip.
type tabuKey struct {
	vertex int
	state  bool
}

// tabuEngine carries the per-invocation search state.
type tabuEngine struct {
	g       *graph.Graph
	n       int
	penalty int
	tenure  int
	rng     *rand.Rand

	adj   [][]int // neighbor rows, duplicates kept (multi-edges count multiply)
	loops []int   // self-loop multiplicity per vertex

	current   []bool
	uncovered int // uncovered-edge count of current
	cost      int // penalty cost of current

	best     []bool // best feasible cover seen
	bestCost int

	tabu map[tabuKey]int // (vertex, forbidden state) -> expiry iteration
}

// solveTabu runs the metaheuristic and returns the best feasible cover found
// plus its cost, recomputed once from scratch at the end for consistency
// with the incremental bookkeeping.
//
// Complexity: O(MaxIters · (V + E)) worst case — each iteration scans every
// vertex at O(degree), which sums to O(V + E) over the scan.
func solveTabu(g *graph.Graph, opts Options) ([]int, int, error) {
	n := g.NumVertices()

	penalty := opts.Penalty
	if penalty == 0 {
		penalty = DefaultPenalty
		if penalty <= n {
			penalty = n + 1
		}
	}
	maxIters := opts.MaxIters
	if maxIters == 0 {
		maxIters = DefaultMaxIters
	}
	tenure := opts.TabuTenure
	if tenure == 0 {
		tenure = DefaultTabuTenure
	}

	e := &tabuEngine{
		g:       g,
		n:       n,
		penalty: penalty,
		tenure:  tenure,
		rng:     rngFromSeed(opts.Seed),
		adj:     make([][]int, n),
		loops:   make([]int, n),
		tabu:    make(map[tabuKey]int),
	}
	for v := 0; v < n; v++ {
		e.adj[v] = g.Neighbors(v)
	}
	for _, ed := range g.Edges() {
		if ed.U == ed.V {
			e.loops[ed.U]++
		}
	}

	e.init(opts.RandomInit)
	e.run(maxIters)

	cover := make([]int, 0, n)
	for v, in := range e.best {
		if in {
			cover = append(cover, v)
		}
	}
	return cover, coverCost(g, e.best, penalty), nil
}

// init seeds the explorer and the recorded best.
//
// The trivial all-included vector is always feasible, so it anchors the best
// even when the explorer starts from a random 50/50 assignment.
func (e *tabuEngine) init(random bool) {
	e.best = make([]bool, e.n)
	for v := range e.best {
		e.best[v] = true
	}
	e.bestCost = e.n // cost of the full cover: 0 uncovered + n vertices

	e.current = make([]bool, e.n)
	if random {
		for v := range e.current {
			e.current[v] = e.rng.Intn(2) == 0
		}
	} else {
		copy(e.current, e.best)
	}
	e.uncovered = e.g.CountUncovered(e.current)
	e.cost = e.uncovered*e.penalty + coverSize(e.current)

	// A lucky random start may already beat the trivial cover.
	if e.uncovered == 0 && e.cost < e.bestCost {
		copy(e.best, e.current)
		e.bestCost = e.cost
	}
}

// run executes up to maxIters neighborhood scans.
func (e *tabuEngine) run(maxIters int) {
	for it := 1; it <= maxIters; it++ {
		var (
			bestMove     = -1
			bestMoveCost = math.MaxInt
			bestMoveDU   int // uncovered delta of the selected move
		)

		for v := 0; v < e.n; v++ {
			du, ds := e.flipDelta(v)
			cand := e.cost + e.penalty*du + ds

			// Aspiration: a tabu flip passes if it beats the global best.
			if e.isTabu(v, !e.current[v], it) && cand >= e.bestCost {
				continue
			}
			if cand < bestMoveCost {
				bestMove = v
				bestMoveCost = cand
				bestMoveDU = du
			}
		}

		// No admissible flip: empty vertex set, or everything tabu without
		// aspiration. Defensive stop.
		if bestMove < 0 {
			return
		}

		old := e.current[bestMove]
		e.current[bestMove] = !old
		e.uncovered += bestMoveDU
		e.cost = bestMoveCost
		e.tabu[tabuKey{vertex: bestMove, state: old}] = it + e.tenure

		if e.uncovered == 0 && e.cost < e.bestCost {
			copy(e.best, e.current)
			e.bestCost = e.cost
		}
	}
}

// flipDelta computes the cost deltas of toggling v's membership by scanning
// only v's adjacency row: du is the uncovered-edge delta, ds the size delta.
//
// Every incident edge whose other endpoint is outside the cover — plus every
// self-loop at v — switches covered state together with v.
//
// Complexity: O(degree(v)).
func (e *tabuEngine) flipDelta(v int) (du, ds int) {
	c := e.loops[v]
	for _, w := range e.adj[v] {
		if !e.current[w] {
			c++
		}
	}
	if e.current[v] {
		return +c, -1 // leaving the cover uncovers those edges
	}
	return -c, +1 // entering the cover covers them
}

// isTabu reports whether flipping v into state s is forbidden at iteration
// it. Expired entries are evicted here, on lookup, never swept proactively.
func (e *tabuEngine) isTabu(v int, s bool, it int) bool {
	k := tabuKey{vertex: v, state: s}
	expiry, ok := e.tabu[k]
	if !ok {
		return false
	}
	if expiry <= it {
		delete(e.tabu, k)
		return false
	}
	return true
}
