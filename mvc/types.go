// Package mvc - solver selection, options, result type, and sentinel errors.
//
// Error policy (explicit and strict):
//   - Only package-level sentinel variables are exposed.
//   - Callers branch with errors.Is(err, ErrX); no string comparisons.
//   - Implementations attach context via fmt.Errorf("…: %w", ErrX) when useful.
//   - Solvers never panic on user input.
package mvc

import (
	"errors"
	"time"
)

// Algorithm selects the solving strategy executed by Solve.
type Algorithm int

const (
	// Approx2 is the deterministic greedy factor-2 approximation.
	Approx2 Algorithm = iota

	// ExactMemo is the memoized recursive branching solver.
	ExactMemo

	// Backtracking is exact DFS with a size-only upper-bound prune.
	Backtracking

	// BranchAndBound is exact DFS pruned by a matching-based lower bound.
	BranchAndBound

	// IDDFS is exact iterative-deepening search over the cover budget k.
	IDDFS

	// TabuSearch is the penalty-weighted tabu metaheuristic.
	TabuSearch
)

// String returns the canonical lowercase name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Approx2:
		return "approx2"
	case ExactMemo:
		return "exact-memo"
	case Backtracking:
		return "backtracking"
	case BranchAndBound:
		return "branch-and-bound"
	case IDDFS:
		return "iddfs"
	case TabuSearch:
		return "tabu"
	default:
		return "unknown"
	}
}

// Options configures a single Solve invocation.
//
// The zero value selects Approx2 with defaults everywhere; tabu knobs are
// ignored by the other strategies.
type Options struct {
	// Algo selects the strategy. Unknown values yield ErrUnsupportedAlgorithm.
	Algo Algorithm

	// MaxIters bounds tabu-search iterations. 0 ⇒ DefaultMaxIters.
	MaxIters int

	// TabuTenure is the number of iterations a reverted move stays forbidden.
	// 0 ⇒ DefaultTabuTenure.
	TabuTenure int

	// Penalty is the per-uncovered-edge weight in the tabu cost function.
	// Must exceed the vertex count so feasibility dominates size; 0 derives
	// max(n+1, DefaultPenalty) from the graph, any other value ≤ n is
	// rejected with ErrPenaltyTooSmall.
	Penalty int

	// Seed drives the tabu RNG. 0 ⇒ fixed default stream (reproducible).
	Seed int64

	// RandomInit starts tabu search from a seeded 50/50 membership vector
	// instead of the all-included trivial cover. The reported best is still
	// guaranteed feasible.
	RandomInit bool

	// TimeLimit is a soft wall-clock budget for the exact searches
	// (0 ⇒ unlimited). Exceeding it aborts with ErrTimeLimit; checks are
	// sparse, so slight overshoot is expected.
	TimeLimit time.Duration
}

// Defaults for tabu-search knobs, matching the reference parameterization.
const (
	DefaultMaxIters   = 10000
	DefaultTabuTenure = 7
	DefaultPenalty    = 1000
)

// Result is the outcome of one Solve call. Ownership transfers to the caller.
type Result struct {
	// Cover lists the vertices of the returned cover in ascending order.
	Cover []int

	// Cost is len(Cover) for exact and approximate strategies. For
	// TabuSearch it is the penalty cost of Cover, recomputed once at the
	// end; a feasible cover therefore has Cost == len(Cover) there too.
	Cost int
}

// Sentinel errors shared by all solvers.
var (
	// ErrNilGraph indicates Solve received a nil *graph.Graph.
	ErrNilGraph = errors.New("mvc: nil graph")

	// ErrUnsupportedAlgorithm indicates Options.Algo is not a known strategy.
	ErrUnsupportedAlgorithm = errors.New("mvc: unsupported algorithm")

	// ErrNegativeOption indicates a negative MaxIters, TabuTenure, or TimeLimit.
	ErrNegativeOption = errors.New("mvc: negative option value")

	// ErrPenaltyTooSmall indicates Options.Penalty does not exceed the vertex
	// count, which would let cover size outweigh an uncovered edge.
	ErrPenaltyTooSmall = errors.New("mvc: penalty must exceed vertex count")

	// ErrTimeLimit indicates the soft time budget was exhausted mid-search.
	ErrTimeLimit = errors.New("mvc: time limit exceeded")
)
