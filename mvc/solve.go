// Package mvc - unified dispatcher for Minimum Vertex Cover solvers.
//
// Solve is the canonical entry point: it validates Options, routes to the
// requested strategy, and normalizes the outcome into a Result with an
// ascending cover.
//
// Design principles:
//   - Deterministic: seeded RNG only; stable branching order everywhere.
//   - Strict sentinels: only errors from types.go, optionally wrapped.
//   - Per-call state: memo tables, tabu lists, and search states are owned by
//     the invocation and never reused.
package mvc

import (
	"sort"

	"github.com/katalvlaran/mincover/graph"
)

// Solve runs exactly one solver over g according to opts.
//
// Contracts:
//   - g must be non-nil (else ErrNilGraph). A graph with zero edges yields
//     the empty cover from every strategy.
//   - g is treated as immutable for the duration of the call.
//
// Errors: ErrUnsupportedAlgorithm, ErrNegativeOption, ErrPenaltyTooSmall,
// ErrTimeLimit.
//
// Complexity: per strategy; see the per-file documentation. All strategies
// are exact except Approx2 (≤ 2·OPT) and TabuSearch (feasible, best-effort).
func Solve(g *graph.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := validateOptions(g, opts); err != nil {
		return Result{}, err
	}

	var (
		cover []int
		err   error
	)
	switch opts.Algo {
	case Approx2:
		cover = solveApprox(g)

	case ExactMemo:
		cover, err = solveExactMemo(g, opts)

	case Backtracking:
		cover, err = solveBacktracking(g, opts)

	case BranchAndBound:
		cover, err = solveBranchAndBound(g, opts)

	case IDDFS:
		cover, err = solveIDDFS(g, opts)

	case TabuSearch:
		var cost int
		cover, cost, err = solveTabu(g, opts)
		if err != nil {
			return Result{}, err
		}
		sort.Ints(cover)
		return Result{Cover: cover, Cost: cost}, nil

	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
	if err != nil {
		return Result{}, err
	}

	sort.Ints(cover)
	return Result{Cover: cover, Cost: len(cover)}, nil
}

// validateOptions applies the standalone Options checks shared by all routes.
//
// Complexity: O(1).
func validateOptions(g *graph.Graph, opts Options) error {
	switch opts.Algo {
	case Approx2, ExactMemo, Backtracking, BranchAndBound, IDDFS, TabuSearch:
		// known strategy
	default:
		return ErrUnsupportedAlgorithm
	}
	if opts.MaxIters < 0 || opts.TabuTenure < 0 || opts.TimeLimit < 0 {
		return ErrNegativeOption
	}
	// Penalty semantics: 0 derives a safe default later; explicit values must
	// strictly dominate any possible cover-size change.
	if opts.Algo == TabuSearch && opts.Penalty != 0 && opts.Penalty <= g.NumVertices() {
		return ErrPenaltyTooSmall
	}
	return nil
}

// coverToBools expands a vertex-index cover into a membership vector of
// length n. Helper shared by solvers and tests.
func coverToBools(n int, cover []int) []bool {
	out := make([]bool, n)
	for _, v := range cover {
		if v >= 0 && v < n {
			out[v] = true
		}
	}
	return out
}
