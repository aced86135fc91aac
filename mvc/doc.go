// Package mvc provides Minimum Vertex Cover solvers over graph.Graph.
//
// It bundles one deterministic approximation, four exact search strategies,
// and one metaheuristic behind a single dispatcher:
//
//   - Approx2        — greedy maximal-matching 2-approximation.
//   - Complexity: O(V + E), result ≤ 2·OPT.
//
//   - ExactMemo      — recursive branching memoized by residual edge set.
//   - Complexity: exponential worst case; memo cuts repeated sub-states.
//
//   - Backtracking   — DFS with a size-only upper-bound prune.
//
//   - BranchAndBound — DFS pruned by partial size + a matching lower bound
//     computed via Edmonds–Karp max-flow on the residual subgraph.
//
//   - IDDFS          — iterative deepening over the cover budget k; the first
//     feasible k is optimal (fixed-parameter flavor, no memo table).
//
//   - TabuSearch     — penalty-weighted local search with O(degree) delta
//     evaluation, tabu tenure, and aspiration. Heuristic: may miss the
//     optimum, but the reported cover is always feasible.
//
// All exact strategies share one formulation: branch on an uncovered edge
// (u,v) — any valid cover contains u or v — and recurse on the residual edge
// set with all edges incident to the chosen vertex removed. Residual states
// are interned edge-id bitmaps (roaring), so branch derivation is a single
// AndNot and memo keys are compact.
//
// Every Solve call owns its memo table, tabu list, and search state; nothing
// is shared across calls, so independent solves are safe to run from
// different goroutines as long as they do not share a Result.
//
// Use this package on small-to-moderate instances (a few dozen vertices for
// the exact strategies); exponential worst-case behavior is expected.
package mvc
