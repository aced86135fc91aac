// Package mincover is a toolkit for computing vertex covers of undirected
// simple graphs — a subset of vertices touching every edge.
//
// 🚀 What is mincover?
//
//	A small, focused library built around one solving engine:
//		• graph/   — immutable adjacency representation + cover validity helpers
//		• mvc/     — the solver family: greedy 2-approximation, four exact
//		  strategies (memoized branching, backtracking, branch-and-bound with
//		  a matching lower bound, iterative-deepening DFS), and a tabu-search
//		  metaheuristic with O(degree) delta evaluation
//		• builder/ — random benchmark graphs (Erdős–Rényi, Barabási–Albert,
//		  Watts–Strogatz), fully seeded and deterministic
//		• dataset/ — SNAP-style edge-list files with sparse-id remapping
//
// ✨ Why choose mincover?
//
//   - One dispatcher, six strategies – mvc.Solve(g, opts) routes on opts.Algo
//   - Deterministic – seeded RNG everywhere, reproducible across platforms
//   - Strict sentinels – errors.Is-friendly failures, no panics on user input
//   - Exact where it claims to be – all four exact strategies return a true
//     minimum; tabu never reports an infeasible cover
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	a 4-cycle; {0,3} (or {1,2}) is a minimum vertex cover of size 2.
//
// The cmd/mincover CLI wraps the library for edge-list files on disk.
//
//	go get github.com/katalvlaran/mincover
package mincover
