// Package builder constructs random graph.Graph instances from the three
// classic models used to benchmark vertex-cover solvers:
//
//   - ErdosRenyi(n, p)      — each unordered pair becomes an edge with
//     independent probability p.
//   - BarabasiAlbert(n, m)  — preferential attachment; each new vertex links
//     to m distinct existing vertices with probability proportional to
//     degree.
//   - WattsStrogatz(n, k, p) — ring lattice with k neighbors per vertex,
//     each lattice edge rewired with probability p.
//
// Determinism: all generators consume a caller-supplied RNG (WithRand) or a
// seeded stream (WithSeed; seed==0 ⇒ fixed default). Trial order is stable —
// vertices ascending, pairs (i,j) with j ascending per i — so a fixed seed
// reproduces the same graph on every platform.
//
// Errors are sentinel-only; see errors.go. Generators never panic.
package builder
