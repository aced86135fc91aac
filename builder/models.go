// Package builder - implementations of the three random models.
//
// Each generator accumulates an edge list with a stable trial order and
// finishes through graph.New, inheriting its validation. Generated graphs
// are simple: no self-loops, no parallel edges.
package builder

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/mincover/graph"
)

// ErdosRenyi samples a G(n, p) graph: every unordered pair {i, j}, i < j, is
// an edge with independent probability p.
//
// Contract: n ≥ 1, 0 ≤ p ≤ 1.
//
// Complexity: O(n²) Bernoulli trials.
func ErdosRenyi(n int, p float64, opts ...Option) (*graph.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("ErdosRenyi: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("ErdosRenyi: p=%g: %w", p, ErrInvalidProbability)
	}
	cfg := resolve(opts)

	var edges []graph.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() < p {
				edges = append(edges, graph.Edge{U: i, V: j})
			}
		}
	}
	return graph.New(n, edges)
}

// BarabasiAlbert grows a preferential-attachment graph: vertices m..n-1 are
// added one at a time, each linking to m distinct existing vertices chosen
// with probability proportional to their current degree.
//
// Contract: n ≥ 2, 1 ≤ m < n. The first m vertices start isolated and are
// the targets of vertex m, matching the standard construction.
//
// Complexity: O(n·m) expected.
func BarabasiAlbert(n, m int, opts ...Option) (*graph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("BarabasiAlbert: n=%d: %w", n, ErrTooFewVertices)
	}
	if m < 1 || m >= n {
		return nil, fmt.Errorf("BarabasiAlbert: m=%d with n=%d: %w", m, n, ErrBadDegree)
	}
	cfg := resolve(opts)

	var (
		edges []graph.Edge
		// repeated holds one entry per edge endpoint; uniform sampling from
		// it realizes degree-proportional attachment.
		repeated []int
		targets  = make([]int, m)
	)
	for i := 0; i < m; i++ {
		targets[i] = i
	}

	for v := m; v < n; v++ {
		for _, t := range targets {
			edges = append(edges, graph.Edge{U: v, V: t})
			repeated = append(repeated, v, t)
		}
		targets = sampleDistinct(cfg.rng, repeated, m)
	}
	return graph.New(n, edges)
}

// sampleDistinct draws k distinct values uniformly from pool (with the
// multiplicities pool carries). Re-draws on duplicates; pool always holds at
// least k distinct values by construction in BarabasiAlbert.
func sampleDistinct(rng *rand.Rand, pool []int, k int) []int {
	chosen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for len(out) < k {
		c := pool[rng.Intn(len(pool))]
		if _, dup := chosen[c]; dup {
			continue
		}
		chosen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// WattsStrogatz builds a small-world graph: a ring lattice where every
// vertex connects to its k/2 nearest neighbors on each side, then each
// lattice edge (u, u+j) is rewired with probability p to (u, w) for a
// uniformly random w that creates neither a loop nor a parallel edge.
//
// Contract: k even, 0 < k < n.
//
// Complexity: O(n·k).
func WattsStrogatz(n, k int, p float64, opts ...Option) (*graph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("WattsStrogatz: n=%d: %w", n, ErrTooFewVertices)
	}
	if k <= 0 || k%2 != 0 || k >= n {
		return nil, fmt.Errorf("WattsStrogatz: k=%d with n=%d: %w", k, n, ErrBadDegree)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("WattsStrogatz: p=%g: %w", p, ErrInvalidProbability)
	}
	cfg := resolve(opts)

	// present tracks the current edge set for duplicate checks on rewiring.
	present := make(map[[2]int]struct{}, n*k/2)
	has := func(u, v int) bool {
		if u > v {
			u, v = v, u
		}
		_, ok := present[[2]int{u, v}]
		return ok
	}
	add := func(u, v int) {
		if u > v {
			u, v = v, u
		}
		present[[2]int{u, v}] = struct{}{}
	}
	del := func(u, v int) {
		if u > v {
			u, v = v, u
		}
		delete(present, [2]int{u, v})
	}

	for u := 0; u < n; u++ {
		for j := 1; j <= k/2; j++ {
			add(u, (u+j)%n)
		}
	}

	// Rewire in the same stable order the lattice was laid down.
	for u := 0; u < n; u++ {
		for j := 1; j <= k/2; j++ {
			v := (u + j) % n
			if !has(u, v) || cfg.rng.Float64() >= p {
				continue
			}
			// Skip the rewire when the vertex is already saturated; avoids
			// an unbounded retry loop on dense lattices.
			if countIncident(present, u) >= n-1 {
				continue
			}
			w := cfg.rng.Intn(n)
			for w == u || has(u, w) {
				w = cfg.rng.Intn(n)
			}
			del(u, v)
			add(u, w)
		}
	}

	edges := make([]graph.Edge, 0, len(present))
	for pair := range present {
		edges = append(edges, graph.Edge{U: pair[0], V: pair[1]})
	}
	sortEdges(edges)
	return graph.New(n, edges)
}

// countIncident counts edges touching u in the working set.
func countIncident(present map[[2]int]struct{}, u int) int {
	deg := 0
	for pair := range present {
		if pair[0] == u || pair[1] == u {
			deg++
		}
	}
	return deg
}

// sortEdges orders edges lexicographically so map iteration order cannot
// leak into the generated graph (the edge order is observable through the
// 2-approximation).
func sortEdges(edges []graph.Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
}
