// Package graph defines the immutable undirected Graph consumed by every
// vertex-cover solver in this module.
//
// A Graph is built once from a vertex count and an edge list over dense
// indices [0..n-1] and never mutated afterwards. Adjacency is derived at
// construction time; self-loops are kept in the edge list but dropped from
// adjacency (they can never help or hinder a cover), and parallel edges are
// retained verbatim — cover validity is duplicate-insensitive by definition.
//
// Errors:
//
//	ErrInvalidVertexIndex - an edge endpoint lies outside [0, n).
//	ErrNegativeVertexCount - the vertex count is negative.
package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrInvalidVertexIndex indicates an edge references a vertex outside [0, n).
	ErrInvalidVertexIndex = errors.New("graph: vertex index out of range")

	// ErrNegativeVertexCount indicates New was called with n < 0.
	ErrNegativeVertexCount = errors.New("graph: negative vertex count")
)

// Edge is an unordered pair of vertex indices. (U, V) and (V, U) denote the
// same edge; the core does not normalize the stored orientation.
type Edge struct {
	U, V int
}

// Graph is an immutable simple undirected graph over vertices 0..n-1.
//
// The zero value is a usable empty graph (no vertices, no edges).
// All accessors return defensive copies, so a Graph may be shared freely
// between sequential solver invocations.
type Graph struct {
	numVertices int
	edges       []Edge
	adj         [][]int // adj[v] lists neighbors of v; duplicates kept, loops dropped
}

// New constructs a Graph from a vertex count and an edge list.
//
// Contract:
//   - n ≥ 0 (else ErrNegativeVertexCount).
//   - every endpoint in [0, n) (else ErrInvalidVertexIndex, fail fast).
//   - edges is copied; the caller keeps ownership of its slice.
//
// Complexity: O(n + |E|) time and space.
func New(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrNegativeVertexCount)
	}

	g := &Graph{
		numVertices: n,
		edges:       make([]Edge, len(edges)),
		adj:         make([][]int, n),
	}
	copy(g.edges, edges)

	var e Edge
	for _, e = range g.edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("edge (%d,%d) outside [0,%d): %w", e.U, e.V, n, ErrInvalidVertexIndex)
		}
		if e.U == e.V {
			continue // self-loop: never contributes to adjacency
		}
		g.adj[e.U] = append(g.adj[e.U], e.V)
		g.adj[e.V] = append(g.adj[e.V], e.U)
	}

	return g, nil
}

// NumVertices returns the number of vertices n.
func (g *Graph) NumVertices() int { return g.numVertices }

// NumEdges returns the number of entries in the edge list (parallel edges
// and self-loops included).
func (g *Graph) NumEdges() int { return len(g.edges) }

// Edges returns a copy of the edge list in construction order.
// The order is significant: the 2-approximation is defined over it.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Neighbors returns a copy of the adjacency row of v, duplicates included.
// Out-of-range v yields nil.
func (g *Graph) Neighbors(v int) []int {
	if v < 0 || v >= g.numVertices {
		return nil
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])
	return out
}

// Degree returns len(adjacency row of v); 0 for out-of-range v.
// Parallel edges count multiply, self-loops not at all.
func (g *Graph) Degree(v int) int {
	if v < 0 || v >= g.numVertices {
		return 0
	}
	return len(g.adj[v])
}
