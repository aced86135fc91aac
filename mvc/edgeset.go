// Package mvc - interned residual edge sets for the exact search engine.
//
// Every distinct canonical edge (min,max endpoint pair) is assigned a bit
// position once per Solve call; a search state is then a roaring bitmap of
// still-uncovered edge ids. Committing a vertex to the cover is a single
// AndNot against that vertex's precomputed incidence bitmap, and memo keys
// are a compact, order-independent encoding of the bitmap contents.
//
// The interning pass also deduplicates parallel edges, so exact strategies
// never pay for multi-edges. Self-loops intern like any other edge: they are
// incident to exactly one vertex, which both branches of the branching rule
// then force into the cover.
package mvc

import (
	"encoding/binary"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/mincover/graph"
)

// edgeSpace owns the canonical edge interning for one Solve call.
type edgeSpace struct {
	n    int       // vertex count of the source graph
	ends [][2]int  // ends[id] = (min,max) endpoints of canonical edge id
	all  *roaring.Bitmap // every canonical edge id; the initial search state

	// incident[v] holds the ids of all canonical edges touching v.
	incident []*roaring.Bitmap
}

// newEdgeSpace interns the canonical edges of g.
//
// Complexity: O(V + E) time; O(V + E') space where E' = distinct edges.
func newEdgeSpace(g *graph.Graph) *edgeSpace {
	n := g.NumVertices()
	es := &edgeSpace{
		n:        n,
		all:      roaring.New(),
		incident: make([]*roaring.Bitmap, n),
	}
	for v := 0; v < n; v++ {
		es.incident[v] = roaring.New()
	}

	seen := make(map[[2]int]struct{}, g.NumEdges())
	var (
		e    graph.Edge
		pair [2]int
		id   uint32
	)
	for _, e = range g.Edges() {
		pair = canonical(e)
		if _, dup := seen[pair]; dup {
			continue
		}
		seen[pair] = struct{}{}

		id = uint32(len(es.ends))
		es.ends = append(es.ends, pair)
		es.all.Add(id)
		es.incident[pair[0]].Add(id)
		if pair[1] != pair[0] {
			es.incident[pair[1]].Add(id)
		}
	}

	return es
}

// canonical normalizes an edge to (min,max) so (u,v) and (v,u) intern equally.
func canonical(e graph.Edge) [2]int {
	if e.U <= e.V {
		return [2]int{e.U, e.V}
	}
	return [2]int{e.V, e.U}
}

// initialState returns a private copy of the full edge set.
func (es *edgeSpace) initialState() *roaring.Bitmap {
	return es.all.Clone()
}

// pickEdge returns the endpoints of the lowest-id edge in state.
// Deterministic branching keeps runs reproducible across platforms.
//
// Contract: state must be non-empty.
func (es *edgeSpace) pickEdge(state *roaring.Bitmap) (u, v int) {
	pair := es.ends[state.Minimum()]
	return pair[0], pair[1]
}

// without returns a new state with every edge incident to v removed.
// Copy-on-write: the input state is never mutated, so sibling branches stay
// independent.
func (es *edgeSpace) without(state *roaring.Bitmap, v int) *roaring.Bitmap {
	return roaring.AndNot(state, es.incident[v])
}

// key encodes state as an order-independent string usable as a memo key.
// ToArray yields ascending ids regardless of the bitmap's internal container
// layout, so equal states always produce equal keys.
//
// Complexity: O(|state|).
func (es *edgeSpace) key(state *roaring.Bitmap) string {
	ids := state.ToArray()
	buf := make([]byte, 4*len(ids))
	for i, id := range ids {
		binary.LittleEndian.PutUint32(buf[4*i:], id)
	}
	return string(buf)
}
