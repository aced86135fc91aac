package graph

// CountUncovered reports how many edge-list entries have neither endpoint in
// cover. Every entry counts individually, so parallel edges are counted as
// many times as they appear. A self-loop (v,v) is covered iff cover[v].
//
// cover is interpreted as a membership vector indexed by vertex; indices
// beyond len(cover) are treated as not covered, so a short (or nil) vector is
// a valid "empty cover".
//
// Complexity: O(|E|).
func (g *Graph) CountUncovered(cover []bool) int {
	var (
		uncovered int
		e         Edge
	)
	for _, e = range g.edges {
		if !covers(cover, e.U) && !covers(cover, e.V) {
			uncovered++
		}
	}
	return uncovered
}

// IsCoverValid reports whether cover touches every edge.
// Equivalent to CountUncovered(cover) == 0 but short-circuits.
//
// Complexity: O(|E|) worst case.
func (g *Graph) IsCoverValid(cover []bool) bool {
	var e Edge
	for _, e = range g.edges {
		if !covers(cover, e.U) && !covers(cover, e.V) {
			return false
		}
	}
	return true
}

// covers is the single membership test shared by the helpers above.
func covers(cover []bool, v int) bool {
	return v >= 0 && v < len(cover) && cover[v]
}
