// Package dataset loads and writes edge-list graph files in the SNAP style:
// one "u v" pair per line (any whitespace separator), '#' comment lines and
// blank lines ignored.
//
// Real datasets carry arbitrary, sparse vertex identifiers. The loader
// remaps them to the dense [0, n) range graph.Graph requires — sorted by
// original id, so the mapping is reproducible — and returns an IDMap that
// translates a solver's cover back to the original identifiers.
//
// Cleanup on load: malformed lines are skipped (and counted), self-loops
// dropped, duplicate edges deduplicated after (u,v)/(v,u) normalization.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/mincover/graph"
)

// IDMap translates between dense solver indices and original vertex ids.
type IDMap struct {
	toOriginal []int64 // index = dense id, value = original id (ascending)
}

// Len returns the number of mapped vertices.
func (m *IDMap) Len() int { return len(m.toOriginal) }

// Original returns the original identifier of dense vertex v.
func (m *IDMap) Original(v int) (int64, bool) {
	if v < 0 || v >= len(m.toOriginal) {
		return 0, false
	}
	return m.toOriginal[v], true
}

// RemapCover translates a cover of dense indices back to original ids,
// preserving order. Out-of-range indices are skipped.
func (m *IDMap) RemapCover(cover []int) []int64 {
	out := make([]int64, 0, len(cover))
	for _, v := range cover {
		if id, ok := m.Original(v); ok {
			out = append(out, id)
		}
	}
	return out
}

// Stats summarizes what the loader saw; useful for reporting.
type Stats struct {
	Lines      int // non-comment, non-blank lines inspected
	Malformed  int // lines skipped for parse errors
	Loops      int // self-loop edges dropped
	Duplicates int // repeated edges collapsed
}

// Load reads an edge-list file from path. See Read.
func Load(path string) (*graph.Graph, *IDMap, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, Stats{}, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses an edge list from r, remaps vertex ids densely, and builds the
// graph. A stream with no usable edges yields an empty zero-vertex graph.
//
// Complexity: O(E log E) dominated by the id sort.
func Read(r io.Reader) (*graph.Graph, *IDMap, Stats, error) {
	var (
		stats Stats
		seen  = make(map[[2]int64]struct{})
		ids   = make(map[int64]struct{})
		pairs [][2]int64
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		stats.Lines++

		fields := strings.Fields(line)
		if len(fields) != 2 {
			stats.Malformed++
			continue
		}
		u, errU := strconv.ParseInt(fields[0], 10, 64)
		v, errV := strconv.ParseInt(fields[1], 10, 64)
		if errU != nil || errV != nil {
			stats.Malformed++
			continue
		}
		if u == v {
			stats.Loops++
			continue
		}
		if u > v {
			u, v = v, u
		}
		if _, dup := seen[[2]int64{u, v}]; dup {
			stats.Duplicates++
			continue
		}
		seen[[2]int64{u, v}] = struct{}{}
		pairs = append(pairs, [2]int64{u, v})
		ids[u] = struct{}{}
		ids[v] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, stats, fmt.Errorf("dataset: read: %w", err)
	}

	// Dense remapping, sorted by original id for reproducibility.
	m := &IDMap{toOriginal: make([]int64, 0, len(ids))}
	for id := range ids {
		m.toOriginal = append(m.toOriginal, id)
	}
	sort.Slice(m.toOriginal, func(i, j int) bool { return m.toOriginal[i] < m.toOriginal[j] })

	dense := make(map[int64]int, len(m.toOriginal))
	for i, id := range m.toOriginal {
		dense[id] = i
	}

	edges := make([]graph.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = graph.Edge{U: dense[p[0]], V: dense[p[1]]}
	}

	g, err := graph.New(len(m.toOriginal), edges)
	if err != nil {
		return nil, nil, stats, err
	}
	return g, m, stats, nil
}

// Write emits g as a loadable edge list: optional '#' comment lines followed
// by tab-separated pairs in edge-list order. The inverse of Read up to the
// cleanup Read performs.
func Write(w io.Writer, g *graph.Graph, comments ...string) error {
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		if _, err := fmt.Fprintf(bw, "# %s\n", c); err != nil {
			return fmt.Errorf("dataset: write: %w", err)
		}
	}
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d\t%d\n", e.U, e.V); err != nil {
			return fmt.Errorf("dataset: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dataset: write: %w", err)
	}
	return nil
}
