package core

import "sort"

// Multigraph is a symmetric neighbor-count multiset: Counts[u][v] is the
// number of parallel u-v edges currently present. It carries no weights or
// edge identities of its own (spec.md §3) — the Eulerian extractor returns
// only a vertex sequence, and cpp.Solve consults the originating Graph to
// report weights for the edges walked.
//
// A Multigraph is built once (via Graph.ToMultigraph or CPP's augmentation
// step) and is exclusively owned by whichever algorithm mutates it
// (eulerian.Circuit decrements counts to zero and discards the copy).
type Multigraph struct {
	Counts map[int]map[int]int
}

// NewMultigraph returns an empty Multigraph.
func NewMultigraph() *Multigraph {
	return &Multigraph{Counts: make(map[int]map[int]int)}
}

// AddPair adds one copy of the undirected edge u-v.
func (m *Multigraph) AddPair(u, v int) {
	if m.Counts[u] == nil {
		m.Counts[u] = make(map[int]int)
	}
	if m.Counts[v] == nil {
		m.Counts[v] = make(map[int]int)
	}
	m.Counts[u][v]++
	m.Counts[v][u]++
}

// RemovePair removes one copy of the undirected edge u-v, decrementing both
// directions. Reports false (no-op) if no u-v edge remains.
func (m *Multigraph) RemovePair(u, v int) bool {
	if m.Counts[u][v] <= 0 {
		return false
	}
	m.Counts[u][v]--
	m.Counts[v][u]--
	if m.Counts[u][v] == 0 {
		delete(m.Counts[u], v)
	}
	if u != v && m.Counts[v][u] == 0 {
		delete(m.Counts[v], u)
	}

	return true
}

// Degree returns the total number of incident half-edges at v.
func (m *Multigraph) Degree(v int) int {
	d := 0
	for _, c := range m.Counts[v] {
		d += c
	}

	return d
}

// HasEdges reports whether v currently has at least one incident edge.
func (m *Multigraph) HasEdges(v int) bool {
	return m.Degree(v) > 0
}

// Vertices returns the sorted set of vertices with at least one recorded
// neighbor row (including vertices whose degree has been reduced to zero but
// whose row was never deleted).
func (m *Multigraph) Vertices() []int {
	out := make([]int, 0, len(m.Counts))
	for v := range m.Counts {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// SortedNeighbors returns the neighbors of v with at least one remaining
// parallel edge, sorted ascending — used by the Eulerian extractor to make
// edge-selection order deterministic.
func (m *Multigraph) SortedNeighbors(v int) []int {
	out := make([]int, 0, len(m.Counts[v]))
	for n, c := range m.Counts[v] {
		if c > 0 {
			out = append(out, n)
		}
	}
	sort.Ints(out)

	return out
}

// Clone returns a deep, independent copy of m.
func (m *Multigraph) Clone() *Multigraph {
	out := NewMultigraph()
	for u, row := range m.Counts {
		cp := make(map[int]int, len(row))
		for v, c := range row {
			cp[v] = c
		}
		out.Counts[u] = cp
	}

	return out
}
