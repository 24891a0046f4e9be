package cpp

import "github.com/arcpostman/engine/matching"

// Traversal is one edge-crossing in a CPP walk. Duplicate is true when this
// crossing retraces an already-covered edge (inserted during augmentation to
// reach or leave a matched odd vertex), rather than covering a new edge of
// the original graph.
type Traversal struct {
	From, To  int
	Weight    float64
	Duplicate bool
}

// Result is the outcome of a CPP solve.
type Result struct {
	// Edges is the ordered sequence of edge-crossings making up the closed
	// walk, from Vertices[0] back to Vertices[0].
	Edges []Traversal

	// Vertices is the ordered vertex sequence of the closed walk, including
	// the repeated start/end vertex.
	Vertices []int

	// Cost is the total walk weight: sum of every original edge's weight
	// plus the matching's augmentation weight.
	Cost float64

	// Pairs is the odd-vertex matching used to augment the graph.
	Pairs []matching.Pair

	// Paths maps each matched pair to the shortest-path vertex sequence
	// used to duplicate edges between them (spec.md §9: callers need the
	// actual duplicated route, not just the pairing).
	Paths map[matching.Pair][]int
}
