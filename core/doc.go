// Package core defines the Graph and Multigraph types that the routing engine
// is built on: an undirected, weighted, simple graph with integer vertex
// identifiers and stable edge identities, plus the vertex-multiset multigraph
// that the Eulerian extractor mutates in place.
//
// Graph collapses parallel input edges to the minimum weight on insertion
// (callers may feed it raw edge lists or adjacency-matrix data without
// pre-deduplicating). Self-loops and non-positive or non-finite weights are
// rejected. Iteration order (Vertices, Edges, Neighbors) is always sorted, so
// two callers building the same graph from the same edges observe identical
// output from every downstream algorithm.
//
// Graph's mutation and query methods are guarded by a pair of RWMutex locks
// (muVert for vertex bookkeeping, muEdge for edges/adjacency) so a caller may
// ingest edges from multiple goroutines; the routing algorithms themselves
// (dijkstra, matching, eulerian, cpp, partition, dispatch) are pure functions
// over a Graph snapshot and never mutate it concurrently with a solve.
package core

import "errors"

// Sentinel errors of the core graph store. Downstream packages declare
// their own independent sentinels (for example cpp.ErrDisconnected); they do
// not wrap these, so errors.Is against a core sentinel does not match them.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted (u == v).
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a non-positive or non-finite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive and finite")

	// ErrDisconnected indicates an operation required a single connected
	// component over the edge-bearing vertices but found more than one.
	ErrDisconnected = errors.New("core: graph is disconnected")
)
