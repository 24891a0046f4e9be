// Package eulerian extracts an Eulerian circuit from a core.Multigraph via
// Hierholzer's algorithm, per spec.md §4.3.
//
// Conceptually grounded on the teacher's tsp/eulerian.go half-edge
// Hierholzer implementation, re-expressed over core.Multigraph's plain
// neighbor-count representation (no half-edge bookkeeping is needed once
// multiplicities are tracked directly). The input multigraph is mutated
// (edges are consumed as they're walked) and discarded by the caller
// afterward; Circuit never mutates the core.Graph it was built from.
package eulerian

import "errors"

// Sentinel errors returned by Circuit.
var (
	// ErrNotEulerian indicates some vertex in the multigraph has odd degree,
	// so no Eulerian circuit can exist.
	ErrNotEulerian = errors.New("eulerian: multigraph has a vertex of odd degree")

	// ErrDisconnected indicates the edge-bearing vertices of the multigraph
	// do not form a single connected component.
	ErrDisconnected = errors.New("eulerian: edge-bearing vertices are disconnected")

	// ErrStartNotFound indicates start has no incident edges in the
	// multigraph.
	ErrStartNotFound = errors.New("eulerian: start vertex has no incident edges")
)
