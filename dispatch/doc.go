// Package dispatch splits a Chinese Postman tour among k agents starting
// from a common depot, per spec.md §4.5-4.6.
//
// Dispatch partitions g's vertices (via partition.AssignGreedy by default,
// or partition.Bisect under WithStrategy), builds each agent's induced
// subgraph, reconnects it to the depot when the depot falls outside that
// partition, solves each connected piece independently with cpp, and
// stitches multi-component partitions back together depot-first. This
// pipeline has no direct analogue in the teacher's corpus (lvlath has no
// multi-agent concept); it composes cpp and partition exactly as spec.md
// §4.6 describes, in the teacher's functional-options/sentinel-error idiom.
package dispatch

import "errors"

// Sentinel errors returned by Dispatch.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dispatch: graph is nil")

	// ErrDepotNotFound indicates depot is absent from the graph.
	ErrDepotNotFound = errors.New("dispatch: depot vertex not found")

	// ErrInvalidAgentCount indicates k <= 0.
	ErrInvalidAgentCount = errors.New("dispatch: agent count must be positive")

	// ErrDepotUnreachable indicates no path exists from depot to any vertex
	// in an agent's assigned partition, so its walk cannot be rooted at depot.
	ErrDepotUnreachable = errors.New("dispatch: depot unreachable from assigned partition")
)
