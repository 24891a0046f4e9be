// Package partition splits a graph's vertices among k agents, per spec.md
// §4.4.
//
// Two strategies are provided: Bisect, a recursive Kernighan-Lin balanced
// bisection that repeatedly halves the vertex set (used when k is a power of
// two or the caller wants balanced cut weight), and AssignGreedy, a
// Dijkstra-distance-based nearest-to-frontier assignment rooted at a depot
// (used by dispatch's default strategy). Neither has a direct analogue in
// the teacher's corpus — lvlath has no partitioning package — so both are
// built fresh in the teacher's idiom: functional options, sentinel errors,
// deterministic tie-breaking by smallest vertex ID.
package partition

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrTooManyAgents indicates k exceeds the number of vertices available
	// to partition.
	ErrTooManyAgents = errors.New("partition: more agents requested than vertices available")

	// ErrInvalidAgentCount indicates k <= 0.
	ErrInvalidAgentCount = errors.New("partition: agent count must be positive")
)
