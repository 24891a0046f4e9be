// Package matching computes a minimum-weight perfect matching over an
// even-sized vertex set under a caller-supplied weight function, per
// spec.md §4.2.
//
// Two strategies are selected by input size: an exact bitmask DP for
// |vertices| <= ExactThreshold (default 20), and a greedy-nearest-partner
// pairing refined by 2-opt local search above that. Both are grounded on the
// teacher's tsp package: the exact path reuses the Held-Karp-style flat
// dp/parent-array-over-bitmask shape from tsp/exact.go (re-derived for the
// matching recurrence, not the Hamiltonian-cycle one), and the heuristic path
// extends tsp/matching.go's greedyMatch with the 2-opt re-pairing pass
// spec.md §4.2 requires.
package matching

import "errors"

// Sentinel errors returned by Solve.
var (
	// ErrOddCardinality indicates the input vertex set has odd size and so
	// cannot be perfectly matched.
	ErrOddCardinality = errors.New("matching: input vertex set has odd cardinality")
)
