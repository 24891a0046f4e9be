// Package builder provides deterministic synthetic core.Graph generators for
// tests and benchmarks: Grid, Cycle, Path, and RandomSparse.
//
// Adapted from the teacher's builder package: same functional-options
// configuration surface and per-constructor contract/complexity/determinism
// doc-comment shape, trimmed to the generators arc-routing test fixtures
// actually need (street-network-shaped topologies) and re-targeted at
// core.Graph's int vertex IDs and float64 weights. The teacher's signal- and
// combinatorics-oriented generators (ohlc, chirp, pulse, letters, hexagram,
// platonic solids, wheel, star, bipartite, complete, random-regular) have no
// role in arc-routing fixtures and are not carried over.
package builder

import "errors"

// Sentinel errors returned by the generators in this package.
var (
	// ErrTooFewVertices indicates a requested size is below a generator's
	// minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices requested")

	// ErrInvalidDimensions indicates a Grid's rows or cols was non-positive.
	ErrInvalidDimensions = errors.New("builder: grid dimensions must be positive")

	// ErrInvalidProbability indicates RandomSparse's edge probability was
	// outside [0,1].
	ErrInvalidProbability = errors.New("builder: edge probability must be in [0,1]")
)
