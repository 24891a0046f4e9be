// Package matrixconv converts between core.Graph and a dense adjacency
// matrix, for callers that already have weights in matrix form (e.g. from a
// linear-algebra pipeline) or want one back out. In-memory only — no file or
// wire format is defined here, per spec.md §6's non-goal on persistence.
//
// Adapted from the teacher's matrix package: same sentinel-error set and
// nil/shape/NaN validation ordering as matrix/adjacency.go's
// NewAdjacencyMatrix, trimmed to the two pure conversion functions
// arc-routing fixtures need and re-targeted at core.Graph's int vertex IDs
// (the teacher's full Matrix/IncidenceMatrix/linear-algebra surface has no
// role here since this package never performs matrix arithmetic itself).
package matrixconv

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to ToDenseMatrix.
	ErrNilGraph = errors.New("matrixconv: graph is nil")

	// ErrNonSquare indicates FromDenseMatrix was given a non-square matrix.
	ErrNonSquare = errors.New("matrixconv: matrix is not square")

	// ErrDimensionMismatch indicates the vertex ID slice's length does not
	// match the matrix's dimension.
	ErrDimensionMismatch = errors.New("matrixconv: vertex count does not match matrix dimension")

	// ErrInvalidWeight indicates a NaN, infinite, or negative off-diagonal
	// entry was encountered.
	ErrInvalidWeight = errors.New("matrixconv: invalid edge weight")
)
