package builder

import "github.com/arcpostman/engine/core"

// Grid builds a rows x cols orthogonal grid with 4-neighborhood (right and
// bottom neighbors per cell), a stand-in for a city block layout. Vertex IDs
// are row-major: vertex r*cols+c is the cell at row r, column c.
//
// Contract: rows >= 1 and cols >= 1, else ErrInvalidDimensions.
//
// Complexity: O(rows*cols) time and space.
//
// Determinism: vertices and edges are emitted in row-major order; weights
// are deterministic for a fixed Rand source.
func Grid(rows, cols int, opts ...Option) (*core.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}

	cfg := resolveOptions(opts)
	g := core.NewGraph()

	id := func(r, c int) int { return r*cols + c }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.AddVertex(id(r, c))
		}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := id(r, c)

			if c+1 < cols {
				if _, err := g.AddEdge(u, id(r, c+1), cfg.WeightFn(cfg.Rand)); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if _, err := g.AddEdge(u, id(r+1, c), cfg.WeightFn(cfg.Rand)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
