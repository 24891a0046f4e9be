package builder

import "github.com/arcpostman/engine/core"

const minPathVertices = 2

// Path builds a simple path 0-1-2-...-(n-1).
//
// Contract: n >= 2, else ErrTooFewVertices.
//
// Complexity: O(n) time and space.
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < minPathVertices {
		return nil, ErrTooFewVertices
	}

	cfg := resolveOptions(opts)
	g := core.NewGraph()

	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for i := 1; i < n; i++ {
		if _, err := g.AddEdge(i-1, i, cfg.WeightFn(cfg.Rand)); err != nil {
			return nil, err
		}
	}

	return g, nil
}
