package builder

import "github.com/arcpostman/engine/core"

const minCycleVertices = 3

// Cycle builds an n-vertex simple cycle (0-1-2-...-(n-1)-0).
//
// Contract: n >= 3, else ErrTooFewVertices.
//
// Complexity: O(n) time and space.
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if n < minCycleVertices {
		return nil, ErrTooFewVertices
	}

	cfg := resolveOptions(opts)
	g := core.NewGraph()

	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for i := 0; i < n; i++ {
		if _, err := g.AddEdge(i, (i+1)%n, cfg.WeightFn(cfg.Rand)); err != nil {
			return nil, err
		}
	}

	return g, nil
}
