package builder

import "github.com/arcpostman/engine/core"

// RandomSparse builds a connected, sparsely-edged graph on n vertices: a
// random spanning tree (vertex i joins a uniformly-chosen earlier vertex,
// guaranteeing connectivity), plus extra edges sampled independently with
// probability p between every other vertex pair.
//
// Contract: n >= 1, else ErrTooFewVertices. p must be in [0,1], else
// ErrInvalidProbability.
//
// Complexity: O(n^2) time (the extra-edge sampling pass considers every
// pair), O(n) expected edges for small p.
func RandomSparse(n int, p float64, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}

	cfg := resolveOptions(opts)
	g := core.NewGraph()

	g.AddVertex(0)
	for i := 1; i < n; i++ {
		g.AddVertex(i)
		parent := cfg.Rand.Intn(i)
		if _, err := g.AddEdge(i, parent, cfg.WeightFn(cfg.Rand)); err != nil {
			return nil, err
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.Rand.Float64() >= p {
				continue
			}
			if _, ok := g.Weight(i, j); ok {
				continue // already connected by the spanning tree
			}
			if _, err := g.AddEdge(i, j, cfg.WeightFn(cfg.Rand)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
