package cpp

import (
	"github.com/arcpostman/engine/components"
	"github.com/arcpostman/engine/core"
	"github.com/arcpostman/engine/dijkstra"
	"github.com/arcpostman/engine/eulerian"
	"github.com/arcpostman/engine/matching"
)

type edgeCount struct {
	original  int
	duplicate int
}

// Solve computes a minimum-cost closed walk over g that traverses every edge
// at least once, per spec.md §4.
func Solve(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.EdgeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	if !components.Connected(g) {
		return nil, ErrDisconnected
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	start := -1
	for _, v := range g.Vertices() {
		if g.Degree(v) > 0 {
			start = v

			break
		}
	}
	if cfg.hasStart {
		if !g.HasVertex(cfg.Start) {
			return nil, ErrStartNotFound
		}
		start = cfg.Start
	}

	odd := components.OddDegreeVertices(g)

	bySource := make(map[int]*dijkstra.Result, len(odd))
	for _, v := range odd {
		res, err := dijkstra.Run(g, v)
		if err != nil {
			return nil, err
		}
		bySource[v] = res
	}

	weightFn := func(u, v int) float64 {
		return bySource[u].Dist[v]
	}

	var m matching.Matching
	if len(odd) > 0 {
		var err error
		m, err = matching.Solve(odd, weightFn, matching.WithExactThreshold(cfg.ExactMatchingThreshold))
		if err != nil {
			return nil, err
		}
	}

	mg := g.ToMultigraph()
	counts := make(map[matching.Pair]*edgeCount)
	for _, e := range g.Edges() {
		p := matching.NewPair(e.U, e.V)
		counts[p] = &edgeCount{original: 1}
	}

	resultPaths := make(map[matching.Pair][]int, len(m.Pairs))
	for _, pair := range m.Pairs {
		path, ok := bySource[pair.Lo].Path(pair.Hi)
		if !ok {
			path, ok = bySource[pair.Hi].Path(pair.Lo)
		}
		if !ok {
			return nil, ErrDisconnected
		}
		resultPaths[pair] = path

		for i := 1; i < len(path); i++ {
			u, v := path[i-1], path[i]
			mg.AddPair(u, v)

			p := matching.NewPair(u, v)
			if counts[p] == nil {
				counts[p] = &edgeCount{}
			}
			counts[p].duplicate++
		}
	}

	walk, err := eulerian.Circuit(mg, start)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Vertices: walk,
		Pairs:    m.Pairs,
		Paths:    resultPaths,
	}

	for i := 1; i < len(walk); i++ {
		u, v := walk[i-1], walk[i]
		w, _ := g.Weight(u, v)

		p := matching.NewPair(u, v)
		c := counts[p]

		duplicate := true
		if c != nil && c.original > 0 {
			c.original--
			duplicate = false
		} else if c != nil && c.duplicate > 0 {
			c.duplicate--
		}

		result.Edges = append(result.Edges, Traversal{From: u, To: v, Weight: w, Duplicate: duplicate})
	}

	// Total cost comes straight from the inputs and the matching: every
	// original edge once, plus each matched pair's shortest-path distance.
	for _, e := range g.Edges() {
		result.Cost += e.Weight
	}
	result.Cost += m.Weight

	return result, nil
}
