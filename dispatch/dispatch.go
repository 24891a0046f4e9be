package dispatch

import (
	"sort"

	"github.com/arcpostman/engine/components"
	"github.com/arcpostman/engine/core"
	"github.com/arcpostman/engine/cpp"
	"github.com/arcpostman/engine/dijkstra"
	"github.com/arcpostman/engine/matching"
	"github.com/arcpostman/engine/partition"
)

// Dispatch splits g's edges among k agents rooted at depot and returns one
// closed-walk result per agent, per spec.md §4.6:
//  1. partition vertices among agents (GreedyAssign by default, or Bisect),
//  2. build each agent's induced subgraph, including depot and both
//     endpoints of every edge partition.BucketEdges assigns to that agent,
//  3. if that subgraph is disconnected, solve each connected piece
//     independently and stitch the per-component tours together depot-first,
//  4. otherwise solve the whole subgraph directly,
//  5. if depot still isn't part of the resulting walk (no direct edge tied it
//     into the partition), splice in a shortest-path prefix from depot to the
//     partition's nearest vertex and append its reverse, so every agent's
//     walk is rooted at depot.
func Dispatch(g *core.Graph, depot int, k int, opts ...Option) ([]AgentResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(depot) {
		return nil, ErrDepotNotFound
	}
	if k <= 0 {
		return nil, ErrInvalidAgentCount
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var groups [][]int
	var err error
	switch cfg.Strategy {
	case Bisection:
		groups, err = partition.Bisect(g, k)
	default:
		groups, err = partition.AssignGreedy(g, depot, k)
	}
	if err != nil {
		return nil, err
	}

	buckets, err := partition.BucketEdges(g, groups)
	if err != nil {
		return nil, err
	}

	results := make([]AgentResult, len(groups))
	for i, group := range groups {
		keep := make(map[int]bool, len(group)+1)
		for _, v := range group {
			keep[v] = true
		}
		keep[depot] = true // reconnect to depot even if the partition excluded it
		for _, e := range g.Edges() {
			if buckets[e.ID] == i {
				keep[e.U] = true // pull in cross-partition edges bucketed here
				keep[e.V] = true
			}
		}

		sub := g.InducedSubgraph(keep)

		walk, err := solveSubgraph(sub, depot)
		if err != nil {
			return nil, err
		}

		if !rootedAtDepot(walk, depot) {
			walk, err = spliceDepotConnection(g, depot, walk)
			if err != nil {
				return nil, err
			}
		}

		results[i] = AgentResult{Walk: *walk, PartitionVertices: sortedCopy(group)}
	}

	return results, nil
}

// solveSubgraph runs cpp.Solve over sub, rooted at depot when present.
// If sub is disconnected, each connected component is solved independently
// and the resulting tours are concatenated, depot's component first.
func solveSubgraph(sub *core.Graph, depot int) (*cpp.Result, error) {
	comps := components.Components(sub)

	edgeBearing := make([][]int, 0, len(comps))
	for _, c := range comps {
		if hasAnyEdge(sub, c) {
			edgeBearing = append(edgeBearing, c)
		}
	}
	if len(edgeBearing) == 0 {
		return &cpp.Result{Paths: make(map[matching.Pair][]int)}, nil
	}

	sort.Slice(edgeBearing, func(i, j int) bool {
		return containsDepotRank(edgeBearing[i], depot) < containsDepotRank(edgeBearing[j], depot)
	})

	combined := &cpp.Result{Paths: make(map[matching.Pair][]int)}
	for _, comp := range edgeBearing {
		keep := make(map[int]bool, len(comp))
		for _, v := range comp {
			keep[v] = true
		}
		piece := sub.InducedSubgraph(keep)

		var pieceOpts []cpp.Option
		if piece.HasVertex(depot) {
			pieceOpts = append(pieceOpts, cpp.WithStart(depot))
		}

		res, err := cpp.Solve(piece, pieceOpts...)
		if err != nil {
			return nil, err
		}

		combined.Cost += res.Cost
		combined.Edges = append(combined.Edges, res.Edges...)
		combined.Vertices = append(combined.Vertices, res.Vertices...)
		combined.Pairs = append(combined.Pairs, res.Pairs...)
		for p, path := range res.Paths {
			combined.Paths[p] = path
		}
	}

	return combined, nil
}

// rootedAtDepot reports whether walk is already a closed walk starting (and
// so, by construction, ending) at depot. An empty walk (an agent with no
// edges to cover) trivially counts as rooted: there's nothing to reconnect.
func rootedAtDepot(walk *cpp.Result, depot int) bool {
	return len(walk.Vertices) == 0 || walk.Vertices[0] == depot
}

// spliceDepotConnection reroutes walk — a closed tour over an agent's
// partition that never touches depot, because the induced subgraph gave
// depot no edge into it — so it starts and ends at depot instead, per
// spec.md §4.6 step 3: find the partition vertex nearest depot in the full
// graph g, prepend a shortest-path prefix from depot to it, rotate the tour
// to begin there, and append the reverse of the prefix to return to depot.
func spliceDepotConnection(g *core.Graph, depot int, walk *cpp.Result) (*cpp.Result, error) {
	depotDist, err := dijkstra.Run(g, depot)
	if err != nil {
		return nil, err
	}

	nearest, ok := nearestPartitionVertex(depotDist, walk.Vertices)
	if !ok {
		return nil, ErrDepotUnreachable
	}

	prefix, ok := depotDist.Path(nearest)
	if !ok {
		return nil, ErrDepotUnreachable
	}

	rotated, err := rotateClosedWalk(walk.Vertices, nearest)
	if err != nil {
		return nil, err
	}

	vertices := make([]int, 0, len(prefix)-1+len(rotated)+len(prefix)-1)
	vertices = append(vertices, prefix[:len(prefix)-1]...)
	vertices = append(vertices, rotated...)
	for i := len(prefix) - 1; i > 0; i-- {
		vertices = append(vertices, prefix[i-1])
	}

	spliced := &cpp.Result{
		Vertices: vertices,
		Cost:     walk.Cost,
		Pairs:    walk.Pairs,
		Paths:    walk.Paths,
	}

	for i := 1; i < len(prefix); i++ {
		u, v := prefix[i-1], prefix[i]
		w, _ := g.Weight(u, v)
		spliced.Cost += w
		spliced.Edges = append(spliced.Edges, cpp.Traversal{From: u, To: v, Weight: w, Duplicate: true})
	}
	// Rotate the tour's own edges the same way its vertices were rotated.
	idx := 0
	for walk.Vertices[idx] != nearest {
		idx++
	}
	spliced.Edges = append(spliced.Edges, walk.Edges[idx:]...)
	spliced.Edges = append(spliced.Edges, walk.Edges[:idx]...)
	for i := len(prefix) - 1; i > 0; i-- {
		u, v := prefix[i], prefix[i-1]
		w, _ := g.Weight(u, v)
		spliced.Cost += w
		spliced.Edges = append(spliced.Edges, cpp.Traversal{From: u, To: v, Weight: w, Duplicate: true})
	}

	return spliced, nil
}

// nearestPartitionVertex returns the vertex in walk (deduplicated) with the
// smallest depot distance, ties broken by vertex ID.
func nearestPartitionVertex(depotDist *dijkstra.Result, walk []int) (int, bool) {
	seen := make(map[int]bool, len(walk))
	best := -1
	bestDist := 0.0

	for _, v := range walk {
		if seen[v] {
			continue
		}
		seen[v] = true

		d, ok := depotDist.Dist[v]
		if !ok {
			continue
		}
		if best == -1 || d < bestDist || (d == bestDist && v < best) {
			best = v
			bestDist = d
		}
	}

	return best, best != -1
}

// rotateClosedWalk re-expresses the closed walk vertices (vertices[0] ==
// vertices[len-1]) so it starts and ends at the given vertex instead,
// preserving traversal order and direction.
func rotateClosedWalk(vertices []int, at int) ([]int, error) {
	idx := -1
	for i, v := range vertices {
		if v == at {
			idx = i

			break
		}
	}
	if idx == -1 {
		return nil, ErrDepotUnreachable
	}

	out := make([]int, 0, len(vertices))
	out = append(out, vertices[idx:]...)
	out = append(out, vertices[1:idx+1]...)

	return out, nil
}

// containsDepotRank sorts a depot-containing component first (rank 0).
func containsDepotRank(comp []int, depot int) int {
	for _, v := range comp {
		if v == depot {
			return 0
		}
	}

	return 1
}

func hasAnyEdge(g *core.Graph, vertices []int) bool {
	for _, v := range vertices {
		if g.Degree(v) > 0 {
			return true
		}
	}

	return false
}

func sortedCopy(vs []int) []int {
	out := append([]int(nil), vs...)
	sort.Ints(out)

	return out
}
