package partition

import (
	"github.com/arcpostman/engine/core"
	"github.com/arcpostman/engine/dijkstra"
)

// BucketEdges assigns every edge of g to exactly one partition index,
// resolving edges whose endpoints fall in different partitions by shortest-
// path distance from each endpoint to its own partition's nearest member:
// the edge goes to whichever endpoint's partition it is closer to. Ties
// favor the lower partition index.
//
// This resolves the policy left open by an edge straddling two partitions:
// rather than picking a geometric midpoint (no coordinates are guaranteed to
// exist), proximity is measured in graph shortest-path distance, which is
// always available.
func BucketEdges(g *core.Graph, groups [][]int) (map[string]int, error) {
	memberOf := make(map[int]int, len(g.Vertices()))
	for idx, group := range groups {
		for _, v := range group {
			memberOf[v] = idx
		}
	}

	dist := make(map[int]*dijkstra.Result, len(memberOf))
	for v := range memberOf {
		res, err := dijkstra.Run(g, v)
		if err != nil {
			return nil, err
		}
		dist[v] = res
	}

	buckets := make(map[string]int, g.EdgeCount())
	for _, e := range g.Edges() {
		gu, gv := memberOf[e.U], memberOf[e.V]
		if gu == gv {
			buckets[e.ID] = gu

			continue
		}

		du := nearestGroupDistance(dist[e.U], groups[gu])
		dv := nearestGroupDistance(dist[e.V], groups[gv])

		switch {
		case du < dv:
			buckets[e.ID] = gu
		case dv < du:
			buckets[e.ID] = gv
		case gu <= gv:
			buckets[e.ID] = gu
		default:
			buckets[e.ID] = gv
		}
	}

	return buckets, nil
}

// nearestGroupDistance returns the smallest distance from res's source to
// any member of group.
func nearestGroupDistance(res *dijkstra.Result, group []int) float64 {
	best := -1.0
	for _, v := range group {
		d, ok := res.Dist[v]
		if !ok {
			continue
		}
		if best < 0 || d < best {
			best = d
		}
	}

	return best
}
