package components

import (
	"sort"

	"github.com/arcpostman/engine/core"
)

// Components partitions g's vertices into connected components. Each
// component is sorted ascending; components are ordered by their smallest
// vertex ID ascending, so the result is fully deterministic.
func Components(g *core.Graph) [][]int {
	visited := make(map[int]bool)
	var comps [][]int

	for _, v := range g.Vertices() {
		if visited[v] {
			continue
		}
		comp := bfsFrom(g, v, visited)
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	return comps
}

// bfsFrom explores the component containing start, marking every visited
// vertex in the shared visited set, and returns the unsorted member list.
func bfsFrom(g *core.Graph, start int, visited map[int]bool) []int {
	queue := []int{start}
	visited[start] = true
	comp := []int{start}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		neighbors, err := g.NeighborIDs(u)
		if err != nil {
			continue
		}
		for _, v := range neighbors {
			if visited[v] {
				continue
			}
			visited[v] = true
			comp = append(comp, v)
			queue = append(queue, v)
		}
	}

	return comp
}

// Connected reports whether every vertex that has at least one incident edge
// lies in a single connected component. A graph with zero edges (or fewer
// than two edge-bearing vertices) is trivially connected.
func Connected(g *core.Graph) bool {
	edgeBearing := edgeBearingVertices(g)
	if len(edgeBearing) <= 1 {
		return true
	}

	visited := make(map[int]bool)
	start := edgeBearing[0]
	comp := bfsFrom(g, start, visited)
	if len(comp) != len(edgeBearing) {
		return false
	}
	for _, v := range edgeBearing {
		if !visited[v] {
			return false
		}
	}

	return true
}

// edgeBearingVertices returns the sorted vertices of g that have degree > 0.
func edgeBearingVertices(g *core.Graph) []int {
	var out []int
	for _, v := range g.Vertices() {
		if g.Degree(v) > 0 {
			out = append(out, v)
		}
	}

	return out
}

// OddDegreeVertices returns the sorted set of vertices with odd degree.
func OddDegreeVertices(g *core.Graph) []int {
	var out []int
	for _, v := range g.Vertices() {
		if g.Degree(v)%2 == 1 {
			out = append(out, v)
		}
	}

	return out
}
