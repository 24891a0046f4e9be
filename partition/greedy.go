package partition

import (
	"math"
	"sort"

	"github.com/arcpostman/engine/core"
	"github.com/arcpostman/engine/dijkstra"
)

// AssignGreedy splits g's vertices among k agents rooted at depot: every
// agent starts at depot with zero cost, vertices are visited in ascending
// order of shortest-path distance from depot, and each is handed to
// whichever agent minimizes agent.cost + dist(agent.current, vertex) —
// updating that agent's cost and current position to the newly assigned
// vertex. Ties go to the lowest agent index, then (for the visit order
// itself) to the smaller vertex ID.
//
// Every agent's partition always contains depot, since every agent starts
// there.
func AssignGreedy(g *core.Graph, depot int, k int) ([][]int, error) {
	if k <= 0 {
		return nil, ErrInvalidAgentCount
	}

	vertices := g.Vertices()
	if k > len(vertices) {
		return nil, ErrTooManyAgents
	}

	depotDist, err := dijkstra.Run(g, depot)
	if err != nil {
		return nil, err
	}

	visitOrder := make([]int, 0, len(vertices))
	for _, v := range vertices {
		if v != depot {
			visitOrder = append(visitOrder, v)
		}
	}
	sort.Slice(visitOrder, func(i, j int) bool {
		vi, vj := visitOrder[i], visitOrder[j]
		di, iok := depotDist.Dist[vi]
		dj, jok := depotDist.Dist[vj]

		switch {
		case iok != jok:
			return iok // reachable vertices sort before unreachable ones
		case iok && jok && di != dj:
			return di < dj
		default:
			return vi < vj
		}
	})

	type agentState struct {
		vertices []int
		cost     float64
		current  int
		distFrom *dijkstra.Result
	}

	agents := make([]agentState, k)
	for i := range agents {
		agents[i] = agentState{vertices: []int{depot}, current: depot, distFrom: depotDist}
	}

	for _, v := range visitOrder {
		bestIdx := -1
		bestIncrement := 0.0
		bestTotal := math.Inf(1)

		for i := range agents {
			increment, ok := agents[i].distFrom.Dist[v]
			if !ok {
				increment = math.Inf(1)
			}
			total := agents[i].cost + increment

			if total < bestTotal {
				bestTotal = total
				bestIncrement = increment
				bestIdx = i
			}
		}

		if bestIdx == -1 {
			bestIdx = 0
			bestIncrement = 0
		}
		if math.IsInf(bestIncrement, 1) {
			bestIncrement = 0
		}

		res, err := dijkstra.Run(g, v)
		if err != nil {
			return nil, err
		}

		agents[bestIdx].vertices = append(agents[bestIdx].vertices, v)
		agents[bestIdx].cost += bestIncrement
		agents[bestIdx].current = v
		agents[bestIdx].distFrom = res
	}

	groups := make([][]int, k)
	for i, a := range agents {
		groups[i] = sortedCopyInts(a.vertices)
	}

	return groups, nil
}

func sortedCopyInts(vs []int) []int {
	out := append([]int(nil), vs...)
	sort.Ints(out)

	return out
}
