package eulerian

import "github.com/arcpostman/engine/core"

// Circuit extracts an Eulerian circuit starting and ending at start, using
// Hierholzer's algorithm. mg is mutated (consumed) in the process; callers
// that still need it afterward should pass mg.Clone().
//
// The returned slice is the vertex sequence of the circuit, e.g.
// [start, v1, v2, ..., start]. Deterministic: at every step the
// smallest-numbered unconsumed neighbor is taken first.
func Circuit(mg *core.Multigraph, start int) ([]int, error) {
	if !mg.HasEdges(start) {
		return nil, ErrStartNotFound
	}
	for _, v := range mg.Vertices() {
		if mg.Degree(v)%2 != 0 {
			return nil, ErrNotEulerian
		}
	}
	if !connected(mg) {
		return nil, ErrDisconnected
	}

	// Hierholzer, iterative stack form: walk smallest-neighbor-first from
	// start until stuck at a vertex with no unconsumed edges, pop it onto
	// the circuit, and backtrack until an ancestor with remaining edges is
	// found to resume from.
	stack := []int{start}
	var circuit []int

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		if !mg.HasEdges(cur) {
			circuit = append(circuit, cur)
			stack = stack[:len(stack)-1]

			continue
		}

		next := mg.SortedNeighbors(cur)[0]
		mg.RemovePair(cur, next)
		stack = append(stack, next)
	}

	// circuit was built in reverse (last-finished-first); reverse it back.
	for i, j := 0, len(circuit)-1; i < j; i, j = i+1, j-1 {
		circuit[i], circuit[j] = circuit[j], circuit[i]
	}

	return circuit, nil
}

// connected reports whether every edge-bearing vertex in mg is reachable
// from any other edge-bearing vertex, via BFS over remaining edges.
func connected(mg *core.Multigraph) bool {
	var start int
	found := false
	for _, v := range mg.Vertices() {
		if mg.HasEdges(v) {
			start = v
			found = true

			break
		}
	}
	if !found {
		return true // no edges at all: trivially connected
	}

	visited := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range mg.SortedNeighbors(cur) {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	for _, v := range mg.Vertices() {
		if mg.HasEdges(v) && !visited[v] {
			return false
		}
	}

	return true
}
