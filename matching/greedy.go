package matching

// solveGreedyTwoOpt builds an initial pairing by repeatedly pairing the
// lowest-indexed unmatched vertex with its nearest unmatched partner, then
// refines it with a bounded 2-opt local search that swaps partners across
// pairs whenever doing so strictly reduces total weight.
//
// Grounded on the teacher's tsp/matching.go greedyMatch, extended with the
// 2-opt re-pairing pass spec.md §4.2 requires for the above-threshold path.
func solveGreedyTwoOpt(vertices []int, weight WeightFunc, maxIterations int) (Matching, error) {
	n := len(vertices)
	used := make([]bool, n)

	var pairs [][2]int
	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}
		used[i] = true

		bestJ := -1
		bestW := 0.0
		for j := i + 1; j < n; j++ {
			if used[j] {
				continue
			}
			w := weight(vertices[i], vertices[j])
			if bestJ == -1 || w < bestW {
				bestW = w
				bestJ = j
			}
		}

		used[bestJ] = true
		pairs = append(pairs, [2]int{i, bestJ})
	}

	const epsilon = 1e-9

	pairWeight := func(p [2]int) float64 {
		return weight(vertices[p[0]], vertices[p[1]])
	}

	for iter := 0; iter < maxIterations; iter++ {
		improved := false

		for a := 0; a < len(pairs); a++ {
			for b := a + 1; b < len(pairs); b++ {
				p, q := pairs[a], pairs[b]
				current := pairWeight(p) + pairWeight(q)

				// Candidate 1: cross p0-q1, q0-p1.
				alt1 := weight(vertices[p[0]], vertices[q[1]]) + weight(vertices[q[0]], vertices[p[1]])
				// Candidate 2: cross p0-q0, p1-q1.
				alt2 := weight(vertices[p[0]], vertices[q[0]]) + weight(vertices[p[1]], vertices[q[1]])

				switch {
				case current-alt1 > epsilon && alt1 <= alt2:
					pairs[a] = [2]int{p[0], q[1]}
					pairs[b] = [2]int{q[0], p[1]}
					improved = true
				case current-alt2 > epsilon:
					pairs[a] = [2]int{p[0], q[0]}
					pairs[b] = [2]int{p[1], q[1]}
					improved = true
				}
			}
		}

		if !improved {
			break
		}
	}

	result := Matching{}
	for _, p := range pairs {
		result.Pairs = append(result.Pairs, NewPair(vertices[p[0]], vertices[p[1]]))
		result.Weight += pairWeight(p)
	}

	return result, nil
}
