package matching

import "math/bits"

// solveExact computes a minimum-weight perfect matching by bitmask DP over
// subsets of vertices. Grounded on the teacher's tsp/exact.go Held-Karp
// shape: a flat dp array indexed by subset mask, stdlib math/bits for
// lowest-set-bit extraction, re-derived here for the matching recurrence
// (pair off the lowest unmatched index with every other unmatched index)
// instead of the Hamiltonian-path-cost recurrence tsp/exact.go computes.
//
// Complexity: O(n^2 * 2^n) time, O(2^n) space, where n = len(vertices).
func solveExact(vertices []int, weight WeightFunc) (Matching, error) {
	n := len(vertices)
	full := 1<<uint(n) - 1

	// dp[mask] = minimum weight of a perfect matching over the vertices
	// (indexed into `vertices`) whose bits are set in mask. Only even-
	// popcount masks are ever populated.
	dp := make([]float64, full+1)
	// partner[mask] = the index j such that, in the optimal matching of
	// mask, the lowest set bit of mask is paired with j.
	partner := make([]int, full+1)

	const unset = -1
	for i := range partner {
		partner[i] = unset
	}
	dp[0] = 0

	for mask := 1; mask <= full; mask++ {
		if bits.OnesCount(uint(mask))%2 != 0 {
			continue // odd-size subsets are never reachable in a perfect matching
		}

		i := bits.TrailingZeros(uint(mask))
		rest := mask &^ (1 << uint(i))

		best := -1.0
		bestJ := unset
		for sub := rest; sub != 0; sub &= sub - 1 {
			j := bits.TrailingZeros(uint(sub))
			remaining := rest &^ (1 << uint(j))
			cost := weight(vertices[i], vertices[j]) + dp[remaining]
			if bestJ == unset || cost < best {
				best = cost
				bestJ = j
			}
		}

		dp[mask] = best
		partner[mask] = bestJ
	}

	result := Matching{Weight: dp[full]}
	mask := full
	for mask != 0 {
		i := bits.TrailingZeros(uint(mask))
		j := partner[mask]
		result.Pairs = append(result.Pairs, NewPair(vertices[i], vertices[j]))
		mask &^= 1 << uint(i)
		mask &^= 1 << uint(j)
	}

	return result, nil
}
