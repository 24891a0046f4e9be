package partition

import (
	"sort"

	"github.com/arcpostman/engine/core"
)

// Bisect splits g's vertices into k groups of roughly equal size, minimizing
// total cross-group edge weight, via recursive Kernighan-Lin bisection.
//
// Groups are returned sorted internally and ordered by their smallest
// member, so results are deterministic for a given graph and k.
func Bisect(g *core.Graph, k int, opts ...Option) ([][]int, error) {
	if k <= 0 {
		return nil, ErrInvalidAgentCount
	}

	vertices := g.Vertices()
	if k > len(vertices) {
		return nil, ErrTooManyAgents
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	groups := recursiveBisect(g, vertices, k, cfg)

	sort.Slice(groups, func(i, j int) bool { return groups[i][0] < groups[j][0] })

	return groups, nil
}

// recursiveBisect splits vertices into k groups by repeatedly halving: k==1
// returns vertices as a single group; otherwise klBisect splits vertices
// into two balanced halves and each half is recursively split into its
// share of the remaining groups.
func recursiveBisect(g *core.Graph, vertices []int, k int, cfg Options) [][]int {
	if k == 1 {
		out := append([]int(nil), vertices...)
		sort.Ints(out)

		return [][]int{out}
	}

	a, b := klBisect(g, vertices, cfg.MaxPasses)

	// a is the larger half (ceil), so it takes the larger share of groups;
	// with k <= len(vertices) neither side is then asked for more groups than
	// it has vertices. The clamps below cap each side at its vertex count
	// and at least one group.
	kb := k / 2
	ka := k - kb
	if ka > len(a) {
		ka = len(a)
	}
	if ka < 1 {
		ka = 1
	}
	if kb > len(b) {
		kb = len(b)
	}
	if kb < 1 {
		kb = 1
	}

	var out [][]int
	out = append(out, recursiveBisect(g, a, ka, cfg)...)
	out = append(out, recursiveBisect(g, b, kb, cfg)...)

	return out
}

// klBisect splits vertices into two halves (sizes differing by at most one)
// minimizing total cross-half edge weight via Kernighan-Lin: repeated passes
// of locked-vertex swaps, each pass applying the prefix of swaps with the
// best cumulative gain, until no pass improves on the previous one or
// maxPasses is reached.
func klBisect(g *core.Graph, vertices []int, maxPasses int) (a, b []int) {
	sorted := append([]int(nil), vertices...)
	sort.Ints(sorted)

	if len(sorted) < 2 {
		return sorted, nil
	}

	mid := (len(sorted) + 1) / 2
	a = append([]int(nil), sorted[:mid]...)
	b = append([]int(nil), sorted[mid:]...)

	cost := func(u, v int) float64 {
		w, ok := g.Weight(u, v)
		if !ok {
			return 0
		}

		return w
	}

	for pass := 0; pass < maxPasses; pass++ {
		improved := applyBestSwapPrefix(a, b, cost)
		if !improved {
			break
		}
	}

	return a, b
}

// applyBestSwapPrefix runs one full Kernighan-Lin pass over a/b (in place)
// and reports whether it produced a net-positive-gain improvement.
func applyBestSwapPrefix(a, b []int, cost func(u, v int) float64) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	lockedA := make(map[int]bool)
	lockedB := make(map[int]bool)

	type swap struct {
		ai, bi int // indices into a, b
		gain   float64
	}
	var swaps []swap

	for step := 0; step < n; step++ {
		bestGain := 0.0
		bestAI, bestBI := -1, -1
		found := false

		for ai, av := range a {
			if lockedA[av] {
				continue
			}
			for bi, bv := range b {
				if lockedB[bv] {
					continue
				}

				ga := gain(av, a, b, lockedA, lockedB, cost)
				gb := gain(bv, b, a, lockedB, lockedA, cost)
				g := ga + gb - 2*cost(av, bv)

				if !found || g > bestGain {
					found = true
					bestGain = g
					bestAI, bestBI = ai, bi
				}
			}
		}

		if !found {
			break
		}

		lockedA[a[bestAI]] = true
		lockedB[b[bestBI]] = true
		swaps = append(swaps, swap{ai: bestAI, bi: bestBI, gain: bestGain})
	}

	// Find the prefix of swaps with maximum cumulative gain.
	best := 0
	bestSum := 0.0
	sum := 0.0
	for i, s := range swaps {
		sum += s.gain
		if sum > bestSum {
			bestSum = sum
			best = i + 1
		}
	}

	if best == 0 {
		return false
	}

	for i := 0; i < best; i++ {
		ai, bi := swaps[i].ai, swaps[i].bi
		a[ai], b[bi] = b[bi], a[ai]
	}

	return true
}

// gain computes the cost saved by moving v out of its own group (own) into
// the other group (other): external cost to unlocked members of other minus
// internal cost to unlocked members of own.
func gain(v int, own, other []int, lockedOwn, lockedOther map[int]bool, cost func(u, v int) float64) float64 {
	var external, internal float64
	for _, w := range other {
		if lockedOther[w] {
			continue
		}
		external += cost(v, w)
	}
	for _, w := range own {
		if w == v || lockedOwn[w] {
			continue
		}
		internal += cost(v, w)
	}

	return external - internal
}
