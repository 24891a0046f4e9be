package matching_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcpostman/engine/matching"
)

func euclid(pts map[int][2]float64) matching.WeightFunc {
	return func(u, v int) float64 {
		du := pts[u]
		dv := pts[v]
		dx := du[0] - dv[0]
		dy := du[1] - dv[1]

		return math.Sqrt(dx*dx + dy*dy)
	}
}

func TestSolve_OddCardinality(t *testing.T) {
	_, err := matching.Solve([]int{1, 2, 3}, func(u, v int) float64 { return 1 })
	assert.ErrorIs(t, err, matching.ErrOddCardinality)
}

func TestSolve_Empty(t *testing.T) {
	m, err := matching.Solve(nil, func(u, v int) float64 { return 1 })
	require.NoError(t, err)
	assert.Empty(t, m.Pairs)
	assert.Equal(t, 0.0, m.Weight)
}

func TestSolve_ExactFourPoints(t *testing.T) {
	// Two close pairs on a line: (0,1) and (2,3) should be matched together
	// rather than (0,2)/(1,3) or (0,3)/(1,2).
	pts := map[int][2]float64{
		0: {0, 0},
		1: {1, 0},
		2: {10, 0},
		3: {11, 0},
	}

	m, err := matching.Solve([]int{0, 1, 2, 3}, euclid(pts))
	require.NoError(t, err)
	assert.Equal(t, 2.0, m.Weight)
	assert.ElementsMatch(t, []matching.Pair{
		matching.NewPair(0, 1),
		matching.NewPair(2, 3),
	}, m.Pairs)
}

func TestSolve_ExactCoversEveryVertexExactlyOnce(t *testing.T) {
	pts := map[int][2]float64{
		0: {0, 0}, 1: {5, 1}, 2: {2, 8}, 3: {9, 3}, 4: {4, 4}, 5: {7, 7},
	}
	vertices := []int{0, 1, 2, 3, 4, 5}

	m, err := matching.Solve(vertices, euclid(pts))
	require.NoError(t, err)
	require.Len(t, m.Pairs, 3)

	seen := make(map[int]bool)
	for _, p := range m.Pairs {
		assert.False(t, seen[p.Lo])
		assert.False(t, seen[p.Hi])
		seen[p.Lo] = true
		seen[p.Hi] = true
	}
	assert.Len(t, seen, 6)
}

func TestSolve_AboveThresholdUsesGreedyTwoOpt(t *testing.T) {
	n := 24 // above the default ExactThreshold of 20
	pts := make(map[int][2]float64, n)
	vertices := make([]int, n)
	for i := 0; i < n; i++ {
		vertices[i] = i
		pts[i] = [2]float64{float64(i), 0}
	}

	m, err := matching.Solve(vertices, euclid(pts), matching.WithExactThreshold(20))
	require.NoError(t, err)
	require.Len(t, m.Pairs, n/2)

	seen := make(map[int]bool)
	for _, p := range m.Pairs {
		seen[p.Lo] = true
		seen[p.Hi] = true
	}
	assert.Len(t, seen, n)
}

func TestSolve_WithMaxTwoOptIterationsZeroStillValid(t *testing.T) {
	pts := map[int][2]float64{0: {0, 0}, 1: {1, 0}, 2: {2, 0}, 3: {3, 0}}
	vertices := []int{0, 1, 2, 3}

	m, err := matching.Solve(vertices, euclid(pts),
		matching.WithExactThreshold(0), matching.WithMaxTwoOptIterations(0))
	require.NoError(t, err)
	assert.Len(t, m.Pairs, 2)
}
