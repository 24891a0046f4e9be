package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcpostman/engine/core"
	"github.com/arcpostman/engine/partition"
)

func lineGraph(n int) *core.Graph {
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(i, i+1, 1)
	}

	return g
}

func TestBisect_InvalidAgentCount(t *testing.T) {
	g := lineGraph(4)
	_, err := partition.Bisect(g, 0)
	assert.ErrorIs(t, err, partition.ErrInvalidAgentCount)
}

func TestBisect_TooManyAgents(t *testing.T) {
	g := lineGraph(4)
	_, err := partition.Bisect(g, 10)
	assert.ErrorIs(t, err, partition.ErrTooManyAgents)
}

func TestBisect_CoversEveryVertexExactlyOnce(t *testing.T) {
	g := lineGraph(8)
	groups, err := partition.Bisect(g, 3)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	seen := make(map[int]bool)
	for _, group := range groups {
		for _, v := range group {
			assert.False(t, seen[v], "vertex %d assigned twice", v)
			seen[v] = true
		}
	}
	assert.Len(t, seen, 8) // vertices 1..8 in an 8-vertex line graph
}

func TestAssignGreedy_CoversEveryNonDepotVertexExactlyOnce(t *testing.T) {
	g := lineGraph(10)
	depot := 1
	groups, err := partition.AssignGreedy(g, depot, 3)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	seen := make(map[int]int)
	for _, group := range groups {
		for _, v := range group {
			seen[v]++
		}
	}
	for v := 1; v <= 9; v++ {
		if v == depot {
			continue
		}
		assert.Equal(t, 1, seen[v], "vertex %d should be assigned exactly once", v)
	}
}

// Every agent starts at depot (spec.md §4.5(b)), so depot belongs to every
// partition's vertex set — not just one agent's.
func TestAssignGreedy_DepotInEveryGroup(t *testing.T) {
	g := lineGraph(6)
	depot := 3
	groups, err := partition.AssignGreedy(g, depot, 2)
	require.NoError(t, err)

	for _, group := range groups {
		found := false
		for _, v := range group {
			if v == depot {
				found = true
			}
		}
		assert.True(t, found, "depot must be present in every agent's partition")
	}
}

func TestBucketEdges_AssignsEveryEdge(t *testing.T) {
	g := lineGraph(6)
	groups, err := partition.Bisect(g, 2)
	require.NoError(t, err)

	buckets, err := partition.BucketEdges(g, groups)
	require.NoError(t, err)
	assert.Len(t, buckets, g.EdgeCount())

	for _, idx := range buckets {
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(groups))
	}
}
