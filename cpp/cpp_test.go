package cpp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcpostman/engine/core"
	"github.com/arcpostman/engine/cpp"
)

func TestSolve_NilGraph(t *testing.T) {
	_, err := cpp.Solve(nil)
	assert.ErrorIs(t, err, cpp.ErrNilGraph)
}

func TestSolve_EmptyGraph(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex(1)
	_, err := cpp.Solve(g)
	assert.ErrorIs(t, err, cpp.ErrEmptyGraph)
}

func TestSolve_Disconnected(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(3, 4, 1)

	_, err := cpp.Solve(g)
	assert.ErrorIs(t, err, cpp.ErrDisconnected)
}

func TestSolve_StartNotFound(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(1, 2, 1)

	_, err := cpp.Solve(g, cpp.WithStart(99))
	assert.ErrorIs(t, err, cpp.ErrStartNotFound)
}

// Scenario A: already-Eulerian graph (every vertex even degree) — no
// augmentation needed, cost equals the sum of edge weights.
func TestSolve_AlreadyEulerian(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 3, 1)
	_, _ = g.AddEdge(3, 1, 1)

	res, err := cpp.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Cost)
	assert.Empty(t, res.Pairs)
	assert.Equal(t, res.Vertices[0], res.Vertices[len(res.Vertices)-1])

	for _, tr := range res.Edges {
		assert.False(t, tr.Duplicate)
	}
}

// Scenario B: a simple path graph has exactly two odd-degree vertices (its
// endpoints), which get matched and their connecting path duplicated.
func TestSolve_SimplePathTwoOddVertices(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(2, 3, 3)

	res, err := cpp.Solve(g)
	require.NoError(t, err)
	require.Len(t, res.Pairs, 1)
	assert.Equal(t, 1, res.Pairs[0].Lo)
	assert.Equal(t, 3, res.Pairs[0].Hi)
	// Cost = sum of edges (5) + duplicated shortest path 1-3 (via 2, weight 5).
	assert.Equal(t, 10.0, res.Cost)
}

// Every edge of g must appear at least once among res.Edges (spec.md
// coverage invariant).
func TestSolve_CoversEveryEdge(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 3, 1)
	_, _ = g.AddEdge(3, 4, 1)
	_, _ = g.AddEdge(4, 1, 1)
	_, _ = g.AddEdge(1, 3, 2)

	res, err := cpp.Solve(g)
	require.NoError(t, err)

	covered := make(map[string]bool)
	for _, tr := range res.Edges {
		w, ok := g.Weight(tr.From, tr.To)
		require.True(t, ok)
		assert.Equal(t, w, tr.Weight)
		covered[pairKey(tr.From, tr.To)] = true
	}

	for _, e := range g.Edges() {
		assert.True(t, covered[pairKey(e.U, e.V)], "edge %s not covered", e.ID)
	}
}

// Walk must be closed and contiguous: consecutive vertices are always
// adjacent in g, and the walk returns to its start.
func TestSolve_WalkIsClosedAndContiguous(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 3, 1)
	_, _ = g.AddEdge(3, 1, 1)
	_, _ = g.AddEdge(3, 4, 1)
	_, _ = g.AddEdge(4, 1, 1)

	res, err := cpp.Solve(g, cpp.WithStart(1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Vertices[0])
	assert.Equal(t, 1, res.Vertices[len(res.Vertices)-1])

	for i := 1; i < len(res.Vertices); i++ {
		_, ok := g.Weight(res.Vertices[i-1], res.Vertices[i])
		assert.True(t, ok)
	}
}

func pairKey(u, v int) string {
	if u > v {
		u, v = v, u
	}

	return fmt.Sprintf("%d-%d", u, v)
}
