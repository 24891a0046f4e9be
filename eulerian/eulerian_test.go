package eulerian_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcpostman/engine/core"
	"github.com/arcpostman/engine/eulerian"
)

func TestCircuit_Triangle(t *testing.T) {
	mg := newMG(map[[2]int]int{
		{1, 2}: 2,
		{2, 3}: 2,
		{1, 3}: 2,
	})

	circuit, err := eulerian.Circuit(mg, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, circuit[0])
	assert.Equal(t, 1, circuit[len(circuit)-1])
	assert.Len(t, circuit, 7) // 6 edges -> 7 vertices in the closed walk
}

func TestCircuit_OddDegreeRejected(t *testing.T) {
	mg := newMG(map[[2]int]int{
		{1, 2}: 1,
		{2, 3}: 1,
		{1, 3}: 2, // vertices 1 and 3 end up with degree 3
	})

	_, err := eulerian.Circuit(mg, 1)
	assert.ErrorIs(t, err, eulerian.ErrNotEulerian)
}

func TestCircuit_DisconnectedRejected(t *testing.T) {
	mg := newMG(map[[2]int]int{
		{1, 2}: 2,
		{3, 4}: 2,
	})

	_, err := eulerian.Circuit(mg, 1)
	assert.ErrorIs(t, err, eulerian.ErrDisconnected)
}

func TestCircuit_StartNotFound(t *testing.T) {
	mg := newMG(map[[2]int]int{
		{1, 2}: 2,
	})

	_, err := eulerian.Circuit(mg, 99)
	assert.ErrorIs(t, err, eulerian.ErrStartNotFound)
}

func newMG(pairs map[[2]int]int) *core.Multigraph {
	mg := core.NewMultigraph()
	for edge, count := range pairs {
		for i := 0; i < count; i++ {
			mg.AddPair(edge[0], edge[1])
		}
	}

	return mg
}
