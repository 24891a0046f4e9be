package matrixconv

import (
	"math"

	"github.com/arcpostman/engine/core"
)

// FromDenseMatrix builds a core.Graph from a dense adjacency matrix: mat[i][j]
// is the weight of the edge between vertices[i] and vertices[j], with 0
// meaning no edge. Only the upper triangle is consulted (the graph is
// undirected; mat is expected to be symmetric but asymmetry is not checked,
// matching the teacher's "ingest what's given" adjacency-matrix stance).
//
// Contract: mat must be square and len(vertices) must equal its dimension.
// Off-diagonal entries must be finite and non-negative; 0 means "no edge"
// rather than "zero-weight edge", since core.Graph requires positive
// weights.
func FromDenseMatrix(mat [][]float64, vertices []int) (*core.Graph, error) {
	n := len(mat)
	for _, row := range mat {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}
	if len(vertices) != n {
		return nil, ErrDimensionMismatch
	}

	g := core.NewGraph()
	for _, v := range vertices {
		g.AddVertex(v)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := mat[i][j]
			if w == 0 {
				continue
			}
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return nil, ErrInvalidWeight
			}
			if _, err := g.AddEdge(vertices[i], vertices[j], w); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// ToDenseMatrix exports g as a dense adjacency matrix: the returned matrix's
// [i][j] entry is the weight between the i-th and j-th entries of the
// returned vertex slice (sorted ascending), or 0 if no edge exists.
func ToDenseMatrix(g *core.Graph) (mat [][]float64, vertices []int, err error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	vertices = g.Vertices()
	n := len(vertices)
	index := make(map[int]int, n)
	for i, v := range vertices {
		index[v] = i
	}

	mat = make([][]float64, n)
	for i := range mat {
		mat[i] = make([]float64, n)
	}

	for _, e := range g.Edges() {
		i, j := index[e.U], index[e.V]
		mat[i][j] = e.Weight
		mat[j][i] = e.Weight
	}

	return mat, vertices, nil
}
