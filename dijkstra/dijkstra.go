// Package dijkstra implements single-source Dijkstra shortest paths over a
// core.Graph with non-negative edge weights.
//
// Adapted from the teacher's dijkstra package: same lazy decrease-key binary
// heap, the same upfront edge pre-scan that fails fast on negative weights,
// and the same functional-options surface — re-targeted at int vertex IDs
// and float64 weights (core.Graph, not the teacher's string-keyed,
// int64-weighted core.Graph).
//
// Complexity: O((V+E) log V) time, O(V+E) space.
package dijkstra

import (
	"container/heap"
	"errors"
	"math"

	"github.com/arcpostman/engine/core"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates the source vertex is absent from the graph.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")

	// ErrNegativeWeight indicates a negative edge weight was found during the
	// upfront pre-scan. core.Graph already rejects non-positive weights on
	// insertion, so this only fires against a hand-built or mutated graph
	// that bypassed AddEdge's validation.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures a Dijkstra run.
type Options struct {
	// MaxDistance caps exploration: vertices whose shortest distance would
	// exceed MaxDistance are left unreached. Default math.Inf(1) (no cap).
	MaxDistance float64
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// WithMaxDistance bounds exploration to vertices within dist of the source.
func WithMaxDistance(dist float64) Option {
	return func(o *Options) { o.MaxDistance = dist }
}

func defaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// Result holds the outcome of a single-source Dijkstra run.
type Result struct {
	Source int
	Dist   map[int]float64
	Prev   map[int]int
}

// Path reconstructs the shortest path from Source to dest by walking Prev
// backwards. ok is false if dest was not reached.
func (r *Result) Path(dest int) (path []int, ok bool) {
	if _, reached := r.Dist[dest]; !reached {
		return nil, false
	}

	var rev []int
	cur := dest
	for {
		rev = append(rev, cur)
		if cur == r.Source {
			break
		}
		prev, has := r.Prev[cur]
		if !has {
			// Only the source has no predecessor; anything else missing one
			// here would mean Dist/Prev disagree, which Run never produces.
			break
		}
		cur = prev
	}

	path = make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}

	return path, true
}

// heapEntry is a candidate (distance, vertex) pair in the priority queue.
type heapEntry struct {
	dist float64
	v    int
}

type priorityQueue []heapEntry

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].v < pq[j].v // deterministic tie-break
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(heapEntry))
}
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	entry := old[n-1]
	*pq = old[:n-1]

	return entry
}

// Run computes shortest distances (and predecessors) from source to every
// reachable vertex in g.
func Run(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, ErrNegativeWeight
		}
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dist := map[int]float64{source: 0}
	prev := make(map[int]int)
	visited := make(map[int]bool)

	pq := &priorityQueue{{dist: 0, v: source}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(heapEntry)
		u := top.v
		if visited[u] {
			continue
		}
		if top.dist != dist[u] {
			continue // stale entry from a since-improved relaxation
		}
		visited[u] = true

		edges, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		for _, e := range edges {
			v := e.Other(u)
			nd := dist[u] + e.Weight
			if nd > cfg.MaxDistance {
				continue
			}
			if old, ok := dist[v]; !ok || nd < old {
				dist[v] = nd
				prev[v] = u
				heap.Push(pq, heapEntry{dist: nd, v: v})
			}
		}
	}

	return &Result{Source: source, Dist: dist, Prev: prev}, nil
}
