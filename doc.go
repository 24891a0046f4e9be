// Package engine is the root of an arc routing engine: a Chinese Postman
// solver and multi-agent dispatcher over an undirected weighted graph.
//
//   - core        graph store: Graph (simple, min-weight dedup) and
//                 Multigraph (vertex-multiset, used by eulerian)
//   - components  BFS-based connectivity and odd-degree-vertex queries
//   - dijkstra    single-source shortest paths with path reconstruction
//   - matching    minimum-weight perfect matching (exact bitmask DP or
//                 greedy+2-opt, by input size)
//   - eulerian    Hierholzer's algorithm over a core.Multigraph
//   - cpp         Chinese Postman solver: dijkstra -> matching -> augment
//                 -> eulerian
//   - partition   Kernighan-Lin bisection and greedy nearest-to-frontier
//                 vertex assignment
//   - dispatch    multi-agent dispatcher: partition -> per-agent subgraph
//                 -> cpp
//   - builder     deterministic synthetic graph generators for tests
//   - matrixconv  dense-matrix <-> core.Graph conversion (in-memory only)
//
// This package holds no exported symbols of its own; it exists for the
// module-level doc comment and as the root of the module path.
package engine
