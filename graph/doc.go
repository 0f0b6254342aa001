// Package graph provides a compact weighted adjacency-list graph over
// integer vertices 0..n−1.
//
// Overview:
//
//   - A Graph is constructed with a fixed vertex order; edges carry int64
//     weights. The default Graph is undirected: AddEdge(u, v, w) records the
//     edge in both adjacency lists. WithDirected(true) switches to one-way
//     edges.
//   - Integer vertices keep the representation dense (slices, not maps) and
//     make vertices directly usable as heap elements in the algorithm
//     packages (dijkstra, prim).
//   - Mutation is guarded by an RWMutex as a construction convenience; the
//     algorithm packages assume the graph is immutable while they run.
//
// Errors (sentinel):
//
//	– ErrBadOrder     if New is called with a non-positive vertex order.
//	– ErrVertexRange  if an operation references a vertex outside 0..n−1.
//
// Complexity: AddEdge O(1); Neighbors O(deg(u)) for the copy it returns.
package graph
