// Package prim implements Prim's minimum-spanning-tree algorithm on
// undirected weighted graphs, backed by the indexed min-heap.
//
// Overview:
//
//   - MinimumSpanningTree grows a tree outward from a root vertex. Each
//     non-tree vertex is keyed by the lightest edge connecting it to the
//     tree; the next vertex to join is the one with the minimal key.
//   - The frontier is a heap.Heap[int64, int] used as a true decrease-key
//     priority queue: a vertex is pushed when first touched and relocated
//     with Update whenever a lighter connecting edge appears. The heap holds
//     at most V entries and no stale entries are ever popped.
//   - Vertices unreachable from the root keep parent NR and contribute
//     nothing to the total weight: the result spans the root's component.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph is nil.
//	– ErrDirectedGraph  if the graph was built with directed edges.
//	– ErrBadRoot        if the root is outside the graph's vertex range.
//
// The input graph must not be mutated while MinimumSpanningTree runs.
package prim
