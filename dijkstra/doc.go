// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// graphs with non-negative edge weights, backed by the indexed min-heap.
//
// Overview:
//
//   - ShortestPaths computes the minimum-cost path from a single source
//     vertex to all reachable vertices of a graph.Graph.
//   - The frontier is a heap.Heap[int64, int] used as a true decrease-key
//     priority queue: a vertex reached for the first time is pushed, a vertex
//     reached over a cheaper path is relocated with Update through the heap's
//     embedded index. The heap therefore never holds more than V entries and
//     no stale entries are ever popped.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is pushed and popped at most once: V pushes, V pops.
//   - Each edge relaxation performs at most one Update: up to E updates.
//   - Each heap operation costs O(log V).
//   - Space: O(V)
//   - O(V) for distance and predecessor slices and the heap.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrBadSource       if no source was set or it is out of range.
//	– ErrNegativeWeight  if a negative edge weight is detected by the
//	                     upfront O(V + E) scan.
//
// Results:
//
//   - dist[v] is the minimum distance from the source to v, or
//     math.MaxInt64 if v is unreachable.
//   - prev[v] (only with WithReturnPath) is the predecessor of v on one
//     shortest path, the source for itself, or NR for unreachable vertices.
//
// The input graph must not be mutated while ShortestPaths runs.
package dijkstra
