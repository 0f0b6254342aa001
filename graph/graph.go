package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and mutation.
var (
	// ErrBadOrder indicates a non-positive vertex order passed to New.
	ErrBadOrder = errors.New("graph: vertex order must be positive")

	// ErrVertexRange indicates a vertex outside 0..order−1.
	ErrVertexRange = errors.New("graph: vertex out of range")
)

// Edge is one adjacency entry: a half-edge from an implicit source vertex.
type Edge struct {
	// To is the destination vertex.
	To int

	// Weight is the cost of the edge.
	Weight int64
}

// Option configures a Graph at construction.
type Option func(*Graph)

// WithDirected sets the directedness for all edges
// (true = one-way, false = recorded in both adjacency lists).
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a weighted adjacency-list graph over vertices 0..order−1.
type Graph struct {
	mu       sync.RWMutex // guards adj and size
	directed bool
	adj      [][]Edge
	size     int // number of AddEdge calls that succeeded
}

// New creates a graph with the given number of vertices and no edges.
// Returns ErrBadOrder if order is not positive.
// Complexity: O(order)
func New(order int, opts ...Option) (*Graph, error) {
	if order <= 0 {
		return nil, ErrBadOrder
	}
	g := &Graph{adj: make([][]Edge, order)}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.adj)
}

// Size returns the number of edges added so far (an undirected edge counts
// once).
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.size
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	return g.directed
}

// AddEdge records an edge u→v with the given weight; on an undirected graph
// the reverse entry v→u is recorded as well. Parallel edges and self-loops
// are permitted. Returns ErrVertexRange if either endpoint is out of range.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return ErrVertexRange
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: weight})
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], Edge{To: u, Weight: weight})
	}
	g.size++

	return nil
}

// Neighbors returns a copy of u's adjacency list. Returns ErrVertexRange if
// u is out of range.
// Complexity: O(deg(u))
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if u < 0 || u >= len(g.adj) {
		return nil, ErrVertexRange
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Degree returns the number of adjacency entries at u. Returns ErrVertexRange
// if u is out of range.
func (g *Graph) Degree(u int) (int, error) {
	if u < 0 || u >= len(g.adj) {
		return 0, ErrVertexRange
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[u]), nil
}
