// Package dijkstra_test contains unit tests for the indexed-heap Dijkstra
// implementation: validation order, small undirected and directed graphs,
// path reconstruction, negative-weight rejection, and unreachable vertices.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/velkas/structo/dijkstra"
	"github.com/velkas/structo/graph"
)

// ------------------------------------------------------------------------
// 1. Validation tests.
// ------------------------------------------------------------------------

func TestShortestPaths_NoSource(t *testing.T) {
	// When no source is provided, ErrBadSource has priority over ErrNilGraph.
	_, _, err := dijkstra.ShortestPaths(nil)
	if !errors.Is(err, dijkstra.ErrBadSource) {
		t.Fatalf("expected ErrBadSource, got %v", err)
	}
}

func TestShortestPaths_NilGraphWithSource(t *testing.T) {
	_, _, err := dijkstra.ShortestPaths(nil, dijkstra.Source(0))
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPaths_SourceOutOfRange(t *testing.T) {
	g, _ := graph.New(3)
	_, _, err := dijkstra.ShortestPaths(g, dijkstra.Source(3))
	if !errors.Is(err, dijkstra.ErrBadSource) {
		t.Fatalf("expected ErrBadSource, got %v", err)
	}
}

func TestShortestPaths_NegativeWeightDetectedEarly(t *testing.T) {
	g, _ := graph.New(2)
	g.AddEdge(0, 1, -5)
	_, _, err := dijkstra.ShortestPaths(g, dijkstra.Source(0))
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("expected ErrNegativeWeight, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic functionality.
// ------------------------------------------------------------------------

func TestShortestPaths_SimpleTriangle_NoPath(t *testing.T) {
	// Triangle: 0—1(1), 1—2(2), 0—2(5), undirected.
	g, _ := graph.New(3)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 2)
	g.AddEdge(0, 2, 5)

	dist, prev, err := dijkstra.ShortestPaths(g, dijkstra.Source(0))
	if err != nil {
		t.Fatal(err)
	}

	// Distance from 0 to 2 should be 3 via 0→1→2.
	if got, want := dist[2], int64(3); got != want {
		t.Errorf("dist[2] = %d; want %d", got, want)
	}
	// prev should be nil when ReturnPath is not requested.
	if prev != nil {
		t.Errorf("expected nil predecessor slice, got %v", prev)
	}
}

func TestShortestPaths_SimpleTriangle_WithPath(t *testing.T) {
	g, _ := graph.New(3)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 2)
	g.AddEdge(0, 2, 5)

	dist, prev, err := dijkstra.ShortestPaths(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	if dist[0] != 0 || dist[1] != 1 || dist[2] != 3 {
		t.Errorf("unexpected distances: %v", dist)
	}
	// Predecessor chain: 1←0, 2←1; the source precedes itself.
	if prev[0] != 0 || prev[1] != 0 || prev[2] != 1 {
		t.Errorf("unexpected predecessors: %v", prev)
	}
}

func TestShortestPaths_ChainWithBranch(t *testing.T) {
	// 0—1—2—3—4
	//       |
	//       5—6
	g, _ := graph.New(7)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddEdge(3, 4, 1)
	g.AddEdge(3, 5, 1)
	g.AddEdge(5, 6, 1)

	dist, prev, err := dijkstra.ShortestPaths(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	want := []int64{0, 1, 2, 3, 4, 4, 5}
	for v, w := range want {
		if dist[v] != w {
			t.Errorf("dist[%d] = %d; want %d", v, dist[v], w)
		}
	}
	if prev[1] != 0 || prev[2] != 1 || prev[3] != 2 || prev[5] != 3 {
		t.Errorf("unexpected predecessors: %v", prev)
	}
}

// ------------------------------------------------------------------------
// 3. Directed graphs.
// ------------------------------------------------------------------------

func TestShortestPaths_DirectedGraph(t *testing.T) {
	// 0→1(2), 0→2(1), 2→1(1), 1→3(3), 2→3(5)
	g, _ := graph.New(4, graph.WithDirected(true))
	g.AddEdge(0, 1, 2)
	g.AddEdge(0, 2, 1)
	g.AddEdge(2, 1, 1)
	g.AddEdge(1, 3, 3)
	g.AddEdge(2, 3, 5)

	dist, _, err := dijkstra.ShortestPaths(g, dijkstra.Source(0))
	if err != nil {
		t.Fatal(err)
	}

	// dist[1]=2 (0→1 and 0→2→1 tie), dist[2]=1, dist[3]=5 via 1.
	if dist[1] != 2 {
		t.Errorf("dist[1] = %d; want 2", dist[1])
	}
	if dist[2] != 1 {
		t.Errorf("dist[2] = %d; want 1", dist[2])
	}
	if dist[3] != 5 {
		t.Errorf("dist[3] = %d; want 5", dist[3])
	}
}

func TestShortestPaths_DecreaseKeyReroutesPath(t *testing.T) {
	// 0→2 is reached directly at cost 10, then improved through 1 to 3:
	// the frontier entry for 2 must be relocated, not duplicated.
	g, _ := graph.New(3, graph.WithDirected(true))
	g.AddEdge(0, 2, 10)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 2)

	dist, prev, err := dijkstra.ShortestPaths(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	if dist[2] != 3 {
		t.Errorf("dist[2] = %d; want 3", dist[2])
	}
	if prev[2] != 1 {
		t.Errorf("prev[2] = %d; want 1", prev[2])
	}
}

// ------------------------------------------------------------------------
// 4. Edge cases.
// ------------------------------------------------------------------------

func TestShortestPaths_SingleVertex(t *testing.T) {
	g, _ := graph.New(1)

	dist, prev, err := dijkstra.ShortestPaths(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if dist[0] != 0 {
		t.Errorf("dist[0] = %d; want 0", dist[0])
	}
	if prev[0] != 0 {
		t.Errorf("prev[0] = %d; want 0 (source precedes itself)", prev[0])
	}
}

func TestShortestPaths_UnreachableVertices(t *testing.T) {
	// Two components: {0,1} and {2}.
	g, _ := graph.New(3)
	g.AddEdge(0, 1, 4)

	dist, prev, err := dijkstra.ShortestPaths(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if dist[2] != math.MaxInt64 {
		t.Errorf("dist[2] = %d; want MaxInt64 (unreachable)", dist[2])
	}
	if prev[2] != dijkstra.NR {
		t.Errorf("prev[2] = %d; want NR", prev[2])
	}
}
