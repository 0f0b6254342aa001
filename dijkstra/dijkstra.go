package dijkstra

import (
	"fmt"
	"math"

	"github.com/velkas/structo/graph"
	"github.com/velkas/structo/heap"
	"github.com/velkas/structo/htdiv"
)

// ShortestPaths computes shortest distances from the source vertex
// (set with Source) to all other vertices in the weighted graph g.
//
// Returns:
//
//   - dist: slice indexed by vertex with the minimum distance from the
//     source (math.MaxInt64 if unreachable).
//   - prev: predecessor slice if WithReturnPath was set (nil otherwise);
//     prev[v] == u means one shortest path to v arrives from u;
//     prev[source] == source; prev[v] == NR for unreachable v.
//   - err:  a sentinel error if inputs are invalid or a negative weight is
//     detected.
//
// Preconditions and validation (in order):
//  1. A source must be set (ErrBadSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. The source must lie in 0..g.Order()−1 (ErrBadSource).
//  4. No edge may carry a negative weight (ErrNegativeWeight, fail fast).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func ShortestPaths(g *graph.Graph, opts ...Option) ([]int64, []int, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate source is provided, graph is non-nil, source is in range.
	if cfg.Source == NR {
		return nil, nil, ErrBadSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if cfg.Source < 0 || cfg.Source >= g.Order() {
		return nil, nil, ErrBadSource
	}

	// 3) Pre-scan all edges to detect negative weights and fail fast.
	order := g.Order()
	for u := 0; u < order; u++ {
		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, nil, err
		}
		for _, e := range edges {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	// 4) Prepare result slices: all vertices unreached until relaxed.
	dist := make([]int64, order)
	prev := make([]int, order)
	for v := 0; v < order; v++ {
		dist[v] = math.MaxInt64
		prev[v] = NR
	}

	// 5) The frontier: an indexed min-heap of vertices keyed by distance.
	//    It starts at capacity 1 and grows on demand, never past V entries.
	frontier, err := heap.New[int64, int](1, heap.CompareOrdered[int64], htdiv.IntKey)
	if err != nil {
		return nil, nil, err
	}
	defer frontier.Free()

	// 6) Seed with the source at distance zero; the source precedes itself.
	dist[cfg.Source] = 0
	prev[cfg.Source] = cfg.Source
	if err = frontier.Push(0, cfg.Source); err != nil {
		return nil, nil, err
	}

	// 7) Main loop: pop the closest frontier vertex and relax its edges.
	for {
		uDist, u, ok := frontier.Pop()
		if !ok {
			break
		}
		edges, nerr := g.Neighbors(u)
		if nerr != nil {
			return nil, nil, nerr
		}
		for _, e := range edges {
			v := e.To
			sum := uDist + e.Weight
			switch {
			case prev[v] == NR:
				// First time v is reached: push it onto the frontier.
				dist[v] = sum
				prev[v] = u
				if perr := frontier.Push(sum, v); perr != nil {
					return nil, nil, perr
				}
			case dist[v] > sum:
				// A strictly cheaper path: v cannot be finalized yet (its
				// final distance would not exceed uDist), so it is still in
				// the frontier and a decrease-key relocates it.
				dist[v] = sum
				prev[v] = u
				if uerr := frontier.Update(sum, v); uerr != nil {
					return nil, nil, uerr
				}
			}
		}
	}

	// 8) Return prev only when path reconstruction was requested.
	if !cfg.ReturnPath {
		return dist, nil, nil
	}

	return dist, prev, nil
}
