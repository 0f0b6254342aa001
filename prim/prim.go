package prim

import (
	"errors"
	"math"

	"github.com/velkas/structo/graph"
	"github.com/velkas/structo/heap"
	"github.com/velkas/structo/htdiv"
)

// NR marks a vertex that was not reached from the root: its parent entry
// stays NR.
const NR = -1

// Sentinel errors returned by MinimumSpanningTree.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed.
	ErrNilGraph = errors.New("prim: graph is nil")

	// ErrDirectedGraph indicates a directed graph; spanning trees are
	// defined on undirected graphs only.
	ErrDirectedGraph = errors.New("prim: graph must be undirected")

	// ErrBadRoot indicates a root vertex outside the graph's vertex range.
	ErrBadRoot = errors.New("prim: root vertex out of range")
)

// MinimumSpanningTree computes a minimum spanning tree of the component of g
// containing root.
//
// Returns:
//
//   - parent: slice indexed by vertex; parent[v] == u means the tree edge
//     into v arrives from u; parent[root] == root; parent[v] == NR for
//     vertices outside the root's component.
//   - total: the sum of tree edge weights.
//   - err: a sentinel error if inputs are invalid.
//
// Steps:
//  1. Validate: g non-nil (ErrNilGraph), g undirected (ErrDirectedGraph),
//     root in range (ErrBadRoot).
//  2. Key every vertex at +∞, the root at 0; push the root.
//  3. Pop the minimal-key vertex u, admit it to the tree, accumulate its key.
//  4. For every edge u—v with v outside the tree: push v keyed by the edge
//     weight if untouched, or decrease v's key with Update if the edge is
//     lighter than v's current key.
//
// Complexity: O((V + E) log V) time, O(V) memory.
func MinimumSpanningTree(g *graph.Graph, root int) ([]int, int64, error) {
	// 1) Validation.
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if g.Directed() {
		return nil, 0, ErrDirectedGraph
	}
	if root < 0 || root >= g.Order() {
		return nil, 0, ErrBadRoot
	}

	// 2) Per-vertex state: connection key, tree membership, parent.
	order := g.Order()
	key := make([]int64, order)
	parent := make([]int, order)
	inTree := make([]bool, order)
	for v := 0; v < order; v++ {
		key[v] = math.MaxInt64
		parent[v] = NR
	}

	frontier, err := heap.New[int64, int](1, heap.CompareOrdered[int64], htdiv.IntKey)
	if err != nil {
		return nil, 0, err
	}
	defer frontier.Free()

	key[root] = 0
	parent[root] = root
	if err = frontier.Push(0, root); err != nil {
		return nil, 0, err
	}

	// 3) Grow the tree one minimal-key vertex at a time.
	var total int64
	for {
		_, u, ok := frontier.Pop()
		if !ok {
			break
		}
		inTree[u] = true
		total += key[u]

		// 4) Relax the connecting edges of the admitted vertex.
		edges, nerr := g.Neighbors(u)
		if nerr != nil {
			return nil, 0, nerr
		}
		for _, e := range edges {
			v := e.To
			if inTree[v] {
				continue
			}
			switch {
			case parent[v] == NR:
				// First touch: v joins the frontier keyed by this edge.
				key[v] = e.Weight
				parent[v] = u
				if perr := frontier.Push(e.Weight, v); perr != nil {
					return nil, 0, perr
				}
			case key[v] > e.Weight:
				// A lighter connecting edge: decrease v's key in place.
				key[v] = e.Weight
				parent[v] = u
				if uerr := frontier.Update(e.Weight, v); uerr != nil {
					return nil, 0, uerr
				}
			}
		}
	}

	return parent, total, nil
}
