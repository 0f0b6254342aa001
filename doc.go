// Package structo is a collection of generic, reusable in-memory data
// structures and numeric utilities for Go.
//
// 🚀 What is structo?
//
//	A small, focused library that brings together:
//		• heap:        array-backed min-heap with an embedded hash index for
//		               O(1)-expected membership lookup and true decrease-key
//		• htdiv:       chained hash table with division-method slot selection
//		               over a prime-sized table and a bounded load factor
//		• dlist:       circular doubly linked list used as bucket-chain storage
//		• graph:       compact weighted adjacency lists over integer vertices
//		• dijkstra:    single-source shortest paths on the indexed heap
//		• prim:        minimum spanning trees on the indexed heap
//		• mergesort:   parallel merge sort with tunable base-case cutoffs
//		• modarith:    overflow-safe modular arithmetic helpers
//		• millerrabin: randomized Miller–Rabin primality testing
//
// ✨ Why choose structo?
//
//   - Real decrease-key: heap.Update relocates an element in O(log n) because the
//     embedded index always knows where the element lives, no duplicate pushes.
//   - Explicit contracts: comparators, key-byte views and optional finalizers are
//     ordinary typed callbacks on generic containers, resolved at compile time.
//   - Checked errors: duplicate pushes, absent elements and capacity ceilings are
//     sentinel errors, never silent corruption.
//   - Pure Go: no cgo; the only runtime dependencies are xxhash for key digests
//     and x/sync for the parallel sort.
//
// The heap, the hash table and the list form one coordinated stack: the table
// chains collisions through dlist nodes, and the heap owns a table that maps
// each element's byte pattern to its current array slot and is repointed on
// every positional swap.
//
// Quick taste:
//
//	h, _ := heap.New[int64, uint32](4, heap.CompareOrdered[int64], htdiv.Uint32Key)
//	_ = h.Push(3, 30)
//	_ = h.Push(1, 10)
//	_ = h.Push(2, 20)
//	pty, elt, _ := h.Pop() // pty == 1, elt == 10
//
// Dive into the per-package documentation for full contracts, complexity notes
// and examples.
package structo
