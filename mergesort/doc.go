// Package mergesort provides a parallel merge sort with tunable base-case
// cutoffs.
//
// Overview:
//
//   - Sort orders a slice by a caller-supplied three-way comparator. Ranges
//     at or below the sort base are insertion-sorted in place; larger ranges
//     are split in half and the halves sort concurrently.
//   - Merging is parallel as well: a merge above the merge base splits the
//     larger run at its middle element, binary-searches the split point in
//     the smaller run, and merges the two halves concurrently.
//   - The two cutoffs trade scheduling overhead against parallelism. Low
//     bases spawn goroutines for tiny ranges; high bases serialize the work.
//     The defaults suit large slices; tune with WithSortBase/WithMergeBase.
//
// Ordering of elements that compare equal is NOT guaranteed to be preserved
// (the parallel merge splits ties between runs arbitrarily).
//
// Complexity:
//
//   - Work:  O(n log n) comparisons.
//   - Span:  O(log³ n) with both cutoffs at O(1); in practice bounded by the
//     base cutoffs.
//   - Space: O(n) auxiliary buffer plus O(log n) goroutine stacks.
//
// Errors (sentinel):
//
//	– ErrNilCompare  if Sort is called without a comparator.
//	– ErrBadBase     if a base cutoff option receives a non-positive value
//	                 (reported via panic, as option constructors validate
//	                 eagerly).
package mergesort
