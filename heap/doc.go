// Package heap provides a generic, array-backed binary min-heap with an
// embedded hash index for O(1)-expected membership lookup and true
// decrease-key updates.
//
// Overview:
//
//   - A Heap stores (priority, element) pairs in two parallel arrays indexed
//     identically: slot i of the priority array always corresponds to slot i
//     of the element array. Priorities are ordered by a caller-supplied
//     comparator; elements are a comparable type identified by the byte view
//     a caller-supplied htdiv.KeyFunc returns.
//   - The heap owns an htdiv.Table mapping each element to its current array
//     slot. Every positional move — the half-swaps of a sift as well as the
//     root/tail swap of a Pop — repoints the index for the slots involved, so
//     Search and Update resolve an element's slot in O(1) expected time
//     instead of an O(n) scan.
//   - Capacity grows by doubling up to a configurable ceiling. Growth
//     reallocates the arrays in place: slot indices are stable across growth,
//     so the index needs no repointing there.
//
// Invariants between operations:
//
//  1. Min-heap order: for every non-root slot i, the priority at parent(i)
//     is not greater than the priority at i under the comparator.
//  2. Index consistency: the index maps the element at every occupied slot i
//     to exactly i, and holds no mapping for any absent element.
//  3. Element uniqueness: no two simultaneously present elements are equal;
//     Push reports a duplicate with ErrDuplicateElement.
//  4. 0 <= Len() <= Cap() <= ceiling, where the ceiling keeps child-index
//     arithmetic overflow-free.
//
// Complexity:
//
//   - Push, Pop, Update: O(log n) amortized (Push amortizes growth).
//   - Search:            O(1) expected under uniform hashing.
//   - Free:              O(n).
//
// Error handling (sentinel errors):
//
//   - ErrBadCount:        New called with a non-positive initial count or one
//     exceeding the ceiling.
//   - ErrNilCompare:      New called without a comparator.
//   - ErrNilKeyFunc:      New called without an element byte view.
//   - ErrDuplicateElement: Push of an element already present.
//   - ErrElementNotFound: Update of an element not present.
//   - ErrCountMax:        Push into a full heap whose capacity already
//     reached the ceiling.
//   - ErrFreed:           mutation of a heap after Free.
//   - ErrBadCountMax:     (via panic) WithCountMax outside (0, ceiling limit].
//
// Lifecycle:
//
//   - New initializes the arrays and the owned index together. Free runs the
//     optional element finalizer once per remaining element, then releases
//     the arrays and the index; a freed heap rejects mutation with ErrFreed,
//     and repeated Free is a no-op.
//
// A Heap is not safe for concurrent use; callers sharing one across
// goroutines must serialize access externally.
package heap
