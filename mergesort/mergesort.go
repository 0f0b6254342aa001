package mergesort

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// Sort orders s in place under the comparator cmp, splitting both the
// recursive sorts and the merges across goroutines above the configured
// base cutoffs. Allocates one auxiliary buffer of len(s).
//
// Complexity: O(n log n) work, O(n) space.
func Sort[T any](s []T, cmp CompareFunc[T], opts ...Option) error {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cmp == nil {
		return ErrNilCompare
	}
	if len(s) <= 1 {
		return nil
	}

	buf := make([]T, len(s))
	msort(s, buf, cmp, cfg)

	return nil
}

// msort sorts s using buf as merge scratch. Both halves of a split sort
// concurrently; the halves are then merged through buf and copied back.
func msort[T any](s, buf []T, cmp CompareFunc[T], cfg Options) {
	if len(s) <= cfg.SortBase {
		insertionSort(s, cmp)

		return
	}

	mid := len(s) / 2
	var g errgroup.Group
	g.Go(func() error {
		msort(s[:mid], buf[:mid], cmp, cfg)

		return nil
	})
	msort(s[mid:], buf[mid:], cmp, cfg)
	_ = g.Wait()

	merge(s[:mid], s[mid:], buf, cmp, cfg.MergeBase)
	copy(s, buf)
}

// merge merges the sorted runs a and b into out, len(out) == len(a)+len(b).
// Above the base cutoff the larger run is split at its middle element, the
// split point in the other run is found by binary search, and the two
// sub-merges run concurrently.
func merge[T any](a, b, out []T, cmp CompareFunc[T], base int) {
	if len(a) < len(b) {
		a, b = b, a
	}
	// The split point below must leave at least one element on each side of
	// the larger run, so two-element merges always run sequentially.
	if len(a)+len(b) <= base || len(a) < 2 {
		seqMerge(a, b, out, cmp)

		return
	}

	ma := len(a) / 2
	mb := sort.Search(len(b), func(i int) bool {
		return cmp(b[i], a[ma]) >= 0
	})

	var g errgroup.Group
	g.Go(func() error {
		merge(a[:ma], b[:mb], out[:ma+mb], cmp, base)

		return nil
	})
	merge(a[ma:], b[mb:], out[ma+mb:], cmp, base)
	_ = g.Wait()
}

// seqMerge is the sequential two-run merge.
func seqMerge[T any](a, b, out []T, cmp CompareFunc[T]) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if cmp(b[j], a[i]) < 0 {
			out[k] = b[j]
			j++
		} else {
			out[k] = a[i]
			i++
		}
		k++
	}
	for i < len(a) {
		out[k] = a[i]
		i++
		k++
	}
	for j < len(b) {
		out[k] = b[j]
		j++
		k++
	}
}

// insertionSort is the sequential base case.
func insertionSort[T any](s []T, cmp CompareFunc[T]) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && cmp(s[j], s[j-1]) < 0; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
