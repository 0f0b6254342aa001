// Package heap defines the Heap configuration surface: the priority
// comparator, functional options, and sentinel errors.
package heap

import (
	"cmp"
	"errors"
	"math"
)

// Sentinel errors for heap construction and operations.
var (
	// ErrBadCount indicates a non-positive initial count, or one exceeding
	// the configured ceiling, passed to New.
	ErrBadCount = errors.New("heap: initial count must be in (0, count maximum]")

	// ErrNilCompare indicates that New was called with a nil comparator.
	ErrNilCompare = errors.New("heap: priority comparator is nil")

	// ErrNilKeyFunc indicates that New was called with a nil element
	// byte view.
	ErrNilKeyFunc = errors.New("heap: element byte view is nil")

	// ErrDuplicateElement indicates a Push of an element that is already
	// present in the heap.
	ErrDuplicateElement = errors.New("heap: element already present")

	// ErrElementNotFound indicates an Update of an element that is not
	// present in the heap.
	ErrElementNotFound = errors.New("heap: element not found")

	// ErrCountMax indicates a Push into a full heap whose capacity has
	// already reached the count maximum.
	ErrCountMax = errors.New("heap: count maximum reached")

	// ErrFreed indicates a mutation of a heap after Free.
	ErrFreed = errors.New("heap: heap already freed")

	// ErrBadCountMax indicates a WithCountMax value outside the range the
	// platform supports (reported via panic, as option constructors validate
	// eagerly).
	ErrBadCountMax = errors.New("heap: count maximum out of range")
)

// countMaxLimit is the largest ceiling for which the right-child index
// 2*i + 2 of any occupied slot stays representable.
const countMaxLimit = (math.MaxInt - 2) / 2

// defaultCountMax mirrors a 32-bit slot index space (2^32 − 2), capped by
// what the platform's int can address.
var defaultCountMax = func() int {
	const want = uint64(1)<<32 - 2
	if want > uint64(countMaxLimit) {
		return countMaxLimit
	}

	return int(want)
}()

// CompareFunc is a three-way priority comparator: negative if a orders
// before b, zero if they order equally, positive otherwise.
type CompareFunc[P any] func(a, b P) int

// CompareOrdered is a ready-made CompareFunc for ordered basic types.
func CompareOrdered[P cmp.Ordered](a, b P) int {
	return cmp.Compare(a, b)
}

// Option configures a Heap before it is populated.
type Option[P any, E comparable] func(*Heap[P, E])

// WithCountMax sets the capacity ceiling. The ceiling bounds how far growth
// doubling can go and keeps child-index arithmetic overflow-free; values
// outside (0, (MaxInt−2)/2] panic with ErrBadCountMax.
// Default is 2^32 − 2, capped by the platform limit.
func WithCountMax[P any, E comparable](n int) Option[P, E] {
	return func(h *Heap[P, E]) {
		if n <= 0 || n > countMaxLimit {
			panic(ErrBadCountMax.Error())
		}
		h.countMax = n
	}
}

// WithFreeElement registers an element finalizer, invoked once per remaining
// element during Free and never during normal operation.
func WithFreeElement[P any, E comparable](fn func(E)) Option[P, E] {
	return func(h *Heap[P, E]) {
		h.freeElt = fn
	}
}

// WithLoadFactor forwards a load factor bound num/den to the owned index.
// Both must be positive; invalid values panic during New with the index's
// ErrBadLoadFactor. Default is the index default, 1/1.
func WithLoadFactor[P any, E comparable](num, den int) Option[P, E] {
	return func(h *Heap[P, E]) {
		h.alphaNum = num
		h.alphaDen = den
	}
}
