// Package mergesort defines the Sort configuration surface: the comparator,
// functional options, and sentinel errors.
package mergesort

import "errors"

// Sentinel errors for sort configuration.
var (
	// ErrNilCompare indicates that Sort was called with a nil comparator.
	ErrNilCompare = errors.New("mergesort: comparator is nil")

	// ErrBadBase indicates a non-positive base cutoff passed to WithSortBase
	// or WithMergeBase.
	ErrBadBase = errors.New("mergesort: base cutoff must be positive")
)

// Default base-case cutoffs: ranges at or below SortBase are insertion-sorted
// sequentially; merges at or below MergeBase run sequentially.
const (
	DefaultSortBase  = 1 << 12
	DefaultMergeBase = 1 << 13
)

// CompareFunc is a three-way element comparator: negative if a orders before
// b, zero if they order equally, positive otherwise.
type CompareFunc[T any] func(a, b T) int

// Options configures the behavior of Sort.
//
// SortBase  – ranges of at most this many elements are insertion-sorted.
// MergeBase – merges of at most this many elements run sequentially.
type Options struct {
	SortBase  int
	MergeBase int
}

// Option represents a functional option for configuring Sort.
type Option func(*Options)

// WithSortBase sets the sequential-sort cutoff. Must be positive; invalid
// values panic with ErrBadBase.
func WithSortBase(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadBase.Error())
		}
		o.SortBase = n
	}
}

// WithMergeBase sets the sequential-merge cutoff. Must be positive; invalid
// values panic with ErrBadBase.
func WithMergeBase(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadBase.Error())
		}
		o.MergeBase = n
	}
}

// DefaultOptions returns an Options struct initialized with the default
// cutoffs.
func DefaultOptions() Options {
	return Options{
		SortBase:  DefaultSortBase,
		MergeBase: DefaultMergeBase,
	}
}
