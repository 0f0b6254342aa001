// Package dijkstra defines the configuration options and sentinel errors for
// the shortest-path computation.
package dijkstra

import "errors"

// NR marks a vertex that was not reached: its prev entry stays NR and its
// dist entry stays math.MaxInt64.
const NR = -1

// Sentinel errors returned by ShortestPaths.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadSource indicates that no source vertex was set, or that the set
	// source is outside the graph's vertex range.
	ErrBadSource = errors.New("dijkstra: source vertex missing or out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Options configures the behavior of ShortestPaths.
//
// Source     – starting vertex (must be set and within 0..order−1).
// ReturnPath – if true, return the predecessor slice; otherwise prev is nil.
type Options struct {
	Source     int
	ReturnPath bool
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// Source sets the starting vertex. Must be called.
func Source(v int) Option {
	return func(o *Options) { o.Source = v }
}

// WithReturnPath enables generation of the predecessor slice in the result.
// If false (default), the predecessor slice is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// DefaultOptions returns an Options struct initialized with defaults: no
// source set (NR, rejected by validation) and no predecessor slice returned.
func DefaultOptions() Options {
	return Options{Source: NR}
}
