// Package htdiv defines the Table configuration surface: the KeyFunc byte
// view, functional options, sentinel errors, and ready-made key views for
// common key types.
//
// Errors (sentinel):
//
//	– ErrNilKeyFunc     if New is called without a key-byte view.
//	– ErrBadLoadFactor  if WithLoadFactor receives a non-positive numerator
//	                    or denominator (reported via panic, as option
//	                    constructors validate eagerly).
//	– ErrBadMinCount    if WithMinCount receives a non-positive count
//	                    (reported via panic).
//	– ErrTableFreed     if a freed table is mutated (reported via panic).
package htdiv

import (
	"encoding/binary"
	"errors"
)

// Sentinel errors for table construction and lifecycle.
var (
	// ErrNilKeyFunc indicates that New was called with a nil KeyFunc.
	ErrNilKeyFunc = errors.New("htdiv: key-byte view is nil")

	// ErrBadLoadFactor indicates a non-positive load factor numerator or
	// denominator passed to WithLoadFactor.
	ErrBadLoadFactor = errors.New("htdiv: load factor bound must be positive")

	// ErrBadMinCount indicates a non-positive minimum count passed to
	// WithMinCount.
	ErrBadMinCount = errors.New("htdiv: minimum slot count must be positive")

	// ErrTableFreed indicates an operation on a table after Free.
	ErrTableFreed = errors.New("htdiv: table already freed")
)

// KeyFunc returns the byte view of a key that the table digests for slot
// selection. The view must be stable: equal keys must yield equal bytes for
// as long as the key is present in the table.
type KeyFunc[K comparable] func(K) []byte

// Option configures a Table before it is populated.
type Option[K comparable, V any] func(*Table[K, V])

// WithLoadFactor bounds the expected number of keys per slot by num/den.
// Both must be positive; invalid values panic with ErrBadLoadFactor.
// Default (if not set) is 1/1.
func WithLoadFactor[K comparable, V any](num, den int) Option[K, V] {
	return func(t *Table[K, V]) {
		if num <= 0 || den <= 0 {
			panic(ErrBadLoadFactor.Error())
		}
		t.alphaNum = num
		t.alphaDen = den
	}
}

// WithMinCount starts the table at the first prime slot count that is greater
// than or equal to n, avoiding early growth rehashes when the expected number
// of keys is known upfront. Must be positive; invalid values panic with
// ErrBadMinCount.
func WithMinCount[K comparable, V any](n int) Option[K, V] {
	return func(t *Table[K, V]) {
		if n <= 0 {
			panic(ErrBadMinCount.Error())
		}
		t.minCount = n
	}
}

// WithFreeValue registers a payload finalizer. The finalizer runs once per
// payload that leaves the table through Delete, Free, or an upsert that
// replaces it — never through Remove, which transfers ownership to the caller.
func WithFreeValue[K comparable, V any](fn func(V)) Option[K, V] {
	return func(t *Table[K, V]) {
		t.freeVal = fn
	}
}

// Ready-made key views for common key types. Multi-byte views are
// little-endian, matching the byte order the division method was designed
// against.

// Uint32Key is the KeyFunc view of a uint32 key.
func Uint32Key(k uint32) []byte {
	return binary.LittleEndian.AppendUint32(nil, k)
}

// Uint64Key is the KeyFunc view of a uint64 key.
func Uint64Key(k uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, k)
}

// IntKey is the KeyFunc view of an int key.
func IntKey(k int) []byte {
	return binary.LittleEndian.AppendUint64(nil, uint64(k))
}

// StringKey is the KeyFunc view of a string key.
func StringKey(s string) []byte {
	return []byte(s)
}
