// Package dlist provides a generic doubly linked list in a circular
// representation.
//
// Overview:
//
//   - Each node carries a key of a comparable type and a value of any type.
//   - The list is circular: the head's prev pointer is the tail, the tail's
//     next pointer is the head. The head is a positional pointer, not a fixed
//     anchor — Prepend inserts before the head and moves the head onto the new
//     node, Append inserts before the head and leaves the head in place.
//   - A node keeps its address for its whole lifetime in the list, so node
//     pointers may be stored externally (for example, mapped from a key for
//     fast in-list access) and handed back to Remove.
//
// When to use:
//
//   - As bucket-chain storage for a chaining hash table (see package htdiv).
//   - Anywhere a positional, pointer-stable list of key/value pairs is needed.
//
// Complexity:
//
//   - Prepend, Append, Remove: O(1)
//   - SearchKey, Range:        O(n)
//
// The zero-value List is not ready for use; construct with New. A List is not
// safe for concurrent use.
package dlist
