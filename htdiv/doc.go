// Package htdiv provides a generic chained hash table with division-method
// slot selection over a prime-sized slot array and a bounded load factor.
//
// Overview:
//
//   - A Table maps keys of a comparable type to payloads of any type. The
//     caller supplies a KeyFunc returning the byte view of a key; the table
//     digests those bytes with xxhash and reduces the 64-bit digest modulo the
//     current slot count (the division method). Slot counts are drawn from a
//     fixed sequence of primes in increasing order, approximately doubling in
//     magnitude and not too close to powers of 2 and 10, to avoid hashing
//     regularities due to the structure of data.
//   - Collisions are resolved by chaining through dlist nodes. Due to
//     chaining, the number of keys is not limited by the implementation.
//   - The load factor of a table is the expected number of keys in a slot
//     under the simple uniform hashing assumption, and is upper-bounded by a
//     rational bound num/den. When an insertion would exceed the bound, the
//     table advances to the next prime and rehashes all chains. After the
//     largest prime is reached the bound is no longer enforced.
//
// Key semantics:
//
//   - Insert has upsert semantics: inserting an existing key replaces its
//     payload (running the payload finalizer on the old payload, if one was
//     configured).
//   - Remove unlinks a key and hands its payload back without finalizing it;
//     Delete unlinks and finalizes.
//
// Complexity:
//
//   - Insert, Search, Remove, Delete: O(1) expected under uniform hashing,
//     with Insert amortized over growth rehashes.
//
// A Table is not safe for concurrent use. After Free the table must not be
// used again.
package htdiv
