// Package millerrabin implements the probabilistic Miller-Rabin primality
// test for uint64 values.
//
// Overview:
//
//   - IsPrime(n) reports whether n is prime. A "false" answer is always
//     correct; a "true" answer is wrong with probability at most 4^-rounds,
//     where rounds is configurable via WithRounds (default 50).
//   - Each round draws a uniform random base in [2, n-2] and checks the
//     strong-probable-prime condition on n-1 = 2^k * u through the
//     overflow-safe operators of package modarith.
//
// When to use:
//
//   - Primality screening of 64-bit values where a negligible one-sided
//     error probability is acceptable. For a deterministic answer on small
//     fixed inputs, trial division is simpler.
//
// Complexity: O(rounds * log n) modular multiplications.
package millerrabin
