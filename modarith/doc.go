// Package modarith provides overflow-safe modular arithmetic on uint64
// values.
//
// Overview:
//
//   - SumMod and MulMod compute a+b mod m and a*b mod m without overflowing,
//     for any modulus up to the full uint64 range. MulMod goes through the
//     128-bit product of math/bits.
//   - PowMod computes a^b mod m by binary exponentiation.
//   - MemMod reduces an arbitrary-length little-endian byte buffer modulo m,
//     folding it in 64-bit chunks, so large numbers never need to be
//     materialized.
//   - Represent factors a value into 2^k * u with u odd, the decomposition
//     used by probabilistic primality testing (see package millerrabin).
//
// All functions panic with ErrZeroModulus when m is zero; there is no valid
// residue to return and the condition is a caller bug, not an input error.
//
// Complexity:
//
//   - SumMod, MulMod, Represent: O(1)
//   - PowMod:                    O(log b) multiplications
//   - MemMod:                    O(len(data))
package modarith
