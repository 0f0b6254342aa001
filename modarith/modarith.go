package modarith

import (
	"encoding/binary"
	"errors"
	"math/bits"
)

// ErrZeroModulus indicates a zero modulus passed to any of the package
// functions (reported via panic; a zero modulus has no residues).
var ErrZeroModulus = errors.New("modarith: modulus is zero")

// SumMod returns (a + b) mod m without intermediate overflow.
func SumMod(a, b, m uint64) uint64 {
	mustModulus(m)
	a %= m
	b %= m
	// After reduction a, b < m, so the sum wraps at most once.
	if a >= m-b {
		return a - (m - b)
	}

	return a + b
}

// MulMod returns (a * b) mod m without intermediate overflow, reducing the
// 128-bit product directly.
func MulMod(a, b, m uint64) uint64 {
	mustModulus(m)
	hi, lo := bits.Mul64(a%m, b%m)

	return bits.Rem64(hi, lo, m)
}

// PowMod returns a^b mod m by binary exponentiation. PowMod(0, 0, m) is 1
// mod m, following the usual empty-product convention.
func PowMod(a, b, m uint64) uint64 {
	mustModulus(m)
	res := uint64(1) % m
	base := a % m
	for ; b > 0; b >>= 1 {
		if b&1 == 1 {
			res = MulMod(res, base, m)
		}
		base = MulMod(base, base, m)
	}

	return res
}

// MemMod interprets data as a little-endian unsigned integer of arbitrary
// length and returns its value mod m. An empty buffer reduces to zero.
func MemMod(data []byte, m uint64) uint64 {
	mustModulus(m)
	// 2^64 mod m, the weight of one full chunk relative to the next.
	shift := bits.Rem64(1, 0, m)

	var res uint64
	i := len(data)
	// The most significant chunk may be partial; assemble it byte by byte.
	if rem := len(data) % 8; rem != 0 {
		i -= rem
		var chunk uint64
		for j := rem - 1; j >= 0; j-- {
			chunk = chunk<<8 | uint64(data[i+j])
		}
		res = chunk % m
	}
	// Fold full 64-bit chunks from most significant to least.
	for i -= 8; i >= 0; i -= 8 {
		chunk := binary.LittleEndian.Uint64(data[i : i+8])
		res = SumMod(MulMod(res, shift, m), chunk%m, m)
	}

	return res
}

// Represent factors x into 2^k * u with u odd, returning (k, u).
// Represent(0) is (0, 0): zero has no odd part.
func Represent(x uint64) (k uint, u uint64) {
	if x == 0 {
		return 0, 0
	}
	k = uint(bits.TrailingZeros64(x))

	return k, x >> k
}

func mustModulus(m uint64) {
	if m == 0 {
		panic(ErrZeroModulus.Error())
	}
}
