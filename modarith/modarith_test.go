package modarith_test

import (
	"encoding/binary"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/velkas/structo/modarith"
)

func TestSumMod_Wraps(t *testing.T) {
	const m uint64 = math.MaxUint64 - 58 // large modulus, sums overflow uint64
	cases := []struct{ a, b, want uint64 }{
		{0, 0, 0},
		{1, 2, 3},
		{m - 1, 1, 0},
		{m - 1, m - 1, m - 2},
		{math.MaxUint64, math.MaxUint64, 116}, // both reduce to 58 first
	}
	for _, tc := range cases {
		if got := modarith.SumMod(tc.a, tc.b, m); got != tc.want {
			t.Errorf("SumMod(%d, %d, %d) = %d, want %d", tc.a, tc.b, m, got, tc.want)
		}
	}
}

func TestMulMod_Wraps(t *testing.T) {
	const m = math.MaxUint64 - 58
	if got := modarith.MulMod(m-1, m-1, m); got != 1 {
		t.Errorf("MulMod(m-1, m-1, m) = %d, want 1", got)
	}
	if got := modarith.MulMod(0, math.MaxUint64, m); got != 0 {
		t.Errorf("MulMod(0, max, m) = %d, want 0", got)
	}
}

func TestPowMod_Known(t *testing.T) {
	cases := []struct{ a, b, m, want uint64 }{
		{2, 10, 1_000_000_007, 1024},
		{2, 64, 1_000_000_007, 582_344_008}, // 2^64 mod p
		{7, 0, 13, 1},
		{0, 0, 13, 1},
		{0, 5, 13, 0},
		{5, 3, 1, 0}, // everything is 0 mod 1
	}
	for _, tc := range cases {
		if got := modarith.PowMod(tc.a, tc.b, tc.m); got != tc.want {
			t.Errorf("PowMod(%d, %d, %d) = %d, want %d", tc.a, tc.b, tc.m, got, tc.want)
		}
	}
}

// TestAgainstBig cross-checks all three operators against math/big on random
// operands, including moduli above 2^63.
func TestAgainstBig(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 2_000; i++ {
		a, b := rng.Uint64(), rng.Uint64()
		m := rng.Uint64()
		if m == 0 {
			m = 1
		}
		ba := new(big.Int).SetUint64(a)
		bb := new(big.Int).SetUint64(b)
		bm := new(big.Int).SetUint64(m)

		want := new(big.Int).Add(ba, bb)
		want.Mod(want, bm)
		if got := modarith.SumMod(a, b, m); got != want.Uint64() {
			t.Fatalf("SumMod(%d, %d, %d) = %d, want %s", a, b, m, got, want)
		}

		want.Mul(ba, bb)
		want.Mod(want, bm)
		if got := modarith.MulMod(a, b, m); got != want.Uint64() {
			t.Fatalf("MulMod(%d, %d, %d) = %d, want %s", a, b, m, got, want)
		}

		e := uint64(rng.Intn(1 << 16))
		want.Exp(ba, new(big.Int).SetUint64(e), bm)
		if got := modarith.PowMod(a, e, m); got != want.Uint64() {
			t.Fatalf("PowMod(%d, %d, %d) = %d, want %s", a, e, m, got, want)
		}
	}
}

// TestMemMod cross-checks the buffer fold against math/big on random
// little-endian buffers of assorted lengths, partial chunks included.
func TestMemMod(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for _, n := range []int{0, 1, 3, 7, 8, 9, 16, 17, 64, 100} {
		data := make([]byte, n)
		rng.Read(data)
		m := rng.Uint64() | 1<<63 // exercise large moduli too

		// math/big wants big-endian digits.
		be := make([]byte, n)
		for i, c := range data {
			be[n-1-i] = c
		}
		want := new(big.Int).SetBytes(be)
		want.Mod(want, new(big.Int).SetUint64(m))

		if got := modarith.MemMod(data, m); got != want.Uint64() {
			t.Fatalf("MemMod(len %d, %d) = %d, want %s", n, m, got, want)
		}
	}

	// A single full chunk reduces like the plain integer.
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], 123_456_789_012_345)
	if got := modarith.MemMod(buf[:], 1_000_003); got != 123_456_789_012_345%1_000_003 {
		t.Errorf("MemMod(one chunk) = %d", got)
	}
}

func TestRepresent(t *testing.T) {
	cases := []struct {
		x uint64
		k uint
		u uint64
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 1, 1},
		{12, 2, 3},
		{1 << 20, 20, 1},
		{220, 2, 55}, // 221 - 1, a typical primality decomposition
	}
	for _, tc := range cases {
		k, u := modarith.Represent(tc.x)
		if k != tc.k || u != tc.u {
			t.Errorf("Represent(%d) = (%d, %d), want (%d, %d)", tc.x, k, u, tc.k, tc.u)
		}
	}
}

func TestZeroModulusPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zero modulus")
		}
	}()
	modarith.SumMod(1, 2, 0)
}
