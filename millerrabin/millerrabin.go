package millerrabin

import (
	"errors"
	"math/rand/v2"

	"github.com/velkas/structo/modarith"
)

// ErrBadRounds indicates a non-positive round count passed to WithRounds
// (reported via panic, as option constructors validate eagerly).
var ErrBadRounds = errors.New("millerrabin: rounds must be positive")

// DefaultRounds is the number of random bases tried per test; 50 rounds
// bound the false-positive probability by 4^-50.
const DefaultRounds = 50

// Options configures the behavior of IsPrime.
//
// Rounds – number of independent random bases to test.
type Options struct {
	Rounds int
}

// Option represents a functional option for configuring IsPrime.
type Option func(*Options)

// WithRounds sets the number of test rounds. Must be positive; invalid
// values panic with ErrBadRounds.
func WithRounds(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadRounds.Error())
		}
		o.Rounds = n
	}
}

// DefaultOptions returns an Options struct initialized with DefaultRounds.
func DefaultOptions() Options {
	return Options{Rounds: DefaultRounds}
}

// IsPrime reports whether n is prime, with one-sided error: composites are
// misclassified with probability at most 4^-rounds, primes never.
func IsPrime(n uint64, opts ...Option) bool {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Dispatch the small cases the witness loop cannot draw bases for.
	switch {
	case n < 2:
		return false
	case n < 4: // 2 and 3
		return true
	case n&1 == 0:
		return false
	}

	// 2) Factor n-1 = 2^k * u with u odd.
	k, u := modarith.Represent(n - 1)

	// 3) Test random bases in [2, n-2].
	for r := 0; r < cfg.Rounds; r++ {
		a := 2 + rand.Uint64N(n-3)
		if !strongProbablePrime(n, a, k, u) {
			return false
		}
	}

	return true
}

// strongProbablePrime reports whether n passes the strong-probable-prime
// condition for base a, given n-1 = 2^k * u with u odd.
func strongProbablePrime(n, a uint64, k uint, u uint64) bool {
	x := modarith.PowMod(a, u, n)
	if x == 1 || x == n-1 {
		return true
	}
	// Square up to k-1 times, looking for the -1 that precedes the final 1.
	for i := uint(1); i < k; i++ {
		x = modarith.MulMod(x, x, n)
		if x == n-1 {
			return true
		}
	}

	return false
}
