package htdiv

import (
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/velkas/structo/dlist"
)

// primes is the sequence of slot counts in increasing order, approximately
// doubling in magnitude and not too close to the powers of 2 and 10.
var primes = [...]uint64{
	1543,
	3119,
	6211,
	12343,
	23981,
	48673,
	88843,
	186581,
	377369,
	786551,
	1483331,
	3219497,
	6278177,
	12538919,
	25166719,
	51331771,
	112663669,
	211326637,
	412653239,
	785367311,
	1611612763,
	3221225479,
	6442451311,
	12881269573,
	25542415651,
	51713873269,
	119353582331,
	211752305939,
	417969972941,
	817459404833,
	1621224516137,
	3253374675631,
	6594291673951,
	13349461912351,
	26380589320219,
	52758518323127,
	118691918825723,
	214182177768131,
	419189283369523,
	832735214133421,
	1672538661088171,
	3158576518771277,
	6692396525189279,
	13791536538127669,
	26532115188884581,
	55793289756397591,
	113545326073368661,
	217449629757435791,
	431794910914467367,
	841413987972987841,
	1755714234418853843,
	3358355678469146183,
	6884922145916737697,
	15769474759331449193,
}

// maxCountIx is the index of the largest prime whose slot array is
// allocatable on this platform.
var maxCountIx = func() int {
	ix := 0
	for i, p := range primes {
		if p > uint64(math.MaxInt) {
			break
		}
		ix = i
	}

	return ix
}()

// Table is a chained hash table with division-method slot selection.
// See the package documentation for the full contract.
type Table[K comparable, V any] struct {
	slots    []*dlist.List[K, V] // bucket-chain heads, one per slot
	countIx  int                 // current index into primes
	numKeys  int                 // number of distinct keys present
	alphaNum int                 // load factor bound numerator
	alphaDen int                 // load factor bound denominator
	minCount int                 // requested minimum slot count
	keyBytes KeyFunc[K]
	freeVal  func(V)
	freed    bool
}

// New creates an empty table hashing keys through the given byte view.
// Returns ErrNilKeyFunc if keyBytes is nil.
// Complexity: O(first prime slot count)
func New[K comparable, V any](keyBytes KeyFunc[K], opts ...Option[K, V]) (*Table[K, V], error) {
	if keyBytes == nil {
		return nil, ErrNilKeyFunc
	}
	t := &Table[K, V]{
		alphaNum: 1,
		alphaDen: 1,
		keyBytes: keyBytes,
	}
	for _, opt := range opts {
		opt(t)
	}

	// Start at the first prime satisfying the requested minimum count.
	for t.countIx < maxCountIx && primes[t.countIx] < uint64(t.minCount) {
		t.countIx++
	}
	t.slots = makeSlots[K, V](int(primes[t.countIx]))

	return t, nil
}

// Len returns the number of distinct keys in the table.
func (t *Table[K, V]) Len() int { return t.numKeys }

// CountSlots returns the current slot count (the current prime).
func (t *Table[K, V]) CountSlots() int { return len(t.slots) }

// Insert inserts a key and an associated payload. If the key is already
// present, the payload is replaced (the old payload is finalized if a
// finalizer was configured). Growth runs first, so a rehash never moves the
// freshly inserted chain node.
// Complexity: O(1) expected, amortized over growth rehashes.
func (t *Table[K, V]) Insert(key K, val V) {
	t.mustLive()

	// Grow while the expected number of keys in a slot would exceed the bound.
	for t.numKeys*t.alphaDen > len(t.slots)*t.alphaNum && t.countIx < maxCountIx {
		t.grow()
	}

	chain := t.slots[t.hash(key)]
	if node := chain.SearchKey(key); node != nil {
		if t.freeVal != nil {
			t.freeVal(node.Val)
		}
		node.Val = val

		return
	}
	chain.Prepend(key, val)
	t.numKeys++
}

// Search returns the payload associated with key and true, or the zero
// payload and false if the key is absent.
// Complexity: O(1) expected.
func (t *Table[K, V]) Search(key K) (V, bool) {
	t.mustLive()
	if node := t.slots[t.hash(key)].SearchKey(key); node != nil {
		return node.Val, true
	}
	var zero V

	return zero, false
}

// Remove unlinks key from the table and returns its payload and true,
// transferring payload ownership to the caller: the finalizer is not run.
// Returns the zero payload and false if the key is absent.
// Complexity: O(1) expected.
func (t *Table[K, V]) Remove(key K) (V, bool) {
	t.mustLive()
	chain := t.slots[t.hash(key)]
	node := chain.SearchKey(key)
	if node == nil {
		var zero V

		return zero, false
	}
	val := node.Val
	chain.Remove(node)
	t.numKeys--

	return val, true
}

// Delete unlinks key from the table, finalizing its payload, and reports
// whether the key was present.
// Complexity: O(1) expected.
func (t *Table[K, V]) Delete(key K) bool {
	t.mustLive()
	chain := t.slots[t.hash(key)]
	node := chain.SearchKey(key)
	if node == nil {
		return false
	}
	if t.freeVal != nil {
		t.freeVal(node.Val)
	}
	chain.Remove(node)
	t.numKeys--

	return true
}

// Range calls fn for every key/payload pair in unspecified order until fn
// returns false. The table must not be mutated from within fn.
func (t *Table[K, V]) Range(fn func(K, V) bool) {
	t.mustLive()
	for _, chain := range t.slots {
		stop := false
		chain.Range(func(n *dlist.Node[K, V]) bool {
			if !fn(n.Key, n.Val) {
				stop = true

				return false
			}

			return true
		})
		if stop {
			return
		}
	}
}

// Free finalizes every remaining payload and releases the slot array. The
// table must not be used afterwards; mutating a freed table panics with
// ErrTableFreed. Repeated Free is a no-op.
func (t *Table[K, V]) Free() {
	if t.freed {
		return
	}
	if t.freeVal != nil {
		for _, chain := range t.slots {
			chain.Range(func(n *dlist.Node[K, V]) bool {
				t.freeVal(n.Val)

				return true
			})
		}
	}
	t.slots = nil
	t.numKeys = 0
	t.freed = true
}

// hash maps a key to a slot index with the division method: the 64-bit
// xxhash digest of the key bytes reduced modulo the current prime.
func (t *Table[K, V]) hash(key K) uint64 {
	return xxhash.Sum64(t.keyBytes(key)) % uint64(len(t.slots))
}

// grow advances to the next prime slot count and rehashes all chains. In
// contrast to Insert, no per-key search is performed during reinsertion: the
// keys of a table are distinct by construction.
func (t *Table[K, V]) grow() {
	prev := t.slots
	t.countIx++
	t.slots = makeSlots[K, V](int(primes[t.countIx]))
	for _, chain := range prev {
		for chain.Head() != nil {
			node := chain.Head()
			t.slots[t.hash(node.Key)].Prepend(node.Key, node.Val)
			chain.Remove(node)
		}
	}
}

func (t *Table[K, V]) mustLive() {
	if t.freed {
		panic(ErrTableFreed.Error())
	}
}

func makeSlots[K comparable, V any](count int) []*dlist.List[K, V] {
	slots := make([]*dlist.List[K, V], count)
	for i := range slots {
		slots[i] = dlist.New[K, V]()
	}

	return slots
}
