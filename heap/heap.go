package heap

import (
	"github.com/velkas/structo/htdiv"
)

// Heap is an array-backed binary min-heap of (priority, element) pairs with
// an embedded hash index mapping each element to its current slot.
// See the package documentation for the full contract.
type Heap[P any, E comparable] struct {
	pty []P // priorities; pty[i] pairs with elt[i]
	elt []E // elements, parallel to pty

	numElts  int // occupied slots
	count    int // allocated capacity, len(pty) == len(elt) == count
	countMax int // capacity ceiling

	cmp     CompareFunc[P]
	freeElt func(E)

	alphaNum int
	alphaDen int

	ix    *htdiv.Table[E, int] // element → current slot
	freed bool
}

// New initializes a heap and its owned index together. initCount is the
// starting capacity and must be in (0, count maximum]; cmp orders priorities;
// keyBytes supplies the hashed byte view of an element for the index.
// Complexity: O(initCount + index slot count)
func New[P any, E comparable](
	initCount int,
	cmp CompareFunc[P],
	keyBytes htdiv.KeyFunc[E],
	opts ...Option[P, E],
) (*Heap[P, E], error) {
	h := &Heap[P, E]{
		countMax: defaultCountMax,
		alphaNum: 1,
		alphaDen: 1,
	}
	for _, opt := range opts {
		opt(h)
	}

	// Validate required callbacks and the capacity range.
	if cmp == nil {
		return nil, ErrNilCompare
	}
	if keyBytes == nil {
		return nil, ErrNilKeyFunc
	}
	if initCount <= 0 || initCount > h.countMax {
		return nil, ErrBadCount
	}

	ix, err := htdiv.New[E, int](
		keyBytes,
		htdiv.WithLoadFactor[E, int](h.alphaNum, h.alphaDen),
	)
	if err != nil {
		return nil, err
	}

	h.cmp = cmp
	h.count = initCount
	h.pty = make([]P, initCount)
	h.elt = make([]E, initCount)
	h.ix = ix

	return h, nil
}

// Len returns the number of elements in the heap.
func (h *Heap[P, E]) Len() int { return h.numElts }

// Cap returns the current allocated capacity.
func (h *Heap[P, E]) Cap() int { return h.count }

// Push inserts an element with an associated priority. The element must not
// be present: a duplicate is rejected with ErrDuplicateElement before any
// state changes. Grows the arrays by doubling, capped at the count maximum;
// a full heap at the ceiling is rejected with ErrCountMax.
// Complexity: O(log n) amortized.
func (h *Heap[P, E]) Push(pty P, elt E) error {
	if h.freed {
		return ErrFreed
	}
	if _, ok := h.ix.Search(elt); ok {
		return ErrDuplicateElement
	}
	if h.numElts == h.count {
		if err := h.grow(); err != nil {
			return err
		}
	}

	// Append at the next free slot, index it, then restore heap order.
	i := h.numElts
	h.pty[i] = pty
	h.elt[i] = elt
	h.ix.Insert(elt, i)
	h.numElts++
	h.siftUp(i)

	return nil
}

// Search returns the priority of an element and true, or the zero priority
// and false if the element is absent.
// Complexity: O(1) expected.
func (h *Heap[P, E]) Search(elt E) (P, bool) {
	var zero P
	if h.freed {
		return zero, false
	}
	i, ok := h.ix.Search(elt)
	if !ok {
		return zero, false
	}

	return h.pty[i], true
}

// Update replaces the priority of an element that is in the heap, reported
// with ErrElementNotFound otherwise. The element is sifted both upward and
// downward from its slot: the direction of the priority change is unknown
// here, and the ineffective direction is a no-op.
// Complexity: O(log n).
func (h *Heap[P, E]) Update(pty P, elt E) error {
	if h.freed {
		return ErrFreed
	}
	i, ok := h.ix.Search(elt)
	if !ok {
		return ErrElementNotFound
	}
	h.pty[i] = pty
	h.siftUp(i)
	h.siftDown(i)

	return nil
}

// Pop removes a (priority, element) pair with a minimal priority and returns
// it with true. An empty (or freed) heap returns zero values and false.
// Complexity: O(log n).
func (h *Heap[P, E]) Pop() (P, E, bool) {
	var zeroP P
	var zeroE E
	if h.freed || h.numElts == 0 {
		return zeroP, zeroE, false
	}

	pty, elt := h.pty[0], h.elt[0]
	last := h.numElts - 1
	h.swap(0, last)
	h.ix.Remove(elt)
	h.numElts--
	if h.numElts > 0 {
		h.siftDown(0)
	}

	// Zero the vacated slot so the arrays drop their references.
	h.pty[last] = zeroP
	h.elt[last] = zeroE

	return pty, elt, true
}

// Free runs the optional element finalizer once per remaining element, then
// releases the arrays and the owned index. Repeated Free is a no-op; any
// later mutation is rejected with ErrFreed.
// Complexity: O(n).
func (h *Heap[P, E]) Free() {
	if h.freed {
		return
	}
	if h.freeElt != nil {
		for i := 0; i < h.numElts; i++ {
			h.freeElt(h.elt[i])
		}
	}
	h.pty = nil
	h.elt = nil
	h.ix.Free()
	h.numElts = 0
	h.count = 0
	h.freed = true
}

// grow doubles the capacity up to the count maximum and reallocates both
// arrays, preserving entries at their slots. Slot indices are stable across
// growth, so the index needs no repointing here. Amortized constant overhead
// per Push.
func (h *Heap[P, E]) grow() error {
	if h.count == h.countMax {
		return ErrCountMax
	}
	if h.countMax-h.count < h.count {
		h.count = h.countMax
	} else {
		h.count *= 2
	}

	pty := make([]P, h.count)
	copy(pty, h.pty)
	h.pty = pty
	elt := make([]E, h.count)
	copy(elt, h.elt)
	h.elt = elt

	return nil
}

// swap exchanges the pairs at slots i and j and repoints the index for both.
func (h *Heap[P, E]) swap(i, j int) {
	if i == j {
		return
	}
	h.pty[i], h.pty[j] = h.pty[j], h.pty[i]
	h.elt[i], h.elt[j] = h.elt[j], h.elt[i]
	h.ix.Insert(h.elt[i], i)
	h.ix.Insert(h.elt[j], j)
}

// halfSwap copies the pair at slot src into slot dst and repoints the copied
// element to dst. The sifts use it to move a hole instead of full swaps; the
// sifted pair is written back once at the end.
func (h *Heap[P, E]) halfSwap(dst, src int) {
	h.pty[dst] = h.pty[src]
	h.elt[dst] = h.elt[src]
	h.ix.Insert(h.elt[dst], dst)
}

// siftUp restores heap order from slot i toward the root: while the parent's
// priority is strictly greater than the sifted pair's, the parent moves down
// into the hole. The pair is placed and indexed once at its final slot.
func (h *Heap[P, E]) siftUp(i int) {
	pty, elt := h.pty[i], h.elt[i]
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.pty[parent], pty) <= 0 {
			break
		}
		h.halfSwap(i, parent)
		i = parent
	}
	h.pty[i] = pty
	h.elt[i] = elt
	h.ix.Insert(elt, i)
}

// siftDown restores heap order from slot i toward the leaves. With two
// children the hole moves to the strictly smaller child, preferring the left
// child on ties; with a single child it moves there only if that child's
// priority is strictly smaller. The pair is placed and indexed once at its
// final slot.
func (h *Heap[P, E]) siftDown(i int) {
	pty, elt := h.pty[i], h.elt[i]
	for {
		l := 2*i + 1
		if l >= h.numElts {
			break
		}
		j := l
		if r := l + 1; r < h.numElts && h.cmp(h.pty[l], h.pty[r]) > 0 {
			j = r
		}
		if h.cmp(pty, h.pty[j]) <= 0 {
			break
		}
		h.halfSwap(i, j)
		i = j
	}
	h.pty[i] = pty
	h.elt[i] = elt
	h.ix.Insert(elt, i)
}
