package dlist

// Node is a single list element holding a key/value pair.
//
// Key identifies the node for SearchKey lookups; Val is the associated
// payload and may be mutated in place through the node pointer.
type Node[K comparable, V any] struct {
	// Key identifies this node within its list.
	Key K

	// Val is the payload associated with Key.
	Val V

	next *Node[K, V]
	prev *Node[K, V]
}

// Next returns the successor of n in circular order.
func (n *Node[K, V]) Next() *Node[K, V] { return n.next }

// Prev returns the predecessor of n in circular order.
func (n *Node[K, V]) Prev() *Node[K, V] { return n.prev }

// List is a circular doubly linked list of key/value nodes.
type List[K comparable, V any] struct {
	head   *Node[K, V]
	length int
}

// New creates an empty list.
// Complexity: O(1)
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// Len returns the number of nodes in the list.
func (l *List[K, V]) Len() int { return l.length }

// Head returns the current head node, or nil if the list is empty.
// The head is positional: Prepend moves it, Append and Remove may move it.
func (l *List[K, V]) Head() *Node[K, V] { return l.head }

// Prepend inserts a new node before the current head, makes it the new head,
// and returns it.
// Complexity: O(1)
func (l *List[K, V]) Prepend(key K, val V) *Node[K, V] {
	node := &Node[K, V]{Key: key, Val: val}
	if l.head == nil {
		// A single node closes the circle on itself.
		node.next = node
		node.prev = node
	} else {
		node.next = l.head
		node.prev = l.head.prev
		l.head.prev.next = node
		l.head.prev = node
	}
	l.head = node
	l.length++

	return node
}

// Append inserts a new node at the tail position (just before the head in
// circular order) and returns it. The head is unchanged.
// Complexity: O(1)
func (l *List[K, V]) Append(key K, val V) *Node[K, V] {
	// Appending is prepending followed by advancing the head past the new node.
	node := l.Prepend(key, val)
	l.head = node.next

	return node
}

// SearchKey walks the circle starting at the head and returns the first node
// whose key equals key, or nil if no such node exists.
// Complexity: O(n)
func (l *List[K, V]) SearchKey(key K) *Node[K, V] {
	if l.head == nil {
		return nil
	}
	node := l.head
	for {
		if node.Key == key {
			return node
		}
		node = node.next
		if node == l.head {
			return nil
		}
	}
}

// Remove unlinks node from the list by identity. The node must belong to this
// list; removing a foreign node corrupts both lists. If the head is removed,
// its successor becomes the new head.
// Complexity: O(1)
func (l *List[K, V]) Remove(node *Node[K, V]) {
	if node == nil {
		return
	}
	if node.next == node {
		// Last remaining node.
		l.head = nil
	} else {
		node.prev.next = node.next
		node.next.prev = node.prev
		if l.head == node {
			l.head = node.next
		}
	}
	node.next = nil
	node.prev = nil
	l.length--
}

// Range calls fn for each node in circular order starting at the head, until
// fn returns false or the circle is complete. The list must not be mutated
// from within fn.
func (l *List[K, V]) Range(fn func(*Node[K, V]) bool) {
	if l.head == nil {
		return
	}
	node := l.head
	for {
		if !fn(node) {
			return
		}
		node = node.next
		if node == l.head {
			return
		}
	}
}
