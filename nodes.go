package ostree

// node is a tagged variant: leaf and internal nodes share the key/value
// prefix; only internal nodes carry children. The discriminant is the
// children slice, which is allocated for internal nodes and nil for leaves.
//
// All slices are allocated once, at node creation, with the fixed capacity
// the tree order dictates (Order-1 entries, Order children). Mutations shift
// entries in place and never grow a slice beyond its backing storage.
type node[K, V any] struct {
	// size counts the keys of this node plus all of its descendants.
	// For a leaf, size == len(keys).
	size int
	// parent is a non-owning back-reference, nil for the root. It exists for
	// upward traversal during deletion repair and must never be followed to
	// decide reachability.
	parent   *node[K, V]
	keys     []K
	vals     []V
	children []*node[K, V]
}

func (n *node[K, V]) isLeaf() bool { return n.children == nil }

func (t *Tree[K, V]) newLeaf(parent *node[K, V]) *node[K, V] {
	return &node[K, V]{
		parent: parent,
		keys:   make([]K, 0, t.cfg.Order-1),
		vals:   make([]V, 0, t.cfg.Order-1),
	}
}

func (t *Tree[K, V]) newInternal(parent *node[K, V]) *node[K, V] {
	n := t.newLeaf(parent)
	n.children = make([]*node[K, V], 0, t.cfg.Order)
	return n
}

// maxKeys is the key capacity of every node.
func (t *Tree[K, V]) maxKeys() int { return t.cfg.Order - 1 }

// minKeys is the fill bound every non-root node must satisfy. Integer
// division on purpose: for odd orders the ceil bound is unattainable under
// pre-emptive splitting.
func (t *Tree[K, V]) minKeys() int { return t.cfg.Order/2 - 1 }

// hasSpare reports whether a node can give up one key (to a borrow or a
// descent) without dropping below minimum fill.
func (t *Tree[K, V]) hasSpare(n *node[K, V]) bool {
	return len(n.keys) >= t.cfg.Order/2
}

// childIndex finds child among n's children by identity.
func (n *node[K, V]) childIndex(child *node[K, V]) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	assert(false, "childIndex: node is not a child of its parent")
	return -1
}

// insertAt shifts s[idx:] one slot right and writes v at idx. The slice must
// have spare capacity; nodes are split before they can overflow.
func insertAt[T any](s []T, idx int, v T) []T {
	assert(idx >= 0 && idx <= len(s), "insertAt index out of range")
	assert(len(s) < cap(s), "insertAt exceeds fixed node capacity")
	s = s[:len(s)+1]
	copy(s[idx+1:], s[idx:])
	s[idx] = v
	return s
}

// removeAt shifts s[idx+1:] one slot left and zeroes the vacated tail slot,
// releasing any reference held there.
func removeAt[T any](s []T, idx int) []T {
	assert(idx >= 0 && idx < len(s), "removeAt index out of range")
	copy(s[idx:], s[idx+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1]
}

// truncate zeroes s[cnt:] and shortens s to cnt entries.
func truncate[T any](s []T, cnt int) []T {
	assert(cnt >= 0 && cnt <= len(s), "truncate count out of range")
	var zero T
	for i := cnt; i < len(s); i++ {
		s[i] = zero
	}
	return s[:cnt]
}
