package ostree

// Cursor identifies a key/value slot inside the tree. The zero value is
// invalid. A cursor stays usable only until the next mutating operation.
type Cursor[K, V any] struct {
	node *node[K, V]
	slot int
}

// Valid reports whether the cursor points at a live key/value slot.
func (c Cursor[K, V]) Valid() bool {
	return c.node != nil
}

// Key returns the key under the cursor. The cursor must be valid.
func (c Cursor[K, V]) Key() K {
	assert(c.node != nil, "Key called on invalid cursor")
	return c.node.keys[c.slot]
}

// Value returns the value under the cursor. The cursor must be valid.
func (c Cursor[K, V]) Value() V {
	assert(c.node != nil, "Value called on invalid cursor")
	return c.node.vals[c.slot]
}

// SetValue overwrites the value under the cursor. The cursor must be valid.
func (c Cursor[K, V]) SetValue(val V) {
	assert(c.node != nil, "SetValue called on invalid cursor")
	c.node.vals[c.slot] = val
}

// locate returns the smallest index i with !Less(keys[i], key), i.e. the
// slot of key if present, or its insertion point. Linear scan over at most
// Order-1 keys.
func (t *Tree[K, V]) locate(n *node[K, V], key K) int {
	for i, k := range n.keys {
		if !t.cfg.Less(k, key) {
			return i
		}
	}
	return len(n.keys)
}

// Find descends from the root and returns a cursor for key, or an invalid
// cursor if the key is absent. O(height) node visits, O(Order) work each.
func (t *Tree[K, V]) Find(key K) Cursor[K, V] {
	return t.find(t.root, key)
}

func (t *Tree[K, V]) find(n *node[K, V], key K) Cursor[K, V] {
	idx := t.locate(n, key)
	if idx < len(n.keys) && !t.cfg.Less(key, n.keys[idx]) {
		return Cursor[K, V]{node: n, slot: idx}
	}
	if n.isLeaf() {
		return Cursor[K, V]{}
	}
	return t.find(n.children[idx], key)
}
