package ostree

// Remove deletes key from the tree and reports whether it was present.
// Removing from an empty tree or removing an absent key returns false and
// leaves the tree untouched.
func (t *Tree[K, V]) Remove(key K) bool {
	removed := t.remove(t.root, key)
	if !t.root.isLeaf() && len(t.root.keys) == 0 {
		// Root collapse: an internal root drained of its keys promotes its
		// sole remaining child.
		tracer().Debugf("collapsing empty internal root")
		t.root = t.root.children[0]
		t.root.parent = nil
	}
	return removed
}

// remove deletes key below n. The descent repairs proactively: before
// entering a child without a spare key, fill tops it up, so every node on
// the path can afford the loss of one key.
func (t *Tree[K, V]) remove(n *node[K, V], key K) bool {
	idx := t.locate(n, key)
	if idx < len(n.keys) && !t.cfg.Less(key, n.keys[idx]) {
		if n.isLeaf() {
			t.removeFromLeaf(n, idx)
		} else {
			t.removeFromInternal(n, idx)
		}
		return true
	}
	if n.isLeaf() {
		return false // key not present
	}
	wasLast := idx == len(n.keys)
	if !t.hasSpare(n.children[idx]) {
		t.fill(n, idx)
	}
	if wasLast && idx > len(n.keys) {
		// fill merged the two rightmost children; the search target now
		// lives in the merged one
		return t.remove(n.children[idx-1], key)
	}
	return t.remove(n.children[idx], key)
}

// removeFromLeaf deletes slot idx in place. Leaf removal is not itself
// recursive, so ancestor size counters are repaired lazily here, walking the
// parent chain to the root; every other mutation updates sizes as part of
// the operation.
func (t *Tree[K, V]) removeFromLeaf(n *node[K, V], idx int) {
	n.keys = removeAt(n.keys, idx)
	n.vals = removeAt(n.vals, idx)
	n.size--
	for p := n.parent; p != nil; p = p.parent {
		p.size--
	}
	// Eager repair: top the leaf back up while a sibling is at hand. A parent
	// without keys has no sibling to offer; its leaf is still within the fill
	// bound, so leaving it is sound.
	if !t.hasSpare(n) && n.parent != nil && len(n.parent.keys) > 0 {
		t.fill(n.parent, n.parent.childIndex(n))
	}
}

// removeFromInternal deletes the separator at idx of internal node n. The
// separator is replaced by its predecessor (or successor) and that entry is
// removed recursively from the child subtree; if neither child has a spare
// key, the children are merged around the separator and deletion recurses
// into the merged node.
func (t *Tree[K, V]) removeFromInternal(n *node[K, V], idx int) {
	switch {
	case t.hasSpare(n.children[idx]):
		pk, pv := t.predecessor(n, idx)
		n.keys[idx], n.vals[idx] = pk, pv
		ok := t.remove(n.children[idx], pk)
		assert(ok, "predecessor key missing from left subtree")
	case t.hasSpare(n.children[idx+1]):
		sk, sv := t.successor(n, idx)
		n.keys[idx], n.vals[idx] = sk, sv
		ok := t.remove(n.children[idx+1], sk)
		assert(ok, "successor key missing from right subtree")
	default:
		key := n.keys[idx]
		t.merge(n, idx)
		ok := t.remove(n.children[idx], key)
		assert(ok, "separator key missing from merged child")
	}
}

// predecessor returns the right-most entry of the subtree under
// n.children[idx]: the deepest key on the rightmost spine. Odd orders admit
// legal zero-key nodes on that spine, so the walk remembers the last key it
// passed instead of trusting the bottom leaf to hold one.
func (t *Tree[K, V]) predecessor(n *node[K, V], idx int) (K, V) {
	var key K
	var val V
	found := false
	for cur := n.children[idx]; ; cur = cur.children[len(cur.children)-1] {
		if len(cur.keys) > 0 {
			last := len(cur.keys) - 1
			key, val, found = cur.keys[last], cur.vals[last], true
		}
		if cur.isLeaf() {
			break
		}
	}
	assert(found, "predecessor subtree holds no keys")
	return key, val
}

// successor returns the left-most entry of the subtree under
// n.children[idx+1]; mirror image of predecessor.
func (t *Tree[K, V]) successor(n *node[K, V], idx int) (K, V) {
	var key K
	var val V
	found := false
	for cur := n.children[idx+1]; ; cur = cur.children[0] {
		if len(cur.keys) > 0 {
			key, val, found = cur.keys[0], cur.vals[0], true
		}
		if cur.isLeaf() {
			break
		}
	}
	assert(found, "successor subtree holds no keys")
	return key, val
}

// fill tops up the child at idx before it has to give up a key: borrow from
// the left sibling when it has spares, else from the right, else merge with
// the right sibling (or the left one when the child is rightmost).
func (t *Tree[K, V]) fill(n *node[K, V], idx int) {
	tracer().Debugf("filling child #%d of a node with %d keys", idx, len(n.keys))
	switch {
	case idx > 0 && t.hasSpare(n.children[idx-1]):
		t.borrowFromPrev(n, idx)
	case idx < len(n.keys) && t.hasSpare(n.children[idx+1]):
		t.borrowFromNext(n, idx)
	case idx < len(n.keys):
		t.merge(n, idx)
	default:
		t.merge(n, idx-1)
	}
}

// borrowFromPrev rotates the left sibling's last entry through the parent
// into the child's front. For internal nodes the sibling's last child moves
// along; the size counters shift by the donated subtree plus one on each
// side.
func (t *Tree[K, V]) borrowFromPrev(n *node[K, V], idx int) {
	child := n.children[idx]
	sibling := n.children[idx-1]

	child.keys = insertAt(child.keys, 0, n.keys[idx-1])
	child.vals = insertAt(child.vals, 0, n.vals[idx-1])
	last := len(sibling.keys) - 1
	n.keys[idx-1] = sibling.keys[last]
	n.vals[idx-1] = sibling.vals[last]
	sibling.keys = removeAt(sibling.keys, last)
	sibling.vals = removeAt(sibling.vals, last)
	if !child.isLeaf() {
		assert(!sibling.isLeaf(), "borrowFromPrev: sibling variant mismatch")
		moved := sibling.children[len(sibling.children)-1]
		sibling.children = removeAt(sibling.children, len(sibling.children)-1)
		child.children = insertAt(child.children, 0, moved)
		moved.parent = child
		child.size += moved.size
		sibling.size -= moved.size
	}
	child.size++
	sibling.size--
}

// borrowFromNext is the mirror image: the right sibling's first entry
// rotates through the parent onto the child's back.
func (t *Tree[K, V]) borrowFromNext(n *node[K, V], idx int) {
	child := n.children[idx]
	sibling := n.children[idx+1]

	child.keys = append(child.keys, n.keys[idx])
	child.vals = append(child.vals, n.vals[idx])
	n.keys[idx] = sibling.keys[0]
	n.vals[idx] = sibling.vals[0]
	sibling.keys = removeAt(sibling.keys, 0)
	sibling.vals = removeAt(sibling.vals, 0)
	if !child.isLeaf() {
		assert(!sibling.isLeaf(), "borrowFromNext: sibling variant mismatch")
		moved := sibling.children[0]
		sibling.children = removeAt(sibling.children, 0)
		child.children = append(child.children, moved)
		moved.parent = child
		child.size += moved.size
		sibling.size -= moved.size
	}
	child.size++
	sibling.size--
}

// merge absorbs the separator at idx and the right sibling into the left
// child. The parent loses the separator and the right child reference; its
// own aggregate stays put, since the keys only moved downward.
func (t *Tree[K, V]) merge(n *node[K, V], idx int) {
	child := n.children[idx]
	sibling := n.children[idx+1]
	tracer().Debugf("merging siblings with %d and %d keys around separator #%d",
		len(child.keys), len(sibling.keys), idx)
	assert(len(child.keys)+len(sibling.keys)+1 <= t.maxKeys(), "merge exceeds node capacity")

	child.keys = append(child.keys, n.keys[idx])
	child.vals = append(child.vals, n.vals[idx])
	child.keys = append(child.keys, sibling.keys...)
	child.vals = append(child.vals, sibling.vals...)
	if !child.isLeaf() {
		assert(!sibling.isLeaf(), "merge: sibling variant mismatch")
		for _, c := range sibling.children {
			c.parent = child
		}
		child.children = append(child.children, sibling.children...)
	}
	child.size += sibling.size + 1

	n.keys = removeAt(n.keys, idx)
	n.vals = removeAt(n.vals, idx)
	n.children = removeAt(n.children, idx+1)
}
