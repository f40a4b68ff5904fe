package ostree

// Insert adds key with val to the tree, or overwrites the value of an
// already present key. Overwriting changes no structure and no size counter.
func (t *Tree[K, V]) Insert(key K, val V) {
	if len(t.root.keys) == t.maxKeys() {
		// Split the root pre-emptively so that descent only ever enters
		// non-full nodes and a single pass suffices.
		newRoot := t.newInternal(nil)
		newRoot.children = append(newRoot.children, t.root)
		newRoot.size = t.root.size
		t.root.parent = newRoot
		t.splitChild(newRoot, 0)
		t.root = newRoot
	}
	t.insertNonFull(t.root, key, val)
}

// insertNonFull inserts below n, which must not be full. It reports whether
// the tree grew; size counters along the descent path are bumped only then
// (an overwrite leaves every aggregate untouched).
func (t *Tree[K, V]) insertNonFull(n *node[K, V], key K, val V) bool {
	idx := t.locate(n, key)
	if idx < len(n.keys) && !t.cfg.Less(key, n.keys[idx]) {
		n.vals[idx] = val
		return false
	}
	if n.isLeaf() {
		n.keys = insertAt(n.keys, idx, key)
		n.vals = insertAt(n.vals, idx, val)
		n.size++
		return true
	}
	if len(n.children[idx].keys) == t.maxKeys() {
		t.splitChild(n, idx)
		if t.cfg.Less(n.keys[idx], key) {
			idx++
		} else if !t.cfg.Less(key, n.keys[idx]) {
			// the promoted median is the key being inserted
			n.vals[idx] = val
			return false
		}
	}
	if !t.insertNonFull(n.children[idx], key, val) {
		return false
	}
	n.size++
	return true
}

// splitChild splits the full child at idx: the median key moves up into
// parent, the upper half of keys/values (and children) moves into a fresh
// right sibling. Both halves' size counters are recomputed from what each
// half retained; the parent's aggregate is unchanged, its key and child
// counts grow by one.
func (t *Tree[K, V]) splitChild(parent *node[K, V], idx int) {
	child := parent.children[idx]
	assert(len(child.keys) == t.maxKeys(), "splitChild called on non-full child")
	mid := t.cfg.Order / 2 // median key sits at mid-1

	var sibling *node[K, V]
	if child.isLeaf() {
		sibling = t.newLeaf(parent)
	} else {
		sibling = t.newInternal(parent)
	}
	sibling.keys = append(sibling.keys, child.keys[mid:]...)
	sibling.vals = append(sibling.vals, child.vals[mid:]...)
	agg := 0
	if !child.isLeaf() {
		for _, c := range child.children[mid:] {
			agg += c.size
			c.parent = sibling
		}
		sibling.children = append(sibling.children, child.children[mid:]...)
		child.children = truncate(child.children, mid)
	}
	sibling.size = len(sibling.keys) + agg

	midKey, midVal := child.keys[mid-1], child.vals[mid-1]
	child.keys = truncate(child.keys, mid-1)
	child.vals = truncate(child.vals, mid-1)
	child.size -= sibling.size + 1

	parent.keys = insertAt(parent.keys, idx, midKey)
	parent.vals = insertAt(parent.vals, idx, midVal)
	parent.children = insertAt(parent.children, idx+1, sibling)
	tracer().Debugf("split child #%d, halves hold %d and %d keys", idx, len(child.keys), len(sibling.keys))
}
