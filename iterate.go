package ostree

// ForEach walks key/value pairs in key order.
//
// Iteration stops early if fn returns false.
func (t *Tree[K, V]) ForEach(fn func(key K, val V) bool) {
	if t == nil || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree[K, V]) forEachNode(n *node[K, V], fn func(key K, val V) bool) bool {
	assert(n != nil, "forEachNode called with nil node")
	if n.isLeaf() {
		for i, k := range n.keys {
			if !fn(k, n.vals[i]) {
				return false
			}
		}
		return true
	}
	for i, k := range n.keys {
		if !t.forEachNode(n.children[i], fn) {
			return false
		}
		if !fn(k, n.vals[i]) {
			return false
		}
	}
	return t.forEachNode(n.children[len(n.keys)], fn)
}
