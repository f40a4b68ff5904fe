package ostree

// Rank returns the number of keys strictly less than key: the 0-based
// ordinal of key among the stored keys, or its insertion point if absent.
//
// The descent accumulates, per visited node, the locate index plus the
// subtree sizes of all children strictly left of it. On an exact match the
// matched slot's own left subtree joins the count and the walk stops.
func (t *Tree[K, V]) Rank(key K) int {
	rank := 0
	for n := t.root; n != nil; {
		idx := t.locate(n, key)
		rank += idx
		if !n.isLeaf() {
			for _, c := range n.children[:idx] {
				rank += c.size
			}
		}
		if idx < len(n.keys) && !t.cfg.Less(key, n.keys[idx]) {
			if !n.isLeaf() {
				rank += n.children[idx].size
			}
			break
		}
		if n.isLeaf() {
			break
		}
		n = n.children[idx]
	}
	return rank
}
