package ostree

/*
BSD 3-Clause License

Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Tree is an order-statistics B-tree mapping unique keys to values.
//
// The zero value is not usable; construct trees with New or NewOrdered.
// The root node always exists: an empty tree is a leaf root with no keys.
type Tree[K, V any] struct {
	cfg  Config[K]
	root *node[K, V]
}

// Len returns the number of keys in the tree. O(1): the root's subtree-size
// aggregate.
func (t *Tree[K, V]) Len() int {
	return t.root.size
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root.size == 0
}

// Height returns the tree height, where 0 means empty and 1 means a leaf
// root. Every leaf sits at the same depth, so the leftmost spine suffices.
func (t *Tree[K, V]) Height() int {
	if t.root.isLeaf() && len(t.root.keys) == 0 {
		return 0
	}
	h := 0
	for n := t.root; ; n = n.children[0] {
		h++
		if n.isLeaf() {
			return h
		}
	}
}
