package ostree

import "fmt"

// Check validates structural tree invariants: strictly increasing keys over
// the in-order walk, minimum fill of every non-root node, subtree-size
// consistency, parent/child linkage, uniform leaf depth, and the shape of
// the fixed-capacity backing storage.
//
// A failed Check signals a bug in the mutation engine (or external
// corruption), not a caller error. The checker is meant as a test oracle and
// is intentionally strict; it is not part of normal operation.
func (t *Tree[K, V]) Check() error {
	if t == nil || t.root == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	walk := &inorderWalk[K]{}
	items, _, err := t.checkNode(t.root, true, walk)
	if err != nil {
		return err
	}
	if items != t.root.size {
		return fmt.Errorf("%w: root aggregate %d, counted %d keys",
			ErrSizeMismatch, t.root.size, items)
	}
	return nil
}

// inorderWalk carries the previously visited key across the traversal.
type inorderWalk[K any] struct {
	haveLast bool
	last     K
}

func (t *Tree[K, V]) checkNode(n *node[K, V], isRoot bool, walk *inorderWalk[K]) (items int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrStructureCorrupt)
	}
	if isRoot && n.parent != nil {
		return 0, 0, fmt.Errorf("%w: root carries a parent reference", ErrStructureCorrupt)
	}
	if !isRoot && len(n.keys) < t.minKeys() {
		return 0, 0, fmt.Errorf("%w: node holds %d keys, minimum is %d",
			ErrFillViolation, len(n.keys), t.minKeys())
	}
	if len(n.keys) > t.maxKeys() || len(n.vals) != len(n.keys) ||
		cap(n.keys) != t.maxKeys() || cap(n.vals) != t.maxKeys() {
		return 0, 0, fmt.Errorf("%w: key storage out of shape (%d keys, %d values, cap %d)",
			ErrStructureCorrupt, len(n.keys), len(n.vals), cap(n.keys))
	}
	seeKey := func(k K) error {
		if walk.haveLast && !t.cfg.Less(walk.last, k) {
			return fmt.Errorf("%w: key %v does not exceed its in-order predecessor %v",
				ErrOrderViolation, k, walk.last)
		}
		walk.haveLast, walk.last = true, k
		return nil
	}
	if n.isLeaf() {
		for _, k := range n.keys {
			if err := seeKey(k); err != nil {
				return 0, 0, err
			}
		}
		if n.size != len(n.keys) {
			return 0, 0, fmt.Errorf("%w: leaf size %d with %d keys",
				ErrSizeMismatch, n.size, len(n.keys))
		}
		return len(n.keys), 1, nil
	}
	if len(n.children) != len(n.keys)+1 || cap(n.children) != t.cfg.Order {
		return 0, 0, fmt.Errorf("%w: internal node with %d keys has %d children",
			ErrStructureCorrupt, len(n.keys), len(n.children))
	}
	var total, agg, childHeight int
	for i, c := range n.children {
		if c == nil {
			return 0, 0, fmt.Errorf("%w: nil child at slot %d", ErrStructureCorrupt, i)
		}
		if c.parent != n {
			return 0, 0, fmt.Errorf("%w: broken parent link at child slot %d", ErrStructureCorrupt, i)
		}
		cItems, cHeight, cErr := t.checkNode(c, false, walk)
		if cErr != nil {
			return 0, 0, cErr
		}
		total += cItems
		agg += c.size
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: leaves at differing depths", ErrStructureCorrupt)
		}
		if i < len(n.keys) {
			if err := seeKey(n.keys[i]); err != nil {
				return 0, 0, err
			}
		}
	}
	if n.size != len(n.keys)+agg {
		return 0, 0, fmt.Errorf("%w: node size %d, have %d keys plus %d below",
			ErrSizeMismatch, n.size, len(n.keys), agg)
	}
	return total + len(n.keys), childHeight + 1, nil
}
