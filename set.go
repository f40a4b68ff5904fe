package ostree

import "cmp"

// Set is the set-only variant of Tree: keys without payloads, same
// order-statistics guarantees.
type Set[K any] struct {
	tree *Tree[K, struct{}]
}

// NewSet creates an empty set with validated configuration.
func NewSet[K any](cfg Config[K]) (*Set[K], error) {
	tree, err := New[K, struct{}](cfg)
	if err != nil {
		return nil, err
	}
	return &Set[K]{tree: tree}, nil
}

// NewOrderedSet creates an empty set over a naturally ordered key type.
func NewOrderedSet[K cmp.Ordered](order int) (*Set[K], error) {
	return NewSet(Config[K]{
		Order: order,
		Less:  cmp.Less[K],
	})
}

// Add inserts key into the set; adding a present key is a no-op.
func (s *Set[K]) Add(key K) {
	s.tree.Insert(key, struct{}{})
}

// Has reports whether key is in the set.
func (s *Set[K]) Has(key K) bool {
	return s.tree.Find(key).Valid()
}

// Delete removes key and reports whether it was present.
func (s *Set[K]) Delete(key K) bool {
	return s.tree.Remove(key)
}

// Rank returns the number of keys strictly less than key.
func (s *Set[K]) Rank(key K) int {
	return s.tree.Rank(key)
}

// Len returns the number of keys in the set. O(1).
func (s *Set[K]) Len() int {
	return s.tree.Len()
}

// ForEach walks keys in order; iteration stops early if fn returns false.
func (s *Set[K]) ForEach(fn func(key K) bool) {
	s.tree.ForEach(func(key K, _ struct{}) bool {
		return fn(key)
	})
}

// Check validates the underlying tree's structural invariants.
func (s *Set[K]) Check() error {
	return s.tree.Check()
}
