package ostree

import (
	"cmp"
	"fmt"
)

// DefaultOrder is the fanout used when a Config leaves Order at zero.
const DefaultOrder = 12

// Config configures an order-statistics B-tree.
type Config[K any] struct {
	// Order is the maximum number of children an internal node may have.
	// Keys per node are capped at Order-1. Zero selects DefaultOrder;
	// anything below 3 is rejected.
	Order int
	// Less is the strict order relation over keys. Keys a, b are considered
	// equal iff !Less(a, b) && !Less(b, a).
	Less func(a, b K) bool
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Order == 0 {
		cfg.Order = DefaultOrder
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Less == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	if cfg.Order < 3 {
		return fmt.Errorf("%w: order must be at least 3, have %d", ErrInvalidConfig, cfg.Order)
	}
	return nil
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[K, V]{cfg: cfg}
	t.root = t.newLeaf(nil)
	return t, nil
}

// NewOrdered creates an empty tree over a naturally ordered key type.
func NewOrdered[K cmp.Ordered, V any](order int) (*Tree[K, V], error) {
	return New[K, V](Config[K]{
		Order: order,
		Less:  cmp.Less[K],
	})
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}
