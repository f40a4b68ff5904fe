/*
Package ostree provides an order-statistics B-tree: a B-tree over unique keys
which, besides the usual map operations, answers rank queries ("how many keys
are smaller than this one?") in logarithmic time.

Every node carries a subtree-size counter which is maintained through all
structural mutations (split, merge, borrow). This makes

  - Rank(key) an O(log n) descent accumulating left-sibling subtree sizes,
  - Len() an O(1) read of the root's aggregate.

The tree is an in-memory, single-threaded structure. Nodes have a fixed
capacity determined by the tree's order (maximum fanout), which keeps node
storage compact and cache behaviour predictable. Callers needing concurrent
access must wrap every public operation in a lock of their own; no internal
locking is provided or implied.

Typical usage:

	tree, err := ostree.NewOrdered[int, string](0) // 0 selects DefaultOrder
	if err != nil { … }
	tree.Insert(7, "seven")
	if cur := tree.Find(7); cur.Valid() {
		_ = cur.Value() // "seven"
	}
	r := tree.Rank(7) // number of keys < 7

Current status:
  - generic tree with configurable order and comparator,
  - insert with pre-emptive split-on-full descent,
  - delete with proactive fill (borrow/merge) and pred/succ substitution,
  - rank and O(1) size from subtree-size augmentation,
  - invariant checker (Check), used as a test oracle,
  - Graphviz (Dot) and console (Dump) diagnostics,
  - set-only variant (Set).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2023–24, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package ostree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ostree'
func tracer() tracing.Trace {
	return tracing.Select("ostree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
