package ostree

import (
	"errors"
	"testing"
)

// buildSplitTree returns a tree of the given order whose root has split at
// least once, so that non-root nodes exist for corruption.
func buildSplitTree(t *testing.T, order, keys int) *Tree[int, string] {
	t.Helper()
	tree := makeIntTree(t, order)
	for k := 1; k <= keys; k++ {
		tree.Insert(k, "x")
	}
	if tree.root.isLeaf() {
		t.Fatalf("test setup: tree did not split")
	}
	mustCheck(t, tree, "before corruption")
	return tree
}

func TestCheckDetectsOrderViolation(t *testing.T) {
	tree := buildSplitTree(t, 6, 20)
	leaf := tree.root.children[0]
	leaf.keys[0], leaf.keys[1] = leaf.keys[1], leaf.keys[0]
	if err := tree.Check(); !errors.Is(err, ErrOrderViolation) {
		t.Fatalf("expected ErrOrderViolation, got %v", err)
	}
}

func TestCheckDetectsLeafSizeMismatch(t *testing.T) {
	tree := buildSplitTree(t, 6, 20)
	tree.root.children[0].size++
	if err := tree.Check(); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestCheckDetectsAggregateMismatch(t *testing.T) {
	tree := buildSplitTree(t, 6, 20)
	tree.root.size--
	if err := tree.Check(); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestCheckDetectsFillViolation(t *testing.T) {
	tree := buildSplitTree(t, 6, 20)
	leaf := tree.root.children[0]
	leaf.keys = truncate(leaf.keys, 1)
	leaf.vals = truncate(leaf.vals, 1)
	if err := tree.Check(); !errors.Is(err, ErrFillViolation) {
		t.Fatalf("expected ErrFillViolation, got %v", err)
	}
}

func TestCheckDetectsBrokenParentLink(t *testing.T) {
	tree := buildSplitTree(t, 6, 20)
	tree.root.children[1].parent = nil
	if err := tree.Check(); !errors.Is(err, ErrStructureCorrupt) {
		t.Fatalf("expected ErrStructureCorrupt, got %v", err)
	}
}

func TestCheckPassesAfterHeavyChurn(t *testing.T) {
	tree := makeIntTree(t, 5)
	for round := 0; round < 5; round++ {
		for k := 0; k < 200; k++ {
			tree.Insert(k^(round*37), "x")
		}
		for k := 0; k < 200; k += 2 {
			tree.Remove(k ^ (round * 37))
		}
		mustCheck(t, tree, "after churn round")
	}
}
