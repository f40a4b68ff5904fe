package ostree

import (
	"errors"
	"sort"
	"testing"
)

func TestSetRejectsInvalidConfig(t *testing.T) {
	_, err := NewSet(Config[int]{Order: 5})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSetAddHasDelete(t *testing.T) {
	set, err := NewOrderedSet[string](4)
	if err != nil {
		t.Fatalf("failed to create set: %v", err)
	}
	words := []string{"pear", "apple", "quince", "fig", "medlar", "cherry"}
	for _, w := range words {
		set.Add(w)
	}
	set.Add("fig") // duplicate, no-op
	if set.Len() != len(words) {
		t.Fatalf("expected %d members, have %d", len(words), set.Len())
	}
	if !set.Has("medlar") || set.Has("durian") {
		t.Fatalf("membership answers are wrong")
	}
	if !set.Delete("pear") || set.Delete("pear") {
		t.Fatalf("Delete did not report presence correctly")
	}
	if err := set.Check(); err != nil {
		t.Fatalf("set invariants violated: %v", err)
	}
}

func TestSetRankAndOrder(t *testing.T) {
	set, err := NewOrderedSet[int](3)
	if err != nil {
		t.Fatalf("failed to create set: %v", err)
	}
	for _, k := range []int{50, 10, 40, 20, 30} {
		set.Add(k)
	}
	var got []int
	set.ForEach(func(k int) bool {
		got = append(got, k)
		return true
	})
	if !sort.IntsAreSorted(got) || len(got) != 5 {
		t.Fatalf("set walk yielded %v", got)
	}
	if r := set.Rank(30); r != 2 {
		t.Fatalf("Rank(30) = %d, want 2", r)
	}
	if r := set.Rank(35); r != 3 {
		t.Fatalf("Rank(35) = %d, want 3", r)
	}
}
