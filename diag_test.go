package ostree

import (
	"strings"
	"testing"
)

func TestDotOutputShape(t *testing.T) {
	tree := makeIntTree(t, 4)
	for k := 1; k <= 15; k++ {
		tree.Insert(k, "x")
	}
	var sb strings.Builder
	tree.Dot(&sb)
	out := sb.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("DOT output is not a digraph:\n%s", out)
	}
	if !strings.Contains(out, "->") {
		t.Fatalf("DOT output of a split tree has no edges:\n%s", out)
	}
	if !strings.Contains(out, "shape=box") || !strings.Contains(out, "shape=circle") {
		t.Fatalf("DOT output misses leaf/internal styles:\n%s", out)
	}
}

func TestDumpListsAllLevels(t *testing.T) {
	tree := makeIntTree(t, 3)
	for k := 1; k <= 10; k++ {
		tree.Insert(k, "x")
	}
	var sb strings.Builder
	tree.Dump(&sb)
	out := sb.String()
	for depth := 0; depth < tree.Height(); depth++ {
		marker := "d" + string(rune('0'+depth)) + " "
		if !strings.Contains(out, marker) {
			t.Fatalf("dump misses depth %d:\n%s", depth, out)
		}
	}
	if !strings.Contains(out, "l(") && !strings.Contains(out, " l(") {
		t.Fatalf("dump shows no leaf lines:\n%s", out)
	}
}
