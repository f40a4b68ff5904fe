package ostree

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	dumpInnerColor = color.New(color.FgBlue)
	dumpLeafColor  = color.New(color.FgCyan)
)

// Dump writes a per-level listing of the tree's nodes to w (for debugging
// purposes). Each line carries the depth, the node kind ('n' internal, 'l'
// leaf), the key count, the subtree-size aggregate and the keys. Output is
// colorized per node kind; when w is a terminal, lines are capped at the
// terminal width.
func (t *Tree[K, V]) Dump(w io.Writer) {
	width := 0
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = tw
		}
	}
	level := []*node[K, V]{t.root}
	for depth := 0; len(level) > 0; depth++ {
		var next []*node[K, V]
		for _, n := range level {
			kind, c := "n", dumpInnerColor
			if n.isLeaf() {
				kind, c = "l", dumpLeafColor
			}
			line := fmt.Sprintf("d%d %s(%d|#%d): %v", depth, kind, len(n.keys), n.size, n.keys)
			if width > 0 && len(line) > width {
				line = line[:width-1] + "…"
			}
			c.Fprintln(w, line)
			next = append(next, n.children...)
		}
		level = next
	}
}
