package ostree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(n *node[K, V]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes). Node labels show the keys and the subtree-size
// aggregate.
func (t *Tree[K, V]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
		ID := ids.alloc(n)
		label := fmt.Sprintf("%s\\n#%d", dotKeyList(n.keys), n.size)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n.isLeaf()))
		if n.isLeaf() {
			return
		}
		for _, c := range n.children {
			walk(c)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(c))
		}
	}
	walk(t.root)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func dotKeyList[K any](keys []K) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%v", k))
	}
	return strings.Join(parts, " ")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}
