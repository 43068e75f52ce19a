package binomial

import (
	"fmt"
	"io"
)

type nodeids[K any] struct {
	idTable map[*node[K]]int
	max     int
}

func newtable[K any]() nodeids[K] {
	return nodeids[K]{
		idTable: make(map[*node[K]]int),
		max:     1,
	}
}

func (ids nodeids[K]) find(n *node[K]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K]) alloc(n *node[K]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Heap2Dot outputs the internal structure of a heap in Graphviz DOT format
// (for debugging purposes). Tree edges are solid, the root list is drawn with
// dashed edges.
func Heap2Dot[K any](h *Heap[K], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K]()
	nodelist, edgelist, rootrank := "", "", ""
	err := h.each(func(n *node[K], depth int) error {
		ID := ids.alloc(n)
		styles := nodeDotStyles(n.parent == nil)
		label := fmt.Sprintf("%v", n.key())
		if n.parent == nil {
			label = fmt.Sprintf("%v\\nB%d", n.key(), n.degree)
			rootrank += fmt.Sprintf(" \"%d\";", ID)
			if n.rightSib != nil {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [style=dashed];\n", ID, ids.alloc(n.rightSib))
			}
		}
		for c := n.leftChild; c != nil; c = c.rightSib {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(c))
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
		return nil
	})
	if err != nil {
		T().Errorf("heap DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	if rootrank != "" {
		io.WriteString(w, "{ rank=same;"+rootrank+" }\n")
	}
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isroot bool) string {
	s := ",style=filled"
	if isroot {
		s += ",shape=box,fillcolor=\"#a3d7e4\""
	} else {
		s += ",color=black,fillcolor=white"
		s += ",shape=circle"
	}
	return s
}
