package boxtree

import (
	"fmt"
	"io"

	"github.com/npillmayer/boxtree/box"
)

type nodeids[S box.Scalar, B Box[S, B], P any] struct {
	idTable map[treeNode[S, B, P]]int
	max     int
}

func newtable[S box.Scalar, B Box[S, B], P any]() nodeids[S, B, P] {
	return nodeids[S, B, P]{
		idTable: make(map[treeNode[S, B, P]]int),
		max:     1,
	}
}

func (ids nodeids[S, B, P]) find(node treeNode[S, B, P]) int {
	return ids.idTable[node]
}

func (ids *nodeids[S, B, P]) alloc(node treeNode[S, B, P]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[S box.Scalar, B Box[S, B], P any](tree *Tree[S, B, P], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[S, B, P]()
	nodelist, edgelist := "", ""
	if !tree.IsEmpty() {
		var walk func(n treeNode[S, B, P])
		walk = func(n treeNode[S, B, P]) {
			ID := ids.alloc(n)
			styles := nodeDotStyles(n.isLeaf())
			if n.isLeaf() {
				leaf := n.(*leafNode[S, B, P])
				label := fmt.Sprintf("h=%d\\n%v\\n%v", n.Height(), leaf.box, leaf.data)
				nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
				return
			}
			inner := n.(*innerNode[S, B, P])
			nodelist += fmt.Sprintf("\"%d\" [label=\"h=%d\" %s];\n", ID, n.Height(), styles)
			walk(inner.left)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(inner.left))
			walk(inner.right)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(inner.right))
		}
		walk(tree.root)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
