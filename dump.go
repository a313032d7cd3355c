package boxtree

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes an indented textual representation of the tree to w.
//
// Inner nodes print as "O <bounds>", leaves as "L <bounds>: <payload>",
// one node per line, indented by depth. The output is diagnostic only and
// not a stable serialization format.
func (t *Tree[S, B, P]) Dump(w io.Writer) {
	inner := color.New(color.FgCyan)
	leaf := color.New(color.FgGreen)
	inner.DisableColor()
	leaf.DisableColor()
	t.dump(w, inner, leaf)
}

// Print writes the tree to stdout, colorizing node kinds when stdout is an
// interactive terminal.
func (t *Tree[S, B, P]) Print() {
	inner := color.New(color.FgCyan)
	leaf := color.New(color.FgGreen)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		inner.DisableColor()
		leaf.DisableColor()
	}
	t.dump(os.Stdout, inner, leaf)
}

func (t *Tree[S, B, P]) dump(w io.Writer, inner, leaf *color.Color) {
	if t.IsEmpty() {
		return
	}
	var walk func(n treeNode[S, B, P], level int)
	walk = func(n treeNode[S, B, P], level int) {
		indent := strings.Repeat("  ", level)
		if n.isLeaf() {
			l := n.(*leafNode[S, B, P])
			leaf.Fprintf(w, "%sL %v: %v\n", indent, l.box, l.data)
			return
		}
		in := n.(*innerNode[S, B, P])
		inner.Fprintf(w, "%sO %v\n", indent, in.box)
		walk(in.left, level+1)
		walk(in.right, level+1)
	}
	walk(t.root, 0)
}
