package sumtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// dumpPalette assigns a color to each node variant for console dumps.
type dumpPalette struct {
	branch *color.Color
	unit   *color.Color
	void   *color.Color
}

func makeDefaultPalette() dumpPalette {
	return dumpPalette{
		branch: color.New(color.FgBlue),
		unit:   color.New(color.FgGreen),
		void:   color.New(color.FgHiBlack),
	}
}

// Dump writes an indented representation of the tree's node structure to w
// (for debugging purposes). Output is colorized per node variant; colors
// degrade to plain text when w is not an interactive terminal.
func (t *Tree[V, M]) Dump(w io.Writer) {
	if t == nil || t.root == nil {
		return
	}
	t.dumpNode(t.root, 0, makeDefaultPalette(), w)
}

func (t *Tree[V, M]) dumpNode(nd treeNode[V, M], depth int, pal dumpPalette, w io.Writer) {
	indent := strings.Repeat("    ", depth)
	var err error
	switch n := nd.(type) {
	case *emptyNode[V, M]:
		_, err = pal.void.Fprintf(w, "%sempty\n", indent)
	case *unitNode[V, M]:
		_, err = pal.unit.Fprintf(w, "%sunit %v\n", indent, n.value)
	case *branchNode[V, M]:
		_, err = pal.branch.Fprintf(w, "%sbranch |%d| pending=%v value=%v\n",
			indent, n.width, n.pending, n.value)
		if err == nil {
			t.dumpNode(n.left, depth+1, pal, w)
			t.dumpNode(n.right, depth+1, pal, w)
		}
	default:
		err = fmt.Errorf("unknown node variant %T", nd)
	}
	if err != nil {
		T().Errorf("tree dump: %s", err.Error())
	}
}
