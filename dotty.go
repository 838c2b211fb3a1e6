package sumtree

import (
	"fmt"
	"io"
)

type nodeids[V, M any] struct {
	idTable map[treeNode[V, M]]int
	max     int
}

func newtable[V, M any]() nodeids[V, M] {
	return nodeids[V, M]{
		idTable: make(map[treeNode[V, M]]int),
		max:     1,
	}
}

func (ids nodeids[V, M]) find(node treeNode[V, M]) int {
	return ids.idTable[node]
}

func (ids *nodeids[V, M]) alloc(node treeNode[V, M]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of a tree version in Graphviz DOT
// format (for debugging purposes).
func Dot[V, M any](t *Tree[V, M], w io.Writer) {
	DotAll(w, t)
}

// DotAll outputs several tree versions into a single DOT graph, using one
// node id table for all of them. Subtrees that versions share structurally
// show up as shared graph nodes, which makes the persistence behavior of
// Apply directly visible.
func DotAll[V, M any](w io.Writer, versions ...*Tree[V, M]) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[V, M]()
	nodelist, edgelist := "", ""
	for i, t := range versions {
		if t == nil || t.root == nil {
			continue
		}
		rootID := t.dotNode(t.root, &ids, &nodelist, &edgelist)
		nodelist += fmt.Sprintf("\"v%d\" [label=\"version %d\",shape=plaintext];\n", i, i)
		edgelist += fmt.Sprintf("\"v%d\" -> \"%d\";\n", i, rootID)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func (t *Tree[V, M]) dotNode(nd treeNode[V, M], ids *nodeids[V, M], nodes, edges *string) int {
	if id := ids.find(nd); id > 0 {
		return id // already emitted, i.e. shared with an earlier version
	}
	id := ids.alloc(nd)
	switch n := nd.(type) {
	case *emptyNode[V, M]:
		*nodes += fmt.Sprintf("\"%d\" %s;\n", id, emptyNodeStyles())
	case *unitNode[V, M]:
		label := fmt.Sprintf("%v", n.value)
		*nodes += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(true))
	case *branchNode[V, M]:
		leftID := t.dotNode(n.left, ids, nodes, edges)
		rightID := t.dotNode(n.right, ids, nodes, edges)
		label := fmt.Sprintf("|%d|\\n%v ⊳ %v", n.width, n.pending, n.value)
		*nodes += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(false))
		*edges += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, leftID)
		*edges += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, rightID)
	}
	return id
}

func emptyNodeStyles() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
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
