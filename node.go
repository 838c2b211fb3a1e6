package sumtree

// The tree consists of three immutable node variants. Coordinates are
// node-local: every node treats its own range as [0, size), and recursive
// operations translate absolute bounds into a child's frame by subtracting
// the left child's width. No node is ever modified after construction;
// "mutation" always builds a new node and relinks, so subtrees can be shared
// freely between tree versions.

type treeNode[V, M any] interface {
	size() int
}

// emptyNode represents a zero-length range.
type emptyNode[V, M any] struct{}

// unitNode represents exactly one position and carries its value.
type unitNode[V, M any] struct {
	value V
}

// branchNode represents a range of two or more positions, split at width/2.
type branchNode[V, M any] struct {
	// width is the number of positions covered by this subtree.
	width int
	// pending is a modifier not yet pushed into the children.
	pending M
	// value is the aggregate over the whole range, already reflecting
	// pending (the children's stored state does not).
	value V
	// left and right are shared between versions, never owned exclusively.
	left, right treeNode[V, M]
}

func (n *emptyNode[V, M]) size() int  { return 0 }
func (n *unitNode[V, M]) size() int   { return 1 }
func (n *branchNode[V, M]) size() int { return n.width }

// sum returns a node's aggregate value, Zero for the empty node. O(1).
func (t *Tree[V, M]) sum(nd treeNode[V, M]) V {
	switch n := nd.(type) {
	case *unitNode[V, M]:
		return n.value
	case *branchNode[V, M]:
		return n.value
	}
	return t.cfg.Values.Zero()
}

// applied pushes modifier mod one level into nd: the returned node's
// aggregate reflects mod immediately, while a branch merely composes mod
// into its pending modifier without descending. Children stay shared. This
// is the single lazy step used to move a parent's pending modifier down
// before recursing further.
func (t *Tree[V, M]) applied(nd treeNode[V, M], mod M) treeNode[V, M] {
	switch n := nd.(type) {
	case *unitNode[V, M]:
		return &unitNode[V, M]{value: t.cfg.Modifiers.Apply(mod, n.value)}
	case *branchNode[V, M]:
		return &branchNode[V, M]{
			width:   n.width,
			value:   t.cfg.Modifiers.Apply(mod, n.value),
			pending: t.cfg.Modifiers.Compose(mod, n.pending),
			left:    n.left,
			right:   n.right,
		}
	}
	return nd
}
