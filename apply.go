package sumtree

// Apply returns a new tree version with mod applied to every position in the
// intersection of the half-open range [from, to) with [0, Size()). The
// receiver is left untouched and remains fully queryable; both versions
// share every subtree the update did not visit.
//
// Apply mirrors Query's range policy: portions outside the tree are
// unaffected and an inverted range is a no-op (it may still rebuild nodes
// along the descent, but leaves every aggregate unchanged).
func (t *Tree[V, M]) Apply(from, to int, mod M) *Tree[V, M] {
	version := &Tree[V, M]{cfg: t.cfg}
	if t.root == nil {
		version.root = &emptyNode[V, M]{}
		return version
	}
	version.root = t.applyNode(t.root, from, to, mod)
	return version
}

// applyNode rebuilds the part of nd's subtree that [from, to) touches, in
// nd's local frame. Untouched subtrees are returned as shared pointers.
func (t *Tree[V, M]) applyNode(nd treeNode[V, M], from, to int, mod M) treeNode[V, M] {
	switch n := nd.(type) {
	case *unitNode[V, M]:
		if from <= 0 && 0 < to {
			return &unitNode[V, M]{value: t.cfg.Modifiers.Apply(mod, n.value)}
		}
		return n
	case *branchNode[V, M]:
		if from <= 0 && n.width <= to {
			// Full cover: record mod lazily. The aggregate changes now, the
			// children only inherit the composed obligation, and both child
			// pointers are reused as-is.
			return &branchNode[V, M]{
				width:   n.width,
				value:   t.cfg.Modifiers.Apply(mod, n.value),
				pending: t.cfg.Modifiers.Compose(mod, n.pending),
				left:    n.left,
				right:   n.right,
			}
		}
		mid := n.width / 2
		// Partial cover: push the pending modifier one level into both
		// children first, so it is neither lost in rebuilt children nor
		// duplicated in kept ones.
		left := t.applied(n.left, n.pending)
		right := t.applied(n.right, n.pending)
		// Translations into the right child's frame subtract mid; the
		// bounds are clamped against mid since the range may start before
		// or extend past the midpoint.
		if from < mid {
			left = t.applyNode(left, from, min(to, mid), mod)
		}
		if mid < to {
			right = t.applyNode(right, max(from, mid)-mid, to-mid, mod)
		}
		return &branchNode[V, M]{
			width:   n.width,
			pending: t.cfg.Modifiers.Zero(),
			value:   t.cfg.Values.Add(t.sum(left), t.sum(right)),
			left:    left,
			right:   right,
		}
	}
	return nd
}
