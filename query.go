package sumtree

// Query returns the combined value over the intersection of the half-open
// range [from, to) with [0, Size()). Query is total and read-only: any
// portion of the range outside the tree contributes the value identity, an
// inverted range (from >= to) contributes the identity everywhere, and the
// tree is never restructured — pending modifiers are folded into partial
// results on the fly instead of being pushed down.
func (t *Tree[V, M]) Query(from, to int) V {
	if t.root == nil {
		return t.cfg.Values.Zero()
	}
	return t.queryNode(t.root, from, to)
}

// queryNode aggregates over [from, to) in nd's local frame [0, nd.size()).
func (t *Tree[V, M]) queryNode(nd treeNode[V, M], from, to int) V {
	switch n := nd.(type) {
	case *unitNode[V, M]:
		if from <= 0 && 0 < to {
			return n.value
		}
		return t.cfg.Values.Zero()
	case *branchNode[V, M]:
		if from <= 0 && n.width <= to {
			// Full cover: the cached aggregate already reflects the
			// pending modifier.
			return n.value
		}
		mid := n.width / 2
		var part V
		switch {
		case to <= mid:
			part = t.queryNode(n.left, from, to)
		case mid <= from:
			part = t.queryNode(n.right, from-mid, to-mid)
		default:
			part = t.cfg.Values.Add(
				t.queryNode(n.left, from, mid),
				t.queryNode(n.right, 0, to-mid),
			)
		}
		// The children's stored aggregates do not reflect this node's
		// pending modifier; distribution over Add lets us fold it into the
		// partial result without a structural push-down.
		return t.cfg.Modifiers.Apply(n.pending, part)
	}
	return t.cfg.Values.Zero()
}
