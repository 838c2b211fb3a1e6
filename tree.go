package sumtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
)

// Tree is a persistent sum-tree over a fixed-length sequence of values of
// type V, with lazily propagated range modifiers of type M.
//
// A tree is created once with Build (or New, for the empty sequence) and is
// immutable from then on: Query never changes it, and Apply returns a new,
// independent version. Callers are free to retain any number of versions;
// versions share all subtrees that no update in between has touched.
//
// Methods that take positions use absolute indices into [0, Size()) and
// half-open ranges. Range arguments are never validated — portions outside
// the tree contribute the value identity and inverted ranges act as empty.
type Tree[V, M any] struct {
	cfg  Config[V, M]
	root treeNode[V, M]
}

// New creates a tree over the empty sequence with validated configuration.
func New[V, M any](cfg Config[V, M]) (*Tree[V, M], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[V, M]{cfg: cfg, root: &emptyNode[V, M]{}}, nil
}

// Build materializes a tree of the given length, with init supplying the
// value for each position in [0, length). A negative length behaves like 0.
//
// Build recursively splits the index range at the midpoint and aggregates
// bottom-up, so init is called exactly once per position, in index order.
// Freshly built branches carry the identity modifier.
func Build[V, M any](cfg Config[V, M], length int, init func(pos int) V) (*Tree[V, M], error) {
	t, err := New[V, M](cfg)
	if err != nil {
		return nil, err
	}
	if length <= 0 {
		return t, nil
	}
	if init == nil {
		return nil, fmt.Errorf("%w: init function is required", ErrInvalidConfig)
	}
	t.root = t.buildNode(0, length, init)
	return t, nil
}

// buildNode constructs the subtree for positions [offset, offset+n).
func (t *Tree[V, M]) buildNode(offset, n int, init func(pos int) V) treeNode[V, M] {
	switch n {
	case 0:
		return &emptyNode[V, M]{}
	case 1:
		return &unitNode[V, M]{value: init(offset)}
	}
	mid := n / 2
	left := t.buildNode(offset, mid, init)
	right := t.buildNode(offset+mid, n-mid, init)
	return &branchNode[V, M]{
		width:   n,
		pending: t.cfg.Modifiers.Zero(),
		value:   t.cfg.Values.Add(t.sum(left), t.sum(right)),
		left:    left,
		right:   right,
	}
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[V, M]) Config() Config[V, M] {
	return t.cfg
}

// Size returns the number of positions in the sequence. O(1).
func (t *Tree[V, M]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.size()
}

// IsVoid reports whether the tree covers no positions.
func (t *Tree[V, M]) IsVoid() bool {
	return t.Size() == 0
}

// Sum returns the aggregate over the whole sequence. O(1).
func (t *Tree[V, M]) Sum() V {
	if t.root == nil {
		return t.cfg.Values.Zero()
	}
	return t.sum(t.root)
}

// At returns the value at a single position, identity if pos is out of
// bounds.
func (t *Tree[V, M]) At(pos int) V {
	return t.Query(pos, pos+1)
}

// Values returns an in-order iterator over the materialized per-position
// values of this version. Pending modifiers are resolved on the way down;
// the tree itself is not restructured.
func (t *Tree[V, M]) Values() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		if t == nil || t.root == nil {
			return
		}
		t.eachValue(t.root, 0, t.cfg.Modifiers.Zero(), yield)
	}
}

// eachValue walks nd's subtree in index order, carrying the composition of
// all ancestor modifiers still pending above nd.
func (t *Tree[V, M]) eachValue(nd treeNode[V, M], offset int, pending M, yield func(int, V) bool) bool {
	switch n := nd.(type) {
	case *unitNode[V, M]:
		return yield(offset, t.cfg.Modifiers.Apply(pending, n.value))
	case *branchNode[V, M]:
		// Ancestor modifiers act after this node's own pending one.
		down := t.cfg.Modifiers.Compose(pending, n.pending)
		if !t.eachValue(n.left, offset, down, yield) {
			return false
		}
		return t.eachValue(n.right, offset+n.left.size(), down, yield)
	}
	return true
}
