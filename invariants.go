package sumtree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant for tests: it verifies the
// size arithmetic of every branch (width == left + right, with width/2
// positions on the left) and, when Config.Eq is set, that every cached
// aggregate equals the recomputation from its children with the pending
// modifier folded in.
func (t *Tree[V, M]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if err := t.cfg.validate(); err != nil {
		return err
	}
	if t.root == nil {
		return fmt.Errorf("%w: nil root", ErrInvalidConfig)
	}
	_, err := t.checkNode(t.root)
	return err
}

func (t *Tree[V, M]) checkNode(nd treeNode[V, M]) (width int, err error) {
	if nd == nil {
		return 0, fmt.Errorf("%w: nil node", ErrInvalidConfig)
	}
	switch n := nd.(type) {
	case *emptyNode[V, M]:
		return 0, nil
	case *unitNode[V, M]:
		return 1, nil
	case *branchNode[V, M]:
		if n.width < 2 {
			return 0, fmt.Errorf("%w: branch width %d below 2", ErrInvalidConfig, n.width)
		}
		lw, lerr := t.checkNode(n.left)
		if lerr != nil {
			return 0, lerr
		}
		rw, rerr := t.checkNode(n.right)
		if rerr != nil {
			return 0, rerr
		}
		if lw+rw != n.width {
			return 0, fmt.Errorf("%w: branch width %d != %d + %d",
				ErrInvalidConfig, n.width, lw, rw)
		}
		if lw != n.width/2 {
			return 0, fmt.Errorf("%w: left split %d, expected %d",
				ErrInvalidConfig, lw, n.width/2)
		}
		if t.cfg.Eq != nil {
			want := t.cfg.Modifiers.Apply(n.pending,
				t.cfg.Values.Add(t.sum(n.left), t.sum(n.right)))
			if !t.cfg.Eq(n.value, want) {
				return 0, fmt.Errorf("%w: cached aggregate does not match children",
					ErrInvalidConfig)
			}
		}
		return n.width, nil
	}
	return 0, fmt.Errorf("%w: unknown node variant %T", ErrInvalidConfig, nd)
}
