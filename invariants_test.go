package sumtree

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckNilTree(t *testing.T) {
	var tree *Tree[cell, int]
	if err := tree.Check(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for nil tree, got %v", err)
	}
}

func TestCheckZeroValueTree(t *testing.T) {
	tree := &Tree[cell, int]{}
	if err := tree.Check(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for zero-value tree, got %v", err)
	}
}

func TestCheckDetectsCorruptedWidth(t *testing.T) {
	tree := buildCells(t, 1, 2, 3, 4)
	branch := tree.root.(*branchNode[cell, int])
	branch.width = 5 // corrupt the size bookkeeping
	err := tree.Check()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), "width") {
		t.Errorf("expected a width complaint, got %q", err.Error())
	}
}

func TestCheckDetectsStaleAggregate(t *testing.T) {
	tree := buildCells(t, 1, 2, 3, 4)
	branch := tree.root.(*branchNode[cell, int])
	branch.value = cell{Sum: 999, N: 4} // no longer matches the children
	if err := tree.Check(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for stale aggregate, got %v", err)
	}
}

func TestCheckAcceptsPendingModifiers(t *testing.T) {
	// A lazily updated tree is structurally valid: the cached aggregate
	// reflects the pending modifier even though the children do not.
	tree := buildCells(t, 1, 2, 3, 4, 5, 6).Apply(0, 6, 7).Apply(2, 3, 1)
	if err := tree.Check(); err != nil {
		t.Errorf("lazily updated tree fails invariant check: %v", err)
	}
}
