package sumtree

import "fmt"

// Config configures the algebra of a sum-tree.
type Config[V, M any] struct {
	// Values aggregates position values up the tree.
	Values Monoid[V]
	// Modifiers composes deferred range modifiers and applies them to values.
	Modifiers Applier[V, M]
	// Eq optionally compares values for equality. It is consulted only by
	// the invariant checker (Check); the tree itself never compares values.
	Eq func(left, right V) bool
}

func (cfg Config[V, M]) normalized() Config[V, M] {
	return cfg
}

func (cfg Config[V, M]) validate() error {
	cfg = cfg.normalized()
	if cfg.Values == nil {
		return fmt.Errorf("%w: value monoid is required", ErrInvalidConfig)
	}
	if cfg.Modifiers == nil {
		return fmt.Errorf("%w: modifier algebra is required", ErrInvalidConfig)
	}
	return nil
}
