package sumtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Monoid defines how position values of type V aggregate across ranges.
//
// For values a, b, c, Add must be associative:
//
//	Add(Add(a, b), c) == Add(a, Add(b, c))
//
// and Zero must be the neutral element:
//
//	Add(Zero(), a) == a == Add(a, Zero())
//
// The tree relies on these laws but cannot check them; violations produce
// mathematically wrong aggregates rather than runtime faults. Validate
// concrete algebras with property-based tests.
type Monoid[V any] interface {
	Zero() V
	Add(left, right V) V
}

// Applier defines a modifier algebra M acting on values of type V. Modifiers
// describe deferred range updates: the tree records them at inner nodes and
// composes them until a later operation forces application.
//
// Zero is the no-op modifier, Compose the associative composition, with Zero
// as its neutral element. The composition order is a strict contract, not a
// convention:
//
//	Apply(Compose(next, prev), a) == Apply(next, Apply(prev, a))
//
// i.e. the right operand of Compose acts first. Many natural modifier
// algebras (assignment combined with addition, affine transforms) are
// order-sensitive, so do not assume symmetry.
//
// Apply must distribute over value aggregation:
//
//	Apply(m, Add(a, b)) == Add(Apply(m, a), Apply(m, b))
//
// This is what lets a query fold a node's still-pending modifier into an
// aggregated partial result instead of descending into the children.
type Applier[V, M any] interface {
	Zero() M
	Compose(next, prev M) M
	Apply(mod M, to V) V
}

// Pair combines two value (or modifier) types component-wise. A pair of
// lawful algebras forms a lawful algebra again (via PairMonoid and
// PairApplier), which enables composite aggregates like sum-and-count
// without extra plumbing.
type Pair[A, B any] struct {
	A A
	B B
}

// PairMonoid lifts two value monoids to pairs, component-wise.
type PairMonoid[A, B any] struct {
	Left  Monoid[A]
	Right Monoid[B]
}

// Zero returns the pair of component identities.
func (p PairMonoid[A, B]) Zero() Pair[A, B] {
	return Pair[A, B]{A: p.Left.Zero(), B: p.Right.Zero()}
}

// Add combines two pairs component-wise.
func (p PairMonoid[A, B]) Add(left, right Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{
		A: p.Left.Add(left.A, right.A),
		B: p.Right.Add(left.B, right.B),
	}
}

// PairApplier lifts two modifier algebras to pairs, component-wise.
type PairApplier[A, B, MA, MB any] struct {
	Left  Applier[A, MA]
	Right Applier[B, MB]
}

// Zero returns the pair of component no-op modifiers.
func (p PairApplier[A, B, MA, MB]) Zero() Pair[MA, MB] {
	return Pair[MA, MB]{A: p.Left.Zero(), B: p.Right.Zero()}
}

// Compose composes two modifier pairs component-wise, preserving the
// right-acts-first ordering in each component.
func (p PairApplier[A, B, MA, MB]) Compose(next, prev Pair[MA, MB]) Pair[MA, MB] {
	return Pair[MA, MB]{
		A: p.Left.Compose(next.A, prev.A),
		B: p.Right.Compose(next.B, prev.B),
	}
}

// Apply applies a modifier pair to a value pair component-wise.
func (p PairApplier[A, B, MA, MB]) Apply(mod Pair[MA, MB], to Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{
		A: p.Left.Apply(mod.A, to.A),
		B: p.Right.Apply(mod.B, to.B),
	}
}
