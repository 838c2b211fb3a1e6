package sumtree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func cellConfig() Config[cell, int] {
	return Config[cell, int]{
		Values:    cellSum{},
		Modifiers: cellOffset{},
		Eq:        eqCell,
	}
}

func buildCells(t *testing.T, values ...int) *Tree[cell, int] {
	t.Helper()
	tree, err := Build(cellConfig(), len(values), func(pos int) cell {
		return oneCell(values[pos])
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return tree
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	_, err := Build(Config[cell, int]{}, 3, func(pos int) cell { return oneCell(pos) })
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	_, err = Build(Config[cell, int]{Values: cellSum{}}, 3, func(pos int) cell { return oneCell(pos) })
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing modifier algebra, got %v", err)
	}
}

func TestBuildRejectsNilInit(t *testing.T) {
	_, err := Build[cell, int](cellConfig(), 3, nil)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for nil init, got %v", err)
	}
}

func TestBuildEmpty(t *testing.T) {
	tree, err := Build[cell, int](cellConfig(), 0, nil)
	if err != nil {
		t.Fatalf("Build of length 0 failed: %v", err)
	}
	if tree.Size() != 0 || !tree.IsVoid() {
		t.Errorf("expected empty tree, got size %d", tree.Size())
	}
	if got := tree.Query(0, 10); got != (cell{}) {
		t.Errorf("query on empty tree = %v, expected identity", got)
	}
	if err := tree.Check(); err != nil {
		t.Errorf("empty tree fails invariant check: %v", err)
	}
}

func TestBuildNegativeLengthBehavesLikeEmpty(t *testing.T) {
	tree, err := Build[cell, int](cellConfig(), -4, nil)
	if err != nil {
		t.Fatalf("Build of negative length failed: %v", err)
	}
	if tree.Size() != 0 {
		t.Errorf("expected size 0, got %d", tree.Size())
	}
}

func TestBuildAggregates(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := buildCells(t, 1, 2, 3, 4, 5, 6, 7)
	if tree.Size() != 7 {
		t.Errorf("size = %d, expected 7", tree.Size())
	}
	if got := tree.Sum(); got != (cell{Sum: 28, N: 7}) {
		t.Errorf("Sum() = %v, expected {28 7}", got)
	}
	if err := tree.Check(); err != nil {
		t.Errorf("fresh tree fails invariant check: %v", err)
	}
}

func TestQuerySingletons(t *testing.T) {
	values := []int{5, -2, 9, 0, 11, 3}
	tree := buildCells(t, values...)
	for i, v := range values {
		if got := tree.At(i); got != oneCell(v) {
			t.Errorf("At(%d) = %v, expected %v", i, got, oneCell(v))
		}
		if got := tree.Query(i, i+1); got != oneCell(v) {
			t.Errorf("Query(%d, %d) = %v, expected %v", i, i+1, got, oneCell(v))
		}
	}
}

func TestQuerySubRanges(t *testing.T) {
	values := []int{5, -2, 9, 0, 11, 3, 7, 1}
	tree := buildCells(t, values...)
	for from := 0; from <= len(values); from++ {
		for to := from; to <= len(values); to++ {
			want := cell{}
			for _, v := range values[from:to] {
				want = cellSum{}.Add(want, oneCell(v))
			}
			if got := tree.Query(from, to); got != want {
				t.Errorf("Query(%d, %d) = %v, expected %v", from, to, got, want)
			}
		}
	}
}

func TestQueryIsTotal(t *testing.T) {
	tree := buildCells(t, 1, 2, 3)
	cases := []struct {
		from, to int
		want     cell
	}{
		{-5, -1, cell{}},              // fully left of the tree
		{7, 12, cell{}},               // fully right of the tree
		{2, 1, cell{}},                // inverted
		{1, 1, cell{}},                // empty
		{-5, 2, cell{Sum: 3, N: 2}},   // clipped left
		{1, 99, cell{Sum: 5, N: 2}},   // clipped right
		{-10, 10, cell{Sum: 6, N: 3}}, // clipped both
	}
	for _, c := range cases {
		if got := tree.Query(c.from, c.to); got != c.want {
			t.Errorf("Query(%d, %d) = %v, expected %v", c.from, c.to, got, c.want)
		}
	}
}

func TestValuesIterator(t *testing.T) {
	values := []int{4, 8, 15, 16, 23, 42}
	tree := buildCells(t, values...)
	next := 0
	for pos, v := range tree.Values() {
		if pos != next {
			t.Fatalf("iterator position %d, expected %d", pos, next)
		}
		if v != oneCell(values[pos]) {
			t.Errorf("value at %d = %v, expected %v", pos, v, oneCell(values[pos]))
		}
		next++
	}
	if next != len(values) {
		t.Errorf("iterator yielded %d values, expected %d", next, len(values))
	}
}

func TestValuesIteratorResolvesPendingModifiers(t *testing.T) {
	tree := buildCells(t, 1, 2, 3, 4).Apply(0, 4, 10) // lazy at the root
	want := []int{11, 12, 13, 14}
	for pos, v := range tree.Values() {
		if v != oneCell(want[pos]) {
			t.Errorf("value at %d = %v, expected %v", pos, v, oneCell(want[pos]))
		}
	}
}

func TestValuesIteratorStopsEarly(t *testing.T) {
	tree := buildCells(t, 1, 2, 3, 4, 5)
	count := 0
	for range tree.Values() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("iterator did not stop after break, yielded %d", count)
	}
}

// The worked example from the package documentation: integer sums with
// additive range offsets.
func TestIntSumScenario(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cfg := Config[int, int]{Values: intSum{}, Modifiers: intOffset{}}
	values := []int{1, 2, 3, 4, 5}
	t1, err := Build(cfg, len(values), func(pos int) int { return values[pos] })
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := t1.Query(1, 4); got != 9 {
		t.Errorf("Query(1, 4) = %d, expected 9", got)
	}
	t2 := t1.Apply(1, 3, 10) // conceptually [1, 12, 13, 4, 5]
	if got := t2.Query(0, 5); got != 35 {
		t.Errorf("Query(0, 5) on new version = %d, expected 35", got)
	}
	if got := t2.Query(2, 3); got != 13 {
		t.Errorf("Query(2, 3) on new version = %d, expected 13", got)
	}
	if got := t1.Query(1, 4); got != 9 {
		t.Errorf("old version changed: Query(1, 4) = %d, expected 9", got)
	}
}
