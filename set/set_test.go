package set_test

import (
	"slices"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/go-collections/bag/set"
)

func TestNew(t *testing.T) {
	s := set.New("a", "b", "a")
	qt.Assert(t, qt.Equals(s.Len(), 2))
	qt.Assert(t, qt.IsTrue(s.Contains("a")))
	qt.Assert(t, qt.IsTrue(s.Contains("b")))
	qt.Assert(t, qt.IsFalse(s.Contains("c")))

	empty := set.New[int]()
	qt.Assert(t, qt.IsTrue(empty.IsEmpty()))
	qt.Assert(t, qt.Equals(empty.Len(), 0))
}

func TestAddRemove(t *testing.T) {
	s := set.New[string]()
	s.Add("x")
	s.Add("x")
	qt.Assert(t, qt.Equals(s.Len(), 1))

	s.Remove("x")
	qt.Assert(t, qt.IsFalse(s.Contains("x")))

	// Removing an absent member is a no-op.
	s.Remove("y")
	qt.Assert(t, qt.IsTrue(s.IsEmpty()))
}

func TestCollect(t *testing.T) {
	s := set.Collect(slices.Values([]int{1, 2, 2, 3}))
	qt.Assert(t, qt.IsTrue(s.Equal(set.New(1, 2, 3))))

	// Collect and All round trip.
	qt.Assert(t, qt.IsTrue(set.Collect(s.All()).Equal(s)))
}

var algebraTests = []struct {
	name                   string
	a, b                   set.Set[int]
	union, intersect, diff set.Set[int]
}{{
	name:      "disjoint",
	a:         set.New(1, 2),
	b:         set.New(3, 4),
	union:     set.New(1, 2, 3, 4),
	intersect: set.New[int](),
	diff:      set.New(1, 2),
}, {
	name:      "overlapping",
	a:         set.New(1, 2, 3),
	b:         set.New(2, 3, 4),
	union:     set.New(1, 2, 3, 4),
	intersect: set.New(2, 3),
	diff:      set.New(1),
}, {
	name:      "empty right",
	a:         set.New(1),
	b:         set.New[int](),
	union:     set.New(1),
	intersect: set.New[int](),
	diff:      set.New(1),
}, {
	name:      "empty left",
	a:         set.New[int](),
	b:         set.New(1),
	union:     set.New(1),
	intersect: set.New[int](),
	diff:      set.New[int](),
}}

func TestAlgebra(t *testing.T) {
	for _, test := range algebraTests {
		t.Run(test.name, func(t *testing.T) {
			aBefore, bBefore := set.Collect(test.a.All()), set.Collect(test.b.All())

			qt.Assert(t, qt.IsTrue(test.a.Union(test.b).Equal(test.union)))
			qt.Assert(t, qt.IsTrue(test.a.Intersect(test.b).Equal(test.intersect)))
			qt.Assert(t, qt.IsTrue(test.a.Diff(test.b).Equal(test.diff)))

			// Union and Intersect are commutative.
			qt.Assert(t, qt.IsTrue(test.a.Union(test.b).Equal(test.b.Union(test.a))))
			qt.Assert(t, qt.IsTrue(test.a.Intersect(test.b).Equal(test.b.Intersect(test.a))))

			// The combining operations leave their operands alone.
			qt.Assert(t, qt.IsTrue(test.a.Equal(aBefore)))
			qt.Assert(t, qt.IsTrue(test.b.Equal(bBefore)))
		})
	}
}

func TestString(t *testing.T) {
	qt.Assert(t, qt.Equals(set.New("b", "a").String(), "set[a b]"))
	qt.Assert(t, qt.Equals(set.New[string]().String(), "set[]"))
}
