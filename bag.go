// Package bag implements a persistent multiset: a collection that
// holds a non-negative number of copies of each distinct item.
//
// A Bag is an immutable value. Every operation that looks like a
// mutation (Insert, Remove, Update, Merge, ...) returns a new Bag and
// leaves its receiver untouched, so a Bag may be freely shared,
// including across goroutines, without synchronization.
//
// Internally a bag is a mapping from item to a strictly positive
// count. An item whose count would drop to zero or below is removed
// from the mapping entirely, so Contains and key presence always
// agree. Counts are held in ints; arithmetic on them wraps the way
// Go ints do, which is only a concern for counts near the int limit.
//
// The zero Bag is an empty bag ready to use.
package bag

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/go-collections/bag/set"
)

// Bag holds some number of copies of each of a set of items.
type Bag[T comparable] struct {
	// counts maps each item to its copy count.
	// Every stored count is >= 1 (but see FromMap).
	counts map[T]int
}

// New returns an empty bag.
func New[T comparable]() Bag[T] {
	return Bag[T]{}
}

// Of returns a bag holding the given items, where the count of each
// distinct item is the number of times it appears in the arguments.
// The argument order does not affect the result.
func Of[T comparable](items ...T) Bag[T] {
	var b Builder[T]
	for _, x := range items {
		b.Insert(1, x)
	}
	return b.Bag()
}

// Collect returns a bag holding all the items produced by it,
// counting duplicates just as [Of] does.
func Collect[T comparable](it iter.Seq[T]) Bag[T] {
	var b Builder[T]
	for x := range it {
		b.Insert(1, x)
	}
	return b.Bag()
}

// FromMap returns a bag whose contents are a copy of m, mapping
// each item to its copy count.
//
// Callers are expected to supply positive counts only. FromMap does
// not strip or reject entries with a zero or negative count: such
// entries are copied verbatim and yield a bag in which Contains and
// key presence can disagree. Use [Bag.Update] or a [Builder] when the
// input needs sanitizing.
func FromMap[T comparable](m map[T]int) Bag[T] {
	if len(m) == 0 {
		return Bag[T]{}
	}
	return Bag[T]{counts: maps.Clone(m)}
}

// Insert returns a bag with n more copies of x than b.
//
// Inserting zero copies returns b unchanged. Inserting a negative
// number of copies is the same as removing that many: Insert(-n, x)
// and Remove(n, x) are interchangeable.
func (b Bag[T]) Insert(n int, x T) Bag[T] {
	switch {
	case n == 0:
		return b
	case n < 0:
		return b.Remove(-n, x)
	}
	counts := make(map[T]int, len(b.counts)+1)
	maps.Copy(counts, b.counts)
	counts[x] += n
	return Bag[T]{counts: counts}
}

// Remove returns a bag with up to n fewer copies of x than b.
// The sign of n is ignored: removing -n copies removes n.
//
// If b holds n or fewer copies of x, the result holds none at all;
// removing an absent item is a no-op.
func (b Bag[T]) Remove(n int, x T) Bag[T] {
	if n < 0 {
		n = -n
	}
	cur, ok := b.counts[x]
	if !ok || n == 0 {
		return b
	}
	counts := maps.Clone(b.counts)
	if n >= cur {
		delete(counts, x)
	} else {
		counts[x] = cur - n
	}
	return Bag[T]{counts: counts}
}

// RemoveAll returns a bag with no copies of x,
// whatever the count in b.
func (b Bag[T]) RemoveAll(x T) Bag[T] {
	if _, ok := b.counts[x]; !ok {
		return b
	}
	counts := maps.Clone(b.counts)
	delete(counts, x)
	return Bag[T]{counts: counts}
}

// Update returns a bag in which the count of x is f(n), where n is
// the count of x in b (zero when absent). The new count replaces the
// old one outright; it is not added to it. If f returns zero or a
// negative number, x is removed entirely, as with [Bag.RemoveAll].
func (b Bag[T]) Update(x T, f func(int) int) Bag[T] {
	n := f(b.counts[x])
	if n <= 0 {
		return b.RemoveAll(x)
	}
	counts := make(map[T]int, len(b.counts)+1)
	maps.Copy(counts, b.counts)
	counts[x] = n
	return Bag[T]{counts: counts}
}

// Copies returns the number of copies of x held in b,
// or zero if there are none.
func (b Bag[T]) Copies(x T) int {
	return b.counts[x]
}

// Contains reports whether b holds at least one copy of x.
func (b Bag[T]) Contains(x T) bool {
	return b.counts[x] > 0
}

// IsEmpty reports whether b holds no items at all.
// It takes constant time, unlike [Bag.Size].
func (b Bag[T]) IsEmpty() bool {
	return len(b.counts) == 0
}

// Size returns the total number of items in b, counting every copy.
// It takes time proportional to the number of distinct items.
func (b Bag[T]) Size() int {
	n := 0
	for _, c := range b.counts {
		n += c
	}
	return n
}

// Distinct returns the number of distinct items in b,
// ignoring their counts. It takes constant time.
func (b Bag[T]) Distinct() int {
	return len(b.counts)
}

// Equal reports whether b and b2 hold exactly the same items
// with the same counts.
func (b Bag[T]) Equal(b2 Bag[T]) bool {
	return maps.Equal(b.counts, b2.counts)
}

// Intersect returns a bag holding the items present in both b and b2,
// each with the smaller of its two counts. Intersect is commutative
// and associative; intersecting with the empty bag yields the empty
// bag.
func (b Bag[T]) Intersect(b2 Bag[T]) Bag[T] {
	// Walk the bag with fewer distinct items; everything absent
	// from it is absent from the result anyway.
	small, large := b, b2
	if len(small.counts) > len(large.counts) {
		small, large = large, small
	}
	var nb Builder[T]
	for x, n := range small.counts {
		if n2 := large.counts[x]; n2 > 0 {
			nb.Insert(min(n, n2), x)
		}
	}
	return nb.Bag()
}

// Merge returns a bag holding the items present in either b or b2,
// each with the sum of its two counts. Merge is commutative and
// associative, and the empty bag is its identity.
func (b Bag[T]) Merge(b2 Bag[T]) Bag[T] {
	var nb Builder[T]
	for x, n := range b.counts {
		nb.Insert(n, x)
	}
	for x, n := range b2.counts {
		nb.Insert(n, x)
	}
	return nb.Bag()
}

// Subtract returns a bag derived from b by removing, for every item
// in b2, as many copies as b2 holds. Counts never go below zero:
// an item with more copies in b2 than in b is simply absent from the
// result. Items only in b are unaffected; items only in b2 have no
// effect. Subtract is not commutative.
func (b Bag[T]) Subtract(b2 Bag[T]) Bag[T] {
	nb := builderFrom(b)
	for x, n := range b2.counts {
		nb.Remove(n, x)
	}
	return nb.Bag()
}

// Filter returns a bag holding only the items of b for which
// f(item, count) is true, with their counts unchanged.
func (b Bag[T]) Filter(f func(x T, n int) bool) Bag[T] {
	var nb Builder[T]
	for x, n := range b.counts {
		if f(x, n) {
			nb.Insert(n, x)
		}
	}
	return nb.Bag()
}

// Fold reduces b to a single value by calling f once per distinct
// item with the accumulator, the item and its count. Items are
// visited in unspecified order, so f must be insensitive to it
// (summing, merging into a map, and the like).
func Fold[T comparable, A any](b Bag[T], acc A, f func(acc A, x T, n int) A) A {
	for x, n := range b.counts {
		acc = f(acc, x, n)
	}
	return acc
}

// Map returns a bag obtained by replacing every item x of b with
// f(x, count). When several items map to the same result, their
// counts are summed rather than one overwriting another.
func Map[T, U comparable](b Bag[T], f func(x T, n int) U) Bag[U] {
	var nb Builder[U]
	for x, n := range b.counts {
		nb.Insert(n, f(x, n))
	}
	return nb.Bag()
}

// All returns an iterator over the (item, count) pairs of b, one pair
// per distinct item, in unspecified order.
func (b Bag[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		for x, n := range b.counts {
			if !yield(x, n) {
				return
			}
		}
	}
}

// Items returns an iterator over the items of b with each item
// yielded once per copy, in unspecified order (all copies of an item
// are adjacent).
func (b Bag[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x, n := range b.counts {
			for range n {
				if !yield(x) {
					return
				}
			}
		}
	}
}

// ToMap returns the contents of b as a fresh map from item to count.
// The result never contains a non-positive count (assuming b was not
// built from an unsanitized [FromMap] input) and never aliases b.
func (b Bag[T]) ToMap() map[T]int {
	counts := make(map[T]int, len(b.counts))
	maps.Copy(counts, b.counts)
	return counts
}

// ToSet returns the set of distinct items in b, discarding counts.
func (b Bag[T]) ToSet() set.Set[T] {
	return set.Collect(maps.Keys(b.counts))
}

// String returns a deterministic rendering of b of the form
// bag[a:2 b:1], with entries ordered by the item's formatted form.
func (b Bag[T]) String() string {
	entries := make([]string, 0, len(b.counts))
	for x, n := range b.counts {
		entries = append(entries, fmt.Sprintf("%v:%d", x, n))
	}
	slices.Sort(entries)
	return "bag[" + strings.Join(entries, " ") + "]"
}
