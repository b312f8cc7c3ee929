// Package anybag implements the same persistent multiset as the
// parent bag package for item types that aren't necessarily
// comparable, using a caller-defined hash and equivalence relation
// instead of the built-in map key semantics.
package anybag

import (
	"hash/maphash"
	"iter"
	"maps"
	"slices"
)

// A Hasher defines a hash function and an equivalence relation over
// values of type T.
//
// Hash must write a hash of its argument to the provided
// *maphash.Hash, and Equal must report whether two values are
// equivalent. Hash and Equal must be consistent: if Equal(x, y) is
// true then Hash must produce the same output for x and y.
type Hasher[T any] interface {
	Hash(*maphash.Hash, T)
	Equal(x, y T) bool
}

// ComparableHasher is an implementation of [Hasher] for comparable
// types. Its Equal(x, y) method is consistent with x == y.
type ComparableHasher[T comparable] struct {
	_ [0]func(T) // disallow comparison, and conversion between ComparableHasher[X] and ComparableHasher[Y]
}

func (ComparableHasher[T]) Hash(h *maphash.Hash, v T) { maphash.WriteComparable(h, v) }
func (ComparableHasher[T]) Equal(x, y T) bool         { return x == y }

// Bag holds some number of copies of each of a set of items, with
// item identity determined by a [Hasher] rather than by ==.
//
// Like the parent package's Bag it is a persistent value: every
// mutating-looking method returns a new Bag sharing untouched
// structure with the old one, and no method ever alters its receiver.
// Use [New] to create one.
type Bag[T any, H Hasher[T]] struct {
	hasher H
	seed   maphash.Seed

	// table maps hash to bucket. Buckets hold entries with a
	// copy count >= 1 and are never mutated in place; a write
	// replaces the touched bucket wholesale so older Bag values
	// keep seeing their own version.
	table    map[uint64][]entry[T]
	distinct int
}

// entry is one distinct item and its copy count within a bucket.
type entry[T any] struct {
	item   T
	copies int
}

// New returns a new empty Bag using h to hash and compare items.
func New[T any, H Hasher[T]](h H) Bag[T, H] {
	return Bag[T, H]{
		hasher: h,
		seed:   maphash.MakeSeed(),
	}
}

func (b Bag[T, H]) hashOf(x T) uint64 {
	var h maphash.Hash
	h.SetSeed(b.seed)
	b.hasher.Hash(&h, x)
	return h.Sum64()
}

// find locates x, returning its hash, bucket index and whether it is
// present. The hash is only valid when the bag has a seed, which is
// guaranteed whenever the table is non-empty.
func (b Bag[T, H]) find(x T) (hv uint64, i int, ok bool) {
	if len(b.table) == 0 {
		return 0, -1, false
	}
	hv = b.hashOf(x)
	for i, e := range b.table[hv] {
		if b.hasher.Equal(x, e.item) {
			return hv, i, true
		}
	}
	return hv, -1, false
}

// seeded returns b with a usable hash seed, for write paths that may
// start from a zero Bag (which has none).
func (b Bag[T, H]) seeded() Bag[T, H] {
	if b.seed == (maphash.Seed{}) {
		b.seed = maphash.MakeSeed()
	}
	return b
}

// setCount returns a bag in which the count of x is exactly n (n > 0),
// whatever it was in b.
func (b Bag[T, H]) setCount(x T, n int) Bag[T, H] {
	nb := b.seeded()
	hv, i, ok := nb.find(x)
	if len(b.table) == 0 {
		hv = nb.hashOf(x)
	}
	table := maps.Clone(nb.table)
	if table == nil {
		table = make(map[uint64][]entry[T])
	}
	bucket := slices.Clone(table[hv])
	if ok {
		bucket[i].copies = n
	} else {
		bucket = append(bucket, entry[T]{item: x, copies: n})
		nb.distinct++
	}
	table[hv] = bucket
	nb.table = table
	return nb
}

// Insert returns a bag with n more copies of x than b. Zero is a
// no-op and a negative n removes, as with the parent package.
func (b Bag[T, H]) Insert(n int, x T) Bag[T, H] {
	switch {
	case n == 0:
		return b
	case n < 0:
		return b.Remove(-n, x)
	}
	return b.setCount(x, b.Copies(x)+n)
}

// Remove returns a bag with up to |n| fewer copies of x than b,
// removing the item entirely when its count is exhausted.
func (b Bag[T, H]) Remove(n int, x T) Bag[T, H] {
	if n < 0 {
		n = -n
	}
	hv, i, ok := b.find(x)
	if !ok || n == 0 {
		return b
	}
	if cur := b.table[hv][i].copies; n < cur {
		return b.setCount(x, cur-n)
	}
	return b.deleteEntry(hv, i)
}

// RemoveAll returns a bag with no copies of x, whatever the count in b.
func (b Bag[T, H]) RemoveAll(x T) Bag[T, H] {
	hv, i, ok := b.find(x)
	if !ok {
		return b
	}
	return b.deleteEntry(hv, i)
}

func (b Bag[T, H]) deleteEntry(hv uint64, i int) Bag[T, H] {
	nb := b
	table := maps.Clone(nb.table)
	bucket := nb.table[hv]
	if len(bucket) == 1 {
		delete(table, hv)
	} else {
		table[hv] = slices.Delete(slices.Clone(bucket), i, i+1)
	}
	nb.table = table
	nb.distinct--
	return nb
}

// Update returns a bag in which the count of x is f(current), with
// current zero when absent. A result of zero or below removes the
// item entirely.
func (b Bag[T, H]) Update(x T, f func(int) int) Bag[T, H] {
	n := f(b.Copies(x))
	if n <= 0 {
		return b.RemoveAll(x)
	}
	return b.setCount(x, n)
}

// Copies returns the number of copies of x held in b,
// or zero if there are none.
func (b Bag[T, H]) Copies(x T) int {
	if hv, i, ok := b.find(x); ok {
		return b.table[hv][i].copies
	}
	return 0
}

// Contains reports whether b holds at least one copy of x.
func (b Bag[T, H]) Contains(x T) bool {
	return b.Copies(x) > 0
}

// IsEmpty reports whether b holds no items at all, in constant time.
func (b Bag[T, H]) IsEmpty() bool {
	return b.distinct == 0
}

// Size returns the total number of items in b, counting every copy.
func (b Bag[T, H]) Size() int {
	n := 0
	for _, bucket := range b.table {
		for _, e := range bucket {
			n += e.copies
		}
	}
	return n
}

// Distinct returns the number of distinct items in b, in constant time.
func (b Bag[T, H]) Distinct() int {
	return b.distinct
}

// Equal reports whether b and b2 hold equivalent items (according to
// b's hasher) with the same counts.
func (b Bag[T, H]) Equal(b2 Bag[T, H]) bool {
	if b.distinct != b2.distinct {
		return false
	}
	for x, n := range b.All() {
		if b2.Copies(x) != n {
			return false
		}
	}
	return true
}

// All returns an iterator over the (item, count) pairs of b, one pair
// per distinct item, in unspecified order.
func (b Bag[T, H]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		for _, bucket := range b.table {
			for _, e := range bucket {
				if !yield(e.item, e.copies) {
					return
				}
			}
		}
	}
}

// Items returns an iterator over the items of b with each item
// yielded once per copy, in unspecified order.
func (b Bag[T, H]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, bucket := range b.table {
			for _, e := range bucket {
				for range e.copies {
					if !yield(e.item) {
						return
					}
				}
			}
		}
	}
}
