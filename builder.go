package bag

import "maps"

// A Builder accumulates items destructively and is then frozen into
// an immutable [Bag], saving the per-operation copy that the Bag
// methods pay. It maintains the same invariant as Bag: no stored
// count is ever zero or negative.
//
// The zero Builder is empty and ready to use. Unlike a Bag, a Builder
// must not be used from multiple goroutines without external locking.
type Builder[T comparable] struct {
	counts map[T]int
}

// builderFrom returns a builder seeded with the contents of b.
func builderFrom[T comparable](b Bag[T]) *Builder[T] {
	return &Builder[T]{counts: maps.Clone(b.counts)}
}

// Insert adds n copies of x, with the same sign handling as
// [Bag.Insert]: zero is a no-op and a negative n removes.
func (b *Builder[T]) Insert(n int, x T) {
	switch {
	case n == 0:
		return
	case n < 0:
		b.Remove(-n, x)
		return
	}
	if b.counts == nil {
		b.counts = make(map[T]int)
	}
	b.counts[x] += n
}

// Remove removes up to |n| copies of x, deleting the item when its
// count is exhausted, with the same semantics as [Bag.Remove].
func (b *Builder[T]) Remove(n int, x T) {
	if n < 0 {
		n = -n
	}
	cur, ok := b.counts[x]
	if !ok || n == 0 {
		return
	}
	if n >= cur {
		delete(b.counts, x)
	} else {
		b.counts[x] = cur - n
	}
}

// Update replaces the count of x with f(current), removing the item
// when the result is zero or negative, as [Bag.Update] does.
func (b *Builder[T]) Update(x T, f func(int) int) {
	n := f(b.counts[x])
	if n <= 0 {
		delete(b.counts, x)
		return
	}
	if b.counts == nil {
		b.counts = make(map[T]int)
	}
	b.counts[x] = n
}

// Copies returns the current count of x in the builder.
func (b *Builder[T]) Copies(x T) int {
	return b.counts[x]
}

// Bag freezes the accumulated contents into an immutable Bag and
// resets the builder to empty. The returned Bag is detached: further
// use of the builder cannot affect it.
func (b *Builder[T]) Bag() Bag[T] {
	counts := b.counts
	b.counts = nil
	return Bag[T]{counts: counts}
}
