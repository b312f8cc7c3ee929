// Package set provides a map-backed set of comparable values.
//
// Unlike its sibling bag type, a Set is an ordinary mutable
// collection: Add and Remove change the set in place, while the
// combining operations (Union, Intersect, Diff) return new sets.
package set

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Set holds a set of values of type T.
type Set[T comparable] map[T]struct{}

// New returns a set holding the given values.
func New[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, x := range items {
		s[x] = struct{}{}
	}
	return s
}

// Collect returns a set holding all the values produced by it.
func Collect[T comparable](it iter.Seq[T]) Set[T] {
	s := make(Set[T])
	for x := range it {
		s[x] = struct{}{}
	}
	return s
}

// Add adds x to the set.
func (s Set[T]) Add(x T) {
	s[x] = struct{}{}
}

// Remove removes x from the set if present.
func (s Set[T]) Remove(x T) {
	delete(s, x)
}

// Contains reports whether x is a member of s.
func (s Set[T]) Contains(x T) bool {
	_, ok := s[x]
	return ok
}

// Len returns the number of members of s.
func (s Set[T]) Len() int {
	return len(s)
}

// IsEmpty reports whether s has no members.
func (s Set[T]) IsEmpty() bool {
	return len(s) == 0
}

// Union returns a new set holding the members of both s and s2.
func (s Set[T]) Union(s2 Set[T]) Set[T] {
	r := make(Set[T], len(s)+len(s2))
	maps.Copy(r, s)
	maps.Copy(r, s2)
	return r
}

// Intersect returns a new set holding the members common
// to s and s2.
func (s Set[T]) Intersect(s2 Set[T]) Set[T] {
	if len(s) > len(s2) {
		s, s2 = s2, s
	}
	r := make(Set[T])
	for x := range s {
		if s2.Contains(x) {
			r[x] = struct{}{}
		}
	}
	return r
}

// Diff returns a new set holding the members of s that
// are not members of s2.
func (s Set[T]) Diff(s2 Set[T]) Set[T] {
	r := make(Set[T])
	for x := range s {
		if !s2.Contains(x) {
			r[x] = struct{}{}
		}
	}
	return r
}

// All returns an iterator over the members of s in unspecified order.
func (s Set[T]) All() iter.Seq[T] {
	return maps.Keys(s)
}

// Equal reports whether s and s2 have exactly the same members.
func (s Set[T]) Equal(s2 Set[T]) bool {
	return maps.Equal(s, s2)
}

// String returns a deterministic rendering of s of the form
// set[a b c], ordered by the members' formatted form.
func (s Set[T]) String() string {
	members := make([]string, 0, len(s))
	for x := range s {
		members = append(members, fmt.Sprint(x))
	}
	slices.Sort(members)
	return "set[" + strings.Join(members, " ") + "]"
}
