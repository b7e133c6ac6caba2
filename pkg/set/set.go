package set

import (
	"maps"
	"slices"
)

// Set is an unordered collection of unique items.
// The empty set and Union form a monoid, so partial sets can be merged in any order.
type Set[T comparable] map[T]struct{}

func New[T comparable]() Set[T] {
	return make(map[T]struct{})
}

// Of returns a set holding the given items.
func Of[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	s.Add(items...)
	return s
}

func (s Set[T]) Add(item ...T) {
	for _, i := range item {
		s[i] = struct{}{}
	}
}

func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}

func (s Set[T]) Size() int {
	return len(s)
}

// Extend adds every item of other to s in place and returns s.
func (s Set[T]) Extend(other Set[T]) Set[T] {
	for item := range other {
		s[item] = struct{}{}
	}
	return s
}

// Union returns a new set with the items of both sets. Neither operand is modified.
func (s Set[T]) Union(other Set[T]) Set[T] {
	result := make(Set[T], max(len(s), len(other)))
	return result.Extend(s).Extend(other)
}

// IsSubset reports whether every item of s is in other.
func (s Set[T]) IsSubset(other Set[T]) bool {
	if len(s) > len(other) {
		return false
	}
	for item := range s {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

func (s Set[T]) Equal(other Set[T]) bool {
	return len(s) == len(other) && s.IsSubset(other)
}

func (s Set[T]) Slice() []T {
	return slices.Collect(maps.Keys(s))
}

// Merge folds sets into one, starting from the empty set.
// The largest operand is reused as the accumulator, so the inputs must not be used afterwards.
func Merge[T comparable](sets ...Set[T]) Set[T] {
	largest := -1
	for i, s := range sets {
		if s != nil && (largest < 0 || len(s) > len(sets[largest])) {
			largest = i
		}
	}
	if largest < 0 {
		return New[T]()
	}

	acc := sets[largest]
	for i, s := range sets {
		if i != largest {
			acc.Extend(s)
		}
	}
	return acc
}
