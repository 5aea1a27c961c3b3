// Package sparse provides a sparse set for tracking NFA states.
//
// A sparse set supports O(1) insertion, membership testing and clearing
// while keeping its members in a dense slice in insertion order. The matcher
// uses one per active state set so that epsilon closure never revisits a
// state and clearing between input runes costs nothing.
package sparse

import "fmt"

// Set is a set of small unsigned integers drawn from [0, capacity).
// The zero value is an empty set with no capacity.
type Set[T ~uint32] struct {
	sparse []uint32 // value -> index into dense
	dense  []T      // members in insertion order
}

// NewSet creates an empty set able to hold values in [0, capacity).
func NewSet[T ~uint32](capacity int) *Set[T] {
	return &Set[T]{
		sparse: make([]uint32, capacity),
		dense:  make([]T, 0, capacity),
	}
}

// Capacity returns the exclusive upper bound on storable values.
func (s *Set[T]) Capacity() int {
	return len(s.sparse)
}

// Insert adds value to the set and reports whether it was newly added.
// Panics if value is outside the set's capacity.
func (s *Set[T]) Insert(value T) bool {
	if int(value) >= len(s.sparse) {
		panic(fmt.Sprintf("sparse: value %d out of range [0, %d)", value, len(s.sparse)))
	}
	if s.Contains(value) {
		return false
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
	return true
}

// Contains reports whether value is in the set.
func (s *Set[T]) Contains(value T) bool {
	if int(value) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[value]
	return int(idx) < len(s.dense) && s.dense[idx] == value
}

// Clear removes all members in O(1).
func (s *Set[T]) Clear() {
	s.dense = s.dense[:0]
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return len(s.dense)
}

// IsEmpty reports whether the set has no members.
func (s *Set[T]) IsEmpty() bool {
	return len(s.dense) == 0
}

// Values returns the members in insertion order.
// The slice is only valid until the next mutation.
func (s *Set[T]) Values() []T {
	return s.dense
}

// AppendTo appends the members to dst in insertion order and returns it.
func (s *Set[T]) AppendTo(dst []T) []T {
	return append(dst, s.dense...)
}
