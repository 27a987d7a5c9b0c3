package orderedset

import "iter"

// Set is a mutable collection of unique values that iterates in insertion
// order. Membership, insertion and removal are O(1); the bulk algebra
// operations are O(n) in the size of their operands.
//
// A Set exclusively owns its backing KeyMap and is not safe for concurrent
// use. The zero value is an empty set ready for use.
type Set[T comparable] struct {
	entries *KeyMap[T]
}

// New returns a set containing the given values. Duplicates collapse to a
// single member whose position is that of the first occurrence.
func New[T comparable](vals ...T) *Set[T] {
	s := &Set[T]{entries: NewKeyMap[T]()}
	for _, v := range vals {
		s.entries.Put(v)
	}
	return s
}

// fromKeyMap adopts a pre-built key mapping without copying it. The caller
// must relinquish the mapping; this is the trusted O(1) construction path
// and must stay unexported so arbitrary mappings cannot bypass validation
// done by higher layers.
func fromKeyMap[T comparable](m *KeyMap[T]) *Set[T] {
	if m == nil {
		m = NewKeyMap[T]()
	}
	return &Set[T]{entries: m}
}

func (s *Set[T]) keys() *KeyMap[T] {
	if s.entries == nil {
		s.entries = &KeyMap[T]{}
	}
	return s.entries
}

// Add inserts v into the set. Adding a member again is a no-op and does not
// change its position.
func (s *Set[T]) Add(v T) {
	s.keys().Put(v)
}

// Remove deletes v from the set. Removing an absent value is a no-op.
func (s *Set[T]) Remove(v T) {
	s.keys().Delete(v)
}

// Contains reports whether v is a member.
func (s *Set[T]) Contains(v T) bool {
	return s != nil && s.entries != nil && s.entries.Has(v)
}

// IsEmpty reports whether the set has no members.
func (s *Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	if s == nil || s.entries == nil {
		return 0
	}
	return s.entries.Len()
}

// Clear removes every member.
func (s *Set[T]) Clear() {
	s.keys().Clear()
}

// Values returns the members in insertion order.
func (s *Set[T]) Values() []T {
	if s == nil || s.entries == nil {
		return []T{}
	}
	return s.entries.Keys()
}

// KeyMap returns the set's backing key-presence mapping. The mapping is
// borrowed, not copied: mutating it mutates the set. Pair it with Clone for
// an O(n) copy, or hand a Clone of it to code that needs ownership.
func (s *Set[T]) KeyMap() *KeyMap[T] {
	return s.keys()
}

// Clone returns an independent copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	if s == nil || s.entries == nil {
		return New[T]()
	}
	return fromKeyMap(s.entries.Clone())
}

// AddAll inserts every member of other, making s the union of the two sets.
// Members already present keep their original positions, so the operation is
// idempotent. A nil other is the empty set.
func (s *Set[T]) AddAll(other *Set[T]) {
	if other == nil || other.entries == nil {
		return
	}
	for v := range other.entries.All() {
		s.keys().Put(v)
	}
}

// RemoveAll deletes every member of other, making s the difference s - other.
func (s *Set[T]) RemoveAll(other *Set[T]) {
	if other == nil || other.entries == nil || s.entries == nil {
		return
	}
	for v := range other.entries.All() {
		s.entries.Delete(v)
	}
}

// RetainAll keeps only members also present in other, making s the
// intersection of the two sets. A nil other empties s.
func (s *Set[T]) RetainAll(other *Set[T]) {
	if s.entries == nil {
		return
	}
	for e := s.entries.head; e != nil; {
		next := e.next
		if !other.Contains(e.key) {
			s.entries.Delete(e.key)
		}
		e = next
	}
}

// ContainsAll reports whether every member of other is a member of s. It is
// vacuously true for a nil or empty other.
func (s *Set[T]) ContainsAll(other *Set[T]) bool {
	if other == nil || other.entries == nil {
		return true
	}
	for v := range other.entries.All() {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}

// Equals reports whether the two sets have exactly the same members.
// Insertion order is irrelevant. A nil other compares as the empty set.
func (s *Set[T]) Equals(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	return s.ContainsAll(other)
}

// All returns an iterator over (position, member) pairs in insertion order.
// Positions are a fresh 0-based counter, not tied to any internal index.
func (s *Set[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if s == nil || s.entries == nil {
			return
		}
		pos := 0
		for v := range s.entries.All() {
			if !yield(pos, v) {
				return
			}
			pos++
		}
	}
}

// Iterator returns a restartable cursor over a snapshot of the members in
// insertion order. Mutating the set afterwards does not affect the cursor.
func (s *Set[T]) Iterator() *KeyIterator[T] {
	return newKeyIterator(s.Values())
}

// Union returns a new set containing every member of every input, positioned
// by first occurrence across the inputs in argument order.
func Union[T comparable](sets ...*Set[T]) *Set[T] {
	out := New[T]()
	for _, s := range sets {
		out.AddAll(s)
	}
	return out
}

// Intersect returns a new set equal to a copy of a retaining only the
// members also present in b.
func Intersect[T comparable](a, b *Set[T]) *Set[T] {
	out := a.Clone()
	out.RetainAll(b)
	return out
}

// Difference returns a new set containing the members of a that are not
// members of b.
func Difference[T comparable](a, b *Set[T]) *Set[T] {
	out := a.Clone()
	out.RemoveAll(b)
	return out
}
