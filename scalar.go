package orderedset

import "iter"

// ScalarSet is an insertion-ordered set of scalar values, where a scalar is
// any Go integer kind or a string. Unlike the generic Set, one ScalarSet may
// mix integers and strings, and every value entering it is validated at
// runtime. There is no key coercion: int(1) and int64(1) are distinct
// members.
//
// The zero value is an empty set ready for use.
type ScalarSet struct {
	elems Set[any]
}

// checkScalar rejects anything that is not an integer or a string.
func checkScalar(v any) error {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		string:
		return nil
	}
	return InvalidElement(v)
}

// NewScalarSet returns a set containing the given scalar values. Duplicates
// collapse to a single member positioned at the first occurrence. It fails
// with an InputError naming the offending type if any value is not a scalar.
func NewScalarSet(vals ...any) (*ScalarSet, error) {
	s := &ScalarSet{}
	for _, v := range vals {
		if err := s.Add(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// ScalarSetFrom builds a set from any supported input shape: nil (empty
// set), an existing *ScalarSet (copied), or a finite slice of scalars --
// []any, []int, []int64 or []string. Other typed slices must be passed as
// []any, where each element is validated individually. Anything else fails
// with an InputError naming the concrete input type -- notably a bare
// scalar is not a sequence and is rejected.
func ScalarSetFrom(v any) (*ScalarSet, error) {
	switch x := v.(type) {
	case nil:
		return &ScalarSet{}, nil
	case *ScalarSet:
		return x.Clone(), nil
	case []any:
		return NewScalarSet(x...)
	case []int:
		s := &ScalarSet{}
		for _, e := range x {
			s.elems.Add(e)
		}
		return s, nil
	case []int64:
		s := &ScalarSet{}
		for _, e := range x {
			s.elems.Add(e)
		}
		return s, nil
	case []string:
		s := &ScalarSet{}
		for _, e := range x {
			s.elems.Add(e)
		}
		return s, nil
	}
	return nil, InvalidInput(v)
}

// scalarSetFromKeyMap adopts a pre-validated key mapping in O(1) without
// re-checking its keys. Trusted construction path only.
func scalarSetFromKeyMap(m *KeyMap[any]) *ScalarSet {
	return &ScalarSet{elems: *fromKeyMap(m)}
}

// Add inserts v, validating that it is a scalar. Adding a member again is a
// no-op.
func (s *ScalarSet) Add(v any) error {
	if err := checkScalar(v); err != nil {
		return err
	}
	s.elems.Add(v)
	return nil
}

// Remove deletes v. Removing an absent or non-scalar value is a no-op.
func (s *ScalarSet) Remove(v any) {
	if checkScalar(v) != nil {
		return
	}
	s.elems.Remove(v)
}

// Contains reports whether v is a member. Non-scalar values are never
// members.
func (s *ScalarSet) Contains(v any) bool {
	if s == nil || checkScalar(v) != nil {
		return false
	}
	return s.elems.Contains(v)
}

// IsEmpty reports whether the set has no members.
func (s *ScalarSet) IsEmpty() bool {
	return s.Len() == 0
}

// Len returns the number of members.
func (s *ScalarSet) Len() int {
	if s == nil {
		return 0
	}
	return s.elems.Len()
}

// Clear removes every member.
func (s *ScalarSet) Clear() {
	s.elems.Clear()
}

// Values returns the members in insertion order.
func (s *ScalarSet) Values() []any {
	if s == nil {
		return []any{}
	}
	return s.elems.Values()
}

// Clone returns an independent copy of the set.
func (s *ScalarSet) Clone() *ScalarSet {
	if s == nil {
		return &ScalarSet{}
	}
	return scalarSetFromKeyMap(s.elems.keys().Clone())
}

// AddAll inserts every member of other. Members of other were validated when
// they entered it, so no re-validation happens here.
func (s *ScalarSet) AddAll(other *ScalarSet) {
	if other == nil {
		return
	}
	s.elems.AddAll(&other.elems)
}

// RemoveAll deletes every member of other.
func (s *ScalarSet) RemoveAll(other *ScalarSet) {
	if other == nil {
		return
	}
	s.elems.RemoveAll(&other.elems)
}

// RetainAll keeps only members also present in other.
func (s *ScalarSet) RetainAll(other *ScalarSet) {
	if other == nil {
		s.elems.Clear()
		return
	}
	s.elems.RetainAll(&other.elems)
}

// ContainsAll reports whether every member of other is a member of s.
func (s *ScalarSet) ContainsAll(other *ScalarSet) bool {
	if other == nil {
		return true
	}
	return s.elems.ContainsAll(&other.elems)
}

// Equals reports whether v represents exactly the same members as s, in any
// order. v may be anything ScalarSetFrom accepts; an input that cannot be
// normalized into a set compares as unequal rather than producing an error.
func (s *ScalarSet) Equals(v any) bool {
	if other, ok := v.(*ScalarSet); ok {
		if other == nil {
			return s.Len() == 0
		}
		return s.elems.Equals(&other.elems)
	}
	other, err := ScalarSetFrom(v)
	if err != nil {
		return false
	}
	return s.elems.Equals(&other.elems)
}

// All returns an iterator over (position, member) pairs in insertion order,
// with a fresh 0-based position counter.
func (s *ScalarSet) All() iter.Seq2[int, any] {
	return s.elems.All()
}

// Iterator returns a restartable cursor over a snapshot of the members.
func (s *ScalarSet) Iterator() *KeyIterator[any] {
	return s.elems.Iterator()
}

// Get is the indexed read: it reports whether key is a member. It is a
// membership probe, not element retrieval.
func (s *ScalarSet) Get(key any) bool {
	return s.Contains(key)
}

// Set is the indexed write: true adds key to the set, false removes it.
func (s *ScalarSet) Set(key any, member bool) error {
	if member {
		return s.Add(key)
	}
	s.Remove(key)
	return nil
}

// Exists is the indexed existence check. It is deliberately disabled: "does
// this index exist" is ambiguous between "is non-null" and "is a member",
// so it always fails with an UnsupportedError instead of guessing.
func (s *ScalarSet) Exists(key any) (bool, error) {
	return false, NotSupported("indexed existence check", "Contains or Get")
}

// Unset is the indexed removal. It is deliberately disabled: "unset" is
// ambiguous between "remove the member" and "set to false", so it always
// fails with an UnsupportedError instead of guessing.
func (s *ScalarSet) Unset(key any) error {
	return NotSupported("indexed unset", "Remove or Set(key, false)")
}

// ScalarUnion returns a new set containing the union of all inputs, each of
// which may be anything ScalarSetFrom accepts. The first input that cannot
// be normalized aborts the union with an InputError.
func ScalarUnion(inputs ...any) (*ScalarSet, error) {
	out := &ScalarSet{}
	for _, in := range inputs {
		s, err := ScalarSetFrom(in)
		if err != nil {
			return nil, err
		}
		out.AddAll(s)
	}
	return out, nil
}

// ScalarIntersect returns a new set equal to a copy of a retaining only the
// members also present in b.
func ScalarIntersect(a, b *ScalarSet) *ScalarSet {
	out := a.Clone()
	out.RetainAll(b)
	return out
}
