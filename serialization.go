package orderedset

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes the set as a JSON array of its members in insertion
// order.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON decodes a JSON array into the set, replacing any previous
// members. Duplicates in the array collapse, first occurrence winning the
// position.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var vals []T
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	m := NewKeyMap[T]()
	for _, v := range vals {
		m.Put(v)
	}
	s.entries = m
	return nil
}

// MarshalJSON encodes the set as a JSON array of its members in insertion
// order.
func (s *ScalarSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON decodes a JSON array into the set, replacing any previous
// members. JSON numbers decode as int64 so integer members stay integral;
// fractional numbers and non-scalar array elements fail with an InputError.
func (s *ScalarSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	next := &ScalarSet{}
	for _, v := range raw {
		if n, ok := v.(json.Number); ok {
			i, err := n.Int64()
			if err != nil {
				f, _ := n.Float64()
				return InvalidElement(f)
			}
			next.elems.Add(i)
			continue
		}
		if err := next.Add(v); err != nil {
			return err
		}
	}
	*s = *next
	return nil
}
