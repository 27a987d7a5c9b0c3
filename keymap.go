package orderedset

import "iter"

// KeyMap is an insertion-ordered key-presence mapping.
//
// It is the storage primitive behind Set: a hash index for O(1) membership
// combined with a doubly linked list of entries that records the order in
// which keys were first inserted. Only key presence carries meaning; there
// is no value associated with a key.
//
// The zero value is an empty mapping ready for use.
type KeyMap[T comparable] struct {
	index      map[T]*keyEntry[T]
	head, tail *keyEntry[T]
}

type keyEntry[T comparable] struct {
	key        T
	prev, next *keyEntry[T]
}

// NewKeyMap returns an empty KeyMap.
func NewKeyMap[T comparable]() *KeyMap[T] {
	return &KeyMap[T]{index: make(map[T]*keyEntry[T])}
}

// Put records key as present. If key is already present its position is
// unchanged; otherwise it is appended after the most recently inserted key.
func (m *KeyMap[T]) Put(key T) {
	if m.index == nil {
		m.index = make(map[T]*keyEntry[T])
	}
	if _, ok := m.index[key]; ok {
		return
	}
	e := &keyEntry[T]{key: key, prev: m.tail}
	if m.tail != nil {
		m.tail.next = e
	} else {
		m.head = e
	}
	m.tail = e
	m.index[key] = e
}

// Delete removes key from the mapping, preserving the relative order of the
// remaining keys. It reports whether the key was present.
func (m *KeyMap[T]) Delete(key T) bool {
	e, ok := m.index[key]
	if !ok {
		return false
	}
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		m.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		m.tail = e.prev
	}
	delete(m.index, key)
	return true
}

// Has reports whether key is present.
func (m *KeyMap[T]) Has(key T) bool {
	_, ok := m.index[key]
	return ok
}

// Len returns the number of keys.
func (m *KeyMap[T]) Len() int {
	return len(m.index)
}

// Clear removes every key.
func (m *KeyMap[T]) Clear() {
	m.index = make(map[T]*keyEntry[T])
	m.head = nil
	m.tail = nil
}

// Keys returns the keys in insertion order. The returned slice is owned by
// the caller.
func (m *KeyMap[T]) Keys() []T {
	keys := make([]T, 0, len(m.index))
	for e := m.head; e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// Clone returns an independent copy with the same keys in the same order.
func (m *KeyMap[T]) Clone() *KeyMap[T] {
	c := &KeyMap[T]{index: make(map[T]*keyEntry[T], len(m.index))}
	for e := m.head; e != nil; e = e.next {
		c.Put(e.key)
	}
	return c
}

// All returns an iterator over the keys in insertion order.
func (m *KeyMap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := m.head; e != nil; e = e.next {
			if !yield(e.key) {
				return
			}
		}
	}
}
