package orderedset

// KeyIterator is a restartable cursor over a snapshot of a set's members in
// insertion order. The cursor carries a synthetic 0-based position counter
// that advances with it; the counter says nothing about where a member sits
// in the set's hash index.
//
// Obtain one from Set.Iterator. Because it holds a snapshot, mutating the
// originating set does not disturb an iterator already in flight.
type KeyIterator[T comparable] struct {
	keys []T
	pos  int
}

func newKeyIterator[T comparable](keys []T) *KeyIterator[T] {
	return &KeyIterator[T]{keys: keys}
}

// Valid reports whether the cursor points at a member. It turns false once
// the snapshot is exhausted.
func (it *KeyIterator[T]) Valid() bool {
	return it.pos < len(it.keys)
}

// Current returns the member under the cursor, or the zero value of T once
// the iterator is exhausted. Gate calls with Valid.
func (it *KeyIterator[T]) Current() T {
	if !it.Valid() {
		var zero T
		return zero
	}
	return it.keys[it.pos]
}

// Advance moves the cursor forward one member and increments the position
// counter. Advancing an exhausted iterator is a no-op.
func (it *KeyIterator[T]) Advance() {
	if it.Valid() {
		it.pos++
	}
}

// Position returns the 0-based position counter.
func (it *KeyIterator[T]) Position() int {
	return it.pos
}

// Restart moves the cursor back to the first member and resets the position
// counter to 0.
func (it *KeyIterator[T]) Restart() {
	it.pos = 0
}
