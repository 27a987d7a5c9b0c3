// Package orderedset provides mutable sets whose iteration order is the
// order in which members were first inserted.
//
// Two set flavors share one storage primitive:
//
//  1. Set[T] is the generic workhorse: element type fixed at compile time,
//     O(1) Add/Remove/Contains, and in-place set algebra (AddAll, RemoveAll,
//     RetainAll) plus the Union/Intersect/Difference constructors.
//  2. ScalarSet holds a runtime-checked mix of integers and strings. It is
//     built from untyped inputs via NewScalarSet or ScalarSetFrom, rejects
//     anything that is not a scalar with an InputError naming the offending
//     type, and carries the indexed-access protocol: Get and Set are
//     implemented, Exists and Unset deliberately fail with an
//     UnsupportedError.
//
// Both are backed by KeyMap, an insertion-ordered key-presence mapping.
// KeyMap is exported so a set can be torn down to its raw mapping
// (Set.KeyMap) and later rebuilt from it in O(1) through the package's
// trusted construction path, losing nothing.
//
// Iteration comes in two shapes: All() yields (position, member) pairs for
// range-over-func loops, and Iterator() returns a restartable KeyIterator
// cursor over a snapshot, with a synthetic 0-based position counter.
//
// Nothing in this package is safe for concurrent use; guard a shared set
// with a single mutex if one is ever needed.
package orderedset
