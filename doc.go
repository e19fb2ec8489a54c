// Package wheelist implements a keyed circular doubly linked [List]
// and a [Wheel], which adds a cursor to it.
//
// Elements are addressable either by zero-based position or by a key
// extracted from each stored record. The key extractor is supplied at
// construction; records are otherwise opaque to the list.
//
// Glossary and invariants:
//
//   - Circular
//
//     There are no nil terminators. For a non-empty list,
//     Tail().Next() == Head() and Head().Prev() == Tail().
//     Every walk is bounded by [List.Len] rather than by a sentinel.
//
//   - Ref
//
//     A tagged lookup argument: a position ([List.At]),
//     a key ([List.Key]), or a record carrying a key ([List.Record]).
//     Keys need not be unique; key lookups resolve to the
//     first match walking from the head.
//
//   - Index cache
//
//     Every resolution made by [List.IndexOf] (including misses)
//     is memoized. Any structural change (add, insert, delete, move)
//     purges the whole cache; partial invalidation is never attempted
//     since a single edit shifts a contiguous arc of positions.
//     The cache may be bounded via [Options.CacheCapacity].
//
//   - Cursor
//
//     A [Wheel] holds one "current" node and offers relative
//     navigation ([Wheel.Next], [Wheel.Prev], [Wheel.Advance]).
//
// Errors:
//
// Lookups never fail; absence is reported as -1 or false.
// Structural changes that require a position ([List.Insert], [List.Delete])
// return [ErrInvalidIndex] or [ErrEmpty] and leave the list untouched.
// [List.Move] is a no-op on unresolved positions.
//
// Node and record references returned by a list are borrowed:
// none are guaranteed to keep their position across a structural change.
// Concurrent access must be guarded by the caller.
package wheelist
