// Package keypad treats a keypad as a small grid graph: every labeled button
// is a vertex, orthogonally adjacent buttons are joined by an edge labeled
// with the arrow that moves the robot arm between them.
//
// What:
//
//   - Layout wraps an immutable key → coordinate table plus a precomputed,
//     data-driven adjacency table key → []Edge{Dir, To}.
//   - Gap cells are forbidden: they are never keys and never appear on an edge.
//   - NewLayout validates a Spec once (duplicates, gaps, connectivity).
//   - Numeric and Directional return the two fixed door-code keypads.
//   - LoadYAML / ParseYAML decode custom layouts from YAML documents.
//   - Sequence is an arrow program terminated by exactly one Activate press.
//
// Why:
//
//   - Layouts are declarative data, not control flow, so a new keypad is a
//     table entry and every neighbor relation is testable on its own.
//
// Layouts:
//
//	Numeric           Directional
//	+---+---+---+         +---+---+
//	| 7 | 8 | 9 |         | ^ | A |
//	+---+---+---+     +---+---+---+
//	| 4 | 5 | 6 |     | < | v | > |
//	+---+---+---+     +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	    | 0 | A |
//	    +---+---+
//
// Complexity:
//
//   - NewLayout: O(K) time and memory (K = number of keys, 4 neighbors each).
//   - Neighbors: O(1).
//
// Errors:
//
//   - ErrConfiguration and its family (ErrEmptyLayout, ErrInvalidSymbol,
//     ErrDuplicateKey, ErrDuplicateCoord, ErrKeyOnGap, ErrDisconnected):
//     the layout definition itself is malformed.
//   - ErrInvariant and its family (ErrUnknownKey, ErrInvalidSequence):
//     a caller addressed something that cannot exist on the layout.
package keypad
