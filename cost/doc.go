// Package cost computes how many physical presses a human needs to make a
// robot type an arrow sequence through a chain of directional keypads.
//
// What:
//
//   - Cost(seq, 0) is len(seq): the human types seq directly.
//   - Cost(seq, d) for d > 0 splits seq into transitions starting from the
//     Activate key. For every transition the operator one layer closer to the
//     human must type one of the transition's minimal PathSet candidates;
//     the cheapest candidate at depth d-1 is taken and the minima are summed.
//   - Every transition ends in an Activate press, so each layer's arm is back
//     on Activate after a sequence. That makes transitions independent and
//     lets a whole sequence be cached by its exact text.
//
// Memoization:
//
//	The Cache is an explicit object keyed by (sequence, depth). It is
//	append-only, computes each key at most once even under concurrent use,
//	and counts hits and misses. Without it depth 25 is out of reach: the
//	same handful of short sub-sequences recurs an exponential number of times.
//
// Cycle guard:
//
//	Each evaluation carries the set of keys it is currently expanding. Depth
//	strictly decreases on recursion, so a re-entrant key can only come from a
//	corrupted graph; it fails with ErrCycle instead of recursing forever.
//
// Complexity (S = distinct sub-sequences per depth, small for standard keypads):
//
//   - Time:   O(depth · S · L) where L bounds candidate length.
//   - Memory: O(depth · S) cache entries.
//
// Errors:
//
//   - ErrNegativeDepth          depth < 0.
//   - keypad.ErrInvalidSequence seq is not moves followed by one Activate.
//   - keypad.ErrUnknownKey      a symbol is missing from the directional layout.
//   - ErrCycle                  a key re-entered its own evaluation.
//   - ErrOverflow               the press count does not fit in an int64.
package cost
