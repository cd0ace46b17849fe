// Package paths memoizes the PathSet of every (from, to) key pair on a
// layout: all minimal arrow sequences, each ending in Activate, that move an
// arm from one key to another.
//
// One breadth-first search per source key fills the PathSet of every
// destination at once. Entries are computed at most once, even when many
// goroutines ask for the same source concurrently, and never change after.
//
// Errors:
//
//   - keypad.ErrUnknownKey  if from or to is not on the layout.
//   - ErrUnreachable        if the layout offers no route (wraps keypad.ErrInvariant).
package paths
