// Package bfs provides a breadth-first search over a keypad layout that keeps
// every tied shortest path, not just one.
//
// What
//
//   - Explore keys in non-decreasing distance (move count) from a start key.
//   - Returns a BFSResult containing:
//   - Order:   visit sequence
//   - Depth:   map from key → distance (moves) from start
//   - Parents: map from key → every predecessor step on some shortest path
//   - PathsTo(dest) expands the parent sets into all minimal arrow sequences,
//     each terminated by Activate.
//   - Supports an OnVisit hook (may abort with an error) and a MaxDepth limit.
//
// Why
//
//   - A sequence that is shortest on one keypad may not be the cheapest once
//     it is typed through another keypad. Pruning ties early gives wrong
//     answers further up a keypad chain, so the full tie set is kept.
//
// Determinism
//
//	keypad.Layout returns neighbors ordered Up, Right, Down, Left and BFS
//	enqueues them in that order, so Order and Parents are reproducible.
//	PathsTo additionally sorts its output.
//
// Complexity (K = |keys|, E = |edges|, P = number of shortest paths)
//
//   - BFS:     O(K + E) time, O(K + E) memory (parent sets hold at most E steps)
//   - PathsTo: O(P · d) time, d = distance to dest
//
// Usage
//
//	res, err := bfs.BFS(keypad.Numeric(), '1')
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors, or hook errors
//	}
//	seqs, err := res.PathsTo('A') // [">>vA" ">v>A"]
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start key does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if Neighbors fails for any key.
//   - ErrNoPath               from PathsTo for an unreached key.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
