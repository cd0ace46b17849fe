// Package keychain prices door codes typed through a chain of robots, each
// driving the next from a directional keypad, with the last one standing at
// a numeric keypad.
//
// The work is split into small packages, leaf first:
//
//	keypad/     declarative keypad layouts, adjacency tables, YAML loading
//	bfs/        breadth-first search that keeps every tied shortest path
//	paths/      memoized PathSets per (from, to) key pair
//	cost/       recursive press-count evaluation with an explicit cache
//	codes/      door code parsing
//	complexity/ per-code press counts and the summed complexity
//
// Quick example:
//
//	total, err := complexity.Total([]string{"029A", "980A"}, complexity.ShortChain)
//
// The keychain command (cmd/keychain) reads codes from a file or stdin and
// prints the totals for both standard chain lengths.
package keychain
