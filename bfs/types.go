// Package bfs provides tunable options and error definitions
// for breadth-first search over a keypad layout.
package bfs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/keychain/keypad"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start key is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathsTo for a key the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Graph is the read-only view BFS needs. *keypad.Layout satisfies it.
type Graph interface {
	Has(k keypad.Key) bool
	Neighbors(k keypad.Key) ([]keypad.Edge, error)
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnVisit is called when visiting a key. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(k keypad.Key, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with no depth limit and a no-op OnVisit.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:  func(keypad.Key, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(k keypad.Key, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Step is one tied predecessor: pressing Dir on From reaches the recorded key.
type Step struct {
	From keypad.Key
	Dir  keypad.Direction
}

// BFSResult holds the outcome of a BFS traversal:
//   - Start: the key the search began from.
//   - Order: keys visited, in visit sequence.
//   - Depth: map from key to its distance (in moves) from Start.
//   - Parents: every predecessor step lying on some shortest path, in discovery order.
type BFSResult struct {
	Start   keypad.Key
	Order   []keypad.Key
	Depth   map[keypad.Key]int
	Parents map[keypad.Key][]Step
}

// PathsTo reconstructs every shortest move sequence from Start to dest,
// each terminated by Activate, sorted lexicographically.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathsTo(dest keypad.Key) ([]keypad.Sequence, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %q from %q", ErrNoPath, dest, r.Start)
	}
	var out []keypad.Sequence
	moves := make([]keypad.Direction, d)
	r.walkBack(dest, d, moves, &out)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// walkBack fills moves[:d] right to left by following every parent of k.
// Each parent sits exactly one layer closer to Start, so every branch
// bottoms out at Start after d steps.
func (r *BFSResult) walkBack(k keypad.Key, d int, moves []keypad.Direction, out *[]keypad.Sequence) {
	if d == 0 {
		*out = append(*out, keypad.NewSequence(moves))
		return
	}
	for _, p := range r.Parents[k] {
		moves[d-1] = p.Dir
		r.walkBack(p.From, d-1, moves, out)
	}
}
