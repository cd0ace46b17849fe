// Package bfs provides breadth-first search over a keypad layout,
// returning unweighted shortest distances, all tied parent links, and visit order.
//
// BFS explores keys in increasing distance from a start key,
// with an optional visit hook and depth limiting.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/keychain/keypad"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a key with its BFS depth.
type queueItem struct {
	key   keypad.Key
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or any user-supplied hook error.
func BFS(g Graph, start keypad.Key, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start key
	if !g.Has(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	w := &walker{
		graph: g,
		opts:  o,
		res: &BFSResult{
			Start:   start,
			Depth:   make(map[keypad.Key]int),
			Parents: make(map[keypad.Key][]Step),
		},
	}

	// Seed queue with start key (no parent)
	w.enqueue(start, 0)
	// Main loop
	return w.res, w.loop()
}

// enqueue records k at depth d and adds it to the queue.
func (w *walker) enqueue(k keypad.Key, d int) {
	w.res.Depth[k] = d
	w.queue = append(w.queue, queueItem{key: k, depth: d})
}

// loop processes the queue until empty or error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.relax(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the key in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.key)
	if err := w.opts.OnVisit(item.key, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.key, err)
	}
	return nil
}

// relax walks the neighbors of item. An unseen neighbor is enqueued one
// layer deeper; a neighbor already sitting exactly one layer deeper gains
// another parent, which is how tied shortest paths are preserved.
func (w *walker) relax(item queueItem) error {
	edges, err := w.graph.Neighbors(item.key)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.key, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, e := range edges {
		d, seen := w.res.Depth[e.To]
		switch {
		case !seen:
			w.enqueue(e.To, next)
		case d != next:
			continue
		}
		w.res.Parents[e.To] = append(w.res.Parents[e.To], Step{From: item.key, Dir: e.Dir})
	}
	return nil
}
