package paths

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/keychain/bfs"
	"github.com/katalvlaran/keychain/keypad"
)

// ErrUnreachable indicates a (from, to) pair with no route on the layout.
var ErrUnreachable = fmt.Errorf("%w: unreachable key pair", keypad.ErrInvariant)

// Graph is the layout view an Enumerator needs. *keypad.Layout satisfies it.
type Graph interface {
	bfs.Graph
	Name() string
	Keys() []keypad.Key
}

// Enumerator caches PathSets for one layout. It is safe for concurrent use.
type Enumerator struct {
	graph    Graph
	mu       sync.Mutex
	sources  map[keypad.Key]*source
	searches atomic.Int64
}

// source holds every PathSet starting at one key.
// done is closed once paths/depth/err are final.
type source struct {
	done  chan struct{}
	paths map[keypad.Key][]keypad.Sequence
	depth map[keypad.Key]int
	err   error
}

// New returns an empty Enumerator over g.
func New(g Graph) *Enumerator {
	return &Enumerator{
		graph:   g,
		sources: make(map[keypad.Key]*source),
	}
}

// Layout returns the graph this Enumerator searches.
func (e *Enumerator) Layout() Graph { return e.graph }

// Searches reports how many BFS runs have been performed so far.
func (e *Enumerator) Searches() int64 { return e.searches.Load() }

// Paths returns every minimal sequence moving the arm from one key to another
// and pressing it. The result is shared and must not be modified.
func (e *Enumerator) Paths(from, to keypad.Key) ([]keypad.Sequence, error) {
	s, err := e.lookup(from, to)
	if err != nil {
		return nil, err
	}
	return s.paths[to], nil
}

// Distance returns the number of moves between two keys, excluding the press.
func (e *Enumerator) Distance(from, to keypad.Key) (int, error) {
	s, err := e.lookup(from, to)
	if err != nil {
		return 0, err
	}
	return s.depth[to], nil
}

// Warm computes the PathSets of every pair up front.
func (e *Enumerator) Warm() error {
	for _, k := range e.graph.Keys() {
		if s := e.source(k); s.err != nil {
			return s.err
		}
	}
	return nil
}

func (e *Enumerator) lookup(from, to keypad.Key) (*source, error) {
	if !e.graph.Has(to) {
		return nil, fmt.Errorf("%w: %q on %q", keypad.ErrUnknownKey, to, e.graph.Name())
	}
	if !e.graph.Has(from) {
		return nil, fmt.Errorf("%w: %q on %q", keypad.ErrUnknownKey, from, e.graph.Name())
	}
	s := e.source(from)
	if s.err != nil {
		return nil, s.err
	}
	if _, ok := s.paths[to]; !ok {
		return nil, fmt.Errorf("%w: %q → %q on %q", ErrUnreachable, from, to, e.graph.Name())
	}
	return s, nil
}

// source returns the finished entry for from, running its search exactly once.
// Concurrent callers for the same key wait on done.
func (e *Enumerator) source(from keypad.Key) *source {
	e.mu.Lock()
	s, ok := e.sources[from]
	if ok {
		e.mu.Unlock()
		<-s.done
		return s
	}
	s = &source{done: make(chan struct{})}
	e.sources[from] = s
	e.mu.Unlock()

	defer close(s.done)
	e.searches.Add(1)
	res, err := bfs.BFS(e.graph, from)
	if err != nil {
		s.err = fmt.Errorf("paths: search from %q on %q: %w", from, e.graph.Name(), err)
		return s
	}
	s.depth = res.Depth
	s.paths = make(map[keypad.Key][]keypad.Sequence, len(res.Depth))
	for to := range res.Depth {
		seqs, err := res.PathsTo(to)
		if err != nil {
			s.err = fmt.Errorf("paths: expand %q → %q on %q: %w", from, to, e.graph.Name(), err)
			return s
		}
		s.paths[to] = seqs
	}
	return s
}
