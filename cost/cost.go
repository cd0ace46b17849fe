package cost

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/keychain/keypad"
	"github.com/katalvlaran/keychain/paths"
)

// Sentinel errors for cost evaluation.
var (
	// ErrNegativeDepth indicates a depth below zero.
	ErrNegativeDepth = errors.New("cost: depth must be non-negative")

	// ErrCycle indicates a (sequence, depth) key re-entered its own evaluation.
	ErrCycle = fmt.Errorf("%w: cyclic cost evaluation", keypad.ErrInvariant)

	// ErrOverflow indicates a press count that does not fit in an int64.
	ErrOverflow = fmt.Errorf("%w: press count overflows int64", keypad.ErrInvariant)
)

// Memoizer evaluates press counts against one directional layout.
// It is safe for concurrent use when its Enumerator and Cache are.
type Memoizer struct {
	paths *paths.Enumerator
	cache *Cache
}

// New returns a Memoizer expanding transitions with dir, the PathSet
// enumerator of the directional keypad. A nil cache gets a fresh one.
func New(dir *paths.Enumerator, cache *Cache) *Memoizer {
	if cache == nil {
		cache = NewCache()
	}
	return &Memoizer{paths: dir, cache: cache}
}

// Cache returns the cache backing m.
func (m *Memoizer) Cache() *Cache { return m.cache }

// Cost returns the minimal number of presses the human performs so that seq
// is typed on a directional keypad with depth more directional keypads in
// between.
func (m *Memoizer) Cost(seq keypad.Sequence, depth int) (int64, error) {
	if depth < 0 {
		return 0, fmt.Errorf("%w (%d)", ErrNegativeDepth, depth)
	}
	if err := seq.Validate(); err != nil {
		return 0, err
	}
	ev := &evaluation{m: m, active: make(map[cacheKey]struct{})}
	return ev.cost(seq, depth)
}

// evaluation is one top-level Cost call. active is the in-progress set of
// keys on the current recursion chain.
type evaluation struct {
	m      *Memoizer
	active map[cacheKey]struct{}
}

func (ev *evaluation) cost(seq keypad.Sequence, depth int) (int64, error) {
	if depth == 0 {
		return int64(seq.Len()), nil
	}
	key := cacheKey{seq: seq, depth: depth}
	if _, busy := ev.active[key]; busy {
		return 0, fmt.Errorf("%w: %q at depth %d", ErrCycle, string(seq), depth)
	}
	ev.active[key] = struct{}{}
	defer delete(ev.active, key)

	return ev.m.cache.resolve(key, func() (int64, error) {
		return ev.expand(seq, depth)
	})
}

// expand sums, over every transition of seq, the cheapest way for the next
// layer down to type that transition.
func (ev *evaluation) expand(seq keypad.Sequence, depth int) (int64, error) {
	var total int64
	prev := keypad.Home
	for _, r := range string(seq) {
		next := keypad.Key(r)
		cands, err := ev.m.paths.Paths(prev, next)
		if err != nil {
			return 0, fmt.Errorf("cost: transition %q → %q: %w", prev, next, err)
		}
		best, err := ev.cheapest(cands, depth-1)
		if err != nil {
			return 0, err
		}
		if best > math.MaxInt64-total {
			return 0, fmt.Errorf("%w: %q at depth %d", ErrOverflow, string(seq), depth)
		}
		total += best
		prev = next
	}
	return total, nil
}

// cheapest returns the minimum cost over cands. Ties are resolved by value
// only, so candidate order never changes the answer.
func (ev *evaluation) cheapest(cands []keypad.Sequence, depth int) (int64, error) {
	if len(cands) == 0 {
		return 0, fmt.Errorf("%w: empty path set", paths.ErrUnreachable)
	}
	best := int64(-1)
	for _, c := range cands {
		v, err := ev.cost(c, depth)
		if err != nil {
			return 0, err
		}
		if best < 0 || v < best {
			best = v
		}
	}
	return best, nil
}
