package complexity

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/keychain/codes"
	"github.com/katalvlaran/keychain/cost"
	"github.com/katalvlaran/keychain/keypad"
	"github.com/katalvlaran/keychain/paths"
)

// Aggregator prices codes against one pair of keypads.
// It owns the PathSet and cost caches and is safe for concurrent use.
type Aggregator struct {
	opts        Options
	numeric     *paths.Enumerator
	directional *paths.Enumerator
	memo        *cost.Memoizer
}

// New builds an Aggregator from DefaultOptions and opts.
func New(opts ...Option) (*Aggregator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	dir := paths.New(o.Directional)
	return &Aggregator{
		opts:        o,
		numeric:     paths.New(o.Numeric),
		directional: dir,
		memo:        cost.New(dir, cost.NewCache()),
	}, nil
}

// Total prices ss with a fresh Aggregator on the standard keypads.
func Total(ss []string, depth int) (int64, error) {
	cs, err := codes.ParseAll(ss)
	if err != nil {
		return 0, err
	}
	a, err := New()
	if err != nil {
		return 0, err
	}
	return a.Complexity(cs, depth)
}

// PressCount returns the minimal number of human presses that make the
// numeric keypad's robot type code, with depth directional keypads in between.
func (a *Aggregator) PressCount(code codes.Code, depth int) (int64, error) {
	if depth < 0 {
		return 0, fmt.Errorf("%w (%d)", cost.ErrNegativeDepth, depth)
	}
	var total int64
	prev := keypad.Home
	for _, k := range code.Keys() {
		cands, err := a.numeric.Paths(prev, k)
		if err != nil {
			return 0, fmt.Errorf("complexity: code %s: %w", code, err)
		}
		best := int64(-1)
		for _, c := range cands {
			v, err := a.memo.Cost(c, depth)
			if err != nil {
				return 0, fmt.Errorf("complexity: code %s: %w", code, err)
			}
			if best < 0 || v < best {
				best = v
			}
		}
		if best > math.MaxInt64-total {
			return 0, fmt.Errorf("complexity: code %s: %w", code, cost.ErrOverflow)
		}
		total += best
		prev = k
	}
	return total, nil
}

// CodeComplexity returns PressCount(code, depth) × code.Value().
func (a *Aggregator) CodeComplexity(code codes.Code, depth int) (int64, error) {
	n, err := a.PressCount(code, depth)
	if err != nil {
		return 0, err
	}
	if code.Value() != 0 && n > math.MaxInt64/code.Value() {
		return 0, fmt.Errorf("complexity: code %s at depth %d: %w", code, depth, cost.ErrOverflow)
	}
	v := n * code.Value()
	a.opts.Logger.Debug("code priced",
		"code", code.String(), "depth", depth, "presses", n, "complexity", v)
	return v, nil
}

// Complexity returns the sum of CodeComplexity over cs.
// With more than one worker the codes are priced concurrently; the result
// does not depend on the worker count.
func (a *Aggregator) Complexity(cs []codes.Code, depth int) (int64, error) {
	parts := make([]int64, len(cs))
	if a.opts.Workers <= 1 {
		for i, c := range cs {
			v, err := a.CodeComplexity(c, depth)
			if err != nil {
				return 0, err
			}
			parts[i] = v
		}
	} else {
		// every worker walks the directional pad; fill it before fanning out
		if err := a.directional.Warm(); err != nil {
			return 0, fmt.Errorf("complexity: %w", err)
		}
		var g errgroup.Group
		g.SetLimit(a.opts.Workers)
		for i, c := range cs {
			g.Go(func() error {
				v, err := a.CodeComplexity(c, depth)
				parts[i] = v
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return 0, err
		}
	}

	var total int64
	for _, v := range parts {
		if v > math.MaxInt64-total {
			return 0, fmt.Errorf("complexity: sum at depth %d: %w", depth, cost.ErrOverflow)
		}
		total += v
	}
	st := a.memo.Cache().Stats()
	a.opts.Logger.Info("complexity computed",
		"codes", len(cs), "depth", depth, "total", total, "workers", a.opts.Workers,
		"cache_entries", st.Entries, "cache_hits", st.Hits, "cache_misses", st.Misses,
		"searches", a.numeric.Searches()+a.directional.Searches())
	return total, nil
}

// Cache returns the shared cost cache.
func (a *Aggregator) Cache() *cost.Cache { return a.memo.Cache() }
