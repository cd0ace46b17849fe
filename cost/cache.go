package cost

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/keychain/keypad"
)

// cacheKey is the exact (sequence, remaining depth) pair.
type cacheKey struct {
	seq   keypad.Sequence
	depth int
}

// entry is one cached result. done is closed once cost and err are final.
type entry struct {
	done chan struct{}
	cost int64
	err  error
}

// Stats is a snapshot of Cache activity.
type Stats struct {
	Entries int   // keys stored
	Hits    int64 // lookups answered from an existing entry
	Misses  int64 // lookups that had to compute
}

// Cache memoizes (sequence, depth) → minimal press count.
// It is append-only and safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]*entry
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]*entry)}
}

// Len returns the number of stored keys.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	return Stats{Entries: c.Len(), Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// Lookup returns a finished cost for (seq, depth), if one is stored.
// It never waits on an in-flight computation and does not touch the counters.
func (c *Cache) Lookup(seq keypad.Sequence, depth int) (int64, bool) {
	c.mu.Lock()
	e, ok := c.entries[cacheKey{seq: seq, depth: depth}]
	c.mu.Unlock()
	if !ok {
		return 0, false
	}
	select {
	case <-e.done:
		return e.cost, e.err == nil
	default:
		return 0, false
	}
}

// resolve returns the value for key, running compute only if no caller has
// before. Concurrent callers for the same key block until it finishes.
func (c *Cache) resolve(key cacheKey, compute func() (int64, error)) (int64, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		c.mu.Unlock()
		c.hits.Add(1)
		<-e.done
		return e.cost, e.err
	}
	e := &entry{done: make(chan struct{})}
	c.entries[key] = e
	c.mu.Unlock()

	c.misses.Add(1)
	e.cost, e.err = compute()
	close(e.done)
	return e.cost, e.err
}
