package cost

import "github.com/katalvlaran/keychain/keypad"

// CostReentering evaluates seq at depth with (seq, depth) already marked as
// in progress, as a corrupted graph leading back to itself would.
func (m *Memoizer) CostReentering(seq keypad.Sequence, depth int) (int64, error) {
	key := cacheKey{seq: seq, depth: depth}
	ev := &evaluation{m: m, active: map[cacheKey]struct{}{key: {}}}
	return ev.cost(seq, depth)
}
