package bfs_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keychain/bfs"
	"github.com/katalvlaran/keychain/keypad"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 'A')
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(keypad.Directional(), '7')
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(keypad.Directional(), 'A', bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_DirectionalDepths checks distances from the home key.
func TestBFS_DirectionalDepths(t *testing.T) {
	res, err := bfs.BFS(keypad.Directional(), keypad.Home)
	require.NoError(t, err)

	want := map[keypad.Key]int{'A': 0, '^': 1, '>': 1, 'v': 2, '<': 3}
	assert.Equal(t, want, res.Depth)
	assert.Equal(t, []keypad.Key{'A', '>', '^', 'v', '<'}, res.Order)
	assert.Empty(t, res.Parents['A'], "start has no parent")
}

// TestBFS_TiedParents ensures a key reached equally fast from two sides keeps both parents.
func TestBFS_TiedParents(t *testing.T) {
	res, err := bfs.BFS(keypad.Directional(), keypad.Home)
	require.NoError(t, err)

	// v is one move from both > and ^.
	assert.ElementsMatch(t,
		[]bfs.Step{{From: '>', Dir: keypad.Left}, {From: '^', Dir: keypad.Down}},
		res.Parents['v'])
}

func TestPathsTo(t *testing.T) {
	cases := []struct {
		name     string
		layout   *keypad.Layout
		from, to keypad.Key
		want     []keypad.Sequence
	}{
		{"NumSelf", keypad.Numeric(), '5', '5', []keypad.Sequence{"A"}},
		{"NumAto0", keypad.Numeric(), 'A', '0', []keypad.Sequence{"<A"}},
		{"Num2to9", keypad.Numeric(), '2', '9', []keypad.Sequence{">^^A", "^>^A", "^^>A"}},
		// v>> would cross the gap under 1.
		{"Num1toA", keypad.Numeric(), '1', 'A', []keypad.Sequence{">>vA", ">v>A"}},
		// <<^ would cross the gap left of 0.
		{"NumAto1", keypad.Numeric(), 'A', '1', []keypad.Sequence{"<^<A", "^<<A"}},
		{"Num7toA", keypad.Numeric(), '7', 'A', []keypad.Sequence{
			">>vvvA", ">v>vvA", ">vv>vA", ">vvv>A", "v>>vvA", "v>v>vA", "v>vv>A", "vv>>vA", "vv>v>A",
		}},
		// <<v would cross the gap left of ^.
		{"DirAtoLeft", keypad.Directional(), 'A', '<', []keypad.Sequence{"<v<A", "v<<A"}},
		{"DirLefttoA", keypad.Directional(), '<', 'A', []keypad.Sequence{">>^A", ">^>A"}},
		{"DirUptoRight", keypad.Directional(), '^', '>', []keypad.Sequence{">vA", "v>A"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := bfs.BFS(tc.layout, tc.from)
			require.NoError(t, err)
			got, err := res.PathsTo(tc.to)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("PathsTo(%c→%c) mismatch (-want +got):\n%s", tc.from, tc.to, diff)
			}
		})
	}
}

// TestPathsTo_EqualLength checks minimality: every path to a key has length depth+1.
func TestPathsTo_EqualLength(t *testing.T) {
	for _, l := range []*keypad.Layout{keypad.Numeric(), keypad.Directional()} {
		for _, from := range l.Keys() {
			res, err := bfs.BFS(l, from)
			require.NoError(t, err)
			for _, to := range l.Keys() {
				seqs, err := res.PathsTo(to)
				require.NoError(t, err)
				require.NotEmpty(t, seqs)
				for _, s := range seqs {
					assert.Equal(t, res.Depth[to]+1, s.Len(), "%s %c→%c %q", l.Name(), from, to, s)
					assert.NoError(t, s.Validate())
				}
			}
		}
	}
}

// TestPathsTo_NeverEntersGap replays every path and checks each cell is a key.
func TestPathsTo_NeverEntersGap(t *testing.T) {
	step := map[byte][2]int{'^': {0, -1}, '>': {1, 0}, 'v': {0, 1}, '<': {-1, 0}}
	for _, l := range []*keypad.Layout{keypad.Numeric(), keypad.Directional()} {
		for _, from := range l.Keys() {
			res, err := bfs.BFS(l, from)
			require.NoError(t, err)
			for _, to := range l.Keys() {
				seqs, _ := res.PathsTo(to)
				for _, s := range seqs {
					c, _ := l.Coord(from)
					for i := 0; i < s.Len()-1; i++ {
						d := step[s[i]]
						c = keypad.Coord{X: c.X + d[0], Y: c.Y + d[1]}
						require.False(t, l.IsGap(c), "%s %q enters gap", l.Name(), s)
						_, ok := l.KeyAt(c)
						require.True(t, ok, "%s %q leaves the keypad", l.Name(), s)
					}
					end, _ := l.KeyAt(c)
					assert.Equal(t, to, end)
				}
			}
		}
	}
}

func TestPathsTo_Unreached(t *testing.T) {
	res, err := bfs.BFS(keypad.Numeric(), '7', bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, map[keypad.Key]int{'7': 0, '8': 1, '4': 1}, res.Depth)

	_, err = res.PathsTo('A')
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_OnVisit asserts the hook sees every key once and can abort the search.
func TestBFS_OnVisit(t *testing.T) {
	var seen []keypad.Key
	_, err := bfs.BFS(keypad.Directional(), '<', bfs.WithOnVisit(func(k keypad.Key, _ int) error {
		seen = append(seen, k)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []keypad.Key{'<', 'v', '^', '>', 'A'}, seen)

	stop := errors.New("stop")
	_, err = bfs.BFS(keypad.Directional(), '<', bfs.WithOnVisit(func(k keypad.Key, d int) error {
		if d == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// brokenGraph claims every key exists but cannot list neighbors.
type brokenGraph struct{}

func (brokenGraph) Has(keypad.Key) bool { return true }
func (brokenGraph) Neighbors(keypad.Key) ([]keypad.Edge, error) {
	return nil, errors.New("boom")
}

func TestBFS_NeighborsFailure(t *testing.T) {
	_, err := bfs.BFS(brokenGraph{}, 'A')
	assert.ErrorIs(t, err, bfs.ErrNeighbors)
}
