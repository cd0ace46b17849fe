package keypad

import (
	"fmt"
	"sort"
	"unicode"
)

// gapSymbol marks a forbidden cell in FromRows input.
const gapSymbol = ' '

// NewLayout validates spec and builds its adjacency table.
// Returns ErrEmptyLayout, ErrInvalidSymbol, ErrDuplicateKey, ErrDuplicateCoord,
// ErrKeyOnGap or ErrDisconnected, each wrapping ErrConfiguration.
// Complexity: O(K log K) time (sorted key order), O(K) memory.
func NewLayout(spec Spec) (*Layout, error) {
	if len(spec.Keys) == 0 {
		return nil, fmt.Errorf("%w (%q)", ErrEmptyLayout, spec.Name)
	}
	l := &Layout{
		name:  spec.Name,
		keys:  make([]Key, 0, len(spec.Keys)),
		at:    make(map[Key]Coord, len(spec.Keys)),
		cells: make(map[Coord]Key, len(spec.Keys)),
		gaps:  make(map[Coord]struct{}, len(spec.Gaps)),
		adj:   make(map[Key][]Edge, len(spec.Keys)),
	}
	for _, c := range spec.Gaps {
		l.gaps[c] = struct{}{}
	}

	// 1) Place every key, rejecting symbol and cell clashes.
	for _, ks := range spec.Keys {
		if !validSymbol(ks.Symbol) {
			return nil, fmt.Errorf("%w: %q in layout %q", ErrInvalidSymbol, ks.Symbol, spec.Name)
		}
		if _, dup := l.at[ks.Symbol]; dup {
			return nil, fmt.Errorf("%w: %q in layout %q", ErrDuplicateKey, ks.Symbol, spec.Name)
		}
		if other, dup := l.cells[ks.At]; dup {
			return nil, fmt.Errorf("%w: %q and %q at (%d,%d) in layout %q",
				ErrDuplicateCoord, other, ks.Symbol, ks.At.X, ks.At.Y, spec.Name)
		}
		if _, gap := l.gaps[ks.At]; gap {
			return nil, fmt.Errorf("%w: %q at (%d,%d) in layout %q",
				ErrKeyOnGap, ks.Symbol, ks.At.X, ks.At.Y, spec.Name)
		}
		l.at[ks.Symbol] = ks.At
		l.cells[ks.At] = ks.Symbol
		l.keys = append(l.keys, ks.Symbol)
	}
	sort.Slice(l.keys, func(i, j int) bool { return l.keys[i] < l.keys[j] })

	// 2) Adjacency: only occupied, non-gap cells become neighbors.
	for _, k := range l.keys {
		c := l.at[k]
		edges := make([]Edge, 0, len(moves))
		for _, m := range moves {
			if nbr, ok := l.cells[Coord{X: c.X + m.dx, Y: c.Y + m.dy}]; ok {
				edges = append(edges, Edge{Dir: m.dir, To: nbr})
			}
		}
		l.adj[k] = edges
	}

	// 3) The whole layout must be one component.
	if missing := l.unreachable(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q cannot reach %q", ErrDisconnected, spec.Name, string(missing))
	}

	return l, nil
}

// MustLayout is like NewLayout but panics on error.
// Intended for layouts that are compile-time constants.
func MustLayout(spec Spec) *Layout {
	l, err := NewLayout(spec)
	if err != nil {
		panic(err)
	}
	return l
}

// FromRows builds a Spec from text rows: each rune is a key at (column, row),
// and a space marks a gap cell.
//
//	FromRows("directional", " ^A", "<v>")
func FromRows(name string, rows ...string) Spec {
	spec := Spec{Name: name}
	for y, row := range rows {
		for x, r := range []rune(row) {
			c := Coord{X: x, Y: y}
			if r == gapSymbol {
				spec.Gaps = append(spec.Gaps, c)
				continue
			}
			spec.Keys = append(spec.Keys, KeySpec{Symbol: Key(r), At: c})
		}
	}
	return spec
}

func validSymbol(k Key) bool {
	return k != gapSymbol && unicode.IsGraphic(rune(k)) && !unicode.IsSpace(rune(k))
}

// Name returns the layout name given in its Spec.
func (l *Layout) Name() string { return l.name }

// Keys returns all keys in ascending symbol order. The slice is a copy.
func (l *Layout) Keys() []Key {
	out := make([]Key, len(l.keys))
	copy(out, l.keys)
	return out
}

// Has reports whether k is a key on this layout.
func (l *Layout) Has(k Key) bool {
	_, ok := l.at[k]
	return ok
}

// Coord returns the cell of k.
func (l *Layout) Coord(k Key) (Coord, error) {
	c, ok := l.at[k]
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q on %q", ErrUnknownKey, k, l.name)
	}
	return c, nil
}

// KeyAt returns the key occupying c, if any. Gap cells report false.
func (l *Layout) KeyAt(c Coord) (Key, bool) {
	k, ok := l.cells[c]
	return k, ok
}

// IsGap reports whether c is a forbidden gap cell.
func (l *Layout) IsGap(c Coord) bool {
	_, ok := l.gaps[c]
	return ok
}

// Neighbors returns the legal moves from k, ordered Up, Right, Down, Left.
// The returned slice must not be modified.
// Complexity: O(1).
func (l *Layout) Neighbors(k Key) ([]Edge, error) {
	edges, ok := l.adj[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q on %q", ErrUnknownKey, k, l.name)
	}
	return edges, nil
}
