// Package keypad defines core types and sentinel errors
// for keypad layouts and arrow sequences.
package keypad

import (
	"errors"
	"fmt"
)

// Umbrella sentinels. Every error produced by this module for a malformed
// layout wraps ErrConfiguration; every error for an impossible request
// (unknown key, unreachable pair, malformed sequence or code) wraps ErrInvariant.
var (
	// ErrConfiguration indicates a malformed layout definition.
	ErrConfiguration = errors.New("keypad: invalid layout configuration")

	// ErrInvariant indicates a request that violates a layout invariant.
	ErrInvariant = errors.New("keypad: invariant violation")
)

// Sentinel errors for layout construction.
var (
	// ErrEmptyLayout indicates a Spec with no keys.
	ErrEmptyLayout = fmt.Errorf("%w: layout has no keys", ErrConfiguration)
	// ErrInvalidSymbol indicates a key symbol that cannot label a button.
	ErrInvalidSymbol = fmt.Errorf("%w: invalid key symbol", ErrConfiguration)
	// ErrDuplicateKey indicates the same symbol placed twice.
	ErrDuplicateKey = fmt.Errorf("%w: duplicate key", ErrConfiguration)
	// ErrDuplicateCoord indicates two keys sharing one cell.
	ErrDuplicateCoord = fmt.Errorf("%w: duplicate coordinate", ErrConfiguration)
	// ErrKeyOnGap indicates a key placed on a forbidden gap cell.
	ErrKeyOnGap = fmt.Errorf("%w: key placed on gap cell", ErrConfiguration)
	// ErrDisconnected indicates keys unreachable from the rest of the layout.
	ErrDisconnected = fmt.Errorf("%w: layout is not connected", ErrConfiguration)
)

// Sentinel errors for lookups and sequences.
var (
	// ErrUnknownKey indicates a key that does not exist on the layout.
	ErrUnknownKey = fmt.Errorf("%w: key not on layout", ErrInvariant)
	// ErrInvalidSequence indicates a malformed arrow sequence.
	ErrInvalidSequence = fmt.Errorf("%w: invalid direction sequence", ErrInvariant)
)

// Key labels a single button. Identity is layout + symbol.
type Key rune

// String returns the key symbol.
func (k Key) String() string { return string(k) }

// Direction is a symbol on the directional keypad: one of four arrows or Activate.
type Direction rune

const (
	// Up moves the arm one row up.
	Up Direction = '^'
	// Right moves the arm one column right.
	Right Direction = '>'
	// Down moves the arm one row down.
	Down Direction = 'v'
	// Left moves the arm one column left.
	Left Direction = '<'
	// Activate presses the button under the arm.
	Activate Direction = 'A'
)

// Home is the key every arm rests on before the first press.
const Home Key = 'A'

// String returns the direction symbol.
func (d Direction) String() string { return string(d) }

// IsMove reports whether d is one of the four arrows.
func (d Direction) IsMove() bool {
	switch d {
	case Up, Right, Down, Left:
		return true
	}
	return false
}

// moves lists the arrows with their grid offsets, in neighbor order.
var moves = [4]struct {
	dir    Direction
	dx, dy int
}{
	{Up, 0, -1},
	{Right, 1, 0},
	{Down, 0, 1},
	{Left, -1, 0},
}

// Coord is a grid cell; X grows rightward, Y grows downward.
type Coord struct {
	X, Y int
}

// Edge is one legal arm move: pressing Dir moves the arm onto To.
type Edge struct {
	Dir Direction
	To  Key
}

// KeySpec places one key on the grid.
type KeySpec struct {
	Symbol Key
	At     Coord
}

// Spec is the declarative definition of a layout, validated by NewLayout.
type Spec struct {
	Name string
	Keys []KeySpec
	Gaps []Coord
}

// Layout is an immutable keypad graph. It is safe for concurrent use.
// adj holds, per key, its neighbors ordered Up, Right, Down, Left.
type Layout struct {
	name  string
	keys  []Key
	at    map[Key]Coord
	cells map[Coord]Key
	gaps  map[Coord]struct{}
	adj   map[Key][]Edge
}
