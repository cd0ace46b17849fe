package keypad

import (
	"fmt"
	"strings"
)

// Sequence is an arrow program typed on a directional keypad: zero or more
// moves followed by exactly one Activate. Sequences are immutable strings so
// they can key maps directly.
type Sequence string

// Len is the number of presses needed to type s directly.
func (s Sequence) Len() int { return len(s) }

// String returns s as text.
func (s Sequence) String() string { return string(s) }

// Validate checks that s is moves followed by a single trailing Activate.
func (s Sequence) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidSequence)
	}
	last := len(s) - 1
	if Direction(s[last]) != Activate {
		return fmt.Errorf("%w: %q does not end with %q", ErrInvalidSequence, string(s), Activate)
	}
	for i := 0; i < last; i++ {
		if !Direction(s[i]).IsMove() {
			return fmt.Errorf("%w: %q has %q at %d", ErrInvalidSequence, string(s), s[i], i)
		}
	}
	return nil
}

// NewSequence joins moves and appends the trailing Activate.
func NewSequence(moves []Direction) Sequence {
	var b strings.Builder
	b.Grow(len(moves) + 1)
	for _, d := range moves {
		b.WriteRune(rune(d))
	}
	b.WriteRune(rune(Activate))
	return Sequence(b.String())
}
