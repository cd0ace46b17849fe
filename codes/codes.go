// Package codes parses door codes: one or more decimal digits followed by
// a single trailing A, e.g. "029A".
package codes

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/keychain/keypad"
)

// ErrInvalidCode indicates text that is not digits followed by one A.
var ErrInvalidCode = fmt.Errorf("%w: invalid code", keypad.ErrInvariant)

// Code is a validated door code. The zero value is not a valid Code.
type Code struct {
	text  string
	value int64
}

// Parse validates s against [0-9]+A and computes its numeric value.
func Parse(s string) (Code, error) {
	n := len(s)
	if n < 2 || s[n-1] != byte(keypad.Activate) {
		return Code{}, fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}
	digits := s[:n-1]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Code{}, fmt.Errorf("%w: %q has %q at %d", ErrInvalidCode, s, digits[i], i)
		}
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Code{}, fmt.Errorf("%w: %q: %v", ErrInvalidCode, s, err)
	}
	return Code{text: s, value: v}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseAll parses every string in order, stopping at the first failure.
func ParseAll(ss []string) ([]Code, error) {
	out := make([]Code, 0, len(ss))
	for i, s := range ss {
		c, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("codes: item %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Read parses one code per line. Surrounding whitespace and blank lines are
// ignored; errors name the 1-based line.
func Read(r io.Reader) ([]Code, error) {
	var out []Code
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		c, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("codes: line %d: %w", line, err)
		}
		out = append(out, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("codes: read: %w", err)
	}
	return out, nil
}

// String returns the code as typed, including the trailing A.
func (c Code) String() string { return c.text }

// Value returns the digit prefix as an integer.
func (c Code) Value() int64 { return c.value }

// Keys returns the numeric keypad keys to press, in order.
func (c Code) Keys() []keypad.Key {
	out := make([]keypad.Key, len(c.text))
	for i := 0; i < len(c.text); i++ {
		out[i] = keypad.Key(c.text[i])
	}
	return out
}
