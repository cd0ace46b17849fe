package keypad

import "sync"

var (
	numeric = sync.OnceValue(func() *Layout {
		return MustLayout(FromRows("numeric",
			"789",
			"456",
			"123",
			" 0A",
		))
	})
	directional = sync.OnceValue(func() *Layout {
		return MustLayout(FromRows("directional",
			" ^A",
			"<v>",
		))
	})
)

// Numeric returns the door keypad: digits 0–9 plus A, gap at the bottom-left.
// The layout is built once and shared.
func Numeric() *Layout { return numeric() }

// Directional returns the robot control keypad: four arrows plus A,
// gap at the top-left. The layout is built once and shared.
func Directional() *Layout { return directional() }
