package keypad_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keychain/keypad"
)

func TestParseYAML_Rows(t *testing.T) {
	l, err := keypad.ParseYAML([]byte(`
name: directional
rows:
  - " ^A"
  - "<v>"
`))
	require.NoError(t, err)
	assert.Equal(t, "directional", l.Name())
	assert.Equal(t, keypad.Directional().Keys(), l.Keys())
	assert.True(t, l.IsGap(keypad.Coord{X: 0, Y: 0}))
}

func TestParseYAML_Keys(t *testing.T) {
	l, err := keypad.ParseYAML([]byte(`
name: strip
keys:
  - {symbol: "A", x: 0, y: 0}
  - {symbol: "B", x: 1, y: 0}
gaps:
  - {x: 2, y: 0}
`))
	require.NoError(t, err)
	edges, err := l.Neighbors('A')
	require.NoError(t, err)
	assert.Equal(t, []keypad.Edge{{Dir: keypad.Right, To: 'B'}}, edges)
	assert.True(t, l.IsGap(keypad.Coord{X: 2, Y: 0}))
}

func TestLoadYAML_Stream(t *testing.T) {
	ls, err := keypad.LoadYAML(strings.NewReader(`
name: numeric
rows: ["789", "456", "123", " 0A"]
---
name: directional
rows: [" ^A", "<v>"]
`))
	require.NoError(t, err)
	require.Len(t, ls, 2)
	assert.Equal(t, "numeric", ls[0].Name())
	assert.Equal(t, "directional", ls[1].Name())
}

// TestParseYAML_Errors ensures every malformed document is a configuration error.
func TestParseYAML_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"Syntax", "name: [", keypad.ErrConfiguration},
		{"UnknownField", "name: x\ncolour: red\nrows: [\"12\"]", keypad.ErrConfiguration},
		{"RowsAndKeys", "name: x\nrows: [\"12\"]\nkeys: [{symbol: \"3\", x: 0, y: 1}]", keypad.ErrConfiguration},
		{"RowsAndGaps", "name: x\nrows: [\"12\"]\ngaps: [{x: 0, y: 1}]", keypad.ErrConfiguration},
		{"LongSymbol", "name: x\nkeys: [{symbol: \"AB\", x: 0, y: 0}]", keypad.ErrInvalidSymbol},
		{"EmptySymbol", "name: x\nkeys: [{symbol: \"\", x: 0, y: 0}]", keypad.ErrInvalidSymbol},
		{"DuplicateCoord", "name: x\nkeys: [{symbol: \"1\", x: 0, y: 0}, {symbol: \"2\", x: 0, y: 0}]", keypad.ErrDuplicateCoord},
		{"Disconnected", "name: x\nrows: [\"1 2\"]", keypad.ErrDisconnected},
		{"NoDocument", "", keypad.ErrConfiguration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := keypad.ParseYAML([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, keypad.ErrConfiguration)
		})
	}
}
