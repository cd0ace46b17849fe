package keypad

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// layoutDoc is the YAML shape of a layout. Exactly one of Rows or Keys is set.
//
//	name: directional
//	rows:
//	  - " ^A"
//	  - "<v>"
//
//	name: custom
//	keys:
//	  - {symbol: "^", x: 1, y: 0}
//	  - {symbol: "A", x: 2, y: 0}
//	gaps:
//	  - {x: 0, y: 0}
type layoutDoc struct {
	Name string     `yaml:"name"`
	Rows []string   `yaml:"rows"`
	Keys []keyDoc   `yaml:"keys"`
	Gaps []coordDoc `yaml:"gaps"`
}

type keyDoc struct {
	Symbol string `yaml:"symbol"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

type coordDoc struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ParseYAML decodes a single layout document and validates it with NewLayout.
func ParseYAML(data []byte) (*Layout, error) {
	layouts, err := LoadYAML(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(layouts) != 1 {
		return nil, fmt.Errorf("%w: expected one layout document, got %d", ErrConfiguration, len(layouts))
	}
	return layouts[0], nil
}

// LoadYAML decodes every layout document in r ("---" separated), in order.
// Unknown fields and malformed documents fail with ErrConfiguration.
func LoadYAML(r io.Reader) ([]*Layout, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var out []*Layout
	for i := 0; ; i++ {
		var doc layoutDoc
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %v", ErrConfiguration, i, err)
		}
		spec, err := doc.spec()
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		l, err := NewLayout(spec)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		out = append(out, l)
	}
	return out, nil
}

func (d layoutDoc) spec() (Spec, error) {
	switch {
	case len(d.Rows) > 0 && len(d.Keys) > 0:
		return Spec{}, fmt.Errorf("%w: %q sets both rows and keys", ErrConfiguration, d.Name)
	case len(d.Rows) > 0:
		if len(d.Gaps) > 0 {
			return Spec{}, fmt.Errorf("%w: %q mixes rows with explicit gaps", ErrConfiguration, d.Name)
		}
		return FromRows(d.Name, d.Rows...), nil
	}

	spec := Spec{Name: d.Name}
	for _, k := range d.Keys {
		r, size := utf8.DecodeRuneInString(k.Symbol)
		if size == 0 || size != len(k.Symbol) || r == utf8.RuneError {
			return Spec{}, fmt.Errorf("%w: %q in layout %q", ErrInvalidSymbol, k.Symbol, d.Name)
		}
		spec.Keys = append(spec.Keys, KeySpec{Symbol: Key(r), At: Coord{X: k.X, Y: k.Y}})
	}
	for _, g := range d.Gaps {
		spec.Gaps = append(spec.Gaps, Coord{X: g.X, Y: g.Y})
	}
	return spec, nil
}
