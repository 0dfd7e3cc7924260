// seehuhn.de/go/sunburst - procedurally generated ray patterns
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package palette defines the colours used to draw a ray pattern.
package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"seehuhn.de/go/sunburst"
)

// Color is an opaque sRGB colour. In configuration files and other text
// formats it is written as "#rrggbb".
type Color struct {
	colorful.Color
}

// ParseHex parses a colour in the form "#rrggbb" or "#rgb". The leading
// "#" is optional.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return Color{}, fmt.Errorf("invalid colour %q: need 3 or 6 hex digits", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return Color{c}, nil
}

// MustParseHex is like [ParseHex] but panics on invalid input.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the colour in the form "#rrggbb".
func (c Color) Hex() string {
	return c.Clamped().Hex()
}

func (c Color) String() string {
	return c.Hex()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Palette holds the background colour and one line colour per ray family.
type Palette struct {
	Background Color `json:"background" mapstructure:"background" toml:"background" yaml:"background"`
	Center     Color `json:"center" mapstructure:"center" toml:"center" yaml:"center"`
	Corner     Color `json:"corner" mapstructure:"corner" toml:"corner" yaml:"corner"`
	Edge       Color `json:"edge" mapstructure:"edge" toml:"edge" yaml:"edge"`
}

// ForFamily returns the line colour for rays of the given family.
func (p Palette) ForFamily(f sunburst.Family) Color {
	switch f {
	case sunburst.Corner:
		return p.Corner
	case sunburst.Edge:
		return p.Edge
	default:
		return p.Center
	}
}

// Slots lists the names of the colours in a palette, as accepted by
// [Palette.Get].
var Slots = []string{"background", "center", "corner", "edge"}

func (p *Palette) slot(name string) *Color {
	switch strings.ToLower(name) {
	case "background":
		return &p.Background
	case "center":
		return &p.Center
	case "corner":
		return &p.Corner
	case "edge":
		return &p.Edge
	}
	return nil
}

// Get returns the colour in the named slot.
func (p Palette) Get(name string) (Color, error) {
	c := p.slot(name)
	if c == nil {
		return Color{}, fmt.Errorf("unknown palette slot %q", name)
	}
	return *c, nil
}

// The preset palettes.
var (
	Light = Palette{
		Background: MustParseHex("#F8F8F8"),
		Center:     MustParseHex("#F8E71C"),
		Corner:     MustParseHex("#4A90E2"),
		Edge:       MustParseHex("#FA2800"),
	}
	Amber = Palette{
		Background: MustParseHex("#FFC500"),
		Center:     MustParseHex("#F5F5F5"),
		Corner:     MustParseHex("#2A7341"),
		Edge:       MustParseHex("#FA2800"),
	}
)

var presets = map[string]Palette{
	"light": Light,
	"amber": Amber,
}

// Preset returns the named preset palette.
func Preset(name string) (Palette, bool) {
	p, ok := presets[strings.ToLower(name)]
	return p, ok
}

// PresetNames lists the names accepted by [Preset].
func PresetNames() []string {
	return []string{"light", "amber"}
}

// Pick chooses one of the two preset palettes with equal probability.
// Draws above 0.5 select [Light].
func Pick(src sunburst.Source) Palette {
	if src.Float64() > 0.5 {
		return Light
	}
	return Amber
}
