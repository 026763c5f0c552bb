package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/verbonia/internal/world"
)

// Palette assigns a background colour to every tile kind.
type Palette map[world.Tile]tcell.Color

// DefaultPalette returns the built-in tile colours.
func DefaultPalette() Palette {
	return Palette{
		world.TileEmpty: tcell.ColorBlack,
		world.TileWall:  MustParseHexColor("#404040"),
		world.TileFloor: MustParseHexColor("#3f3222"),
		world.TileGrass: MustParseHexColor("#73a055"),
	}
}

// ParsePalette builds a palette from tile names to hex colours.
// Tiles missing from the input keep their default colour.
func ParsePalette(colors map[string]string) (Palette, error) {
	p := DefaultPalette()
	for name, hex := range colors {
		tile, ok := tileByName(name)
		if !ok {
			return nil, fmt.Errorf("ui: unknown tile %q in palette", name)
		}
		c, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("ui: palette entry %s: %w", name, err)
		}
		p[tile] = c
	}
	return p, nil
}

// Color returns the colour for a tile.
func (p Palette) Color(t world.Tile) tcell.Color {
	if c, ok := p[t]; ok {
		return c
	}
	return DefaultBackground
}

func tileByName(name string) (world.Tile, bool) {
	for _, t := range world.Tiles {
		if t.String() == name {
			return t, true
		}
	}
	return world.TileEmpty, false
}
