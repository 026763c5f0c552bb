package world

import (
	"errors"
	"fmt"

	"github.com/samdwyer/verbonia/internal/geom"
)

var (
	// ErrDimensionMismatch is returned when map rows differ in length.
	ErrDimensionMismatch = errors.New("world: map rows differ in length")
	// ErrEmptyMap is returned when a map has no rows or no columns.
	ErrEmptyMap = errors.New("world: map is empty")
)

// DimensionError reports the first row whose length disagrees with row 0.
type DimensionError struct {
	Row      int
	Width    int
	Expected int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("world: row %d has width %d, expected %d", e.Row, e.Width, e.Expected)
}

func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

// Map is a fixed-size, row-major grid of tiles.
type Map struct {
	tiles [][]Tile
	size  geom.Size
}

// NewMap creates a map from rows of tiles. Every row must have the same, non-zero length.
// The map takes ownership of rows.
func NewMap(rows [][]Tile) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}

	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, &DimensionError{Row: y, Width: len(row), Expected: width}
		}
	}

	return &Map{
		tiles: rows,
		size:  geom.Sz(width, len(rows)),
	}, nil
}

// Filled creates a width x height map of a single tile.
func Filled(width, height int, tile Tile) (*Map, error) {
	rows := make([][]Tile, height)
	for y := range rows {
		rows[y] = make([]Tile, width)
		for x := range rows[y] {
			rows[y][x] = tile
		}
	}
	return NewMap(rows)
}

// Size returns the map dimensions.
func (m *Map) Size() geom.Size {
	return m.size
}

// Width returns the number of columns.
func (m *Map) Width() int {
	return m.size.Width
}

// Height returns the number of rows.
func (m *Map) Height() int {
	return m.size.Height
}

// Bounds returns the rectangle covered by the map.
func (m *Map) Bounds() geom.Rect {
	return geom.Rect{Size: m.size}
}

// InBounds reports whether p is a cell of the map.
func (m *Map) InBounds(p geom.Point) bool {
	return m.Bounds().Contains(p)
}

// At returns the tile at p, or TileEmpty outside the map.
func (m *Map) At(p geom.Point) Tile {
	if !m.InBounds(p) {
		return TileEmpty
	}
	return m.tiles[p.Y][p.X]
}

// Region returns the rows and columns of the map covered by r, sharing the map's storage.
// r must lie entirely inside the map; anything else is a caller bug and panics.
func (m *Map) Region(r geom.Rect) [][]Tile {
	if r.Width() < 0 || r.Height() < 0 || r.X() < 0 || r.Y() < 0 ||
		r.Right() > m.size.Width || r.Bottom() > m.size.Height {
		panic(fmt.Sprintf("world: region x=[%d,%d) y=[%d,%d) outside %dx%d map",
			r.X(), r.Right(), r.Y(), r.Bottom(), m.size.Width, m.size.Height))
	}

	rows := make([][]Tile, 0, r.Height())
	for y := r.Y(); y < r.Bottom(); y++ {
		rows = append(rows, m.tiles[y][r.X():r.Right()])
	}
	return rows
}

// String renders the map back into its text form.
func (m *Map) String() string {
	buf := make([]rune, 0, (m.size.Width+1)*m.size.Height)
	for y, row := range m.tiles {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for _, t := range row {
			buf = append(buf, t.Rune())
		}
	}
	return string(buf)
}
