// Package world provides the map, the actors living on it, and the world that ties them together.
package world

// Tile represents a single map tile. Its value is the character used for it in text maps.
type Tile rune

const (
	// TileEmpty is the void outside any structure.
	TileEmpty Tile = ' '
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
	// TileGrass represents passable outdoor ground.
	TileGrass Tile = ','
)

// Tiles lists every tile kind in display order.
var Tiles = []Tile{TileEmpty, TileWall, TileFloor, TileGrass}

// TileFromRune maps a text-map character to its tile.
func TileFromRune(r rune) (Tile, bool) {
	switch t := Tile(r); t {
	case TileEmpty, TileWall, TileFloor, TileGrass:
		return t, true
	default:
		return TileEmpty, false
	}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor || t == TileGrass
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileGrass:
		return "grass"
	default:
		return "unknown"
	}
}
