// Package world provides the fixed-size tile grid and the collision primitives
// the simulation uses against it.
package world

// Tile represents a single map tile.
type Tile uint8

const (
	// TileOpen is walkable ground. It is the zero value, so a fresh grid is open.
	TileOpen Tile = iota
	// TileWall represents an impassable wall tile.
	TileWall
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileOpen
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileOpen:
		return "open"
	case TileWall:
		return "wall"
	default:
		return "unknown"
	}
}
