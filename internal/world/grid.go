package world

const (
	// Screen dimensions in pixels. One region fills the screen exactly.
	ScreenWidth  = 800
	ScreenHeight = 576

	// TileSize is the edge length of a tile and of every entity bounding box.
	TileSize = 32

	// Grid dimensions in tiles.
	GridWidth  = ScreenWidth / TileSize
	GridHeight = ScreenHeight / TileSize

	// MaxX and MaxY are the largest top-left pixel positions that keep a
	// tile-sized box on screen.
	MaxX = ScreenWidth - TileSize
	MaxY = ScreenHeight - TileSize
)

// Grid represents the tile layout of one region.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// NewGrid creates a grid of the given size with every tile open.
func NewGrid(width, height int) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}

	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}
}

// InBounds returns true if the cell (col, row) lies inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Width && row >= 0 && row < g.Height
}

// GetTile returns the tile at the given cell. Cells outside the grid read as walls.
func (g *Grid) GetTile(col, row int) Tile {
	if !g.InBounds(col, row) {
		return TileWall
	}
	return g.Tiles[row][col]
}

// SetTile replaces the tile at the given cell. Out-of-bounds writes are ignored.
func (g *Grid) SetTile(col, row int, t Tile) {
	if g.InBounds(col, row) {
		g.Tiles[row][col] = t
	}
}

// CellAt converts a pixel position to the cell that contains it.
func CellAt(px, py int) (col, row int) {
	return floorDiv(px, TileSize), floorDiv(py, TileSize)
}

// IsBlockedAt returns true if the pixel (px, py) lies in a wall or outside the grid.
func (g *Grid) IsBlockedAt(px, py int) bool {
	col, row := CellAt(px, py)
	if !g.InBounds(col, row) {
		return true
	}
	return !g.Tiles[row][col].IsPassable()
}

// IsCollision samples the four corners of a size×size box at (px, py). The far
// corners are inset by one pixel so a box flush against a wall does not touch it.
func (g *Grid) IsCollision(px, py, size int) bool {
	return g.IsBlockedAt(px, py) ||
		g.IsBlockedAt(px+size-1, py) ||
		g.IsBlockedAt(px, py+size-1) ||
		g.IsBlockedAt(px+size-1, py+size-1)
}

// floorDiv divides rounding toward negative infinity, so pixel -1 maps to cell -1.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
