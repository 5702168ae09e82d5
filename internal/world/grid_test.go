package world

import "testing"

// borderedGrid returns a full-size grid with walls around the edge.
func borderedGrid() *Grid {
	g := NewGrid(GridWidth, GridHeight)
	for col := 0; col < g.Width; col++ {
		g.SetTile(col, 0, TileWall)
		g.SetTile(col, g.Height-1, TileWall)
	}
	for row := 0; row < g.Height; row++ {
		g.SetTile(0, row, TileWall)
		g.SetTile(g.Width-1, row, TileWall)
	}
	return g
}

func TestGridDimensions(t *testing.T) {
	if GridWidth != 25 || GridHeight != 18 {
		t.Fatalf("grid = %dx%d, want 25x18", GridWidth, GridHeight)
	}
	g := NewGrid(GridWidth, GridHeight)
	if len(g.Tiles) != GridHeight || len(g.Tiles[0]) != GridWidth {
		t.Fatalf("tiles = %dx%d, want %dx%d", len(g.Tiles[0]), len(g.Tiles), GridWidth, GridHeight)
	}
	if g.GetTile(3, 3) != TileOpen {
		t.Errorf("fresh grid tile = %v, want open", g.GetTile(3, 3))
	}
}

func TestIsBlockedAt(t *testing.T) {
	g := borderedGrid()

	tests := []struct {
		name   string
		px, py int
		want   bool
	}{
		{"open interior", 2 * TileSize, 2 * TileSize, false},
		{"last pixel of open cell", 2*TileSize - 1 + TileSize, 2 * TileSize, false},
		{"wall column", 0, 5 * TileSize, true},
		{"last pixel of wall column", TileSize - 1, 5 * TileSize, true},
		{"first pixel past wall column", TileSize, 5 * TileSize, false},
		{"negative x", -1, 5 * TileSize, true},
		{"negative y", 5 * TileSize, -1, true},
		{"past right edge", ScreenWidth, 5 * TileSize, true},
		{"past bottom edge", 5 * TileSize, ScreenHeight, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsBlockedAt(tt.px, tt.py); got != tt.want {
				t.Errorf("IsBlockedAt(%d, %d) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestIsCollision(t *testing.T) {
	g := borderedGrid()

	tests := []struct {
		name   string
		px, py int
		want   bool
	}{
		{"flush against left wall", TileSize, TileSize, false},
		{"one pixel into left wall", TileSize - 1, TileSize, true},
		{"one pixel into top wall", TileSize, TileSize - 1, true},
		{"flush against right wall", MaxX - TileSize, TileSize, false},
		{"one pixel into right wall", MaxX - TileSize + 1, TileSize, true},
		{"straddling two open cells", 3*TileSize + 16, 4*TileSize + 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsCollision(tt.px, tt.py, TileSize); got != tt.want {
				t.Errorf("IsCollision(%d, %d) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestIsCollisionSingleWallCorner(t *testing.T) {
	g := NewGrid(GridWidth, GridHeight)
	g.SetTile(5, 5, TileWall)

	// Box whose bottom-right corner pokes one pixel into the wall cell.
	if !g.IsCollision(4*TileSize+1, 4*TileSize+1, TileSize) {
		t.Error("box touching wall corner should collide")
	}
	// Box diagonally adjacent and flush.
	if g.IsCollision(4*TileSize, 4*TileSize, TileSize) {
		t.Error("box flush with wall corner should not collide")
	}
}

func TestGetTileOutOfBounds(t *testing.T) {
	g := NewGrid(4, 4)
	if g.GetTile(-1, 0) != TileWall || g.GetTile(4, 0) != TileWall {
		t.Error("out-of-bounds cells should read as walls")
	}
	g.SetTile(9, 9, TileWall) // ignored, must not panic
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		px, py   int
		col, row int
	}{
		{0, 0, 0, 0},
		{31, 31, 0, 0},
		{32, 64, 1, 2},
		{-1, -32, -1, -1},
		{-33, 0, -2, 0},
	}
	for _, tt := range tests {
		col, row := CellAt(tt.px, tt.py)
		if col != tt.col || row != tt.row {
			t.Errorf("CellAt(%d, %d) = (%d, %d), want (%d, %d)", tt.px, tt.py, col, row, tt.col, tt.row)
		}
	}
}
