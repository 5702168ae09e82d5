package world

// Rect is an axis-aligned box in pixel space, anchored at its top-left corner.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the box
}

// TileRect returns the tile-sized box anchored at pixel position (x, y).
func TileRect(x, y int) Rect {
	return Rect{X: x, Y: y, Width: TileSize, Height: TileSize}
}

// Contains returns true if the given point is inside the box.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this box overlaps with another box.
// Boxes that only share an edge do not overlap.
func (r Rect) Intersects(other Rect) bool {
	return BoxesOverlap(r.X, r.Y, r.Width, r.Height, other.X, other.Y, other.Width, other.Height)
}

// Translate returns the box moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// BoxesOverlap reports whether box a and box b overlap. They are apart when one
// box's edge lies at or beyond the other's opposite edge on either axis.
func BoxesOverlap(ax, ay, aw, ah, bx, by, bw, bh int) bool {
	return ax < bx+bw &&
		ax+aw > bx &&
		ay < by+bh &&
		ay+ah > by
}
