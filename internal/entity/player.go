package entity

import "github.com/samdwyer/tilequest/internal/world"

const (
	// Speed is the player's displacement per tick on each axis, in pixels.
	Speed = 4

	// AnimThreshold is the number of moving ticks per animation frame.
	AnimThreshold = 8
	// FrameCount is the number of frames in the walk cycle.
	FrameCount = 9
)

// Direction is the way the player is facing.
type Direction int

const (
	FacingDown Direction = iota
	FacingUp
	FacingLeft
	FacingRight
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingDown:
		return "down"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Player is the avatar controlled by the user.
type Player struct {
	X, Y       int       // Pixel position, top-left
	Facing     Direction // Last nonzero input axis
	Frame      int       // Walk cycle frame, 0 is the idle pose
	FrameTimer int       // Moving ticks since the last frame change
}

// NewPlayer creates a player standing on the given cell.
func NewPlayer(col, row int) *Player {
	return &Player{
		X:      col * world.TileSize,
		Y:      row * world.TileSize,
		Facing: FacingDown,
	}
}

// Bounds returns the player's bounding box.
func (p *Player) Bounds() world.Rect {
	return world.TileRect(p.X, p.Y)
}

// Position returns the current pixel coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// Cell returns the grid cell holding the player's top-left corner.
func (p *Player) Cell() (int, int) {
	return world.CellAt(p.X, p.Y)
}

// Face updates the facing from an input displacement. The vertical axis wins
// when both are nonzero. A zero displacement keeps the current facing.
func (p *Player) Face(dx, dy int) {
	switch {
	case dy < 0:
		p.Facing = FacingUp
	case dy > 0:
		p.Facing = FacingDown
	case dx < 0:
		p.Facing = FacingLeft
	case dx > 0:
		p.Facing = FacingRight
	}
}

// Animate advances the walk cycle for one tick. moving is false when no
// displacement was requested, which snaps back to the idle pose.
func (p *Player) Animate(moving bool) {
	if !moving {
		p.Frame = 0
		return
	}
	p.FrameTimer++
	if p.FrameTimer >= AnimThreshold {
		p.Frame = (p.Frame + 1) % FrameCount
		p.FrameTimer = 0
	}
}
