package sim

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilequest/internal/entity"
	"github.com/samdwyer/tilequest/internal/telemetry"
	"github.com/samdwyer/tilequest/internal/world"
	"github.com/samdwyer/tilequest/internal/worldmap"
)

// Outcome describes how a Move call resolved.
type Outcome uint8

const (
	Idle         Outcome = iota // no displacement requested
	Moved                       // axis resolution ran; the player may have slid or stayed put
	DoorBlocked                 // a closed door overlaps the candidate position
	Pushed                      // a box and the player moved together
	PushBlocked                 // the box could not move, so neither did the player
	Transitioned                // the player crossed into a neighbouring region
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Idle:
		return "idle"
	case Moved:
		return "moved"
	case DoorBlocked:
		return "door_blocked"
	case Pushed:
		return "pushed"
	case PushBlocked:
		return "push_blocked"
	case Transitioned:
		return "transitioned"
	default:
		return "unknown"
	}
}

// Move resolves a requested player displacement for one tick.
//
// Closed doors are checked first and win over everything else. An overlapped
// box is pushed by the same displacement if nothing blocks it. Otherwise the
// player turns, may cross into a neighbouring region, and finally each axis is
// applied on its own so the player slides along walls.
func (s *State) Move(ctx context.Context, dx, dy int) Outcome {
	p := s.Player
	if dx == 0 && dy == 0 {
		p.Animate(false)
		return Idle
	}

	newX, newY := p.X+dx, p.Y+dy
	candidate := world.TileRect(newX, newY)

	for _, d := range s.Entities.Doors.Items() {
		if !d.Open && candidate.Intersects(d.Bounds()) {
			return DoorBlocked
		}
	}

	boxes := s.Entities.Boxes.Items()
	for i := range boxes {
		b := &boxes[i]
		if !b.Active || !candidate.Intersects(b.Bounds()) {
			continue
		}
		if !s.canPush(i, dx, dy) || !s.canFollow(i, candidate) {
			return PushBlocked
		}
		b.X += dx
		b.Y += dy
		p.X, p.Y = newX, newY
		return Pushed
	}

	p.Face(dx, dy)

	for _, edge := range exitEdges(newX, newY) {
		if s.transition(ctx, edge) {
			return Transitioned
		}
		switch edge {
		case worldmap.EdgeLeft, worldmap.EdgeRight:
			newX = clamp(newX, 0, world.MaxX)
		default:
			newY = clamp(newY, 0, world.MaxY)
		}
	}

	if !occupied(s.Grid, s.Entities, newX, p.Y) {
		p.X = newX
	}
	if !occupied(s.Grid, s.Entities, p.X, newY) {
		p.Y = newY
	}

	p.Animate(true)
	return Moved
}

// canPush reports whether box i can move by (dx, dy) without hitting a wall
// or another active box.
func (s *State) canPush(i, dx, dy int) bool {
	boxes := s.Entities.Boxes.Items()
	next := boxes[i].Bounds().Translate(dx, dy)

	if s.Grid.IsCollision(next.X, next.Y, world.TileSize) {
		return false
	}
	for j, other := range boxes {
		if j == i || !other.Active {
			continue
		}
		if next.Intersects(other.Bounds()) {
			return false
		}
	}
	return true
}

// canFollow reports whether the player can take the candidate spot behind
// pushed box i without landing on a wall or a second box.
func (s *State) canFollow(i int, candidate world.Rect) bool {
	if s.Grid.IsCollision(candidate.X, candidate.Y, world.TileSize) {
		return false
	}
	for j, other := range s.Entities.Boxes.Items() {
		if j != i && other.Active && candidate.Intersects(other.Bounds()) {
			return false
		}
	}
	return true
}

// exitEdges lists the screen edges the candidate position crosses, in the
// order left, right, top, bottom.
func exitEdges(x, y int) []worldmap.Edge {
	var edges []worldmap.Edge
	if x < 0 {
		edges = append(edges, worldmap.EdgeLeft)
	}
	if x > world.MaxX {
		edges = append(edges, worldmap.EdgeRight)
	}
	if y < 0 {
		edges = append(edges, worldmap.EdgeTop)
	}
	if y > world.MaxY {
		edges = append(edges, worldmap.EdgeBottom)
	}
	return edges
}

// transition loads the region across edge and moves the player to the
// opposite edge of it. It returns false, leaving everything untouched, when
// there is no neighbour, it fails to load, or the landing spot is blocked.
func (s *State) transition(ctx context.Context, edge worldmap.Edge) bool {
	coord, region, ok := s.World.Neighbor(edge)
	if !ok {
		return false
	}

	tracer := telemetry.Tracer("sim")
	ctx, span := tracer.Start(ctx, "region.transition")
	defer span.End()
	span.SetAttributes(
		attribute.String("region.from", s.World.Current.String()),
		attribute.String("region.to", coord.String()),
		attribute.String("region.edge", edge.String()),
	)

	lvl, err := s.loader.Load(ctx, region.Source)
	if err != nil {
		s.logger.Error("region load failed", "coord", coord.String(), "source", region.Source, "error", err)
		span.SetAttributes(attribute.Bool("failed", true))
		return false
	}

	x, y := s.Player.X, s.Player.Y
	switch edge {
	case worldmap.EdgeLeft:
		x = world.MaxX
	case worldmap.EdgeRight:
		x = 0
	case worldmap.EdgeTop:
		y = world.MaxY
	case worldmap.EdgeBottom:
		y = 0
	}

	if occupied(lvl.Grid, lvl.Entities, x, y) {
		s.logger.Debug("region entry blocked", "coord", coord.String(), "x", x, "y", y)
		span.SetAttributes(attribute.Bool("blocked", true))
		return false
	}

	if err := s.World.MoveTo(coord); err != nil {
		s.logger.Error("region move failed", "coord", coord.String(), "error", err)
		return false
	}
	s.swapLevel(lvl)
	s.Player.X, s.Player.Y = x, y
	return true
}

// occupied reports whether a player at (x, y) would overlap a wall,
// a closed door or an active box.
func occupied(g *world.Grid, ents *entity.Registry, x, y int) bool {
	if g.IsCollision(x, y, world.TileSize) {
		return true
	}
	r := world.TileRect(x, y)
	for _, d := range ents.Doors.Items() {
		if !d.Open && r.Intersects(d.Bounds()) {
			return true
		}
	}
	for _, b := range ents.Boxes.Items() {
		if b.Active && r.Intersects(b.Bounds()) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
