package sim

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilequest/internal/telemetry"
)

// CollectKeys picks up every uncollected key the player overlaps and opens the
// door each one is linked to. It returns the number of keys collected now.
func (s *State) CollectKeys() int {
	pb := s.Player.Bounds()
	keys := s.Entities.Keys.Items()

	n := 0
	for i := range keys {
		k := &keys[i]
		if k.Collected || !pb.Intersects(k.Bounds()) {
			continue
		}
		k.Collected = true
		s.KeysCollected++
		n++
		s.Entities.OpenDoor(k.LinkedDoor)
	}
	return n
}

// ActivateSwitches recomputes every switch's triggered flag from the current
// box positions and opens the doors of triggered switches. Doors stay open
// when a box later leaves its switch. It returns the number of triggered switches.
func (s *State) ActivateSwitches(ctx context.Context) int {
	tracer := telemetry.Tracer("sim")
	_, span := tracer.Start(ctx, "switch.activate")
	defer span.End()

	switches := s.Entities.Switches.Items()
	boxes := s.Entities.Boxes.Items()

	triggered, opened := 0, 0
	for i := range switches {
		sw := &switches[i]
		if !sw.Active {
			continue
		}
		sw.Triggered = false
		for _, b := range boxes {
			if b.Active && b.Bounds().Intersects(sw.Bounds()) {
				sw.Triggered = true
				break
			}
		}
		if !sw.Triggered {
			continue
		}
		triggered++
		if s.Entities.OpenDoor(sw.LinkedDoor) {
			opened++
		}
	}

	span.SetAttributes(
		attribute.Int("switch.count", len(switches)),
		attribute.Int("switch.triggered", triggered),
		attribute.Int("door.opened", opened),
	)
	return triggered
}
