// Package entity provides the things that live on a region's grid: the player,
// decorative enemies, keys, doors, boxes, and switches.
package entity

import "github.com/samdwyer/tilequest/internal/world"

// NoDoor marks a key or switch that opens nothing.
const NoDoor = -1

// Enemy is a decorative creature. It has no behavior.
type Enemy struct {
	X, Y int // Pixel position, top-left
}

// Bounds returns the enemy's bounding box.
func (e Enemy) Bounds() world.Rect { return world.TileRect(e.X, e.Y) }

// Key opens its linked door when the player walks over it.
type Key struct {
	X, Y       int
	Collected  bool
	LinkedDoor int // Door index, or NoDoor
}

// Bounds returns the key's bounding box.
func (k Key) Bounds() world.Rect { return world.TileRect(k.X, k.Y) }

// Door blocks the player until it is opened. Doors never close again.
type Door struct {
	X, Y int
	Open bool
}

// Bounds returns the door's bounding box.
func (d Door) Bounds() world.Rect { return world.TileRect(d.X, d.Y) }

// Box is pushed by the player. Inactive boxes take no part in collision or rendering.
type Box struct {
	X, Y   int
	Active bool
}

// Bounds returns the box's bounding box.
func (b Box) Bounds() world.Rect { return world.TileRect(b.X, b.Y) }

// Switch is a pressure plate. Triggered is recomputed from box positions on
// every activation pass.
type Switch struct {
	X, Y       int
	Active     bool
	Triggered  bool
	LinkedDoor int // Door index, or NoDoor
}

// Bounds returns the switch's bounding box.
func (s Switch) Bounds() world.Rect { return world.TileRect(s.X, s.Y) }

// Registry holds every entity list of one region.
type Registry struct {
	Enemies  List[Enemy]
	Keys     List[Key]
	Doors    List[Door]
	Boxes    List[Box]
	Switches List[Switch]
}

// NewRegistry creates an empty registry with the default capacities.
func NewRegistry() *Registry {
	return &Registry{
		Enemies:  NewList[Enemy](MaxEntities),
		Keys:     NewList[Key](MaxEntities),
		Doors:    NewList[Door](MaxEntities),
		Boxes:    NewList[Box](MaxEntities),
		Switches: NewList[Switch](MaxEntities),
	}
}

// OpenDoor opens door i if it exists. It reports whether i was a valid index.
func (r *Registry) OpenDoor(i int) bool {
	if !r.Doors.Valid(i) {
		return false
	}
	r.Doors.At(i).Open = true
	return true
}

// OpenDoors returns the number of open doors.
func (r *Registry) OpenDoors() int {
	n := 0
	for _, d := range r.Doors.Items() {
		if d.Open {
			n++
		}
	}
	return n
}

// TriggeredSwitches returns the number of switches currently covered by a box.
func (r *Registry) TriggeredSwitches() int {
	n := 0
	for _, s := range r.Switches.Items() {
		if s.Triggered {
			n++
		}
	}
	return n
}
