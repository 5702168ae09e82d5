// Package worldmap arranges regions on a fixed 3x3 grid and tracks which one
// the player is in.
package worldmap

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Size is the number of regions along each side of the world.
const Size = 3

var (
	// ErrInvalidWorld is returned when a world description is malformed.
	ErrInvalidWorld = errors.New("invalid world description")
	// ErrNoRegion is returned when a coordinate has no region.
	ErrNoRegion = errors.New("no region at coordinate")
)

// Edge identifies a side of the current region.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// String returns a human-readable edge name.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Delta returns the coordinate step that crossing the edge makes.
func (e Edge) Delta() (dcol, drow int) {
	switch e {
	case EdgeLeft:
		return -1, 0
	case EdgeRight:
		return 1, 0
	case EdgeTop:
		return 0, -1
	case EdgeBottom:
		return 0, 1
	default:
		return 0, 0
	}
}

// Coord addresses a region in the world grid.
type Coord struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// Step returns the neighbouring coordinate across edge e.
func (c Coord) Step(e Edge) Coord {
	dc, dr := e.Delta()
	return Coord{Col: c.Col + dc, Row: c.Row + dr}
}

// Valid reports whether c lies inside the world grid.
func (c Coord) Valid() bool {
	return c.Col >= 0 && c.Col < Size && c.Row >= 0 && c.Row < Size
}

// String formats the coordinate as "col,row".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Col, c.Row)
}

// Region describes one slot of the world grid.
type Region struct {
	Source string // Map source identifier, resolved by a level.Loader
	Exists bool
}

// Map is the world layout plus the region the player is in.
type Map struct {
	Regions [Size][Size]Region // Indexed [row][col]
	Current Coord
}

// New creates an empty world with the current region at start.
func New(start Coord) *Map {
	return &Map{Current: start}
}

// Set places a region with the given source at c.
func (m *Map) Set(c Coord, source string) error {
	if !c.Valid() {
		return fmt.Errorf("%w: coordinate %s outside %dx%d", ErrInvalidWorld, c, Size, Size)
	}
	m.Regions[c.Row][c.Col] = Region{Source: source, Exists: true}
	return nil
}

// At returns the region at c. Coordinates outside the grid have no region.
func (m *Map) At(c Coord) (Region, bool) {
	if !c.Valid() {
		return Region{}, false
	}
	r := m.Regions[c.Row][c.Col]
	return r, r.Exists
}

// CurrentRegion returns the region the player is in.
func (m *Map) CurrentRegion() (Region, error) {
	r, ok := m.At(m.Current)
	if !ok {
		return Region{}, fmt.Errorf("%w %s", ErrNoRegion, m.Current)
	}
	return r, nil
}

// Neighbor returns the region across edge e of the current region and its coordinate.
func (m *Map) Neighbor(e Edge) (Coord, Region, bool) {
	c := m.Current.Step(e)
	r, ok := m.At(c)
	return c, r, ok
}

// MoveTo makes c the current region.
func (m *Map) MoveTo(c Coord) error {
	if _, ok := m.At(c); !ok {
		return fmt.Errorf("%w %s", ErrNoRegion, c)
	}
	m.Current = c
	return nil
}

// Description is the YAML form of a world.
type Description struct {
	Start   Coord         `yaml:"start"`
	Regions []RegionEntry `yaml:"regions"`
}

// RegionEntry is one region in a Description.
type RegionEntry struct {
	Col    int    `yaml:"col"`
	Row    int    `yaml:"row"`
	Source string `yaml:"source"`
}

// Decode reads a YAML world description and builds the Map it describes.
func Decode(r io.Reader) (*Map, error) {
	var desc Description
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&desc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorld, err)
	}
	return desc.Build()
}

// Build validates the description and returns the Map.
func (d Description) Build() (*Map, error) {
	m := New(d.Start)
	for _, e := range d.Regions {
		c := Coord{Col: e.Col, Row: e.Row}
		if e.Source == "" {
			return nil, fmt.Errorf("%w: region %s has no source", ErrInvalidWorld, c)
		}
		if _, dup := m.At(c); dup {
			return nil, fmt.Errorf("%w: region %s listed twice", ErrInvalidWorld, c)
		}
		if err := m.Set(c, e.Source); err != nil {
			return nil, err
		}
	}
	if _, err := m.CurrentRegion(); err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrInvalidWorld, err)
	}
	return m, nil
}
