package gamedata

import (
	"fmt"
	"io/fs"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/tilequest/data"
)

// Glyph IDs a theme must define.
const (
	GlyphFloor       = "floor"
	GlyphWall        = "wall"
	GlyphPlayerUp    = "player_up"
	GlyphPlayerDown  = "player_down"
	GlyphPlayerLeft  = "player_left"
	GlyphPlayerRight = "player_right"
	GlyphEnemy       = "enemy"
	GlyphKey         = "key"
	GlyphDoor        = "door"
	GlyphBox         = "box"
	GlyphSwitch      = "switch"
	GlyphSwitchOn    = "switch_on"
)

// RequiredGlyphs lists every glyph ID the renderer draws.
var RequiredGlyphs = []string{
	GlyphFloor, GlyphWall,
	GlyphPlayerUp, GlyphPlayerDown, GlyphPlayerLeft, GlyphPlayerRight,
	GlyphEnemy, GlyphKey, GlyphDoor, GlyphBox, GlyphSwitch, GlyphSwitchOn,
}

// CellWidth is the number of terminal columns one tile occupies.
const CellWidth = 2

// GlyphDef describes how one kind of tile or entity is drawn.
type GlyphDef struct {
	ID         string `json:"id"`         // Glyph identifier (e.g., "wall")
	Glyph      string `json:"glyph"`      // Text drawn in the tile's two columns
	Color      string `json:"color"`      // Foreground hex color
	Background string `json:"background"` // Optional background hex color
	Bold       bool   `json:"bold"`
}

// Width returns the glyph's display width in terminal columns.
func (g *GlyphDef) Width() int {
	return runewidth.StringWidth(g.Glyph)
}

// Style returns the tcell style for the glyph. Bad colors fall back to the default.
func (g *GlyphDef) Style() tcell.Style {
	style := tcell.StyleDefault.Bold(g.Bold)
	if fg, err := ParseHexColor(g.Color); err == nil {
		style = style.Foreground(fg)
	}
	if bg, err := ParseHexColor(g.Background); err == nil {
		style = style.Background(bg)
	}
	return style
}

// validate checks that the glyph fits a tile and its colors parse.
func (g *GlyphDef) validate() error {
	if g.Glyph == "" {
		return fmt.Errorf("glyph %q: empty glyph", g.ID)
	}
	if w := g.Width(); w > CellWidth {
		return fmt.Errorf("glyph %q: %q is %d columns wide, max %d", g.ID, g.Glyph, w, CellWidth)
	}
	if _, err := ParseHexColor(g.Color); err != nil {
		return fmt.Errorf("glyph %q: %w", g.ID, err)
	}
	if _, err := ParseHexColor(g.Background); err != nil {
		return fmt.Errorf("glyph %q: %w", g.ID, err)
	}
	return nil
}

// ThemeFile represents the structure of theme.json.
type ThemeFile struct {
	Glyphs []GlyphDef `json:"glyphs"`
}

// LoadTheme loads and validates theme.json from fsys.
func LoadTheme(fsys fs.FS) (*Theme, error) {
	file, err := Load[ThemeFile](fsys, data.ThemeFile)
	if err != nil {
		return nil, err
	}
	return NewTheme(file.Glyphs)
}
