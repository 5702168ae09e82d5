package gamedata

import "fmt"

// Theme holds glyph definitions indexed by ID.
type Theme struct {
	glyphs []GlyphDef
	byID   map[string]int
}

// NewTheme builds a theme from definitions. Every ID in RequiredGlyphs must be
// present, and IDs must be unique.
func NewTheme(glyphs []GlyphDef) (*Theme, error) {
	t := &Theme{
		glyphs: glyphs,
		byID:   make(map[string]int, len(glyphs)),
	}
	for i := range glyphs {
		g := &glyphs[i]
		if _, dup := t.byID[g.ID]; dup {
			return nil, fmt.Errorf("duplicate glyph %q", g.ID)
		}
		if err := g.validate(); err != nil {
			return nil, err
		}
		t.byID[g.ID] = i
	}
	for _, id := range RequiredGlyphs {
		if _, ok := t.byID[id]; !ok {
			return nil, fmt.Errorf("theme is missing glyph %q", id)
		}
	}
	return t, nil
}

// GetByID returns the glyph with the given ID, or nil if not found.
func (t *Theme) GetByID(id string) *GlyphDef {
	i, ok := t.byID[id]
	if !ok {
		return nil
	}
	return &t.glyphs[i]
}

// Count returns the number of glyph definitions.
func (t *Theme) Count() int {
	return len(t.glyphs)
}
