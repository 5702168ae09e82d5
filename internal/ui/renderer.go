package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/tilequest/internal/entity"
	"github.com/samdwyer/tilequest/internal/gamedata"
	"github.com/samdwyer/tilequest/internal/sim"
	"github.com/samdwyer/tilequest/internal/world"
)

// Terminal layout. Each tile is drawn as gamedata.CellWidth columns, with the
// HUD on the two rows under the map.
const (
	MapColumns = world.GridWidth * gamedata.CellWidth
	MapRows    = world.GridHeight
	HUDRows    = 2
	MinWidth   = MapColumns
	MinHeight  = MapRows + HUDRows
)

const (
	menuTitle     = "T I L E Q U E S T"
	menuItemWidth = 14
	menuSpacing   = 2
)

var (
	hudStyle      = tcell.StyleDefault.Foreground(gamedata.MustParseHexColor("#C0C0C0"))
	titleStyle    = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	itemStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	selectedStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGold)
	warnStyle     = tcell.StyleDefault.Foreground(gamedata.MustParseHexColor("#E05050"))
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *gamedata.Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme *gamedata.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// RenderMenu draws the title menu with the selected item highlighted.
func (r *Renderer) RenderMenu(items []string, selected int) {
	r.screen.Clear()
	w, h := r.screen.Size()

	top := menuTop(h, len(items))
	r.drawText((w-runewidth.StringWidth(menuTitle))/2, top, menuTitle, titleStyle)

	for i, label := range items {
		rect := menuItemRect(w, h, len(items), i)
		style := itemStyle
		if i == selected {
			style = selectedStyle
		}
		for x := rect.X; x < rect.X+rect.Width; x++ {
			r.screen.SetContent(x, rect.Y, ' ', style)
		}
		r.drawText(rect.X+(rect.Width-runewidth.StringWidth(label))/2, rect.Y, label, style)
	}

	hint := "↑/↓ select   enter confirm   q quit"
	r.drawText((w-runewidth.StringWidth(hint))/2, h-1, hint, hudStyle)
	r.screen.Show()
}

// MenuItemAt returns the index of the menu item under terminal cell (x, y),
// or -1 if there is none. It uses the same layout as RenderMenu.
func (r *Renderer) MenuItemAt(x, y, count int) int {
	w, h := r.screen.Size()
	for i := 0; i < count; i++ {
		if menuItemRect(w, h, count, i).Contains(x, y) {
			return i
		}
	}
	return -1
}

func menuTop(height, count int) int {
	return max(0, (height-(count*menuSpacing+2))/2)
}

// menuItemRect is the terminal-cell box of menu item i.
func menuItemRect(width, height, count, i int) world.Rect {
	return world.Rect{
		X:      (width - menuItemWidth) / 2,
		Y:      menuTop(height, count) + 2 + i*menuSpacing,
		Width:  menuItemWidth,
		Height: 1,
	}
}

// RenderPlaying draws the region, its entities, the player and the HUD.
func (r *Renderer) RenderPlaying(s *sim.State, last sim.Outcome) {
	r.screen.Clear()
	w, h := r.screen.Size()
	if w < MinWidth || h < MinHeight {
		r.RenderMessage(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", MinWidth, MinHeight, w, h), 0)
		return
	}

	floor := r.theme.GetByID(gamedata.GlyphFloor)
	wall := r.theme.GetByID(gamedata.GlyphWall)
	for row := 0; row < s.Grid.Height; row++ {
		for col := 0; col < s.Grid.Width; col++ {
			if s.Grid.GetTile(col, row) == world.TileWall {
				r.drawGlyph(col, row, wall)
			} else {
				r.drawGlyph(col, row, floor)
			}
		}
	}

	ents := s.Entities
	for _, sw := range ents.Switches.Items() {
		if !sw.Active {
			continue
		}
		id := gamedata.GlyphSwitch
		if sw.Triggered {
			id = gamedata.GlyphSwitchOn
		}
		r.drawAt(sw.X, sw.Y, id)
	}
	for _, k := range ents.Keys.Items() {
		if !k.Collected {
			r.drawAt(k.X, k.Y, gamedata.GlyphKey)
		}
	}
	for _, d := range ents.Doors.Items() {
		if !d.Open {
			r.drawAt(d.X, d.Y, gamedata.GlyphDoor)
		}
	}
	for _, b := range ents.Boxes.Items() {
		if b.Active {
			r.drawAt(b.X, b.Y, gamedata.GlyphBox)
		}
	}
	for _, e := range ents.Enemies.Items() {
		r.drawAt(e.X, e.Y, gamedata.GlyphEnemy)
	}

	p := s.Player
	r.drawAt(p.X, p.Y, playerGlyph(p.Facing))

	r.renderHUD(s, last)
	r.screen.Show()
}

func (r *Renderer) renderHUD(s *sim.State, last sim.Outcome) {
	ents := s.Entities
	status := fmt.Sprintf("Region %s  Keys %d  Doors %d/%d open  Switches %d/%d",
		s.World.Current,
		s.KeysCollected,
		ents.OpenDoors(), ents.Doors.Len(),
		ents.TriggeredSwitches(), ents.Switches.Len(),
	)
	r.drawText(0, MapRows, status, hudStyle)

	detail := fmt.Sprintf("Last %-12s Facing %-5s Frame %d   hjkl/arrows move  space activate  esc menu",
		last, s.Player.Facing, s.Player.Frame)
	r.drawText(0, MapRows+1, detail, hudStyle)
}

func playerGlyph(d entity.Direction) string {
	switch d {
	case entity.FacingUp:
		return gamedata.GlyphPlayerUp
	case entity.FacingLeft:
		return gamedata.GlyphPlayerLeft
	case entity.FacingRight:
		return gamedata.GlyphPlayerRight
	default:
		return gamedata.GlyphPlayerDown
	}
}

// drawAt draws glyph id at the tile nearest pixel position (px, py).
func (r *Renderer) drawAt(px, py int, id string) {
	col := (px + world.TileSize/2) / world.TileSize
	row := (py + world.TileSize/2) / world.TileSize
	r.drawGlyph(col, row, r.theme.GetByID(id))
}

// drawGlyph fills one tile's terminal cells with g, padding with spaces.
func (r *Renderer) drawGlyph(col, row int, g *gamedata.GlyphDef) {
	if g == nil {
		return
	}
	style := g.Style()
	x := col * gamedata.CellWidth
	end := x + gamedata.CellWidth
	for _, ch := range g.Glyph {
		if x >= end {
			break
		}
		r.screen.SetContent(x, row, ch, style)
		x += max(runewidth.RuneWidth(ch), 1)
	}
	for ; x < end; x++ {
		r.screen.SetContent(x, row, ' ', style)
	}
}

// drawText writes s starting at (x, y), advancing by each rune's display width.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, style)
		x += max(runewidth.RuneWidth(ch), 1)
	}
}

// RenderMessage displays a warning on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.drawText(0, y, msg, warnStyle)
	r.screen.Show()
}
