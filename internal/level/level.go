// Package level parses textual region descriptions into a tile grid and the
// entities placed on it.
//
// The map dialect is '0' for open ground and '1' for walls, one line per grid
// row. Entity symbols are P (player start), E, K, D, C (box) and S (switch).
// After the grid, optional "link <switch> <door>" lines wire switches to doors.
package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/samdwyer/tilequest/internal/entity"
	"github.com/samdwyer/tilequest/internal/world"
)

// Map symbols.
const (
	SymbolOpen   = '0'
	SymbolWall   = '1'
	SymbolPlayer = 'P'
	SymbolEnemy  = 'E'
	SymbolKey    = 'K'
	SymbolDoor   = 'D'
	SymbolBox    = 'C'
	SymbolSwitch = 'S'
)

var (
	// ErrUnreadable is returned when a map source cannot be opened or read.
	ErrUnreadable = errors.New("map source unreadable")
	// ErrTooFewRows is returned when the description ends before the last grid row.
	ErrTooFewRows = errors.New("map has too few rows")
	// ErrRowTooShort is returned when a row is narrower than the grid.
	ErrRowTooShort = errors.New("map row too short")
	// ErrNoStart is returned by RequireStart when no player marker was found.
	ErrNoStart = errors.New("map has no player start")
)

// Level is one parsed region: its grid, its entities and the player start cell.
type Level struct {
	Grid     *world.Grid
	Entities *entity.Registry

	StartCol, StartRow int
	HasStart           bool
}

// RequireStart returns ErrNoStart if the level has no player marker.
func (l *Level) RequireStart() error {
	if !l.HasStart {
		return ErrNoStart
	}
	return nil
}

// Parse reads a region description. A nil logger uses slog.Default().
// On error nothing is returned, so callers never see a partial level.
func Parse(r io.Reader, logger *slog.Logger) (*Level, error) {
	if logger == nil {
		logger = slog.Default()
	}

	p := &parser{
		logger: logger,
		lvl: &Level{
			Grid:     world.NewGrid(world.GridWidth, world.GridHeight),
			Entities: entity.NewRegistry(),
		},
	}

	scanner := bufio.NewScanner(r)
	for row := 0; row < world.GridHeight; row++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
			}
			return nil, fmt.Errorf("row %d: %w", row+1, ErrTooFewRows)
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) < world.GridWidth {
			return nil, fmt.Errorf("row %d has %d characters, need %d: %w", row+1, len(line), world.GridWidth, ErrRowTooShort)
		}
		p.parseRow(row, line)
	}

	links := 0
	for line := world.GridHeight + 1; scanner.Scan(); line++ {
		if p.parseDirective(line, scanner.Text()) {
			links++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	p.resolveLinks(links > 0)
	return p.lvl, nil
}

// parser carries the state of one Parse call.
type parser struct {
	logger *slog.Logger
	lvl    *Level
}

// parseRow applies the first GridWidth symbols of line to the grid.
func (p *parser) parseRow(row int, line string) {
	grid := p.lvl.Grid
	ents := p.lvl.Entities

	for col := 0; col < world.GridWidth; col++ {
		x, y := col*world.TileSize, row*world.TileSize

		switch sym := line[col]; sym {
		case SymbolOpen:
			grid.SetTile(col, row, world.TileOpen)
		case SymbolWall:
			grid.SetTile(col, row, world.TileWall)
		case SymbolPlayer:
			grid.SetTile(col, row, world.TileOpen)
			if p.lvl.HasStart {
				p.logger.Warn("duplicate player start ignored", "row", row, "col", col)
				continue
			}
			p.lvl.StartCol, p.lvl.StartRow, p.lvl.HasStart = col, row, true
		case SymbolEnemy:
			grid.SetTile(col, row, world.TileOpen)
			p.dropped("enemy", row, col, add(&ents.Enemies, entity.Enemy{X: x, Y: y}))
		case SymbolKey:
			grid.SetTile(col, row, world.TileOpen)
			// The nth key opens the nth door; resolveLinks drops links to missing doors.
			key := entity.Key{X: x, Y: y, LinkedDoor: ents.Keys.Len()}
			p.dropped("key", row, col, add(&ents.Keys, key))
		case SymbolDoor:
			grid.SetTile(col, row, world.TileOpen)
			p.dropped("door", row, col, add(&ents.Doors, entity.Door{X: x, Y: y}))
		case SymbolBox:
			grid.SetTile(col, row, world.TileOpen)
			p.dropped("box", row, col, add(&ents.Boxes, entity.Box{X: x, Y: y, Active: true}))
		case SymbolSwitch:
			// The tile under a switch is left as allocated (open).
			sw := entity.Switch{X: x, Y: y, Active: true, LinkedDoor: entity.NoDoor}
			p.dropped("switch", row, col, add(&ents.Switches, sw))
		default:
			p.logger.Warn("unknown map symbol", "symbol", string(rune(sym)), "row", row, "col", col)
			grid.SetTile(col, row, world.TileOpen)
		}
	}
}

// parseDirective handles one line after the grid. It reports whether the line
// was an accepted link directive.
func (p *parser) parseDirective(line int, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, ";") {
		return false
	}

	fields := strings.Fields(text)
	if len(fields) != 3 || fields[0] != "link" {
		p.logger.Warn("unknown map directive", "line", line, "text", text)
		return false
	}
	sw, err1 := strconv.Atoi(fields[1])
	door, err2 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil {
		p.logger.Warn("malformed link directive", "line", line, "text", text)
		return false
	}

	ents := p.lvl.Entities
	if !ents.Switches.Valid(sw) || !ents.Doors.Valid(door) {
		p.logger.Warn("link directive out of range", "line", line, "switch", sw, "door", door)
		return false
	}
	ents.Switches.At(sw).LinkedDoor = door
	return true
}

// resolveLinks turns the implicit linkage conventions into explicit door indexes.
func (p *parser) resolveLinks(explicit bool) {
	ents := p.lvl.Entities

	for i := range ents.Keys.Items() {
		k := ents.Keys.At(i)
		if !ents.Doors.Valid(k.LinkedDoor) {
			k.LinkedDoor = entity.NoDoor
		}
	}

	if !explicit && ents.Switches.Len() > 0 && ents.Doors.Len() > 0 {
		ents.Switches.At(0).LinkedDoor = 0
	}
}

// dropped logs an entity that did not fit in its list.
func (p *parser) dropped(kind string, row, col int, err error) {
	if err != nil {
		p.logger.Debug("entity dropped", "kind", kind, "row", row, "col", col, "error", err)
	}
}

func add[T any](l *entity.List[T], item T) error {
	_, err := l.Add(item)
	return err
}
