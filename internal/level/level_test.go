package level

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/samdwyer/tilequest/internal/entity"
	"github.com/samdwyer/tilequest/internal/world"
)

// mapText builds a walled 25x18 description. overrides replaces whole rows by index.
func mapText(overrides map[int]string, trailer ...string) string {
	var b strings.Builder
	for row := 0; row < world.GridHeight; row++ {
		line, ok := overrides[row]
		switch {
		case ok:
		case row == 0 || row == world.GridHeight-1:
			line = strings.Repeat("1", world.GridWidth)
		default:
			line = "1" + strings.Repeat("0", world.GridWidth-2) + "1"
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, t := range trailer {
		b.WriteString(t)
		b.WriteByte('\n')
	}
	return b.String()
}

// bufferLogger returns a logger writing text records into buf.
func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestParseSymbols(t *testing.T) {
	src := mapText(map[int]string{
		1: "1P0E0K0D0C0S0000000000001",
	})
	lvl, err := Parse(strings.NewReader(src), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if !lvl.HasStart || lvl.StartCol != 1 || lvl.StartRow != 1 {
		t.Errorf("start = (%d, %d, %v), want (1, 1, true)", lvl.StartCol, lvl.StartRow, lvl.HasStart)
	}

	ents := lvl.Entities
	counts := []struct {
		name string
		got  int
	}{
		{"enemies", ents.Enemies.Len()},
		{"keys", ents.Keys.Len()},
		{"doors", ents.Doors.Len()},
		{"boxes", ents.Boxes.Len()},
		{"switches", ents.Switches.Len()},
	}
	for _, c := range counts {
		if c.got != 1 {
			t.Errorf("%s = %d, want 1", c.name, c.got)
		}
	}

	if e := ents.Enemies.Items()[0]; e.X != 3*world.TileSize || e.Y != world.TileSize {
		t.Errorf("enemy at (%d, %d), want (%d, %d)", e.X, e.Y, 3*world.TileSize, world.TileSize)
	}
	if k := ents.Keys.Items()[0]; k.Collected || k.LinkedDoor != 0 {
		t.Errorf("key = %+v, want uncollected and linked to door 0", k)
	}
	if d := ents.Doors.Items()[0]; d.Open {
		t.Error("doors should start closed")
	}
	if b := ents.Boxes.Items()[0]; !b.Active {
		t.Error("boxes should start active")
	}
	sw := ents.Switches.Items()[0]
	if !sw.Active || sw.Triggered {
		t.Errorf("switch = %+v, want active and untriggered", sw)
	}
	if sw.LinkedDoor != 0 {
		t.Errorf("default switch link = %d, want 0", sw.LinkedDoor)
	}

	for col := 1; col <= 11; col++ {
		if tile := lvl.Grid.GetTile(col, 1); tile != world.TileOpen {
			t.Errorf("tile (%d, 1) = %v, want open", col, tile)
		}
	}
	if lvl.Grid.GetTile(0, 1) != world.TileWall {
		t.Error("border should be wall")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", ErrTooFewRows},
		{"too few rows", strings.Join(strings.Split(mapText(nil), "\n")[:10], "\n"), ErrTooFewRows},
		{"short row", mapText(map[int]string{5: "1000"}), ErrRowTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl, err := Parse(strings.NewReader(tt.src), nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse() error = %v, want %v", err, tt.want)
			}
			if lvl != nil {
				t.Error("Parse() should not return a level on error")
			}
		})
	}
}

func TestParseShortRowReportsRowNumber(t *testing.T) {
	_, err := Parse(strings.NewReader(mapText(map[int]string{5: "1000"})), nil)
	if err == nil || !strings.Contains(err.Error(), "row 6") {
		t.Errorf("error = %v, want it to name row 6", err)
	}
}

func TestParseToleratesCRLFAndLongRows(t *testing.T) {
	src := strings.ReplaceAll(mapText(map[int]string{2: "1P00000000000000000000001extra"}), "\n", "\r\n")
	lvl, err := Parse(strings.NewReader(src), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !lvl.HasStart || lvl.StartRow != 2 {
		t.Errorf("start row = %d, want 2", lvl.StartRow)
	}
}

func TestParseUnknownSymbolWarns(t *testing.T) {
	var buf bytes.Buffer
	src := mapText(map[int]string{3: "1000#00000.00000000000001"})

	lvl, err := Parse(strings.NewReader(src), bufferLogger(&buf))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if lvl.Grid.GetTile(4, 3) != world.TileOpen || lvl.Grid.GetTile(10, 3) != world.TileOpen {
		t.Error("unknown symbols should become open tiles")
	}
	if got := strings.Count(buf.String(), "unknown map symbol"); got != 2 {
		t.Errorf("unknown symbol warnings = %d, want 2\n%s", got, buf.String())
	}
}

func TestParseFirstPlayerStartWins(t *testing.T) {
	var buf bytes.Buffer
	src := mapText(map[int]string{
		2: "10P0000000000000000000001",
		4: "1000000P00000000000000001",
	})
	lvl, err := Parse(strings.NewReader(src), bufferLogger(&buf))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if lvl.StartCol != 2 || lvl.StartRow != 2 {
		t.Errorf("start = (%d, %d), want (2, 2)", lvl.StartCol, lvl.StartRow)
	}
	if !strings.Contains(buf.String(), "duplicate player start") {
		t.Error("second start marker should be logged")
	}
}

func TestParseMissingStart(t *testing.T) {
	lvl, err := Parse(strings.NewReader(mapText(nil)), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !errors.Is(lvl.RequireStart(), ErrNoStart) {
		t.Errorf("RequireStart() = %v, want ErrNoStart", lvl.RequireStart())
	}
}

func TestParseKeyLinkage(t *testing.T) {
	// Three keys, two doors: the third key has no door to open.
	src := mapText(map[int]string{
		1: "1KKK000000000000000000001",
		2: "1DD0000000000000000000001",
	})
	lvl, err := Parse(strings.NewReader(src), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []int{0, 1, entity.NoDoor}
	for i, k := range lvl.Entities.Keys.Items() {
		if k.LinkedDoor != want[i] {
			t.Errorf("key %d linked door = %d, want %d", i, k.LinkedDoor, want[i])
		}
	}
}

func TestParseSwitchDefaultLinkNeedsDoor(t *testing.T) {
	src := mapText(map[int]string{1: "1S0S000000000000000000001"})
	lvl, err := Parse(strings.NewReader(src), nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	for i, s := range lvl.Entities.Switches.Items() {
		if s.LinkedDoor != entity.NoDoor {
			t.Errorf("switch %d linked door = %d, want NoDoor", i, s.LinkedDoor)
		}
	}
}

func TestParseLinkDirectives(t *testing.T) {
	var buf bytes.Buffer
	src := mapText(map[int]string{
		1: "1S0S0S0000000000000000001",
		2: "1D0D000000000000000000001",
	},
		"; switch wiring",
		"",
		"link 1 0",
		"link 2 1",
		"link 9 0",
		"link x 0",
		"open sesame",
	)

	lvl, err := Parse(strings.NewReader(src), bufferLogger(&buf))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []int{entity.NoDoor, 0, 1}
	for i, s := range lvl.Entities.Switches.Items() {
		if s.LinkedDoor != want[i] {
			t.Errorf("switch %d linked door = %d, want %d", i, s.LinkedDoor, want[i])
		}
	}

	log := buf.String()
	for _, msg := range []string{"link directive out of range", "malformed link directive", "unknown map directive"} {
		if !strings.Contains(log, msg) {
			t.Errorf("log missing %q\n%s", msg, log)
		}
	}
}

func TestParseCapacityOverflowDrops(t *testing.T) {
	var buf bytes.Buffer
	full := "1" + strings.Repeat("E", world.GridWidth-2) + "1"
	src := mapText(map[int]string{1: full, 2: full, 3: full})

	lvl, err := Parse(strings.NewReader(src), bufferLogger(&buf))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := lvl.Entities.Enemies.Len(); got != entity.MaxEntities {
		t.Errorf("enemies = %d, want %d", got, entity.MaxEntities)
	}
	if got := strings.Count(buf.String(), "entity dropped"); got != 3*(world.GridWidth-2)-entity.MaxEntities {
		t.Errorf("dropped logs = %d, want %d", got, 3*(world.GridWidth-2)-entity.MaxEntities)
	}
	// Dropped enemies still clear their tile.
	if lvl.Grid.GetTile(world.GridWidth-2, 3) != world.TileOpen {
		t.Error("overflowed enemy cell should still be open")
	}
}

func TestLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/start.txt": {Data: []byte(mapText(map[int]string{1: "1P00000000000000000000001"}))},
		"maps/bad.txt":   {Data: []byte("1111\n")},
	}
	loader := NewLoader(fsys, nil)
	ctx := context.Background()

	lvl, err := loader.Load(ctx, "maps/start.txt")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := lvl.RequireStart(); err != nil {
		t.Errorf("RequireStart() = %v", err)
	}

	if _, err := loader.Load(ctx, "maps/missing.txt"); !errors.Is(err, ErrUnreadable) {
		t.Errorf("Load(missing) error = %v, want ErrUnreadable", err)
	}
	if _, err := loader.Load(ctx, "maps/bad.txt"); !errors.Is(err, ErrRowTooShort) {
		t.Errorf("Load(bad) error = %v, want ErrRowTooShort", err)
	}
}
