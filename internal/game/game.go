package game

import (
	"context"
	"io/fs"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tilequest/internal/entity"
	"github.com/samdwyer/tilequest/internal/gamedata"
	"github.com/samdwyer/tilequest/internal/level"
	"github.com/samdwyer/tilequest/internal/sim"
	"github.com/samdwyer/tilequest/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	cfg     Config
	logger  *slog.Logger
	theme   *gamedata.Theme
	sim     *sim.State
	machine *Machine
	held    hold
	last    sim.Outcome

	screen   *ui.Screen
	renderer *ui.Renderer
}

// New loads content from fsys and prepares a game on the title menu. Errors
// here mean the content is unusable: a bad theme, a bad world description, or
// a start region that fails to load or has no player start.
func New(ctx context.Context, fsys fs.FS, cfg Config, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}

	theme, err := gamedata.LoadTheme(fsys)
	if err != nil {
		return nil, err
	}
	w, err := gamedata.LoadWorld(fsys, cfg.WorldFile)
	if err != nil {
		return nil, err
	}
	logger.Info("content loaded", "glyphs", theme.Count(), "world", cfg.WorldFile)
	state, err := sim.New(ctx, w, level.NewLoader(fsys, logger), logger)
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:     cfg,
		logger:  logger,
		theme:   theme,
		sim:     state,
		machine: NewMachine(),
	}, nil
}

// State returns the current machine state.
func (g *Game) State() State {
	return g.machine.State
}

// Sim returns the simulation state.
func (g *Game) Sim() *sim.State {
	return g.sim
}

// Run executes the main game loop on screen until the player quits or ctx is
// done. The caller owns the screen and closes it afterwards.
func (g *Game) Run(ctx context.Context, screen *ui.Screen) error {
	g.screen = screen
	g.renderer = ui.NewRenderer(screen, g.theme)

	events := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go pump(screen, events, done)

	ticker := time.NewTicker(g.cfg.TickInterval())
	defer ticker.Stop()

	g.logger.Info("game started", "region", g.sim.World.Current.String(), "tick", g.cfg.TickInterval())
	g.render()

	for g.machine.State != StateQuit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			g.handleEvent(ctx, ev)
			g.render()
		case <-ticker.C:
			if g.tick(ctx) {
				g.render()
			}
		}
	}

	g.logger.Info("game finished", "region", g.sim.World.Current.String(), "keys", g.sim.KeysCollected)
	return nil
}

// pump forwards screen events until the screen is closed or done is closed.
func pump(screen *ui.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.apply(ctx, IntentForKey(ev))
	case *tcell.EventMouse:
		g.handleMouse(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleMouse hovers and clicks title menu items.
func (g *Game) handleMouse(ctx context.Context, ev *tcell.EventMouse) {
	if g.machine.State != StateMenu {
		return
	}
	x, y := ev.Position()
	i := g.renderer.MenuItemAt(x, y, len(MenuItems))
	if !g.machine.Hover(i) {
		return
	}
	if ev.Buttons()&tcell.Button1 != 0 {
		g.apply(ctx, IntentConfirm)
	}
}

// apply feeds an intent to the machine and carries out its effect.
func (g *Game) apply(ctx context.Context, in Intent) {
	if in == IntentNone {
		return
	}

	prev := g.machine.State
	switch g.machine.Handle(in) {
	case EffectMove:
		dx, dy := in.Delta()
		g.held.press(dx, dy, g.cfg.HoldTicks)
	case EffectActivate:
		n := g.sim.ActivateSwitches(ctx)
		g.logger.Debug("switches activated", "triggered", n, "doors_open", g.sim.Entities.OpenDoors())
	}

	if g.machine.State != prev {
		g.held.clear()
		g.logger.Info("state changed", "from", prev.String(), "to", g.machine.State.String())
	}
}

// tick advances the simulation by one frame while playing. It reports whether
// the simulation ran.
func (g *Game) tick(ctx context.Context) bool {
	if g.machine.State != StatePlaying {
		return false
	}

	dx, dy := g.held.next()
	out := g.sim.Step(ctx, dx*entity.Speed, dy*entity.Speed)
	if out != sim.Idle {
		g.last = out
	}
	if out == sim.Transitioned {
		g.logger.Info("region entered", "region", g.sim.World.Current.String())
	}
	return true
}

func (g *Game) render() {
	switch g.machine.State {
	case StateMenu:
		g.renderer.RenderMenu(MenuLabels(), int(g.machine.Selected))
	case StatePlaying:
		g.renderer.RenderPlaying(g.sim, g.last)
	}
}
