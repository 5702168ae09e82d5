// Package sim owns the simulation state of a running game and the per-tick
// rules that mutate it: movement, box pushing, doors, keys, switches and
// region transitions.
//
// Everything here is single-threaded. A State is mutated only by the loop that
// owns it, and a renderer reads it between ticks.
package sim

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilequest/internal/entity"
	"github.com/samdwyer/tilequest/internal/level"
	"github.com/samdwyer/tilequest/internal/telemetry"
	"github.com/samdwyer/tilequest/internal/world"
	"github.com/samdwyer/tilequest/internal/worldmap"
)

// RegionLoader resolves a region source identifier into a freshly parsed level.
type RegionLoader interface {
	Load(ctx context.Context, source string) (*level.Level, error)
}

// State is the whole mutable simulation: the loaded region, the player, and
// the world layout.
type State struct {
	Grid     *world.Grid
	Entities *entity.Registry
	Player   *entity.Player
	World    *worldmap.Map

	// KeysCollected counts keys picked up across all regions.
	KeysCollected int

	loader RegionLoader
	logger *slog.Logger
}

// New loads the world's current region and places the player on its start marker.
func New(ctx context.Context, w *worldmap.Map, loader RegionLoader, logger *slog.Logger) (*State, error) {
	tracer := telemetry.Tracer("sim")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	region, err := w.CurrentRegion()
	if err != nil {
		return nil, err
	}
	lvl, err := loader.Load(ctx, region.Source)
	if err != nil {
		return nil, err
	}
	if err := lvl.RequireStart(); err != nil {
		return nil, fmt.Errorf("region %s (%s): %w", w.Current, region.Source, err)
	}

	span.SetAttributes(
		attribute.String("region.coord", w.Current.String()),
		attribute.Int("player.start_col", lvl.StartCol),
		attribute.Int("player.start_row", lvl.StartRow),
	)

	return NewFromLevel(lvl, w, loader, logger), nil
}

// NewFromLevel builds a State around an already parsed level. The player is
// placed on the level's start cell, or at the origin if it has none.
func NewFromLevel(lvl *level.Level, w *worldmap.Map, loader RegionLoader, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.Default()
	}
	return &State{
		Grid:     lvl.Grid,
		Entities: lvl.Entities,
		Player:   entity.NewPlayer(lvl.StartCol, lvl.StartRow),
		World:    w,
		loader:   loader,
		logger:   logger,
	}
}

// Step runs one play-mode tick: resolve the requested displacement, then pick
// up any key the player now overlaps.
func (s *State) Step(ctx context.Context, dx, dy int) Outcome {
	out := s.Move(ctx, dx, dy)
	s.CollectKeys()
	return out
}

// swapLevel replaces the region content wholesale.
func (s *State) swapLevel(lvl *level.Level) {
	s.Grid = lvl.Grid
	s.Entities = lvl.Entities
}
