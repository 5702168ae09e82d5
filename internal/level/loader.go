package level

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/tilequest/internal/telemetry"
)

// Loader reads region descriptions by source name from a filesystem.
type Loader struct {
	FS     fs.FS
	Logger *slog.Logger
}

// NewLoader creates a loader over fsys. A nil logger uses slog.Default().
func NewLoader(fsys fs.FS, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{FS: fsys, Logger: logger}
}

// Load opens and parses the named source.
func (l *Loader) Load(ctx context.Context, source string) (*Level, error) {
	tracer := telemetry.Tracer("level")
	_, span := tracer.Start(ctx, "region.load")
	defer span.End()
	span.SetAttributes(attribute.String("region.source", source))

	f, err := l.FS.Open(source)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("open %s: %w: %v", source, ErrUnreadable, err)
	}
	defer f.Close()

	lvl, err := Parse(f, l.Logger.With("source", source))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}

	span.SetAttributes(
		attribute.Int("region.keys", lvl.Entities.Keys.Len()),
		attribute.Int("region.doors", lvl.Entities.Doors.Len()),
		attribute.Int("region.boxes", lvl.Entities.Boxes.Len()),
		attribute.Int("region.switches", lvl.Entities.Switches.Len()),
		attribute.Bool("region.has_start", lvl.HasStart),
	)
	return lvl, nil
}
