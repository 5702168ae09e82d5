// Package main is the entry point for TileQuest.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/samdwyer/tilequest/internal/game"
	"github.com/samdwyer/tilequest/internal/gamedata"
	"github.com/samdwyer/tilequest/internal/telemetry"
	"github.com/samdwyer/tilequest/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg := game.LoadConfig(nil)

	// The terminal belongs to the game while it runs, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()

	session := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("session", session)
	slog.SetDefault(logger)

	ctx := context.Background()

	if cfg.OTLPEndpoint != "" {
		shutdown, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, session)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	// Content problems are reported before the terminal is taken over.
	g, err := game.New(ctx, gamedata.Open(cfg.DataDir), cfg, logger)
	if err != nil {
		log.Fatalf("Failed to load game: %v", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	err = g.Run(ctx, screen)
	screen.Close()
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
