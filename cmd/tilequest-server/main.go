// tilequest-server hosts TileQuest over SSH. Every connection plays its own
// independent game; nothing is shared between sessions.
//
//	TILEQUEST_SSH_ADDR=:2222 ./tilequest-server
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	xssh "golang.org/x/crypto/ssh"

	"github.com/samdwyer/tilequest/internal/game"
	"github.com/samdwyer/tilequest/internal/gamedata"
	"github.com/samdwyer/tilequest/internal/sshtty"
	"github.com/samdwyer/tilequest/internal/telemetry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg := game.LoadConfig(nil)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	if cfg.OTLPEndpoint != "" {
		shutdown, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, "server-"+uuid.NewString())
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer shutdown(ctx)
		}
	}

	fsys := gamedata.Open(cfg.DataDir)
	// Refuse to start with content no session could play.
	if _, err := game.New(ctx, fsys, cfg, logger); err != nil {
		log.Fatalf("Failed to load game: %v", err)
	}

	signer, err := loadOrCreateHostKey(cfg.SSHHostKey)
	if err != nil {
		log.Fatalf("Host key: %v", err)
	}

	srv := &ssh.Server{
		Addr: cfg.SSHAddr,
		Handler: func(s ssh.Session) {
			handleSession(s, fsys, cfg, logger)
		},
		PtyCallback: func(ssh.Context, ssh.Pty) bool { return true },
		HostSigners: []ssh.Signer{signer},
	}

	log.Printf("tilequest SSH server listening on %s", cfg.SSHAddr)
	log.Fatal(srv.ListenAndServe())
}

// handleSession runs one game for the lifetime of an SSH connection.
func handleSession(s ssh.Session, fsys fs.FS, cfg game.Config, logger *slog.Logger) {
	logger = logger.With("session", uuid.NewString(), "user", s.User(), "remote", s.RemoteAddr().String())
	logger.Info("session opened")
	defer logger.Info("session closed")

	screen, err := sshtty.NewScreen(s)
	if errors.Is(err, sshtty.ErrNoPTY) {
		fmt.Fprintln(s, "TileQuest needs a terminal. Connect with: ssh -t -p <port> <host>")
		return
	}
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		logger.Error("screen setup failed", "error", err)
		return
	}
	defer screen.Close()

	g, err := game.New(s.Context(), fsys, cfg, logger)
	if err != nil {
		logger.Error("game load failed", "error", err)
		return
	}
	if err := g.Run(s.Context(), screen); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("game error", "error", err)
	}
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file does not exist. An existing key that
// cannot be read or parsed is an error and is never overwritten.
func loadOrCreateHostKey(path string) (ssh.Signer, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		signer, err := xssh.ParsePrivateKey(data)
		if err != nil {
			return nil, fmt.Errorf("parse host key %s: %w", path, err)
		}
		log.Printf("Loaded host key from %s", path)
		return signer, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read host key %s: %w", path, err)
	}

	log.Printf("Generating new ed25519 host key in %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best effort.
	if block, err := xssh.MarshalPrivateKey(key, "tilequest server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
			log.Printf("Warning: could not save host key: %v", err)
		}
	}
	return signer, nil
}
