package game

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/tilequest/data"
)

// EnvPrefix prefixes every configuration environment variable.
const EnvPrefix = "TILEQUEST_"

// Config holds game configuration options.
type Config struct {
	// TickRate is the number of simulation ticks per second.
	TickRate int
	// HoldTicks is how long one directional key press keeps moving the player.
	// The default moves exactly one tile.
	HoldTicks int

	// DataDir replaces the embedded content when set.
	DataDir   string
	WorldFile string
	LogFile   string

	// OTLPEndpoint enables trace export when set.
	OTLPEndpoint string

	SSHAddr    string
	SSHHostKey string
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		TickRate:   60,
		HoldTicks:  8,
		WorldFile:  data.WorldFile,
		LogFile:    "tilequest.log",
		SSHAddr:    ":2222",
		SSHHostKey: "tilequest_host_key",
	}
}

// LoadConfig reads TILEQUEST_* environment variables over the defaults.
func LoadConfig(logger *slog.Logger) Config {
	return loadConfig(os.Getenv, logger)
}

func loadConfig(getenv func(string) string, logger *slog.Logger) Config {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := DefaultConfig()

	positive := func(name string, dst *int) {
		raw := getenv(EnvPrefix + name)
		if raw == "" {
			return
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			logger.Warn("ignoring invalid setting", "name", EnvPrefix+name, "value", raw, "default", *dst)
			return
		}
		*dst = v
	}
	text := func(name string, dst *string) {
		if v := getenv(EnvPrefix + name); v != "" {
			*dst = v
		}
	}

	positive("TICK_RATE", &cfg.TickRate)
	positive("HOLD_TICKS", &cfg.HoldTicks)
	text("DATA_DIR", &cfg.DataDir)
	text("WORLD_FILE", &cfg.WorldFile)
	text("LOG_FILE", &cfg.LogFile)
	text("OTLP_ENDPOINT", &cfg.OTLPEndpoint)
	text("SSH_ADDR", &cfg.SSHAddr)
	text("SSH_HOST_KEY", &cfg.SSHHostKey)
	return cfg
}

// TickInterval returns the time between simulation ticks.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(max(c.TickRate, 1))
}
