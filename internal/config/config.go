// Package config reads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Mode selects where notifications are shown.
type Mode string

const (
	ModePlain Mode = "plain" // one line per notification on stdout
	ModeTUI   Mode = "tui"   // full-screen terminal log
)

// UnmarshalText accepts only the known modes.
func (m *Mode) UnmarshalText(text []byte) error {
	switch v := Mode(text); v {
	case ModePlain, ModeTUI:
		*m = v
		return nil
	default:
		return fmt.Errorf("unknown mode %q (want %q or %q)", text, ModePlain, ModeTUI)
	}
}

func (m Mode) String() string { return string(m) }

// Config holds every setting of the binary.
type Config struct {
	Mode     Mode       `env:"GUILD_MODE" envDefault:"plain"`
	LogLevel slog.Level `env:"GUILD_LOG_LEVEL" envDefault:"warn"`
	LogCap   int        `env:"GUILD_LOG_CAP" envDefault:"50"`
}

// DefaultEnvFile is loaded when GUILD_ENV_FILE is unset.
const DefaultEnvFile = ".env"

// Load reads the .env file named by GUILD_ENV_FILE (a missing file is fine),
// then parses the environment. Variables already set win over the file, and
// overrides (keyed by variable name, e.g. from command-line flags) win over
// both.
func Load(overrides map[string]string) (Config, error) {
	path := os.Getenv("GUILD_ENV_FILE")
	if path == "" {
		path = DefaultEnvFile
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	environ := env.ToMap(os.Environ())
	for k, v := range overrides {
		environ[k] = v
	}
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the parser cannot.
func (c Config) Validate() error {
	if c.LogCap < 0 {
		return fmt.Errorf("GUILD_LOG_CAP must not be negative, got %d", c.LogCap)
	}
	return nil
}
