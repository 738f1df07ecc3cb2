// adventurer-guild plays the guild's introductory script. By default each
// notification is printed on its own line; -mode tui shows them in a
// scrollable terminal view instead.
//
// Usage:
//
//	adventurer-guild [-mode plain|tui] [-log-level debug|info|warn|error]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"adventurer-guild/internal/config"
	"adventurer-guild/internal/game"
	"adventurer-guild/internal/notify"
)

// flagEnv maps each command-line flag to the variable it overrides.
var flagEnv = map[string]string{
	"mode":      "GUILD_MODE",
	"log-level": "GUILD_LOG_LEVEL",
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flag.String("mode", string(config.ModePlain), "output mode: plain or tui (overrides GUILD_MODE)")
	flag.String("log-level", "warn", "diagnostic log level (overrides GUILD_LOG_LEVEL)")
	flag.Parse()

	// Only flags given explicitly override the environment.
	overrides := make(map[string]string)
	flag.Visit(func(f *flag.Flag) {
		if key, ok := flagEnv[f.Name]; ok {
			overrides[key] = f.Value.String()
		}
	})
	cfg, err := config.Load(overrides)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	switch cfg.Mode {
	case config.ModeTUI:
		g, err := game.New(cfg.LogCap, logger)
		if err != nil {
			return err
		}
		return g.Run()
	default:
		sink := notify.Multi(
			notify.NewWriter(os.Stdout),
			notify.Func(func(msg string) { logger.Debug("notification", "text", msg) }),
		)
		_, err := game.RunDemo(sink, logger)
		return err
	}
}
