package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/samdwyer/verbonia/internal/config"
	"github.com/samdwyer/verbonia/internal/game"
	"github.com/samdwyer/verbonia/internal/geom"
	"github.com/samdwyer/verbonia/internal/telemetry"
	"github.com/samdwyer/verbonia/internal/ui"
)

var flagMap string

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagMap != "" {
		cfg.Map.Path = flagMap
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry.Enabled || telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry - game still works
			logger.Warn("telemetry setup failed", "error", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	g, err := game.Load(ctx, cfg)
	if err != nil {
		return err
	}
	palette, err := ui.ParsePalette(cfg.Palette)
	if err != nil {
		return err
	}

	size := geom.Sz(cfg.Console.Width, cfg.Console.Height)
	term, err := ui.NewTerminal(size)
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer term.Close()

	logger.Info("starting", "map", g.World.Map.Size(), "actors", len(g.World.Actors), "console", size)
	driver := game.NewDriver(g, term, game.NewGameScreen(size, palette),
		game.WithLogger(logger),
		game.WithFPS(cfg.FPS),
	)
	if err := driver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newLogger opens the diagnostic log. The terminal belongs to the game while it runs,
// so logs go to a file, or nowhere when no file is configured.
func newLogger(cfg config.LogConfig) (*log.Logger, func(), error) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "verbonia",
	})
	if cfg.Level != "" {
		level, err := log.ParseLevel(cfg.Level)
		if err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		logger.SetLevel(level)
	}
	return logger, closeFn, nil
}
