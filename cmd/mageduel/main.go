// Package main is the entry point for Mage Duel.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/mageduel/internal/dice"
	"github.com/samdwyer/mageduel/internal/game"
	"github.com/samdwyer/mageduel/internal/gamedata"
	"github.com/samdwyer/mageduel/internal/telemetry"
	"github.com/samdwyer/mageduel/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		if !os.IsNotExist(err) {
			log.Printf("Note: .env file not loaded: %v", err)
		}
	}

	if err := run(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Printf("Game error: %v", err)
		os.Exit(1)
	}
}

// run plays one session. Telemetry is flushed before it returns, on error too.
func run(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	cfg, err := game.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.Telemetry {
		if err := telemetry.ConfigureEnv(telemetry.Honeycomb{
			APIKey:  cfg.HoneycombAPIKey,
			Dataset: cfg.HoneycombDataset,
		}); err != nil {
			log.Printf("Warning: %v", err)
		}
		shutdown, err := telemetry.Setup(ctx)
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

	roster, err := gamedata.LoadRoster()
	if err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	rng, seed, err := dice.New(cfg.Seed)
	if err != nil {
		return fmt.Errorf("seed dice: %w", err)
	}

	printer := ui.NewPrinter(stdout, cfg.Color && isTerminal(stdout))

	var logger *log.Logger
	if cfg.Debug {
		logger = log.New(os.Stderr, "mageduel: ", log.LstdFlags)
	}

	g, err := game.New(game.Options{
		Roster: roster,
		Rand:   rng,
		Sink:   printer,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}
	if logger != nil {
		logger.Printf("session=%s seed=%d", g.SessionID(), seed)
	}

	if err := g.Run(ctx, stdin); err != nil {
		return err
	}
	if err := printer.Err(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
