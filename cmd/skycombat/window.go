package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-combat/internal/core"
	"github.com/vovakirdan/sky-combat/internal/platform/window"
	"github.com/vovakirdan/sky-combat/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play. Keys are polled for their real
up/down state, so movement is smoother than in the terminal.

Controls:
  Arrows/WASD  - Fly
  P            - Pause
  Enter        - Restart (after game over)
  Esc          - Quit

Examples:
  skycombat window
  skycombat window --seed 42 --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	gameID := gameArg(args)

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	applyGameFlags(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := window.Run(game, cfg, logger); err != nil {
		logger.Error("window failed", "error", err)
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
