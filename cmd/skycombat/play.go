package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-combat/internal/core"
	"github.com/vovakirdan/sky-combat/internal/games/skycombat"
	"github.com/vovakirdan/sky-combat/internal/platform/tui"
	"github.com/vovakirdan/sky-combat/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The game defaults to skycombat.

Controls:
  Arrows/WASD  - Fly
  P            - Pause
  Enter        - Restart (after game over)
  Esc/Q        - Quit
  ?            - Toggle help

Difficulty options:
  easy   - More health, slower enemy fire, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Less health, faster enemy fire, starts at 70%
  fixed  - No progression

Logs go to --log-file only, so they never draw over the game.

Examples:
  skycombat play
  skycombat play --difficulty hard
  skycombat play --config ./my-sky.yaml --log-file sky.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// gameArg returns the requested game ID, or skycombat.
func gameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return skycombat.GameID
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := gameArg(args)

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'skycombat list' to see available games)", gameID)
	}

	logger, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	applyGameFlags(logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	} else {
		logger.Warn("could not read terminal size, using 80x24", "error", termErr)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("game failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
