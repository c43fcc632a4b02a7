package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-combat/internal/core"
	"github.com/vovakirdan/sky-combat/internal/platform/tui"
	"github.com/vovakirdan/sky-combat/internal/registry"
)

var (
	flagSimFrames   int
	flagSimDelta    float64
	flagSimStrafe   bool
	flagSimSnapshot bool
)

// errSimArgs is returned for unusable --frames or --dt values.
var errSimArgs = errors.New("--frames must be >= 0 and --dt must be > 0")

var simCmd = &cobra.Command{
	Use:   "sim [game]",
	Short: "Run a headless simulation",
	Long: `Runs the game without a display for a fixed number of frames and prints
the final scene, score and lives. With the same --seed the result is the same
on every run.

By default the player holds still. --strafe sweeps the player left and right,
switching direction every second of game time.

Examples:
  skycombat sim --seed 7
  skycombat sim --seed 7 --frames 7200 --strafe
  skycombat sim --seed 7 --snapshot`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 3600, "Number of frames to simulate")
	simCmd.Flags().Float64Var(&flagSimDelta, "dt", 1.0/60, "Seconds per frame")
	simCmd.Flags().BoolVar(&flagSimStrafe, "strafe", false, "Sweep the player left and right")
	simCmd.Flags().BoolVar(&flagSimSnapshot, "snapshot", false, "Print the last frame as text")
}

// strafeInput returns the input for frame i of a left/right sweep.
func strafeInput(i int, dt float64) core.InputFrame {
	period := 1.0
	if dt > 0 {
		period = 1 / dt
	}
	if int(float64(i)/period)%2 == 0 {
		return core.NewInputFrame(core.ActionRight)
	}
	return core.NewInputFrame(core.ActionLeft)
}

// simResult is the outcome of a headless run.
type simResult struct {
	Frames int
	Quit   bool
	State  core.GameState
}

// simulate steps game for at most frames frames of dt seconds. The run ends
// early at the first game over or when the game quits.
func simulate(game registry.Game, frames int, dt float64, strafe bool) (simResult, error) {
	if frames < 0 || dt <= 0 {
		return simResult{}, errSimArgs
	}

	var res simResult
	for i := 0; i < frames; i++ {
		in := core.NewInputFrame()
		if strafe {
			in = strafeInput(i, dt)
		}
		step := game.Step(in, dt)
		res.Frames++
		if step.Quit {
			res.Quit = true
			break
		}
		if step.State.GameOver {
			break
		}
	}
	res.State = game.State()
	return res, nil
}

func runSim(cmd *cobra.Command, args []string) error {
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

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	if err := game.Reset(core.RuntimeConfig{TickRate: flagFPS, Seed: seed}); err != nil {
		return err
	}

	res, err := simulate(game, flagSimFrames, flagSimDelta, flagSimStrafe)
	if err != nil {
		return err
	}
	logger.Info("simulation finished", "frames", res.Frames, "scene", res.State.Scene, "score", res.State.Score)

	printSim(cmd.OutOrStdout(), seed, res)
	if flagSimSnapshot {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprint(cmd.OutOrStdout(), snapshot(game, 80, 24))
	}
	return nil
}

func printSim(w io.Writer, seed int64, res simResult) {
	fmt.Fprintf(w, "seed:   %d\n", seed)
	fmt.Fprintf(w, "frames: %d\n", res.Frames)
	fmt.Fprintf(w, "scene:  %s\n", res.State.Scene)
	fmt.Fprintf(w, "score:  %d\n", res.State.Score)
	fmt.Fprintf(w, "lives:  %d\n", res.State.Lives)
	if res.Quit {
		fmt.Fprintln(w, "quit:   true")
	}
}

// snapshot rasterizes the game's last frame into a w x h text grid.
func snapshot(game registry.Game, w, h int) string {
	screen := core.NewScreen(w, h)
	viewW, viewH := w, h
	var bank *core.SpriteBank
	if vp, ok := game.(tui.Viewport); ok {
		viewW, viewH = vp.Viewport()
		bank = vp.Sprites()
	}
	canvas := tui.NewCanvas(screen, bank, viewW, viewH)
	canvas.Begin()
	game.Render(canvas)
	return screen.String()
}
