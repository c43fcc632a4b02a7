// skycombat is a vertical arcade shoot-'em-up for the terminal and the desktop.
//
// Usage:
//
//	skycombat play           - Play in the terminal
//	skycombat window         - Play in a desktop window
//	skycombat sim            - Run a headless simulation and print the result
//	skycombat list           - List available games
//	skycombat config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-combat/internal/games/skycombat"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

// logFile is closed after the command finishes.
var logFile io.Closer

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skycombat",
	Short: "Sky Combat - a vertical arcade shooter",
	Long: `Sky Combat is a vertical arcade shoot-'em-up. Fly at the bottom of the
sky, dodge the shots of descending enemies and shoot them down. Your score
grows with every second survived and every enemy destroyed.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Run a headless simulation
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  skycombat play
  skycombat play --difficulty hard
  skycombat window --seed 42
  skycombat sim --frames 3600 --strafe
  skycombat config --difficulty easy`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Without a log file it writes to
// fallback; quiet hosts pass io.Discard so the alternate screen stays clean.
func newLogger(fallback io.Writer) (*log.Logger, error) {
	out := fallback
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "skycombat",
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger, nil
}

// applyGameFlags hands the config flags to the game before it is created.
func applyGameFlags(logger *log.Logger) {
	skycombat.SetConfigPath(flagConfig)
	skycombat.SetDifficultyPreset(flagDifficulty)
	skycombat.SetLogger(logger)
}
