package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-combat/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the games built into this binary",
	Long: `Shows every registered game with the commands that start it. Any ID
shown here can be passed to play, window and sim.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	writeGameList(cmd.OutOrStdout(), registry.List())
	return nil
}

// writeGameList prints one line per game: its ID, title and how to launch it
// in each host.
func writeGameList(w io.Writer, games []registry.GameInfo) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games registered.")
		return
	}

	width := len("ID")
	for _, g := range games {
		width = max(width, len(g.ID))
	}

	fmt.Fprintf(w, "%-*s  %-12s  %s\n", width, "ID", "Title", "Start with")
	for _, g := range games {
		launch := fmt.Sprintf("skycombat play %[1]s | skycombat window %[1]s", g.ID)
		fmt.Fprintf(w, "%-*s  %-12s  %s\n", width, g.ID, g.Title, launch)
	}
}
