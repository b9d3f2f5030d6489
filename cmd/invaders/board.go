package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the scoreboard",
	Long: `Open the interactive scoreboard.

Tab switches mode, v switches between high scores and recent waves.`,
	Run: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) {
	store := openStore()
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	w, h := terminalSize()
	if _, err := tui.RunScoreboard(store, w, h); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
