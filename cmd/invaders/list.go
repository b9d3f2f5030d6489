package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game modes",
	Long:  `Shows every registered game mode with its best score and games played.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	stats := playedStats()

	fmt.Printf("  %-*s  %-24s  %6s  %6s\n", maxIDLen, "ID", "Title", "Best", "Played")
	fmt.Printf("  %-*s  %-24s  %6s  %6s\n", maxIDLen, "--", "-----", "----", "------")
	for _, g := range games {
		best, played := "-", "0"
		if st, ok := stats[g.ID]; ok {
			best, played = fmt.Sprint(st.HighScore), fmt.Sprint(st.GamesCount)
		}
		fmt.Printf("  %-*s  %-24s  %6s  %6s\n", maxIDLen, g.ID, g.Title, best, played)
	}

	fmt.Println()
	fmt.Println("Run 'invaders play <id>' to play.")
}

// playedStats returns per-mode score stats, or nil when the database cannot
// be read. Listing modes should work without a score file.
func playedStats() map[string]*storage.GameStats {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("cannot open scores database", "err", err)
		return nil
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		logger.Warn("cannot read game stats", "err", err)
		return nil
	}
	return stats
}
