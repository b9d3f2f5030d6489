package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagClear bool
	flagAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores and recent waves",
	Long: `Display the top 10 high scores and the last 10 waves for a mode.

Examples:
  invaders scores invaders
  invaders scores invaders_classic
  invaders scores invaders --all
  invaders scores invaders --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and waves for the mode")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "List every recorded score instead of the top 10")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return
	}

	if err := printScores(store, gameID, game.Title()); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	var scores []storage.ScoreEntry
	var err error
	if flagAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'invaders play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	waves, err := store.RecentWaves(gameID, 10)
	if err != nil {
		return err
	}
	if len(waves) > 0 {
		fmt.Println()
		fmt.Println("Recent waves")
		fmt.Printf("  %-6s  %-8s  %-5s  %-7s  %s\n", "Result", "Score", "Lives", "Ticks", "Seed")
		for _, w := range waves {
			result := "lost"
			if w.Won {
				result = "won"
			}
			fmt.Printf("  %-6s  %-8d  %-5d  %-7d  %d\n", result, w.Score, w.LivesLeft, w.Ticks, w.Seed)
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Average: %.0f  Waves: %d  Cleared: %d\n",
		stats.HighScore, stats.AvgScore, stats.Waves, stats.Wins)
	return nil
}
