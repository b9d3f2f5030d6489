package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for the scoreboard.
Without --difficulty, a difficulty picker follows the mode choice.
Leaving a wave returns to the menu.

Examples:
  invaders menu
  invaders menu --fps 30
  invaders menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)
	setupAudio()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig(terminalSize())

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return

		case result.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}

		default:
			if flagDifficulty == "" {
				preset, pickErr := tui.RunDifficultySelector(registry.Title(result.GameID), cfg)
				if pickErr != nil {
					fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
					continue
				}
				if preset == nil {
					continue
				}
				invaders.SetDifficultyPreset(string(*preset))
			}

			game, createErr := registry.Create(result.GameID)
			if createErr != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", createErr)
				continue
			}
			logger.Info("menu selection", "game", result.GameID)
			if runErr := tui.Run(game, store, cfg, logger); runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			}
		}
	}
}
