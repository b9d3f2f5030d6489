package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a wave",
	Long: `Start a wave of the given mode (default: invaders).

Modes:
  invaders          - Symmetric hit boxes
  invaders_classic  - The original asymmetric hit test

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Fire
  S/Enter          - Start, continue after losing a ship
  P                - Pause
  R                - Restart (after the wave ends)
  Esc/B            - Leave
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Five lives, lowest difficulty level, less enemy fire
  normal - Starts at 30% difficulty
  hard   - Two lives, 70% difficulty, faster march
  fixed  - No difficulty scaling, the config's values as written

Examples:
  invaders play
  invaders play invaders_classic
  invaders play --difficulty easy
  invaders play --config ./my-invaders.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "invaders"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available modes.")
		os.Exit(1)
	}

	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)
	setupAudio()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig(terminalSize())
	logger.Debug("starting", "game", gameID, "width", cfg.ScreenW, "height", cfg.ScreenH, "seed", cfg.Seed)

	store := openStore()
	runErr := tui.Run(game, store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		shutdown()
		os.Exit(1)
	}
}
