// invaders-gui plays the same wave in a desktop window.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/gui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagCols       int
	flagRows       int
	flagCell       int
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagClassic    bool
	flagMute       bool
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders-gui",
	Short: "Space Invaders in a window",
	Long: `Play a wave of Space Invaders in a desktop window.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Fire
  S/Enter          - Start, continue after losing a ship
  P                - Pause
  R                - Restart (after the wave ends)
  Esc/Q            - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	d := gui.DefaultOptions()
	f := rootCmd.Flags()
	f.IntVar(&flagCols, "cols", d.Cols, "World width in cells")
	f.IntVar(&flagRows, "rows", d.Rows, "World height in cells, HUD included")
	f.IntVar(&flagCell, "cell", d.Cell, "Pixels per cell")
	f.IntVar(&flagFPS, "fps", d.TickRate, "Tick rate (updates per second)")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	f.StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	f.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	f.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	f.BoolVar(&flagClassic, "classic", false, "Use the original asymmetric hit test")
	f.BoolVar(&flagMute, "mute", false, "Disable sound effects")
	f.BoolVar(&flagVerbose, "verbose", false, "Log to stderr")
}

func run(_ *cobra.Command, _ []string) error {
	logger := log.New(io.Discard)
	if flagVerbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "invaders-gui",
			Level:           log.DebugLevel,
		})
	}
	invaders.SetLogger(logger)
	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)

	if !flagMute {
		sm := audio.NewSoundManager(0)
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer sm.Cleanup()
			invaders.SetAudio(sm)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	game := invaders.New()
	if flagClassic {
		game = invaders.NewClassic()
	}

	return gui.Run(game, gui.Options{
		Cols:     flagCols,
		Rows:     flagRows,
		Cell:     flagCell,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Store:    store,
		Logger:   logger,
	})
}
