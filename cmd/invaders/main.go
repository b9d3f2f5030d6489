// invaders is a Space Invaders wave for the terminal.
//
// Usage:
//
//	invaders list              - List available game modes
//	invaders play [mode]       - Play a wave (default: invaders)
//	invaders menu              - Pick a mode interactively
//	invaders scores <mode>     - Show high scores and recent waves
//	invaders board             - Browse scores in a table
//	invaders serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible waves
//	--db <path>        - Set database path (default: ~/.invaders/scores.db)
//	--log-file <path>  - Write logs to a file
//	--verbose          - Log debug messages
//	--mute             - Disable sound effects
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagVerbose bool
	flagMute    bool
	flagVolume  float64

	logger  = log.New(io.Discard)
	logFile *os.File
	sound   *audio.SoundManager
)

func main() {
	err := rootCmd.Execute()
	shutdown()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `A single wave of Space Invaders played in the terminal.

Available commands:
  list     - Show the game modes
  play     - Play a wave directly
  menu     - Interactive mode picker
  scores   - Print high scores and recent waves
  board    - Browse the scoreboard
  serve    - Start SSH server for remote play

Examples:
  invaders play
  invaders play invaders_classic --difficulty hard
  invaders menu
  invaders serve --ssh :2222
  invaders scores invaders`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug messages")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0, "Sound volume offset (negative is quieter)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger and wires it into the game package.
// The terminal belongs to the TUI, so logs go to a file or nowhere.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "invaders",
		})
	}
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	invaders.SetLogger(logger)
	return nil
}

// setupAudio enables sound for local play. A missing audio device only
// costs the sound effects.
func setupAudio() {
	if flagMute {
		return
	}
	sm := audio.NewSoundManager(flagVolume)
	if err := sm.Initialize(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return
	}
	sound = sm
	invaders.SetAudio(sm)
}

func shutdown() {
	if sound != nil {
		sound.Cleanup()
	}
	if logFile != nil {
		logFile.Close()
	}
}

// runtimeConfig returns the runtime settings for a terminal of w x h cells.
func runtimeConfig(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
