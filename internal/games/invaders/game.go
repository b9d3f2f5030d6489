// Package invaders wraps the wave engine in the registry.Game interface:
// a title screen, a pause between lives, and a final result screen.
package invaders

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/wave"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Phase is the controller's position in a round.
type Phase int

const (
	PhaseInactive Phase = iota // Title screen, waiting for S
	PhaseActive                // Wave running
	PhasePaused                // Life lost, waiting for S
	PhaseComplete              // Won or out of lives
)

func (p Phase) String() string {
	switch p {
	case PhaseInactive:
		return "inactive"
	case PhaseActive:
		return "active"
	case PhasePaused:
		return "paused"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives round events; silent unless the CLI sets one.
var logger = log.New(io.Discard)

// sounds plays hit effects for every game created afterwards. nil is silent.
var sounds wave.Sounds

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger for round events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetAudio sets the sound sink. nil silences the game.
func SetAudio(s wave.Sounds) {
	sounds = s
}

// Progress is the score and play time of the cleared waves leading up to
// a new one. Difficulty progression reads it when the next wave is built.
type Progress struct {
	Score int
	Ticks int
}

// Game implements registry.Game for Space Invaders.
type Game struct {
	classic bool

	runtime core.RuntimeConfig
	cfg     config.InvadersConfig
	params  wave.Params
	wave    *wave.Wave

	phase      Phase
	userPaused bool
	ticks      int
	streak     Progress // survives Reset; cleared when a round is lost
	dt         float64
	log        *log.Logger

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game with symmetric hit boxes.
func New() *Game {
	return &Game{}
}

// NewClassic creates a game that uses the classic skewed hit test.
func NewClassic() *Game {
	return &Game{classic: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.classic {
		return "invaders_classic"
	}
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.classic {
		return "Space Invaders (Classic)"
	}
	return "Space Invaders"
}

// Reset loads configuration and builds a fresh wave on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger.With("game", g.ID())

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	if g.classic {
		cfg.Collision.LegacyCorners = true
	}
	g.cfg = cfg

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	g.dt = 1.0 / float64(tickRate)

	g.params = Params(cfg, runtime.ScreenW, runtime.ScreenH, g.streak)
	g.minScreenW, g.minScreenH = MinScreen(cfg)
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.phase = PhaseInactive
	g.userPaused = false
	g.ticks = 0
	g.wave = nil
	if !g.screenTooSmall {
		g.wave = wave.New(g.params, wave.NewSimpleRNG(runtime.Seed), sounds)
	}
}

// Params derives wave parameters from the config, a screen size and the
// progress carried over from earlier cleared waves. The top row is reserved
// for the HUD, so the world is one row shorter than the screen. Timing is
// fixed for the wave's lifetime.
func Params(cfg config.InvadersConfig, screenW, screenH int, prog Progress) wave.Params {
	dm := config.NewDifficultyManager(cfg.Difficulty)

	return wave.Params{
		Rows:        cfg.Grid.Rows,
		Columns:     cfg.Grid.Columns,
		AlienWidth:  cfg.Grid.AlienWidth,
		AlienHeight: cfg.Grid.AlienHeight,
		HSep:        cfg.Grid.HSep,
		VSep:        cfg.Grid.VSep,
		Ceiling:     cfg.Grid.Ceiling,

		Width:       float64(screenW),
		Height:      float64(screenH - 1),
		DefenseLine: cfg.Gameplay.DefenseLine,

		HWalk:         cfg.March.HWalk,
		VWalk:         cfg.March.VWalk,
		MarchInterval: dm.MarchInterval(cfg.March.Interval, prog.Score, prog.Ticks),
		MarchMargin:   cfg.March.Margin,

		ShipWidth:  cfg.Ship.Width,
		ShipHeight: cfg.Ship.Height,
		ShipBottom: cfg.Ship.Bottom,
		ShipSpeed:  cfg.Ship.Speed,

		BoltWidth:  cfg.Bolts.Width,
		BoltHeight: cfg.Bolts.Height,
		BoltSpeed:  cfg.Bolts.Speed,
		FireRate:   dm.FireRate(cfg.Bolts.FireRate, prog.Score, prog.Ticks),

		Lives:         cfg.Gameplay.Lives,
		AlienPoints:   cfg.Gameplay.AlienPoints,
		DeathDuration: cfg.Gameplay.DeathDuration,
		DeathFrames:   cfg.Gameplay.DeathFrames,
		LegacyCorners: cfg.Collision.LegacyCorners,
	}
}

// MinScreen returns the smallest screen that fits the formation with room
// to march, plus the HUD row and the space between formation and ship.
func MinScreen(cfg config.InvadersConfig) (w, h int) {
	g := cfg.Grid
	margin := cfg.March.Margin
	if margin == 0 {
		margin = g.HSep
	}
	formationRight := float64(g.Columns)*(g.HSep+g.AlienWidth) + g.AlienWidth/2
	w = int(math.Ceil(formationRight+margin+cfg.March.HWalk)) + 1

	formationHeight := float64(g.Rows)*(g.AlienHeight+g.VSep) + g.Ceiling
	h = int(math.Ceil(formationHeight+cfg.Gameplay.DefenseLine+cfg.March.VWalk)) + 1
	w = max(w, 40)
	h = max(h, 12)
	return w, h
}

// Step advances the round by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseInactive:
		if in.Has(core.ActionConfirm) {
			g.phase = PhaseActive
			g.log.Info("wave started",
				"lives", g.wave.Lives(),
				"seed", g.runtime.Seed,
				"march_interval", g.params.MarchInterval,
				"fire_rate", g.params.FireRate,
			)
		}

	case PhaseActive:
		if in.Has(core.ActionPause) {
			g.userPaused = !g.userPaused
		}
		if g.userPaused {
			break
		}
		g.advance(in)

	case PhasePaused:
		if in.Has(core.ActionConfirm) {
			g.wave.ResumeAfterPause()
			g.phase = PhaseActive
			g.log.Info("wave resumed", "lives", g.wave.Lives())
		}

	case PhaseComplete:
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
	}

	return core.StepResult{State: g.State()}
}

// advance runs one wave frame and moves to the next phase when the wave stops.
func (g *Game) advance(in core.InputFrame) {
	g.ticks++
	err := g.wave.Update(g.dt, wave.Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Fire:  in.Has(core.ActionFire),
	})
	if err != nil {
		g.log.Error("wave update rejected", "err", err)
		return
	}

	if !g.wave.IsDead() {
		return
	}
	if g.wave.IsWin() || g.wave.Lives() <= 0 {
		g.phase = PhaseComplete
		if g.wave.IsWin() {
			g.streak.Score += g.wave.Score()
			g.streak.Ticks += g.ticks
		} else {
			g.streak = Progress{}
		}
		g.log.Info("wave complete",
			"won", g.wave.IsWin(),
			"score", g.wave.Score(),
			"lives", g.wave.Lives(),
			"ticks", g.ticks,
		)
		return
	}
	g.phase = PhasePaused
	g.log.Info("life lost", "lives", g.wave.Lives(), "score", g.wave.Score())
}

// Resize adopts a new screen size. A wave that has started keeps its world
// and the size applies from the next Reset; the title screen and the
// too-small screen rebuild at once.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW, g.runtime.ScreenH = runtime.ScreenW, runtime.ScreenH
	if g.phase == PhaseInactive || g.screenTooSmall {
		g.Reset(g.runtime)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.wave != nil {
		score = g.wave.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.phase == PhaseComplete,
		Paused:   g.userPaused,
	}
}

// Outcome reports how the round ended.
func (g *Game) Outcome() core.Outcome {
	if g.wave == nil {
		return core.Outcome{Ticks: g.ticks}
	}
	return core.Outcome{
		Won:   g.wave.IsWin(),
		Lives: g.wave.Lives(),
		Ticks: g.ticks,
	}
}

// Streak returns the progress the next wave will be built with.
func (g *Game) Streak() Progress {
	return g.streak
}

// Phase returns the controller's current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Wave returns the running wave, or nil when the screen is too small.
func (g *Game) Wave() *wave.Wave {
	return g.wave
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
	registry.Register("invaders_classic", func() registry.Game {
		return NewClassic()
	})
}
