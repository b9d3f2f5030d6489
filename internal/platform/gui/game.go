// Package gui runs a game in a desktop window with ebiten. It shares the
// simulation with the terminal front end and only swaps input and drawing.
package gui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Options configures the window.
type Options struct {
	Cols     int   // World width in cells
	Rows     int   // World height in cells, HUD row included
	Cell     int   // Pixels per cell
	TickRate int   // Updates per second
	Seed     int64 // 0 picks a time-based seed
	Store    *storage.Store
	Logger   *log.Logger
}

// DefaultOptions returns an 80x30 cell window at 60 ticks per second.
func DefaultOptions() Options {
	return Options{Cols: 80, Rows: 30, Cell: 10, TickRate: core.DefaultTickRate}
}

// keySource reports keyboard state. ebitenKeys reads the live keyboard.
type keySource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// held actions repeat every tick while the key is down.
var held = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}},
}

// pressed actions fire once per key press.
var pressed = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyS, ebiten.KeyEnter}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}},
}

// readInput builds this tick's input frame.
func readInput(ks keySource) core.InputFrame {
	frame := core.NewInputFrame()
	for _, h := range held {
		for _, k := range h.keys {
			if ks.Pressed(k) {
				frame.Set(h.action)
				break
			}
		}
	}
	for _, p := range pressed {
		for _, k := range p.keys {
			if ks.JustPressed(k) {
				frame.Set(p.action)
				break
			}
		}
	}
	return frame
}

// Game adapts an invaders game to ebiten.Game.
type Game struct {
	game  *invaders.Game
	opts  Options
	cfg   core.RuntimeConfig
	keys  keySource
	log   *log.Logger
	state core.GameState
	saved bool
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Cols <= 0 {
		o.Cols = d.Cols
	}
	if o.Rows <= 0 {
		o.Rows = d.Rows
	}
	if o.Cell <= 0 {
		o.Cell = d.Cell
	}
	if o.TickRate <= 0 {
		o.TickRate = d.TickRate
	}
	return o
}

// New resets g for the window size and wraps it.
func New(g *invaders.Game, opts Options) *Game {
	opts = opts.withDefaults()
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	cfg := core.RuntimeConfig{
		ScreenW:  opts.Cols,
		ScreenH:  opts.Rows,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	g.Reset(cfg)

	return &Game{
		game: g,
		opts: opts,
		cfg:  cfg,
		keys: ebitenKeys{},
		log:  opts.Logger,
	}
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	in := readInput(g.keys)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}
	g.step(in)
	return nil
}

func (g *Game) step(in core.InputFrame) {
	if in.Has(core.ActionRestart) && g.state.GameOver {
		g.cfg.Seed = time.Now().UnixNano()
		g.game.Reset(g.cfg)
		g.state = g.game.State()
		g.saved = false
		return
	}

	g.state = g.game.Step(in).State
	if g.state.GameOver && !g.saved {
		g.record()
		g.saved = true
	}
}

// record stores the finished round. Failures are logged only.
func (g *Game) record() {
	if g.opts.Store == nil {
		return
	}
	out := g.game.Outcome()
	err := g.opts.Store.RecordRound(storage.WaveResult{
		GameID:    g.game.ID(),
		Score:     g.state.Score,
		Won:       out.Won,
		LivesLeft: out.Lives,
		Ticks:     out.Ticks,
		Seed:      g.cfg.Seed,
	})
	if err != nil {
		g.log.Warn("save round failed", "game", g.game.ID(), "err", err)
	}
}

// Draw paints the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	w := g.game.Wave()
	if w == nil {
		return
	}
	g.game.Draw(NewCanvas(imageSurface{screen}, g.opts.Cell, g.opts.Cols, float64(w.Params().Height), g.game.Title()))
}

// Layout keeps a fixed logical size; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Cols * g.opts.Cell, g.opts.Rows * g.opts.Cell
}

// Run opens the window and blocks until it closes.
func Run(g *invaders.Game, opts Options) error {
	game := New(g, opts)
	opts = game.opts

	ebiten.SetWindowTitle(g.Title())
	ebiten.SetWindowSize(opts.Cols*opts.Cell*2, opts.Rows*opts.Cell*2)
	ebiten.SetTPS(opts.TickRate)

	return ebiten.RunGame(game)
}
