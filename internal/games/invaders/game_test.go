package invaders

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/wave"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func newStarted(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testRuntime())
	g.Step(input(core.ActionConfirm))
	if g.Phase() != PhaseActive {
		t.Fatalf("Expected active phase after confirm, got %s", g.Phase())
	}
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// strikeShip puts an enemy bolt just above the ship.
func strikeShip(g *Game) {
	s := g.Wave().Ship()
	g.Wave().Projectiles().SpawnEnemy(s.X, s.Y+1)
}

// runWhileActive steps with no input until the wave stops.
func runWhileActive(t *testing.T, g *Game) {
	t.Helper()
	for range 1000 {
		if g.Phase() != PhaseActive {
			return
		}
		g.Step(input())
	}
	t.Fatal("Wave did not stop within 1000 ticks")
}

type countingSounds struct{ destroyed, hits int }

func (s *countingSounds) AlienDestroyed() { s.destroyed++ }
func (s *countingSounds) ShipHit()        { s.hits++ }

func TestRegistered(t *testing.T) {
	for _, id := range []string{"invaders", "invaders_classic"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Expected ID %q, got %q", id, g.ID())
		}
	}
}

func TestResetStartsInactive(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	if g.Phase() != PhaseInactive {
		t.Fatalf("Expected inactive phase, got %s", g.Phase())
	}

	x := g.Wave().Grid().At(0, 0).X
	for range 120 {
		g.Step(input(core.ActionFire, core.ActionLeft))
	}
	if g.Wave().Grid().At(0, 0).X != x || g.Wave().Projectiles().Len() != 0 {
		t.Error("Wave must not advance on the title screen")
	}
	if g.Phase() != PhaseInactive {
		t.Error("Only confirm should start the wave")
	}
}

func TestLifeLostPausesThenResumes(t *testing.T) {
	g := newStarted(t)

	strikeShip(g)
	runWhileActive(t, g)

	if g.Phase() != PhasePaused {
		t.Fatalf("Expected paused phase after losing a life, got %s", g.Phase())
	}
	if g.Wave().Lives() != 2 || g.Wave().Ship() != nil {
		t.Fatalf("Expected 2 lives and no ship, got %d lives", g.Wave().Lives())
	}

	g.Step(input(core.ActionFire))
	if g.Phase() != PhasePaused {
		t.Error("Only confirm should resume")
	}

	g.Step(input(core.ActionConfirm))
	if g.Phase() != PhaseActive {
		t.Fatalf("Expected active phase after confirm, got %s", g.Phase())
	}
	if g.Wave().Ship() == nil || g.Wave().IsDead() {
		t.Error("Resumed wave should have a fresh ship")
	}
}

func TestLosingAllLivesCompletes(t *testing.T) {
	g := newStarted(t)

	for life := 3; life > 0; life-- {
		strikeShip(g)
		runWhileActive(t, g)
		if life > 1 {
			g.Step(input(core.ActionConfirm))
		}
	}

	if g.Phase() != PhaseComplete {
		t.Fatalf("Expected complete phase, got %s", g.Phase())
	}
	if !g.State().GameOver {
		t.Error("State should report game over")
	}
	out := g.Outcome()
	if out.Won || out.Lives != 0 || out.Ticks == 0 {
		t.Errorf("Unexpected outcome %+v", out)
	}

	g.Step(input(core.ActionRestart))
	if g.Phase() != PhaseInactive || g.Wave().Lives() != 3 {
		t.Error("Restart should build a fresh wave on the title screen")
	}
}

func TestClearingWins(t *testing.T) {
	g := newStarted(t)
	grid := g.Wave().Grid()
	for r := range grid.Rows() {
		for c := range grid.Columns() {
			grid.Remove(r, c)
		}
	}

	g.Step(input())

	if g.Phase() != PhaseComplete || !g.Outcome().Won {
		t.Errorf("Cleared wave should complete with a win, got %s %+v", g.Phase(), g.Outcome())
	}
}

func TestUserPause(t *testing.T) {
	g := newStarted(t)
	x := g.Wave().Ship().X

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Game should be paused")
	}
	g.Step(input(core.ActionLeft))
	if g.Wave().Ship().X != x {
		t.Error("Ship must not move while paused")
	}

	g.Step(input(core.ActionPause, core.ActionLeft))
	if g.State().Paused {
		t.Fatal("Game should be unpaused")
	}
	if g.Wave().Ship().X != x-1 {
		t.Errorf("Ship should move once unpaused, got x=%v", g.Wave().Ship().X)
	}
}

func TestAudioCues(t *testing.T) {
	sounds := &countingSounds{}
	SetAudio(sounds)
	t.Cleanup(func() { SetAudio(nil) })

	g := newStarted(t)
	a := g.Wave().Grid().At(0, 0)
	g.Wave().Projectiles().SpawnPlayer(a.X, a.Y-0.5)
	g.Step(input())

	if sounds.destroyed != 1 {
		t.Errorf("Expected 1 destroyed cue, got %d", sounds.destroyed)
	}
	if g.State().Score != 50 {
		t.Errorf("Row 0 of 5 should score 50, got %d", g.State().Score)
	}
}

func TestLogsRoundEvents(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.New(&buf))
	t.Cleanup(func() { SetLogger(nil) })

	g := newStarted(t)
	strikeShip(g)
	runWhileActive(t, g)
	g.Step(input(core.ActionConfirm))

	out := buf.String()
	for _, want := range []string{"wave started", "life lost", "wave resumed"} {
		if !strings.Contains(out, want) {
			t.Errorf("Log should contain %q, got:\n%s", want, out)
		}
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := New()
	rt := testRuntime()
	rt.ScreenW, rt.ScreenH = 20, 8
	g.Reset(rt)

	if g.Wave() != nil {
		t.Error("No wave should be built for a tiny screen")
	}
	g.Step(input(core.ActionConfirm))

	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("Render should explain the screen is too small")
	}
}

func TestClassicUsesLegacyCorners(t *testing.T) {
	g := NewClassic()
	g.Reset(testRuntime())
	if !g.Wave().Params().LegacyCorners {
		t.Error("Classic game should use legacy corners")
	}

	g = New()
	g.Reset(testRuntime())
	if g.Wave().Params().LegacyCorners {
		t.Error("Default game should use symmetric boxes")
	}
}

func TestParams(t *testing.T) {
	p := Params(config.DefaultInvadersConfig(), 80, 24, Progress{})

	if p.Width != 80 || p.Height != 23 {
		t.Errorf("World should be 80x23, got %vx%v", p.Width, p.Height)
	}
	if p.MarchInterval != 0.4 || p.FireRate != 10 {
		t.Errorf("Level 0 should keep base timing, got interval=%v fire=%d", p.MarchInterval, p.FireRate)
	}
	if p.Rows != 5 || p.Columns != 10 || p.Lives != 3 {
		t.Errorf("Unexpected formation %dx%d with %d lives", p.Rows, p.Columns, p.Lives)
	}
}

func TestParamsFollowProgression(t *testing.T) {
	withProgression := func(kind string) config.InvadersConfig {
		cfg := config.DefaultInvadersConfig()
		cfg.Difficulty.Progression = config.ProgressionConfig{Type: kind, MaxAt: 100}
		return cfg
	}

	tests := []struct {
		name     string
		cfg      config.InvadersConfig
		prog     Progress
		interval float64
		fireRate int
	}{
		{"none ignores progress", withProgression("none"), Progress{Score: 500, Ticks: 500}, 0.4, 10},
		{"score at start", withProgression("score"), Progress{}, 0.4, 10},
		{"score halfway", withProgression("score"), Progress{Score: 50}, 0.4 / 1.5, 8},
		{"score maxed", withProgression("score"), Progress{Score: 300}, 0.2, 5},
		{"time maxed", withProgression("time"), Progress{Ticks: 100}, 0.2, 5},
		{"time ignores score", withProgression("time"), Progress{Score: 300}, 0.4, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params(tt.cfg, 80, 24, tt.prog)
			if math.Abs(p.MarchInterval-tt.interval) > 1e-9 || p.FireRate != tt.fireRate {
				t.Errorf("interval=%v fire=%d, want %v and %d", p.MarchInterval, p.FireRate, tt.interval, tt.fireRate)
			}
		})
	}
}

func TestClearedWavesCarryIntoNextWave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	yaml := "difficulty:\n  progression:\n    type: time\n    max_at: 1\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := newStarted(t)
	if got := g.Wave().Params().MarchInterval; got != 0.4 {
		t.Fatalf("First wave interval = %v, want 0.4", got)
	}
	grid := g.Wave().Grid()
	for r := range grid.Rows() {
		for c := range grid.Columns() {
			grid.Remove(r, c)
		}
	}
	g.Step(input())
	if g.Phase() != PhaseComplete || g.Streak().Ticks != 1 {
		t.Fatalf("Cleared wave should add its ticks to the streak, got %s %+v", g.Phase(), g.Streak())
	}

	g.Step(input(core.ActionRestart))
	p := g.Wave().Params()
	if math.Abs(p.MarchInterval-0.2) > 1e-9 || p.FireRate != 5 {
		t.Errorf("Next wave should run at full difficulty, got interval=%v fire=%d", p.MarchInterval, p.FireRate)
	}

	// Losing a round starts the streak over.
	g.Step(input(core.ActionConfirm))
	for life := g.Wave().Lives(); life > 0; life-- {
		strikeShip(g)
		runWhileActive(t, g)
		if life > 1 {
			g.Step(input(core.ActionConfirm))
		}
	}
	if g.Phase() != PhaseComplete || g.Streak() != (Progress{}) {
		t.Fatalf("Lost round should clear the streak, got %s %+v", g.Phase(), g.Streak())
	}
	g.Step(input(core.ActionRestart))
	if got := g.Wave().Params().MarchInterval; got != 0.4 {
		t.Errorf("Wave after a loss should use base timing, got %v", got)
	}
}

func TestMinScreen(t *testing.T) {
	w, h := MinScreen(config.DefaultInvadersConfig())
	if w != 56 || h != 17 {
		t.Errorf("Expected 56x17, got %dx%d", w, h)
	}
	if w > 80 || h > 24 {
		t.Error("Defaults must fit a standard terminal")
	}
}

func TestCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	yaml := "grid:\n  rows: 2\n  columns: 3\ngameplay:\n  lives: 4\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(testRuntime())

	if g.Wave().Grid().Living() != 6 || g.Wave().Lives() != 4 {
		t.Errorf("Custom config not applied: %d aliens, %d lives", g.Wave().Grid().Living(), g.Wave().Lives())
	}
}

func TestDifficultyPreset(t *testing.T) {
	SetDifficultyPreset("easy")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.Reset(testRuntime())
	if g.Wave().Lives() != 5 {
		t.Errorf("Easy preset should give 5 lives, got %d", g.Wave().Lives())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() uint64 {
		g := New()
		g.Reset(testRuntime())
		g.Step(input(core.ActionConfirm))
		for i := range 1200 {
			var in core.InputFrame
			switch {
			case g.Phase() == PhasePaused:
				in = input(core.ActionConfirm)
			case i%3 == 0:
				in = input(core.ActionFire, core.ActionLeft)
			default:
				in = input(core.ActionRight)
			}
			g.Step(in)
		}
		snap := g.Wave().Snapshot()
		return snap.Hash()
	}

	if h1, h2 := run(), run(); h1 != h2 {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", h1, h2)
	}
}

func TestRender(t *testing.T) {
	g := newStarted(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Row 0 of the formation sits at world y=13, screen row 10.
	if got := screen.Row(10)[4:7]; got != AlienSprites[0] {
		t.Errorf("Expected front-row sprite %q at row 10, got %q", AlienSprites[0], got)
	}
	// Row 4 sits at world y=21, screen row 2.
	if got := screen.Row(2)[4:7]; got != AlienSprites[Variant(4)] {
		t.Errorf("Expected back-row sprite %q at row 2, got %q", AlienSprites[Variant(4)], got)
	}
	if got := screen.Row(22)[38:43]; got != ShipSprite {
		t.Errorf("Expected ship %q at row 22, got %q", ShipSprite, got)
	}
	if screen.Get(0, 21) != DefenseLineChar {
		t.Errorf("Expected defense line at row 21, got %q", screen.Get(0, 21))
	}
	if !strings.HasPrefix(screen.Row(0), " Score: 0") {
		t.Errorf("HUD should start with the score, got %q", screen.Row(0))
	}
	if c := screen.GetCell(5, 10); c.Color != AlienColors[0] {
		t.Errorf("Front-row alien should use color %d, got %d", AlienColors[0], c.Color)
	}
}

func TestRenderBanners(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Press S to play") {
		t.Error("Title screen should prompt to start")
	}

	g.Step(input(core.ActionConfirm))
	g.Step(input(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "Press P to resume") {
		t.Error("Paused screen should prompt to resume")
	}
}

func TestScreenCanvasExplosion(t *testing.T) {
	screen := core.NewScreen(10, 5)
	c := NewScreenCanvas(screen, "t")

	c.Ship(core.NewBox(5, 1.5, 3, 1), 3)
	if got := screen.Get(4, 3); got != ExplosionGlyphs[3] {
		t.Errorf("Expected explosion glyph %q, got %q", ExplosionGlyphs[3], got)
	}

	c.Ship(core.NewBox(5, 1.5, 3, 1), wave.ShipIntact)
	if got := screen.Get(4, 3); got != []rune(ShipSprite)[0] {
		t.Errorf("Expected intact ship glyph, got %q", got)
	}
}

func TestVariant(t *testing.T) {
	tests := []struct{ row, want int }{
		{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}, {6, 0},
	}
	for _, tt := range tests {
		if got := Variant(tt.row); got != tt.want {
			t.Errorf("Variant(%d) = %d, want %d", tt.row, got, tt.want)
		}
	}
}

var _ registry.Resizer = (*Game)(nil)

func TestResize(t *testing.T) {
	t.Run("title screen rebuilds", func(t *testing.T) {
		g := New()
		g.Reset(testRuntime())
		g.Resize(core.RuntimeConfig{ScreenW: 100, ScreenH: 30})
		if g.Wave().Params().Width != 100 || g.Wave().Params().Height != 29 {
			t.Errorf("World = %vx%v, want 100x29", g.Wave().Params().Width, g.Wave().Params().Height)
		}
		if g.runtime.Seed != testRuntime().Seed || g.runtime.TickRate != 60 {
			t.Errorf("Resize should keep seed and tick rate, got %+v", g.runtime)
		}
	})

	t.Run("running wave survives", func(t *testing.T) {
		g := newStarted(t)
		a := g.Wave().Grid().At(0, 0)
		g.Wave().Projectiles().SpawnPlayer(a.X, a.Y-0.5)
		g.Step(input())
		w := g.Wave()

		g.Resize(core.RuntimeConfig{ScreenW: 100, ScreenH: 30})
		if g.Wave() != w || g.Phase() != PhaseActive || g.State().Score != 50 {
			t.Fatalf("Resize dropped the running wave: phase %s score %d", g.Phase(), g.State().Score)
		}

		g.Reset(g.runtime)
		if g.Wave().Params().Width != 100 {
			t.Errorf("Next wave should use the new width, got %v", g.Wave().Params().Width)
		}
	})

	t.Run("too small screen recovers", func(t *testing.T) {
		g := New()
		g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60})
		if g.Wave() != nil {
			t.Fatal("Expected no wave on a tiny screen")
		}
		g.Resize(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
		if g.Wave() == nil || g.Phase() != PhaseInactive {
			t.Error("Growing the screen should build the wave")
		}
	})
}
