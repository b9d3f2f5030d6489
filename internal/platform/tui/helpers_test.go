package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// stubGame ends after a fixed number of steps with a fixed score.
type stubGame struct {
	steps  int
	endAt  int
	score  int
	resets int
	last   core.InputFrame
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub Game" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.steps = 0
	g.resets++
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.last = in.Clone()
	if g.steps < g.endAt {
		g.steps++
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.steps >= g.endAt}
}

func (g *stubGame) Outcome() core.Outcome {
	return core.Outcome{Won: true, Lives: 2, Ticks: g.steps}
}

func init() {
	registry.Register("stub", func() registry.Game {
		return &stubGame{endAt: 3, score: 120}
	})
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
