// Package registry maps game mode IDs to factories. Modes register
// themselves from init, and frontends look them up by ID.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game is a playable mode driven by a frontend at a fixed tick rate.
// Implementations hold no terminal or window state.
type Game interface {
	// ID is the stable key used on the command line and in the score store.
	ID() string
	Title() string

	// Reset starts a fresh game sized for cfg. Frontends call it once on
	// creation and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions collected since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which the caller has already cleared.
	Render(dst *core.Screen)

	State() core.GameState
}

// Reporter is implemented by games that can say how a finished round ended.
type Reporter interface {
	Outcome() core.Outcome
}

// Resizer is implemented by games that decide themselves what a new screen
// size means for a game in progress. Frontends reset other games instead.
type Resizer interface {
	Resize(cfg core.RuntimeConfig)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a mode. It panics when id is taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create returns a new instance of mode id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}

// Title returns the display title for id, or id itself when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()
	if e, ok := entries[id]; ok {
		return e.title
	}
	return id
}
