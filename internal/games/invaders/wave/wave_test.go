package wave

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

const frameDT = 1.0 / 60

// strike hits the ship with an enemy bolt on the next update.
func strike(t *testing.T, w *Wave, dt float64) {
	t.Helper()
	s := w.Ship()
	w.Projectiles().SpawnEnemy(s.X, s.Y+1)
	mustUpdate(t, w, dt, Input{})
	if !w.Struck() {
		t.Fatal("Ship should be struck")
	}
}

func TestNewWave(t *testing.T) {
	w := New(testParams(), NewSimpleRNG(1), nil)

	if w.Lives() != 3 || w.Score() != 0 {
		t.Errorf("Expected 3 lives and 0 score, got %d and %d", w.Lives(), w.Score())
	}
	if w.IsDead() || w.IsWin() {
		t.Error("New wave should be running")
	}
	if w.Ship() == nil {
		t.Error("New wave should have a ship")
	}
	if w.Grid().Living() != 15 {
		t.Errorf("Expected 15 aliens, got %d", w.Grid().Living())
	}
}

func TestNewWavePreconditions(t *testing.T) {
	expectPanic(t, "nil Rand", func() { New(testParams(), nil, nil) })

	p := testParams()
	p.FireRate = 0
	expectPanic(t, "zero fire rate", func() { New(p, NewSimpleRNG(1), nil) })
}

func TestShipDeathScenario(t *testing.T) {
	sounds := &countingSounds{}
	w := New(testParams(), NewSimpleRNG(1), sounds)

	strike(t, w, 0.1)
	if !w.Exploding() {
		t.Error("Explosion should start on the frame the ship is struck")
	}
	if sounds.hits != 1 {
		t.Errorf("Expected 1 hit cue, got %d", sounds.hits)
	}

	for range 10 {
		mustUpdate(t, w, 0.1, Input{})
	}
	if w.IsDead() || w.Ship() == nil {
		t.Fatal("Ship should still be exploding after 1s")
	}

	for range 10 {
		mustUpdate(t, w, 0.1, Input{})
	}
	if w.Ship() != nil {
		t.Error("Ship should be gone after the death duration")
	}
	if w.Lives() != 2 {
		t.Errorf("Expected 2 lives, got %d", w.Lives())
	}
	if !w.IsDead() || w.IsWin() {
		t.Error("Wave should be dead and not won")
	}
	if w.Projectiles().Len() != 0 {
		t.Errorf("Bolts should be cleared, got %d", w.Projectiles().Len())
	}
}

func TestResumeAfterPause(t *testing.T) {
	w := New(testParams(), NewSimpleRNG(1), nil)
	strike(t, w, 0.1)
	for range 30 {
		mustUpdate(t, w, 0.1, Input{})
	}
	if !w.IsDead() {
		t.Fatal("Wave should be dead after the explosion")
	}
	living := w.Grid().Living()

	w.ResumeAfterPause()

	if w.IsDead() || w.Struck() || w.Exploding() {
		t.Error("Resumed wave should be running with an intact ship")
	}
	s := w.Ship()
	if s == nil || s.X != 30 || s.Y != 1.5 {
		t.Fatalf("Ship should respawn at its start position, got %+v", s)
	}
	if w.Lives() != 2 || w.Grid().Living() != living {
		t.Error("Lives and formation should carry over")
	}

	mustUpdate(t, w, frameDT, Input{Left: true})
	if w.Ship().X != 29 {
		t.Errorf("Resumed ship should move, got x=%v", w.Ship().X)
	}
}

func TestFireSuppression(t *testing.T) {
	w := New(testParams(), NewSimpleRNG(1), nil)

	mustUpdate(t, w, frameDT, Input{Fire: true})
	if w.Projectiles().Len() != 1 || w.Projectiles().PlayerCount() != 1 {
		t.Fatalf("Expected exactly one player bolt, got %d bolts", w.Projectiles().Len())
	}

	mustUpdate(t, w, frameDT, Input{Fire: true})
	if w.Projectiles().Len() != 1 {
		t.Errorf("Second shot should be suppressed, got %d bolts", w.Projectiles().Len())
	}
}

func TestExplodingShipCannotActOrBeReplaced(t *testing.T) {
	w := New(testParams(), NewSimpleRNG(1), nil)
	strike(t, w, frameDT)
	x := w.Ship().X

	mustUpdate(t, w, frameDT, Input{Left: true, Fire: true})

	if w.Ship().X != x {
		t.Error("Exploding ship must not move")
	}
	if w.Projectiles().PlayerCount() != 0 {
		t.Error("Exploding ship must not fire")
	}

	w.Projectiles().SpawnEnemy(w.Ship().X, w.Ship().Y+1)
	mustUpdate(t, w, frameDT, Input{})
	if w.Lives() != 3 || !w.Exploding() {
		t.Error("Further hits during the explosion must not cost extra lives")
	}
}

func TestMovementInput(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want float64
	}{
		{"none", Input{}, 30},
		{"left", Input{Left: true}, 29},
		{"right", Input{Right: true}, 31},
		{"both", Input{Left: true, Right: true}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(testParams(), NewSimpleRNG(1), nil)
			mustUpdate(t, w, frameDT, tt.in)
			if w.Ship().X != tt.want {
				t.Errorf("Expected x=%v, got %v", tt.want, w.Ship().X)
			}
		})
	}
}

func TestAlienHitScoresRowZero(t *testing.T) {
	sounds := &countingSounds{}
	w := New(testParams(), NewSimpleRNG(1), sounds)

	a := w.Grid().At(0, 2)
	w.Projectiles().SpawnPlayer(a.X, a.Y-0.5)
	mustUpdate(t, w, frameDT, Input{})

	if w.Score() != 10*3 {
		t.Errorf("Expected score %d, got %d", 10*3, w.Score())
	}
	if w.Grid().At(0, 2) != nil {
		t.Error("Slot (0, 2) should be empty")
	}
	if w.Projectiles().PlayerCount() != 0 {
		t.Error("Bolt should be consumed by the hit")
	}
	if sounds.destroyed != 1 {
		t.Errorf("Expected 1 destroyed cue, got %d", sounds.destroyed)
	}
}

func TestMarchTiming(t *testing.T) {
	w := New(testParams(), NewSimpleRNG(1), nil)

	// The formation steps once the timer exceeds the interval.
	for range 4 {
		mustUpdate(t, w, 0.1, Input{})
	}
	if x := w.Grid().At(0, 0).X; x != 5 {
		t.Fatalf("Formation should not move before the interval passes, got x=%v", x)
	}
	mustUpdate(t, w, 0.1, Input{})
	if x := w.Grid().At(0, 0).X; x != 6 {
		t.Errorf("Formation should step once the interval passes, got x=%v", x)
	}
}

func TestEnemyFireFromFrontmost(t *testing.T) {
	tests := []struct {
		name   string
		pick   fixedRand
		remove [][2]int
		x, y   float64
	}{
		{"first column", 0, nil, 6, 23.5},
		{"third column", 2, nil, 16, 23.5},
		{"front row gone", 0, [][2]int{{0, 0}}, 6, 25.5},
		{"empty column skipped", 0, [][2]int{{0, 0}, {1, 0}, {2, 0}}, 11, 23.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			p.FireRate = 1
			p.MarchInterval = 0
			w := New(p, tt.pick, nil)
			for _, rc := range tt.remove {
				w.Grid().Remove(rc[0], rc[1])
			}

			mustUpdate(t, w, frameDT, Input{})

			bolts := w.Projectiles().All()
			if len(bolts) != 1 {
				t.Fatalf("Expected one enemy bolt, got %d", len(bolts))
			}
			b := bolts[0]
			if b.PlayerOwned() {
				t.Error("Bolt should be enemy-owned")
			}
			if b.X != tt.x || b.Y != tt.y {
				t.Errorf("Bolt should spawn at (%v, %v), got (%v, %v)", tt.x, tt.y, b.X, b.Y)
			}
		})
	}
}

func TestClearedWaveWins(t *testing.T) {
	w := New(testParams(), NewSimpleRNG(1), nil)
	g := w.Grid()
	for r := range g.Rows() {
		for c := range g.Columns() {
			g.Remove(r, c)
		}
	}

	mustUpdate(t, w, frameDT, Input{})

	if !w.IsWin() || !w.IsDead() {
		t.Error("Cleared wave should be won and dead in the same update")
	}
	if w.Lives() != 3 {
		t.Errorf("Winning should not cost lives, got %d", w.Lives())
	}
}

func TestLastKillWins(t *testing.T) {
	w := New(testParams(), NewSimpleRNG(1), nil)
	g := w.Grid()
	for r := range g.Rows() {
		for c := range g.Columns() {
			if r != 2 || c != 4 {
				g.Remove(r, c)
			}
		}
	}
	a := g.At(2, 4)
	w.Projectiles().SpawnPlayer(a.X, a.Y-0.5)

	mustUpdate(t, w, frameDT, Input{})

	if !w.IsWin() || !w.IsDead() {
		t.Error("Destroying the last alien should win the wave")
	}
	if w.Score() != 10 {
		t.Errorf("Row 2 of 3 is worth 10, got %d", w.Score())
	}
}

func TestDefenseLineBreach(t *testing.T) {
	p := testParams()
	p.DefenseLine = 24

	w := New(p, NewSimpleRNG(1), nil)
	mustUpdate(t, w, frameDT, Input{})

	if !w.IsDead() || w.IsWin() || w.Lives() != 0 {
		t.Errorf("Breach should lose the wave outright, got dead=%v win=%v lives=%d", w.IsDead(), w.IsWin(), w.Lives())
	}
}

func TestDefenseLineOverridesExplosion(t *testing.T) {
	w := New(testParams(), NewSimpleRNG(1), nil)
	strike(t, w, frameDT)

	w.Grid().Each(func(a *Alien) { a.Y -= 21 })
	mustUpdate(t, w, frameDT, Input{})

	if !w.IsDead() || w.IsWin() || w.Lives() != 0 {
		t.Errorf("Breach should override the running explosion, got dead=%v win=%v lives=%d", w.IsDead(), w.IsWin(), w.Lives())
	}
}

func TestInvalidTimestep(t *testing.T) {
	w := New(testParams(), NewSimpleRNG(1), nil)
	mustUpdate(t, w, frameDT, Input{Fire: true})
	snap := w.Snapshot()
	before := snap.Hash()

	for _, dt := range []float64{-frameDT, math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := w.Update(dt, Input{Left: true, Fire: true})
		if !errors.Is(err, ErrInvalidTimestep) {
			t.Errorf("Update(%v) should fail with ErrInvalidTimestep, got %v", dt, err)
		}
	}

	snap = w.Snapshot()
	if snap.Hash() != before {
		t.Error("Rejected updates must not change state")
	}

	if err := w.Update(0, Input{}); err != nil {
		t.Errorf("Zero dt should be accepted, got %v", err)
	}
}

func TestDeadWaveIgnoresUpdates(t *testing.T) {
	p := testParams()
	p.DefenseLine = 24
	w := New(p, NewSimpleRNG(1), nil)
	mustUpdate(t, w, frameDT, Input{})

	snap := w.Snapshot()
	before := snap.Hash()
	mustUpdate(t, w, frameDT, Input{Right: true, Fire: true})
	snap = w.Snapshot()
	if snap.Hash() != before {
		t.Error("Dead wave should not change")
	}
}

// scriptedInput gives a repeatable mix of movement and fire.
func scriptedInput(frame int) Input {
	return Input{
		Left:  (frame/45)%2 == 0,
		Right: (frame/45)%2 == 1,
		Fire:  frame%5 == 0,
	}
}

// play runs a wave for frames updates, resuming after lost lives.
func play(t *testing.T, w *Wave, frames int, check func(w *Wave)) {
	t.Helper()
	for i := range frames {
		if w.IsDead() {
			if w.IsWin() || w.Lives() == 0 {
				return
			}
			w.ResumeAfterPause()
		}
		mustUpdate(t, w, frameDT, scriptedInput(i))
		if check != nil {
			check(w)
		}
	}
}

func TestDeterminism(t *testing.T) {
	p := testParams()
	p.FireRate = 3

	w1 := New(p, NewSimpleRNG(42), nil)
	w2 := New(p, NewSimpleRNG(42), nil)
	play(t, w1, 3000, nil)
	play(t, w2, 3000, nil)

	snap1 := w1.Snapshot()
	snap2 := w2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
}

func TestFrameProperties(t *testing.T) {
	p := testParams()
	p.FireRate = 2
	w := New(p, NewSimpleRNG(7), nil)

	living := w.Grid().Living()
	score := w.Score()
	lives := w.Lives()

	play(t, w, 5000, func(w *Wave) {
		if n := w.Grid().Living(); n > living {
			t.Fatalf("Living aliens grew from %d to %d", living, n)
		}
		if w.Projectiles().PlayerCount() > 1 {
			t.Fatal("More than one player bolt in flight")
		}
		if w.Score() < score {
			t.Fatalf("Score decreased from %d to %d", score, w.Score())
		}
		if w.Lives() > lives || w.Lives() < 0 {
			t.Fatalf("Lives went from %d to %d", lives, w.Lives())
		}
		if w.IsWin() && !w.Grid().IsCleared() {
			t.Fatal("Won wave must be cleared")
		}
		living, score, lives = w.Grid().Living(), w.Score(), w.Lives()
	})
}

// recordingCanvas counts draw calls.
type recordingCanvas struct {
	aliens int
	rows   map[int]int
	ship   int
	shipOK bool
	bolts  int
	line   float64
	score  int
	lives  int
}

func (c *recordingCanvas) Alien(_ core.Box, row int) {
	c.aliens++
	c.rows[row]++
}

func (c *recordingCanvas) Ship(_ core.Box, frame int) {
	c.ship = frame
	c.shipOK = true
}

func (c *recordingCanvas) Bolt(_ core.Box, _ bool) { c.bolts++ }
func (c *recordingCanvas) DefenseLine(y float64)   { c.line = y }

func (c *recordingCanvas) Status(score, lives int) {
	c.score = score
	c.lives = lives
}

func TestDraw(t *testing.T) {
	w := New(testParams(), NewSimpleRNG(1), nil)
	mustUpdate(t, w, frameDT, Input{Fire: true})

	c := &recordingCanvas{rows: map[int]int{}}
	w.Draw(c)

	if c.aliens != 15 || c.rows[0] != 5 || c.rows[2] != 5 {
		t.Errorf("Expected 5 aliens per row, got %v", c.rows)
	}
	if !c.shipOK || c.ship != ShipIntact {
		t.Errorf("Expected intact ship, got frame %d", c.ship)
	}
	if c.bolts != 1 {
		t.Errorf("Expected 1 bolt, got %d", c.bolts)
	}
	if c.line != 3 || c.lives != 3 || c.score != 0 {
		t.Errorf("Unexpected HUD: line=%v score=%d lives=%d", c.line, c.score, c.lives)
	}

	strike(t, w, frameDT)
	c = &recordingCanvas{rows: map[int]int{}}
	w.Draw(c)
	if c.ship != 0 {
		t.Errorf("Struck ship should draw explosion frame 0, got %d", c.ship)
	}
}
