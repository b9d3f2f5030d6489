package wave

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTimestep is returned by Update for a negative or non-finite dt.
var ErrInvalidTimestep = errors.New("wave: invalid timestep")

// Input is the player's intent for one frame.
type Input struct {
	Left  bool
	Right bool
	Fire  bool
}

// Wave is one round of play: a formation, a ship and the bolts between
// them. A wave ends (IsDead) when the ship's explosion finishes, when the
// formation is cleared, or when an alien reaches the defense line.
type Wave struct {
	p        Params
	rng      Rand
	resolver Resolver

	grid      *Grid
	ship      *Ship // nil while destroyed
	bolts     *Projectiles
	explosion *Explosion

	direction int
	marchTime float64
	steps     int // March steps since the last enemy shot
	fireAt    int // Steps count that triggers the next enemy shot
	struck    bool

	score int
	lives int
	dead  bool
	win   bool
	frame uint64
}

// New creates a wave from p. rng drives enemy fire; sounds may be nil.
// It panics on parameters no wave can be built from.
func New(p Params, rng Rand, sounds Sounds) *Wave {
	if rng == nil {
		panic("wave: nil Rand")
	}
	if p.FireRate < 1 {
		panic(fmt.Sprintf("wave: fire rate must be positive, got %d", p.FireRate))
	}
	if sounds == nil {
		sounds = silent{}
	}

	w := &Wave{
		p:   p,
		rng: rng,
		resolver: Resolver{
			Legacy:     p.LegacyCorners,
			BasePoints: p.AlienPoints,
			Sounds:     sounds,
		},
		grid:      NewGrid(p),
		ship:      newShip(p),
		bolts:     NewProjectiles(p),
		explosion: NewExplosion(p.DeathDuration, p.DeathFrames),
		direction: 1,
		lives:     p.Lives,
	}
	w.fireAt = 1 + rng.Intn(p.FireRate)
	return w
}

// Update advances the wave by dt seconds. A negative, NaN or infinite dt
// returns ErrInvalidTimestep and leaves the wave untouched. Updating a
// dead wave is a no-op.
//
// Each frame runs in a fixed order: ship movement, formation march, bolt
// flight and firing, alien hits, ship hits, death animation, and finally
// the terminal checks. A defense-line breach overrides every other outcome
// of the frame.
func (w *Wave) Update(dt float64, in Input) error {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidTimestep, dt)
	}
	if w.dead {
		return nil
	}
	w.frame++

	idle := !w.explosion.Active()

	// Ship movement
	if w.ship != nil && idle {
		switch {
		case in.Left && !in.Right:
			w.ship.Move(Left, w.p.ShipSpeed, w.p.Width)
		case in.Right && !in.Left:
			w.ship.Move(Right, w.p.ShipSpeed, w.p.Width)
		}
	}

	// March
	w.marchTime += dt
	if w.marchTime > w.p.MarchInterval {
		w.direction = w.grid.MarchStep(w.direction)
		w.marchTime = 0
		w.steps++
	}

	// Bolts
	w.bolts.Advance()
	if in.Fire && idle && w.ship != nil {
		w.bolts.SpawnPlayer(w.ship.Muzzle())
	}
	w.enemyFire()

	// Hits
	w.score += w.resolver.ResolveAliens(w.grid, w.bolts)
	if w.ship != nil && w.resolver.ResolveShip(w.ship, w.bolts) {
		w.struck = true
	}

	// Death animation
	if w.explosion.Active() {
		if w.explosion.Step(dt) {
			w.ship = nil
			w.bolts.Clear()
			w.lives--
			w.dead = true
			w.struck = false
		}
	} else if w.struck && w.ship != nil {
		w.explosion.Start()
	}

	// Terminal conditions
	if w.grid.CrossedDefenseLine(w.p.DefenseLine) {
		w.win = false
		w.dead = true
		w.lives = 0
	} else if w.grid.IsCleared() {
		w.win = true
		w.dead = true
	}
	return nil
}

// enemyFire shoots from the frontmost alien of a random living column
// once enough march steps have passed, then rolls the next threshold.
func (w *Wave) enemyFire() {
	if w.steps != w.fireAt {
		return
	}
	cols := w.grid.LivingColumns()
	if len(cols) == 0 {
		return
	}
	a := w.grid.FrontmostInColumn(cols[w.rng.Intn(len(cols))])
	w.bolts.SpawnEnemy(a.X, a.Y-w.p.AlienHeight/2)
	w.steps = 0
	w.fireAt = 1 + w.rng.Intn(w.p.FireRate)
}

// ResumeAfterPause readies the wave for the next life: a fresh ship at the
// spawn point and an idle animation. Score, lives, formation and march
// state carry over.
func (w *Wave) ResumeAfterPause() {
	w.dead = false
	w.struck = false
	w.ship = newShip(w.p)
	w.explosion = NewExplosion(w.p.DeathDuration, w.p.DeathFrames)
}

// Draw renders the current state onto c.
func (w *Wave) Draw(c Canvas) {
	w.grid.Each(func(a *Alien) {
		c.Alien(w.grid.Box(a), a.Row)
	})
	if w.ship != nil {
		c.Ship(w.ship.Box(), w.explosion.Frame())
	}
	c.DefenseLine(w.p.DefenseLine)
	for _, b := range w.bolts.All() {
		c.Bolt(b.Box(), b.PlayerOwned())
	}
	c.Status(w.score, w.lives)
}

// IsDead reports whether the wave has stopped: the ship's explosion has
// finished, or the wave was won or lost outright.
func (w *Wave) IsDead() bool { return w.dead }

// IsWin reports whether the formation was cleared.
func (w *Wave) IsWin() bool { return w.win }

// Lives returns the remaining lives.
func (w *Wave) Lives() int { return w.lives }

// Score returns the points earned so far.
func (w *Wave) Score() int { return w.score }

// Struck reports whether an enemy bolt has hit the ship since it spawned.
func (w *Wave) Struck() bool { return w.struck }

// Exploding reports whether the ship's death animation is running.
func (w *Wave) Exploding() bool { return w.explosion.Active() }

// Grid returns the formation.
func (w *Wave) Grid() *Grid { return w.grid }

// Ship returns the player ship, or nil while it is destroyed.
func (w *Wave) Ship() *Ship { return w.ship }

// Projectiles returns the bolts in flight.
func (w *Wave) Projectiles() *Projectiles { return w.bolts }

// Params returns the wave's construction parameters.
func (w *Wave) Params() Params { return w.p }
