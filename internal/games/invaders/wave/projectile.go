package wave

import (
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Projectile is a bolt in flight. Positive VY means the player fired it.
type Projectile struct {
	X, Y float64
	VY   float64
	W, H float64
}

// PlayerOwned reports whether the ship fired this bolt.
func (p *Projectile) PlayerOwned() bool {
	return p.VY > 0
}

// Box returns the bolt's bounds.
func (p *Projectile) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// out reports whether the bolt has left a world of the given height.
func (p *Projectile) out(height float64) bool {
	return p.Y-p.H/2 >= height || p.Y+p.H/2 <= 0
}

// Projectiles tracks every bolt in flight. At most one player-owned bolt
// exists at a time; enemy bolts are unbounded.
type Projectiles struct {
	list   []*Projectile
	w, h   float64
	speed  float64
	height float64
}

// NewProjectiles creates an empty set using the bolt sizes in p.
func NewProjectiles(p Params) *Projectiles {
	return &Projectiles{
		w:      p.BoltWidth,
		h:      p.BoltHeight,
		speed:  p.BoltSpeed,
		height: p.Height,
	}
}

// All returns the bolts in spawn order. The slice must not be modified.
func (ps *Projectiles) All() []*Projectile {
	return ps.list
}

// Len returns the number of bolts in flight.
func (ps *Projectiles) Len() int {
	return len(ps.list)
}

// PlayerCount returns the number of player-owned bolts in flight.
func (ps *Projectiles) PlayerCount() int {
	n := 0
	for _, p := range ps.list {
		if p.PlayerOwned() {
			n++
		}
	}
	return n
}

// SpawnPlayer fires an upward bolt from (x, y) unless one is already in
// flight. It reports whether a bolt was spawned.
func (ps *Projectiles) SpawnPlayer(x, y float64) bool {
	if ps.PlayerCount() > 0 {
		return false
	}
	ps.list = append(ps.list, &Projectile{X: x, Y: y, VY: ps.speed, W: ps.w, H: ps.h})
	return true
}

// SpawnEnemy fires a downward bolt from (x, y).
func (ps *Projectiles) SpawnEnemy(x, y float64) {
	ps.list = append(ps.list, &Projectile{X: x, Y: y, VY: -ps.speed, W: ps.w, H: ps.h})
}

// Advance moves every bolt by its velocity, then drops those that left
// the world. A bolt spawned this frame is advanced on the next call.
func (ps *Projectiles) Advance() {
	for _, p := range ps.list {
		p.Y += p.VY
	}
	ps.list = slices.DeleteFunc(ps.list, func(p *Projectile) bool {
		return p.out(ps.height)
	})
}

// Remove drops a bolt. Unknown bolts are ignored.
func (ps *Projectiles) Remove(p *Projectile) {
	if i := slices.Index(ps.list, p); i >= 0 {
		ps.list = slices.Delete(ps.list, i, i+1)
	}
}

// Clear drops every bolt.
func (ps *Projectiles) Clear() {
	ps.list = ps.list[:0]
}
