package wave

import "github.com/vovakirdan/tui-invaders/internal/core"

// Hit tests use corner containment: a bolt hits a target when any of the
// bolt's corners lies inside the target's box.

// cornerHit tests bolt against target. With legacy set, the test corners
// are built from the target's size around the bolt's center and the
// bottom-right corner duplicates bottom-left, reproducing the classic
// behavior of the first release.
func cornerHit(target core.Box, bolt core.Box, legacy bool) bool {
	if !legacy {
		return target.ContainsAnyCorner(bolt)
	}
	area := core.NewBox(bolt.X, bolt.Y, target.W, target.H)
	c := area.Corners()
	c[3] = c[2]
	for _, p := range c {
		if target.Contains(p) {
			return true
		}
	}
	return false
}

// ScoreFor returns the points for destroying an alien in row of a
// formation with rows rows. Row 0 pays the full rows multiplier; other
// rows pay less the farther they are from the defense line.
func ScoreFor(row, rows, basePoints int) int {
	if row == 0 {
		return basePoints * rows
	}
	return basePoints * (rows - row)
}

// Resolver applies hit rules for one wave.
type Resolver struct {
	Legacy     bool
	BasePoints int
	Sounds     Sounds
}

// AlienHit reports whether bolt hits alien a of grid g.
// Enemy bolts never hit aliens.
func (r Resolver) AlienHit(g *Grid, a *Alien, bolt *Projectile) bool {
	return bolt.PlayerOwned() && cornerHit(g.Box(a), bolt.Box(), r.Legacy)
}

// ShipHit reports whether bolt hits the ship. Player bolts never hit it.
func (r Resolver) ShipHit(s *Ship, bolt *Projectile) bool {
	return !bolt.PlayerOwned() && cornerHit(s.Box(), bolt.Box(), r.Legacy)
}

// ResolveAliens removes every alien hit by a player bolt along with the
// bolt that hit it, and returns the points earned.
func (r Resolver) ResolveAliens(g *Grid, ps *Projectiles) int {
	gained := 0
	g.Each(func(a *Alien) {
		for _, bolt := range ps.All() {
			if !r.AlienHit(g, a, bolt) {
				continue
			}
			g.Remove(a.Row, a.Col)
			ps.Remove(bolt)
			gained += ScoreFor(a.Row, g.Rows(), r.BasePoints)
			r.Sounds.AlienDestroyed()
			return
		}
	})
	return gained
}

// ResolveShip removes every enemy bolt touching the ship and reports
// whether there was at least one.
func (r Resolver) ResolveShip(s *Ship, ps *Projectiles) bool {
	struck := false
	for _, bolt := range append([]*Projectile(nil), ps.All()...) {
		if r.ShipHit(s, bolt) {
			ps.Remove(bolt)
			r.Sounds.ShipHit()
			struck = true
		}
	}
	return struck
}
