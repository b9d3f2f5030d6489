package wave

import "github.com/vovakirdan/tui-invaders/internal/core"

// Direction is a horizontal movement direction.
type Direction int

// Horizontal directions.
const (
	Left  Direction = -1
	Right Direction = 1
)

// Ship is the player entity.
type Ship struct {
	X, Y float64
	W, H float64
}

// newShip places a ship at its spawn point.
func newShip(p Params) *Ship {
	x, y := p.shipStart()
	return &Ship{X: x, Y: y, W: p.ShipWidth, H: p.ShipHeight}
}

// Box returns the ship's bounds.
func (s *Ship) Box() core.Box {
	return core.NewBox(s.X, s.Y, s.W, s.H)
}

// Move shifts the ship by step cells in dir, clamped so the whole hull
// stays within [0, width].
func (s *Ship) Move(dir Direction, step, width float64) {
	s.X = core.ClampF(s.X+float64(dir)*step, s.W/2, width-s.W/2)
}

// Muzzle returns where a player bolt spawns: the middle of the ship's top edge.
func (s *Ship) Muzzle() (x, y float64) {
	return s.X, s.Y + s.H/2
}
