package wave

import "github.com/vovakirdan/tui-invaders/internal/core"

// ShipIntact is the frame passed to Canvas.Ship when no explosion is running.
const ShipIntact = -1

// Canvas is the draw sink for a wave. Boxes are in world coordinates;
// implementations map them onto their own surface.
type Canvas interface {
	// Alien draws one living alien. row selects its look.
	Alien(b core.Box, row int)
	// Ship draws the player ship. frame is ShipIntact or an explosion frame.
	Ship(b core.Box, frame int)
	// Bolt draws a projectile.
	Bolt(b core.Box, playerOwned bool)
	// DefenseLine draws the horizontal threshold at height y.
	DefenseLine(y float64)
	// Status draws the score and remaining lives.
	Status(score, lives int)
}

// Sounds receives fire-and-forget audio cues.
// Implementations must not block and must swallow their own failures.
type Sounds interface {
	AlienDestroyed()
	ShipHit()
}

// silent is used when no Sounds is supplied.
type silent struct{}

func (silent) AlienDestroyed() {}
func (silent) ShipHit()        {}
