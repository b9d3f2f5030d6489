// Package wave implements a single wave of Invaders: the alien formation,
// the player ship, bolts in flight, hit resolution, scoring and the ship's
// death animation. It is pure simulation with no platform dependencies;
// rendering goes through Canvas and audio through Sounds.
//
// World coordinates are in cells with X growing rightward and Y growing
// upward from the bottom of the playfield. Every entity is anchored at its
// center.
package wave

// Params holds every construction parameter of a wave.
// All values are fixed for the wave's lifetime.
type Params struct {
	// Formation
	Rows        int
	Columns     int
	AlienWidth  float64
	AlienHeight float64
	HSep        float64 // Horizontal gap between columns
	VSep        float64 // Vertical gap between rows
	Ceiling     float64 // Gap between the farthest row and the top of the world

	// World
	Width       float64
	Height      float64
	DefenseLine float64

	// March
	HWalk         float64
	VWalk         float64
	MarchInterval float64 // Seconds between formation steps
	MarchMargin   float64 // Closest an alien may get to a side wall

	// Ship
	ShipWidth  float64
	ShipHeight float64
	ShipBottom float64
	ShipSpeed  float64 // Cells per movement input

	// Bolts
	BoltWidth  float64
	BoltHeight float64
	BoltSpeed  float64 // Cells per frame
	FireRate   int     // Upper bound of march steps between enemy shots

	// Rules
	Lives         int
	AlienPoints   int
	DeathDuration float64
	DeathFrames   int
	LegacyCorners bool
}

// shipStart returns the ship's spawn center.
func (p Params) shipStart() (x, y float64) {
	return p.Width / 2, p.ShipBottom + p.ShipHeight/2
}
