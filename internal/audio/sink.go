// Package audio plays the game's sound effects.
package audio

// Sink receives fire-and-forget sound cues from the game. It has the same
// method set as wave.Sounds, so a SoundManager plugs straight into the game.
// Calls never block and never fail; a sink that cannot play stays quiet.
type Sink interface {
	AlienDestroyed()
	ShipHit()
}
