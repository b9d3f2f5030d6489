package wave

import (
	"fmt"
	"math"
)

// Explosion drives the ship's death animation. It is either idle or
// exploding; a completed run returns it to idle.
type Explosion struct {
	duration float64
	frames   int
	elapsed  float64
	active   bool
}

// NewExplosion creates an idle animation lasting duration seconds over
// frames frames.
func NewExplosion(duration float64, frames int) *Explosion {
	if duration <= 0 || frames < 1 {
		panic(fmt.Sprintf("wave: invalid explosion %.3fs/%d frames", duration, frames))
	}
	return &Explosion{duration: duration, frames: frames}
}

// Active reports whether the animation is running.
func (e *Explosion) Active() bool {
	return e.active
}

// Elapsed returns seconds since Start.
func (e *Explosion) Elapsed() float64 {
	return e.elapsed
}

// Start begins the animation at frame 0.
func (e *Explosion) Start() {
	e.active = true
	e.elapsed = 0
}

// Frame returns the current frame index, or ShipIntact when idle.
func (e *Explosion) Frame() int {
	if !e.active {
		return ShipIntact
	}
	f := int(math.Floor(e.elapsed / e.duration * float64(e.frames)))
	return min(f, e.frames-1)
}

// Step advances the animation by dt seconds and reports whether it reached
// its last frame. On completion the animation goes back to idle.
// Stepping an idle animation does nothing.
func (e *Explosion) Step(dt float64) bool {
	if !e.active {
		return false
	}
	e.elapsed += dt
	if e.Frame() >= e.frames-1 {
		e.active = false
		e.elapsed = 0
		return true
	}
	return false
}
