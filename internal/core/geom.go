// Package core holds the types shared by the game engine and its frontends:
// world geometry, the character screen buffer, input frames and runtime
// settings. It imports no UI or storage packages.
package core

// Point is a position in continuous world coordinates.
type Point struct {
	X, Y float64
}

// Box is a center-anchored axis-aligned box in world coordinates.
// X grows rightward and Y grows upward.
type Box struct {
	X, Y float64 // center
	W, H float64
}

// NewBox creates a box centered at (x, y).
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

func (b Box) Left() float64   { return b.X - b.W/2 }
func (b Box) Right() float64  { return b.X + b.W/2 }
func (b Box) Top() float64    { return b.Y + b.H/2 }
func (b Box) Bottom() float64 { return b.Y - b.H/2 }

// Contains reports whether p lies inside the box, edges included.
func (b Box) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() && p.Y >= b.Bottom() && p.Y <= b.Top()
}

// Corners returns top-left, top-right, bottom-left, bottom-right.
func (b Box) Corners() [4]Point {
	l, r, t, btm := b.Left(), b.Right(), b.Top(), b.Bottom()
	return [4]Point{{l, t}, {r, t}, {l, btm}, {r, btm}}
}

// ContainsAnyCorner reports whether any corner of other lies inside b.
func (b Box) ContainsAnyCorner(other Box) bool {
	for _, c := range other.Corners() {
		if b.Contains(c) {
			return true
		}
	}
	return false
}

// ClampF limits v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
