package wave

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Alien is a single member of the formation.
// Row 0 is the row nearest the defense line.
type Alien struct {
	X, Y float64
	Row  int
	Col  int
}

// Grid is the fixed rows×columns formation. Destroyed aliens leave an
// empty slot behind; slots are never compacted, so (row, col) keeps its
// meaning for scoring and for picking shooters.
type Grid struct {
	rows, cols int
	slots      []*Alien // row-major, nil = empty
	living     int

	alienW, alienH float64
	width          float64
	margin         float64
	hWalk, vWalk   float64
}

// NewGrid builds a fully populated formation. Column c sits at
// x = (c+1)·(hSep+alienWidth); row r sits (rows-r-1) row pitches below
// the ceiling, so row 0 is the lowest.
func NewGrid(p Params) *Grid {
	if p.Rows < 1 || p.Columns < 1 {
		panic(fmt.Sprintf("wave: grid needs at least one row and column, got %dx%d", p.Rows, p.Columns))
	}

	margin := p.MarchMargin
	if margin == 0 {
		margin = p.HSep
	}

	g := &Grid{
		rows:   p.Rows,
		cols:   p.Columns,
		slots:  make([]*Alien, p.Rows*p.Columns),
		alienW: p.AlienWidth,
		alienH: p.AlienHeight,
		width:  p.Width,
		margin: margin,
		hWalk:  p.HWalk,
		vWalk:  p.VWalk,
	}

	top := p.Height - p.Ceiling
	for r := range p.Rows {
		for c := range p.Columns {
			g.slots[r*p.Columns+c] = &Alien{
				X:   float64(c+1) * (p.HSep + p.AlienWidth),
				Y:   top - float64(p.Rows-r-1)*(p.VSep+p.AlienHeight),
				Row: r,
				Col: c,
			}
		}
	}
	g.living = len(g.slots)
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.cols }

// Living returns the number of living aliens.
func (g *Grid) Living() int { return g.living }

// At returns the alien in a slot, or nil if the slot is empty.
func (g *Grid) At(row, col int) *Alien {
	g.checkSlot(row, col)
	return g.slots[row*g.cols+col]
}

// Box returns the alien's bounds.
func (g *Grid) Box(a *Alien) core.Box {
	return core.NewBox(a.X, a.Y, g.alienW, g.alienH)
}

// Each calls fn for every living alien in row-major order.
func (g *Grid) Each(fn func(a *Alien)) {
	for _, a := range g.slots {
		if a != nil {
			fn(a)
		}
	}
}

// ColumnHasLiving reports whether any alien in column c is alive.
func (g *Grid) ColumnHasLiving(c int) bool {
	g.checkSlot(0, c)
	for r := range g.rows {
		if g.slots[r*g.cols+c] != nil {
			return true
		}
	}
	return false
}

// LivingColumns returns the indices of columns that still hold an alien.
func (g *Grid) LivingColumns() []int {
	cols := make([]int, 0, g.cols)
	for c := range g.cols {
		if g.ColumnHasLiving(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// FrontmostInColumn returns the living alien with the smallest row index
// in column c. It panics if the column is empty; check ColumnHasLiving first.
func (g *Grid) FrontmostInColumn(c int) *Alien {
	g.checkSlot(0, c)
	for r := range g.rows {
		if a := g.slots[r*g.cols+c]; a != nil {
			return a
		}
	}
	panic(fmt.Sprintf("wave: FrontmostInColumn(%d) on an empty column", c))
}

// Remove empties a slot. It reports whether an alien was there.
func (g *Grid) Remove(row, col int) bool {
	g.checkSlot(row, col)
	i := row*g.cols + col
	if g.slots[i] == nil {
		return false
	}
	g.slots[i] = nil
	g.living--
	return true
}

// IsCleared reports whether no living alien remains.
func (g *Grid) IsCleared() bool {
	return g.living == 0
}

// CrossedDefenseLine reports whether any living alien's lower edge is at
// or below y.
func (g *Grid) CrossedDefenseLine(y float64) bool {
	crossed := false
	g.Each(func(a *Alien) {
		if a.Y-g.alienH/2 <= y {
			crossed = true
		}
	})
	return crossed
}

// MarchStep moves the formation one step in direction dir (+1 right,
// -1 left) and returns the direction for the next step. If the outermost
// living alien in that direction would come within the margin of the
// wall, the formation instead drops by one row step and reverses.
// An empty grid does not move.
func (g *Grid) MarchStep(dir int) int {
	if g.living == 0 {
		return dir
	}

	left, right := g.extent()
	var room float64
	if dir > 0 {
		room = g.width - right
	} else {
		room = left
	}

	if room > g.margin {
		dx := float64(dir) * g.hWalk
		g.Each(func(a *Alien) { a.X += dx })
		return dir
	}

	g.Each(func(a *Alien) { a.Y -= g.vWalk })
	return -dir
}

// extent returns the left edge of the leftmost and the right edge of the
// rightmost living alien.
func (g *Grid) extent() (left, right float64) {
	first := true
	g.Each(func(a *Alien) {
		l, r := a.X-g.alienW/2, a.X+g.alienW/2
		if first || l < left {
			left = l
		}
		if first || r > right {
			right = r
		}
		first = false
	})
	return left, right
}

// checkSlot panics on out-of-range coordinates.
func (g *Grid) checkSlot(row, col int) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("wave: slot (%d, %d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
}
