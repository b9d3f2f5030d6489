package core

import "strings"

// Cell is one screen position: a rune and its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a character buffer the games draw into. Frontends turn it into
// terminal output; (0, 0) is the top-left cell. Writes outside the buffer
// are dropped and reads outside it return a blank cell.
type Screen struct {
	w, h  int
	cells []Cell // row-major, len w*h
}

// NewScreen returns a blank width x height buffer.
func NewScreen(width, height int) *Screen {
	s := &Screen{w: width, h: height, cells: make([]Cell, width*height)}
	s.Clear()
	return s
}

func (s *Screen) Width() int  { return s.w }
func (s *Screen) Height() int { return s.h }

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return 0, false
	}
	return y*s.w + x, true
}

// Resize changes the dimensions and keeps the overlapping top-left region.
func (s *Screen) Resize(width, height int) {
	if width == s.w && height == s.h {
		return
	}
	old := *s
	*s = *NewScreen(width, height)
	for y := range min(old.h, height) {
		copy(s.cells[y*width:y*width+min(old.w, width)], old.cells[y*old.w:])
	}
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// Set writes r in the default color.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y).
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// DrawText writes text left to right from (x, y), clipping at the edges.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for i, r := range []rune(text) {
		s.SetColored(x+i, y, r, c)
	}
}

// DrawTextCentered writes text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.w-len([]rune(text)))/2, y, text)
}

// DrawHLineColored repeats r for n cells starting at (x, y).
func (s *Screen) DrawHLineColored(x, y, n int, r rune, c Color) {
	for i := range n {
		s.SetColored(x+i, y, r, c)
	}
}

// String returns the runes row by row, separated by newlines. Colors are
// dropped.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(len(s.cells) + s.h)
	for y := range s.h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range s.cells[y*s.w : (y+1)*s.w] {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}

// Row returns row y as a string, or spaces when y is out of range.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	runes := make([]rune, s.w)
	for x, c := range s.cells[y*s.w : (y+1)*s.w] {
		runes[x] = c.Rune
	}
	return string(runes)
}
