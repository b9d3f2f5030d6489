package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// Glyph size of the ebitenutil debug font.
const (
	glyphW = 6
	glyphH = 16
)

var (
	alienColors     = []color.RGBA{colornames.Limegreen, colornames.Deepskyblue, colornames.Orchid}
	shipColor       = colornames.Lightgray
	playerBoltColor = colornames.White
	enemyBoltColor  = colornames.Orangered
	lineColor       = colornames.Darkgreen
	hudColor        = colornames.Midnightblue
	bannerColor     = color.RGBA{R: 0, G: 0, B: 0, A: 200}
	explosionColors = []color.RGBA{
		colornames.White, colornames.Yellow, colornames.Gold, colornames.Orange,
		colornames.Darkorange, colornames.Orangered, colornames.Red, colornames.Darkred,
	}
)

// surface is the pixel target a Canvas paints on.
type surface interface {
	FillRect(x, y, w, h float32, c color.Color)
	Text(s string, x, y int)
}

// imageSurface paints on an ebiten image.
type imageSurface struct {
	img *ebiten.Image
}

func (s imageSurface) FillRect(x, y, w, h float32, c color.Color) {
	vector.FillRect(s.img, x, y, w, h, c, false)
}

func (s imageSurface) Text(str string, x, y int) {
	ebitenutil.DebugPrintAt(s.img, str, x, y)
}

// Canvas draws a wave in pixels. The top cell row is the HUD and world y
// grows upward from the bottom edge.
type Canvas struct {
	dst    surface
	cell   float32
	worldH float64
	width  int
	title  string
}

var _ invaders.Canvas = (*Canvas)(nil)

// NewCanvas creates a canvas for a world worldH cells tall, cols cells wide.
func NewCanvas(dst surface, cell int, cols int, worldH float64, title string) *Canvas {
	return &Canvas{
		dst:    dst,
		cell:   float32(cell),
		worldH: worldH,
		width:  cols * cell,
		title:  title,
	}
}

// py maps a world y to a pixel row.
func (c *Canvas) py(y float64) float32 {
	return float32(c.worldH-y)*c.cell + c.cell
}

// rect maps a world box to a pixel rectangle.
func (c *Canvas) rect(b core.Box) (x, y, w, h float32) {
	return float32(b.Left()) * c.cell, c.py(b.Top()), float32(b.W) * c.cell, float32(b.H) * c.cell
}

// Alien draws an alien body with two eyes.
func (c *Canvas) Alien(b core.Box, row int) {
	x, y, w, h := c.rect(b)
	c.dst.FillRect(x+1, y+1, w-2, h-2, alienColors[invaders.Variant(row)%len(alienColors)])

	eye := max(c.cell/4, 1)
	c.dst.FillRect(x+w/4, y+h/3, eye, eye, colornames.Black)
	c.dst.FillRect(x+3*w/4-eye, y+h/3, eye, eye, colornames.Black)
}

// Ship draws the ship, or its explosion when frame is not ShipIntact.
func (c *Canvas) Ship(b core.Box, frame int) {
	x, y, w, h := c.rect(b)
	if frame < 0 {
		c.dst.FillRect(x, y+h/2, w, h/2, shipColor)
		c.dst.FillRect(x+w/2-c.cell/4, y, c.cell/2, h/2, shipColor)
		return
	}

	// Debris drifts outward as the frames advance.
	clr := explosionColors[min(frame, len(explosionColors)-1)]
	spread := float32(frame) * c.cell / 4
	size := max(c.cell/2, 2)
	cx, cy := x+w/2-size/2, y+h/2-size/2
	for _, d := range [][2]float32{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}, {0, 0}} {
		c.dst.FillRect(cx+d[0]*spread, cy+d[1]*spread, size, size, clr)
	}
}

// Bolt draws a projectile.
func (c *Canvas) Bolt(b core.Box, playerOwned bool) {
	x, y, w, h := c.rect(b)
	clr := enemyBoltColor
	if playerOwned {
		clr = playerBoltColor
	}
	c.dst.FillRect(x+w/3, y, max(w/3, 1), h, clr)
}

// DefenseLine draws the threshold one pixel thick.
func (c *Canvas) DefenseLine(y float64) {
	c.dst.FillRect(0, c.py(y), float32(c.width), 1, lineColor)
}

// Status draws the HUD row.
func (c *Canvas) Status(score, lives int) {
	c.dst.FillRect(0, 0, float32(c.width), c.cell, hudColor)
	ty := int(c.cell-glyphH) / 2

	c.dst.Text(fmt.Sprintf("Score: %d", score), glyphW, ty)
	c.dst.Text(c.title, (c.width-len(c.title)*glyphW)/2, ty)

	right := fmt.Sprintf("Lives: %d", lives)
	c.dst.Text(right, c.width-(len(right)+1)*glyphW, ty)
}

// Banner draws a dimmed panel in the middle of the playfield.
func (c *Canvas) Banner(title, subtitle string) {
	textW := max(len([]rune(title)), len([]rune(subtitle))) * glyphW
	panelW := float32(textW + 4*glyphW)
	panelH := float32(3 * glyphH)
	px := (float32(c.width) - panelW) / 2
	py := c.py(c.worldH/2) - panelH/2

	c.dst.FillRect(px, py, panelW, panelH, bannerColor)
	c.dst.Text(title, (c.width-len([]rune(title))*glyphW)/2, int(py)+glyphH/2)
	c.dst.Text(subtitle, (c.width-len([]rune(subtitle))*glyphW)/2, int(py)+glyphH*3/2)
}
