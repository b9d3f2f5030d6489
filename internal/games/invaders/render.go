package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders/wave"
)

// Visual characters for rendering
const (
	BoltPlayerChar  = '|'
	BoltEnemyChar   = '!'
	DefenseLineChar = '─'
)

// AlienSprites are the formation looks, picked by Variant.
var AlienSprites = []string{"/o\\", "<=>", "{@}"}

// AlienColors pairs with AlienSprites.
var AlienColors = []core.Color{core.ColorBrightGreen, core.ColorBrightCyan, core.ColorBrightMagenta}

// ShipSprite is the intact ship.
const ShipSprite = "_/^\\_"

// ExplosionGlyphs are the ship's explosion frames in order.
var ExplosionGlyphs = []rune{'✸', '✷', '*', '#', '%', '+', ':', '.'}

// Variant returns the look of an alien in row. Rows pair up, cycling
// through the sprites.
func Variant(row int) int {
	return (row / 2) % len(AlienSprites)
}

// Canvas is a wave draw sink that can also show a centered message.
type Canvas interface {
	wave.Canvas
	Banner(title, subtitle string)
}

// Draw renders the wave and the phase overlay onto c.
func (g *Game) Draw(c Canvas) {
	if g.wave == nil {
		return
	}
	g.wave.Draw(c)

	switch {
	case g.phase == PhaseInactive:
		c.Banner(g.Title(), "Press S to play")
	case g.phase == PhasePaused:
		c.Banner(fmt.Sprintf("Ship lost · %d left", g.wave.Lives()), "Press S to continue")
	case g.phase == PhaseComplete && g.wave.IsWin():
		c.Banner("You Win", fmt.Sprintf("Score %d · R to restart", g.wave.Score()))
	case g.phase == PhaseComplete:
		c.Banner("Game Over", fmt.Sprintf("Score %d · R to restart", g.wave.Score()))
	case g.userPaused:
		c.Banner("Paused", "Press P to resume")
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.Draw(NewScreenCanvas(dst, g.Title()))
}

// ScreenCanvas draws onto a character screen. Row 0 is the HUD; world y
// grows upward from the bottom row.
type ScreenCanvas struct {
	dst   *core.Screen
	title string
}

// NewScreenCanvas creates a canvas over dst.
func NewScreenCanvas(dst *core.Screen, title string) *ScreenCanvas {
	return &ScreenCanvas{dst: dst, title: title}
}

// row maps a world y to a screen row.
func (c *ScreenCanvas) row(y float64) int {
	return c.dst.Height() - 1 - int(math.Floor(y))
}

// cells returns the screen columns and rows covered by b.
func (c *ScreenCanvas) cells(b core.Box) (x0, x1, r0, r1 int) {
	x0 = int(math.Round(b.Left()))
	x1 = max(int(math.Round(b.Right()))-1, x0)
	y0 := int(math.Round(b.Bottom()))
	y1 := max(int(math.Round(b.Top()))-1, y0)
	h := c.dst.Height() - 1
	return x0, x1, h - y1, h - y0
}

// fill stamps text across b, repeating it to fill each row.
func (c *ScreenCanvas) fill(b core.Box, text []rune, color core.Color) {
	x0, x1, r0, r1 := c.cells(b)
	for r := max(r0, 1); r <= r1; r++ {
		for x := x0; x <= x1; x++ {
			c.dst.SetColored(x, r, text[(x-x0)%len(text)], color)
		}
	}
}

// Alien draws an alien with its row's sprite.
func (c *ScreenCanvas) Alien(b core.Box, row int) {
	v := Variant(row)
	c.fill(b, []rune(AlienSprites[v]), AlienColors[v])
}

// Ship draws the intact ship or the current explosion frame.
func (c *ScreenCanvas) Ship(b core.Box, frame int) {
	if frame == wave.ShipIntact {
		c.fill(b, []rune(ShipSprite), core.ColorBrightWhite)
		return
	}
	glyph := ExplosionGlyphs[frame%len(ExplosionGlyphs)]
	color := core.ColorBrightYellow
	if frame%2 == 1 {
		color = core.ColorOrange
	}
	c.fill(b, []rune{glyph}, color)
}

// Bolt draws a projectile.
func (c *ScreenCanvas) Bolt(b core.Box, playerOwned bool) {
	if playerOwned {
		c.fill(b, []rune{BoltPlayerChar}, core.ColorBrightYellow)
		return
	}
	c.fill(b, []rune{BoltEnemyChar}, core.ColorBrightRed)
}

// DefenseLine draws the threshold in the row just below it.
func (c *ScreenCanvas) DefenseLine(y float64) {
	r := c.row(y - 0.5)
	if r < 1 || r >= c.dst.Height() {
		return
	}
	for x := range c.dst.Width() {
		if c.dst.Get(x, r) == ' ' {
			c.dst.SetColored(x, r, DefenseLineChar, core.ColorGray)
		}
	}
}

// Status draws the HUD row.
func (c *ScreenCanvas) Status(score, lives int) {
	c.dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", score), core.ColorBrightWhite)
	c.dst.DrawTextCentered(0, c.title)
	livesText := fmt.Sprintf("Lives: %d", lives)
	c.dst.DrawTextColored(c.dst.Width()-len(livesText)-1, 0, livesText, core.ColorBrightRed)
}

// Banner draws a two-line message in the middle of the screen.
func (c *ScreenCanvas) Banner(title, subtitle string) {
	mid := c.dst.Height() / 2
	c.centered(mid-1, title, core.ColorBrightYellow)
	c.centered(mid+1, subtitle, core.ColorWhite)
}

func (c *ScreenCanvas) centered(y int, text string, color core.Color) {
	n := len([]rune(text))
	x := (c.dst.Width() - n) / 2
	c.dst.DrawHLineColored(x-1, y, n+2, ' ', core.ColorDefault)
	c.dst.DrawTextColored(x, y, text, color)
}
