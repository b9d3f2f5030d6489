package core

// Color is a logical foreground color. Frontends map it to an ANSI code or
// an RGB value; ColorDefault leaves the terminal's own color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

var colorNames = [colorCount]string{
	"default", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-red", "bright-green", "bright-yellow", "bright-blue",
	"bright-magenta", "bright-cyan", "bright-white", "orange", "gray",
}

func (c Color) String() string {
	if c < colorCount {
		return colorNames[c]
	}
	return "unknown"
}
