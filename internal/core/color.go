package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the board, the status panel and the display.
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
	ColorBrightMagenta
	ColorOrange
	ColorGray
	ColorBrown
)

// Cell is one character of the screen with its color.
type Cell struct {
	Rune  rune
	Color Color
}
