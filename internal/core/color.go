package core

// Color is a foreground color for a screen cell. The platform layer decides
// how each value looks on a given terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
)

// Board roles. Drawing code uses these so the palette can change in one place.
const (
	ColorFood    = ColorBrightRed
	ColorHead    = ColorBrightGreen
	ColorBody    = ColorGreen
	ColorWall    = ColorYellow // Bounded edges
	ColorEdge    = ColorGray   // Wrapping edges
	ColorOverlay = ColorCyan
	ColorTitle   = ColorBrightWhite
)
