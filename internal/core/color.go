package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
)

// hexColors maps the web colors used by game data to terminal colors.
var hexColors = map[string]Color{
	"#ff5733": ColorOrange,
	"#33c1ff": ColorBrightCyan,
	"#9b59b6": ColorMagenta,
	"#2ecc71": ColorBrightGreen,
	"#f1c40f": ColorBrightYellow,
	"#ffcd05": ColorYellow,
	"#2e3548": ColorGray,
	"#ffffff": ColorBrightWhite,
}

// ColorFromHex returns the terminal color for a "#rrggbb" string.
// Unknown values map to ColorDefault.
func ColorFromHex(hex string) Color {
	if c, ok := hexColors[strings.ToLower(hex)]; ok {
		return c
	}
	return ColorDefault
}
