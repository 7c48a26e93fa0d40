package core

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
	ColorSlate
	ColorIce
	ColorIndigo
	ColorCrimson
	ColorGold
	ColorPink
)

// ParseColor maps a palette name from config to a Color.
// Unknown names fall back to ColorDefault.
func ParseColor(name string) Color {
	switch name {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "magenta":
		return ColorMagenta
	case "cyan":
		return ColorCyan
	case "white":
		return ColorWhite
	case "bright_red":
		return ColorBrightRed
	case "bright_green":
		return ColorBrightGreen
	case "bright_yellow":
		return ColorBrightYellow
	case "bright_blue":
		return ColorBrightBlue
	case "bright_magenta":
		return ColorBrightMagenta
	case "bright_cyan":
		return ColorBrightCyan
	case "bright_white":
		return ColorBrightWhite
	case "orange":
		return ColorOrange
	case "gray":
		return ColorGray
	case "slate":
		return ColorSlate
	case "ice":
		return ColorIce
	case "indigo":
		return ColorIndigo
	case "crimson":
		return ColorCrimson
	case "gold":
		return ColorGold
	case "pink":
		return ColorPink
	default:
		return ColorDefault
	}
}
