package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
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

// CardPalette is the rotation of colors used to tell card faces apart.
// Both cards of a pair always share one entry.
var CardPalette = []Color{
	ColorBrightRed,
	ColorBrightYellow,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
	ColorBrightGreen,
	ColorWhite,
}

// PaletteColor returns the palette entry for a positive card identifier.
func PaletteColor(id int) Color {
	if id <= 0 {
		return ColorDefault
	}
	return CardPalette[(id-1)%len(CardPalette)]
}
