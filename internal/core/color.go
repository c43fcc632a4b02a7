package core

import "strings"

// Color is a palette index shared by every renderer.
// Hosts map it to ANSI codes or RGBA values.
type Color uint8

// Palette entries used by the game.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorPurple
	ColorTeal
	ColorWhite
	ColorGray
	ColorOrange
)

var colorNames = map[string]Color{
	"default": ColorDefault,
	"black":   ColorBlack,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"purple":  ColorPurple,
	"teal":    ColorTeal,
	"white":   ColorWhite,
	"gray":    ColorGray,
	"orange":  ColorOrange,
}

// ParseColor resolves a palette name (case-insensitive).
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// String returns the palette name of the color.
func (c Color) String() string {
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return "unknown"
}
