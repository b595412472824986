package core

// Color is a foreground color for a screen cell. The platform maps each
// value to an ANSI 256-color code.
type Color uint8

// Basic colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Synthwave palette used by the first-person view, brightest first.
const (
	ColorNeon Color = iota + 32 // near wall edges
	ColorTeal
	ColorSea
	ColorNavy
	ColorAbyss // farthest visible walls
	ColorDusk  // sky near the horizon
	ColorViolet
	ColorNight // sky at the zenith
	ColorGrid  // floor lines
	ColorPink  // player marker
)

// WallShades orders wall colors from nearest to farthest.
var WallShades = []Color{ColorNeon, ColorTeal, ColorSea, ColorNavy, ColorAbyss}

// Shade picks an entry of shades for t in [0, 1], where 0 is the first entry.
// Values outside the range are clamped.
func Shade(shades []Color, t float64) Color {
	if len(shades) == 0 {
		return ColorDefault
	}
	i := int(ClampF(t, 0, 1)*float64(len(shades)-1) + 0.5)
	return shades[i]
}
