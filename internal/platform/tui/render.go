package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-laze/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         fg("1"),
	core.ColorGreen:       fg("2"),
	core.ColorYellow:      fg("3"),
	core.ColorBlue:        fg("4"),
	core.ColorMagenta:     fg("5"),
	core.ColorCyan:        fg("6"),
	core.ColorWhite:       fg("7"),
	core.ColorBrightCyan:  fg("14"),
	core.ColorBrightWhite: fg("15"),
	core.ColorOrange:      fg("208"),
	core.ColorGray:        fg("245"),

	core.ColorNeon:   fg("51"),
	core.ColorTeal:   fg("44"),
	core.ColorSea:    fg("31"),
	core.ColorNavy:   fg("25"),
	core.ColorAbyss:  fg("18"),
	core.ColorDusk:   fg("161"),
	core.ColorViolet: fg("141"),
	core.ColorNight:  fg("54"),
	core.ColorGrid:   fg("90"),
	core.ColorPink:   fg("213"),
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
