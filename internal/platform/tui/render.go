package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/microgames/internal/core"
)

// ansiCodes maps each non-default core.Color to a 256-color code.
// The first 16 codes follow the terminal's own theme.
var ansiCodes = [...]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorPurple:        "135",
}

var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range ansiCodes {
		if code != "" {
			styles[core.Color(c)] = lipgloss.NewStyle().Foreground(lipgloss.Color(code)) //#nosec G115 -- palette index
		}
	}
	return styles
}()

// RenderScreen turns the cell buffer into terminal text. Each run of
// same-colored cells becomes one styled span.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	span := make([]rune, 0, s.Width())

	for y := range rows {
		var line strings.Builder
		color := core.ColorDefault
		flush := func() {
			if len(span) == 0 {
				return
			}
			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			line.WriteString(style.Render(string(span)))
			span = span[:0]
		}

		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				flush()
				color = cell.Color
			}
			span = append(span, cell.Rune)
		}
		flush()
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}
