package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/crystal-run/internal/core"
)

// ansiCodes maps the predefined core colors onto ANSI 256-color codes.
var ansiCodes = map[core.Color]lipgloss.Color{
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
}

// styles caches one foreground style per color. Crystal and obstacle
// palettes are true colors, so the set grows with the palette sizes in use
// and is shared by every session.
var styles sync.Map // core.Color -> lipgloss.Style

// terminalColor resolves c for lipgloss. True colors are passed as hex and
// lipgloss downsamples them for terminals without 24-bit support.
func terminalColor(c core.Color) (lipgloss.TerminalColor, bool) {
	if c.IsRGB() {
		return lipgloss.Color(c.Hex()), true
	}
	code, ok := ansiCodes[c]
	return code, ok
}

func colorStyle(c core.Color) lipgloss.Style {
	if s, ok := styles.Load(c); ok {
		return s.(lipgloss.Style)
	}
	style := lipgloss.NewStyle()
	if tc, ok := terminalColor(c); ok {
		style = style.Foreground(tc)
	}
	styles.Store(c, style)
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a color are styled as one run, and runs of blank
// cells are written bare since the cave scene is mostly empty space.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			blank := true
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				if cell.Rune != ' ' {
					blank = false
				}
				run.WriteRune(cell.Rune)
			}
			if blank || color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(colorStyle(color).Render(run.String()))
		}
	}
	return sb.String()
}
