package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/crystal-run/internal/core"
)

func TestColorStyleForeground(t *testing.T) {
	tests := []struct {
		name  string
		color core.Color
		want  lipgloss.TerminalColor
	}{
		{"predefined", core.ColorOrange, lipgloss.Color("208")},
		{"true color", core.HSL(0, 1, 0.6), lipgloss.Color("#ff3333")},
		{"another hue", core.HSL(0.5, 1, 0.6), lipgloss.Color("#33ffff")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorStyle(tt.color).GetForeground(); got != tt.want {
				t.Errorf("foreground = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestColorStyleDefaultHasNoForeground(t *testing.T) {
	if _, ok := colorStyle(core.ColorDefault).GetForeground().(lipgloss.NoColor); !ok {
		t.Error("default color should leave the foreground unset")
	}
}

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColor(0, 0, "ab", core.HSL(0.25, 1, 0.6))
	s.SetWithColor(4, 0, '◆', core.HSL(0.75, 1, 0.6))
	s.DrawText(1, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if got := lipgloss.Width(lines[0]); got != 6 {
		t.Errorf("first line width = %d, expected 6", got)
	}
	if lines[1] != " xyz  " {
		t.Errorf("uncolored line = %q, expected it written bare", lines[1])
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "◆") {
		t.Errorf("first line %q lost its runes", lines[0])
	}
}
