// Package tui provides the Bubble Tea host for the runner.
// It drives the variable-rate frame tick and the fixed-rate simulation
// tick, maps keys to actions and draws the screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crystal-run/internal/core"
)

const (
	// MaxFrameDelta caps the measured frame delta so a stalled terminal
	// does not launch a burst of catch-up physics.
	MaxFrameDelta = 0.25

	// MaxStepsPerFrame bounds the fixed steps run for a single frame.
	MaxStepsPerFrame = core.MaxStepsPerFrame
)

// FrameMsg is sent to trigger a frame tick.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// frameDelta measures seconds between two frame messages, clamped to
// [0, MaxFrameDelta]. The first frame has no predecessor and yields 0.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	dt := now.Sub(prev).Seconds()
	if dt < 0 {
		return 0
	}
	return min(dt, MaxFrameDelta)
}
