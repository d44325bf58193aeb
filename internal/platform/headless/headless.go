// Package headless drives a simulation session with a synthetic clock and
// scripted input, without a terminal.
package headless

import (
	"errors"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/crystal-run/internal/core"
	"github.com/vovakirdan/crystal-run/internal/games/crystal/sim"
)

// Script describes a scripted run.
type Script struct {
	Seconds   float64 // Total simulated time
	JumpEvery float64 // Seconds between jump presses, 0 never jumps
	Hold      float64 // Seconds jump stays held after each press
	FrameRate int     // Frame ticks per second
	FixedRate int     // Fixed ticks per second
}

// Summary is the outcome of a scripted run.
type Summary struct {
	Seconds float64
	Stats   sim.Stats
	Lives   int
	Over    bool
}

// ErrNoTime is returned for a script with nothing to simulate.
var ErrNoTime = errors.New("headless: script has no duration")

// Run plays the script against the session. It stops early when the
// session is over.
func Run(s *sim.Session, script Script, logger *log.Logger) (Summary, error) {
	if script.Seconds <= 0 {
		return Summary{}, ErrNoTime
	}
	if script.FrameRate <= 0 {
		script.FrameRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	frameDt := 1 / float64(script.FrameRate)
	frames := int(math.Ceil(script.Seconds * float64(script.FrameRate)))
	stepper := core.NewStepper(script.FixedRate, core.MaxStepsPerFrame)

	var frameClock, fixedClock core.Clock
	nextJump := script.JumpEvery
	holdUntil := -1.0
	in := core.NewInputFrame()

	for range frames {
		frameClock = frameClock.Advance(frameDt)
		t := frameClock.Elapsed

		in.Clear()
		if script.JumpEvery > 0 && t >= nextJump {
			in.Press(core.ActionJump)
			holdUntil = t + script.Hold
			for nextJump <= t {
				nextJump += script.JumpEvery
			}
		} else if t < holdUntil {
			in.Hold(core.ActionJump)
		}

		s.FrameTick(in, frameClock)
		for range stepper.Advance(frameDt) {
			fixedClock = fixedClock.Advance(stepper.Delta())
			s.FixedTick(fixedClock)
		}

		if s.Over() {
			logger.Debug("session over", "t", t)
			break
		}
	}

	sum := Summary{
		Seconds: frameClock.Elapsed,
		Stats:   s.Stats(),
		Lives:   s.Lives(),
		Over:    s.Over(),
	}
	logger.Info("run finished",
		"seconds", sum.Seconds,
		"spawns", sum.Stats.Spawns,
		"jumps", sum.Stats.Jumps,
		"hits", sum.Stats.Hits,
		"scores", sum.Stats.Scores,
		"max_height", sum.Stats.MaxHeight,
		"toggles", sum.Stats.Toggles,
	)
	return sum, nil
}
