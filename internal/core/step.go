package core

import "math"

// MaxStepsPerFrame is the default bound on fixed steps run for one frame.
const MaxStepsPerFrame = 8

// Stepper converts measured frame deltas into whole fixed steps.
type Stepper struct {
	dt       float64
	acc      float64
	maxSteps int
}

// NewStepper creates an accumulator for the given fixed rate in Hz.
func NewStepper(fixedRate, maxSteps int) *Stepper {
	if fixedRate <= 0 {
		fixedRate = 64
	}
	if maxSteps <= 0 {
		maxSteps = MaxStepsPerFrame
	}
	return &Stepper{dt: 1 / float64(fixedRate), maxSteps: maxSteps}
}

// Delta is the duration of one fixed step in seconds.
func (s *Stepper) Delta() float64 {
	return s.dt
}

// Pending is the accumulated time not yet consumed by a step.
func (s *Stepper) Pending() float64 {
	return s.acc
}

// Advance adds a frame delta and returns how many fixed steps to run.
// Time beyond maxSteps is dropped, keeping only the sub-step remainder.
func (s *Stepper) Advance(frameDelta float64) int {
	if frameDelta > 0 {
		s.acc += frameDelta
	}
	n := int(s.acc / s.dt)
	if n > s.maxSteps {
		n = s.maxSteps
		s.acc = math.Mod(s.acc, s.dt)
		return n
	}
	s.acc -= float64(n) * s.dt
	return n
}

// Reset drops any accumulated time.
func (s *Stepper) Reset() {
	s.acc = 0
}
