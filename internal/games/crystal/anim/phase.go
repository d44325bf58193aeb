// Package anim synthesizes the runner's procedural animation: a stateless
// gait phase clock, an approximate two-bone IK solve for the knees, foot and
// hip trajectories for the walk cycle, a tucked jump pose, and a
// phase-lagged tail. Everything here is a pure function of elapsed time,
// speed and vertical velocity; there is no per-joint memory.
package anim

import "github.com/vovakirdan/crystal-run/internal/core"

// Phase is the gait phase at one instant.
// T advances by one per half stride; Left and Right are the per-leg
// sub-phases in [0, 2), exactly half a cycle apart. [0,1) is swing and
// [1,2) is stance.
type Phase struct {
	T     float64
	Left  float64
	Right float64
}

// GaitPhase derives the phase from elapsed time, scroll speed and half
// stride length. It is recomputed from scratch on every call, so a speed
// change shows up immediately and re-evaluating at the same inputs yields
// the same phase.
func GaitPhase(elapsed, speed, halfStride float64) Phase {
	t := elapsed * speed / (2 * halfStride)
	return Phase{
		T:     t,
		Left:  core.WrapF(t, 2),
		Right: core.WrapF(t+1, 2),
	}
}
