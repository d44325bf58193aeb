package sim

import "github.com/vovakirdan/crystal-run/internal/config"

// Player is the vertical state of the runner. X and Y are fixed; Z is the
// height above the ground and never goes negative.
type Player struct {
	Z        float64
	Velocity float64
	Airborne bool
}

// MotionParams are the constants of the jump.
type MotionParams struct {
	JumpVelocity     float64
	Gravity          float64
	HoldGravityScale float64
	LaunchHeight     float64
}

// MotionFromConfig extracts the jump constants.
func MotionFromConfig(cfg config.PhysicsConfig) MotionParams {
	return MotionParams{
		JumpVelocity:     cfg.JumpVelocity,
		Gravity:          cfg.Gravity,
		HoldGravityScale: cfg.HoldGravityScale,
		LaunchHeight:     cfg.LaunchHeight,
	}
}

// Step reports what happened during one Integrate call.
type Step struct {
	Launched bool
	Landed   bool
}

// Integrate advances the player by dt with semi-implicit Euler: velocity
// first, then position with the new velocity.
//
// A press launches only near the ground and when not already rising.
// Gravity acts while the player is above ground or has just launched;
// holding jump on the way up scales it by HoldGravityScale. Landing
// clamps both height and velocity to exactly zero.
func (p *Player) Integrate(m MotionParams, dt float64, pressed, held bool) Step {
	var st Step

	if p.Z < m.LaunchHeight && p.Velocity <= 0 && pressed {
		p.Velocity = m.JumpVelocity
		p.Airborne = true
		st.Launched = true
	}

	if p.Z > 0 || p.Airborne {
		g := m.Gravity * dt
		if held && p.Velocity > 0 {
			g *= m.HoldGravityScale
		}
		p.Velocity -= g
	}

	if p.Velocity != 0 {
		p.Z += p.Velocity * dt
	}

	if p.Velocity < 0 && p.Z <= 0 {
		p.Z = 0
		p.Velocity = 0
		if p.Airborne {
			st.Landed = true
		}
		p.Airborne = false
	}
	return st
}
