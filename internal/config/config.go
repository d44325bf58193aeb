// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for the crystal runner.
type RunnerConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Level      LevelConfig      `yaml:"level"`
	Encounters EncounterConfig  `yaml:"encounters"`
	Hurt       HurtConfig       `yaml:"hurt"`
	Body       BodyConfig       `yaml:"body"`
	Decor      DecorConfig      `yaml:"decor"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines the player's vertical motion.
type PhysicsConfig struct {
	JumpVelocity     float64 `yaml:"jump_velocity"`      // Launch speed (units/s)
	Gravity          float64 `yaml:"gravity"`            // Downward acceleration (units/s^2)
	HoldGravityScale float64 `yaml:"hold_gravity_scale"` // Gravity factor while rising with jump held
	LaunchHeight     float64 `yaml:"launch_height"`      // Jumps are accepted below this height
}

// LevelConfig defines the scrolling track.
type LevelConfig struct {
	Speed    float64 `yaml:"speed"`     // Scroll speed (units/s)
	SpawnX   float64 `yaml:"spawn_x"`   // Where obstacles appear
	DespawnX float64 `yaml:"despawn_x"` // Objects behind this are removed
}

// EncounterConfig defines obstacle timing and shape.
type EncounterConfig struct {
	Delay       float64 `yaml:"delay"`        // Average seconds between spawns
	FirstDelay  float64 `yaml:"first_delay"`  // Seconds before the first spawn
	Radius      float64 `yaml:"radius"`       // Collision half-width along X
	Height      float64 `yaml:"height"`       // Player below this height is hit
	PaletteSize int     `yaml:"palette_size"` // Number of obstacle colors
}

// HurtConfig defines the hit reaction.
type HurtConfig struct {
	FlashTicks int `yaml:"flash_ticks"` // Total flicker duration in fixed ticks
	FlickTicks int `yaml:"flick_ticks"` // Ticks per on/off interval
	Lives      int `yaml:"lives"`       // 0 = endless
}

// BodyConfig defines the procedural rig.
type BodyConfig struct {
	LegLength         float64 `yaml:"leg_length"`
	HalfStride        float64 `yaml:"half_stride"`
	StepHeight        float64 `yaml:"step_height"`
	HipSplay          float64 `yaml:"hip_splay"`
	HipForward        float64 `yaml:"hip_forward"`
	FootSpread        float64 `yaml:"foot_spread"`
	TuckHeight        float64 `yaml:"tuck_height"`
	TailSegments      int     `yaml:"tail_segments"`
	TailAmplitude     float64 `yaml:"tail_amplitude"`
	TailHeight        float64 `yaml:"tail_height"`
	TailSegmentLength float64 `yaml:"tail_segment_length"`
}

// DecorConfig defines the ambient crystals lining the cave.
type DecorConfig struct {
	SpawnX     float64 `yaml:"spawn_x"`
	MinGap     float64 `yaml:"min_gap"`
	GapJitter  float64 `yaml:"gap_jitter"`
	DespawnX   float64 `yaml:"despawn_x"`
	CaveRadius float64 `yaml:"cave_radius"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	DelayReduction  float64 `yaml:"delay_reduction"`  // Fraction of spawn delay removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate reports configuration defects. These are not recoverable at
// runtime; callers fall back to defaults.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.JumpVelocity > 0, "physics.jump_velocity must be positive, got %v", c.Physics.JumpVelocity)
	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.HoldGravityScale > 0 && c.Physics.HoldGravityScale <= 1,
		"physics.hold_gravity_scale must be in (0, 1], got %v", c.Physics.HoldGravityScale)
	check(c.Level.Speed > 0, "level.speed must be positive, got %v", c.Level.Speed)
	check(c.Level.DespawnX < 0, "level.despawn_x must be negative, got %v", c.Level.DespawnX)
	check(c.Level.SpawnX > 0, "level.spawn_x must be positive, got %v", c.Level.SpawnX)
	check(c.Encounters.Delay > 0, "encounters.delay must be positive, got %v", c.Encounters.Delay)
	check(c.Encounters.FirstDelay >= 0, "encounters.first_delay must not be negative, got %v", c.Encounters.FirstDelay)
	check(c.Encounters.Radius > 0, "encounters.radius must be positive, got %v", c.Encounters.Radius)
	check(c.Encounters.PaletteSize > 0, "encounters.palette_size must be positive, got %d", c.Encounters.PaletteSize)
	check(c.Hurt.FlashTicks >= 0 && c.Hurt.FlashTicks <= 255, "hurt.flash_ticks must be in [0, 255], got %d", c.Hurt.FlashTicks)
	check(c.Hurt.FlickTicks > 0 && c.Hurt.FlickTicks <= 255, "hurt.flick_ticks must be in [1, 255], got %d", c.Hurt.FlickTicks)
	check(c.Hurt.Lives >= 0, "hurt.lives must not be negative, got %d", c.Hurt.Lives)
	check(c.Body.LegLength > 0, "body.leg_length must be positive, got %v", c.Body.LegLength)
	check(c.Body.HalfStride > 0, "body.half_stride must be positive, got %v", c.Body.HalfStride)
	check(c.Body.TailSegments > 0, "body.tail_segments must be positive, got %d", c.Body.TailSegments)
	check(c.Decor.MinGap > 0, "decor.min_gap must be positive, got %v", c.Decor.MinGap)

	return errors.Join(errs...)
}
