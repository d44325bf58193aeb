package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded default configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			JumpVelocity:     10.0,
			Gravity:          40.0,
			HoldGravityScale: 0.5,
			LaunchHeight:     0.25,
		},
		Level: LevelConfig{
			Speed:    5.0,
			SpawnX:   15.0,
			DespawnX: -7.0,
		},
		Encounters: EncounterConfig{
			Delay:       2.0,
			FirstDelay:  1.0,
			Radius:      0.75,
			Height:      1.25,
			PaletteSize: 16,
		},
		Hurt: HurtConfig{
			FlashTicks: 40,
			FlickTicks: 4,
			Lives:      0,
		},
		Body: BodyConfig{
			LegLength:         1.2,
			HalfStride:        0.707,
			StepHeight:        0.3,
			HipSplay:          0.25,
			HipForward:        0.1,
			FootSpread:        0.3,
			TuckHeight:        0.45,
			TailSegments:      6,
			TailAmplitude:     0.04,
			TailHeight:        1.0,
			TailSegmentLength: 0.22,
		},
		Decor: DecorConfig{
			SpawnX:     15.0,
			MinGap:     1.5,
			GapJitter:  0.5,
			DespawnX:   -7.0,
			CaveRadius: 3.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				DelayReduction:  0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
