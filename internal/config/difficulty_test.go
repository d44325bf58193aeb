package config

import "testing"

func TestDifficultyDisabledKeepsBaseValues(t *testing.T) {
	d := NewDifficultyManager(DefaultRunnerConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := d.Speed(5, 1000, 100000); got != 5 {
		t.Errorf("Speed() = %v, expected constant 5", got)
	}
	if got := d.Delay(2, 1000, 100000); got != 2 {
		t.Errorf("Delay() = %v, expected constant 2", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, DelayReduction: 0.5},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score        int
		level, speed float64
		delay        float64
	}{
		{0, 0.0, 5.0, 2.0},
		{5, 0.5, 7.5, 1.5},
		{10, 1.0, 10.0, 1.0},
		{50, 1.0, 10.0, 1.0}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.level {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.level)
		}
		if got := d.Speed(5, tc.score, 0); got != tc.speed {
			t.Errorf("Speed(5, %d) = %v, expected %v", tc.score, got, tc.speed)
		}
		if got := d.Delay(2, tc.score, 0); got != tc.delay {
			t.Errorf("Delay(2, %d) = %v, expected %v", tc.score, got, tc.delay)
		}
	}
}

func TestDifficultyDelayFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 1},
		Scaling:      ScalingConfig{DelayReduction: 2.0},
	})
	if got := d.Delay(2, 0, 0); got != 0.5 {
		t.Errorf("Delay() = %v, expected floor 0.5", got)
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	})
	if got := d.Level(0, 0); got != 0.3 {
		t.Errorf("Level at start = %v, expected 0.3", got)
	}
	if got := d.Level(0, 100); got != 1.0 {
		t.Errorf("Level at max_at = %v, expected 1.0", got)
	}
}
