package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg RunnerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Errorf("embedded defaults drifted from DefaultRunnerConfig()\nyaml: %+v\ncode: %+v", cfg, DefaultRunnerConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultRunnerConfig().Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestValidateReportsEveryDefect(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Encounters.Delay = -1
	cfg.Physics.HoldGravityScale = 1.5
	cfg.Body.TailSegments = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, key := range []string{"encounters.delay", "hold_gravity_scale", "tail_segments"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q should mention %s", err, key)
		}
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("level:\n  speed: 7.5\nhurt:\n  lives: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Level.Speed != 7.5 {
		t.Errorf("Level.Speed = %v, expected 7.5", cfg.Level.Speed)
	}
	if cfg.Hurt.Lives != 3 {
		t.Errorf("Hurt.Lives = %d, expected 3", cfg.Hurt.Lives)
	}
	// Keys absent from the file keep their defaults
	if cfg.Physics.JumpVelocity != 10 {
		t.Errorf("Physics.JumpVelocity = %v, expected default 10", cfg.Physics.JumpVelocity)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	cfg, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadRunner() should fail for a missing custom path")
	}
	if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
		t.Error("LoadRunner() should return defaults alongside the error")
	}
}

func TestLoadRunnerBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("level: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(path); err == nil {
		t.Error("LoadRunner() should fail for malformed YAML")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		enabled      bool
		initialLevel float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initialLevel {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initialLevel)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error(`ParsePreset("hard") should be DifficultyHard`)
	}
	if ParsePreset("insane") != "" {
		t.Error(`ParsePreset("insane") should be empty`)
	}
}
