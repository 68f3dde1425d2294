package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() should validate, got: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default diverged from Default():\nembedded:  %+v\nhardcoded: %+v", cfg, Default())
	}
}

func TestValidateRejectsBrokenConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero world width", func(c *Config) { c.World.Width = 0 }},
		{"ground below world", func(c *Config) { c.World.GroundY = c.World.Height + 1 }},
		{"zero player width", func(c *Config) { c.Player.Width = 0 }},
		{"negative player x", func(c *Config) { c.Player.X = -1 }},
		{"shrink factor of 1", func(c *Config) { c.Player.HitboxShrinkX = 1 }},
		{"negative shrink factor", func(c *Config) { c.Obstacle.HitboxShrinkY = -0.1 }},
		{"negative lead factor", func(c *Config) { c.Companion.JumpLeadFactor = -0.3 }},
		{"zero obstacle height", func(c *Config) { c.Obstacle.Height = 0 }},
		{"negative spawn margin", func(c *Config) { c.Obstacle.SpawnMargin = -5 }},
		{"zero start speed", func(c *Config) { c.Physics.StartSpeed = 0 }},
		{"max below start speed", func(c *Config) { c.Physics.MaxSpeed = c.Physics.StartSpeed - 1 }},
		{"ramp without interval", func(c *Config) { c.Physics.SpeedIntervalMS = 0 }},
		{"zero jump duration", func(c *Config) { c.Physics.JumpDurationMS = 0 }},
		{"zero jump height", func(c *Config) { c.Physics.JumpHeight = 0 }},
		{"zero fixed step", func(c *Config) { c.Timing.FixedStepMS = 0 }},
		{"zero frame skip", func(c *Config) { c.Timing.MaxFrameSkip = 0 }},
		{"negative grace period", func(c *Config) { c.Timing.GracePeriodMS = -1 }},
		{"negative distance rate", func(c *Config) { c.Scoring.DistanceRate = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should have failed")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	cfg := Default()
	cfg.Physics.StartSpeed = 150
	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Physics.StartSpeed != 150 {
		t.Errorf("start_speed = %f, want 150", loaded.Physics.StartSpeed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing explicit path should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not a mapping"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() with unparseable explicit config should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	cfg := Default()
	cfg.Physics.StartSpeed = -1
	data, _ := yaml.Marshal(cfg)
	if err := os.WriteFile(invalid, data, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load() with invalid explicit config should fail")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if p, err := ParsePreset(""); err != nil || p != PresetNormal {
		t.Errorf("empty preset should default to normal, got %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	base := Default()

	easy := Default()
	ApplyPreset(&easy, PresetEasy)
	if easy.Physics.StartSpeed >= base.Physics.StartSpeed {
		t.Error("easy preset should lower the start speed")
	}
	if err := easy.Validate(); err != nil {
		t.Errorf("easy preset produced invalid config: %v", err)
	}

	hard := Default()
	ApplyPreset(&hard, PresetHard)
	if hard.Physics.StartSpeed <= base.Physics.StartSpeed {
		t.Error("hard preset should raise the start speed")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}

	fixed := Default()
	ApplyPreset(&fixed, PresetFixed)
	if fixed.Physics.SpeedIncrement != 0 {
		t.Error("fixed preset should disable the speed ramp")
	}

	normal := Default()
	ApplyPreset(&normal, PresetNormal)
	if normal != base {
		t.Error("normal preset should leave the config unchanged")
	}
}
