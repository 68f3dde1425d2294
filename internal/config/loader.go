package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load resolves the simulation configuration.
// Search order: customPath -> ~/.duorun/configs/duorun.yaml -> ./configs/duorun.yaml -> embedded default.
// An explicit customPath that cannot be read or parsed is an error; the
// fallback locations are silently skipped on failure.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if userPath := userConfigPath("duorun.yaml"); userPath != "" {
		if cfg, ok := tryLoad(userPath); ok {
			return cfg, nil
		}
	}

	if cfg, ok := tryLoad(filepath.Join("configs", "duorun.yaml")); ok {
		return cfg, nil
	}

	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // hardcoded fallback if the embed is broken
	}
	if err := cfg.Validate(); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// tryLoad reads and validates a config file, reporting whether it was usable.
func tryLoad(path string) (Config, bool) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".duorun", "configs", filename)
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed" // no speed progression
)

// ParsePreset maps a CLI flag value to a Preset.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case PresetEasy, PresetNormal, PresetHard, PresetFixed:
		return Preset(s), nil
	case "":
		return PresetNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty preset %q", s)
	}
}

// ApplyPreset adjusts the speed ramp for a difficulty preset.
// Normal leaves the configuration as loaded.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetEasy:
		cfg.Physics.StartSpeed = cfg.Physics.StartSpeed * 0.8
		cfg.Physics.SpeedIncrement = cfg.Physics.SpeedIncrement * 0.5
	case PresetHard:
		cfg.Physics.StartSpeed = cfg.Physics.StartSpeed * 1.3
		cfg.Physics.SpeedIncrement = cfg.Physics.SpeedIncrement * 1.5
		if cfg.Physics.SpeedIntervalMS > 1000 {
			cfg.Physics.SpeedIntervalMS -= 1000
		}
	case PresetFixed:
		cfg.Physics.SpeedIncrement = 0
	}
	if cfg.Physics.MaxSpeed < cfg.Physics.StartSpeed {
		cfg.Physics.MaxSpeed = cfg.Physics.StartSpeed
	}
}
