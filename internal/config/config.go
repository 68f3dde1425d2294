// Package config provides YAML-based configuration loading, validation and
// difficulty presets for the Duo Run simulation.
package config

import (
	"fmt"
	"time"
)

// Config contains every tunable of a simulation session. It is resolved once
// at startup and treated as immutable afterwards.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Player    ActorConfig     `yaml:"player"`
	Companion CompanionConfig `yaml:"companion"`
	Obstacle  ObstacleConfig  `yaml:"obstacle"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Timing    TimingConfig    `yaml:"timing"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

// WorldConfig defines the virtual playfield in pixels, y-down.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"`
}

// ActorConfig defines the geometry of a running actor. X is fixed for the
// whole session; only the vertical offset changes while jumping.
type ActorConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Hitbox shrink factors compensate for sprite padding. Each is the
	// fraction of the visual box trimmed off in total, applied symmetrically.
	HitboxShrinkX float64 `yaml:"hitbox_shrink_x"`
	HitboxShrinkY float64 `yaml:"hitbox_shrink_y"`
}

// CompanionConfig extends ActorConfig with the auto-jump tuning.
type CompanionConfig struct {
	ActorConfig `yaml:",inline"`

	// JumpLeadFactor is the empirical correction of the auto-jump trigger
	// distance, as a fraction of current speed. Higher values make the
	// companion leave the ground earlier.
	JumpLeadFactor float64 `yaml:"jump_lead_factor"`
}

// ObstacleConfig defines the single recyclable obstacle.
type ObstacleConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	HitboxShrinkX float64 `yaml:"hitbox_shrink_x"`
	HitboxShrinkY float64 `yaml:"hitbox_shrink_y"`

	// SpawnMargin is added to the world width when the obstacle recycles,
	// so a fresh obstacle always enters from beyond the right edge.
	SpawnMargin float64 `yaml:"spawn_margin"`

	// BonusPoints are awarded each time the obstacle is cleared off-screen.
	BonusPoints int `yaml:"bonus_points"`
}

// PhysicsConfig defines horizontal speed and the jump arc.
type PhysicsConfig struct {
	StartSpeed      float64 `yaml:"start_speed"`       // px/s at session start
	MaxSpeed        float64 `yaml:"max_speed"`         // px/s cap
	SpeedIncrement  float64 `yaml:"speed_increment"`   // px/s added per ramp interval
	SpeedIntervalMS int     `yaml:"speed_interval_ms"` // ramp interval on the sim clock
	JumpDurationMS  int     `yaml:"jump_duration_ms"`
	JumpHeight      float64 `yaml:"jump_height"` // px at arc peak
}

// TimingConfig defines the fixed-step scheduler parameters.
type TimingConfig struct {
	FixedStepMS   int `yaml:"fixed_step_ms"`
	MaxFrameSkip  int `yaml:"max_frame_skip"`
	GracePeriodMS int `yaml:"grace_period_ms"` // collision checks suppressed after start
}

// ScoringConfig defines how distance converts to points.
type ScoringConfig struct {
	// DistanceRate is points per pixel of distance travelled.
	DistanceRate float64 `yaml:"distance_rate"`
}

// SpeedInterval returns the ramp interval as a duration.
func (p PhysicsConfig) SpeedInterval() time.Duration {
	return time.Duration(p.SpeedIntervalMS) * time.Millisecond
}

// JumpDuration returns the jump arc duration as a duration.
func (p PhysicsConfig) JumpDuration() time.Duration {
	return time.Duration(p.JumpDurationMS) * time.Millisecond
}

// FixedStep returns the simulation step as a duration.
func (t TimingConfig) FixedStep() time.Duration {
	return time.Duration(t.FixedStepMS) * time.Millisecond
}

// GracePeriod returns the post-start collision grace window as a duration.
func (t TimingConfig) GracePeriod() time.Duration {
	return time.Duration(t.GracePeriodMS) * time.Millisecond
}

// Validate checks that the configuration can establish the simulation
// invariants. Any error here is fatal at startup.
func (c Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world dimensions must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if c.World.GroundY <= 0 || c.World.GroundY > c.World.Height {
		return fmt.Errorf("config: ground_y %g outside world height %g", c.World.GroundY, c.World.Height)
	}
	if err := validateActor("player", c.Player); err != nil {
		return err
	}
	if err := validateActor("companion", c.Companion.ActorConfig); err != nil {
		return err
	}
	if c.Companion.JumpLeadFactor < 0 {
		return fmt.Errorf("config: companion jump_lead_factor must not be negative, got %g", c.Companion.JumpLeadFactor)
	}
	if c.Obstacle.Width <= 0 || c.Obstacle.Height <= 0 {
		return fmt.Errorf("config: obstacle dimensions must be positive, got %gx%g", c.Obstacle.Width, c.Obstacle.Height)
	}
	if err := validateShrink("obstacle", c.Obstacle.HitboxShrinkX, c.Obstacle.HitboxShrinkY); err != nil {
		return err
	}
	if c.Obstacle.SpawnMargin < 0 {
		return fmt.Errorf("config: obstacle spawn_margin must not be negative, got %g", c.Obstacle.SpawnMargin)
	}
	if c.Physics.StartSpeed <= 0 {
		return fmt.Errorf("config: start_speed must be positive, got %g", c.Physics.StartSpeed)
	}
	if c.Physics.MaxSpeed < c.Physics.StartSpeed {
		return fmt.Errorf("config: max_speed %g below start_speed %g", c.Physics.MaxSpeed, c.Physics.StartSpeed)
	}
	if c.Physics.SpeedIncrement < 0 {
		return fmt.Errorf("config: speed_increment must not be negative, got %g", c.Physics.SpeedIncrement)
	}
	if c.Physics.SpeedIncrement > 0 && c.Physics.SpeedIntervalMS <= 0 {
		return fmt.Errorf("config: speed_interval_ms must be positive when ramping, got %d", c.Physics.SpeedIntervalMS)
	}
	if c.Physics.JumpDurationMS <= 0 {
		return fmt.Errorf("config: jump_duration_ms must be positive, got %d", c.Physics.JumpDurationMS)
	}
	if c.Physics.JumpHeight <= 0 {
		return fmt.Errorf("config: jump_height must be positive, got %g", c.Physics.JumpHeight)
	}
	if c.Timing.FixedStepMS <= 0 {
		return fmt.Errorf("config: fixed_step_ms must be positive, got %d", c.Timing.FixedStepMS)
	}
	if c.Timing.MaxFrameSkip < 1 {
		return fmt.Errorf("config: max_frame_skip must be at least 1, got %d", c.Timing.MaxFrameSkip)
	}
	if c.Timing.GracePeriodMS < 0 {
		return fmt.Errorf("config: grace_period_ms must not be negative, got %d", c.Timing.GracePeriodMS)
	}
	if c.Scoring.DistanceRate < 0 {
		return fmt.Errorf("config: distance_rate must not be negative, got %g", c.Scoring.DistanceRate)
	}
	return nil
}

func validateActor(name string, a ActorConfig) error {
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("config: %s dimensions must be positive, got %gx%g", name, a.Width, a.Height)
	}
	if a.X < 0 {
		return fmt.Errorf("config: %s x must not be negative, got %g", name, a.X)
	}
	return validateShrink(name, a.HitboxShrinkX, a.HitboxShrinkY)
}

func validateShrink(name string, fx, fy float64) error {
	if fx < 0 || fx >= 1 || fy < 0 || fy >= 1 {
		return fmt.Errorf("config: %s hitbox shrink factors must be in [0, 1), got %g/%g", name, fx, fy)
	}
	return nil
}
