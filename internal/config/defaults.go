package config

import (
	_ "embed"
)

//go:embed defaults/duorun.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:   900,
			Height:  300,
			GroundY: 260,
		},
		Player: ActorConfig{
			X:             120,
			Width:         88,
			Height:        94,
			HitboxShrinkX: 0.4,
			HitboxShrinkY: 0.2,
		},
		Companion: CompanionConfig{
			ActorConfig: ActorConfig{
				X:             36,
				Width:         64,
				Height:        58,
				HitboxShrinkX: 0.3,
				HitboxShrinkY: 0.2,
			},
			JumpLeadFactor: 0.3,
		},
		Obstacle: ObstacleConfig{
			Width:         71,
			Height:        70,
			HitboxShrinkX: 0.2,
			HitboxShrinkY: 0.1,
			SpawnMargin:   60,
			BonusPoints:   100,
		},
		Physics: PhysicsConfig{
			StartSpeed:      200,
			MaxSpeed:        460,
			SpeedIncrement:  20,
			SpeedIntervalMS: 5000,
			JumpDurationMS:  1200,
			JumpHeight:      120,
		},
		Timing: TimingConfig{
			FixedStepMS:   16,
			MaxFrameSkip:  5,
			GracePeriodMS: 500,
		},
		Scoring: ScoringConfig{
			DistanceRate: 0.1,
		},
	}
}
