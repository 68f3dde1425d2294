package sim

import (
	"testing"
	"time"

	"github.com/vkoval/duorun/internal/config"
)

func TestResetIdempotent(t *testing.T) {
	cfg := config.Default()
	now := time.Unix(100, 0)

	var once State
	once.Reset(cfg, now)

	var twice State
	twice.Reset(cfg, now)
	twice.Reset(cfg, now)

	if once != twice {
		t.Errorf("double reset differs from single reset:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestResetClearsSession(t *testing.T) {
	cfg := config.Default()
	now := time.Unix(100, 0)

	var st State
	st.Reset(cfg, now)

	// Dirty every session field.
	st.Phase = PhaseCrashed
	st.Speed = 999
	st.Distance = 123
	st.BonusScore = 400
	st.Score = 412
	st.Accumulated = time.Second
	st.Player.StartJump(now)
	st.Companion.StartJump(now)
	st.Obstacle.X = -10

	st.Reset(cfg, now)

	if st.Phase != PhaseInitial {
		t.Errorf("phase after reset = %v, want Initial", st.Phase)
	}
	if st.Speed != cfg.Physics.StartSpeed {
		t.Errorf("speed after reset = %f, want %f", st.Speed, cfg.Physics.StartSpeed)
	}
	if st.Score != 0 || st.Distance != 0 || st.BonusScore != 0 {
		t.Errorf("score fields not cleared: score=%d distance=%f bonus=%d", st.Score, st.Distance, st.BonusScore)
	}
	if st.Accumulated != 0 {
		t.Errorf("accumulator not cleared: %v", st.Accumulated)
	}
	if st.Player.Jumping || st.Companion.Jumping {
		t.Error("actors should be grounded after reset")
	}
	if st.Obstacle.X != cfg.World.Width+cfg.Obstacle.SpawnMargin {
		t.Errorf("obstacle not at spawn x: %f", st.Obstacle.X)
	}
}

func TestObstacleSpawnBeyondRightEdge(t *testing.T) {
	cfg := config.Default()
	var st State
	st.Reset(cfg, time.Unix(0, 0))

	// Push the obstacle fully off-screen; it must recycle past the edge.
	recycled := st.Obstacle.Advance(st.Obstacle.X + st.Obstacle.Width + 1)
	if !recycled {
		t.Fatal("obstacle should have recycled")
	}
	if st.Obstacle.X <= cfg.World.Width {
		t.Errorf("recycled obstacle x %f should be beyond world width %f", st.Obstacle.X, cfg.World.Width)
	}
}

func TestActorJumpLifecycle(t *testing.T) {
	cfg := config.Default()
	a := newActor(cfg.Player)
	now := time.Unix(0, 0)

	if !a.StartJump(now) {
		t.Fatal("grounded actor should be able to jump")
	}
	if a.StartJump(now) {
		t.Error("airborne actor must not double-trigger a jump")
	}

	duration := cfg.Physics.JumpDuration()
	a.Advance(now.Add(duration/2), duration, cfg.Physics.JumpHeight)
	if !a.Jumping || a.OffsetY <= 0 {
		t.Errorf("mid-jump actor should be airborne, offset=%f jumping=%v", a.OffsetY, a.Jumping)
	}

	a.Advance(now.Add(duration), duration, cfg.Physics.JumpHeight)
	if a.Jumping {
		t.Error("jump should be finished after full duration")
	}
	if a.OffsetY != 0 {
		t.Errorf("offset should return to exactly 0 on landing, got %f", a.OffsetY)
	}
}
