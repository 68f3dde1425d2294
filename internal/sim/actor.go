package sim

import (
	"time"

	"github.com/vkoval/duorun/internal/config"
)

// Actor is one running character: the player or the companion. Its x position
// is fixed for the whole session; jumping only changes the vertical offset.
// JumpStart is meaningful only while Jumping is true, and OffsetY returns to
// zero exactly when a jump completes.
type Actor struct {
	X      float64
	Width  float64
	Height float64

	OffsetY   float64 // height above the ground line, >= 0
	Jumping   bool
	JumpStart time.Time // simulation clock value when the jump began

	shrinkX float64
	shrinkY float64
}

func newActor(c config.ActorConfig) Actor {
	return Actor{
		X:       c.X,
		Width:   c.Width,
		Height:  c.Height,
		shrinkX: c.HitboxShrinkX,
		shrinkY: c.HitboxShrinkY,
	}
}

// StartJump begins a jump at the given simulation clock value.
// It reports false if the actor is already airborne.
func (a *Actor) StartJump(now time.Time) bool {
	if a.Jumping {
		return false
	}
	a.Jumping = true
	a.JumpStart = now
	return true
}

// Advance updates the vertical offset from the jump arc. Called once per
// fixed step, so a jump clears in at most one step after its duration ends.
func (a *Actor) Advance(now time.Time, duration time.Duration, maxHeight float64) {
	if !a.Jumping {
		return
	}
	offset, finished := JumpOffset(a.JumpStart, now, duration, maxHeight)
	if finished {
		a.Jumping = false
		a.OffsetY = 0
		return
	}
	a.OffsetY = offset
}

// Hitbox returns the actor's collision box, standing on (or above) the
// ground line, shrunk by the configured factors.
func (a Actor) Hitbox(groundY float64) Box {
	return NewBox(a.X, groundY-a.Height-a.OffsetY, a.Width, a.Height).Shrink(a.shrinkX, a.shrinkY)
}
