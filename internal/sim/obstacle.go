package sim

import "github.com/vkoval/duorun/internal/config"

// Obstacle is the single recyclable obstacle scrolling in from the right.
// Once it passes fully off-screen on the left it snaps back to its spawn x,
// which always lies beyond the visible right edge.
type Obstacle struct {
	X      float64
	Width  float64
	Height float64

	spawnX  float64
	shrinkX float64
	shrinkY float64
}

func newObstacle(c config.ObstacleConfig, worldWidth float64) Obstacle {
	return Obstacle{
		X:       worldWidth + c.SpawnMargin,
		Width:   c.Width,
		Height:  c.Height,
		spawnX:  worldWidth + c.SpawnMargin,
		shrinkX: c.HitboxShrinkX,
		shrinkY: c.HitboxShrinkY,
	}
}

// Advance moves the obstacle left by dist pixels and reports whether it
// recycled to the spawn position this step.
func (o *Obstacle) Advance(dist float64) (recycled bool) {
	o.X -= dist
	if o.X+o.Width <= 0 {
		o.X = o.spawnX
		return true
	}
	return false
}

// Hitbox returns the obstacle's collision box sitting on the ground line,
// shrunk by the configured factors.
func (o Obstacle) Hitbox(groundY float64) Box {
	return NewBox(o.X, groundY-o.Height, o.Width, o.Height).Shrink(o.shrinkX, o.shrinkY)
}
