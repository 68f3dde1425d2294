package sim

import "time"

// shouldAutoJump decides, once per step, whether the companion should leave
// the ground now to clear the approaching obstacle.
//
// The naive projection jumps when the obstacle is a full jump's travel away,
// speed * jumpDuration. The sine arc rises slowly near its endpoints, so the
// actor is only usefully airborne for the middle of the jump and the naive
// window is too wide, increasingly so at higher speed. A correction of
// leadFactor * speed is subtracted from the trigger distance; leadFactor is
// an empirical tunable that lives in configuration, not a hidden constant.
func shouldAutoJump(companionX, obstacleX, speed float64, jumpDuration time.Duration, leadFactor float64) bool {
	dist := obstacleX - companionX
	if dist <= 0 {
		return false
	}
	trigger := speed*jumpDuration.Seconds() - leadFactor*speed
	return dist <= trigger
}
