package sim

import (
	"math"
	"time"
)

// JumpOffset maps elapsed jump time to a vertical offset above the ground.
// The arc is sin(progress * pi) * maxHeight: zero at both ends, peaking at
// maxHeight halfway through. Being continuous in time, it is correct at any
// frame rate; finished reports whether the full duration has elapsed.
// A non-positive duration finishes immediately with zero offset.
func JumpOffset(start, now time.Time, duration time.Duration, maxHeight float64) (offset float64, finished bool) {
	if duration <= 0 {
		return 0, true
	}
	progress := float64(now.Sub(start)) / float64(duration)
	if progress <= 0 {
		return 0, false
	}
	if progress >= 1 {
		return 0, true
	}
	return math.Sin(progress*math.Pi) * maxHeight, false
}
