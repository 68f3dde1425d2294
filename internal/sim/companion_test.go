package sim

import (
	"testing"
	"time"
)

func TestShouldAutoJump(t *testing.T) {
	// speed 200 px/s, jump 1.2s, lead 0.3: trigger = 240 - 60 = 180 px.
	const (
		companionX = 100.0
		speed      = 200.0
		lead       = 0.3
	)
	duration := 1200 * time.Millisecond

	tests := []struct {
		name      string
		obstacleX float64
		want      bool
	}{
		{"far away", companionX + 500, false},
		{"just outside trigger", companionX + 181, false},
		{"at trigger distance", companionX + 180, true},
		{"inside trigger", companionX + 60, true},
		{"at companion position", companionX, false},
		{"already passed", companionX - 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldAutoJump(companionX, tt.obstacleX, speed, duration, lead)
			if got != tt.want {
				t.Errorf("shouldAutoJump(obstacleX=%f) = %v, want %v", tt.obstacleX, got, tt.want)
			}
		})
	}
}

func TestShouldAutoJumpTriggerScalesWithSpeed(t *testing.T) {
	duration := 1200 * time.Millisecond
	const lead = 0.3

	// At 100 px/s the trigger is 90 px; at 400 px/s it is 360 px.
	if shouldAutoJump(0, 150, 100, duration, lead) {
		t.Error("slow speed should not trigger at 150 px")
	}
	if !shouldAutoJump(0, 150, 400, duration, lead) {
		t.Error("fast speed should trigger at 150 px")
	}
}

func TestShouldAutoJumpDegenerateTrigger(t *testing.T) {
	// Lead correction larger than the jump window leaves no trigger distance.
	if shouldAutoJump(0, 10, 200, 100*time.Millisecond, 2.0) {
		t.Error("non-positive trigger distance should never fire")
	}
}
