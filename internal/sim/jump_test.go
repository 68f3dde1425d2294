package sim

import (
	"math"
	"testing"
	"time"
)

func TestJumpOffsetEndpoints(t *testing.T) {
	start := time.Unix(0, 0)
	duration := 1200 * time.Millisecond
	height := 120.0

	offset, finished := JumpOffset(start, start, duration, height)
	if offset != 0 {
		t.Errorf("offset at start should be 0, got %f", offset)
	}
	if finished {
		t.Error("jump should not be finished at start")
	}

	offset, finished = JumpOffset(start, start.Add(duration), duration, height)
	if offset != 0 {
		t.Errorf("offset at end should be 0, got %f", offset)
	}
	if !finished {
		t.Error("jump should be finished at full duration")
	}
}

func TestJumpOffsetPeak(t *testing.T) {
	start := time.Unix(0, 0)
	duration := 1200 * time.Millisecond
	height := 120.0

	offset, finished := JumpOffset(start, start.Add(duration/2), duration, height)
	if finished {
		t.Error("jump should not be finished at midpoint")
	}
	if math.Abs(offset-height) > 1e-9 {
		t.Errorf("offset at midpoint should be %f, got %f", height, offset)
	}
}

func TestJumpOffsetRisesThenFalls(t *testing.T) {
	start := time.Unix(0, 0)
	duration := time.Second
	height := 100.0

	prev := 0.0
	for ms := 50; ms <= 500; ms += 50 {
		offset, _ := JumpOffset(start, start.Add(time.Duration(ms)*time.Millisecond), duration, height)
		if offset <= prev {
			t.Fatalf("offset should increase during the first half, got %f after %f at %dms", offset, prev, ms)
		}
		prev = offset
	}
	for ms := 550; ms < 1000; ms += 50 {
		offset, _ := JumpOffset(start, start.Add(time.Duration(ms)*time.Millisecond), duration, height)
		if offset >= prev {
			t.Fatalf("offset should decrease during the second half, got %f after %f at %dms", offset, prev, ms)
		}
		prev = offset
	}
}

func TestJumpOffsetZeroDuration(t *testing.T) {
	start := time.Unix(0, 0)

	for _, d := range []time.Duration{0, -time.Second} {
		offset, finished := JumpOffset(start, start, d, 120)
		if offset != 0 || !finished {
			t.Errorf("duration %v should finish immediately with zero offset, got (%f, %v)", d, offset, finished)
		}
	}
}

func TestJumpOffsetBeforeStart(t *testing.T) {
	start := time.Unix(10, 0)

	offset, finished := JumpOffset(start, start.Add(-time.Second), time.Second, 120)
	if offset != 0 || finished {
		t.Errorf("time before start should report (0, false), got (%f, %v)", offset, finished)
	}
}
