package tui

import "time"

// frameDriver adapts Bubble Tea's frame messages to the scheduler's
// sim.TickSource seam. The scheduler registers at most one callback at a
// time; the driver holds it until the next TickMsg arrives and fires it with
// the message timestamp.
//
// Cancellation is generation-guarded: a cancel func only clears the
// registration it was issued for, so a late cancel can never drop a newer
// registration. After Pause or a crash the registration is gone, and a
// TickMsg already in flight finds nothing to fire.
type frameDriver struct {
	fn  func(now time.Time)
	gen int
}

// Request implements sim.TickSource.
func (d *frameDriver) Request(fn func(now time.Time)) (cancel func()) {
	d.gen++
	d.fn = fn
	gen := d.gen
	return func() {
		if d.gen == gen {
			d.fn = nil
		}
	}
}

// Fire runs the pending callback, if any, with the given timestamp.
func (d *frameDriver) Fire(now time.Time) {
	fn := d.fn
	d.fn = nil
	if fn != nil {
		fn(now)
	}
}

// Pending reports whether a callback is waiting for the next frame.
func (d *frameDriver) Pending() bool {
	return d.fn != nil
}
