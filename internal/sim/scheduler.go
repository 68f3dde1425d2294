package sim

import (
	"time"

	"github.com/vkoval/duorun/internal/config"
)

// TickSource schedules fn to run at the host's next display frame and
// returns a function that cancels the pending registration. The host decides
// the cadence (terminal tick, display refresh); the scheduler only promises
// to request at most one callback at a time. Tests drive the simulation by
// supplying a manual source and firing callbacks with synthetic timestamps.
type TickSource func(fn func(now time.Time)) (cancel func())

// Listener is the render/UI collaborator. TickDone fires after every tick
// with a read-only snapshot; RunEnded fires exactly once per session when
// the playing phase ends in a crash.
type Listener interface {
	TickDone(s Snapshot)
	RunEnded(finalScore int)
}

// Scheduler owns the simulation state and advances it in fixed steps,
// decoupled from the host's frame rate by a time accumulator. It is not safe
// for concurrent use: Dispatch and the tick callbacks must run on the same
// goroutine, which is exactly what a callback-driven host provides.
type Scheduler struct {
	cfg      config.Config
	state    State
	source   TickSource
	listener Listener

	fixedStep time.Duration
	pending   func() // cancels the one outstanding tick registration, if any
}

// New creates a scheduler in the Initial phase. The listener may be nil.
func New(cfg config.Config, source TickSource, listener Listener) *Scheduler {
	s := &Scheduler{
		cfg:       cfg,
		source:    source,
		listener:  listener,
		fixedStep: cfg.Timing.FixedStep(),
	}
	s.state.Reset(cfg, time.Time{})
	return s
}

// Phase returns the current lifecycle phase.
func (s *Scheduler) Phase() Phase {
	return s.state.Phase
}

// Snapshot returns a read-only copy of the observable session state.
func (s *Scheduler) Snapshot() Snapshot {
	return s.state.snapshot()
}

// Dispatch routes an action token into the state machine. Pairs not listed
// below are deliberate no-ops: asynchronous input can arrive in any phase and
// that is normal, not an error.
//
//	Initial/Crashed + Start  -> reset, enter Playing, start the tick loop
//	Playing + Jump           -> begin a player jump unless already airborne
//	Playing + Pause          -> cancel the pending tick, freeze state
//	Paused + Resume          -> re-stamp the time reference, resume the loop
func (s *Scheduler) Dispatch(a Action, now time.Time) {
	switch {
	case a == ActionStart && (s.state.Phase == PhaseInitial || s.state.Phase == PhaseCrashed):
		s.state.Reset(s.cfg, now)
		s.state.Phase = PhasePlaying
		s.schedule()

	case a == ActionJump && s.state.Phase == PhasePlaying:
		s.state.Player.StartJump(s.state.Clock)

	case a == ActionPause && s.state.Phase == PhasePlaying:
		s.cancelPending()
		s.state.Phase = PhasePaused

	case a == ActionResume && s.state.Phase == PhasePaused:
		// Re-stamp the delta reference so the paused wall time does not
		// arrive as one huge first delta.
		s.state.LastTick = now
		s.state.Phase = PhasePlaying
		s.schedule()
	}
}

// schedule requests the next tick callback, replacing any pending one.
func (s *Scheduler) schedule() {
	s.cancelPending()
	s.pending = s.source(s.tick)
}

func (s *Scheduler) cancelPending() {
	if s.pending != nil {
		s.pending()
		s.pending = nil
	}
}

// tick runs once per host frame while Playing. It consumes accumulated real
// time in fixed steps, bounded by the frame-skip cap, recomputes the
// continuous score, checks collisions and reschedules itself.
func (s *Scheduler) tick(now time.Time) {
	s.pending = nil
	st := &s.state
	if st.Phase != PhasePlaying {
		// A cancelled registration must never advance the simulation.
		return
	}

	delta := now.Sub(st.LastTick)
	if delta < 0 {
		delta = 0
	}
	st.LastTick = now
	st.Accumulated += delta

	steps := 0
	for st.Accumulated >= s.fixedStep && steps < s.cfg.Timing.MaxFrameSkip {
		s.advanceStep()
		st.Accumulated -= s.fixedStep
		steps++
	}
	if steps >= s.cfg.Timing.MaxFrameSkip {
		// Frame-skip cap hit after a stall: drop the remaining backlog
		// instead of spending every future frame catching up.
		st.Accumulated = 0
	}

	// Score follows real elapsed time and current speed, independent of the
	// stepped advancement, and so stays smooth even when steps are dropped.
	st.Distance += st.Speed * delta.Seconds()
	if score := st.BonusScore + int(st.Distance*s.cfg.Scoring.DistanceRate); score > st.Score {
		st.Score = score
	}

	if s.collided() {
		st.Phase = PhaseCrashed
		if s.listener != nil {
			s.listener.TickDone(st.snapshot())
			s.listener.RunEnded(st.Score)
		}
		return
	}

	if s.listener != nil {
		s.listener.TickDone(st.snapshot())
	}
	s.schedule()
}

// advanceStep advances the simulation by exactly one fixed step. The obstacle
// and the speed ramp move before the companion heuristic so the heuristic
// sees up-to-date positions and speed.
func (s *Scheduler) advanceStep() {
	st := &s.state
	st.Clock = st.Clock.Add(s.fixedStep)
	dt := s.fixedStep.Seconds()

	if st.Obstacle.Advance(st.Speed * dt) {
		st.BonusScore += s.cfg.Obstacle.BonusPoints
	}

	for s.cfg.Physics.SpeedIncrement > 0 && !st.Clock.Before(st.NextRampAt) {
		st.Speed += s.cfg.Physics.SpeedIncrement
		if st.Speed > s.cfg.Physics.MaxSpeed {
			st.Speed = s.cfg.Physics.MaxSpeed
		}
		st.NextRampAt = st.NextRampAt.Add(s.cfg.Physics.SpeedInterval())
	}

	jumpDur := s.cfg.Physics.JumpDuration()
	jumpHeight := s.cfg.Physics.JumpHeight

	st.Player.Advance(st.Clock, jumpDur, jumpHeight)

	if !st.Companion.Jumping &&
		shouldAutoJump(st.Companion.X, st.Obstacle.X, st.Speed, jumpDur, s.cfg.Companion.JumpLeadFactor) {
		st.Companion.StartJump(st.Clock)
	}
	st.Companion.Advance(st.Clock, jumpDur, jumpHeight)
}

// collided tests both actors against the obstacle. Checks are suppressed for
// the configured grace period after session start so actors still settling
// into position cannot trigger an instant game over.
func (s *Scheduler) collided() bool {
	st := &s.state
	if st.Elapsed() < s.cfg.Timing.GracePeriod() {
		return false
	}
	groundY := s.cfg.World.GroundY
	obstacle := st.Obstacle.Hitbox(groundY)
	return st.Player.Hitbox(groundY).Overlaps(obstacle) ||
		st.Companion.Hitbox(groundY).Overlaps(obstacle)
}
