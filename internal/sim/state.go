package sim

import (
	"time"

	"github.com/vkoval/duorun/internal/config"
)

// State is the mutable record of one game session. It is exclusively owned
// and mutated by the Scheduler; collaborators only ever see Snapshot copies.
type State struct {
	Phase Phase

	Speed      float64 // px/s, within [start_speed, max_speed]
	Distance   float64 // px travelled, continuous in real time
	BonusScore int     // accumulated obstacle bonuses
	Score      int     // bonus + distance * rate, monotonically non-decreasing

	// Clock is the simulation clock. It advances by exactly one fixed step
	// per simulation step and freezes while paused, so jump arcs, the grace
	// window and the speed ramp never see paused wall time.
	Clock     time.Time
	StartedAt time.Time // Clock value at session start

	LastTick    time.Time     // wall clock of the previous tick callback
	Accumulated time.Duration // real time not yet consumed by fixed steps

	NextRampAt time.Time // Clock value of the next speed increment

	Player    Actor
	Companion Actor
	Obstacle  Obstacle
}

// Reset re-establishes the session start state. Calling it twice with the
// same timestamp yields an identical state to calling it once.
func (st *State) Reset(cfg config.Config, now time.Time) {
	st.Phase = PhaseInitial
	st.Speed = cfg.Physics.StartSpeed
	st.Distance = 0
	st.BonusScore = 0
	st.Score = 0
	st.Clock = now
	st.StartedAt = now
	st.LastTick = now
	st.Accumulated = 0
	st.NextRampAt = now.Add(cfg.Physics.SpeedInterval())
	st.Player = newActor(cfg.Player)
	st.Companion = newActor(cfg.Companion.ActorConfig)
	st.Obstacle = newObstacle(cfg.Obstacle, cfg.World.Width)
}

// Elapsed returns how much simulation time the session has run.
func (st *State) Elapsed() time.Duration {
	return st.Clock.Sub(st.StartedAt)
}

// ActorView is a read-only view of one actor for rendering.
type ActorView struct {
	X       float64
	Width   float64
	Height  float64
	OffsetY float64
	Jumping bool
}

// Snapshot is a read-only copy of the observable session state, handed to
// the render/UI collaborator after each tick.
type Snapshot struct {
	Phase     Phase
	Score     int
	Speed     float64
	Distance  float64
	Elapsed   time.Duration
	Player    ActorView
	Companion ActorView
	ObstacleX float64
	ObstacleW float64
	ObstacleH float64
}

func (st *State) snapshot() Snapshot {
	return Snapshot{
		Phase:     st.Phase,
		Score:     st.Score,
		Speed:     st.Speed,
		Distance:  st.Distance,
		Elapsed:   st.Elapsed(),
		Player:    actorView(st.Player),
		Companion: actorView(st.Companion),
		ObstacleX: st.Obstacle.X,
		ObstacleW: st.Obstacle.Width,
		ObstacleH: st.Obstacle.Height,
	}
}

func actorView(a Actor) ActorView {
	return ActorView{
		X:       a.X,
		Width:   a.Width,
		Height:  a.Height,
		OffsetY: a.OffsetY,
		Jumping: a.Jumping,
	}
}
