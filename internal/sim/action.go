// Package sim implements the Duo Run simulation core: a fixed-timestep
// scheduler advancing a player, a companion and one recyclable obstacle,
// with sine-arc jump physics, shrunk-AABB collision detection, a periodic
// speed ramp and a predictive companion auto-jump.
//
// The package is host-agnostic. It never reads raw input, wall clocks or
// timers on its own: action tokens and timestamps are routed in by the host,
// and tick callbacks are requested through an injected TickSource, so the
// whole core can be driven with synthetic time in tests.
package sim

// Action is a semantic control token routed in by the input collaborator.
// Mapping raw input (keys, taps) to tokens is entirely the host's job.
type Action int

const (
	ActionStart Action = iota
	ActionJump
	ActionPause
	ActionResume
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionStart:
		return "Start"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionResume:
		return "Resume"
	default:
		return "Unknown"
	}
}

// Phase is the scheduler's lifecycle state.
//
//	Initial -> Playing <-> Paused
//	Playing -> Crashed -> Playing (via Start)
type Phase int

const (
	PhaseInitial Phase = iota
	PhasePlaying
	PhasePaused
	PhaseCrashed
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "Initial"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseCrashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}
