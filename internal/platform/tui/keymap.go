package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkoval/duorun/internal/sim"
)

// KeyMap defines the key bindings for a game session. It is the input
// collaborator: raw key presses are translated here into action tokens, and
// the scheduler never sees a key.
type KeyMap struct {
	Jump  key.Binding
	Pause key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump/start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause/resume"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Jump, k.Pause, k.Quit}}
}

// MapKey translates a key press into an action token for the current phase.
// The same physical key means different things in different phases: the jump
// key starts a session from Initial or Crashed, and the pause key toggles.
func (k KeyMap) MapKey(msg tea.KeyMsg, phase sim.Phase) (action sim.Action, ok bool) {
	switch {
	case key.Matches(msg, k.Jump):
		switch phase {
		case sim.PhaseInitial, sim.PhaseCrashed:
			return sim.ActionStart, true
		case sim.PhasePlaying:
			return sim.ActionJump, true
		case sim.PhasePaused:
			return sim.ActionResume, true
		}
	case key.Matches(msg, k.Pause):
		switch phase {
		case sim.PhasePlaying:
			return sim.ActionPause, true
		case sim.PhasePaused:
			return sim.ActionResume, true
		}
	}
	return 0, false
}
