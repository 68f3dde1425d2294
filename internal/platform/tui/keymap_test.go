package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkoval/duorun/internal/sim"
)

func spaceKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}
}

func pauseKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}
}

func TestMapKeyJumpKeyIsPhaseAware(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name  string
		phase sim.Phase
		want  sim.Action
	}{
		{"initial starts", sim.PhaseInitial, sim.ActionStart},
		{"crashed restarts", sim.PhaseCrashed, sim.ActionStart},
		{"playing jumps", sim.PhasePlaying, sim.ActionJump},
		{"paused resumes", sim.PhasePaused, sim.ActionResume},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.MapKey(spaceKey(), tt.phase)
			if !ok {
				t.Fatal("space should always map to an action")
			}
			if got != tt.want {
				t.Errorf("MapKey(space, %v) = %v, want %v", tt.phase, got, tt.want)
			}
		})
	}
}

func TestMapKeyPauseToggles(t *testing.T) {
	km := DefaultKeyMap()

	if got, ok := km.MapKey(pauseKey(), sim.PhasePlaying); !ok || got != sim.ActionPause {
		t.Errorf("MapKey(p, Playing) = %v, %v; want Pause", got, ok)
	}
	if got, ok := km.MapKey(pauseKey(), sim.PhasePaused); !ok || got != sim.ActionResume {
		t.Errorf("MapKey(p, Paused) = %v, %v; want Resume", got, ok)
	}
}

func TestMapKeyIgnoresUnboundKeys(t *testing.T) {
	km := DefaultKeyMap()

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	if _, ok := km.MapKey(msg, sim.PhasePlaying); ok {
		t.Error("unbound key should not map to an action")
	}
}

func TestMapKeyPauseOutsidePlayIsIgnored(t *testing.T) {
	km := DefaultKeyMap()

	for _, phase := range []sim.Phase{sim.PhaseInitial, sim.PhaseCrashed} {
		if got, ok := km.MapKey(pauseKey(), phase); ok {
			t.Errorf("MapKey(p, %v) = %v; want no action", phase, got)
		}
	}
}
