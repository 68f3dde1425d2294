// Package tui provides the Bubble Tea host for the Duo Run simulation.
// It maps keys to action tokens, drives the scheduler from terminal frame
// messages and projects the virtual playfield onto the terminal grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a host frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. This is the host's display cadence; the simulation itself
// advances in its own fixed steps.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
