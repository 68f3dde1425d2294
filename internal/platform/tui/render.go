package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vkoval/duorun/internal/config"
	"github.com/vkoval/duorun/internal/sim"
)

// Visual characters for rendering
const (
	PlayerChar    = '█'
	PlayerHead    = '◆'
	CompanionChar = '▒'
	ObstacleChar  = '▓'
	GroundChar    = '═'
)

var (
	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)
	hudScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Background(lipgloss.Color("236")).
			Bold(true)
	hudDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color("236"))
)

// projection maps virtual playfield pixels onto terminal cells.
type projection struct {
	worldW, worldH   float64
	screenW, screenH int
}

func (p projection) x(v float64) int {
	return int(v * float64(p.screenW) / p.worldW)
}

func (p projection) y(v float64) int {
	return int(v * float64(p.screenH) / p.worldH)
}

// spanCells converts a projected cell range into an extent of at least one
// cell, so small sprites never vanish on narrow terminals.
func spanCells(from, to int) int {
	if to-from < 1 {
		return 1
	}
	return to - from
}

// drawWorld renders a snapshot into the screen buffer.
func drawWorld(dst *Screen, cfg config.Config, snap sim.Snapshot) {
	dst.Clear()

	p := projection{
		worldW:  cfg.World.Width,
		worldH:  cfg.World.Height,
		screenW: dst.Width(),
		screenH: dst.Height(),
	}
	groundRow := p.y(cfg.World.GroundY)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar)

	drawObstacle(dst, p, cfg.World.GroundY, snap)
	drawActor(dst, p, cfg.World.GroundY, snap.Companion, CompanionChar, 0)
	drawActor(dst, p, cfg.World.GroundY, snap.Player, PlayerChar, PlayerHead)
}

// drawActor fills the actor's projected box above the ground line. A head
// rune, if given, marks the leading top corner.
func drawActor(dst *Screen, p projection, groundY float64, a sim.ActorView, body, head rune) {
	top := groundY - a.Height - a.OffsetY
	x := p.x(a.X)
	y := p.y(top)
	w := spanCells(x, p.x(a.X+a.Width))
	h := spanCells(y, p.y(top+a.Height))

	dst.FillRect(x, y, w, h, body)
	if head != 0 {
		dst.Set(x+w-1, y, head)
	}
}

func drawObstacle(dst *Screen, p projection, groundY float64, snap sim.Snapshot) {
	top := groundY - snap.ObstacleH
	x := p.x(snap.ObstacleX)
	y := p.y(top)
	w := spanCells(x, p.x(snap.ObstacleX+snap.ObstacleW))
	h := spanCells(y, p.y(groundY))

	dst.FillRect(x, y, w, h, ObstacleChar)
}

// drawCenteredMessage draws a bordered message box in the middle of the screen.
func drawCenteredMessage(dst *Screen, title, subtitle string) {
	boxW := len([]rune(title))
	if l := len([]rune(subtitle)); l > boxW {
		boxW = l
	}
	boxW += 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

// renderHUD formats the status bar above the playfield.
func renderHUD(width int, snap sim.Snapshot, highScore int) string {
	score := hudScoreStyle.Render(fmt.Sprintf(" Score: %d ", snap.Score))
	best := hudDimStyle.Render(fmt.Sprintf(" Best: %d ", highScore))
	speed := hudDimStyle.Render(fmt.Sprintf(" Speed: %.0f px/s ", snap.Speed))

	bar := lipgloss.JoinHorizontal(lipgloss.Top, score, best, speed)
	return hudStyle.Width(width).Render(bar)
}
