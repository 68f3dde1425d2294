package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vkoval/duorun/internal/config"
	"github.com/vkoval/duorun/internal/sim"
	"github.com/vkoval/duorun/internal/storage"
)

// hudRows is the number of terminal rows reserved around the playfield:
// the status bar above and the help bar below.
const hudRows = 2

// uiBridge is the render/UI collaborator handed to the scheduler. It records
// the latest snapshot and the end-of-run notification for the model to pick
// up after driving a frame.
type uiBridge struct {
	snap       sim.Snapshot
	hasSnap    bool
	ended      bool
	finalScore int
}

func (b *uiBridge) TickDone(s sim.Snapshot) {
	b.snap = s
	b.hasSnap = true
}

func (b *uiBridge) RunEnded(score int) {
	b.ended = true
	b.finalScore = score
}

var _ sim.Listener = (*uiBridge)(nil)

// Options configures the host surface.
type Options struct {
	Width  int // terminal width in cells
	Height int // terminal height in cells
	FPS    int // host frame rate (display cadence, not the simulation step)
	Logger *log.Logger
}

// Model is the Bubble Tea model hosting one game session.
type Model struct {
	cfg    config.Config
	sched  *sim.Scheduler
	driver *frameDriver
	bridge *uiBridge
	keys   KeyMap
	help   help.Model
	screen *Screen
	store  *storage.Store
	logger *log.Logger
	fps    int

	highScore int
	topSpeed  float64
	saved     bool
	quitting  bool
}

// NewModel creates a model for the given configuration. The store may be nil,
// in which case scores are simply not persisted.
func NewModel(cfg config.Config, store *storage.Store, opts Options) Model {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "duorun"})
	}

	driver := &frameDriver{}
	bridge := &uiBridge{}

	highScore := 0
	if store != nil {
		hs, err := store.HighScore()
		if err != nil {
			// Best-effort feature: a broken score database never blocks play.
			logger.Warn("could not load high score", "error", err)
		} else {
			highScore = hs
		}
	}

	return Model{
		cfg:       cfg,
		sched:     sim.New(cfg, driver.Request, bridge),
		driver:    driver,
		bridge:    bridge,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		screen:    NewScreen(opts.Width, opts.Height-hudRows),
		store:     store,
		logger:    logger,
		fps:       opts.FPS,
		highScore: highScore,
	}
}

// Init starts the host frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-hudRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey maps a key press to an action token and dispatches it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	action, ok := m.keys.MapKey(msg, m.sched.Phase())
	if !ok {
		return m, nil
	}

	if action == sim.ActionStart {
		// Fresh session: clear the previous run's bookkeeping.
		m.bridge.ended = false
		m.bridge.hasSnap = false
		m.saved = false
		m.topSpeed = 0
	}
	m.sched.Dispatch(action, time.Now())
	return m, nil
}

// handleFrame fires the pending simulation callback and processes results.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	m.driver.Fire(now)

	if m.bridge.hasSnap && m.bridge.snap.Speed > m.topSpeed {
		m.topSpeed = m.bridge.snap.Speed
	}

	if m.bridge.ended && !m.saved {
		m.saved = true
		if m.bridge.finalScore > m.highScore {
			m.highScore = m.bridge.finalScore
		}
		m.saveRun()
	}

	return m, tickCmd(m.fps)
}

// saveRun persists the finished session. Failures are logged and swallowed;
// persistence is best-effort and never interrupts gameplay.
func (m *Model) saveRun() {
	if m.store == nil || m.bridge.finalScore <= 0 {
		return
	}
	run := storage.Run{
		Score:    m.bridge.finalScore,
		Duration: m.bridge.snap.Elapsed,
		TopSpeed: m.topSpeed,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "score", run.Score, "error", err)
	}
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.sched.Snapshot()
	if m.bridge.hasSnap {
		snap = m.bridge.snap
	}

	drawWorld(m.screen, m.cfg, snap)

	switch snap.Phase {
	case sim.PhaseInitial:
		drawCenteredMessage(m.screen, "DUO RUN", "Press Space to start")
	case sim.PhasePaused:
		drawCenteredMessage(m.screen, "PAUSED", "Press P to resume")
	case sim.PhaseCrashed:
		drawCenteredMessage(m.screen, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Space to restart", snap.Score))
	}

	return renderHUD(m.screen.Width(), snap, m.highScore) + "\n" +
		m.screen.String() + "\n" +
		m.help.View(m.keys)
}

// Run starts the Bubble Tea program hosting one game session.
func Run(cfg config.Config, store *storage.Store, opts Options) error {
	p := tea.NewProgram(
		NewModel(cfg, store, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
