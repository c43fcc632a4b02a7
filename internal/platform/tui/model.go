package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-combat/internal/core"
	"github.com/vovakirdan/sky-combat/internal/registry"
)

// MaxDelta caps the wall time fed into one frame, so a stalled terminal
// does not teleport everything on the next tick.
const MaxDelta = 0.1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

const pauseColor = core.ColorYellow

// Viewport is implemented by games that describe their world size and
// sprites so the host can rasterize them.
type Viewport interface {
	Viewport() (w, h int)
	Sprites() *core.SpriteBank
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	canvas   *Canvas
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	holds    *HoldTracker
	now      func() time.Time
	lastTick time.Time
	state    core.GameState
	logger   *log.Logger
	quitting bool
}

// NewModel resets the game and creates a model for it.
// A nil logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1))
	viewW, viewH := cfg.ScreenW, cfg.ScreenH
	var bank *core.SpriteBank
	if vp, ok := game.(Viewport); ok {
		viewW, viewH = vp.Viewport()
		bank = vp.Sprites()
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	logger.Info("terminal host started", "game", game.ID(), "seed", cfg.Seed, "fps", cfg.TickRate)

	return Model{
		game:   game,
		screen: screen,
		canvas: NewCanvas(screen, bank, viewW, viewH),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		holds:  NewHoldTracker(DefaultHoldWindow),
		now:    time.Now,
		state:  game.State(),
		logger: logger,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records presses; the game sees them on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	}

	m.holds.Press(m.keys.Action(msg), m.now())
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// fitScreen sizes the game screen to the terminal minus the help footer.
func (m *Model) fitScreen() {
	rows := 1
	if m.help.ShowAll {
		rows = 0
		for _, group := range m.keys.FullHelp() {
			rows = max(rows, len(group))
		}
	}
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-rows, 1))
}

// handleTick runs one simulation frame with the wall time since the last tick.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.FrameDelta()
	if !m.lastTick.IsZero() {
		dt = min(t.Sub(m.lastTick).Seconds(), MaxDelta)
	}
	m.lastTick = t

	in := m.holds.Frame(m.now())
	result := m.game.Step(in, dt)

	// Confirm and pause act once per press
	m.holds.Release(core.ActionConfirm)
	m.holds.Release(core.ActionPause)

	if result.State.Scene != m.state.Scene {
		m.holds.Reset()
	}
	m.state = result.State

	if result.Quit {
		m.logger.Info("game ended", "score", m.state.Score)
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// State returns the last game state seen by the host.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Begin()
	m.game.Render(m.canvas)

	if m.state.Paused {
		drawPaused(m.screen)
	}

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// drawPaused draws a centered PAUSED box over the frame.
func drawPaused(s *core.Screen) {
	const label = " PAUSED "
	box := s.Bounds().Centered(len(label)+2, 3)
	s.DrawRect(box, ' ', pauseColor)
	s.DrawBox(box, pauseColor)
	s.DrawText(box.X+1, box.Y+1, label, pauseColor)
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		fmt.Printf("Final score: %d\n", m.State().Score)
	}
	return nil
}
