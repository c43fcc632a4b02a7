package skycombat

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-combat/internal/config"
	"github.com/vovakirdan/sky-combat/internal/core"
	"github.com/vovakirdan/sky-combat/internal/registry"
)

// GameID is the registry identifier of Sky Combat.
const GameID = "skycombat"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives scene and session events
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by new sessions. nil disables logging.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Arcade adapts the scene director to the host-facing registry.Game.
type Arcade struct {
	session   *Session
	director  *Director
	frame     *core.DrawList
	paused    bool
	pauseHeld bool
	frames    int
}

// New creates an unstarted Sky Combat instance. Call Reset before Step.
func New() *Arcade {
	return &Arcade{frame: core.NewDrawList()}
}

// ID returns the unique identifier for this game.
func (a *Arcade) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (a *Arcade) Title() string {
	return "Sky Combat"
}

// Reset loads the configuration and starts a new session on a fresh game.
func (a *Arcade) Reset(rt core.RuntimeConfig) error {
	cfg, err := config.LoadSkyCombat(configPath)
	if err != nil {
		return fmt.Errorf("skycombat: %w", err)
	}
	config.ApplyPreset(&cfg, difficultyPreset)

	bank, err := cfg.SpriteBank()
	if err != nil {
		return fmt.Errorf("skycombat: %w", err)
	}

	session, err := NewSession(cfg, bank, uint64(rt.Seed), logger)
	if err != nil {
		return err
	}

	a.session = session
	a.frame = core.NewDrawList()
	a.director = NewDirector(session.NewGame(), a.frame, logger)
	a.paused = false
	a.pauseHeld = false
	a.frames = 0
	return nil
}

// Step runs one frame. Pause toggles on the press of the pause key, not
// while it is held; a paused game keeps its last frame.
func (a *Arcade) Step(in core.InputFrame, dt float64) core.StepResult {
	if a.director == nil {
		return core.StepResult{Quit: true}
	}

	pause := in.Has(core.ActionPause)
	if pause && !a.pauseHeld && a.director.Current().Name() == SceneGame {
		a.paused = !a.paused
		logger.Debug("pause", "paused", a.paused)
	}
	a.pauseHeld = pause

	if a.paused && !in.Has(core.ActionQuit) {
		return core.StepResult{State: a.State()}
	}

	a.frame.Reset()
	running := a.director.Step(in, dt)
	a.frames++
	if a.director.Current().Name() != SceneGame {
		a.paused = false
	}
	return core.StepResult{State: a.State(), Quit: !running}
}

// Render replays the most recent frame onto dst.
func (a *Arcade) Render(dst core.Renderer) {
	a.frame.Replay(dst)
}

// Frames returns the number of simulated frames since Reset.
func (a *Arcade) Frames() int {
	return a.frames
}

// Director returns the scene director, or nil before Reset.
func (a *Arcade) Director() *Director {
	return a.director
}

// Viewport returns the world size a host should show.
func (a *Arcade) Viewport() (w, h int) {
	if a.session == nil {
		d := config.DefaultSkyCombatConfig().Arena
		return d.Width, d.Height
	}
	arena := a.session.Config().Arena
	return arena.Width, arena.Height
}

// Sprites returns the sprite bank of the current session, or nil before Reset.
func (a *Arcade) Sprites() *core.SpriteBank {
	if a.session == nil {
		return nil
	}
	return a.session.bank
}

// State returns the host-visible summary of the active scene.
func (a *Arcade) State() core.GameState {
	if a.director == nil {
		return core.GameState{}
	}
	st := core.GameState{
		Scene:  a.director.Current().Name(),
		Paused: a.paused,
	}
	switch s := a.director.Current().(type) {
	case *Game:
		st.Score = s.Score()
		st.Lives = s.Lives()
	case *GameOver:
		st.Score = s.Score()
		st.GameOver = true
	}
	return st
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
