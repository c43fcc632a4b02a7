package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/sky-combat/internal/core"
	"github.com/vovakirdan/sky-combat/internal/registry"
)

// MaxDeltaTime caps the wall time fed into one frame.
const MaxDeltaTime = 0.1

// Scale is the number of pixels per world unit.
const Scale = 2

// keyBindings maps logical actions to physical keys.
var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionConfirm: {ebiten.KeyEnter},
	core.ActionQuit:    {ebiten.KeyEscape},
	core.ActionPause:   {ebiten.KeyP},
}

// pollInput returns the key-down state of every bound action.
func pollInput(pressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for action, keys := range keyBindings {
		for _, k := range keys {
			if pressed(k) {
				in.Set(action)
				break
			}
		}
	}
	return in
}

// Viewport is implemented by games that describe their world size and sprites.
type Viewport interface {
	Viewport() (w, h int)
	Sprites() *core.SpriteBank
}

// App adapts a registry.Game to ebiten.Game.
type App struct {
	game     registry.Game
	renderer *Renderer
	logger   *log.Logger
	lastTime time.Time
	state    core.GameState
}

// NewApp resets game and prepares a renderer sized to its viewport.
func NewApp(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}

	viewW, viewH := cfg.ScreenW, cfg.ScreenH
	var bank *core.SpriteBank
	if vp, ok := game.(Viewport); ok {
		viewW, viewH = vp.Viewport()
		bank = vp.Sprites()
	}

	logger.Info("window host started", "game", game.ID(), "seed", cfg.Seed)
	return &App{
		game:     game,
		renderer: NewRenderer(bank, viewW, viewH, Scale),
		logger:   logger,
		lastTime: time.Now(),
		state:    game.State(),
	}, nil
}

// Update runs one simulation frame with the wall time since the last one.
func (a *App) Update() error {
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	if dt > MaxDeltaTime {
		dt = MaxDeltaTime
	}
	a.lastTime = now

	result := a.game.Step(pollInput(ebiten.IsKeyPressed), dt)
	if result.State.Scene != a.state.Scene {
		a.logger.Debug("scene", "name", result.State.Scene, "score", result.State.Score)
	}
	a.state = result.State

	if result.Quit {
		a.logger.Info("game ended", "score", a.state.Score)
		return ebiten.Termination
	}
	return nil
}

// Draw replays the last frame.
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Begin(screen)
	a.game.Render(a.renderer)
}

// Layout returns the fixed logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.renderer.Size()
}

// State returns the last game state seen by the host.
func (a *App) State() core.GameState {
	return a.state
}

// Run opens a window and plays game until it quits or the window closes.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	app, err := NewApp(game, cfg, logger)
	if err != nil {
		return err
	}

	w, h := app.renderer.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	if tps := cfg.TickRate; tps > 0 {
		ebiten.SetTPS(tps)
	}

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	fmt.Printf("Final score: %d\n", app.State().Score)
	return nil
}
