package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-combat/internal/core"
)

func TestCanvasProjection(t *testing.T) {
	screen := core.NewScreen(32, 32)
	c := NewCanvas(screen, nil, 256, 256)
	c.SetCamera(0, 128)

	c.Text("HI", core.Font3x5, 0, 128, core.ColorPurple)
	if got := screen.GetCell(16, 16); got.Rune != 'H' || got.Color != core.ColorPurple {
		t.Errorf("cell (16,16) = %+v, expected purple H", got)
	}

	// World y grows upward, screen rows grow downward
	c.Text("X", core.Font3x5, 0, 168, core.ColorRed)
	if got := screen.Get(16, 11); got != 'X' {
		t.Errorf("cell (16,11) = %q, expected X", got)
	}
}

func TestCanvasSmallShapesStayVisible(t *testing.T) {
	screen := core.NewScreen(32, 32)
	c := NewCanvas(screen, nil, 256, 256)

	c.CircleFilled(0, 0, 1, core.ColorWhite)
	if got := screen.GetCell(16, 16); got.Rune != fillRune {
		t.Errorf("filled circle center = %q, expected %q", got.Rune, fillRune)
	}

	c.Circle(40, 0, 2, core.ColorRed)
	if got := screen.GetCell(21, 16); got.Rune != ringRune || got.Color != core.ColorRed {
		t.Errorf("ring = %+v, expected red %q", got, ringRune)
	}
}

func TestCanvasLine(t *testing.T) {
	screen := core.NewScreen(32, 32)
	c := NewCanvas(screen, nil, 256, 256)
	c.SetCamera(0, 128)

	c.Line(0, 128, 0, 168, core.ColorYellow)
	for row := 11; row <= 16; row++ {
		if got := screen.Get(16, row); got != lineRune {
			t.Errorf("row %d = %q, expected line", row, got)
		}
	}
	if got := screen.Get(16, 10); got != ' ' {
		t.Errorf("row 10 = %q, expected blank past the end", got)
	}
}

func TestCanvasSprite(t *testing.T) {
	screen := core.NewScreen(32, 32)
	bank := core.NewSpriteBank(core.Sprite{ID: "ship", Width: 16, Height: 16, Art: []string{"AB", "CD"}, Color: core.ColorBlue})
	c := NewCanvas(screen, bank, 256, 256)
	c.SetCamera(0, 128)

	c.Sprite("ship", -8, 120, false)
	want := map[[2]int]rune{{15, 15}: 'A', {16, 15}: 'B', {15, 16}: 'C', {16, 16}: 'D'}
	for pos, r := range want {
		if got := screen.GetCell(pos[0], pos[1]); got.Rune != r || got.Color != core.ColorBlue {
			t.Errorf("cell %v = %+v, expected blue %q", pos, got, r)
		}
	}

	screen.Clear()
	c.Sprite("ship", -8, 120, true)
	if got := screen.Get(15, 15); got != 'B' {
		t.Errorf("flipped cell = %q, expected B", got)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(20, 3)
	screen.SetBackground(core.ColorTeal)
	drawPaused(screen)

	out := RenderScreen(screen)
	if !strings.Contains(out, "PAUSED") {
		t.Errorf("RenderScreen() lost the pause label:\n%s", out)
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("rows = %d, expected 3", n+1)
	}
}

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ActionUp},
		{"s", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, core.ActionDown},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestHoldTracker(t *testing.T) {
	h := NewHoldTracker(300 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionRight, t0)
	if !h.Frame(t0.Add(100 * time.Millisecond)).Has(core.ActionRight) {
		t.Error("key released inside the hold window")
	}
	if h.Frame(t0.Add(400 * time.Millisecond)).Has(core.ActionRight) {
		t.Error("key still held after the hold window")
	}

	h.Press(core.ActionRight, t0)
	h.Press(core.ActionLeft, t0.Add(10*time.Millisecond))
	f := h.Frame(t0.Add(20 * time.Millisecond))
	if f.Has(core.ActionRight) || !f.Has(core.ActionLeft) {
		t.Errorf("pressing left should release right, got %v", f.Actions)
	}

	h.Press(core.ActionUp, t0)
	h.Reset()
	if h.Frame(t0).Has(core.ActionUp) {
		t.Error("Reset() kept a held key")
	}
}

// stubGame records what the host feeds it.
type stubGame struct {
	inputs []core.InputFrame
	deltas []float64
	quitOn int
	scene  string
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) error { return nil }
func (g *stubGame) Render(dst core.Renderer) { dst.Text("stub", core.Font3x5, 0, 0, core.ColorWhite) }
func (g *stubGame) State() core.GameState { return core.GameState{Scene: g.scene} }

func (g *stubGame) Step(in core.InputFrame, dt float64) core.StepResult {
	g.inputs = append(g.inputs, in)
	g.deltas = append(g.deltas, dt)
	return core.StepResult{State: g.State(), Quit: len(g.inputs) == g.quitOn}
}

func TestModelTickFeedsHeldKeys(t *testing.T) {
	game := &stubGame{scene: "game"}
	m, err := NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 30, Seed: 1}, nil)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	clock := time.Unix(50, 0)
	m.now = func() time.Time { return clock }

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, _ = next.Update(TickMsg(clock))
	clock = clock.Add(50 * time.Millisecond)
	next, _ = next.Update(TickMsg(clock))
	clock = clock.Add(2 * time.Second)
	next, _ = next.Update(TickMsg(clock))

	if len(game.inputs) != 3 {
		t.Fatalf("steps = %d, expected 3", len(game.inputs))
	}
	if !game.inputs[0].Has(core.ActionLeft) || !game.inputs[0].Has(core.ActionConfirm) {
		t.Errorf("first frame = %v, expected left and confirm", game.inputs[0].Actions)
	}
	if !game.inputs[1].Has(core.ActionLeft) || game.inputs[1].Has(core.ActionConfirm) {
		t.Errorf("second frame = %v, expected left held and confirm consumed", game.inputs[1].Actions)
	}
	if game.inputs[2].Has(core.ActionLeft) {
		t.Error("left still held two seconds after the last press")
	}

	if game.deltas[0] != 1.0/30 {
		t.Errorf("first delta = %v, expected the frame delta", game.deltas[0])
	}
	if game.deltas[1] < 0.0499 || game.deltas[1] > 0.0501 {
		t.Errorf("second delta = %v, expected 0.05", game.deltas[1])
	}
	if game.deltas[2] != MaxDelta {
		t.Errorf("third delta = %v, expected the clamp %v", game.deltas[2], MaxDelta)
	}

	if view := next.View(); !strings.Contains(view, "stub") {
		t.Errorf("View() does not contain the game frame:\n%s", view)
	}
}

func TestModelQuitsWhenGameEnds(t *testing.T) {
	game := &stubGame{scene: "game", quitOn: 1}
	m, err := NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1}, nil)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	next, cmd := m.Update(TickMsg(time.Unix(1, 0)))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if next.View() != "" {
		t.Error("View() should be empty once quitting")
	}
}

func TestModelResize(t *testing.T) {
	game := &stubGame{scene: "game"}
	m, err := NewModel(game, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1}, nil)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	mm := next.(Model)
	if mm.screen.Width() != 100 || mm.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", mm.screen.Width(), mm.screen.Height())
	}

	next, _ = mm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if h := next.(Model).screen.Height(); h != 26 {
		t.Errorf("screen height with full help = %d, expected 26", h)
	}
}
