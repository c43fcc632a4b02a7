package skycombat

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/sky-combat/internal/core"
	"github.com/vovakirdan/sky-combat/internal/registry"
)

func newTestArcade(t *testing.T, seed int64) *Arcade {
	t.Helper()
	a := New()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	if err := a.Reset(cfg); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	return a
}

// strafe alternates left and right every half second of frames.
func strafe(frame int) core.InputFrame {
	if (frame/30)%2 == 0 {
		return core.NewInputFrame(core.ActionLeft)
	}
	return core.NewInputFrame(core.ActionRight)
}

func TestArcadeDeterminism(t *testing.T) {
	a1 := newTestArcade(t, 12345)
	a2 := newTestArcade(t, 12345)

	for i := 0; i < 600; i++ {
		r1 := a1.Step(strafe(i), 1.0/60)
		r2 := a2.Step(strafe(i), 1.0/60)

		if r1 != r2 {
			t.Fatalf("frame %d: states differ: %+v vs %+v", i, r1, r2)
		}
		if !reflect.DeepEqual(a1.frame.Commands(), a2.frame.Commands()) {
			t.Fatalf("frame %d: draw commands differ", i)
		}
	}
}

func TestArcadeState(t *testing.T) {
	a := newTestArcade(t, 1)

	res := a.Step(core.NewInputFrame(), 1.0/60)
	if res.Quit {
		t.Fatal("Quit = true on a normal frame")
	}
	st := res.State
	if st.Scene != SceneGame || st.Lives != 3 || st.GameOver || st.Paused {
		t.Errorf("State() = %+v", st)
	}
	if a.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", a.Frames())
	}
}

func TestArcadePauseIsEdgeTriggered(t *testing.T) {
	a := newTestArcade(t, 1)
	pause := core.NewInputFrame(core.ActionPause)

	a.Step(pause, 0.1)
	if !a.State().Paused {
		t.Fatal("Paused = false after pressing pause")
	}
	a.Step(pause, 0.1)
	if !a.State().Paused {
		t.Fatal("holding pause toggled it again")
	}
	frames := a.Frames()
	a.Step(core.NewInputFrame(), 0.1)
	if a.Frames() != frames {
		t.Error("simulation advanced while paused")
	}

	a.Step(pause, 0.1)
	if a.State().Paused {
		t.Error("Paused = true after pressing pause again")
	}
}

func TestArcadeQuitWhilePaused(t *testing.T) {
	a := newTestArcade(t, 1)
	a.Step(core.NewInputFrame(core.ActionPause), 0.1)

	res := a.Step(core.NewInputFrame(core.ActionQuit), 0.1)
	if !res.Quit {
		t.Error("Quit = false with quit held while paused")
	}
}

func TestArcadeRenderReplaysFrame(t *testing.T) {
	a := newTestArcade(t, 1)
	a.Step(core.NewInputFrame(), 0.1)

	dst := core.NewDrawList()
	a.Render(dst)

	if dst.Background() != core.ColorTeal {
		t.Errorf("background = %v, expected teal", dst.Background())
	}
	if !reflect.DeepEqual(dst.Commands(), a.frame.Commands()) {
		t.Error("Render() did not replay the last frame")
	}
	if dst.Count(core.DrawText) != 2 {
		t.Errorf("texts = %d, expected the HUD", dst.Count(core.DrawText))
	}
}

func TestArcadeStepBeforeReset(t *testing.T) {
	a := New()
	if res := a.Step(core.NewInputFrame(), 0.1); !res.Quit {
		t.Error("Step() before Reset should ask the host to quit")
	}
}

func TestArcadeRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("%q not registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "Sky Combat" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	defer SetDifficultyPreset("")

	SetDifficultyPreset("hard")
	a := newTestArcade(t, 1)
	if lives := a.Step(core.NewInputFrame(), 0.01).State.Lives; lives != 2 {
		t.Errorf("lives on hard = %d, expected 2", lives)
	}

	SetDifficultyPreset("bogus")
	if difficultyPreset != "" {
		t.Errorf("unknown preset kept as %q", difficultyPreset)
	}
}
