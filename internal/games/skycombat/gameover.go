package skycombat

import (
	"strconv"

	"github.com/vovakirdan/sky-combat/internal/core"
)

// SceneGameOver is the name of the final score scene.
const SceneGameOver = "gameover"

// GameOver shows the final score until the player restarts or quits.
type GameOver struct {
	session *Session
	score   uint64
}

// Name implements Scene.
func (g *GameOver) Name() string {
	return SceneGameOver
}

// Score returns the score the session ended with.
func (g *GameOver) Score() uint64 {
	return g.score
}

func (g *GameOver) Enter(r core.Renderer) {
	r.SetBackground(core.ColorWhite)
	r.SetCamera(0, 0)
}

func (g *GameOver) Update(f *Frame) Transition {
	score := strconv.FormatUint(g.score, 10)
	f.Draw.Text("GAME OVER", core.Font3x5, -20, 0, core.ColorRed)
	f.Draw.Text("SCORE:", core.Font3x5, -12, -10, core.ColorRed)
	f.Draw.Text(score, core.Font3x5, -4*(len(score)/2), -20, core.ColorYellow)

	if f.Input.Has(core.ActionConfirm) {
		return SwitchTo(g.session.NewGame())
	}
	if f.Input.Has(core.ActionQuit) {
		return Quit()
	}
	return Stay()
}

func (g *GameOver) Exit() {}
