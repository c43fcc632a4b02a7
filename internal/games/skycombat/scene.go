package skycombat

import "github.com/vovakirdan/sky-combat/internal/core"

// Scene is one state of the game's state machine.
type Scene interface {
	Name() string
	// Enter prepares the stage (background, camera) when the scene becomes active.
	Enter(r core.Renderer)
	// Update runs one frame and reports whether the director should move on.
	Update(f *Frame) Transition
	Exit()
}

// Transition is the result of a scene update.
type Transition struct {
	next Scene
	quit bool
}

// Stay keeps the current scene active.
func Stay() Transition {
	return Transition{}
}

// SwitchTo replaces the current scene with next.
func SwitchTo(next Scene) Transition {
	return Transition{next: next}
}

// Quit ends the session.
func Quit() Transition {
	return Transition{quit: true}
}

// Next returns the scene to switch to, or nil.
func (t Transition) Next() Scene {
	return t.next
}

// IsQuit reports whether the session should terminate.
func (t Transition) IsQuit() bool {
	return t.quit
}
