package skycombat

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-combat/internal/core"
)

// Director runs the active scene and applies its transitions.
type Director struct {
	current Scene
	draw    core.Renderer
	logger  *log.Logger
	done    bool
}

// NewDirector enters the first scene on draw.
func NewDirector(first Scene, draw core.Renderer, logger *log.Logger) *Director {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	d := &Director{current: first, draw: draw, logger: logger}
	logger.Info("scene enter", "scene", first.Name())
	first.Enter(draw)
	return d
}

// Step runs one frame of the current scene with the given input and wall
// time in seconds. It returns false once the session has ended.
func (d *Director) Step(in core.InputFrame, dt float64) bool {
	if d.done {
		return false
	}

	t := d.current.Update(&Frame{Draw: d.draw, Input: in, Delta: dt, Speed: 1})
	switch {
	case t.IsQuit():
		d.logger.Info("quit", "scene", d.current.Name())
		d.current.Exit()
		d.done = true
		return false
	case t.Next() != nil:
		next := t.Next()
		d.logger.Info("scene change", "from", d.current.Name(), "to", next.Name())
		d.current.Exit()
		d.current = next
		next.Enter(d.draw)
	}
	return true
}

// Current returns the active scene.
func (d *Director) Current() Scene {
	return d.current
}

// Done reports whether a scene asked to quit.
func (d *Director) Done() bool {
	return d.done
}
