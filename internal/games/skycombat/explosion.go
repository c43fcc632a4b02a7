package skycombat

import (
	"github.com/vovakirdan/sky-combat/internal/config"
	"github.com/vovakirdan/sky-combat/internal/core"
)

// Explosion is a short-lived burst drawn where an enemy died.
type Explosion struct {
	cfg       config.ExplosionConfig
	remaining float64
	x, y      int
	rng       *core.Rand
}

// NewExplosion creates an explosion at (x, y). Its jitter is seeded from
// the coordinates, so the same spot always produces the same burst.
func NewExplosion(cfg config.ExplosionConfig, x, y int) *Explosion {
	return &Explosion{
		cfg:       cfg,
		remaining: cfg.Lifetime,
		x:         x,
		y:         y,
		rng:       core.NewRand(uint64(int64(x + y))),
	}
}

// Alive reports whether the explosion still has lifetime left.
func (e *Explosion) Alive() bool {
	return e.remaining > 0
}

func (e *Explosion) Update(f *Frame) {
	e.remaining -= f.Scaled()

	j := e.cfg.Jitter
	for i := 0; i < e.cfg.Particles; i++ {
		ox := e.rng.IntRange(-j, j)
		oy := e.rng.IntRange(-j, j)
		color := core.ColorYellow
		if e.rng.Bool() {
			color = core.ColorRed
		}
		f.Draw.CircleFilled(e.x+ox, e.y+oy, e.cfg.Radius, color)
	}
}

func (e *Explosion) X() int { return e.x }

func (e *Explosion) Y() int { return e.y }

func (e *Explosion) ColliderRadius() int { return 0 }

func (e *Explosion) kind() Kind { return KindExplosion }
