package skycombat

import (
	"github.com/vovakirdan/sky-combat/internal/config"
	"github.com/vovakirdan/sky-combat/internal/core"
)

// drift is the lateral behavior chosen when an enemy spawns.
type drift uint8

const (
	driftLeftToRight drift = iota
	driftRightToLeft
)

// Enemy descends toward the player while drifting sideways.
type Enemy struct {
	cfg        config.EnemyConfig
	sprite     core.Sprite
	rng        *core.Rand
	health     int
	speed      float64
	x, y       float64
	drift      drift
	shootTimer float64
}

// NewEnemy spawns an enemy above the arena at a random horizontal offset
// drawn from its own generator. Enemies spawned left of center drift right
// and vice versa.
func NewEnemy(cfg config.EnemyConfig, arena config.ArenaConfig, speed float64, seed uint64, sprite core.Sprite) *Enemy {
	rng := core.NewRand(seed)
	half := arena.HalfWidth()
	x := rng.FloatRange(-half, half)

	d := driftRightToLeft
	if x < 0 {
		d = driftLeftToRight
	}

	return &Enemy{
		cfg:        cfg,
		sprite:     sprite,
		rng:        rng,
		health:     cfg.Health,
		speed:      speed,
		x:          x,
		y:          float64(arena.Height) + cfg.SpawnAbove,
		drift:      d,
		shootTimer: cfg.ShootInterval,
	}
}

// Damage removes one point of health, never going below zero.
func (e *Enemy) Damage() {
	if e.health > 0 {
		e.health--
	}
}

// Alive reports whether the enemy has health left.
func (e *Enemy) Alive() bool {
	return e.health > 0
}

// CanShoot reports whether the shoot cooldown has expired.
func (e *Enemy) CanShoot() bool {
	return e.shootTimer < 0
}

// ResetShootInterval restarts the shoot cooldown.
func (e *Enemy) ResetShootInterval() {
	e.shootTimer = e.cfg.ShootInterval
}

// Update moves the enemy and draws it with its exhaust.
func (e *Enemy) Update(f *Frame) {
	step := f.Scaled()
	e.shootTimer -= step
	e.y -= e.speed * step

	lateral := e.speed / 2 * step
	switch e.drift {
	case driftLeftToRight:
		e.x += lateral
	case driftRightToLeft:
		e.x -= lateral
	}

	x, y := e.X(), e.Y()
	drawSprite(f.Draw, e.sprite, x, y)

	base := y + e.sprite.Height/2
	f.Draw.Line(x-2, base, x-2, base+e.rng.IntRange(0, 5), core.ColorYellow)
	f.Draw.Line(x-1, base, x-1, base+e.rng.IntRange(2, 7), core.ColorWhite)
	f.Draw.Line(x, base, x, base+e.rng.IntRange(0, 5), core.ColorYellow)
}

func (e *Enemy) X() int { return int(e.x) }

func (e *Enemy) Y() int { return int(e.y) }

func (e *Enemy) ColliderRadius() int { return e.cfg.Radius }

func (e *Enemy) kind() Kind { return KindEnemy }
