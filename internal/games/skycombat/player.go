package skycombat

import (
	"github.com/vovakirdan/sky-combat/internal/config"
	"github.com/vovakirdan/sky-combat/internal/core"
)

// Player is the ship controlled by the user.
type Player struct {
	cfg        config.PlayerConfig
	arena      config.ArenaConfig
	sprite     core.Sprite
	health     int
	x, y       float64
	shootTimer float64
}

// NewPlayer creates a fully healed player at the configured start position.
func NewPlayer(cfg config.PlayerConfig, arena config.ArenaConfig, sprite core.Sprite) *Player {
	return &Player{
		cfg:        cfg,
		arena:      arena,
		sprite:     sprite,
		health:     cfg.Health,
		x:          cfg.StartX,
		y:          cfg.StartY,
		shootTimer: cfg.ShootInterval,
	}
}

// Damage removes one point of health, never going below zero.
func (p *Player) Damage() {
	if p.health > 0 {
		p.health--
	}
}

// Health returns the remaining health.
func (p *Player) Health() int {
	return p.health
}

// Alive reports whether the player has health left.
func (p *Player) Alive() bool {
	return p.health > 0
}

// CanShoot reports whether the shoot cooldown has expired.
func (p *Player) CanShoot() bool {
	return p.shootTimer < 0
}

// ResetShootInterval restarts the shoot cooldown.
func (p *Player) ResetShootInterval() {
	p.shootTimer = p.cfg.ShootInterval
}

// Update moves the player from the held keys and draws the ship.
// On each axis the positive direction wins when both keys are held.
func (p *Player) Update(f *Frame) {
	step := f.Scaled()
	p.shootTimer -= step

	move := p.cfg.Speed * step
	if f.Input.Has(core.ActionRight) {
		p.x += move
	} else if f.Input.Has(core.ActionLeft) {
		p.x -= move
	}
	half := p.arena.HalfWidth()
	p.x = core.ClampF(p.x, -half, half)

	if f.Input.Has(core.ActionUp) {
		p.y += move
	} else if f.Input.Has(core.ActionDown) {
		p.y -= move
	}
	p.y = core.ClampF(p.y, 0, float64(p.arena.Height))

	x, y := p.X(), p.Y()
	drawSprite(f.Draw, p.sprite, x, y)

	// Thruster flames below the hull
	base := y - (p.sprite.Height/2 + 1)
	f.Draw.Line(x-2, base, x-2, base-f.Rand.IntRange(0, 5), core.ColorRed)
	f.Draw.Line(x-1, base, x-1, base-f.Rand.IntRange(2, 7), core.ColorYellow)
	f.Draw.Line(x, base, x, base-f.Rand.IntRange(0, 5), core.ColorRed)
}

func (p *Player) X() int { return int(p.x) }

func (p *Player) Y() int { return int(p.y) }

func (p *Player) ColliderRadius() int { return p.cfg.Radius }

func (p *Player) kind() Kind { return KindPlayer }
