package skycombat

import "github.com/vovakirdan/sky-combat/internal/core"

const projectileRadius = 2

// Projectile travels in a straight line at a fixed angle.
// It has no lifetime of its own; the game drops it by distance.
type Projectile struct {
	speed float64
	angle float64 // Degrees
	x, y  float64
	color core.Color
}

// NewProjectile creates a projectile at (x, y) heading at angle degrees.
func NewProjectile(speed, angle float64, x, y int, color core.Color) *Projectile {
	return &Projectile{
		speed: speed,
		angle: angle,
		x:     float64(x),
		y:     float64(y),
		color: color,
	}
}

// Update advances the projectile and draws a ring with a white core.
func (p *Projectile) Update(f *Frame) {
	dx, dy := core.Heading(p.angle)
	step := p.speed * f.Scaled()
	p.x += dx * step
	p.y += dy * step

	f.Draw.Circle(p.X(), p.Y(), projectileRadius, p.color)
	f.Draw.CircleFilled(p.X(), p.Y(), 1, core.ColorWhite)
}

func (p *Projectile) X() int { return int(p.x) }

func (p *Projectile) Y() int { return int(p.y) }

func (p *Projectile) ColliderRadius() int { return projectileRadius }

func (p *Projectile) kind() Kind { return KindProjectile }
