// Package skycombat implements a vertical arcade shoot-'em-up: the player
// flies at the bottom of the arena, enemies descend from above, and the
// session ends when the player runs out of health.
package skycombat

import (
	"math"

	"github.com/vovakirdan/sky-combat/internal/core"
)

// Kind tags the concrete entity variant.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	KindCloud
	KindExplosion
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindCloud:
		return "cloud"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Frame is the context of a single simulated frame.
type Frame struct {
	Draw  core.Renderer
	Input core.InputFrame
	Delta float64    // Wall time since the previous frame, in seconds
	Speed float64    // Global speed multiplier
	Rand  *core.Rand // Ambient randomness for cosmetic effects
}

// Scaled returns the frame's elapsed simulation time.
func (f *Frame) Scaled() float64 {
	return f.Delta * f.Speed
}

// Entity is implemented by every moving object. The unexported kind method
// keeps the set of variants closed to this package.
type Entity interface {
	// Update advances internal state by one frame and emits draw calls.
	Update(f *Frame)
	X() int
	Y() int
	// ColliderRadius is 0 for decorative entities.
	ColliderRadius() int
	kind() Kind
}

// KindOf returns the variant tag of an entity.
func KindOf(e Entity) Kind {
	return e.kind()
}

// Distance returns the Euclidean distance between two entities.
func Distance(a, b Entity) float64 {
	dx := a.X() - b.X()
	dy := a.Y() - b.Y()
	return math.Sqrt(float64(dx*dx + dy*dy))
}

// Angle returns the direction from a to b in degrees, in [-180, 180].
func Angle(a, b Entity) float64 {
	dx := float64(b.X() - a.X())
	dy := float64(b.Y() - a.Y())
	return core.Degrees(math.Atan2(dy, dx))
}

// Intersects reports whether the colliders of a and b overlap.
func Intersects(a, b Entity) bool {
	return Distance(a, b)-float64(a.ColliderRadius())-float64(b.ColliderRadius()) < 0
}

// drawSprite draws s centered on (x, y).
func drawSprite(r core.Renderer, s core.Sprite, x, y int) {
	r.Sprite(s.ID, x-s.Width/2, y-s.Height/2, false)
}
