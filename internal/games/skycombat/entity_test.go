package skycombat

import (
	"math"
	"testing"

	"github.com/vovakirdan/sky-combat/internal/config"
	"github.com/vovakirdan/sky-combat/internal/core"
)

// newTestSession builds a session from the built-in defaults.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := config.DefaultSkyCombatConfig()
	bank, err := cfg.SpriteBank()
	if err != nil {
		t.Fatalf("SpriteBank() error = %v", err)
	}
	s, err := NewSession(cfg, bank, 42, nil)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s
}

// newTestFrame returns a frame at unit speed with nothing held.
func newTestFrame(dt float64, held ...core.Action) *Frame {
	return &Frame{
		Draw:  core.NewDrawList(),
		Input: core.NewInputFrame(held...),
		Delta: dt,
		Speed: 1,
		Rand:  core.NewRand(1),
	}
}

func TestIntersectsSymmetry(t *testing.T) {
	cfg := config.DefaultSkyCombatConfig()
	sprite := core.Sprite{ID: "player", Width: 16, Height: 16}

	player := NewPlayer(cfg.Player, cfg.Arena, sprite)
	near := NewProjectile(10, 0, 4, 25, core.ColorRed)
	far := NewProjectile(10, 0, 50, 25, core.ColorRed)
	edge := NewProjectile(10, 0, 5, 25, core.ColorRed) // distance == ra + rb
	cloud := NewCloud(cfg.Cloud, cfg.Arena, core.NewRand(3))
	blast := NewExplosion(cfg.Explosion, 0, 25)

	tests := []struct {
		name string
		a, b Entity
		want bool
	}{
		{"player-near", player, near, true},
		{"player-far", player, far, false},
		{"player-edge", player, edge, false},
		{"player-explosion", player, blast, true},
		{"cloud-explosion", cloud, blast, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := Intersects(tt.a, tt.b)
			ba := Intersects(tt.b, tt.a)
			if ab != ba {
				t.Errorf("Intersects not symmetric: a,b = %v, b,a = %v", ab, ba)
			}
			if ab != tt.want {
				t.Errorf("Intersects() = %v, expected %v", ab, tt.want)
			}
		})
	}
}

func TestIntersectsSelf(t *testing.T) {
	cfg := config.DefaultSkyCombatConfig()

	tests := []struct {
		name string
		e    Entity
	}{
		{"player", NewPlayer(cfg.Player, cfg.Arena, core.Sprite{})},
		{"enemy", NewEnemy(cfg.Enemy, cfg.Arena, 5, 7, core.Sprite{})},
		{"projectile", NewProjectile(1, 0, 3, 3, core.ColorRed)},
		{"cloud", NewCloud(cfg.Cloud, cfg.Arena, core.NewRand(1))},
		{"explosion", NewExplosion(cfg.Explosion, 1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := 2*tt.e.ColliderRadius() > 0
			if got := Intersects(tt.e, tt.e); got != want {
				t.Errorf("Intersects(self) = %v, expected %v", got, want)
			}
		})
	}
}

func TestDistanceAndAngle(t *testing.T) {
	a := NewProjectile(0, 0, 0, 0, core.ColorRed)
	b := NewProjectile(0, 0, 3, 4, core.ColorRed)

	if d := Distance(a, b); d != 5 {
		t.Errorf("Distance() = %v, expected 5", d)
	}

	tests := []struct {
		x, y int
		want float64
	}{
		{10, 0, 0},
		{0, 10, 90},
		{-10, 0, 180},
		{0, -10, -90},
		{10, 10, 45},
	}
	for _, tt := range tests {
		target := NewProjectile(0, 0, tt.x, tt.y, core.ColorRed)
		if got := Angle(a, target); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Angle to (%d,%d) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	cfg := config.DefaultSkyCombatConfig()
	if k := KindOf(NewExplosion(cfg.Explosion, 0, 0)); k != KindExplosion {
		t.Errorf("KindOf() = %v, expected %v", k, KindExplosion)
	}
	if s := KindEnemy.String(); s != "enemy" {
		t.Errorf("String() = %q, expected %q", s, "enemy")
	}
}

func TestPrune(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	got := prune(items, []int{2, 0, 2})
	want := []string{"b", "d"}
	if len(got) != len(want) {
		t.Fatalf("prune() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("prune()[%d] = %q, expected %q", i, got[i], want[i])
		}
	}

	if got := prune([]int{1, 2}, nil); len(got) != 2 {
		t.Errorf("prune() with no marks changed length to %d", len(got))
	}
}
