package skycombat

import (
	"github.com/vovakirdan/sky-combat/internal/config"
	"github.com/vovakirdan/sky-combat/internal/core"
)

// pillow is one puff of a cloud, offset from the cloud's center.
type pillow struct {
	dx, dy int
}

// Cloud is background decoration that scrolls through the arena forever.
type Cloud struct {
	cfg     config.CloudConfig
	arenaH  float64
	x, y    float64
	speed   float64
	pillows []pillow
}

// NewCloud builds a cloud from the shared generator. The starting height
// may be below the visible arena so clouds enter gradually.
func NewCloud(cfg config.CloudConfig, arena config.ArenaConfig, rng *core.Rand) *Cloud {
	n := rng.IntRange(cfg.MinPillows, cfg.MaxPillows)
	pillows := make([]pillow, 0, n)
	for i := 0; i < n; i++ {
		pillows = append(pillows, pillow{
			dx: rng.IntRange(-cfg.OffsetX, cfg.OffsetX),
			dy: rng.IntRange(-cfg.OffsetY, cfg.OffsetY),
		})
	}

	half := arena.Width / 2
	return &Cloud{
		cfg:     cfg,
		arenaH:  float64(arena.Height),
		x:       float64(rng.IntRange(-half, half)),
		y:       float64(rng.IntRange(0, arena.Height+cfg.OffsetY+cfg.PillowSize)),
		speed:   float64(rng.IntRange(cfg.MinSpeed, cfg.MaxSpeed)),
		pillows: pillows,
	}
}

// margin is how far past an edge the lowest pillow can reach.
func (c *Cloud) margin() float64 {
	return float64(c.cfg.OffsetY + c.cfg.PillowSize)
}

// Update scrolls the cloud and wraps it below the arena once it has fully
// left the bottom edge.
func (c *Cloud) Update(f *Frame) {
	c.y -= c.speed * f.Scaled()
	if c.y+c.margin() < 0 {
		c.y = c.arenaH + c.margin()
	}

	x, y := c.X(), c.Y()
	for _, p := range c.pillows {
		f.Draw.CircleFilled(x+p.dx, y+p.dy, c.cfg.PillowSize, core.ColorWhite)
	}
}

func (c *Cloud) X() int { return int(c.x) }

func (c *Cloud) Y() int { return int(c.y) }

func (c *Cloud) ColliderRadius() int { return 0 }

func (c *Cloud) kind() Kind { return KindCloud }
