package tui

import (
	"math"

	"github.com/vovakirdan/sky-combat/internal/core"
)

// Glyphs used to rasterize primitives into cells.
const (
	fillRune = '█'
	ringRune = 'o'
	lineRune = '·'
)

// Canvas rasterizes world-space draw calls onto a terminal Screen.
// The whole world viewport is squeezed into the screen, so one cell covers
// several world units on each axis; y grows upward in the world and
// downward on screen.
type Canvas struct {
	screen     *core.Screen
	bank       *core.SpriteBank
	viewW      float64
	viewH      float64
	camX, camY int
}

// NewCanvas creates a canvas showing a viewW x viewH world viewport.
// bank may be nil, in which case sprites are drawn as a single block.
func NewCanvas(screen *core.Screen, bank *core.SpriteBank, viewW, viewH int) *Canvas {
	return &Canvas{
		screen: screen,
		bank:   bank,
		viewW:  float64(viewW),
		viewH:  float64(viewH),
	}
}

// Begin clears the screen for a new frame.
func (c *Canvas) Begin() {
	c.screen.Clear()
}

// cellW and cellH are the world size of one cell.
func (c *Canvas) cellW() float64 { return c.viewW / float64(max(c.screen.Width(), 1)) }

func (c *Canvas) cellH() float64 { return c.viewH / float64(max(c.screen.Height(), 1)) }

// project maps a world point to the cell that contains it.
func (c *Canvas) project(x, y int) (col, row int) {
	fx := float64(x-c.camX)/c.cellW() + float64(c.screen.Width())/2
	fy := float64(c.screen.Height())/2 - float64(y-c.camY)/c.cellH()
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// unproject returns the world point at the center of a cell.
func (c *Canvas) unproject(col, row int) (x, y float64) {
	x = (float64(col)+0.5-float64(c.screen.Width())/2)*c.cellW() + float64(c.camX)
	y = (float64(c.screen.Height())/2-float64(row)-0.5)*c.cellH() + float64(c.camY)
	return x, y
}

func (c *Canvas) CircleFilled(x, y, r int, color core.Color) {
	c.disc(x, y, r, color, fillRune)
}

func (c *Canvas) Circle(x, y, r int, color core.Color) {
	// Rings smaller than a cell collapse to their center
	if float64(2*r) < c.cellW() || float64(2*r) < c.cellH() {
		col, row := c.project(x, y)
		c.screen.SetCell(col, row, ringRune, color)
		return
	}
	steps := max(16, 4*r)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		px := float64(x) + float64(r)*math.Cos(a)
		py := float64(y) + float64(r)*math.Sin(a)
		col, row := c.project(int(math.Round(px)), int(math.Round(py)))
		c.screen.SetCell(col, row, ringRune, color)
	}
}

// disc fills every cell whose center lies within r of (x, y). The center
// cell is always filled so small circles stay visible.
func (c *Canvas) disc(x, y, r int, color core.Color, glyph rune) {
	c0, r0 := c.project(x-r, y+r)
	c1, r1 := c.project(x+r, y-r)
	rr := float64(r * r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			wx, wy := c.unproject(col, row)
			dx, dy := wx-float64(x), wy-float64(y)
			if dx*dx+dy*dy <= rr {
				c.screen.SetCell(col, row, glyph, color)
			}
		}
	}
	col, row := c.project(x, y)
	c.screen.SetCell(col, row, glyph, color)
}

// Line draws a segment with Bresenham's algorithm in cell space.
func (c *Canvas) Line(x1, y1, x2, y2 int, color core.Color) {
	c1, r1 := c.project(x1, y1)
	c2, r2 := c.project(x2, y2)

	dx := core.Abs(c2 - c1)
	dy := -core.Abs(r2 - r1)
	sx, sy := 1, 1
	if c1 > c2 {
		sx = -1
	}
	if r1 > r2 {
		sy = -1
	}
	e := dx + dy
	for {
		c.screen.SetCell(c1, r1, lineRune, color)
		if c1 == c2 && r1 == r2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			c1 += sx
		}
		if e2 <= dx {
			e += dx
			r1 += sy
		}
	}
}

// Sprite draws the sprite's art centered on its box. (x, y) is the
// lower-left corner of the box in world units.
func (c *Canvas) Sprite(id core.SpriteID, x, y int, flip bool) {
	var sp core.Sprite
	if c.bank != nil {
		sp, _ = c.bank.Get(id)
	}
	col, row := c.project(x+sp.Width/2, y+sp.Height/2)
	if len(sp.Art) == 0 {
		c.screen.SetCell(col, row, fillRune, sp.Color)
		return
	}

	top := row - len(sp.Art)/2
	left := col - sp.Columns()/2
	for i, line := range sp.Art {
		runes := []rune(line)
		if flip {
			for a, b := 0, len(runes)-1; a < b; a, b = a+1, b-1 {
				runes[a], runes[b] = runes[b], runes[a]
			}
		}
		for j, r := range runes {
			if r == ' ' {
				continue
			}
			c.screen.SetCell(left+j, top+i, r, sp.Color)
		}
	}
}

// Text writes s starting at the cell containing (x, y). Fonts are ignored;
// a terminal has exactly one.
func (c *Canvas) Text(s string, _ core.Font, x, y int, color core.Color) {
	col, row := c.project(x, y)
	c.screen.DrawText(col, row, s, color)
}

func (c *Canvas) SetBackground(color core.Color) {
	c.screen.SetBackground(color)
}

func (c *Canvas) SetCamera(x, y int) {
	c.camX, c.camY = x, y
}
