// Package window provides the Ebitengine host for Sky Combat: a desktop
// window with real key-down polling and vector rendering.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/sky-combat/internal/core"
)

// palette maps core.Color to RGBA values.
var palette = map[core.Color]color.RGBA{
	core.ColorBlack:  {0x00, 0x00, 0x00, 0xff},
	core.ColorRed:    {0xe0, 0x3c, 0x28, 0xff},
	core.ColorGreen:  {0x3c, 0xb4, 0x4b, 0xff},
	core.ColorYellow: {0xf8, 0xd8, 0x30, 0xff},
	core.ColorBlue:   {0x30, 0x60, 0xd0, 0xff},
	core.ColorPurple: {0x90, 0x30, 0xa0, 0xff},
	core.ColorTeal:   {0x20, 0x90, 0x98, 0xff},
	core.ColorWhite:  {0xff, 0xff, 0xff, 0xff},
	core.ColorGray:   {0x80, 0x80, 0x80, 0xff},
	core.ColorOrange: {0xf0, 0x80, 0x20, 0xff},
}

// rgba returns the palette entry for c, black for unknown colors.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorBlack]
}

// Renderer draws world-space primitives onto an ebiten image.
// One world unit is scale pixels; y grows upward in the world.
type Renderer struct {
	dst        *ebiten.Image
	bank       *core.SpriteBank
	sprites    map[core.SpriteID]*ebiten.Image
	face       font.Face
	viewW      int
	viewH      int
	scale      float32
	background core.Color
	camX, camY int
}

// NewRenderer creates a renderer for a viewW x viewH world viewport.
func NewRenderer(bank *core.SpriteBank, viewW, viewH int, scale float32) *Renderer {
	if scale <= 0 {
		scale = 1
	}
	return &Renderer{
		bank:    bank,
		sprites: make(map[core.SpriteID]*ebiten.Image),
		face:    basicfont.Face7x13,
		viewW:   viewW,
		viewH:   viewH,
		scale:   scale,
	}
}

// Size returns the window size in pixels.
func (r *Renderer) Size() (w, h int) {
	return int(float32(r.viewW) * r.scale), int(float32(r.viewH) * r.scale)
}

// Begin targets dst for the next frame and fills it with the background.
func (r *Renderer) Begin(dst *ebiten.Image) {
	r.dst = dst
	dst.Fill(rgba(r.background))
}

// project maps a world point to pixel coordinates.
func (r *Renderer) project(x, y int) (px, py float32) {
	px = float32(x-r.camX)*r.scale + float32(r.viewW)*r.scale/2
	py = float32(r.viewH)*r.scale/2 - float32(y-r.camY)*r.scale
	return px, py
}

func (r *Renderer) CircleFilled(x, y, radius int, c core.Color) {
	px, py := r.project(x, y)
	vector.DrawFilledCircle(r.dst, px, py, float32(radius)*r.scale, rgba(c), true)
}

func (r *Renderer) Circle(x, y, radius int, c core.Color) {
	px, py := r.project(x, y)
	vector.StrokeCircle(r.dst, px, py, float32(radius)*r.scale, r.scale, rgba(c), true)
}

func (r *Renderer) Line(x1, y1, x2, y2 int, c core.Color) {
	ax, ay := r.project(x1, y1)
	bx, by := r.project(x2, y2)
	vector.StrokeLine(r.dst, ax, ay, bx, by, r.scale, rgba(c), true)
}

// Sprite draws the sprite with (x, y) as the lower-left corner.
func (r *Renderer) Sprite(id core.SpriteID, x, y int, flip bool) {
	img := r.spriteImage(id)
	if img == nil {
		return
	}
	sp, _ := r.bank.Get(id)

	op := &ebiten.DrawImageOptions{}
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(sp.Width), 0)
	}
	op.GeoM.Scale(float64(r.scale), float64(r.scale))
	// The image's top-left is the sprite box's upper-left corner
	px, py := r.project(x, y+sp.Height)
	op.GeoM.Translate(float64(px), float64(py))
	r.dst.DrawImage(img, op)
}

// spriteImage renders a sprite's art into an image once and caches it.
// Each art rune becomes a filled block; spaces stay transparent.
func (r *Renderer) spriteImage(id core.SpriteID) *ebiten.Image {
	if img, ok := r.sprites[id]; ok {
		return img
	}
	if r.bank == nil {
		return nil
	}
	sp, err := r.bank.Get(id)
	if err != nil || sp.Width <= 0 || sp.Height <= 0 {
		return nil
	}

	img := ebiten.NewImage(sp.Width, sp.Height)
	rows, cols := len(sp.Art), sp.Columns()
	if rows == 0 || cols == 0 {
		img.Fill(rgba(sp.Color))
	} else {
		cw := float32(sp.Width) / float32(cols)
		ch := float32(sp.Height) / float32(rows)
		for i, line := range sp.Art {
			for j, ru := range []rune(line) {
				if ru == ' ' {
					continue
				}
				vector.DrawFilledRect(img, float32(j)*cw, float32(i)*ch, cw, ch, rgba(sp.Color), false)
			}
		}
	}
	r.sprites[id] = img
	return img
}

// Text draws s with its baseline at (x, y).
func (r *Renderer) Text(s string, _ core.Font, x, y int, c core.Color) {
	px, py := r.project(x, y)
	text.Draw(r.dst, s, r.face, int(px), int(py), rgba(c))
}

// SetBackground changes the clear color and repaints the frame with it.
// Replay sets the background before any shape, so nothing is lost.
func (r *Renderer) SetBackground(c core.Color) {
	r.background = c
	if r.dst != nil {
		r.dst.Fill(rgba(c))
	}
}

func (r *Renderer) SetCamera(x, y int) {
	r.camX, r.camY = x, y
}
