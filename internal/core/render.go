package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMissingSprite is returned when a sprite identifier is not in the bank.
var ErrMissingSprite = errors.New("missing sprite")

// Font selects a text face. Hosts pick the closest face they have.
type Font uint8

const (
	Font3x5 Font = iota
)

// SpriteID names a sprite in a SpriteBank.
type SpriteID string

// Sprite is a small piece of rune art. Width and Height are its size in
// world units; hosts scale Art to fit.
type Sprite struct {
	ID     SpriteID
	Width  int
	Height int
	Art    []string
	Color  Color
}

// Columns returns the widest row of the art.
func (s Sprite) Columns() int {
	cols := 0
	for _, row := range s.Art {
		if n := len([]rune(row)); n > cols {
			cols = n
		}
	}
	return cols
}

// SpriteBank holds the sprites available to a session.
type SpriteBank struct {
	sprites map[SpriteID]Sprite
}

// NewSpriteBank creates a bank holding the given sprites.
func NewSpriteBank(sprites ...Sprite) *SpriteBank {
	b := &SpriteBank{sprites: make(map[SpriteID]Sprite, len(sprites))}
	for _, s := range sprites {
		b.Add(s)
	}
	return b
}

// Add registers or replaces a sprite.
func (b *SpriteBank) Add(s Sprite) {
	if b.sprites == nil {
		b.sprites = make(map[SpriteID]Sprite)
	}
	b.sprites[s.ID] = s
}

// Get looks up a sprite by identifier.
func (b *SpriteBank) Get(id SpriteID) (Sprite, error) {
	s, ok := b.sprites[id]
	if !ok {
		return Sprite{}, fmt.Errorf("%w: %q", ErrMissingSprite, id)
	}
	return s, nil
}

// Require checks that every identifier is present.
func (b *SpriteBank) Require(ids ...SpriteID) error {
	for _, id := range ids {
		if _, err := b.Get(id); err != nil {
			return err
		}
	}
	return nil
}

// IDs returns the registered identifiers in sorted order.
func (b *SpriteBank) IDs() []SpriteID {
	ids := make([]SpriteID, 0, len(b.sprites))
	for id := range b.sprites {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Renderer is the drawing capability the simulation consumes.
// Coordinates are world units with y growing upward; the camera point is
// drawn at the center of the viewport.
type Renderer interface {
	CircleFilled(x, y, r int, c Color)
	Circle(x, y, r int, c Color)
	Line(x1, y1, x2, y2 int, c Color)
	// Sprite draws with (x, y) as the lower-left corner of the sprite box.
	Sprite(id SpriteID, x, y int, flip bool)
	Text(s string, f Font, x, y int, c Color)

	SetBackground(c Color)
	SetCamera(x, y int)
}

// DrawKind identifies a recorded draw primitive.
type DrawKind uint8

const (
	DrawCircleFilled DrawKind = iota
	DrawCircle
	DrawLine
	DrawSprite
	DrawText
)

// DrawCmd is one recorded primitive. Unused fields are zero.
type DrawCmd struct {
	Kind   DrawKind
	X, Y   int
	X2, Y2 int
	R      int
	Color  Color
	Sprite SpriteID
	Flip   bool
	Text   string
	Font   Font
}

// DrawList is a Renderer that records primitives so a frame can be
// simulated once and drawn later by any host.
type DrawList struct {
	cmds       []DrawCmd
	background Color
	camX, camY int
}

// NewDrawList creates an empty recorder.
func NewDrawList() *DrawList {
	return &DrawList{cmds: make([]DrawCmd, 0, 256)}
}

// Reset drops the recorded primitives. Background and camera persist
// across frames the same way they do on a real renderer.
func (d *DrawList) Reset() {
	d.cmds = d.cmds[:0]
}

func (d *DrawList) CircleFilled(x, y, r int, c Color) {
	d.cmds = append(d.cmds, DrawCmd{Kind: DrawCircleFilled, X: x, Y: y, R: r, Color: c})
}

func (d *DrawList) Circle(x, y, r int, c Color) {
	d.cmds = append(d.cmds, DrawCmd{Kind: DrawCircle, X: x, Y: y, R: r, Color: c})
}

func (d *DrawList) Line(x1, y1, x2, y2 int, c Color) {
	d.cmds = append(d.cmds, DrawCmd{Kind: DrawLine, X: x1, Y: y1, X2: x2, Y2: y2, Color: c})
}

func (d *DrawList) Sprite(id SpriteID, x, y int, flip bool) {
	d.cmds = append(d.cmds, DrawCmd{Kind: DrawSprite, X: x, Y: y, Sprite: id, Flip: flip})
}

func (d *DrawList) Text(s string, f Font, x, y int, c Color) {
	d.cmds = append(d.cmds, DrawCmd{Kind: DrawText, X: x, Y: y, Text: s, Font: f, Color: c})
}

func (d *DrawList) SetBackground(c Color) {
	d.background = c
}

func (d *DrawList) SetCamera(x, y int) {
	d.camX, d.camY = x, y
}

// Background returns the last background color set.
func (d *DrawList) Background() Color {
	return d.background
}

// Camera returns the last camera position set.
func (d *DrawList) Camera() (int, int) {
	return d.camX, d.camY
}

// Commands returns the recorded primitives. The slice is reused by Reset.
func (d *DrawList) Commands() []DrawCmd {
	return d.cmds
}

// Count returns how many primitives of the given kind were recorded.
func (d *DrawList) Count(kind DrawKind) int {
	n := 0
	for _, c := range d.cmds {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the recorded text strings in draw order.
func (d *DrawList) Texts() []string {
	var out []string
	for _, c := range d.cmds {
		if c.Kind == DrawText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Replay issues the stage settings and every recorded primitive to dst.
func (d *DrawList) Replay(dst Renderer) {
	dst.SetBackground(d.background)
	dst.SetCamera(d.camX, d.camY)
	for _, c := range d.cmds {
		switch c.Kind {
		case DrawCircleFilled:
			dst.CircleFilled(c.X, c.Y, c.R, c.Color)
		case DrawCircle:
			dst.Circle(c.X, c.Y, c.R, c.Color)
		case DrawLine:
			dst.Line(c.X, c.Y, c.X2, c.Y2, c.Color)
		case DrawSprite:
			dst.Sprite(c.Sprite, c.X, c.Y, c.Flip)
		case DrawText:
			dst.Text(c.Text, c.Font, c.X, c.Y, c.Color)
		}
	}
}
