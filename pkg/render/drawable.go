package render

import (
	"github.com/go-drift/dockui/pkg/graphics"
	"github.com/go-drift/dockui/pkg/resource"
	"golang.org/x/image/font"
)

// noClip is wide enough to never clip anything on screen.
var noClip = graphics.Rect{Left: -1000000, Top: -1000000, Right: 1000000, Bottom: 1000000}

// DrawableRect is the frame snapshot of a filled rectangle.
type DrawableRect struct {
	Color      graphics.Color
	Gradient   *graphics.Gradient
	LayerDepth float32
	Position   graphics.Offset
	Dimensions graphics.Size
	Texture    resource.Handle
	ClipRect   graphics.Rect
}

// NewDrawableRect returns a light gray rect that is not clipped.
func NewDrawableRect() DrawableRect {
	return DrawableRect{Color: graphics.ColorLightGray, ClipRect: noClip}
}

// Rect returns the destination rectangle.
func (d *DrawableRect) Rect() graphics.Rect {
	return graphics.RectFromOffsetSize(d.Position, d.Dimensions)
}

// Draw issues the rect onto b. Zero-area rects are skipped.
func (d *DrawableRect) Draw(b Batch) {
	dest := d.Rect()
	if dest.IsEmpty() {
		return
	}
	s := Sprite{
		Texture: d.Texture,
		Dest:    dest,
		Clip:    d.ClipRect,
		Color:   d.Color,
		Depth:   d.LayerDepth,
	}
	if d.Gradient != nil {
		g := *d.Gradient
		s.Gradient = &g
	}
	b.DrawSprite(s)
}

// DrawableText is the frame snapshot of a line of text.
type DrawableText struct {
	Color      graphics.Color
	LayerDepth float32
	Position   graphics.Offset
	Font       font.Face
	Text       string
	Align      graphics.TextAlign
	Scale      graphics.Offset
	ClipRect   graphics.Rect
}

// NewDrawableText returns black, unscaled, centered text that is not clipped.
func NewDrawableText() DrawableText {
	return DrawableText{
		Color:    graphics.ColorBlack,
		Scale:    graphics.Offset{X: 1, Y: 1},
		Align:    graphics.TextAlignCenter,
		ClipRect: noClip,
	}
}

// Draw issues the text onto b. Text without a font or content is skipped.
func (d *DrawableText) Draw(b Batch) {
	if d.Font == nil || d.Text == "" {
		return
	}
	b.DrawGlyphs(Glyphs{
		Font:     d.Font,
		Text:     d.Text,
		Position: d.Position,
		Scale:    d.Scale,
		Color:    d.Color,
		Align:    d.Align,
		Clip:     d.ClipRect,
		Depth:    d.LayerDepth,
	})
}
