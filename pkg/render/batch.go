// Package render holds the renderer-facing side of the widget tree: frame
// snapshots of resolved geometry and the registry that draws them.
//
// Widgets never hand the renderer a pointer to their live state. Each widget
// owns a drawable it mutates during layout and a second copy it refreshes
// from the first; the renderer only reads the copy.
package render

import (
	"github.com/go-drift/dockui/pkg/graphics"
	"github.com/go-drift/dockui/pkg/resource"
	"golang.org/x/image/font"
)

// Sprite is one textured, tinted quad.
type Sprite struct {
	Texture  resource.Handle
	Dest     graphics.Rect
	Clip     graphics.Rect
	Color    graphics.Color
	Gradient *graphics.Gradient
	Depth    float32
}

// Glyphs is one line of text.
type Glyphs struct {
	Font     font.Face
	Text     string
	Position graphics.Offset
	Scale    graphics.Offset
	Color    graphics.Color
	Align    graphics.TextAlign
	Clip     graphics.Rect
	Depth    float32
}

// Batch accumulates draw primitives for one frame, in the manner of a
// sprite batch. Implementations decide how and when to flush to the GPU.
type Batch interface {
	DrawSprite(s Sprite)
	DrawGlyphs(g Glyphs)
}
