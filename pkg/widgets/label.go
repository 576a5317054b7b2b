package widgets

import (
	"github.com/go-drift/dockui/pkg/graphics"
	"github.com/go-drift/dockui/pkg/render"
	"golang.org/x/image/font"
)

// Label draws a single line of text aligned inside its rectangle.
type Label struct {
	Widget

	text  string
	face  font.Face
	align graphics.TextAlign
	scale graphics.Offset
	color graphics.Color

	live, drawn render.DrawableText
}

// NewLabel creates a detached, centered label. Attach it with AddChild.
func (t *Tree) NewLabel(name, text string, face font.Face) *Label {
	l := &Label{
		text:  text,
		face:  face,
		align: graphics.TextAlignCenter,
		scale: graphics.Offset{X: 1, Y: 1},
		color: t.theme.TextColor,
		live:  render.NewDrawableText(),
	}
	t.insert(l, name)
	l.updatePosition()
	return l
}

func (l *Label) Text() string { return l.text }
func (l *Label) Align() graphics.TextAlign { return l.align }

// SetText changes the text.
func (l *Label) SetText(s string) {
	l.text = s
	l.refresh()
}

// SetFont changes the face used to measure and draw the text.
func (l *Label) SetFont(face font.Face) {
	l.face = face
	l.refresh()
}

// SetAlign changes where the text sits inside the label.
func (l *Label) SetAlign(a graphics.TextAlign) {
	l.align = a
	l.refresh()
}

// SetScale changes the text scale.
func (l *Label) SetScale(s graphics.Offset) {
	l.scale = s
	l.refresh()
}

// SetColor changes the text color.
func (l *Label) SetColor(c graphics.Color) {
	l.color = c
	l.refresh()
}

// TextPosition returns the top-left corner the text is drawn from.
func (l *Label) TextPosition() graphics.Offset { return l.live.Position }

func (l *Label) updatePosition() {
	l.layoutSelf()
	l.layoutChildren()
	l.refresh()
}

func (l *Label) refresh() {
	l.live.Text = l.text
	l.live.Font = l.face
	l.live.Align = l.align
	l.live.Scale = l.scale
	l.live.Color = l.color
	l.live.ClipRect = l.clipRect
	l.live.Position = l.position
	if l.face != nil {
		size := graphics.MeasureText(l.face, l.text, l.scale)
		l.live.Position = graphics.AlignText(l.align, l.Rect(), size)
	}
	l.tree.invalidate(l)
}

func (l *Label) addDrawables(r *render.Renderer) {
	sync := func() { l.drawn = l.live }
	sync()
	r.Add(l, func(b render.Batch) { l.drawn.Draw(b) }, sync)
}

func (l *Label) removeDrawables(r *render.Renderer) {
	r.Remove(l)
}
