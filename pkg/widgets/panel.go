package widgets

import (
	"fmt"

	"github.com/go-drift/dockui/pkg/graphics"
	"github.com/go-drift/dockui/pkg/layout"
	"github.com/go-drift/dockui/pkg/render"
	"github.com/go-drift/dockui/pkg/resource"
)

// Phase is the step of the layout pass a panel is in.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRecomputingBounds
	PhaseRepositioningChildren
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRecomputingBounds:
		return "recomputing_bounds"
	case PhaseRepositioningChildren:
		return "repositioning_children"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// ScrollBounds is the union of a panel's own rect and its children's
// unscrolled rects, in window coordinates.
type ScrollBounds struct {
	MinX, MinY, MaxX, MaxY float32
}

// Rect returns the bounds as a rectangle.
func (b ScrollBounds) Rect() graphics.Rect {
	return graphics.Rect{Left: b.MinX, Top: b.MinY, Right: b.MaxX, Bottom: b.MaxY}
}

func boundsOf(r graphics.Rect) ScrollBounds {
	return ScrollBounds{MinX: r.Left, MinY: r.Top, MaxX: r.Right, MaxY: r.Bottom}
}

// Panel is a filled rectangle that can scroll its children.
//
// Every mutation runs one synchronous pass. The pass measures the children,
// decides which scrollbars are needed, converts scrollbar values into the
// child offset and lays the children out against it. Children are measured
// from their authored geometry rather than their scrolled position, so the
// offset never feeds back into the bounds it is derived from.
//
// Overflow past the bottom or top enables the horizontal scrollbar and
// overflow past the right or left enables the vertical one. The horizontal
// scrollbar moves children along x and the vertical one along y.
type Panel struct {
	Widget

	color      graphics.Color
	hoverColor graphics.Color
	texture    resource.Handle
	ownsTex    bool
	gradient   *graphics.Gradient

	autoScroll  bool
	sliderWidth float32
	horizontal  *Slider
	vertical    *Slider

	phase  Phase
	bounds ScrollBounds

	rect, drawn render.DrawableRect
}

// NewPanel creates a detached panel with auto-scroll enabled. Attach it with
// AddChild.
func (t *Tree) NewPanel(name string) *Panel {
	p := &Panel{
		color:       t.theme.PanelColor,
		hoverColor:  t.theme.PanelHoverColor,
		autoScroll:  true,
		sliderWidth: t.theme.SliderWidth,
		rect:        render.NewDrawableRect(),
	}
	h := t.insert(p, name)

	p.horizontal = t.newSlider(name+".hslider", false)
	p.vertical = t.newSlider(name+".vslider", true)
	for _, s := range []*Slider{p.horizontal, p.vertical} {
		s.owned = true
		s.parent = h
		s.positionType = layout.StaticToParent
		p.ownedChildren = append(p.ownedChildren, s.handle)
		s.ValueChange.Subscribe(p.onSliderValueChange)
	}
	p.updatePosition()
	return p
}

// Phase returns the step of the layout pass the panel is in. It is
// PhaseIdle whenever no pass is running.
func (p *Panel) Phase() Phase { return p.phase }

// ScrollBounds returns the bounds measured by the last pass.
func (p *Panel) ScrollBounds() ScrollBounds { return p.bounds }

// HorizontalSlider returns the scrollbar along the bottom edge.
func (p *Panel) HorizontalSlider() *Slider { return p.horizontal }

// VerticalSlider returns the scrollbar along the right edge.
func (p *Panel) VerticalSlider() *Slider { return p.vertical }

// AutoScroll reports whether the panel shows scrollbars on overflow.
func (p *Panel) AutoScroll() bool { return p.autoScroll }

// Color returns the fill color.
func (p *Panel) Color() graphics.Color { return p.color }

// Texture returns the fill texture.
func (p *Panel) Texture() resource.Handle { return p.texture }

// AddChild appends child to the panel.
func (p *Panel) AddChild(child Handle) bool {
	return p.tree.AddChild(p.handle, child)
}

// SetTexture changes the fill texture. The zero handle fills with color only.
// The caller keeps ownership of tex.
func (p *Panel) SetTexture(tex resource.Handle) {
	p.releaseTexture()
	p.texture = tex
	p.updatePosition()
}

// SetOwnedTexture is like SetTexture but hands tex to the panel. The tree's
// resource context disposes it when the texture is replaced or the panel is
// removed.
func (p *Panel) SetOwnedTexture(tex resource.Handle) {
	p.releaseTexture()
	p.texture = tex
	p.ownsTex = tex != 0
	p.updatePosition()
}

func (p *Panel) releaseTexture() {
	if p.ownsTex {
		p.tree.resources.Dispose(p.texture)
	}
	p.texture, p.ownsTex = 0, false
}

// SetColor changes the fill color.
func (p *Panel) SetColor(c graphics.Color) {
	p.color = c
	p.updatePosition()
}

// SetHoverColor changes the fill color used while the pointer is inside.
func (p *Panel) SetHoverColor(c graphics.Color) {
	p.hoverColor = c
	p.updatePosition()
}

// SetGradient changes the fill gradient. nil removes it.
func (p *Panel) SetGradient(g *graphics.Gradient) {
	if g != nil {
		c := *g
		g = &c
	}
	p.gradient = g
	p.updatePosition()
}

// SetAutoScroll turns scrollbars on or off. Turning them off scrolls the
// children back to their authored position.
func (p *Panel) SetAutoScroll(on bool) {
	p.autoScroll = on
	p.updatePosition()
}

// SetSliderWidth changes the scrollbar thickness.
func (p *Panel) SetSliderWidth(w float32) {
	p.sliderWidth = max(w, 0)
	p.updatePosition()
}

// SliderWidth returns the scrollbar thickness.
func (p *Panel) SliderWidth() float32 { return p.sliderWidth }

func (p *Panel) onSliderValueChange(ValueChangeEvent) {
	p.updatePosition()
}

// updatePosition runs the panel's layout pass.
func (p *Panel) updatePosition() {
	p.phase = PhaseRecomputingBounds
	p.layoutSelf()
	p.placeChildren()
	p.bounds = p.measure()
	p.updateSliders()
	p.childOffset = p.scrollOffset()

	p.phase = PhaseRepositioningChildren
	for _, h := range p.children {
		if n, ok := p.tree.Get(h); ok {
			n.updatePosition()
		}
	}
	p.horizontal.updatePosition()
	p.vertical.updatePosition()

	p.refresh()
	p.phase = PhaseIdle
}

// measure unions the panel rect with the unscrolled rect of every child
// that scrolls with the panel. Children anchored elsewhere stay put when
// the panel scrolls and are not counted.
func (p *Panel) measure() ScrollBounds {
	own := p.Rect()
	if !p.autoScroll {
		return boundsOf(own)
	}
	r := own
	for _, h := range p.children {
		c := p.tree.base(h)
		if c == nil || c.positionType != layout.RelativeToParent {
			continue
		}
		off, size := c.local()
		r = r.Union(graphics.RectFromOffsetSize(p.position.Add(off), size))
	}
	return boundsOf(r)
}

// updateSliders enables, sizes and positions the scrollbars for the current
// bounds. A scrollbar that is disabled drops back to value zero.
func (p *Panel) updateSliders() {
	own := p.Rect()
	b := p.bounds
	needsHorizontal := p.autoScroll && (b.MaxY > own.Bottom || b.MinY < own.Top)
	needsVertical := p.autoScroll && (b.MaxX > own.Right || b.MinX < own.Left)

	w, h := p.dimensions.Width, p.dimensions.Height
	sw := min(p.sliderWidth, w, h)

	place := func(s *Slider, on bool, r graphics.Rect) {
		if !on {
			s.enabled = false
			s.mouseIn = false
			s.setValue(0)
			r = graphics.Rect{}
		} else {
			s.enabled = true
		}
		r = r.Collapse()
		s.pos = layout.Px2(r.Left, r.Top)
		s.size = layout2FromSize(r.Size())
	}
	place(p.horizontal, needsHorizontal, graphics.RectFromLTWH(0, h-sw, w-sw, sw))
	place(p.vertical, needsVertical, graphics.RectFromLTWH(w-sw, 0, sw, h-sw))
}

// scrollOffset maps the scrollbar values onto the scroll range of each axis.
func (p *Panel) scrollOffset() graphics.Offset {
	var off graphics.Offset
	b := p.bounds
	if p.horizontal.enabled {
		span := max(b.MaxX-b.MinX-p.dimensions.Width, 0)
		off.X = b.MinX + span*float32(p.horizontal.value)/SliderMax - p.position.X
	}
	if p.vertical.enabled {
		span := max(b.MaxY-b.MinY-p.dimensions.Height, 0)
		off.Y = b.MinY + span*float32(p.vertical.value)/SliderMax - p.position.Y
	}
	return off
}

// HandleMouseMove updates hover state for the panel and everything under it.
func (p *Panel) HandleMouseMove(x, y float32) {
	p.tree.dispatchMouseMove(p.handle, MouseEvent{X: x, Y: y})
}

// HandleMouseFocusLost clears hover state for the panel and everything
// under it.
func (p *Panel) HandleMouseFocusLost() {
	p.tree.dispatchMouseFocusLost(p.handle, MouseEvent{})
}

func (p *Panel) hoverChanged() {
	p.refresh()
}

func (p *Panel) refresh() {
	p.rect.Position = p.position
	p.rect.Dimensions = p.dimensions
	p.rect.ClipRect = p.clipRect
	p.rect.Texture = p.texture
	p.rect.Gradient = p.gradient
	p.rect.Color = p.color
	if p.mouseIn {
		p.rect.Color = p.hoverColor
	}
	p.tree.invalidate(p)
}

func (p *Panel) addDrawables(r *render.Renderer) {
	sync := func() { p.drawn = p.rect }
	sync()
	r.Add(p, func(b render.Batch) { p.drawn.Draw(b) }, sync)
}

func (p *Panel) removeDrawables(r *render.Renderer) {
	r.Remove(p)
}
