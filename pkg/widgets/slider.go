package widgets

import (
	"github.com/go-drift/dockui/pkg/graphics"
	"github.com/go-drift/dockui/pkg/render"
)

// SliderMax is the upper bound of every slider value. Values are a fixed
// discretization of whatever range the owner maps them onto.
const SliderMax = 10000

// Slider is a scrollbar: a bar with a square slide whose position along the
// bar tracks the value.
type Slider struct {
	Widget

	value    int
	vertical bool

	barColor   graphics.Color
	slideColor graphics.Color
	hoverColor graphics.Color

	bar, slide           render.DrawableRect
	drawnBar, drawnSlide render.DrawableRect

	// ValueChange fires after SetValue changes the value.
	ValueChange Signal[ValueChangeEvent]
}

// NewSlider creates a detached slider. Attach it with AddChild.
func (t *Tree) NewSlider(name string, vertical bool) *Slider {
	s := t.newSlider(name, vertical)
	s.updatePosition()
	return s
}

func (t *Tree) newSlider(name string, vertical bool) *Slider {
	s := &Slider{
		vertical:   vertical,
		barColor:   t.theme.SliderBarColor,
		slideColor: t.theme.SliderSlideColor,
		hoverColor: t.theme.SliderHoverColor,
		bar:        render.NewDrawableRect(),
		slide:      render.NewDrawableRect(),
	}
	t.insert(s, name)
	return s
}

// Value returns the current value in [0, SliderMax].
func (s *Slider) Value() int { return s.value }

// IsVertical reports whether the slide travels along the y axis.
func (s *Slider) IsVertical() bool { return s.vertical }

// SetValue clamps v to [0, SliderMax] and notifies subscribers if it changed.
// A panel's scrollbar ignores the call while the panel has nothing to scroll.
func (s *Slider) SetValue(v int) {
	if s.owned && !s.enabled {
		return
	}
	if !s.setValue(v) {
		return
	}
	s.ValueChange.emit(ValueChangeEvent{Sender: s.handle, Value: s.value})
}

// setValue updates the value without notifying anyone.
func (s *Slider) setValue(v int) bool {
	v = min(max(v, 0), SliderMax)
	if v == s.value {
		return false
	}
	s.value = v
	s.refresh()
	return true
}

// SetColors changes the bar, slide and hovered slide colors.
func (s *Slider) SetColors(bar, slide, hover graphics.Color) {
	s.barColor, s.slideColor, s.hoverColor = bar, slide, hover
	s.refresh()
}

// thickness is the extent across the axis of travel, which is also the
// side of the square slide.
func (s *Slider) thickness() float32 {
	if s.vertical {
		return s.dimensions.Width
	}
	return s.dimensions.Height
}

func (s *Slider) length() float32 {
	if s.vertical {
		return s.dimensions.Height
	}
	return s.dimensions.Width
}

// SlideRect returns the absolute rectangle of the slide.
func (s *Slider) SlideRect() graphics.Rect {
	side := s.thickness()
	travel := max(s.length()-side, 0)
	along := travel * float32(s.value) / SliderMax
	if s.vertical {
		return graphics.RectFromLTWH(s.position.X, s.position.Y+along, side, side)
	}
	return graphics.RectFromLTWH(s.position.X+along, s.position.Y, side, side)
}

// valueAt maps a window point onto the value whose slide is centered there.
func (s *Slider) valueAt(x, y float32) int {
	side := s.thickness()
	travel := s.length() - side
	if travel <= 0 {
		return 0
	}
	along := x - s.position.X
	if s.vertical {
		along = y - s.position.Y
	}
	along -= side / 2
	return int(along / travel * SliderMax)
}

func (s *Slider) handleMouseDown(e MouseEvent) {
	if !s.enabled || !s.IsInBounds(e.X, e.Y) {
		return
	}
	s.SetValue(s.valueAt(e.X, e.Y))
}

func (s *Slider) hoverChanged() {
	s.refresh()
}

func (s *Slider) updatePosition() {
	s.layoutSelf()
	s.layoutChildren()
	s.refresh()
}

func (s *Slider) refresh() {
	s.bar.Position = s.position
	s.bar.Dimensions = s.dimensions
	s.bar.Color = s.barColor
	s.bar.ClipRect = s.clipRect

	r := s.SlideRect()
	s.slide.Position = r.Origin()
	s.slide.Dimensions = r.Size()
	s.slide.Color = s.slideColor
	if s.mouseIn {
		s.slide.Color = s.hoverColor
	}
	s.slide.ClipRect = s.clipRect
	s.tree.invalidate(s)
}

func (s *Slider) addDrawables(r *render.Renderer) {
	sync := func() {
		s.drawnBar = s.bar
		s.drawnSlide = s.slide
	}
	sync()
	r.Add(s, func(b render.Batch) { s.drawnBar.Draw(b) }, sync)
	r.Add(s, func(b render.Batch) { s.drawnSlide.Draw(b) }, nil)
}

func (s *Slider) removeDrawables(r *render.Renderer) {
	r.Remove(s)
}
