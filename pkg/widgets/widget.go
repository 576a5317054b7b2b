package widgets

import (
	"github.com/go-drift/dockui/pkg/graphics"
	"github.com/go-drift/dockui/pkg/layout"
)

// Widget is the geometry state shared by every widget kind.
//
// Position and size are authored as unit-aware lengths relative to the
// anchor chosen by the position type (the parent by default). Layout
// resolves them into pixels, applies docking, and derives the absolute
// position and clip rectangle.
type Widget struct {
	tree   *Tree
	handle Handle
	name   string

	parent        Handle
	children      []Handle
	ownedChildren []Handle
	// owned widgets belong to their parent's implementation, such as a
	// panel's scrollbars. They are not children and cannot be re-parented.
	owned bool

	pos          layout.Length2
	size         layout.Length2
	positionType layout.PositionType
	dock         layout.Dock
	clipping     layout.Clipping

	// Set by the parent when dock is not DockNone.
	dockRect graphics.Rect
	docked   bool

	relative    graphics.Offset
	position    graphics.Offset
	dimensions  graphics.Size
	clipRect    graphics.Rect
	childOffset graphics.Offset

	enabled bool
	mouseIn bool

	MouseEnter Signal[MouseEvent]
	MouseLeave Signal[MouseEvent]
	MouseMove  Signal[MouseEvent]
}

func (w *Widget) init(t *Tree, h Handle, name string) {
	w.tree = t
	w.handle = h
	w.name = name
	w.enabled = true
}

// Base returns w.
func (w *Widget) Base() *Widget { return w }

func (w *Widget) Handle() Handle { return w.handle }
func (w *Widget) Name() string { return w.name }
func (w *Widget) Parent() Handle { return w.parent }
func (w *Widget) IsEnabled() bool { return w.enabled }
func (w *Widget) Dock() layout.Dock { return w.dock }
func (w *Widget) ClipRect() graphics.Rect { return w.clipRect }

// Children returns a copy of the child handles in layout order.
func (w *Widget) Children() []Handle {
	out := make([]Handle, len(w.children))
	copy(out, w.children)
	return out
}

// Position returns the resolved absolute position.
func (w *Widget) Position() graphics.Offset { return w.position }

// RelativePosition returns the resolved position relative to the anchor.
func (w *Widget) RelativePosition() graphics.Offset { return w.relative }

// Dimensions returns the resolved size.
func (w *Widget) Dimensions() graphics.Size { return w.dimensions }

// Rect returns the resolved absolute rectangle.
func (w *Widget) Rect() graphics.Rect {
	return graphics.RectFromOffsetSize(w.position, w.dimensions)
}

// ChildOffset returns the translation subtracted from children's positions.
func (w *Widget) ChildOffset() graphics.Offset { return w.childOffset }

// ChildOrigin is the point children anchored relative to this widget are
// positioned from: the widget's position minus its scroll translation.
func (w *Widget) ChildOrigin() graphics.Offset {
	return w.position.Sub(w.childOffset)
}

// IsInBounds reports whether a window-space point lies inside the widget.
func (w *Widget) IsInBounds(x, y float32) bool {
	return w.Rect().Contains(graphics.Offset{X: x, Y: y})
}

// Enable lets the widget react to input.
func (w *Widget) Enable() { w.enabled = true }

// Disable stops the widget reacting to input.
func (w *Widget) Disable() { w.enabled = false }

// SetPosition sets the position relative to the anchor, in pixels.
func (w *Widget) SetPosition(p graphics.Offset) {
	w.pos = layout.Px2(p.X, p.Y)
	w.relayout()
}

// SetX sets the horizontal position in pixels.
func (w *Widget) SetX(x float32) {
	w.pos.X = layout.Px(x)
	w.relayout()
}

// SetY sets the vertical position in pixels.
func (w *Widget) SetY(y float32) {
	w.pos.Y = layout.Px(y)
	w.relayout()
}

// SetDimensions sets the size in pixels.
func (w *Widget) SetDimensions(s graphics.Size) {
	w.size = layout2FromSize(s)
	w.relayout()
}

// SetWidth sets the width in pixels.
func (w *Widget) SetWidth(width float32) {
	w.size.X = layout.Px(width)
	w.relayout()
}

// SetHeight sets the height in pixels.
func (w *Widget) SetHeight(height float32) {
	w.size.Y = layout.Px(height)
	w.relayout()
}

// SetDestRect sets position and size in pixels in one pass.
func (w *Widget) SetDestRect(r graphics.Rect) {
	w.pos = layout.Px2(r.Left, r.Top)
	w.size = layout2FromSize(r.Size())
	w.relayout()
}

// SetPositionLength sets a unit-aware position.
func (w *Widget) SetPositionLength(l layout.Length2) {
	w.pos = l
	w.relayout()
}

// SetSizeLength sets a unit-aware size.
func (w *Widget) SetSizeLength(l layout.Length2) {
	w.size = l
	w.relayout()
}

// SetPositionType changes the anchor the position is measured from.
func (w *Widget) SetPositionType(p layout.PositionType) {
	w.positionType = p
	w.relayout()
}

// SetDock changes how the widget docks in its parent. Docking affects the
// siblings that follow, so the parent is laid out again.
func (w *Widget) SetDock(d layout.Dock) {
	w.dock = d
	if d.State == layout.DockNone {
		w.docked = false
	}
	if pn, ok := w.tree.Get(w.parent); ok {
		pn.updatePosition()
		return
	}
	w.relayout()
}

// SetClipping changes the per-edge clipping.
func (w *Widget) SetClipping(c layout.Clipping) {
	w.clipping = c
	w.relayout()
}

// relayout runs the owning node's full pass. A child of a panel moves the
// panel's scroll bounds, so the panel is laid out instead.
func (w *Widget) relayout() {
	if w.tree == nil {
		return
	}
	if !w.owned {
		if p, ok := w.tree.Panel(w.parent); ok {
			p.updatePosition()
			return
		}
	}
	if n, ok := w.tree.Get(w.handle); ok {
		n.updatePosition()
	}
}

// frame returns the reference sizes for resolving this widget's lengths.
func (w *Widget) frame() layout.Frame {
	f := layout.Frame{
		Own:    w.dimensions,
		Parent: w.tree.window,
		Window: w.tree.window,
	}
	if p := w.tree.base(w.parent); p != nil {
		f.Parent = p.dimensions
	}
	if v := w.tree.base(w.tree.root); v != nil {
		f.Viewport = v.dimensions
	}
	return f
}

// local resolves the widget's authored geometry relative to its anchor.
// Docked widgets take the rectangle their parent carved for them.
func (w *Widget) local() (graphics.Offset, graphics.Size) {
	if w.docked {
		return w.dockRect.Origin(), w.dockRect.Size()
	}
	f := w.frame()
	size := w.size.ResolveSize(f)
	size.Width = max(size.Width, 0)
	size.Height = max(size.Height, 0)
	// Positions measured against the widget's own size see the new size.
	f.Own = size
	return w.pos.ResolveOffset(f), size
}

// anchor returns the absolute point the relative position is added to.
func (w *Widget) anchor() graphics.Offset {
	var ref *Widget
	switch w.positionType {
	case layout.RelativeToParent, layout.StaticToParent:
		ref = w.tree.base(w.parent)
	case layout.RelativeToViewport, layout.StaticToViewport:
		ref = w.tree.base(w.tree.root)
		if ref == w {
			ref = nil
		}
	}
	if ref == nil {
		return graphics.Offset{}
	}
	if w.positionType.IsStatic() {
		return ref.position
	}
	return ref.ChildOrigin()
}

// layoutSelf resolves size, absolute position and clip rect.
func (w *Widget) layoutSelf() {
	w.relative, w.dimensions = w.local()
	w.dimensions.Width = max(w.dimensions.Width, 0)
	w.dimensions.Height = max(w.dimensions.Height, 0)
	w.position = w.anchor().Add(w.relative)

	window := w.tree.windowRect()
	parentClip := window
	if p := w.tree.base(w.parent); p != nil {
		parentClip = p.clipRect
	}
	w.clipRect = layout.CombineClip(parentClip, w.clipping, w.Rect(), window)
}

// placeChildren assigns dock rectangles to docked children in insertion
// order, carving from this widget's own area in local coordinates.
func (w *Widget) placeChildren() {
	free := graphics.RectFromLTWH(0, 0, w.dimensions.Width, w.dimensions.Height)
	for _, h := range w.children {
		c := w.tree.base(h)
		if c == nil {
			continue
		}
		if c.dock.State == layout.DockNone {
			c.docked = false
			continue
		}
		c.dockRect, free = layout.DockRect(free, c.dock)
		c.docked = true
	}
}

// layoutChildren docks and positions every child.
func (w *Widget) layoutChildren() {
	w.placeChildren()
	for _, h := range w.children {
		if n, ok := w.tree.Get(h); ok {
			n.updatePosition()
		}
	}
}

// handleMouseMove tracks enter and leave. It reports whether the hover state
// changed.
func (w *Widget) handleMouseMove(e MouseEvent) bool {
	if !w.enabled {
		return false
	}
	e.Sender = w.handle
	if w.Rect().Contains(e.offset()) {
		changed := false
		if !w.mouseIn {
			w.mouseIn = true
			w.MouseEnter.emit(e)
			changed = true
		}
		w.MouseMove.emit(e)
		return changed
	}
	if w.mouseIn {
		w.mouseIn = false
		w.MouseLeave.emit(e)
		return true
	}
	return false
}

// handleMouseFocusLost clears hover when the window loses the pointer.
func (w *Widget) handleMouseFocusLost(e MouseEvent) bool {
	if !w.enabled || !w.mouseIn {
		return false
	}
	e.Sender = w.handle
	w.mouseIn = false
	w.MouseLeave.emit(e)
	return true
}

// IsMouseIn reports whether the pointer was last seen inside the widget.
func (w *Widget) IsMouseIn() bool { return w.mouseIn }

func layout2FromSize(s graphics.Size) layout.Length2 {
	return layout.Px2(s.Width, s.Height)
}
