package widgets

import (
	"github.com/go-drift/dockui/pkg/graphics"
	"github.com/go-drift/dockui/pkg/render"
	"github.com/go-drift/dockui/pkg/resource"
	"github.com/go-drift/dockui/pkg/theme"
)

// Handle addresses a widget in a Tree. Handles carry a generation so a handle
// to a removed widget never resolves to whatever reuses its slot. The zero
// Handle addresses nothing.
type Handle struct {
	index uint32 // slot index + 1
	gen   uint32
}

// IsZero reports whether h addresses nothing.
func (h Handle) IsZero() bool {
	return h.index == 0
}

// Node is implemented by every widget kind stored in a Tree.
type Node interface {
	// Base returns the shared widget state.
	Base() *Widget
	// updatePosition re-resolves this widget's geometry against its parent,
	// lays out its children and refreshes its drawables.
	updatePosition()
	addDrawables(r *render.Renderer)
	removeDrawables(r *render.Renderer)
}

type slot struct {
	gen  uint32
	node Node
}

// Tree is an arena of widgets. Parent and child links are handles into the
// arena, never pointers, so removing a subtree cannot leave dangling
// references behind.
//
// A Tree is not safe for concurrent use. Every mutation lays out the affected
// widgets before it returns.
type Tree struct {
	slots    []slot
	free     []uint32
	window   graphics.Size
	root     Handle
	renderer  *render.Renderer
	theme     *theme.ThemeData
	resources *resource.Context
}

// NewTree returns a tree whose root viewport covers the whole window.
// A nil theme uses theme.Default().
func NewTree(window graphics.Size, th *theme.ThemeData) *Tree {
	if th == nil {
		th = theme.Default()
	}
	t := &Tree{window: window, theme: th, resources: resource.NewContext()}
	v := &Viewport{}
	t.root = t.insert(v, "viewport")
	v.size = layout2FromSize(window)
	v.updatePosition()
	return t
}

// Root returns the viewport at the top of the tree.
func (t *Tree) Root() Handle {
	return t.root
}

// Resources returns the context that owns textures handed to panels with
// SetOwnedTexture.
func (t *Tree) Resources() *resource.Context {
	return t.resources
}

// Theme returns the theme new widgets take their defaults from.
func (t *Tree) Theme() *theme.ThemeData {
	return t.theme
}

// Window returns the window size.
func (t *Tree) Window() graphics.Size {
	return t.window
}

// SetWindowSize resizes the window and the root viewport, then lays out the
// whole tree.
func (t *Tree) SetWindowSize(s graphics.Size) {
	t.window = s
	if v, ok := t.Get(t.root); ok {
		v.Base().size = layout2FromSize(s)
		v.updatePosition()
	}
}

func (t *Tree) windowRect() graphics.Rect {
	return graphics.RectFromLTWH(0, 0, t.window.Width, t.window.Height)
}

func (t *Tree) insert(n Node, name string) Handle {
	var idx uint32
	if len(t.free) > 0 {
		idx = t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
	} else {
		t.slots = append(t.slots, slot{})
		idx = uint32(len(t.slots) - 1)
	}
	s := &t.slots[idx]
	s.gen++
	s.node = n
	h := Handle{index: idx + 1, gen: s.gen}
	n.Base().init(t, h, name)
	return h
}

// Get returns the widget addressed by h.
func (t *Tree) Get(h Handle) (Node, bool) {
	if h.index == 0 || int(h.index) > len(t.slots) {
		return nil, false
	}
	s := t.slots[h.index-1]
	if s.gen != h.gen || s.node == nil {
		return nil, false
	}
	return s.node, true
}

func (t *Tree) base(h Handle) *Widget {
	n, ok := t.Get(h)
	if !ok {
		return nil
	}
	return n.Base()
}

// Panel returns the panel addressed by h.
func (t *Tree) Panel(h Handle) (*Panel, bool) {
	n, ok := t.Get(h)
	if !ok {
		return nil, false
	}
	p, ok := n.(*Panel)
	return p, ok
}

// Len returns the number of live widgets, including the root viewport and
// panel scrollbars.
func (t *Tree) Len() int {
	return len(t.slots) - len(t.free)
}

// AddChild appends child to parent's children and lays parent out again.
// It fails if either handle is stale, child already has a parent, or the
// link would create a cycle.
func (t *Tree) AddChild(parent, child Handle) bool {
	pn, ok := t.Get(parent)
	if !ok {
		return false
	}
	c := t.base(child)
	if c == nil || c.owned || !c.parent.IsZero() || child == t.root {
		return false
	}
	for a := parent; !a.IsZero(); a = t.base(a).parent {
		if a == child {
			return false
		}
	}

	p := pn.Base()
	p.children = append(p.children, child)
	c.parent = parent
	if t.renderer != nil && t.connected(parent) {
		// Re-register so draw order stays parent, children, then owned
		// widgets such as scrollbars.
		t.removeDrawables(t.root)
		t.addDrawables(t.root)
	}
	pn.updatePosition()
	return true
}

// Remove detaches h from its parent, frees it and every descendant, and
// unregisters their drawables. The root cannot be removed.
func (t *Tree) Remove(h Handle) bool {
	w := t.base(h)
	if w == nil || h == t.root || w.owned {
		return false
	}
	parent := w.parent
	if pn, ok := t.Get(parent); ok {
		p := pn.Base()
		for i, c := range p.children {
			if c == h {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	t.release(h)
	if pn, ok := t.Get(parent); ok {
		pn.updatePosition()
	}
	return true
}

func (t *Tree) release(h Handle) {
	n, ok := t.Get(h)
	if !ok {
		return
	}
	w := n.Base()
	for _, c := range w.children {
		t.release(c)
	}
	for _, o := range w.ownedChildren {
		t.release(o)
	}
	if t.renderer != nil {
		n.removeDrawables(t.renderer)
	}
	if p, ok := n.(*Panel); ok {
		p.releaseTexture()
	}
	t.slots[h.index-1].node = nil
	t.free = append(t.free, h.index-1)
}

// connected reports whether h hangs off the root viewport.
func (t *Tree) connected(h Handle) bool {
	for a := h; !a.IsZero(); {
		if a == t.root {
			return true
		}
		w := t.base(a)
		if w == nil {
			return false
		}
		a = w.parent
	}
	return false
}

// SetRenderer registers the drawables of every widget connected to the root
// with r. Widgets connected later register as they are added. Passing nil
// unregisters everything from the previous renderer.
func (t *Tree) SetRenderer(r *render.Renderer) {
	if t.renderer != nil {
		t.removeDrawables(t.root)
	}
	t.renderer = r
	if r != nil {
		t.addDrawables(t.root)
	}
}

// Renderer returns the renderer set with SetRenderer.
func (t *Tree) Renderer() *render.Renderer {
	return t.renderer
}

func (t *Tree) addDrawables(h Handle) {
	n, ok := t.Get(h)
	if !ok {
		return
	}
	n.addDrawables(t.renderer)
	for _, c := range n.Base().children {
		t.addDrawables(c)
	}
	for _, o := range n.Base().ownedChildren {
		t.addDrawables(o)
	}
}

func (t *Tree) removeDrawables(h Handle) {
	n, ok := t.Get(h)
	if !ok {
		return
	}
	n.removeDrawables(t.renderer)
	for _, c := range n.Base().children {
		t.removeDrawables(c)
	}
	for _, o := range n.Base().ownedChildren {
		t.removeDrawables(o)
	}
}

// Viewport is the root of a tree. It has no visuals of its own and spans the
// window unless resized.
type Viewport struct {
	Widget
}

func (v *Viewport) updatePosition() {
	v.layoutSelf()
	v.layoutChildren()
}

func (v *Viewport) addDrawables(*render.Renderer)    {}
func (v *Viewport) removeDrawables(*render.Renderer) {}

// invalidate marks the snapshots of ref as stale on the attached renderer.
func (t *Tree) invalidate(ref any) {
	if t.renderer != nil {
		t.renderer.Invalidate(ref)
	}
}
