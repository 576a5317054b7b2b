package widgets

type hoverable interface {
	hoverChanged()
}

type pressable interface {
	handleMouseDown(e MouseEvent)
}

// HandleMouseMove delivers a pointer move to every widget in the tree.
func (t *Tree) HandleMouseMove(x, y float32) {
	t.dispatchMouseMove(t.root, MouseEvent{X: x, Y: y})
}

// HandleMouseFocusLost tells every widget the pointer left the window.
func (t *Tree) HandleMouseFocusLost() {
	t.dispatchMouseFocusLost(t.root, MouseEvent{})
}

// HandleMouseDown delivers a press to every widget in the tree. Sliders
// under the pointer jump to the pressed position.
func (t *Tree) HandleMouseDown(x, y float32) {
	t.walk(t.root, func(n Node) {
		if p, ok := n.(pressable); ok {
			p.handleMouseDown(MouseEvent{X: x, Y: y})
		}
	})
}

func (t *Tree) dispatchMouseMove(h Handle, e MouseEvent) {
	t.walk(h, func(n Node) {
		if n.Base().handleMouseMove(e) {
			if hv, ok := n.(hoverable); ok {
				hv.hoverChanged()
			}
		}
	})
}

func (t *Tree) dispatchMouseFocusLost(h Handle, e MouseEvent) {
	t.walk(h, func(n Node) {
		if n.Base().handleMouseFocusLost(e) {
			if hv, ok := n.(hoverable); ok {
				hv.hoverChanged()
			}
		}
	})
}

// walk visits h, its children and then its owned widgets, depth first.
// The child lists are copied first so fn may change the tree.
func (t *Tree) walk(h Handle, fn func(Node)) {
	n, ok := t.Get(h)
	if !ok {
		return
	}
	fn(n)
	w := n.Base()
	next := make([]Handle, 0, len(w.children)+len(w.ownedChildren))
	next = append(next, w.children...)
	next = append(next, w.ownedChildren...)
	for _, c := range next {
		t.walk(c, fn)
	}
}
