package testing

import (
	"testing"

	"github.com/go-drift/dockui/pkg/graphics"
	"github.com/go-drift/dockui/pkg/render"
	"github.com/go-drift/dockui/pkg/theme"
	"github.com/go-drift/dockui/pkg/widgets"
)

const (
	// DefaultTestWidth is the default window width.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default window height.
	DefaultTestHeight = 600
)

// Tester owns a widget tree attached to a renderer and simulates pointer
// input against it.
type Tester struct {
	tree     *widgets.Tree
	renderer *render.Renderer
	recorder *render.Recorder
}

// NewTester creates a tester with a default-sized window and the default
// theme.
func NewTester() *Tester {
	return NewTesterWithTheme(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}, theme.Default())
}

// NewTesterWithTheme creates a tester with the given window size and theme.
func NewTesterWithTheme(size graphics.Size, th *theme.ThemeData) *Tester {
	t := &Tester{
		tree:     widgets.NewTree(size, th),
		renderer: render.NewRenderer(),
		recorder: &render.Recorder{},
	}
	t.tree.SetRenderer(t.renderer)
	return t
}

// NewTesterWithT creates a tester that detaches its renderer via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unregisters every drawable from the tester's renderer.
func (t *Tester) Cleanup() {
	t.tree.SetRenderer(nil)
}

// Tree returns the widget tree under test.
func (t *Tester) Tree() *widgets.Tree {
	return t.tree
}

// Renderer returns the renderer the tree draws through.
func (t *Tester) Renderer() *render.Renderer {
	return t.renderer
}

// SetWindowSize resizes the window and lays the tree out again.
func (t *Tester) SetWindowSize(size graphics.Size) {
	t.tree.SetWindowSize(size)
}

// Frame renders one frame and returns its draw calls.
func (t *Tester) Frame() *render.DisplayList {
	t.renderer.Render(t.recorder)
	return t.recorder.Finish()
}

// MoveMouse moves the pointer to (x, y).
func (t *Tester) MoveMouse(x, y float32) {
	t.tree.HandleMouseMove(x, y)
}

// Press presses at (x, y).
func (t *Tester) Press(x, y float32) {
	t.tree.HandleMouseDown(x, y)
}

// MouseFocusLost reports that the pointer left the window.
func (t *Tester) MouseFocusLost() {
	t.tree.HandleMouseFocusLost()
}

// Find evaluates f against the tree.
func (t *Tester) Find(f Finder) FinderResult {
	return FinderResult{nodes: f.Evaluate(t.tree), finder: f}
}
