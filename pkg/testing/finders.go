package testing

import (
	"fmt"
	"reflect"

	"github.com/go-drift/dockui/pkg/widgets"
)

// Finder locates widgets in a tree.
type Finder interface {
	// Evaluate returns all matching widgets (depth-first pre-order, owned
	// widgets after children).
	Evaluate(tree *widgets.Tree) []widgets.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []widgets.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() widgets.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no widgets: %s", r.describe()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() widgets.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) widgets.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.describe()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []widgets.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// --- Concrete finders ---

type predicateFinder struct {
	match func(widgets.Node) bool
	desc  string
}

func (f *predicateFinder) Evaluate(tree *widgets.Tree) []widgets.Node {
	var out []widgets.Node
	visit(tree, tree.Root(), func(n widgets.Node) {
		if f.match(n) {
			out = append(out, n)
		}
	})
	return out
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByName returns a finder that matches widgets with the given name.
func ByName(name string) Finder {
	return &predicateFinder{
		match: func(n widgets.Node) bool { return n.Base().Name() == name },
		desc:  fmt.Sprintf("ByName(%q)", name),
	}
}

// ByType returns a finder that matches widgets of type T, such as
// *widgets.Panel.
func ByType[T widgets.Node]() Finder {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return &predicateFinder{
		match: func(n widgets.Node) bool { return reflect.TypeOf(n) == t },
		desc:  fmt.Sprintf("ByType(%s)", t),
	}
}

// ByPredicate returns a finder that matches widgets for which fn is true.
func ByPredicate(desc string, fn func(widgets.Node) bool) Finder {
	return &predicateFinder{match: fn, desc: fmt.Sprintf("ByPredicate(%s)", desc)}
}

// AtPoint returns a finder that matches enabled widgets containing the
// window point (x, y).
func AtPoint(x, y float32) Finder {
	return &predicateFinder{
		match: func(n widgets.Node) bool {
			b := n.Base()
			return b.IsEnabled() && b.IsInBounds(x, y)
		},
		desc: fmt.Sprintf("AtPoint(%g, %g)", x, y),
	}
}

// visit walks h, its children and then its panel scrollbars.
func visit(tree *widgets.Tree, h widgets.Handle, fn func(widgets.Node)) {
	n, ok := tree.Get(h)
	if !ok {
		return
	}
	fn(n)
	for _, c := range n.Base().Children() {
		visit(tree, c, fn)
	}
	if p, ok := n.(*widgets.Panel); ok {
		fn(p.HorizontalSlider())
		fn(p.VerticalSlider())
	}
}
