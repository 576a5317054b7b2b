// Package widgets holds the retained widget tree.
//
// Widgets live in a Tree arena and refer to each other by Handle. Every
// mutation lays out the affected subtree synchronously before returning:
// lengths are resolved against the parent, docked children carve their
// rectangles out of the parent in insertion order, clip rectangles are
// composed top-down, and panels with auto-scroll translate their children
// by the offset their scrollbars select.
//
// A Tree attached to a render.Renderer keeps one snapshot per drawable.
// Layout writes the live drawable and marks the snapshot stale; the renderer
// copies it over at the start of the next frame.
//
//	t := widgets.NewTree(graphics.Size{Width: 800, Height: 600}, nil)
//	p := t.NewPanel("sidebar")
//	p.SetDock(layout.Dock{State: layout.DockLeft, Size: 200})
//	t.AddChild(t.Root(), p.Handle())
package widgets
