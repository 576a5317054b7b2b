package layout

import (
	"fmt"

	"github.com/go-drift/dockui/pkg/graphics"
)

// DockState names the edge of the parent's free area a widget attaches to.
type DockState int

const (
	DockNone DockState = iota
	DockLeft
	DockRight
	DockTop
	DockBottom
	DockFill
)

var dockStateNames = [...]string{
	DockNone:   "none",
	DockLeft:   "left",
	DockRight:  "right",
	DockTop:    "top",
	DockBottom: "bottom",
	DockFill:   "fill",
}

func (s DockState) String() string {
	if s >= 0 && int(s) < len(dockStateNames) {
		return dockStateNames[s]
	}
	return fmt.Sprintf("DockState(%d)", int(s))
}

// ParseDockState maps a declarative name to a DockState.
func ParseDockState(name string) (DockState, bool) {
	for i, n := range dockStateNames {
		if n == name {
			return DockState(i), true
		}
	}
	return DockNone, false
}

// Dock requests a slice of the parent's free area. Size is the extent along
// the docked axis and is ignored for DockNone and DockFill.
type Dock struct {
	State DockState
	Size  float32
}

// DockRect carves the rectangle for d out of free and returns it together
// with the free area left for the next sibling.
//
// The requested size is clamped to what is still free, so docked extents
// never add up past the original rectangle. DockFill takes everything and
// leaves a zero-extent remainder at free's bottom-right corner; any later
// request receives zero area. DockNone assigns nothing and leaves free as is.
func DockRect(free graphics.Rect, d Dock) (assigned, remaining graphics.Rect) {
	free = free.Collapse()
	size := max(d.Size, 0)

	switch d.State {
	case DockLeft:
		size = min(size, free.Width())
		assigned = graphics.Rect{Left: free.Left, Top: free.Top, Right: free.Left + size, Bottom: free.Bottom}
		remaining = free
		remaining.Left = assigned.Right
	case DockRight:
		size = min(size, free.Width())
		assigned = graphics.Rect{Left: free.Right - size, Top: free.Top, Right: free.Right, Bottom: free.Bottom}
		remaining = free
		remaining.Right = assigned.Left
	case DockTop:
		size = min(size, free.Height())
		assigned = graphics.Rect{Left: free.Left, Top: free.Top, Right: free.Right, Bottom: free.Top + size}
		remaining = free
		remaining.Top = assigned.Bottom
	case DockBottom:
		size = min(size, free.Height())
		assigned = graphics.Rect{Left: free.Left, Top: free.Bottom - size, Right: free.Right, Bottom: free.Bottom}
		remaining = free
		remaining.Bottom = assigned.Top
	case DockFill:
		assigned = free
		remaining = graphics.Rect{Left: free.Right, Top: free.Bottom, Right: free.Right, Bottom: free.Bottom}
	default:
		return graphics.Rect{}, free
	}
	return assigned, remaining
}

// DockAll assigns rectangles for a sequence of dock requests in order,
// starting from free. Entries with DockNone get a zero rect.
func DockAll(free graphics.Rect, docks []Dock) (assigned []graphics.Rect, remaining graphics.Rect) {
	assigned = make([]graphics.Rect, len(docks))
	remaining = free
	for i, d := range docks {
		assigned[i], remaining = DockRect(remaining, d)
	}
	return assigned, remaining
}
