package layout

import (
	"fmt"

	"github.com/go-drift/dockui/pkg/graphics"
)

// ClippingState controls one edge of a widget's clip rectangle.
type ClippingState int

const (
	// ClipInherit keeps the parent's clip edge.
	ClipInherit ClippingState = iota
	// ClipVisible removes clipping on the edge, out to the window extent.
	ClipVisible
	// ClipHidden pins the edge to the opposite edge of the widget, leaving no
	// visible extent on that side.
	ClipHidden
)

var clippingStateNames = [...]string{
	ClipInherit: "inherit",
	ClipVisible: "visible",
	ClipHidden:  "hidden",
}

func (s ClippingState) String() string {
	if s >= 0 && int(s) < len(clippingStateNames) {
		return clippingStateNames[s]
	}
	return fmt.Sprintf("ClippingState(%d)", int(s))
}

// ParseClippingState maps a declarative name to a ClippingState.
func ParseClippingState(name string) (ClippingState, bool) {
	for i, n := range clippingStateNames {
		if n == name {
			return ClippingState(i), true
		}
	}
	return ClipInherit, false
}

// Clipping is the per-edge clipping configuration of a widget. The zero
// value inherits every edge.
type Clipping struct {
	Left, Top, Right, Bottom ClippingState
}

// ClippingAll returns a Clipping with every edge set to s.
func ClippingAll(s ClippingState) Clipping {
	return Clipping{Left: s, Top: s, Right: s, Bottom: s}
}

// CombineClip composes a widget's clip rectangle from its parent's. Each edge
// is decided on its own, then the result is intersected with own so nothing
// outside the widget is drawn. A negative extent collapses to zero.
func CombineClip(parent graphics.Rect, c Clipping, own, window graphics.Rect) graphics.Rect {
	out := graphics.Rect{
		Left:   clipEdge(c.Left, parent.Left, own.Right, window.Left),
		Top:    clipEdge(c.Top, parent.Top, own.Bottom, window.Top),
		Right:  clipEdge(c.Right, parent.Right, own.Left, window.Right),
		Bottom: clipEdge(c.Bottom, parent.Bottom, own.Top, window.Bottom),
	}
	return out.Collapse().Intersect(own)
}

func clipEdge(s ClippingState, parentEdge, ownOpposite, windowEdge float32) float32 {
	switch s {
	case ClipHidden:
		return ownOpposite
	case ClipVisible:
		return windowEdge
	default:
		return parentEdge
	}
}
