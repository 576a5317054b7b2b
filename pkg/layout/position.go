package layout

import "fmt"

// PositionType chooses the anchor a widget's authored position is measured
// from.
//
// Relative types follow the anchor's child origin, which moves when a
// scrolling container scrolls. Static types use the anchor's own position
// and stay put while the container scrolls.
type PositionType int

const (
	RelativeToParent PositionType = iota
	RelativeToViewport
	RelativeToWindow
	StaticToParent
	StaticToViewport
	StaticToWindow
)

var positionTypeNames = [...]string{
	RelativeToParent:   "relative_to_parent",
	RelativeToViewport: "relative_to_viewport",
	RelativeToWindow:   "relative_to_window",
	StaticToParent:     "static_to_parent",
	StaticToViewport:   "static_to_viewport",
	StaticToWindow:     "static_to_window",
}

func (p PositionType) String() string {
	if p >= 0 && int(p) < len(positionTypeNames) {
		return positionTypeNames[p]
	}
	return fmt.Sprintf("PositionType(%d)", int(p))
}

// ParsePositionType maps a declarative name to a PositionType.
func ParsePositionType(name string) (PositionType, bool) {
	for i, n := range positionTypeNames {
		if n == name {
			return PositionType(i), true
		}
	}
	return RelativeToParent, false
}

// IsStatic reports whether the position ignores the anchor's scroll offset.
func (p PositionType) IsStatic() bool {
	return p >= StaticToParent
}
