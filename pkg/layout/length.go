package layout

import (
	"fmt"

	"github.com/go-drift/dockui/pkg/graphics"
)

// DimensionKind selects the reference frame a Length scales against.
type DimensionKind int

const (
	Pixel DimensionKind = iota
	WidthPercentage
	HeightPercentage
	MinPercentage
	MaxPercentage
	ParentWidthPercentage
	ParentHeightPercentage
	ParentMinPercentage
	ParentMaxPercentage
	ViewportWidthPercentage
	ViewportHeightPercentage
	ViewportMinPercentage
	ViewportMaxPercentage
	WindowWidthPercentage
	WindowHeightPercentage
	WindowMinPercentage
	WindowMaxPercentage
)

var dimensionKindNames = [...]string{
	Pixel:                    "pixel",
	WidthPercentage:          "width_percentage",
	HeightPercentage:         "height_percentage",
	MinPercentage:            "min_percentage",
	MaxPercentage:            "max_percentage",
	ParentWidthPercentage:    "parent_width_percentage",
	ParentHeightPercentage:   "parent_height_percentage",
	ParentMinPercentage:      "parent_min_percentage",
	ParentMaxPercentage:      "parent_max_percentage",
	ViewportWidthPercentage:  "viewport_width_percentage",
	ViewportHeightPercentage: "viewport_height_percentage",
	ViewportMinPercentage:    "viewport_min_percentage",
	ViewportMaxPercentage:    "viewport_max_percentage",
	WindowWidthPercentage:    "window_width_percentage",
	WindowHeightPercentage:   "window_height_percentage",
	WindowMinPercentage:      "window_min_percentage",
	WindowMaxPercentage:      "window_max_percentage",
}

func (k DimensionKind) String() string {
	if k >= 0 && int(k) < len(dimensionKindNames) {
		return dimensionKindNames[k]
	}
	return fmt.Sprintf("DimensionKind(%d)", int(k))
}

// ParseDimensionKind maps a declarative name to a DimensionKind.
func ParseDimensionKind(name string) (DimensionKind, bool) {
	for i, n := range dimensionKindNames {
		if n == name {
			return DimensionKind(i), true
		}
	}
	return Pixel, false
}

// Frame is the set of reference sizes a Length may be resolved against.
type Frame struct {
	Own      graphics.Size
	Parent   graphics.Size
	Viewport graphics.Size
	Window   graphics.Size
}

// Length is a scalar paired with the unit it is measured in.
// Percentage kinds take Value in percent: 50 means half the reference.
type Length struct {
	Value float32
	Unit  DimensionKind
}

// Px returns a pixel Length.
func Px(v float32) Length {
	return Length{Value: v, Unit: Pixel}
}

// Resolve converts l to pixels against f.
func (l Length) Resolve(f Frame) float32 {
	return Resolve(l, f)
}

// Resolve converts a Length to absolute pixels. It is pure and total: a kind
// outside the known set resolves as pixels.
func Resolve(l Length, f Frame) float32 {
	if l.Unit == Pixel {
		return l.Value
	}
	ref, ok := reference(l.Unit, f)
	if !ok {
		return l.Value
	}
	return l.Value * ref / 100
}

func reference(k DimensionKind, f Frame) (float32, bool) {
	var s graphics.Size
	switch k {
	case WidthPercentage, HeightPercentage, MinPercentage, MaxPercentage:
		s = f.Own
	case ParentWidthPercentage, ParentHeightPercentage, ParentMinPercentage, ParentMaxPercentage:
		s = f.Parent
	case ViewportWidthPercentage, ViewportHeightPercentage, ViewportMinPercentage, ViewportMaxPercentage:
		s = f.Viewport
	case WindowWidthPercentage, WindowHeightPercentage, WindowMinPercentage, WindowMaxPercentage:
		s = f.Window
	default:
		return 0, false
	}
	// Kinds are laid out in groups of four: width, height, min, max.
	switch (k - WidthPercentage) % 4 {
	case 0:
		return s.Width, true
	case 1:
		return s.Height, true
	case 2:
		return s.Min(), true
	default:
		return s.Max(), true
	}
}

// Length2 pairs two independently-unitized lengths, typically an x/y
// position or a width/height.
type Length2 struct {
	X Length
	Y Length
}

// Px2 returns a pixel Length2.
func Px2(x, y float32) Length2 {
	return Length2{X: Px(x), Y: Px(y)}
}

// ResolveOffset resolves both axes as a point.
func (l Length2) ResolveOffset(f Frame) graphics.Offset {
	return graphics.Offset{X: Resolve(l.X, f), Y: Resolve(l.Y, f)}
}

// ResolveSize resolves both axes as a size.
func (l Length2) ResolveSize(f Frame) graphics.Size {
	return graphics.Size{Width: Resolve(l.X, f), Height: Resolve(l.Y, f)}
}

// Edges holds per-edge pixel amounts.
type Edges struct {
	Left, Top, Right, Bottom float32
}

// Length4 holds four independently-unitized lengths, in left, top, right,
// bottom order.
type Length4 struct {
	X, Y, Z, W Length
}

// Resolve resolves each component independently.
func (l Length4) Resolve(f Frame) Edges {
	return Edges{
		Left:   Resolve(l.X, f),
		Top:    Resolve(l.Y, f),
		Right:  Resolve(l.Z, f),
		Bottom: Resolve(l.W, f),
	}
}
