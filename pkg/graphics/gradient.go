package graphics

import "fmt"

// GradientType describes the direction a two-color gradient runs in.
type GradientType int

const (
	// GradientNone draws Color1 only.
	GradientNone GradientType = iota
	// GradientHorizontal blends Color1 on the left into Color2 on the right.
	GradientHorizontal
	// GradientVertical blends Color1 on the top into Color2 on the bottom.
	GradientVertical
	// GradientLeftDiagonal blends from the top-left corner to the bottom-right.
	GradientLeftDiagonal
	// GradientRightDiagonal blends from the top-right corner to the bottom-left.
	GradientRightDiagonal
)

var gradientTypeNames = [...]string{
	GradientNone:          "none",
	GradientHorizontal:    "horizontal",
	GradientVertical:      "vertical",
	GradientLeftDiagonal:  "left_diagonal",
	GradientRightDiagonal: "right_diagonal",
}

// String returns the declarative name of the gradient type.
func (t GradientType) String() string {
	if t >= 0 && int(t) < len(gradientTypeNames) {
		return gradientTypeNames[t]
	}
	return fmt.Sprintf("GradientType(%d)", int(t))
}

// ParseGradientType maps a declarative name to a GradientType.
func ParseGradientType(name string) (GradientType, bool) {
	for i, n := range gradientTypeNames {
		if n == name {
			return GradientType(i), true
		}
	}
	return GradientNone, false
}

// Gradient is a two-color fill.
type Gradient struct {
	Color1 Color
	Color2 Color
	Type   GradientType
}
