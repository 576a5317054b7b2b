package graphics

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TextAlign anchors text inside its destination rectangle.
type TextAlign int

const (
	TextAlignNone TextAlign = iota
	TextAlignLeft
	TextAlignTopLeft
	TextAlignTop
	TextAlignTopRight
	TextAlignRight
	TextAlignBottomRight
	TextAlignBottom
	TextAlignBottomLeft
	TextAlignCenter
)

var textAlignNames = [...]string{
	TextAlignNone:        "none",
	TextAlignLeft:        "left",
	TextAlignTopLeft:     "top_left",
	TextAlignTop:         "top",
	TextAlignTopRight:    "top_right",
	TextAlignRight:       "right",
	TextAlignBottomRight: "bottom_right",
	TextAlignBottom:      "bottom",
	TextAlignBottomLeft:  "bottom_left",
	TextAlignCenter:      "center",
}

func (a TextAlign) String() string {
	if a >= 0 && int(a) < len(textAlignNames) {
		return textAlignNames[a]
	}
	return fmt.Sprintf("TextAlign(%d)", int(a))
}

// ParseTextAlign maps a declarative name to a TextAlign.
func ParseTextAlign(name string) (TextAlign, bool) {
	for i, n := range textAlignNames {
		if n == name {
			return TextAlign(i), true
		}
	}
	return TextAlignNone, false
}

// MeasureText returns the unscaled-then-scaled extent of a single line of
// text in the given face. A nil face measures as zero.
func MeasureText(face font.Face, text string, scale Offset) Size {
	if face == nil || text == "" {
		return Size{}
	}
	advance := font.MeasureString(face, text)
	height := face.Metrics().Height
	return Size{
		Width:  fixedToFloat(advance) * scale.X,
		Height: fixedToFloat(height) * scale.Y,
	}
}

// AlignText returns the top-left origin for a block of the given size
// anchored inside bounds. TextAlignNone places the text at the bounds origin.
func AlignText(align TextAlign, bounds Rect, text Size) Offset {
	left := bounds.Left
	centerX := bounds.Left + (bounds.Width()-text.Width)/2
	right := bounds.Right - text.Width
	top := bounds.Top
	centerY := bounds.Top + (bounds.Height()-text.Height)/2
	bottom := bounds.Bottom - text.Height

	switch align {
	case TextAlignLeft:
		return Offset{X: left, Y: centerY}
	case TextAlignTopLeft:
		return Offset{X: left, Y: top}
	case TextAlignTop:
		return Offset{X: centerX, Y: top}
	case TextAlignTopRight:
		return Offset{X: right, Y: top}
	case TextAlignRight:
		return Offset{X: right, Y: centerY}
	case TextAlignBottomRight:
		return Offset{X: right, Y: bottom}
	case TextAlignBottom:
		return Offset{X: centerX, Y: bottom}
	case TextAlignBottomLeft:
		return Offset{X: left, Y: bottom}
	case TextAlignCenter:
		return Offset{X: centerX, Y: centerY}
	default:
		return bounds.Origin()
	}
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
