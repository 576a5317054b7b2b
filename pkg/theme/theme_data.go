// Package theme holds the default colors and metrics new widgets start from.
package theme

import "github.com/go-drift/dockui/pkg/graphics"

// ThemeData contains the widget defaults for a tree.
type ThemeData struct {
	// PanelColor fills panels that are not hovered.
	PanelColor graphics.Color
	// PanelHoverColor fills panels under the pointer.
	PanelHoverColor graphics.Color

	SliderBarColor   graphics.Color
	SliderSlideColor graphics.Color
	SliderHoverColor graphics.Color

	TextColor graphics.Color

	// SliderWidth is the thickness of panel scrollbars in pixels.
	SliderWidth float32
}

// Default returns the built-in theme.
func Default() *ThemeData {
	return &ThemeData{
		PanelColor:       graphics.ColorLightGray,
		PanelHoverColor:  graphics.ColorLightGray,
		SliderBarColor:   graphics.ColorGray,
		SliderSlideColor: graphics.ColorDarkGray,
		SliderHoverColor: graphics.ColorBlack,
		TextColor:        graphics.ColorBlack,
		SliderWidth:      15,
	}
}

// Copy returns an independent copy of t.
func (t *ThemeData) Copy() *ThemeData {
	c := *t
	return &c
}
