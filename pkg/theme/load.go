package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/dockui/pkg/errors"
	"github.com/go-drift/dockui/pkg/graphics"
	"github.com/pelletier/go-toml/v2"
)

// File mirrors theme.toml. Colors are hex strings in #RRGGBB or #RRGGBBAA
// form. Fields left empty keep their default.
type File struct {
	Panel struct {
		Color      string `toml:"color"`
		HoverColor string `toml:"hover_color"`
	} `toml:"panel"`
	Slider struct {
		Width      float32 `toml:"width"`
		BarColor   string  `toml:"bar_color"`
		SlideColor string  `toml:"slide_color"`
		HoverColor string  `toml:"hover_color"`
	} `toml:"slider"`
	Text struct {
		Color string `toml:"color"`
	} `toml:"text"`
}

// Load reads a theme.toml file on top of the default theme.
func Load(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.UIError{Op: "theme.Load", Kind: errors.KindConfig, Err: err}
	}
	return Parse(data)
}

// Parse decodes theme.toml content on top of the default theme.
func Parse(data []byte) (*ThemeData, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, &errors.UIError{Op: "theme.Parse", Kind: errors.KindConfig, Err: err}
	}
	t := Default()
	fields := []struct {
		name string
		src  string
		dst  *graphics.Color
	}{
		{"panel.color", f.Panel.Color, &t.PanelColor},
		{"panel.hover_color", f.Panel.HoverColor, &t.PanelHoverColor},
		{"slider.bar_color", f.Slider.BarColor, &t.SliderBarColor},
		{"slider.slide_color", f.Slider.SlideColor, &t.SliderSlideColor},
		{"slider.hover_color", f.Slider.HoverColor, &t.SliderHoverColor},
		{"text.color", f.Text.Color, &t.TextColor},
	}
	for _, fl := range fields {
		if fl.src == "" {
			continue
		}
		c, err := ParseHexColor(fl.src)
		if err != nil {
			return nil, &errors.UIError{Op: "theme.Parse", Kind: errors.KindConfig, Widget: fl.name, Err: err}
		}
		*fl.dst = c
	}
	if f.Slider.Width < 0 {
		return nil, &errors.UIError{
			Op:     "theme.Parse",
			Kind:   errors.KindConfig,
			Widget: "slider.width",
			Err:    fmt.Errorf("negative width %v", f.Slider.Width),
		}
	}
	if f.Slider.Width > 0 {
		t.SliderWidth = f.Slider.Width
	}
	return t, nil
}

// ParseHexColor parses #RRGGBB or #RRGGBBAA. The leading # is optional.
func ParseHexColor(s string) (graphics.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return graphics.Color{}, fmt.Errorf("color %q: want 6 or 8 hex digits", s)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return graphics.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return graphics.RGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
