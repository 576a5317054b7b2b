package cmd

import (
	"fmt"

	"github.com/go-drift/dockui/pkg/graphics"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Show the resolved theme",
		Long: `Print the widget defaults after applying theme.toml on top of the
built-in theme.

Flags:
  --theme FILE     theme.toml to use instead of the one in dockui.yaml`,
		Usage: "dockui theme [--theme FILE]",
		Run:   runTheme,
	})
}

func hex(c graphics.Color) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func runTheme(args []string) error {
	p, err := loadProject(args)
	if err != nil {
		return err
	}
	if len(p.files) > 0 {
		return fmt.Errorf("unexpected argument %q\n\nUsage: dockui theme [--theme FILE]", p.files[0])
	}
	th := p.theme
	source := p.cfg.ThemePath
	if source == "" {
		source = "built-in"
	}
	fmt.Fprintf(stdout, "Theme: %s\n", source)
	fmt.Fprintf(stdout, "  panel.color         %s\n", hex(th.PanelColor))
	fmt.Fprintf(stdout, "  panel.hover_color   %s\n", hex(th.PanelHoverColor))
	fmt.Fprintf(stdout, "  slider.width        %g\n", th.SliderWidth)
	fmt.Fprintf(stdout, "  slider.bar_color    %s\n", hex(th.SliderBarColor))
	fmt.Fprintf(stdout, "  slider.slide_color  %s\n", hex(th.SliderSlideColor))
	fmt.Fprintf(stdout, "  slider.hover_color  %s\n", hex(th.SliderHoverColor))
	fmt.Fprintf(stdout, "  text.color          %s\n", hex(th.TextColor))
	return nil
}
