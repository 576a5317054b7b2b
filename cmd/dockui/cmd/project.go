package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/dockui/cmd/dockui/internal/config"
	"github.com/go-drift/dockui/pkg/graphics"
	"github.com/go-drift/dockui/pkg/theme"
)

// project is the resolved configuration plus command line overrides.
type project struct {
	cfg   *config.Resolved
	theme *theme.ThemeData
	files []string
}

// loadProject resolves dockui.yaml from the project root (or the working
// directory outside a project) and applies --window and --theme overrides.
// Remaining arguments are returned as files.
func loadProject(args []string) (*project, error) {
	root, err := config.FindProjectRoot()
	if err != nil {
		if root, err = os.Getwd(); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return nil, err
	}

	p := &project{cfg: cfg}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		value := func(flag string) (string, error) {
			if v, ok := strings.CutPrefix(arg, flag+"="); ok {
				return v, nil
			}
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s requires a value", flag)
			}
			i++
			return args[i], nil
		}
		switch {
		case arg == "--window" || strings.HasPrefix(arg, "--window="):
			v, err := value("--window")
			if err != nil {
				return nil, err
			}
			if cfg.Window, err = parseWindow(v); err != nil {
				return nil, err
			}
		case arg == "--theme" || strings.HasPrefix(arg, "--theme="):
			v, err := value("--theme")
			if err != nil {
				return nil, err
			}
			cfg.ThemePath = v
		case strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("unknown flag %s", arg)
		default:
			p.files = append(p.files, arg)
		}
	}

	p.theme = theme.Default()
	if cfg.ThemePath != "" {
		if p.theme, err = theme.Load(cfg.ThemePath); err != nil {
			return nil, err
		}
	}
	if len(p.files) == 0 && cfg.LayoutPath != "" {
		p.files = []string{cfg.LayoutPath}
	}
	return p, nil
}

// parseWindow parses WIDTHxHEIGHT.
func parseWindow(s string) (graphics.Size, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return graphics.Size{}, fmt.Errorf("window size %q: want WIDTHxHEIGHT", s)
	}
	width, err := strconv.ParseFloat(w, 32)
	if err != nil || width <= 0 {
		return graphics.Size{}, fmt.Errorf("window size %q: bad width", s)
	}
	height, err := strconv.ParseFloat(h, 32)
	if err != nil || height <= 0 {
		return graphics.Size{}, fmt.Errorf("window size %q: bad height", s)
	}
	return graphics.Size{Width: float32(width), Height: float32(height)}, nil
}
