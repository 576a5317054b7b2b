package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/dockui/pkg/graphics"
	"github.com/go-drift/dockui/pkg/render"
	"github.com/go-drift/dockui/pkg/uidata"
	"github.com/go-drift/dockui/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "layout",
		Short: "Print resolved widget geometry",
		Long: `Load a layout file, lay it out against the window and print every
widget's rectangle, clip rectangle and scroll state, followed by the number
of draw calls one frame issues.

Without a file argument the layout named in dockui.yaml is used.

Flags:
  --window WxH     Window size (default from dockui.yaml, else 1280x720)
  --theme FILE     theme.toml to take widget defaults from`,
		Usage: "dockui layout [file] [--window WxH] [--theme FILE]",
		Run:   runLayout,
	})
}

func runLayout(args []string) error {
	p, err := loadProject(args)
	if err != nil {
		return err
	}
	if len(p.files) != 1 {
		return fmt.Errorf("expected exactly one layout file\n\nUsage: dockui layout [file]")
	}

	data, err := os.ReadFile(p.files[0])
	if err != nil {
		return err
	}

	tree := widgets.NewTree(p.cfg.Window, p.theme)
	r := render.NewRenderer()
	tree.SetRenderer(r)
	loader := uidata.Loader{Dir: filepath.Dir(p.files[0])}
	if _, err := loader.Load(data, tree, tree.Root()); err != nil {
		return err
	}

	rec := &render.Recorder{}
	r.Render(rec)
	frame := rec.Finish()

	fmt.Fprintf(stdout, "Window: %vx%v\n", p.cfg.Window.Width, p.cfg.Window.Height)
	dumpTree(stdout, tree, tree.Root(), 0)
	fmt.Fprintf(stdout, "Draw calls: %d\n", frame.Len())
	if res := tree.Resources(); res.Len() > 0 {
		fmt.Fprintf(stdout, "Textures: %d (%d bytes)\n", res.Len(), res.MemoryUsed())
	}
	return nil
}

func formatRect(r graphics.Rect) string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.Left, r.Top, r.Width(), r.Height())
}

func dumpTree(w io.Writer, t *widgets.Tree, h widgets.Handle, depth int) {
	n, ok := t.Get(h)
	if !ok {
		return
	}
	b := n.Base()
	indent := strings.Repeat("  ", depth)

	kind := "widget"
	var extra string
	switch v := n.(type) {
	case *widgets.Viewport:
		kind = "viewport"
	case *widgets.Panel:
		kind = "panel"
		if v.Texture() != 0 {
			extra = fmt.Sprintf(" texture=%d", v.Texture())
		}
		if v.HorizontalSlider().IsEnabled() || v.VerticalSlider().IsEnabled() {
			off := v.ChildOffset()
			extra += fmt.Sprintf(" scroll=%s offset=(%g,%g)", formatRect(v.ScrollBounds().Rect()), off.X, off.Y)
		}
	case *widgets.Label:
		kind = "label"
		extra = fmt.Sprintf(" text=%q", v.Text())
	case *widgets.Slider:
		kind = "slider"
		extra = fmt.Sprintf(" value=%d", v.Value())
	}

	fmt.Fprintf(w, "%s%s %s rect=%s clip=%s%s\n",
		indent, kind, b.Name(), formatRect(b.Rect()), formatRect(b.ClipRect()), extra)
	for _, c := range b.Children() {
		dumpTree(w, t, c, depth+1)
	}
}
