package uidata

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/go-drift/dockui/pkg/errors"
	"github.com/go-drift/dockui/pkg/graphics"
	"github.com/go-drift/dockui/pkg/layout"
	"github.com/go-drift/dockui/pkg/resource"
	"github.com/go-drift/dockui/pkg/widgets"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	_ "golang.org/x/image/webp"
	"gopkg.in/yaml.v3"
)

// Loader builds widgets from a YAML document of the form
//
//	widgets:
//	  - type: panel
//	    name: sidebar
//	    dock: {state: left, size: 200}
//	    color: [40, 40, 40, 255]
//	    children:
//	      - type: label
//	        text: Files
//	        align: top_left
//
// A panel's texture field names a PNG, BMP or WebP file. It becomes a 2D
// texture in the tree's resource context, owned by the panel.
//
// Every widget and texture in the document is decoded before any widget is
// created, so a document with a bad field or an unreadable texture leaves the
// tree as it was.
type Loader struct {
	// Face is used for labels. nil uses basicfont.Face7x13.
	Face font.Face
	// Dir resolves relative texture paths. Empty means the working directory.
	Dir string
}

// Load decodes data with the default Loader and attaches the widgets to the
// root of t.
func Load(data []byte, t *widgets.Tree) ([]widgets.Handle, error) {
	return Loader{}.Load(data, t, t.Root())
}

// node is a decoded widget waiting to be built.
type node struct {
	kind string
	name string

	position     *layout.Length2
	size         *layout.Length2
	positionType *layout.PositionType
	dock         *layout.Dock
	clipping     *layout.Clipping

	color       *graphics.Color
	hoverColor  *graphics.Color
	gradient    *graphics.Gradient
	autoScroll  *bool
	sliderWidth *float32
	texture     string
	img         image.Image

	text  string
	align *graphics.TextAlign

	children []node
}

// Load decodes data and attaches the widgets it describes to parent.
// It returns the handles of the top-level widgets in document order.
func (l Loader) Load(data []byte, t *widgets.Tree, parent widgets.Handle) ([]widgets.Handle, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &errors.UIError{Op: "uidata.Load", Kind: errors.KindParsing, Err: err}
	}
	list := Field(&doc, "widgets")
	if list == nil || list.Kind != yaml.SequenceNode {
		return nil, &errors.UIError{
			Op:   "uidata.Load",
			Kind: errors.KindParsing,
			Err:  parseErr("widgets", "sequence", list),
		}
	}
	nodes, err := decodeNodes(list, "widgets")
	if err != nil {
		return nil, err
	}
	if err := l.loadTextures(nodes); err != nil {
		return nil, err
	}
	if _, ok := t.Get(parent); !ok {
		return nil, &errors.UIError{
			Op:   "uidata.Load",
			Kind: errors.KindInit,
			Err:  fmt.Errorf("parent %+v is not in the tree", parent),
		}
	}

	face := l.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	handles := make([]widgets.Handle, 0, len(nodes))
	for i := range nodes {
		h := build(t, &nodes[i], face)
		if !t.AddChild(parent, h) {
			t.Remove(h)
			for _, prev := range handles {
				t.Remove(prev)
			}
			return nil, &errors.UIError{
				Op:     "uidata.Load",
				Kind:   errors.KindInit,
				Widget: nodes[i].name,
				Err:    fmt.Errorf("cannot attach to %+v", parent),
			}
		}
		handles = append(handles, h)
	}
	return handles, nil
}

func decodeNodes(list *yaml.Node, path string) ([]node, error) {
	nodes := make([]node, 0, len(list.Content))
	for i, item := range list.Content {
		n, err := decodeNode(resolve(item), fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// optional decodes the value under key when present.
func optional[T any](m *yaml.Node, key string, parse func(*yaml.Node, *T) error) (*T, error) {
	v := Field(m, key)
	if v == nil {
		return nil, nil
	}
	var out T
	if err := parse(v, &out); err != nil {
		if pe, ok := err.(*errors.ParseError); ok && pe.Field == "" {
			pe.Field = key
		}
		return nil, err
	}
	return &out, nil
}

func decodeNode(m *yaml.Node, path string) (node, error) {
	var n node
	fail := func(err error) (node, error) {
		name := n.name
		if name == "" {
			name = path
		}
		return node{}, &errors.UIError{Op: "uidata.Load", Kind: errors.KindParsing, Widget: name, Err: err}
	}
	if m == nil || m.Kind != yaml.MappingNode {
		return fail(parseErr("", "widget", m))
	}

	if err := ParseString(Field(m, "type"), &n.kind); err != nil {
		return fail(&errors.ParseError{Field: "type", DataType: "string", Got: describe(Field(m, "type"))})
	}
	if v := Field(m, "name"); v != nil {
		if err := ParseString(v, &n.name); err != nil {
			return fail(&errors.ParseError{Field: "name", DataType: "string", Got: describe(v)})
		}
	}

	var err error
	if n.position, err = optional(m, "position", ParseLength2); err != nil {
		return fail(err)
	}
	if n.size, err = optional(m, "size", ParseLength2); err != nil {
		return fail(err)
	}
	if n.positionType, err = optional(m, "position_type", ParsePositionType); err != nil {
		return fail(err)
	}
	if n.dock, err = optional(m, "dock", ParseDock); err != nil {
		return fail(err)
	}
	if n.clipping, err = optional(m, "clipping", ParseClipping); err != nil {
		return fail(err)
	}
	if n.color, err = optional(m, "color", ParseColor); err != nil {
		return fail(err)
	}

	switch n.kind {
	case "panel":
		if n.hoverColor, err = optional(m, "hover_color", ParseColor); err != nil {
			return fail(err)
		}
		if n.gradient, err = optional(m, "gradient", ParseGradient); err != nil {
			return fail(err)
		}
		if n.autoScroll, err = optional(m, "auto_scroll", ParseBool); err != nil {
			return fail(err)
		}
		if n.sliderWidth, err = optional(m, "slider_width", ParseFloat); err != nil {
			return fail(err)
		}
		if v := Field(m, "texture"); v != nil {
			if err := ParseString(v, &n.texture); err != nil {
				return fail(&errors.ParseError{Field: "texture", DataType: "string", Got: describe(v)})
			}
		}
	case "label":
		if v := Field(m, "text"); v != nil {
			if err := ParseString(v, &n.text); err != nil {
				return fail(&errors.ParseError{Field: "text", DataType: "string", Got: describe(v)})
			}
		}
		if n.align, err = optional(m, "align", ParseTextAlign); err != nil {
			return fail(err)
		}
	default:
		return fail(fmt.Errorf("unknown widget type %q", n.kind))
	}

	if v := Field(m, "children"); v != nil {
		if v.Kind != yaml.SequenceNode {
			return fail(parseErr("children", "sequence", v))
		}
		if n.children, err = decodeNodes(v, path+".children"); err != nil {
			return node{}, err
		}
	}
	return n, nil
}

// loadTextures decodes every texture file named in nodes.
func (l Loader) loadTextures(nodes []node) error {
	for i := range nodes {
		n := &nodes[i]
		if n.texture != "" {
			img, err := l.readImage(n.texture)
			if err != nil {
				name := n.name
				if name == "" {
					name = n.texture
				}
				return &errors.UIError{Op: "uidata.Load", Kind: errors.KindResource, Widget: name, Err: err}
			}
			n.img = img
		}
		if err := l.loadTextures(n.children); err != nil {
			return err
		}
	}
	return nil
}

func (l Loader) readImage(path string) (image.Image, error) {
	if l.Dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(l.Dir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// build creates the widget for n and its subtree. The returned widget is
// detached.
func build(t *widgets.Tree, n *node, face font.Face) widgets.Handle {
	var w *widgets.Widget
	switch n.kind {
	case "panel":
		p := t.NewPanel(n.name)
		if n.color != nil {
			p.SetColor(*n.color)
		}
		if n.hoverColor != nil {
			p.SetHoverColor(*n.hoverColor)
		}
		if n.gradient != nil {
			p.SetGradient(n.gradient)
		}
		if n.autoScroll != nil {
			p.SetAutoScroll(*n.autoScroll)
		}
		if n.sliderWidth != nil {
			p.SetSliderWidth(*n.sliderWidth)
		}
		if n.img != nil {
			b := n.img.Bounds()
			p.SetOwnedTexture(t.Resources().Create(resource.KindTexture2D, b.Dx()*b.Dy()*4, n.img))
		}
		w = p.Base()
	case "label":
		lb := t.NewLabel(n.name, n.text, face)
		if n.color != nil {
			lb.SetColor(*n.color)
		}
		if n.align != nil {
			lb.SetAlign(*n.align)
		}
		w = lb.Base()
	}

	if n.positionType != nil {
		w.SetPositionType(*n.positionType)
	}
	if n.position != nil {
		w.SetPositionLength(*n.position)
	}
	if n.size != nil {
		w.SetSizeLength(*n.size)
	}
	if n.dock != nil {
		w.SetDock(*n.dock)
	}
	if n.clipping != nil {
		w.SetClipping(*n.clipping)
	}
	for i := range n.children {
		t.AddChild(w.Handle(), build(t, &n.children[i], face))
	}
	return w.Handle()
}
