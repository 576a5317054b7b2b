package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/dockui/pkg/graphics"
	"github.com/go-drift/dockui/pkg/render"
	"github.com/go-drift/dockui/pkg/widgets"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the resolved widget tree and one frame of draw calls.
type Snapshot struct {
	Tree       *WidgetNode `json:"tree"`
	DisplayOps []DisplayOp `json:"displayOps,omitempty"`
}

// WidgetNode is one widget in a serialized tree. Rects are
// [left, top, right, bottom].
type WidgetNode struct {
	ID         string         `json:"id"`
	Name       string         `json:"name,omitempty"`
	Rect       [4]float64     `json:"rect"`
	Clip       [4]float64     `json:"clip"`
	Properties map[string]any `json:"props,omitempty"`
	Children   []*WidgetNode  `json:"children,omitempty"`
}

// DisplayOp is one serialized batch call.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// CaptureSnapshot captures the current tree and renders one frame.
func (t *Tester) CaptureSnapshot() *Snapshot {
	counter := &typeCounter{}
	return &Snapshot{
		Tree:       captureNode(t.tree, t.tree.Root(), counter),
		DisplayOps: serializeDisplayList(t.Frame()),
	}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When DOCKUI_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("DOCKUI_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: DOCKUI_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: DOCKUI_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// --- Internal ---

// typeCounter assigns stable IDs like "panel#0", "panel#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func typeName(n widgets.Node) string {
	switch n.(type) {
	case *widgets.Viewport:
		return "viewport"
	case *widgets.Panel:
		return "panel"
	case *widgets.Label:
		return "label"
	case *widgets.Slider:
		return "slider"
	}
	return "widget"
}

func captureNode(tree *widgets.Tree, h widgets.Handle, counter *typeCounter) *WidgetNode {
	n, ok := tree.Get(h)
	if !ok {
		return nil
	}
	node := captureWidget(n, counter)
	for _, c := range n.Base().Children() {
		if child := captureNode(tree, c, counter); child != nil {
			node.Children = append(node.Children, child)
		}
	}
	if p, ok := n.(*widgets.Panel); ok {
		for _, s := range []*widgets.Slider{p.HorizontalSlider(), p.VerticalSlider()} {
			if s.IsEnabled() {
				node.Children = append(node.Children, captureWidget(s, counter))
			}
		}
	}
	return node
}

func captureWidget(n widgets.Node, counter *typeCounter) *WidgetNode {
	b := n.Base()
	node := &WidgetNode{
		ID:   counter.next(typeName(n)),
		Name: b.Name(),
		Rect: rectArray(b.Rect()),
		Clip: rectArray(b.ClipRect()),
	}
	if props := captureProperties(n); len(props) > 0 {
		node.Properties = props
	}
	return node
}

func captureProperties(n widgets.Node) map[string]any {
	switch v := n.(type) {
	case *widgets.Panel:
		off := v.ChildOffset()
		props := sortedMap("color", serializeColor(v.Color()))
		if off != (graphics.Offset{}) {
			props["childOffset"] = []float64{round2(off.X), round2(off.Y)}
		}
		if !v.AutoScroll() {
			props["autoScroll"] = false
		}
		return props
	case *widgets.Label:
		return sortedMap("text", v.Text(), "align", v.Align().String())
	case *widgets.Slider:
		return sortedMap("value", v.Value(), "vertical", v.IsVertical())
	}
	return nil
}

func serializeDisplayList(dl *render.DisplayList) []DisplayOp {
	ops := make([]DisplayOp, 0, dl.Len())
	for _, op := range dl.Ops() {
		switch op.Kind {
		case render.OpSprite:
			s := op.Sprite
			params := sortedMap("dest", serializeRect(s.Dest), "color", serializeColor(s.Color))
			if s.Clip != noClip {
				params["clip"] = serializeRect(s.Clip)
			}
			if s.Texture != 0 {
				params["texture"] = uint32(s.Texture)
			}
			if s.Gradient != nil {
				params["gradient"] = s.Gradient.Type.String()
			}
			ops = append(ops, DisplayOp{Op: "sprite", Params: params})
		case render.OpGlyphs:
			g := op.Glyphs
			ops = append(ops, DisplayOp{
				Op: "glyphs",
				Params: sortedMap(
					"text", g.Text,
					"position", []float64{round2(g.Position.X), round2(g.Position.Y)},
					"color", serializeColor(g.Color),
				),
			})
		}
	}
	return ops
}

// noClip matches the clip of drawables that were never clipped.
var noClip = render.NewDrawableRect().ClipRect

func rectArray(r graphics.Rect) [4]float64 {
	return [4]float64{round2(r.Left), round2(r.Top), round2(r.Right), round2(r.Bottom)}
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// round2 rounds to 2 decimal places.
func round2(f float32) float64 {
	return math.Round(float64(f)*100) / 100
}

// sortedMap creates a map from alternating key-value pairs. The snapshot
// encoder writes map keys in sorted order.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
