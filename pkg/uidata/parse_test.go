package uidata

import (
	"errors"
	"testing"

	uierrors "github.com/go-drift/dockui/pkg/errors"
	"github.com/go-drift/dockui/pkg/graphics"
	"github.com/go-drift/dockui/pkg/layout"
	"gopkg.in/yaml.v3"
)

func yamlNode(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var n yaml.Node
	if err := yaml.Unmarshal([]byte(src), &n); err != nil {
		t.Fatalf("yaml.Unmarshal(%q): %v", src, err)
	}
	return &n
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		src     string
		want    graphics.Color
		wantErr bool
	}{
		{src: "[255, 0, 0, 255]", want: graphics.RGBA8(255, 0, 0, 255)},
		{src: "[1, 2, 3, 4]", want: graphics.RGBA8(1, 2, 3, 4)},
		{src: "[255, 0, 0]", wantErr: true},
		{src: "[256, 0, 0, 0]", wantErr: true},
		{src: "[a, 0, 0, 0]", wantErr: true},
		{src: "red", wantErr: true},
	}
	for _, tt := range tests {
		sentinel := graphics.RGBA8(9, 9, 9, 9)
		got := sentinel
		err := ParseColor(yamlNode(t, tt.src), &got)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%s) succeeded, want error", tt.src)
			}
			if got != sentinel {
				t.Errorf("ParseColor(%s) wrote %v on failure", tt.src, got)
			}
			var pe *uierrors.ParseError
			if !errors.As(err, &pe) {
				t.Errorf("ParseColor(%s) error %T, want *ParseError", tt.src, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%s): %v", tt.src, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%s) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestParseVec(t *testing.T) {
	var v2 [2]float32
	if err := ParseVec2(yamlNode(t, "[1.5, -2]"), &v2); err != nil || v2 != [2]float32{1.5, -2} {
		t.Errorf("ParseVec2 = %v, %v", v2, err)
	}
	var v3 [3]int
	if err := ParseVec3(yamlNode(t, "[1, 2, 3]"), &v3); err != nil || v3 != [3]int{1, 2, 3} {
		t.Errorf("ParseVec3 = %v, %v", v3, err)
	}
	v4 := [4]uint8{7, 7, 7, 7}
	if err := ParseVec4(yamlNode(t, "[1, 2, 3, 4, 5]"), &v4); err == nil {
		t.Error("ParseVec4 accepted five elements")
	}
	if v4 != [4]uint8{7, 7, 7, 7} {
		t.Errorf("ParseVec4 wrote %v on failure", v4)
	}
	if err := ParseVec3(yamlNode(t, "[1, x, 3]"), &v3); err == nil {
		t.Error("ParseVec3 accepted a non-number")
	}
}

func TestParseScalars(t *testing.T) {
	var b bool
	if err := ParseBool(yamlNode(t, "true"), &b); err != nil || !b {
		t.Errorf("ParseBool(true) = %v, %v", b, err)
	}
	if err := ParseBool(yamlNode(t, "[true]"), &b); err == nil {
		t.Error("ParseBool accepted a sequence")
	}
	var s string
	if err := ParseString(yamlNode(t, "hello"), &s); err != nil || s != "hello" {
		t.Errorf("ParseString = %q, %v", s, err)
	}
	if err := ParseString(yamlNode(t, "{a: b}"), &s); err == nil {
		t.Error("ParseString accepted a mapping")
	}
}

func TestParseEnums(t *testing.T) {
	var a graphics.TextAlign
	if err := ParseTextAlign(yamlNode(t, "bottom_right"), &a); err != nil || a != graphics.TextAlignBottomRight {
		t.Errorf("ParseTextAlign = %v, %v", a, err)
	}
	var d layout.DockState
	if err := ParseDockState(yamlNode(t, "fill"), &d); err != nil || d != layout.DockFill {
		t.Errorf("ParseDockState = %v, %v", d, err)
	}
	var p layout.PositionType
	if err := ParsePositionType(yamlNode(t, "static_to_window"), &p); err != nil || p != layout.StaticToWindow {
		t.Errorf("ParsePositionType = %v, %v", p, err)
	}
	var k layout.DimensionKind
	if err := ParseDimensionType(yamlNode(t, "viewport_min_percentage"), &k); err != nil || k != layout.ViewportMinPercentage {
		t.Errorf("ParseDimensionType = %v, %v", k, err)
	}
	var g graphics.GradientType
	if err := ParseGradientType(yamlNode(t, "left_diagonal"), &g); err != nil || g != graphics.GradientLeftDiagonal {
		t.Errorf("ParseGradientType = %v, %v", g, err)
	}
	c := layout.ClipHidden
	if err := ParseClippingState(yamlNode(t, "sideways"), &c); err == nil || c != layout.ClipHidden {
		t.Errorf("ParseClippingState(sideways) = %v, %v", c, err)
	}
}

func TestParseComposites(t *testing.T) {
	var cl layout.Clipping
	err := ParseClipping(yamlNode(t, "{left: hidden, top: visible, right: inherit, bottom: hidden}"), &cl)
	want := layout.Clipping{Left: layout.ClipHidden, Top: layout.ClipVisible, Right: layout.ClipInherit, Bottom: layout.ClipHidden}
	if err != nil || cl != want {
		t.Errorf("ParseClipping = %+v, %v", cl, err)
	}

	var dock layout.Dock
	if err := ParseDock(yamlNode(t, "{state: top, size: 24}"), &dock); err != nil || dock != (layout.Dock{State: layout.DockTop, Size: 24}) {
		t.Errorf("ParseDock = %+v, %v", dock, err)
	}

	var l2 layout.Length2
	err = ParseLength2(yamlNode(t, "{x: 50, dim_x: parent_width_percentage, y: 10, dim_y: pixel}"), &l2)
	wantL2 := layout.Length2{
		X: layout.Length{Value: 50, Unit: layout.ParentWidthPercentage},
		Y: layout.Px(10),
	}
	if err != nil || l2 != wantL2 {
		t.Errorf("ParseLength2 = %+v, %v", l2, err)
	}

	var l4 layout.Length4
	err = ParseLength4(yamlNode(t, "{x: 1, dim_x: pixel, y: 2, dim_y: pixel, z: 3, dim_z: pixel, w: 4, dim_w: window_max_percentage}"), &l4)
	if err != nil || l4.W != (layout.Length{Value: 4, Unit: layout.WindowMaxPercentage}) || l4.Z != layout.Px(3) {
		t.Errorf("ParseLength4 = %+v, %v", l4, err)
	}

	var gr graphics.Gradient
	err = ParseGradient(yamlNode(t, "{color1: [0, 0, 0, 255], color2: [255, 255, 255, 255], grad_type: vertical}"), &gr)
	if err != nil || gr.Type != graphics.GradientVertical || gr.Color2 != graphics.ColorWhite {
		t.Errorf("ParseGradient = %+v, %v", gr, err)
	}
}

func TestParseCompositeMissingKey(t *testing.T) {
	orig := layout.Length2{X: layout.Px(1), Y: layout.Px(2)}
	l2 := orig
	err := ParseLength2(yamlNode(t, "{x: 50, dim_x: pixel, y: 10}"), &l2)
	var pe *uierrors.ParseError
	if !errors.As(err, &pe) || pe.Field != "dim_y" {
		t.Fatalf("ParseLength2 error = %v, want missing dim_y", err)
	}
	if l2 != orig {
		t.Errorf("ParseLength2 wrote %+v on failure", l2)
	}

	cl := layout.ClippingAll(layout.ClipVisible)
	if err := ParseClipping(yamlNode(t, "{left: hidden, top: bogus, right: hidden, bottom: hidden}"), &cl); err == nil {
		t.Error("ParseClipping accepted a bad state")
	}
	if cl != layout.ClippingAll(layout.ClipVisible) {
		t.Errorf("ParseClipping wrote %+v on failure", cl)
	}
}
