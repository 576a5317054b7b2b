package layout

import (
	"testing"

	"github.com/go-drift/dockui/pkg/graphics"
)

var testFrame = Frame{
	Own:      graphics.Size{Width: 200, Height: 100},
	Parent:   graphics.Size{Width: 400, Height: 300},
	Viewport: graphics.Size{Width: 800, Height: 600},
	Window:   graphics.Size{Width: 1280, Height: 720},
}

func TestResolveAllKinds(t *testing.T) {
	tests := []struct {
		kind DimensionKind
		want float32
	}{
		{Pixel, 50},
		{WidthPercentage, 100},
		{HeightPercentage, 50},
		{MinPercentage, 50},
		{MaxPercentage, 100},
		{ParentWidthPercentage, 200},
		{ParentHeightPercentage, 150},
		{ParentMinPercentage, 150},
		{ParentMaxPercentage, 200},
		{ViewportWidthPercentage, 400},
		{ViewportHeightPercentage, 300},
		{ViewportMinPercentage, 300},
		{ViewportMaxPercentage, 400},
		{WindowWidthPercentage, 640},
		{WindowHeightPercentage, 360},
		{WindowMinPercentage, 360},
		{WindowMaxPercentage, 640},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := Resolve(Length{Value: 50, Unit: tt.kind}, testFrame)
			if got != tt.want {
				t.Errorf("Resolve(50 %s) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestResolveIsLinearInValue(t *testing.T) {
	for k := Pixel; k <= WindowMaxPercentage; k++ {
		base := Resolve(Length{Value: 10, Unit: k}, testFrame)
		scaled := Resolve(Length{Value: 30, Unit: k}, testFrame)
		if scaled != 3*base {
			t.Errorf("%s: Resolve(30) = %v, want 3*%v", k, scaled, base)
		}
		if again := Resolve(Length{Value: 10, Unit: k}, testFrame); again != base {
			t.Errorf("%s: Resolve not deterministic: %v vs %v", k, again, base)
		}
	}
}

func TestResolveTracksOwnSize(t *testing.T) {
	l := Length{Value: 50, Unit: WidthPercentage}
	f := Frame{Own: graphics.Size{Width: 200}}
	if got := l.Resolve(f); got != 100 {
		t.Fatalf("Resolve = %v, want 100", got)
	}
	f.Own.Width *= 2
	if got := l.Resolve(f); got != 200 {
		t.Fatalf("Resolve after doubling = %v, want 200", got)
	}
}

func TestLength2And4ResolveIndependently(t *testing.T) {
	l2 := Length2{X: Length{Value: 10, Unit: ParentWidthPercentage}, Y: Px(7)}
	if got := l2.ResolveOffset(testFrame); got != (graphics.Offset{X: 40, Y: 7}) {
		t.Errorf("ResolveOffset = %+v", got)
	}
	if got := l2.ResolveSize(testFrame); got != (graphics.Size{Width: 40, Height: 7}) {
		t.Errorf("ResolveSize = %+v", got)
	}

	l4 := Length4{
		X: Px(1),
		Y: Length{Value: 10, Unit: WindowHeightPercentage},
		Z: Length{Value: 10, Unit: WidthPercentage},
		W: Length{Value: 1, Unit: ViewportMaxPercentage},
	}
	want := Edges{Left: 1, Top: 72, Right: 20, Bottom: 8}
	if got := l4.Resolve(testFrame); got != want {
		t.Errorf("Length4.Resolve = %+v, want %+v", got, want)
	}
}

func TestParseDimensionKindNames(t *testing.T) {
	for k := Pixel; k <= WindowMaxPercentage; k++ {
		got, ok := ParseDimensionKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseDimensionKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseDimensionKind("percent"); ok {
		t.Error("expected unknown kind to fail")
	}
}
