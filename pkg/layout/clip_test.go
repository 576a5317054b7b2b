package layout

import (
	"testing"

	"github.com/go-drift/dockui/pkg/graphics"
)

var (
	testWindow = graphics.RectFromLTWH(0, 0, 1000, 1000)
	testParent = graphics.Rect{Left: 10, Top: 10, Right: 120, Bottom: 140}
	testOwn    = graphics.Rect{Left: 50, Top: 60, Right: 150, Bottom: 160}
)

func TestCombineClipPerEdge(t *testing.T) {
	tests := []struct {
		name string
		c    Clipping
		want graphics.Rect
	}{
		{"inherit", Clipping{}, graphics.Rect{Left: 50, Top: 60, Right: 120, Bottom: 140}},
		{"visible", ClippingAll(ClipVisible), testOwn},
		{"visible right", Clipping{Right: ClipVisible}, graphics.Rect{Left: 50, Top: 60, Right: 150, Bottom: 140}},
		{"visible bottom", Clipping{Bottom: ClipVisible}, graphics.Rect{Left: 50, Top: 60, Right: 120, Bottom: 160}},
		{"hidden left", Clipping{Left: ClipHidden}, graphics.Rect{Left: 150, Top: 60, Right: 150, Bottom: 140}},
		{"hidden top", Clipping{Top: ClipHidden}, graphics.Rect{Left: 50, Top: 160, Right: 120, Bottom: 160}},
		{"hidden right", Clipping{Right: ClipHidden}, graphics.Rect{Left: 50, Top: 60, Right: 50, Bottom: 140}},
		{"hidden bottom", Clipping{Bottom: ClipHidden}, graphics.Rect{Left: 50, Top: 60, Right: 120, Bottom: 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CombineClip(testParent, tt.c, testOwn, testWindow); got != tt.want {
				t.Errorf("CombineClip = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCombineClipStaysInsideOwnRect(t *testing.T) {
	parent := graphics.Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}
	tests := []struct {
		name string
		own  graphics.Rect
		want graphics.Rect
	}{
		{"inside", graphics.RectFromLTWH(10, 10, 20, 20), graphics.RectFromLTWH(10, 10, 20, 20)},
		{"overflowing", graphics.RectFromLTWH(90, 90, 20, 20), graphics.Rect{Left: 90, Top: 90, Right: 100, Bottom: 100}},
		{"outside", graphics.RectFromLTWH(150, 150, 50, 50), graphics.Rect{Left: 150, Top: 150, Right: 150, Bottom: 150}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CombineClip(parent, Clipping{}, tt.own, testWindow); got != tt.want {
				t.Errorf("CombineClip = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCombineClipHiddenLeavesNoVisibleExtent(t *testing.T) {
	clip := CombineClip(testParent, Clipping{Left: ClipHidden}, testOwn, testWindow)
	if visible := clip.Intersect(testOwn); visible.Width() != 0 {
		t.Errorf("hidden left edge should leave zero width, got %+v", visible)
	}
}

func TestCombineClipCollapsesNegativeExtent(t *testing.T) {
	parent := graphics.Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}
	own := graphics.Rect{Left: 120, Top: 130, Right: 140, Bottom: 150}
	got := CombineClip(parent, Clipping{Left: ClipHidden, Top: ClipHidden}, own, testWindow)
	if got.Width() != 0 || got.Height() != 0 {
		t.Fatalf("expected zero extent, got %+v", got)
	}
	if got.Width() < 0 || got.Height() < 0 {
		t.Fatalf("negative extent %+v", got)
	}
}

func TestCombineClipIdempotentUnderInherit(t *testing.T) {
	states := []ClippingState{ClipInherit, ClipVisible, ClipHidden}
	for _, l := range states {
		for _, tp := range states {
			for _, r := range states {
				for _, b := range states {
					c := Clipping{Left: l, Top: tp, Right: r, Bottom: b}
					once := CombineClip(testParent, c, testOwn, testWindow)
					twice := CombineClip(once, Clipping{}, testOwn, testWindow)
					if once != twice {
						t.Errorf("%+v: %+v != %+v", c, once, twice)
					}
				}
			}
		}
	}
}
