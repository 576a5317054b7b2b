package layout

import (
	"testing"

	"github.com/go-drift/dockui/pkg/graphics"
)

func TestDockRectEdges(t *testing.T) {
	free := graphics.RectFromLTWH(0, 0, 100, 80)
	tests := []struct {
		name          string
		dock          Dock
		wantAssigned  graphics.Rect
		wantRemaining graphics.Rect
	}{
		{"left", Dock{DockLeft, 20}, graphics.Rect{Left: 0, Top: 0, Right: 20, Bottom: 80}, graphics.Rect{Left: 20, Top: 0, Right: 100, Bottom: 80}},
		{"right", Dock{DockRight, 30}, graphics.Rect{Left: 70, Top: 0, Right: 100, Bottom: 80}, graphics.Rect{Left: 0, Top: 0, Right: 70, Bottom: 80}},
		{"top", Dock{DockTop, 10}, graphics.Rect{Left: 0, Top: 0, Right: 100, Bottom: 10}, graphics.Rect{Left: 0, Top: 10, Right: 100, Bottom: 80}},
		{"bottom", Dock{DockBottom, 15}, graphics.Rect{Left: 0, Top: 65, Right: 100, Bottom: 80}, graphics.Rect{Left: 0, Top: 0, Right: 100, Bottom: 65}},
		{"fill", Dock{DockFill, 0}, free, graphics.Rect{Left: 100, Top: 80, Right: 100, Bottom: 80}},
		{"none", Dock{DockNone, 40}, graphics.Rect{}, free},
		{"oversized left clamps", Dock{DockLeft, 500}, free, graphics.Rect{Left: 100, Top: 0, Right: 100, Bottom: 80}},
		{"negative size clamps", Dock{DockTop, -5}, graphics.Rect{Left: 0, Top: 0, Right: 100, Bottom: 0}, free},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assigned, remaining := DockRect(free, tt.dock)
			if assigned != tt.wantAssigned {
				t.Errorf("assigned = %+v, want %+v", assigned, tt.wantAssigned)
			}
			if remaining != tt.wantRemaining {
				t.Errorf("remaining = %+v, want %+v", remaining, tt.wantRemaining)
			}
		})
	}
}

func TestDockAllFillAbsorbsRemainder(t *testing.T) {
	free := graphics.RectFromLTWH(10, 10, 100, 100)
	sequences := [][]Dock{
		{{DockLeft, 30}, {DockRight, 30}, {DockFill, 0}},
		{{DockLeft, 60}, {DockLeft, 60}, {DockFill, 0}},
		{{DockTop, 25}, {DockLeft, 25}, {DockBottom, 25}, {DockRight, 25}, {DockFill, 0}},
		{{DockFill, 0}, {DockLeft, 10}, {DockFill, 0}},
	}
	for i, docks := range sequences {
		assigned, remaining := DockAll(free, docks)
		var horizontal, vertical float32
		for j, d := range docks {
			switch d.State {
			case DockLeft, DockRight:
				horizontal += assigned[j].Width()
			case DockTop, DockBottom:
				vertical += assigned[j].Height()
			}
			if assigned[j].Width() < 0 || assigned[j].Height() < 0 {
				t.Errorf("sequence %d: entry %d has negative extent %+v", i, j, assigned[j])
			}
		}
		if horizontal > free.Width() || vertical > free.Height() {
			t.Errorf("sequence %d: docked extents %v/%v exceed %v/%v", i, horizontal, vertical, free.Width(), free.Height())
		}
		if !remaining.IsEmpty() {
			t.Errorf("sequence %d: fill should leave nothing, got %+v", i, remaining)
		}
	}
}

func TestDockAfterFillGetsZeroArea(t *testing.T) {
	assigned, _ := DockAll(graphics.RectFromLTWH(0, 0, 50, 50), []Dock{
		{DockFill, 0},
		{DockLeft, 10},
		{DockFill, 0},
	})
	if assigned[0] != graphics.RectFromLTWH(0, 0, 50, 50) {
		t.Fatalf("first fill = %+v", assigned[0])
	}
	for _, r := range assigned[1:] {
		if !r.IsEmpty() {
			t.Errorf("expected zero area after fill, got %+v", r)
		}
	}
}
