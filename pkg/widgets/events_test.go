package widgets

import (
	"testing"

	"github.com/go-drift/dockui/pkg/graphics"
)

func TestPanel_HoverColor(t *testing.T) {
	tr := newTestTree()
	p := newScrollPanel(t, tr, 0, 0)
	red := graphics.RGB(255, 0, 0)
	p.SetHoverColor(red)

	var enters, leaves, moves int
	p.MouseEnter.Subscribe(func(MouseEvent) { enters++ })
	p.MouseLeave.Subscribe(func(MouseEvent) { leaves++ })
	p.MouseMove.Subscribe(func(e MouseEvent) {
		moves++
		if e.Sender != p.Handle() {
			t.Errorf("Sender = %+v, want the panel", e.Sender)
		}
	})

	tr.HandleMouseMove(50, 50)
	tr.HandleMouseMove(60, 60)
	if enters != 1 || moves != 2 {
		t.Errorf("enters=%d moves=%d, want 1 and 2", enters, moves)
	}
	if !p.IsMouseIn() || p.rect.Color != red {
		t.Errorf("hovered panel color = %v, want %v", p.rect.Color, red)
	}

	tr.HandleMouseMove(500, 500)
	if leaves != 1 || p.rect.Color != p.Color() {
		t.Errorf("leaves=%d color=%v after leaving", leaves, p.rect.Color)
	}

	tr.HandleMouseMove(50, 50)
	tr.HandleMouseFocusLost()
	if leaves != 2 || p.IsMouseIn() {
		t.Errorf("focus lost: leaves=%d mouseIn=%v", leaves, p.IsMouseIn())
	}
}

func TestPanel_DisabledIgnoresMouse(t *testing.T) {
	tr := newTestTree()
	p := newScrollPanel(t, tr, 0, 0)
	p.Disable()

	var enters int
	p.MouseEnter.Subscribe(func(MouseEvent) { enters++ })
	p.HandleMouseMove(50, 50)
	if enters != 0 || p.IsMouseIn() {
		t.Error("disabled panel reacted to the pointer")
	}
}

func TestSlider_MouseDownJumps(t *testing.T) {
	tr := newTestTree()
	p := newScrollPanel(t, tr, 0, 0)
	addChildPanel(t, tr, p, graphics.RectFromLTWH(150, 20, 10, 10))

	var got []ValueChangeEvent
	p.VerticalSlider().ValueChange.Subscribe(func(e ValueChangeEvent) { got = append(got, e) })

	tr.HandleMouseDown(92, 77.5)
	if len(got) != 1 || got[0].Value != SliderMax || got[0].Sender != p.VerticalSlider().Handle() {
		t.Fatalf("ValueChange events = %+v", got)
	}

	// Disabled sliders have no area to press.
	tr.HandleMouseDown(50, 92)
	if p.HorizontalSlider().Value() != 0 {
		t.Error("disabled slider changed value")
	}
}

func TestSlider_SetValueClamps(t *testing.T) {
	tr := newTestTree()
	s := tr.NewSlider("s", false)
	s.SetDestRect(graphics.RectFromLTWH(0, 0, 100, 10))

	var events int
	s.ValueChange.Subscribe(func(ValueChangeEvent) { events++ })

	s.SetValue(SliderMax * 2)
	if s.Value() != SliderMax {
		t.Errorf("Value() = %d, want %d", s.Value(), SliderMax)
	}
	s.SetValue(SliderMax)
	if events != 1 {
		t.Errorf("got %d events, want 1; unchanged values do not notify", events)
	}
	s.SetValue(-5)
	if s.Value() != 0 {
		t.Errorf("Value() = %d, want 0", s.Value())
	}

	s.SetValue(SliderMax / 2)
	if got, want := s.SlideRect(), graphics.RectFromLTWH(45, 0, 10, 10); !got.ApproxEqual(want) {
		t.Errorf("SlideRect() = %+v, want %+v", got, want)
	}
}

func TestSlider_SetValueIgnoredOnIdleScrollbar(t *testing.T) {
	tr := newTestTree()
	p := newScrollPanel(t, tr, 0, 0)
	addChildPanel(t, tr, p, graphics.RectFromLTWH(10, 10, 20, 20))

	h := p.HorizontalSlider()
	var events []int
	h.ValueChange.Subscribe(func(e ValueChangeEvent) { events = append(events, e.Value) })

	h.SetValue(5000)
	if len(events) != 0 {
		t.Errorf("disabled scrollbar emitted %v", events)
	}
	if h.Value() != 0 {
		t.Errorf("Value() = %d, want 0", h.Value())
	}
	if got := p.ChildOffset(); got != (graphics.Offset{}) {
		t.Errorf("ChildOffset() = %+v, want zero", got)
	}
}
