package widgets

import "testing"

func TestSignal_OrderAndUnsubscribe(t *testing.T) {
	var s Signal[int]
	var got []string
	s.Subscribe(func(v int) { got = append(got, "a") })
	unsubB := s.Subscribe(func(v int) { got = append(got, "b") })
	s.Subscribe(func(v int) { got = append(got, "c") })

	s.emit(1)
	unsubB()
	unsubB()
	s.emit(2)

	want := "abcac"
	var joined string
	for _, g := range got {
		joined += g
	}
	if joined != want {
		t.Errorf("delivery order = %q, want %q", joined, want)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSignal_UnsubscribeDuringEmit(t *testing.T) {
	var s Signal[struct{}]
	calls := 0
	var unsub func()
	unsub = s.Subscribe(func(struct{}) {
		calls++
		unsub()
	})
	s.Subscribe(func(struct{}) { calls++ })

	s.emit(struct{}{})
	s.emit(struct{}{})
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestSignal_NilListener(t *testing.T) {
	var s Signal[int]
	s.Subscribe(nil)()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}
