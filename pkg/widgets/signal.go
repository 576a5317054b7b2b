package widgets

import "github.com/go-drift/dockui/pkg/graphics"

// Signal delivers typed events to subscribers synchronously, in the order
// they subscribed.
type Signal[E any] struct {
	listeners []listener[E]
	nextID    int
}

type listener[E any] struct {
	id int
	fn func(E)
}

// Subscribe registers fn and returns a function that removes it.
func (s *Signal[E]) Subscribe(fn func(E)) func() {
	if fn == nil {
		return func() {}
	}
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener[E]{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of subscribers.
func (s *Signal[E]) Len() int {
	return len(s.listeners)
}

func (s *Signal[E]) emit(e E) {
	// Copy so a listener may unsubscribe while being notified.
	ls := make([]listener[E], len(s.listeners))
	copy(ls, s.listeners)
	for _, l := range ls {
		l.fn(e)
	}
}

// MouseEvent is a pointer position in window coordinates.
type MouseEvent struct {
	Sender Handle
	X, Y   float32
}

func (e MouseEvent) offset() graphics.Offset {
	return graphics.Offset{X: e.X, Y: e.Y}
}

// ValueChangeEvent reports a new slider value.
type ValueChangeEvent struct {
	Sender Handle
	Value  int
}
