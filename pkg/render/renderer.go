package render

import "github.com/go-drift/dockui/pkg/errors"

// DrawFunc draws a snapshot onto a batch.
type DrawFunc func(b Batch)

// RefreshFunc copies a widget's live drawable into its snapshot.
type RefreshFunc func()

type entry struct {
	ref     any
	draw    DrawFunc
	refresh RefreshFunc
	dirty   bool
}

// Renderer draws registered snapshots once per frame in registration order.
// It is not safe for concurrent use; like the widget tree it belongs to the
// thread running the frame loop.
type Renderer struct {
	entries []*entry
}

// NewRenderer returns an empty renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Add registers a draw callback for ref. A ref may register several
// callbacks; they draw in the order added. refresh may be nil.
func (r *Renderer) Add(ref any, draw DrawFunc, refresh RefreshFunc) {
	if draw == nil {
		return
	}
	r.entries = append(r.entries, &entry{ref: ref, draw: draw, refresh: refresh})
}

// Remove unregisters every callback added for ref.
func (r *Renderer) Remove(ref any) {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.ref != ref {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(r.entries); i++ {
		r.entries[i] = nil
	}
	r.entries = kept
}

// Contains reports whether ref has any registered callbacks.
func (r *Renderer) Contains(ref any) bool {
	for _, e := range r.entries {
		if e.ref == ref {
			return true
		}
	}
	return false
}

// Len returns the number of registered callbacks.
func (r *Renderer) Len() int {
	return len(r.entries)
}

// Invalidate marks the snapshots of ref as stale. They are refreshed at the
// start of the next Render.
func (r *Renderer) Invalidate(ref any) {
	for _, e := range r.entries {
		if e.ref == ref {
			e.dirty = true
		}
	}
}

// Render refreshes stale snapshots and then draws every snapshot onto b.
// A panicking draw callback is reported and skipped; the rest of the frame
// still draws.
func (r *Renderer) Render(b Batch) {
	for _, e := range r.entries {
		if e.dirty {
			if e.refresh != nil {
				e.refresh()
			}
			e.dirty = false
		}
	}
	for _, e := range r.entries {
		drawEntry(e, b)
	}
}

func drawEntry(e *entry, b Batch) {
	defer errors.Recover("render.Renderer.Render")
	e.draw(b)
}
