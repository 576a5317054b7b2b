package render

// OpKind distinguishes recorded batch operations.
type OpKind int

const (
	OpSprite OpKind = iota
	OpGlyphs
)

// Op is one recorded batch call.
type Op struct {
	Kind   OpKind
	Sprite Sprite
	Glyphs Glyphs
}

// DisplayList is an immutable list of recorded batch calls. It can be
// replayed onto any Batch.
type DisplayList struct {
	ops []Op
}

// Ops returns the recorded operations. The slice must not be modified.
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Replay issues every recorded operation onto b in order.
func (d *DisplayList) Replay(b Batch) {
	for _, op := range d.ops {
		switch op.Kind {
		case OpSprite:
			b.DrawSprite(op.Sprite)
		case OpGlyphs:
			b.DrawGlyphs(op.Glyphs)
		}
	}
}

// Recorder is a Batch that records calls into a display list.
type Recorder struct {
	ops []Op
}

// DrawSprite records a sprite.
func (r *Recorder) DrawSprite(s Sprite) {
	r.ops = append(r.ops, Op{Kind: OpSprite, Sprite: s})
}

// DrawGlyphs records a line of text.
func (r *Recorder) DrawGlyphs(g Glyphs) {
	r.ops = append(r.ops, Op{Kind: OpGlyphs, Glyphs: g})
}

// Reset drops recorded operations, keeping capacity.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// Finish returns the recorded operations as a display list and resets the
// recorder.
func (r *Recorder) Finish() *DisplayList {
	ops := make([]Op, len(r.ops))
	copy(ops, r.ops)
	r.Reset()
	return &DisplayList{ops: ops}
}
