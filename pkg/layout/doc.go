// Package layout holds the pure geometry resolvers used by the widget tree:
// unit-aware lengths, edge docking against a shrinking free rectangle, and
// per-edge clip rectangle composition.
//
// Nothing here mutates widget state. Every function takes the reference
// geometry it needs and returns a value, so the same inputs always produce
// the same rectangle.
package layout
