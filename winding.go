package geo

// Winding gives the traversal direction of a closed ring: the direction
// in which its points are listed.
type Winding int

const (
	// Degenerate is the winding of a ring that encloses no area.
	Degenerate Winding = iota
	// Clockwise rings have negative signed area.
	Clockwise
	// CounterClockwise rings have positive signed area.
	CounterClockwise
)

// RingWinding classifies ring by the sign of its twice-signed area. The
// ring is assumed closed (first point equal to last).
func RingWinding[T Num](ring LineString[T]) Winding {
	a := twiceSignedRingArea(ring)
	switch {
	case a > 0:
		return CounterClockwise
	case a < 0:
		return Clockwise
	}
	return Degenerate
}
