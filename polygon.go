package geo

// Polygon is a holder for the rings that make up a polygon. The first ring
// is the exterior boundary and any remaining rings are holes. Rings are
// assumed to be closed and non-self-intersecting; this is not validated.
type Polygon[T Num] []LineString[T]

// Exterior returns the outer ring of p, or nil if p is empty.
func (p Polygon[T]) Exterior() LineString[T] {
	if len(p) == 0 {
		return nil
	}
	return p[0]
}

// Interiors returns the hole rings of p, in order.
func (p Polygon[T]) Interiors() []LineString[T] {
	if len(p) < 2 {
		return nil
	}
	return p[1:]
}

// Bounds gives the rectangular extents of the Polygon.
func (p Polygon[T]) Bounds() Rect[T] {
	return p.Exterior().Bounds()
}

// Dimensions returns 2.
func (p Polygon[T]) Dimensions() int { return 2 }
