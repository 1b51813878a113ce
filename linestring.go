package geo

// LineString is a number of points that make up a path or line. It may be
// empty, hold a single point, or form a closed ring (first point equal to
// last). Its segments are the consecutive point pairs.
type LineString[T Num] []Point[T]

// Bounds gives the rectangular extents of the LineString.
func (l LineString[T]) Bounds() Rect[T] {
	return boundsOf(l)
}

// Dimensions returns 1.
func (l LineString[T]) Dimensions() int { return 1 }

// Segments returns the consecutive segments of l, in order. A LineString
// with fewer than two points has none.
func (l LineString[T]) Segments() []Line[T] {
	if len(l) < 2 {
		return nil
	}
	segs := make([]Line[T], len(l)-1)
	for i := 0; i < len(l)-1; i++ {
		segs[i] = Line[T]{Start: l[i], End: l[i+1]}
	}
	return segs
}

// Closed reports whether the first and last points of l are exactly equal.
// An empty LineString is not closed.
func (l LineString[T]) Closed() bool {
	if len(l) == 0 {
		return false
	}
	return l[0].Equals(l[len(l)-1])
}
