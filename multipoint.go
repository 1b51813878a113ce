package geo

// MultiPoint is a holder for multiple related points.
type MultiPoint[T Num] []Point[T]

// Bounds gives the rectangular extents of the MultiPoint.
func (mp MultiPoint[T]) Bounds() Rect[T] {
	return boundsOf(mp)
}

// Dimensions returns 0.
func (mp MultiPoint[T]) Dimensions() int { return 0 }
