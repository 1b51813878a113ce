package geo

// Triangle is exactly three ordered points.
type Triangle[T Num] [3]Point[T]

// Edges returns the three implied edges of t:
// (t[0], t[1]), (t[1], t[2]), (t[2], t[0]).
func (t Triangle[T]) Edges() [3]Line[T] {
	return [3]Line[T]{
		{Start: t[0], End: t[1]},
		{Start: t[1], End: t[2]},
		{Start: t[2], End: t[0]},
	}
}

// Bounds gives the rectangular extents of the Triangle.
func (t Triangle[T]) Bounds() Rect[T] {
	return boundsOf(t[:])
}

// Dimensions returns 2.
func (t Triangle[T]) Dimensions() int { return 2 }
