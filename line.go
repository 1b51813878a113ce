package geo

// Line is a single line segment between two points. It may be degenerate,
// with Start equal to End.
type Line[T Num] struct {
	Start, End Point[T]
}

// NewLine returns the segment from (x1, y1) to (x2, y2).
func NewLine[T Num](x1, y1, x2, y2 T) Line[T] {
	return Line[T]{Start: Point[T]{x1, y1}, End: Point[T]{x2, y2}}
}

// DX returns the horizontal displacement from Start to End.
func (l Line[T]) DX() T { return l.End.X - l.Start.X }

// DY returns the vertical displacement from Start to End.
func (l Line[T]) DY() T { return l.End.Y - l.Start.Y }

// Determinant returns the 2x2 determinant of the line's endpoints,
// Start.X*End.Y - Start.Y*End.X.
func (l Line[T]) Determinant() T {
	return l.Start.X*l.End.Y - l.Start.Y*l.End.X
}

// Bounds gives the rectangular extents of the Line.
func (l Line[T]) Bounds() Rect[T] {
	return boundsOf([]Point[T]{l.Start, l.End})
}

// Dimensions returns 1.
func (l Line[T]) Dimensions() int { return 1 }
