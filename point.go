package geo

// Point is a holder for 2D coordinates X and Y.
type Point[T Num] struct {
	X, Y T
}

// NewPoint returns a new point with coordinates x and y.
func NewPoint[T Num](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Bounds gives the rectangular extents of the Point.
func (p Point[T]) Bounds() Rect[T] {
	return Rect[T]{Min: p, Max: p}
}

// Dimensions returns 0.
func (p Point[T]) Dimensions() int { return 0 }

// Equals returns whether p is exactly equal to p2.
func (p Point[T]) Equals(p2 Point[T]) bool {
	return p.X == p2.X && p.Y == p2.Y
}
