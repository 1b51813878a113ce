package geo

// Rect is an axis-aligned box given by its minimum and maximum corners.
// The caller must ensure Min <= Max component-wise; a violated Rect still
// yields mathematically consistent (possibly negative) measurements and
// never a fault.
type Rect[T Num] struct {
	Min, Max Point[T]
}

// NewRect returns the Rect with corners (minX, minY) and (maxX, maxY).
func NewRect[T Num](minX, minY, maxX, maxY T) Rect[T] {
	return Rect[T]{Min: Point[T]{minX, minY}, Max: Point[T]{maxX, maxY}}
}

// Width returns the horizontal extent of r.
func (r Rect[T]) Width() T { return r.Max.X - r.Min.X }

// Height returns the vertical extent of r.
func (r Rect[T]) Height() T { return r.Max.Y - r.Min.Y }

// Bounds returns r itself.
func (r Rect[T]) Bounds() Rect[T] { return r }

// Dimensions returns 2.
func (r Rect[T]) Dimensions() int { return 2 }

// Extend returns the smallest Rect covering both r and b.
func (r Rect[T]) Extend(b Rect[T]) Rect[T] {
	if b.Min.X < r.Min.X {
		r.Min.X = b.Min.X
	}
	if b.Min.Y < r.Min.Y {
		r.Min.Y = b.Min.Y
	}
	if b.Max.X > r.Max.X {
		r.Max.X = b.Max.X
	}
	if b.Max.Y > r.Max.Y {
		r.Max.Y = b.Max.Y
	}
	return r
}

// ExtendPoint returns the smallest Rect covering both r and p.
func (r Rect[T]) ExtendPoint(p Point[T]) Rect[T] {
	return r.Extend(Rect[T]{Min: p, Max: p})
}

// boundsOf returns the rectangular extents of pts. An empty slice bounds
// to the zero Rect.
func boundsOf[T Num](pts []Point[T]) Rect[T] {
	if len(pts) == 0 {
		return Rect[T]{}
	}
	b := Rect[T]{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.ExtendPoint(p)
	}
	return b
}
