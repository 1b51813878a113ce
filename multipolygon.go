package geo

// MultiPolygon is a holder for multiple related polygons. Member polygons
// are independent and may overlap; the area of a MultiPolygon is the plain
// sum of its member areas, not the area of their union.
type MultiPolygon[T Num] []Polygon[T]

// Bounds gives the rectangular extents of the MultiPolygon.
func (mp MultiPolygon[T]) Bounds() Rect[T] {
	b := Rect[T]{}
	init := false
	for _, p := range mp {
		if len(p) == 0 || len(p[0]) == 0 {
			continue
		}
		if !init {
			b = p.Bounds()
			init = true
			continue
		}
		b = b.Extend(p.Bounds())
	}
	return b
}

// Dimensions returns 2.
func (mp MultiPolygon[T]) Dimensions() int { return 2 }
