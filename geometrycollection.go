package geo

// GeometryCollection is a holder for multiple related geometry objects of
// arbitrary type, including nested collections.
type GeometryCollection[T Num] []Geometry[T]

// Bounds gives the rectangular extents of all the objects in the
// GeometryCollection.
func (gc GeometryCollection[T]) Bounds() Rect[T] {
	b := Rect[T]{}
	init := false
	for _, g := range gc {
		if !init {
			b = g.Bounds()
			init = true
			continue
		}
		b = b.Extend(g.Bounds())
	}
	return b
}

// Dimensions returns the maximum dimensionality among the members of gc,
// or 0 if gc is empty.
func (gc GeometryCollection[T]) Dimensions() int {
	max := 0
	for _, g := range gc {
		if d := g.Dimensions(); d > max {
			max = d
		}
	}
	return max
}
