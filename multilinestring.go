package geo

// MultiLineString is a holder for multiple related LineStrings.
type MultiLineString[T Num] []LineString[T]

// Bounds gives the rectangular extents of the MultiLineString.
func (ml MultiLineString[T]) Bounds() Rect[T] {
	b := Rect[T]{}
	init := false
	for _, l := range ml {
		if len(l) == 0 {
			continue
		}
		if !init {
			b = l.Bounds()
			init = true
			continue
		}
		b = b.Extend(l.Bounds())
	}
	return b
}

// Dimensions returns 1.
func (ml MultiLineString[T]) Dimensions() int { return 1 }
