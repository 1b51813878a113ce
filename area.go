package geo

import "fmt"

// Area returns the signed planar area of g. Counter-clockwise exterior
// winding gives a positive area; reversing a ring's point order negates
// the result. Point-like and linear shapes have zero area. Composite
// shapes sum their member areas in sequence order. Self-intersecting
// rings give a mathematically consistent but meaningless result.
func Area[T Num](g Geometry[T]) T {
	switch g := g.(type) {
	case Point[T]:
		return 0
	case MultiPoint[T]:
		return 0
	case Line[T]:
		return 0
	case LineString[T]:
		return 0
	case MultiLineString[T]:
		return 0
	case Polygon[T]:
		return g.Area()
	case MultiPolygon[T]:
		return g.Area()
	case Rect[T]:
		return g.Area()
	case Triangle[T]:
		return g.Area()
	case GeometryCollection[T]:
		var a T
		for _, member := range g {
			a += Area(member)
		}
		return a
	}
	panic(fmt.Sprintf("geo: unsupported geometry type: %T", g))
}

// twiceSignedRingArea returns twice the signed area enclosed by ring,
// summing the cross products of its consecutive point pairs. The ring is
// assumed to be closed (first point equal to last); no closing segment is
// implied. Rings with fewer than two points enclose nothing.
// See http://www.mathopenref.com/coordpolygonarea2.html.
func twiceSignedRingArea[T Num](ring LineString[T]) T {
	var a T
	for i := 0; i < len(ring)-1; i++ {
		a += ring[i].X*ring[i+1].Y - ring[i+1].X*ring[i].Y
	}
	return a
}

// ringArea returns the signed area enclosed by ring.
func ringArea[T Num](ring LineString[T]) T {
	return twiceSignedRingArea(ring) / 2
}

// Area returns the signed area of p: the area of its exterior ring minus
// the area of each hole, in hole order. Holes wound the same way as the
// exterior therefore subtract from it; holes wound the opposite way add.
func (p Polygon[T]) Area() T {
	if len(p) == 0 {
		return 0
	}
	a := ringArea(p[0])
	for _, hole := range p[1:] {
		a -= ringArea(hole)
	}
	return a
}

// Area returns the sum of the signed areas of the member polygons of mp,
// in sequence order. Overlap between members is counted twice.
func (mp MultiPolygon[T]) Area() T {
	var a T
	for _, p := range mp {
		a += p.Area()
	}
	return a
}

// Area returns Width times Height. It is unsigned under the Min <= Max
// assumption and does not encode winding.
func (r Rect[T]) Area() T {
	return r.Width() * r.Height()
}

// Area returns the signed area of t, the halved sum of the edge
// determinants, with the same sign convention as Polygon.
func (t Triangle[T]) Area() T {
	var a T
	for _, e := range t.Edges() {
		a += e.Determinant()
	}
	return a / 2
}
