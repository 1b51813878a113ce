package geo

import "fmt"

// SegmentLength returns the Euclidean length of the single segment l.
func SegmentLength[T Float](l Line[T]) T {
	return Distance(l.Start, l.End)
}

// LineStringLength returns the sum of the segment lengths of l, in order.
func LineStringLength[T Float](l LineString[T]) T {
	var sum T
	for i := 0; i < len(l)-1; i++ {
		sum += Distance(l[i], l[i+1])
	}
	return sum
}

// Length returns the length of the boundary of g: zero for point-like
// shapes, the path length for linear shapes, and the perimeter for areal
// shapes. Composite shapes sum their members in sequence order.
func Length[T Float](g Geometry[T]) T {
	switch g := g.(type) {
	case Point[T]:
		return 0
	case MultiPoint[T]:
		return 0
	case Line[T]:
		return SegmentLength(g)
	case LineString[T]:
		return LineStringLength(g)
	case MultiLineString[T]:
		var sum T
		for _, l := range g {
			sum += LineStringLength(l)
		}
		return sum
	case Polygon[T]:
		return polygonLength(g)
	case MultiPolygon[T]:
		var sum T
		for _, p := range g {
			sum += polygonLength(p)
		}
		return sum
	case Rect[T]:
		return 2 * (g.Width() + g.Height())
	case Triangle[T]:
		var sum T
		for _, e := range g.Edges() {
			sum += SegmentLength(e)
		}
		return sum
	case GeometryCollection[T]:
		var sum T
		for _, member := range g {
			sum += Length(member)
		}
		return sum
	}
	panic(fmt.Sprintf("geo: unsupported geometry type: %T", g))
}

func polygonLength[T Float](p Polygon[T]) T {
	var sum T
	for _, ring := range p {
		sum += LineStringLength(ring)
	}
	return sum
}
