package geo

// PolygonCentroid calculates the centroid of p, from
// http://en.wikipedia.org/wiki/Centroid#Centroid_of_polygon.
// Each ring must be closed and non-self-intersecting, and hole rings must
// be wound opposite to the exterior so that their signed areas subtract.
// The result is not defined for polygons that enclose no area.
func PolygonCentroid[T Float](p Polygon[T]) Point[T] {
	c, _ := polygonCentroidArea(p)
	return c
}

// MultiPolygonCentroid calculates the centroid of mp, weighting each
// member polygon's centroid by its signed area. The same ring winding
// requirements as PolygonCentroid apply.
func MultiPolygonCentroid[T Float](mp MultiPolygon[T]) Point[T] {
	var a, xa, ya T
	for _, p := range mp {
		c, pa := polygonCentroidArea(p)
		a += pa
		xa += c.X * pa
		ya += c.Y * pa
	}
	return Point[T]{X: xa / a, Y: ya / a}
}

// polygonCentroidArea returns the centroid of p together with the sum of
// its signed ring areas.
func polygonCentroidArea[T Float](p Polygon[T]) (Point[T], T) {
	var a, xa, ya T
	for _, ring := range p {
		ra := ringArea(ring)
		var cx, cy T
		for i := 0; i < len(ring)-1; i++ {
			cross := ring[i].X*ring[i+1].Y - ring[i+1].X*ring[i].Y
			cx += (ring[i].X + ring[i+1].X) * cross
			cy += (ring[i].Y + ring[i+1].Y) * cross
		}
		cx /= 6 * ra
		cy /= 6 * ra
		a += ra
		xa += cx * ra
		ya += cy * ra
	}
	return Point[T]{X: xa / a, Y: ya / a}, a
}
