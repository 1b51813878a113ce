package geo

import "gonum.org/v1/gonum/floats/scalar"

// PointEqualTolerance is the absolute tolerance used by PointsEqual: the
// float32 machine epsilon. Point equality is decided on the distance
// between the points narrowed to float32 precision, whatever the
// precision of T. This reduced-precision policy is kept for compatibility
// with existing consumers; use PointsEqualWithin to supply a tolerance
// suited to a higher-precision coordinate type.
const PointEqualTolerance = 1.1920929e-07

// PointsEqual returns whether the Euclidean distance between p1 and p2,
// narrowed to float32, is approximately zero under PointEqualTolerance.
func PointsEqual[T Float](p1, p2 Point[T]) bool {
	return PointsEqualWithin(p1, p2, PointEqualTolerance)
}

// PointsEqualWithin returns whether the Euclidean distance between p1 and
// p2, narrowed to float32, is within tol of zero. Non-finite coordinates
// are never approximately equal.
func PointsEqualWithin[T Float](p1, p2 Point[T], tol float64) bool {
	d := float32(Distance(p1, p2))
	return scalar.EqualWithinAbs(float64(d), 0, tol)
}

// LineStringContainsPoint returns whether p lies exactly on the boundary
// of l. A point is on the boundary if it matches a vertex of l exactly,
// or if it lies strictly between the endpoints of a horizontal or
// vertical segment of l. A single-point LineString is matched against its
// one vertex with the PointsEqual tolerance instead.
//
// Points on the interior of a diagonal segment are not detected: only
// axis-aligned segments are tested for interior containment. Callers
// needing exact membership on arbitrary segments must measure with
// SegmentDistance instead.
func LineStringContainsPoint[T Float](l LineString[T], p Point[T]) bool {
	if len(l) == 0 {
		return false
	}
	if len(l) == 1 {
		return PointsEqual(l[0], p)
	}
	for _, v := range l {
		if v.Equals(p) {
			return true
		}
	}
	for i := 0; i < len(l)-1; i++ {
		a, b := l[i], l[i+1]
		if a.Y == b.Y && p.Y == a.Y &&
			p.X > min(a.X, b.X) && p.X < max(a.X, b.X) {
			return true
		}
		if a.X == b.X && p.X == a.X &&
			p.Y > min(a.Y, b.Y) && p.Y < max(a.Y, b.Y) {
			return true
		}
	}
	return false
}
