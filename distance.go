package geo

import "math"

// Distance returns the Euclidean distance between a and b.
func Distance[T Float](a, b Point[T]) T {
	return T(math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y)))
}

// SegmentDistance returns the Euclidean distance from p to the segment
// between start and end. A degenerate segment (start equal to end) is
// treated as the point start. For a proper segment, p is projected onto
// the infinite line through start and end; when the projection falls
// outside the segment the distance to the nearer endpoint is returned,
// otherwise the perpendicular distance to the line.
func SegmentDistance[T Float](p, start, end Point[T]) T {
	if start.Equals(end) {
		return Distance(p, start)
	}
	dx := end.X - start.X
	dy := end.Y - start.Y
	r := ((p.X-start.X)*dx + (p.Y-start.Y)*dy) / (dx*dx + dy*dy)
	if r <= 0 {
		return Distance(p, start)
	}
	if r >= 1 {
		return Distance(p, end)
	}
	s := ((start.Y-p.Y)*dx - (start.X-p.X)*dy) / (dx*dx + dy*dy)
	if s < 0 {
		s = -s
	}
	return s * T(math.Hypot(float64(dx), float64(dy)))
}

// PointLineDistance returns the Euclidean distance from p to the segment l.
func PointLineDistance[T Float](p Point[T], l Line[T]) T {
	return SegmentDistance(p, l.Start, l.End)
}

// PointLineStringDistance returns the minimum Euclidean distance from p
// to l. The distance is zero when l is empty or when p lies on l
// (LineStringContainsPoint); otherwise it is the minimum of
// SegmentDistance over the consecutive segments of l. A LineString with a
// single point and no boundary match has no segments to measure against
// and yields +Inf. NaN segment distances are skipped by the minimum fold.
func PointLineStringDistance[T Float](p Point[T], l LineString[T]) T {
	if len(l) == 0 || LineStringContainsPoint(l, p) {
		return 0
	}
	best := T(math.Inf(1))
	for i := 0; i < len(l)-1; i++ {
		if d := SegmentDistance(p, l[i], l[i+1]); d < best {
			best = d
		}
	}
	return best
}
