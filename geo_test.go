package geo

import (
	"reflect"
	"testing"
)

func TestBounds(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry[float64]
		want Rect[float64]
	}{
		{"point", Point[float64]{3, 4}, NewRect[float64](3, 4, 3, 4)},
		{"line", NewLine[float64](5, 0, 0, 5), NewRect[float64](0, 0, 5, 5)},
		{"linestring", LineString[float64]{{1, 2}, {-1, 4}, {3, 0}},
			NewRect[float64](-1, 0, 3, 4)},
		{"empty linestring", LineString[float64]{}, Rect[float64]{}},
		{"polygon", Polygon[float64]{square(2, 3, 4)}, NewRect[float64](2, 3, 6, 7)},
		{"multipolygon", MultiPolygon[float64]{
			{square(0, 0, 1)},
			{square(5, 5, 2)},
		}, NewRect[float64](0, 0, 7, 7)},
		{"rect", NewRect[float64](1, 2, 3, 4), NewRect[float64](1, 2, 3, 4)},
		{"triangle", Triangle[float64]{{0, 0}, {4, 0}, {2, 3}},
			NewRect[float64](0, 0, 4, 3)},
		{"multilinestring", MultiLineString[float64]{
			{{0, 0}, {1, 1}},
			{{-2, 3}, {0, 0}},
		}, NewRect[float64](-2, 0, 1, 3)},
		{"collection", GeometryCollection[float64]{
			Point[float64]{10, 10},
			NewLine[float64](0, 0, 1, 1),
		}, NewRect[float64](0, 0, 10, 10)},
	}
	for _, test := range tests {
		if have := test.g.Bounds(); !reflect.DeepEqual(have, test.want) {
			t.Errorf("%s: have %+v, want %+v", test.name, have, test.want)
		}
	}
}

func TestBounds_Int(t *testing.T) {
	ls := LineString[int]{{1, 2}, {-1, 4}, {3, 0}}
	want := NewRect[int](-1, 0, 3, 4)
	if have := ls.Bounds(); !reflect.DeepEqual(have, want) {
		t.Errorf("have %+v, want %+v", have, want)
	}
}

func TestDimensions(t *testing.T) {
	tests := []struct {
		g    Geometry[float64]
		want int
	}{
		{Point[float64]{}, 0},
		{MultiPoint[float64]{}, 0},
		{Line[float64]{}, 1},
		{LineString[float64]{}, 1},
		{MultiLineString[float64]{}, 1},
		{Polygon[float64]{}, 2},
		{MultiPolygon[float64]{}, 2},
		{Rect[float64]{}, 2},
		{Triangle[float64]{}, 2},
		{GeometryCollection[float64]{}, 0},
		{GeometryCollection[float64]{Point[float64]{}, LineString[float64]{}}, 1},
		{GeometryCollection[float64]{
			LineString[float64]{},
			GeometryCollection[float64]{Polygon[float64]{}},
		}, 2},
	}
	for _, test := range tests {
		if have := test.g.Dimensions(); have != test.want {
			t.Errorf("%T: have %d, want %d", test.g, have, test.want)
		}
	}
}

func TestLineStringSegments(t *testing.T) {
	ls := LineString[float64]{{0, 0}, {1, 0}, {1, 1}}
	want := []Line[float64]{
		NewLine[float64](0, 0, 1, 0),
		NewLine[float64](1, 0, 1, 1),
	}
	if have := ls.Segments(); !reflect.DeepEqual(have, want) {
		t.Errorf("have %+v, want %+v", have, want)
	}
	if have := (LineString[float64]{{0, 0}}).Segments(); have != nil {
		t.Errorf("single-point segments: have %+v, want nil", have)
	}
}

func TestLineStringClosed(t *testing.T) {
	if (LineString[float64]{}).Closed() {
		t.Error("empty linestring should not be closed")
	}
	if !square(0, 0, 1).Closed() {
		t.Error("square ring should be closed")
	}
	if (LineString[float64]{{0, 0}, {1, 1}}).Closed() {
		t.Error("open path should not be closed")
	}
}

func TestPolygonAccessors(t *testing.T) {
	ext := square(0, 0, 10)
	hole := square(1, 1, 1)
	p := Polygon[float64]{ext, hole}
	if have := p.Exterior(); !reflect.DeepEqual(have, ext) {
		t.Errorf("exterior: have %+v, want %+v", have, ext)
	}
	if have := p.Interiors(); !reflect.DeepEqual(have, []LineString[float64]{hole}) {
		t.Errorf("interiors: have %+v", have)
	}
	empty := Polygon[float64]{}
	if empty.Exterior() != nil || empty.Interiors() != nil {
		t.Error("empty polygon should have no rings")
	}
}

func TestRectExtend(t *testing.T) {
	r := NewRect[float64](0, 0, 1, 1)
	have := r.Extend(NewRect[float64](-1, 2, 0.5, 3))
	want := NewRect[float64](-1, 0, 1, 3)
	if !reflect.DeepEqual(have, want) {
		t.Errorf("have %+v, want %+v", have, want)
	}
}

type outsideGeometry struct{}

func (outsideGeometry) Bounds() Rect[float64] { return Rect[float64]{} }
func (outsideGeometry) Dimensions() int       { return 0 }

// The set of geometry kinds is closed; dispatching on anything else is a
// programmer error.
func TestArea_UnsupportedType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unsupported geometry type")
		}
	}()
	Area[float64](outsideGeometry{})
}

// A Rect with min > max is not validated; its measurements stay
// mathematically consistent.
func TestRectInverted(t *testing.T) {
	r := NewRect[float64](10, 10, 0, 0)
	if have := Area[float64](r); have != 100 {
		t.Errorf("area: have %g, want 100", have)
	}
	if have := r.Width(); have != -10 {
		t.Errorf("width: have %g, want -10", have)
	}
}
