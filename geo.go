/*
Package geo holds planar geometry objects and functions to measure them.
All shapes are parameterized by their coordinate type, so the same
algorithms work on float64 grids and on exact integer grids.
*/
package geo

import "golang.org/x/exp/constraints"

// Num is the constraint for coordinate types. Any shape can be built from
// any Num type; algorithms that need square roots (distances, lengths,
// centroids) additionally require Float.
type Num interface {
	constraints.Integer | constraints.Float
}

// Float is the constraint for metric algorithms.
type Float interface {
	constraints.Float
}

// Geometry is the interface implemented by every shape kind in this
// package. The set of implementations is closed: algorithms dispatch with
// a type switch over the kinds defined here and panic on anything else.
type Geometry[T Num] interface {
	// Bounds gives the rectangular extents of the shape.
	Bounds() Rect[T]

	// Dimensions returns the dimensionality of the shape:
	// 0 for point-like, 1 for linear, and 2 for areal shapes.
	Dimensions() int
}
