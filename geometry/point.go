// Package geometry builds the symbolic collision-geometry expressions (C5):
// polygon rotation, point-in-circle, circle/segment overlap, ray-casting
// point-in-polygon, and the convex half-plane test. Every builder returns an
// expr.Expression (or a set of named bindings for multi-stream builders); it
// never evaluates a formula itself, matching the rest of lolaspec's
// build-a-graph-don't-run-it design.
package geometry

import "github.com/viant/lolaspec/expr"

// Point is a 2-D coordinate pair. Either component may be a literal number
// or a stream reference, mirroring the original prototype's
// Stream_or_float union.
type Point struct {
	X, Y expr.Operand
}

// NewPoint constructs a Point from its two components.
func NewPoint(x, y expr.Operand) Point {
	return Point{X: x, Y: y}
}

// Circle is a center Point plus a radius, itself a literal or stream
// reference.
type Circle struct {
	Center Point
	Radius expr.Operand
}

// NewCircle constructs a Circle from its center and radius.
func NewCircle(center Point, radius expr.Operand) Circle {
	return Circle{Center: center, Radius: radius}
}

// Wall connects two polygon corners.
type Wall struct {
	A, B Point
}
