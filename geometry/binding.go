package geometry

import (
	"github.com/viant/lolaspec/expr"
	"github.com/viant/lolaspec/stream"
)

// Binding pairs a stream with the expression a multi-stream builder wants
// bound to it. Builders that only ever produce one anonymous expression
// (PointInCircle, CircleLineOverlap, …) return an expr.Expression directly;
// builders that name streams of their own (RotatePolygon, PnPoly,
// ConvexPolygon, …) return Bindings so the caller decides pinning via
// spec.AddExpression.
type Binding struct {
	Stream stream.Stream
	Expr   expr.Expression
}
