package geometry

import (
	"fmt"

	"github.com/viant/lolaspec/expr"
	"github.com/viant/lolaspec/stream"
)

// ConnectPolygon builds the walls of a closed polygon from its corners: wall
// i connects corner i to corner (i-1) mod n. The backwards walk (not
// forwards) is preserved from the original connect_polygon — it fixes the
// winding direction the convex half-plane test relies on.
func ConnectPolygon(corners []Point) []Wall {
	n := len(corners)
	walls := make([]Wall, n)
	for i := 0; i < n; i++ {
		j := ((i-1)%n + n) % n
		walls[i] = Wall{A: corners[i], B: corners[j]}
	}
	return walls
}

func rotatedX(x, y, angle, centerX expr.Operand) expr.Expression {
	e := expr.Empty()
	e.AppendLiteral("(((")
	expr.AppendOperand(&e, x)
	e.AppendLiteral(") * cos(")
	expr.AppendOperand(&e, angle)
	e.AppendLiteral(")) - ((")
	expr.AppendOperand(&e, y)
	e.AppendLiteral(") * sin(")
	expr.AppendOperand(&e, angle)
	e.AppendLiteral("))) + ")
	expr.AppendOperand(&e, centerX)
	return e
}

func rotatedY(x, y, angle, centerY expr.Operand) expr.Expression {
	e := expr.Empty()
	e.AppendLiteral("(((")
	expr.AppendOperand(&e, x)
	e.AppendLiteral(") * sin(")
	expr.AppendOperand(&e, angle)
	e.AppendLiteral(")) + ((")
	expr.AppendOperand(&e, y)
	e.AppendLiteral(") * cos(")
	expr.AppendOperand(&e, angle)
	e.AppendLiteral("))) + ")
	expr.AppendOperand(&e, centerY)
	return e
}

// RotatePolygon builds, for every corner of polygon, the pair of streams
// <prefix>C<n>X / <prefix>C<n>Y holding that corner rotated by angle around
// center. It returns the bindings to add (the caller decides pinning via
// spec.AddExpression) and the rotated corner points, which reference the new
// streams and can be fed straight into ConnectPolygon or any other builder
// that consumes Points.
func RotatePolygon(polygon []Point, center Point, angle expr.Operand, prefix string) ([]Binding, []Point) {
	bindings := make([]Binding, 0, len(polygon)*2)
	corners := make([]Point, len(polygon))

	for n, corner := range polygon {
		px := stream.New(fmt.Sprintf("%sC%dX", prefix, n))
		py := stream.New(fmt.Sprintf("%sC%dY", prefix, n))

		bindings = append(bindings,
			Binding{Stream: px, Expr: rotatedX(corner.X, corner.Y, angle, center.X)},
			Binding{Stream: py, Expr: rotatedY(corner.X, corner.Y, angle, center.Y)},
		)
		corners[n] = NewPoint(expr.Ref(px), expr.Ref(py))
	}

	return bindings, corners
}
