package geometry

import (
	"fmt"

	"github.com/viant/lolaspec/expr"
	"github.com/viant/lolaspec/stream"
)

// WindingDirection selects which side of a wall counts as "inside" for the
// convex half-plane test: clockwise-wound polygons test 0.0 < side, while
// counterclockwise-wound polygons test 0.0 > side.
type WindingDirection int

const (
	Clockwise WindingDirection = iota
	CounterClockwise
)

// convexCheckWall builds the half-plane test for one wall of a clockwise- (or
// counterclockwise-) wound convex polygon:
//
//	side = (Px-Ax)*(By-Ay) + (Ay-Py)*(Bx-Ax)
//
// clockwise evaluates 0.0 < side; counterclockwise evaluates 0.0 > side.
func convexCheckWall(p Point, w Wall, direction WindingDirection) expr.Expression {
	ax, ay := w.A.X, w.A.Y
	bx, by := w.B.X, w.B.Y
	px, py := p.X, p.Y

	side := expr.Empty()
	side.AppendLiteral("((")
	expr.AppendOperand(&side, px)
	side.AppendLiteral(")-(")
	expr.AppendOperand(&side, ax)
	side.AppendLiteral("))*((")
	expr.AppendOperand(&side, by)
	side.AppendLiteral(")-(")
	expr.AppendOperand(&side, ay)
	side.AppendLiteral(")) + ((")
	expr.AppendOperand(&side, ay)
	side.AppendLiteral(")-(")
	expr.AppendOperand(&side, py)
	side.AppendLiteral("))*((")
	expr.AppendOperand(&side, bx)
	side.AppendLiteral(")-(")
	expr.AppendOperand(&side, ax)
	side.AppendLiteral("))")

	if direction == CounterClockwise {
		return expr.GreaterThan(expr.Lit("0.0"), expr.Sub(side))
	}
	return expr.LessThan(expr.Lit("0.0"), expr.Sub(side))
}

// ConvexPolygon builds the composed point-in-convex-polygon-set test: for
// every test point i and subpolygon m, stream P<i>inSubPoly<m> chains the
// wall checks for that subpolygon with &&; stream P<i>inPoly unions the
// subpolygon streams with ||, so a point inside any one convex subpolygon
// counts as inside. Per-wall checks are inlined directly into the subpolygon
// expression rather than bound as their own streams — the original cpoly
// never names them either.
func ConvexPolygon(points []Point, subpolygons [][]Wall, prefix string, direction WindingDirection) (bindings []Binding, inPoly []stream.Stream) {
	inPoly = make([]stream.Stream, len(points))

	for i, p := range points {
		subpolyStreams := make([]stream.Stream, len(subpolygons))

		for m, walls := range subpolygons {
			wallChecks := make([]expr.Operand, len(walls))
			for n, w := range walls {
				wallChecks[n] = expr.Sub(convexCheckWall(p, w, direction))
			}

			subStream := stream.New(fmt.Sprintf("%sP%dinSubPoly%d", prefix, i, m))
			bindings = append(bindings, Binding{Stream: subStream, Expr: expr.And(wallChecks...)})
			subpolyStreams[m] = subStream
		}

		unionOperands := make([]expr.Operand, len(subpolyStreams))
		for m, s := range subpolyStreams {
			unionOperands[m] = expr.Ref(s)
		}

		pointStream := stream.New(fmt.Sprintf("%sP%dinPoly", prefix, i))
		bindings = append(bindings, Binding{Stream: pointStream, Expr: expr.Or(unionOperands...)})
		inPoly[i] = pointStream
	}

	return bindings, inPoly
}
