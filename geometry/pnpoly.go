package geometry

import (
	"fmt"

	"github.com/viant/lolaspec/expr"
	"github.com/viant/lolaspec/stream"
)

// pnpolyCheckWall builds the per-wall ray-casting test from
// https://wrfranklin.org/Research/Short_Notes/pnpoly.html:
//
//	(Ay > Py != By > Py) && (By != Ay) && ((Bx-Ax)*(Py-Ay)/(By-Ay) + Ax <= Px)
//
// yielding 1 when the test point's horizontal ray crosses this wall, 0
// otherwise.
func pnpolyCheckWall(p Point, w Wall) expr.Expression {
	ax, ay := w.A.X, w.A.Y
	bx, by := w.B.X, w.B.Y
	px, py := p.X, p.Y

	crossing := expr.Empty()
	crossing.AppendLiteral("(((")
	expr.AppendOperand(&crossing, bx)
	crossing.AppendLiteral(") - (")
	expr.AppendOperand(&crossing, ax)
	crossing.AppendLiteral(")) * ((")
	expr.AppendOperand(&crossing, py)
	crossing.AppendLiteral(") - (")
	expr.AppendOperand(&crossing, ay)
	crossing.AppendLiteral(")) / ((")
	expr.AppendOperand(&crossing, by)
	crossing.AppendLiteral(") - (")
	expr.AppendOperand(&crossing, ay)
	crossing.AppendLiteral(")) + (")
	expr.AppendOperand(&crossing, ax)
	crossing.AppendLiteral(")) <= (")
	expr.AppendOperand(&crossing, px)
	crossing.AppendLiteral(")")

	cond := expr.And(
		expr.Sub(expr.NotEqual(
			expr.Sub(expr.GreaterThan(ay, py)),
			expr.Sub(expr.GreaterThan(by, py)),
		)),
		expr.Sub(expr.NotEqual(by, ay)),
		expr.Sub(crossing),
	)

	return expr.If(expr.Sub(cond), expr.Lit("1"), expr.Lit("0"))
}

// PnPolyCheckWalls builds, for every (wall, test point) pair, the named
// stream w<n>p<m> holding pnpolyCheckWall(test point m, wall n), plus the
// per-point list of wall-stream names needed to compose the parity test.
func PnPolyCheckWalls(points []Point, walls []Wall, prefix string) (bindings []Binding, perPoint [][]stream.Stream) {
	perPoint = make([][]stream.Stream, len(points))
	for m, p := range points {
		wallStreams := make([]stream.Stream, len(walls))
		for n, w := range walls {
			s := stream.New(fmt.Sprintf("%sw%dp%d", prefix, n, m))
			bindings = append(bindings, Binding{Stream: s, Expr: pnpolyCheckWall(p, w)})
			wallStreams[n] = s
		}
		perPoint[m] = wallStreams
	}
	return bindings, perPoint
}

// PnPoly builds the full ray-casting point-in-polygon test: the per-wall
// crossing streams from PnPolyCheckWalls, plus one P<m>InPoly stream per test
// point computing ((w0p<m> + w1p<m> + …) % 2) == 1 — an odd crossing count
// means the point is inside.
func PnPoly(points []Point, walls []Wall, prefix string) (bindings []Binding, inPoly []stream.Stream) {
	wallBindings, perPoint := PnPolyCheckWalls(points, walls, prefix)
	bindings = append(bindings, wallBindings...)

	inPoly = make([]stream.Stream, len(points))
	for m, wallStreams := range perPoint {
		operands := make([]expr.Operand, len(wallStreams))
		for i, s := range wallStreams {
			operands[i] = expr.Ref(s)
		}
		sum := expr.Sum(operands...)

		modExpr := expr.Empty()
		modExpr.AppendLiteral("((")
		modExpr.AppendExpression(sum)
		modExpr.AppendLiteral(") % 2) == 1")

		name := stream.New(fmt.Sprintf("%sP%dInPoly", prefix, m))
		bindings = append(bindings, Binding{Stream: name, Expr: modExpr})
		inPoly[m] = name
	}
	return bindings, inPoly
}
