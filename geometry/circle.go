package geometry

import (
	"fmt"

	"github.com/viant/lolaspec/expr"
	"github.com/viant/lolaspec/stream"
)

func squaredDiff(a, b expr.Operand) expr.Expression {
	e := expr.Empty()
	e.AppendLiteral("((")
	expr.AppendOperand(&e, a)
	e.AppendLiteral(")-(")
	expr.AppendOperand(&e, b)
	e.AppendLiteral("))")
	return e
}

// PointInCircle builds the expression that evaluates true when p lies on the
// border of or inside c: (px-cx)^2 + (py-cy)^2 <= r^2.
func PointInCircle(p Point, c Circle) expr.Expression {
	dx := squaredDiff(p.X, c.Center.X)
	dy := squaredDiff(p.Y, c.Center.Y)

	lhs := expr.Empty()
	lhs.AppendLiteral("(")
	lhs.AppendInline(dx)
	lhs.AppendLiteral("*")
	lhs.AppendInline(dx)
	lhs.AppendLiteral(") + (")
	lhs.AppendInline(dy)
	lhs.AppendLiteral("*")
	lhs.AppendInline(dy)
	lhs.AppendLiteral(")")

	rhs := expr.Empty()
	rhs.AppendLiteral("(")
	expr.AppendOperand(&rhs, c.Radius)
	rhs.AppendLiteral(")*(")
	expr.AppendOperand(&rhs, c.Radius)
	rhs.AppendLiteral(")")

	return expr.LessEqual(expr.Sub(lhs), expr.Sub(rhs))
}

// CircleLineOverlap builds the expression that evaluates true when circle c
// overlaps segment wall. With denom = (bx-ax)^2+(by-ay)^2,
// s = ((cx-ax)*(bx-ax) + (cy-ay)*(by-ay)) / denom and
// t2 = (((ax-cx)*(by-ay)) + ((cy-ay)*(bx-ax)))^2 / denom, the overlap
// condition is (0.0 < s) && (s < 1.0) && (t2 < r*r).
func CircleLineOverlap(c Circle, wall Wall) expr.Expression {
	ax, ay := wall.A.X, wall.A.Y
	bx, by := wall.B.X, wall.B.Y
	cx, cy := c.Center.X, c.Center.Y

	denom := func() expr.Expression {
		e := expr.Empty()
		e.AppendLiteral("((((")
		expr.AppendOperand(&e, bx)
		e.AppendLiteral(")-(")
		expr.AppendOperand(&e, ax)
		e.AppendLiteral("))*((")
		expr.AppendOperand(&e, bx)
		e.AppendLiteral(")-(")
		expr.AppendOperand(&e, ax)
		e.AppendLiteral(")))+((((")
		expr.AppendOperand(&e, by)
		e.AppendLiteral(")-(")
		expr.AppendOperand(&e, ay)
		e.AppendLiteral("))*((")
		expr.AppendOperand(&e, by)
		e.AppendLiteral(")-(")
		expr.AppendOperand(&e, ay)
		e.AppendLiteral(")))))")
		return e
	}

	s := expr.Empty()
	s.AppendLiteral("((((")
	expr.AppendOperand(&s, cx)
	s.AppendLiteral(")-(")
	expr.AppendOperand(&s, ax)
	s.AppendLiteral("))*((")
	expr.AppendOperand(&s, bx)
	s.AppendLiteral(")-(")
	expr.AppendOperand(&s, ax)
	s.AppendLiteral(")))+((((")
	expr.AppendOperand(&s, cy)
	s.AppendLiteral(")-(")
	expr.AppendOperand(&s, ay)
	s.AppendLiteral("))*((")
	expr.AppendOperand(&s, by)
	s.AppendLiteral(")-(")
	expr.AppendOperand(&s, ay)
	s.AppendLiteral(")))))/")
	s.AppendInline(denom())

	tNum := expr.Empty()
	tNum.AppendLiteral("((((")
	expr.AppendOperand(&tNum, ax)
	tNum.AppendLiteral(")-(")
	expr.AppendOperand(&tNum, cx)
	tNum.AppendLiteral("))*((")
	expr.AppendOperand(&tNum, by)
	tNum.AppendLiteral(")-(")
	expr.AppendOperand(&tNum, ay)
	tNum.AppendLiteral(")))+((((")
	expr.AppendOperand(&tNum, cy)
	tNum.AppendLiteral(")-(")
	expr.AppendOperand(&tNum, ay)
	tNum.AppendLiteral("))*((")
	expr.AppendOperand(&tNum, bx)
	tNum.AppendLiteral(")-(")
	expr.AppendOperand(&tNum, ax)
	tNum.AppendLiteral(")))))")

	t2 := expr.Empty()
	t2.AppendLiteral("(")
	t2.AppendInline(tNum)
	t2.AppendLiteral("*")
	t2.AppendInline(tNum)
	t2.AppendLiteral(")/")
	t2.AppendInline(denom())

	rr := expr.Empty()
	rr.AppendLiteral("(")
	expr.AppendOperand(&rr, c.Radius)
	rr.AppendLiteral(")*(")
	expr.AppendOperand(&rr, c.Radius)
	rr.AppendLiteral(")")

	return expr.And(
		expr.Sub(expr.LessThan(expr.Lit("0.0"), expr.Sub(s))),
		expr.Sub(expr.LessThan(expr.Sub(s), expr.Lit("1.0"))),
		expr.Sub(expr.LessThan(expr.Sub(t2), expr.Sub(rr))),
	)
}

// PointInCircleSet builds one named stream per (point, circle) pair, mirroring
// the original's test_points_in_circles: stream Point<m>InCircle<n> is bound
// to PointInCircle(ps[m], cs[n]).
func PointInCircleSet(ps []Point, cs []Circle, prefix string) []Binding {
	bindings := make([]Binding, 0, len(ps)*len(cs))
	for m, p := range ps {
		for n, c := range cs {
			bindings = append(bindings, Binding{
				Stream: stream.New(fmt.Sprintf("%sPoint%dInCircle%d", prefix, m, n)),
				Expr:   PointInCircle(p, c),
			})
		}
	}
	return bindings
}

// CircleLineOverlapSet builds one named stream per (circle, wall) pair,
// mirroring the original's test_circles_walls_overlaps: stream
// Circle<n>CollidesWall<m> is bound to CircleLineOverlap(cs[n], walls[m]).
func CircleLineOverlapSet(cs []Circle, walls []Wall, prefix string) []Binding {
	bindings := make([]Binding, 0, len(cs)*len(walls))
	for n, c := range cs {
		for m, w := range walls {
			bindings = append(bindings, Binding{
				Stream: stream.New(fmt.Sprintf("%sCircle%dCollidesWall%d", prefix, n, m)),
				Expr:   CircleLineOverlap(c, w),
			})
		}
	}
	return bindings
}
