package scenario

import (
	"fmt"

	"github.com/viant/lolaspec/expr"
	"github.com/viant/lolaspec/geometry"
	"github.com/viant/lolaspec/spec"
	"github.com/viant/lolaspec/stream"
)

func operandExpression(op expr.Operand) expr.Expression {
	e := expr.Empty()
	expr.AppendOperand(&e, op)
	return e
}

// Build declares the scene's inputs, binds a named coordinate stream pair
// for every test point, builds a PointInPolygon test (C5) for every
// (polygon, test point) pair and a PointInCircle test for every (circle,
// test point) pair, and registers the resulting per-pair streams as pinned
// outputs iff the owning polygon or circle is marked pinned.
func (s *Scene) Build(sp *spec.Specification) error {
	table := make(map[string]stream.Stream, len(s.Inputs))
	for _, name := range s.Inputs {
		st := stream.New(name)
		sp.DeclareInput(st)
		table[name] = st
	}

	points := make([]geometry.Point, len(s.TestPoints))
	for i, tp := range s.TestPoints {
		xOp, err := tp.X.operand(table)
		if err != nil {
			return fmt.Errorf("scenario: test point %s.x: %w", tp.Name, err)
		}
		yOp, err := tp.Y.operand(table)
		if err != nil {
			return fmt.Errorf("scenario: test point %s.y: %w", tp.Name, err)
		}

		xStream := stream.New(tp.Name + "X")
		yStream := stream.New(tp.Name + "Y")
		if err := sp.AddExpression(xStream, operandExpression(xOp), false); err != nil {
			return fmt.Errorf("scenario: test point %s.x: %w", tp.Name, err)
		}
		if err := sp.AddExpression(yStream, operandExpression(yOp), false); err != nil {
			return fmt.Errorf("scenario: test point %s.y: %w", tp.Name, err)
		}
		table[tp.Name+"X"] = xStream
		table[tp.Name+"Y"] = yStream
		points[i] = geometry.NewPoint(expr.Ref(xStream), expr.Ref(yStream))
	}

	for _, poly := range s.Polygons {
		corners := make([]geometry.Point, len(poly.Points))
		for i, ps := range poly.Points {
			p, err := ps.resolve(table)
			if err != nil {
				return fmt.Errorf("scenario: polygon %s: %w", poly.Name, err)
			}
			corners[i] = p
		}
		walls := geometry.ConnectPolygon(corners)
		bindings, inPoly := geometry.PnPoly(points, walls, poly.Name+"_")

		final := make(map[string]bool, len(inPoly))
		for _, st := range inPoly {
			final[st.Name] = true
		}
		for _, b := range bindings {
			pinned := poly.Pinned && final[b.Stream.Name]
			if err := sp.AddExpression(b.Stream, b.Expr, pinned); err != nil {
				return fmt.Errorf("scenario: polygon %s: %w", poly.Name, err)
			}
		}
	}

	for _, c := range s.Circles {
		center, err := c.Center.resolve(table)
		if err != nil {
			return fmt.Errorf("scenario: circle %s: %w", c.Name, err)
		}
		radiusOp, err := c.Radius.operand(table)
		if err != nil {
			return fmt.Errorf("scenario: circle %s: %w", c.Name, err)
		}
		circle := geometry.NewCircle(center, radiusOp)

		bindings := geometry.PointInCircleSet(points, []geometry.Circle{circle}, c.Name+"_")
		for _, b := range bindings {
			if err := sp.AddExpression(b.Stream, b.Expr, c.Pinned); err != nil {
				return fmt.Errorf("scenario: circle %s: %w", c.Name, err)
			}
		}
	}

	return nil
}
