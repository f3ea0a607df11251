package spec_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/lolaspec/expr"
	"github.com/viant/lolaspec/spec"
	"github.com/viant/lolaspec/stream"
)

// buildScenario1 wires the §8 Scenario 1 fixture:
//
//	inputs: a, b, c
//	x = 2 * b
//	y = ›x‹ + a
//	z = c + ›x‹ * ›y‹   (pinned)
func buildScenario1(t *testing.T) (*spec.Specification, stream.Stream, stream.Stream, stream.Stream) {
	t.Helper()
	s := spec.New()
	a, b, c := stream.New("a"), stream.New("b"), stream.New("c")
	x, y, z := stream.New("x"), stream.New("y"), stream.New("z")

	s.DeclareInput(a)
	s.DeclareInput(b)
	s.DeclareInput(c)

	xExpr := expr.Empty()
	xExpr.AppendLiteral("2 * ")
	xExpr.AppendStream(b)
	assert.NoError(t, s.AddExpression(x, xExpr, false))

	yExpr := expr.Empty()
	yExpr.AppendStream(x)
	yExpr.AppendLiteral(" + ")
	yExpr.AppendStream(a)
	assert.NoError(t, s.AddExpression(y, yExpr, false))

	zExpr := expr.Empty()
	zExpr.AppendLiteral("c + ")
	zExpr.AppendStream(x)
	zExpr.AppendLiteral(" * ")
	zExpr.AppendStream(y)
	assert.NoError(t, s.AddExpression(z, zExpr, true))

	return s, x, y, z
}

func TestCollapseThenPruneScenario1(t *testing.T) {
	s, x, y, z := buildScenario1(t)

	assert.NoError(t, s.CollapseExpression(z))
	s.Prune()

	assert.Equal(t, []stream.Stream{z}, s.Outputs())
	_, xBound := s.Binding(x)
	_, yBound := s.Binding(y)
	assert.False(t, xBound)
	assert.False(t, yBound)

	zBound, ok := s.Binding(z)
	assert.True(t, ok)
	assert.Equal(t, "c + (2 * b) * ((2 * b) + a)", zBound.Render())
}

func TestCollapseIdempotence(t *testing.T) {
	s, _, _, z := buildScenario1(t)

	assert.NoError(t, s.CollapseExpression(z))
	first, _ := s.Binding(z)

	assert.NoError(t, s.CollapseExpression(z))
	second, _ := s.Binding(z)

	assert.Equal(t, first.Render(), second.Render())
	assert.ElementsMatch(t, first.Dependencies(), second.Dependencies())
}

func TestCollapseRejectsDanglingReference(t *testing.T) {
	// Scenario 4: y = ›x‹ + 1 without binding or declaring x.
	s := spec.New()
	x := stream.New("x")
	y := stream.New("y")

	yExpr := expr.Empty()
	yExpr.AppendStream(x)
	yExpr.AppendLiteral(" + 1")
	assert.NoError(t, s.AddExpression(y, yExpr, false))

	err := s.CollapseExpression(y)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, spec.ErrUnresolvedReference))

	var unresolved *spec.UnresolvedReferenceError
	assert.True(t, errors.As(err, &unresolved))
	assert.Equal(t, x, unresolved.Stream)

	// Unchanged.
	bound, _ := s.Binding(y)
	assert.Equal(t, "x + 1", bound.Render())
}

func TestCollapsePreservesPinnedReference(t *testing.T) {
	// Scenario 5: x = b*2, y = ›x‹ + 1, both pinned.
	s := spec.New()
	b := stream.New("b")
	x := stream.New("x")
	y := stream.New("y")
	s.DeclareInput(b)

	xExpr := expr.Empty()
	xExpr.AppendStream(b)
	xExpr.AppendLiteral("*2")
	assert.NoError(t, s.AddExpression(x, xExpr, true))

	yExpr := expr.Empty()
	yExpr.AppendStream(x)
	yExpr.AppendLiteral(" + 1")
	assert.NoError(t, s.AddExpression(y, yExpr, true))

	assert.NoError(t, s.CollapseExpression(y))

	bound, _ := s.Binding(y)
	assert.Equal(t, "x + 1", bound.Render())
	assert.Equal(t, []stream.Stream{x}, bound.Dependencies())
}

func TestCollapseUnknownStream(t *testing.T) {
	s := spec.New()
	missing := stream.New("missing")
	err := s.CollapseExpression(missing)
	assert.True(t, errors.Is(err, spec.ErrUnknownStream))
}

func TestCollapseDetectsCycle(t *testing.T) {
	s := spec.New()
	x := stream.New("x")
	y := stream.New("y")

	xExpr := expr.Empty()
	xExpr.AppendStream(y)
	assert.NoError(t, s.AddExpression(x, xExpr, false))

	yExpr := expr.Empty()
	yExpr.AppendStream(x)
	assert.NoError(t, s.AddExpression(y, yExpr, false))

	err := s.CollapseExpression(x)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, spec.ErrCyclicDependency))
}
