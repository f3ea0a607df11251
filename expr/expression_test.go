package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/lolaspec/expr"
	"github.com/viant/lolaspec/stream"
)

func TestEmptyExpression(t *testing.T) {
	e := expr.Empty()
	assert.Equal(t, "", e.Render())
	assert.Empty(t, e.Dependencies())
	assert.Equal(t, 0, e.Len())
}

func TestAppendLiteral(t *testing.T) {
	e := expr.Empty()
	e.AppendLiteral("2 * ")
	e.AppendLiteral("b")
	assert.Equal(t, "2 * b", e.Render())
	assert.Empty(t, e.Dependencies())
}

func TestAppendStreamTracksDependency(t *testing.T) {
	b := stream.New("b")
	e := expr.Empty()
	e.AppendLiteral("2 * ")
	e.AppendStream(b)
	assert.Equal(t, "2 * b", e.Render())
	assert.Equal(t, []stream.Stream{b}, e.Dependencies())
	assert.True(t, e.DependsOn(b))
}

func TestAppendExpressionWrapsInParenthesesAndUnionsDeps(t *testing.T) {
	a := stream.New("a")
	x := stream.New("x")

	inner := expr.Empty()
	inner.AppendStream(x)
	inner.AppendLiteral(" + a")

	outer := expr.Empty()
	outer.AppendLiteral("c + ")
	outer.AppendExpression(inner)
	outer.AppendStream(a)

	assert.Equal(t, "c + (x + a)a", outer.Render())
	deps := outer.Dependencies()
	assert.ElementsMatch(t, []stream.Stream{x, a}, deps)
}

func TestDuplicateReferenceContributesOneDependency(t *testing.T) {
	x := stream.New("x")
	e := expr.Empty()
	e.AppendStream(x)
	e.AppendLiteral(" + ")
	e.AppendStream(x)
	assert.Equal(t, "x + x", e.Render())
	assert.Len(t, e.Dependencies(), 1)
}

func TestCloneIsIndependent(t *testing.T) {
	x := stream.New("x")
	orig := expr.Empty()
	orig.AppendStream(x)

	clone := orig.Clone()
	clone.AppendLiteral(" + 1")

	assert.Equal(t, "x", orig.Render())
	assert.Equal(t, "x + 1", clone.Render())
	assert.Len(t, orig.Dependencies(), 1)
	assert.Len(t, clone.Dependencies(), 1)
}

func TestFromAtomsMixedSequence(t *testing.T) {
	x := stream.New("x")
	nested := expr.FromLiteral("1")
	e := expr.FromAtoms("(", x, " + ", nested, ")")
	assert.Equal(t, "(x + (1))", e.Render())
}

func TestElementsRoundTrip(t *testing.T) {
	x := stream.New("x")
	e := expr.Empty()
	e.AppendLiteral("a + ")
	e.AppendStream(x)

	elems := e.Elements()
	if assert.Len(t, elems, 2) {
		assert.Equal(t, expr.LiteralElement, elems[0].Kind)
		assert.Equal(t, "a + ", elems[0].Text)
		assert.Equal(t, expr.RefElement, elems[1].Kind)
		assert.Equal(t, x, elems[1].Stream)
	}
}
