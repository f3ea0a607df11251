package expr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/lolaspec/expr"
	"github.com/viant/lolaspec/stream"
)

func TestFromTemplatePairA(t *testing.T) {
	x := stream.New("x")
	angle := stream.New("angle")
	table := map[string]stream.Stream{"x": x, "angle": angle}

	e, err := expr.FromTemplate("(›x‹) * cos(›angle‹)", table)
	assert.NoError(t, err)
	assert.Equal(t, "(x) * cos(angle)", e.Render())
	assert.ElementsMatch(t, []stream.Stream{x, angle}, e.Dependencies())
}

func TestFromTemplatePairB(t *testing.T) {
	px := stream.New("PosX")
	table := map[string]stream.Stream{"PosX": px}

	e, err := expr.FromTemplate("(»PosX«)-(»Ax«)", map[string]stream.Stream{"PosX": px, "Ax": stream.New("Ax")})
	assert.NoError(t, err)
	assert.Equal(t, "(PosX)-(Ax)", e.Render())
	_ = table
}

func TestFromTemplateMixedPairs(t *testing.T) {
	a := stream.New("a")
	b := stream.New("b")
	table := map[string]stream.Stream{"a": a, "b": b}
	e, err := expr.FromTemplate("›a‹ + »b«", table)
	assert.NoError(t, err)
	assert.Equal(t, "a + b", e.Render())
}

func TestFromTemplateUnknownReference(t *testing.T) {
	_, err := expr.FromTemplate("›missing‹", map[string]stream.Stream{})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, expr.ErrUnknownReference))
	var unknown *expr.UnknownReferenceError
	assert.True(t, errors.As(err, &unknown))
	assert.Equal(t, "missing", unknown.Name)
}

func TestFromTemplateMissingTable(t *testing.T) {
	_, err := expr.FromTemplate("›x‹", nil)
	assert.True(t, errors.Is(err, expr.ErrMissingTable))
}

func TestFromTemplateMalformedUnterminated(t *testing.T) {
	_, err := expr.FromTemplate("›x", map[string]stream.Stream{"x": stream.New("x")})
	assert.True(t, errors.Is(err, expr.ErrMalformedTemplate))
}

func TestFromTemplateMalformedStrayClose(t *testing.T) {
	_, err := expr.FromTemplate("x‹", nil)
	assert.True(t, errors.Is(err, expr.ErrMalformedTemplate))
}

func TestFromTemplateNoDelimitersNoTableNeeded(t *testing.T) {
	e, err := expr.FromTemplate("1 + 2", nil)
	assert.NoError(t, err)
	assert.Equal(t, "1 + 2", e.Render())
}

func TestFromTemplateEmptyFragmentsDropped(t *testing.T) {
	x := stream.New("x")
	e, err := expr.FromTemplate("›x‹›x‹", map[string]stream.Stream{"x": x})
	assert.NoError(t, err)
	assert.Equal(t, "xx", e.Render())
	assert.Len(t, e.Elements(), 2)
}
