package digest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/lolaspec/digest"
	"github.com/viant/lolaspec/expr"
	"github.com/viant/lolaspec/spec"
	"github.com/viant/lolaspec/stream"
)

func buildSpec(t *testing.T) *spec.Specification {
	t.Helper()
	s := spec.New()
	a := stream.New("a")
	b := stream.New("b")
	s.DeclareInput(a)

	bExpr := expr.Empty()
	bExpr.AppendStream(a)
	bExpr.AppendLiteral(" + 1")
	assert.NoError(t, s.AddExpression(b, bExpr, true))
	return s
}

func TestSpecificationDigestIsDeterministic(t *testing.T) {
	s1 := buildSpec(t)
	s2 := buildSpec(t)

	h1, err := digest.Specification(s1)
	assert.NoError(t, err)
	h2, err := digest.Specification(s2)
	assert.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestSpecificationDigestStableAcrossIdempotentCollapse(t *testing.T) {
	s := buildSpec(t)
	b := stream.New("b")

	before, err := digest.Specification(s)
	assert.NoError(t, err)

	assert.NoError(t, s.CollapseExpression(b))
	after, err := digest.Specification(s)
	assert.NoError(t, err)
	assert.Equal(t, before, after)

	assert.NoError(t, s.CollapseExpression(b))
	again, err := digest.Specification(s)
	assert.NoError(t, err)
	assert.Equal(t, after, again)
}

func TestSpecificationDigestChangesWithContent(t *testing.T) {
	s := buildSpec(t)
	h1, err := digest.Specification(s)
	assert.NoError(t, err)

	c := stream.New("c")
	cExpr := expr.FromLiteral("99")
	assert.NoError(t, s.AddExpression(c, cExpr, true))

	h2, err := digest.Specification(s)
	assert.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}
