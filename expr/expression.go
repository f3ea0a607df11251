// Package expr implements the symbolic expression representation (C2),
// its chain/conditional builders (C3), and the embedded-reference template
// parser (C7) that the rest of lolaspec is built on.
package expr

import (
	"strings"

	"github.com/viant/lolaspec/stream"
)

// ElementKind distinguishes the two public forms an Expression's atoms can
// take, mirroring the internal atom representation for callers that need to
// walk an Expression (collapse_expression is the main one).
type ElementKind int

const (
	// LiteralElement is an opaque text fragment in the target surface syntax.
	LiteralElement ElementKind = iota
	// RefElement is a reference to another stream.
	RefElement
)

// Element is the exported view of one atom in an Expression's sequence.
type Element struct {
	Kind   ElementKind
	Text   string
	Stream stream.Stream
}

// Expression is an ordered sequence of atoms (literal fragments or stream
// references) plus the set of streams referenced, directly or through
// nested appended expressions, anywhere in that sequence (its "active
// dependencies", §3).
type Expression struct {
	atoms []atom
	deps  *stream.Set
}

// Empty returns a zero-atom Expression with an empty dependency set.
func Empty() Expression {
	return Expression{deps: stream.NewSet()}
}

func (e *Expression) ensure() {
	if e.deps == nil {
		e.deps = stream.NewSet()
	}
}

// FromAtoms builds an Expression from a mixed sequence of literal strings,
// stream.Stream references, and nested Expressions, each appended by the
// same rules AppendLiteral/AppendStream/AppendExpression use.
func FromAtoms(items ...interface{}) Expression {
	e := Empty()
	for _, item := range items {
		switch v := item.(type) {
		case string:
			e.AppendLiteral(v)
		case stream.Stream:
			e.AppendStream(v)
		case Expression:
			e.AppendExpression(v)
		}
	}
	return e
}

// FromLiteral returns a single-atom Expression wrapping a literal fragment.
func FromLiteral(text string) Expression {
	e := Empty()
	e.AppendLiteral(text)
	return e
}

// FromStream returns a single-atom Expression referencing s.
func FromStream(s stream.Stream) Expression {
	e := Empty()
	e.AppendStream(s)
	return e
}

// AppendLiteral adds a literal text fragment as a single atom. An empty
// fragment is still appended here (callers that want to drop empty
// fragments, such as the template parser, do so themselves); this keeps
// AppendLiteral a direct, unconditional primitive.
func (e *Expression) AppendLiteral(text string) {
	e.ensure()
	e.atoms = append(e.atoms, literal(text))
}

// AppendStream adds a stream reference as a single atom and inserts it into
// the active-dependency set.
func (e *Expression) AppendStream(s stream.Stream) {
	e.ensure()
	e.atoms = append(e.atoms, ref(s))
	e.deps.Add(s)
}

// AppendExpression inserts a nested expression wrapped in parenthesis atoms
// and unions its dependencies into the parent's (§3).
func (e *Expression) AppendExpression(nested Expression) {
	e.ensure()
	e.atoms = append(e.atoms, literal("("))
	e.atoms = append(e.atoms, nested.atoms...)
	e.atoms = append(e.atoms, literal(")"))
	for _, d := range nested.Dependencies() {
		e.deps.Add(d)
	}
}

// AppendInline splices nested's atoms directly into e with no added
// parenthesization, unioning its dependencies. Use this where the literal
// text of a formula already supplies whatever grouping it needs — e.g. a
// shared subexpression spliced into two places in a larger formula, the way
// the target-language template strings in geometry (C5) are composed — as
// opposed to AppendExpression, which always adds a fresh pair of parens
// around the nested expression.
func (e *Expression) AppendInline(nested Expression) {
	e.ensure()
	e.atoms = append(e.atoms, nested.atoms...)
	for _, d := range nested.Dependencies() {
		e.deps.Add(d)
	}
}

// Clone returns a structurally independent copy: an independent atom
// sequence and an independent copy of the dependency set.
func (e Expression) Clone() Expression {
	out := Empty()
	out.atoms = append([]atom(nil), e.atoms...)
	for _, d := range e.Dependencies() {
		out.deps.Add(d)
	}
	return out
}

// Dependencies returns the active-dependency set in first-seen order.
func (e Expression) Dependencies() []stream.Stream {
	if e.deps == nil {
		return nil
	}
	return e.deps.Slice()
}

// DependsOn reports whether s is an active dependency of e.
func (e Expression) DependsOn(s stream.Stream) bool {
	if e.deps == nil {
		return false
	}
	return e.deps.Has(s)
}

// Render concatenates the atom sequence, rendering stream atoms as their
// bare names, yielding the flattened textual form used by serialize.Write.
func (e Expression) Render() string {
	var b strings.Builder
	for _, a := range e.atoms {
		b.WriteString(a.render())
	}
	return b.String()
}

// Elements returns a copy of the atom sequence in its public form, used by
// spec.CollapseExpression to walk an expression's structure.
func (e Expression) Elements() []Element {
	out := make([]Element, len(e.atoms))
	for i, a := range e.atoms {
		if a.kind == streamAtom {
			out[i] = Element{Kind: RefElement, Stream: a.stream}
		} else {
			out[i] = Element{Kind: LiteralElement, Text: a.text}
		}
	}
	return out
}

// Len reports the number of atoms in the expression.
func (e Expression) Len() int {
	return len(e.atoms)
}
