package spec

import (
	"github.com/viant/lolaspec/expr"
	"github.com/viant/lolaspec/stream"
)

// CollapseExpression substitutes into st's defining expression the full
// definitions of all referenced streams that are unpinned and not inputs,
// recursively, so that st's new definition references only inputs and
// pinned streams (§4.4 collapse_expression).
//
// Depth-first tie-break per reference t: an input wins first (emitted as a
// literal, rendered name); then a missing binding fails with
// *UnresolvedReferenceError; then a pinned stream wins (emitted unchanged,
// as a stream reference); otherwise t's own current binding is collapsed
// recursively, wrapped in parentheses, and inlined.
//
// st's pinned attribute and position in Outputs are unchanged; no other
// binding is modified. Re-entering a stream already on the active
// collapse's call stack fails with *CyclicDependencyError (§9).
func (s *Specification) CollapseExpression(st stream.Stream) error {
	if !s.hasBinding(st.Name) {
		return &UnknownStreamError{Stream: st}
	}

	stack := map[string]bool{st.Name: true}
	collapsed, err := s.collapseAtoms(s.bindings[st.Name], stack)
	if err != nil {
		return err
	}

	s.bindings[st.Name] = collapsed
	deps := collapsed.Dependencies()
	names := make([]string, len(deps))
	for i, d := range deps {
		names[i] = d.Name
	}
	s.graph.SetEdges(st.Name, names)
	return nil
}

// collapseAtoms walks cur's atom sequence, inlining references per the
// tie-break rule above. stack tracks streams currently being collapsed on
// this call, for cycle detection.
func (s *Specification) collapseAtoms(cur expr.Expression, stack map[string]bool) (expr.Expression, error) {
	out := expr.Empty()
	for _, el := range cur.Elements() {
		if el.Kind == expr.LiteralElement {
			out.AppendLiteral(el.Text)
			continue
		}

		t := el.Stream
		switch {
		case s.inputs.Has(t):
			out.AppendLiteral(t.Name)
		case !s.hasBinding(t.Name):
			return expr.Expression{}, &UnresolvedReferenceError{Stream: t}
		case s.graph.IsPinned(t.Name):
			out.AppendStream(t)
		default:
			sub, err := s.collapseStream(t.Name, stack)
			if err != nil {
				return expr.Expression{}, err
			}
			out.AppendExpression(sub)
		}
	}
	return out, nil
}

// collapseStream recursively collapses name's current binding without
// storing the result (the recursion is pure — only the top-level
// CollapseExpression call mutates a binding).
func (s *Specification) collapseStream(name string, stack map[string]bool) (expr.Expression, error) {
	if stack[name] {
		return expr.Expression{}, &CyclicDependencyError{Stream: stream.New(name)}
	}
	stack[name] = true
	defer delete(stack, name)

	return s.collapseAtoms(s.bindings[name], stack)
}
