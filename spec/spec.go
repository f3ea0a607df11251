// Package spec implements the Specification aggregate (C4): the owner of a
// generator run's inputs, outputs, bindings and dependency graph, and the
// collapse/prune transformations that operate on them.
package spec

import (
	"github.com/viant/lolaspec/expr"
	"github.com/viant/lolaspec/internal/depgraph"
	"github.com/viant/lolaspec/stream"
)

// Specification owns the input set, the insertion-ordered output sequence,
// the stream→expression bindings covering exactly the outputs, and the
// dependency graph kept consistent with every mutation (§3).
type Specification struct {
	inputs   *stream.Set
	outputs  *stream.Set
	bindings map[string]expr.Expression
	graph    *depgraph.Graph
}

// New returns an empty Specification.
func New() *Specification {
	return &Specification{
		inputs:   stream.NewSet(),
		outputs:  stream.NewSet(),
		bindings: make(map[string]expr.Expression),
		graph:    depgraph.New(),
	}
}

// DeclareInput appends s to the input set unless already present, and
// ensures a graph node exists for it marked as an input. Inputs are
// append-only; this never fails.
func (s *Specification) DeclareInput(st stream.Stream) {
	s.inputs.Add(st)
	s.graph.EnsureInput(st.Name)
}

// Inputs returns the declared inputs in declaration order.
func (s *Specification) Inputs() []stream.Stream {
	return s.inputs.Slice()
}

// Outputs returns the bound outputs in insertion order (the serialization
// order, §6).
func (s *Specification) Outputs() []stream.Stream {
	return s.outputs.Slice()
}

// IsInput reports whether st has been declared as an input.
func (s *Specification) IsInput(st stream.Stream) bool {
	return s.inputs.Has(st)
}

// IsOutput reports whether st currently has a binding.
func (s *Specification) IsOutput(st stream.Stream) bool {
	return s.outputs.Has(st)
}

// IsPinned reports st's keep-on-prune attribute. A stream with no node
// (never declared) is reported unpinned.
func (s *Specification) IsPinned(st stream.Stream) bool {
	return s.graph.IsPinned(st.Name)
}

// Binding returns st's current defining expression and whether one exists.
func (s *Specification) Binding(st stream.Stream) (expr.Expression, bool) {
	e, ok := s.bindings[st.Name]
	return e, ok
}

func (s *Specification) hasBinding(name string) bool {
	_, ok := s.bindings[name]
	return ok
}

// AddExpression binds st to e (§4.4 add_expression).
//
//   - Fails with *InputRebindingError if st is a declared input.
//   - Appends st to outputs if this is its first binding.
//   - Sets/overwrites st's pinned attribute to pinned — on re-binding, the
//     new value wins (§9).
//   - Replaces any prior binding and st's outgoing edges to exactly the
//     active dependencies of e.
//
// Referenced dependencies need not themselves be declared yet; unresolved
// references are only detected by CollapseExpression.
func (s *Specification) AddExpression(st stream.Stream, e expr.Expression, pinned bool) error {
	if s.inputs.Has(st) {
		return &InputRebindingError{Stream: st}
	}

	s.outputs.Add(st)
	s.graph.EnsureOutput(st.Name, pinned)
	s.bindings[st.Name] = e

	deps := e.Dependencies()
	names := make([]string, len(deps))
	for i, d := range deps {
		names[i] = d.Name
	}
	s.graph.SetEdges(st.Name, names)
	return nil
}
