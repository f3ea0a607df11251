package spec

import "github.com/viant/lolaspec/stream"

// Prune removes every bound output stream not transitively needed by any
// pinned output or input, following outgoing dependency edges (§4.4 prune).
//
// After Prune:
//   - every remaining bound stream is reachable from some pinned stream or
//     input;
//   - no pinned stream and no input is ever removed;
//   - the relative order of surviving outputs is preserved (S4/P3).
func (s *Specification) Prune() {
	roots := make([]string, 0, s.outputs.Len()+s.inputs.Len())
	for _, o := range s.outputs.Slice() {
		if s.graph.IsPinned(o.Name) {
			roots = append(roots, o.Name)
		}
	}
	for _, in := range s.inputs.Slice() {
		roots = append(roots, in.Name)
	}

	reach := s.graph.Reachable(roots)

	// Snapshot names before mutating outputs mid-iteration.
	current := s.outputs.Slice()
	survivors := make([]string, len(current))
	for i, o := range current {
		survivors[i] = o.Name
	}

	for _, name := range survivors {
		if reach[name] {
			continue
		}
		s.removeOutput(name)
	}
}

// removeOutput removes name's node, binding, and outputs entry atomically
// with respect to external observation (S5).
func (s *Specification) removeOutput(name string) {
	delete(s.bindings, name)
	s.graph.Remove(name)
	s.outputs.Remove(stream.New(name))
}
