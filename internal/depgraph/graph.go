// Package depgraph is the dependency graph engine backing spec.Specification.
// It is kept separate from spec so that Specification itself stays a thin
// orchestrator over inputs/outputs/bindings plus this graph.
package depgraph

// Kind distinguishes an input node (an external feed, never bound, never
// pinned) from an output node (has, or once had, a binding).
type Kind int

const (
	Output Kind = iota
	Input
)

type node struct {
	kind   Kind
	pinned bool
	out    map[string]struct{}
}

// Graph is a directed dependency graph over stream names. An edge u->v
// means "the definition of u references v".
type Graph struct {
	nodes map[string]*node
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*node)}
}

// HasNode reports whether name has a node in the graph.
func (g *Graph) HasNode(name string) bool {
	_, ok := g.nodes[name]
	return ok
}

// EnsureInput creates a node for name as an Input if it doesn't already
// exist. If a node exists (for example a bare dependency node from
// EnsureDependency), its kind is set to Input and its other attributes are
// kept; inputs and bound outputs are mutually exclusive (S1), so callers
// must check before calling this for a stream that is already bound.
func (g *Graph) EnsureInput(name string) {
	if n, ok := g.nodes[name]; ok {
		n.kind = Input
		return
	}
	g.nodes[name] = &node{kind: Input, out: make(map[string]struct{})}
}

// EnsureOutput creates a node for name as an Output with the given pinned
// attribute if it doesn't exist yet. If it exists, its pinned attribute is
// overwritten (re-binding's "last writer wins" rule, §9) and its kind is
// forced to Output.
func (g *Graph) EnsureOutput(name string, pinned bool) {
	n, ok := g.nodes[name]
	if !ok {
		g.nodes[name] = &node{kind: Output, pinned: pinned, out: make(map[string]struct{})}
		return
	}
	n.kind = Output
	n.pinned = pinned
}

// EnsureDependency creates a bare node for name if it doesn't exist yet,
// defaulting to Output/unpinned. It is used when SetEdges references a
// stream that has not been declared as an input or bound as an output yet
// (add_expression tolerates forward/unresolved references, §4.4).
func (g *Graph) EnsureDependency(name string) {
	if _, ok := g.nodes[name]; ok {
		return
	}
	g.nodes[name] = &node{kind: Output, out: make(map[string]struct{})}
}

// SetEdges replaces the full outgoing edge set of name with deps, removing
// stale edges and adding new ones (§4.4 add_expression). name must already
// have a node (callers call EnsureOutput/EnsureInput first).
func (g *Graph) SetEdges(name string, deps []string) {
	n := g.nodes[name]
	if n == nil {
		return
	}
	next := make(map[string]struct{}, len(deps))
	for _, d := range deps {
		next[d] = struct{}{}
		g.EnsureDependency(d)
	}
	n.out = next
}

// Edges returns the outgoing edge targets of name in no particular order.
func (g *Graph) Edges(name string) []string {
	n := g.nodes[name]
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.out))
	for d := range n.out {
		out = append(out, d)
	}
	return out
}

// SetPinned sets the pinned attribute of an existing node.
func (g *Graph) SetPinned(name string, pinned bool) {
	if n := g.nodes[name]; n != nil {
		n.pinned = pinned
	}
}

// IsPinned reports whether name's node is pinned. A missing node is
// reported as unpinned.
func (g *Graph) IsPinned(name string) bool {
	n := g.nodes[name]
	return n != nil && n.pinned
}

// IsInput reports whether name's node is an Input.
func (g *Graph) IsInput(name string) bool {
	n := g.nodes[name]
	return n != nil && n.kind == Input
}

// Remove deletes name's node and its outgoing edges. Incoming edges from
// other nodes are left as dangling references: prune() only removes nodes
// that are unreachable from its roots, and every node a surviving node
// points at is itself reachable, so no remaining node can still point at a
// removed one once prune finishes (§4.4 contract (b)).
func (g *Graph) Remove(name string) {
	delete(g.nodes, name)
}

// Reachable returns the set of node names reachable from roots by following
// outgoing edges, roots themselves included.
func (g *Graph) Reachable(roots []string) map[string]bool {
	seen := make(map[string]bool, len(roots))
	queue := append([]string(nil), roots...)
	for _, r := range roots {
		seen[r] = true
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		n := g.nodes[cur]
		if n == nil {
			continue
		}
		for d := range n.out {
			if !seen[d] {
				seen[d] = true
				queue = append(queue, d)
			}
		}
	}
	return seen
}
