// Package stream defines the named symbolic reference that every expression
// and specification in lolaspec is built from.
package stream

// Stream is a named symbolic channel in the target monitoring language.
// Two streams are equal iff their names are equal; Stream is a plain value
// type so it can be used directly as a map key or set element.
type Stream struct {
	Name string
}

// New returns a Stream with the given name. The name is not validated
// against the target language's identifier alphabet here; an unsafe name
// will simply produce unparseable serialized output (see serialize.Write).
func New(name string) Stream {
	return Stream{Name: name}
}

// String renders the stream's bare name, the form it takes inside an
// expression.
func (s Stream) String() string {
	return s.Name
}

// Set is an insertion-ordered set of streams: the streams are deduplicated
// by name but the order they were first added in is preserved, which is
// required for Specification.inputs/outputs (§3 S4).
type Set struct {
	order []Stream
	index map[string]int
}

// NewSet returns an empty ordered set.
func NewSet() *Set {
	return &Set{index: make(map[string]int)}
}

// Add appends s to the set unless a stream with the same name is already
// present. Returns true if s was newly added.
func (o *Set) Add(s Stream) bool {
	if _, ok := o.index[s.Name]; ok {
		return false
	}
	o.index[s.Name] = len(o.order)
	o.order = append(o.order, s)
	return true
}

// Remove deletes s from the set by name, shifting later entries down to
// keep the remaining order stable. Returns true if it was present.
func (o *Set) Remove(s Stream) bool {
	idx, ok := o.index[s.Name]
	if !ok {
		return false
	}
	o.order = append(o.order[:idx], o.order[idx+1:]...)
	delete(o.index, s.Name)
	for i := idx; i < len(o.order); i++ {
		o.index[o.order[i].Name] = i
	}
	return true
}

// Has reports whether a stream with s's name is present.
func (o *Set) Has(s Stream) bool {
	_, ok := o.index[s.Name]
	return ok
}

// Slice returns the set's streams in insertion order. The returned slice
// must not be mutated by the caller.
func (o *Set) Slice() []Stream {
	return o.order
}

// Len returns the number of streams currently in the set.
func (o *Set) Len() int {
	return len(o.order)
}
