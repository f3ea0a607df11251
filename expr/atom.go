package expr

import "github.com/viant/lolaspec/stream"

// atomKind distinguishes the two forms an Expression element can take.
type atomKind int

const (
	literalAtom atomKind = iota
	streamAtom
)

// atom is one element of an Expression's flattened atom sequence: either an
// opaque literal text fragment in the target surface syntax, or a reference
// to another stream.
type atom struct {
	kind   atomKind
	text   string
	stream stream.Stream
}

func literal(text string) atom {
	return atom{kind: literalAtom, text: text}
}

func ref(s stream.Stream) atom {
	return atom{kind: streamAtom, stream: s}
}

// render returns the atom's textual form: the literal text verbatim, or the
// bare stream name for a reference.
func (a atom) render() string {
	if a.kind == streamAtom {
		return a.stream.Name
	}
	return a.text
}
