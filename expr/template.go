package expr

import "github.com/viant/lolaspec/stream"

// The template parser recognizes two interchangeable delimiter pairs for a
// stream-reference token, matching the two pairs the original prototype
// mixed across its call sites (›name‹ and »name«). Neither pair is
// semantically distinct; a caller may use either, even within the same
// template.
const (
	pairAOpen  = '›'
	pairAClose = '‹'
	pairBOpen  = '»'
	pairBClose = '«'
)

// FromTemplate parses a textual template containing zero or more delimited
// stream-reference tokens against a name→stream lookup table (C7). Text
// between delimiters is preserved verbatim as literal fragments; empty
// fragments are dropped. Every delimited token must resolve in table or
// parsing fails with an *UnknownReferenceError. A delimiter encountered with
// a nil table fails with ErrMissingTable. Unbalanced delimiters fail with a
// *MalformedTemplateError.
func FromTemplate(template string, table map[string]stream.Stream) (Expression, error) {
	e := Empty()
	runes := []rune(template)
	var literalBuf []rune

	flush := func() {
		if len(literalBuf) > 0 {
			e.AppendLiteral(string(literalBuf))
			literalBuf = literalBuf[:0]
		}
	}

	for i := 0; i < len(runes); {
		r := runes[i]
		switch r {
		case pairAOpen, pairBOpen:
			closeRune := pairAClose
			if r == pairBOpen {
				closeRune = pairBClose
			}
			start := i + 1
			j := start
			for j < len(runes) && runes[j] != closeRune {
				j++
			}
			if j >= len(runes) {
				return Expression{}, &MalformedTemplateError{Template: template}
			}
			key := string(runes[start:j])
			if table == nil {
				return Expression{}, ErrMissingTable
			}
			s, ok := table[key]
			if !ok {
				return Expression{}, &UnknownReferenceError{Name: key}
			}
			flush()
			e.AppendStream(s)
			i = j + 1
		case pairAClose, pairBClose:
			return Expression{}, &MalformedTemplateError{Template: template}
		default:
			literalBuf = append(literalBuf, r)
			i++
		}
	}
	flush()
	return e, nil
}
