// Package serialize implements the textual serializer (C6): the sole
// external interface of lolaspec, producing the line-oriented format
// described in §6.
package serialize

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/viant/lolaspec/spec"
)

// ErrSerializeIO wraps any error returned by the caller-supplied io.Writer.
var ErrSerializeIO = errors.New("serialize: sink write failed")

// Write emits s to w in the format:
//
//	in <stream-name>      one line per input, in insertion order
//	out <stream-name>     one line per output, in insertion order
//	<stream-name> = <expr>  one line per binding, in outputs order
//
// No trailing whitespace; lines are terminated by a single '\n'. Any error
// from w is wrapped in ErrSerializeIO.
func Write(w io.Writer, s *spec.Specification) error {
	buf := bufio.NewWriter(w)

	for _, in := range s.Inputs() {
		if _, err := fmt.Fprintf(buf, "in %s\n", in.Name); err != nil {
			return fmt.Errorf("%w: %v", ErrSerializeIO, err)
		}
	}
	for _, out := range s.Outputs() {
		if _, err := fmt.Fprintf(buf, "out %s\n", out.Name); err != nil {
			return fmt.Errorf("%w: %v", ErrSerializeIO, err)
		}
	}
	for _, out := range s.Outputs() {
		e, ok := s.Binding(out)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(buf, "%s = %s\n", out.Name, e.Render()); err != nil {
			return fmt.Errorf("%w: %v", ErrSerializeIO, err)
		}
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrSerializeIO, err)
	}
	return nil
}

// ToString renders s to its textual form directly, for callers that don't
// need a streaming sink.
func ToString(s *spec.Specification) (string, error) {
	var b strings.Builder
	if err := Write(&b, s); err != nil {
		return "", err
	}
	return b.String(), nil
}
