package spec

import (
	"errors"
	"fmt"

	"github.com/viant/lolaspec/stream"
)

// Sentinel error kinds (§7). Callers distinguish them with errors.Is; each
// carries the offending stream via errors.As against its detail type.
var (
	ErrInputRebinding     = errors.New("spec: cannot bind an expression to a declared input")
	ErrUnknownStream      = errors.New("spec: stream has no binding")
	ErrUnresolvedReference = errors.New("spec: reference resolves to neither an input nor a binding")
	ErrCyclicDependency   = errors.New("spec: cyclic dependency detected during collapse")
)

// InputRebindingError reports add_expression called on a declared input.
type InputRebindingError struct {
	Stream stream.Stream
}

func (e *InputRebindingError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInputRebinding, e.Stream.Name)
}

func (e *InputRebindingError) Unwrap() error { return ErrInputRebinding }

// UnknownStreamError reports an operation that needed a stream's binding
// where the stream has none; CollapseExpression returns it for any unbound
// stream, a declared input included.
type UnknownStreamError struct {
	Stream stream.Stream
}

func (e *UnknownStreamError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnknownStream, e.Stream.Name)
}

func (e *UnknownStreamError) Unwrap() error { return ErrUnknownStream }

// UnresolvedReferenceError reports collapse_expression reaching a reference
// with no binding and no input declaration.
type UnresolvedReferenceError struct {
	Stream stream.Stream
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("%v: %s", ErrUnresolvedReference, e.Stream.Name)
}

func (e *UnresolvedReferenceError) Unwrap() error { return ErrUnresolvedReference }

// CyclicDependencyError reports collapse_expression re-entering a stream
// already on its own recursion stack. §9's Design Notes leave the choice of
// detecting this at add_expression time or at collapse time as an open
// question; this implementation resolves it at collapse time, as
// recommended (see DESIGN.md).
type CyclicDependencyError struct {
	Stream stream.Stream
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("%v: %s", ErrCyclicDependency, e.Stream.Name)
}

func (e *CyclicDependencyError) Unwrap() error { return ErrCyclicDependency }
