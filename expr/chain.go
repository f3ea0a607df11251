package expr

import "github.com/viant/lolaspec/stream"

// Operand is a chain/conditional operand: a literal string, a stream
// reference, or a nested Expression. It mirrors the original prototype's
// Expression_type = Expression | str | LolaStream union — Go has no sum
// type for that, so Operand is a small closed interface with constructors
// instead of exposing the variant directly.
type Operand interface {
	isOperand()
}

type literalOperand string

func (literalOperand) isOperand() {}

type streamOperand stream.Stream

func (streamOperand) isOperand() {}

type exprOperand Expression

func (exprOperand) isOperand() {}

// Lit wraps a literal string as a chain operand.
func Lit(text string) Operand { return literalOperand(text) }

// Ref wraps a stream reference as a chain operand.
func Ref(s stream.Stream) Operand { return streamOperand(s) }

// Sub wraps a nested expression as a chain operand.
func Sub(e Expression) Operand { return exprOperand(e) }

// appendChainOperand applies the chain-specific append rule: a literal
// string operand is parenthesized by hand and skipped if empty; stream and
// nested-expression operands are appended by the ordinary Expression.Append*
// rules (so a nested expression still gets its own parens, a stream does
// not).
func appendChainOperand(e *Expression, op Operand) {
	switch v := op.(type) {
	case literalOperand:
		if v != "" {
			e.AppendLiteral("(" + string(v) + ")")
		}
	case streamOperand:
		e.AppendStream(stream.Stream(v))
	case exprOperand:
		e.AppendExpression(Expression(v))
	}
}

// AppendOperand appends op to e by plain substitution: a literal string is
// appended verbatim, a stream reference is appended bare, and a nested
// expression is parenthesized. This is the rule the prototype's Expression
// class uses when substituting a value into a hand-written template string —
// grouping comes only from parentheses already present in the literal text,
// not from this call. Geometry builders (C5) use it to assemble formulas
// whose parenthesization is dictated by the formula itself rather than by
// Chain's operator-joining rule.
func AppendOperand(e *Expression, op Operand) {
	switch v := op.(type) {
	case literalOperand:
		e.AppendLiteral(string(v))
	case streamOperand:
		e.AppendStream(stream.Stream(v))
	case exprOperand:
		e.AppendExpression(Expression(v))
	}
}

// Chain builds e1 SYMBOL e2 SYMBOL … SYMBOL en from operands, joining with
// " SYMBOL " between consecutive operands (C3).
func Chain(symbol string, operands ...Operand) Expression {
	e := Empty()
	for i, op := range operands {
		appendChainOperand(&e, op)
		if i < len(operands)-1 {
			e.AppendLiteral(" " + symbol + " ")
		}
	}
	return e
}

// And builds operand1 && operand2 && … .
func And(operands ...Operand) Expression { return Chain("&&", operands...) }

// Or builds operand1 || operand2 || … .
func Or(operands ...Operand) Expression { return Chain("||", operands...) }

// Sum builds operand1 + operand2 + … .
func Sum(operands ...Operand) Expression { return Chain("+", operands...) }

// LessThan builds lhs < rhs.
func LessThan(lhs, rhs Operand) Expression { return Chain("<", lhs, rhs) }

// LessEqual builds lhs <= rhs.
func LessEqual(lhs, rhs Operand) Expression { return Chain("<=", lhs, rhs) }

// GreaterThan builds lhs > rhs.
func GreaterThan(lhs, rhs Operand) Expression { return Chain(">", lhs, rhs) }

// GreaterEqual builds lhs >= rhs.
func GreaterEqual(lhs, rhs Operand) Expression { return Chain(">=", lhs, rhs) }

// Equal builds lhs == rhs.
func Equal(lhs, rhs Operand) Expression { return Chain("==", lhs, rhs) }

// NotEqual builds lhs != rhs.
func NotEqual(lhs, rhs Operand) Expression { return Chain("!=", lhs, rhs) }

// Not builds the logical negation !(operand). Unlike Chain, the operand is
// appended through the ordinary Expression.Append* rules even when it is a
// literal string — the prototype's lnot does not parenthesize a bare string
// operand beyond the outer "!( … )" wrapper, and this mirrors that exactly.
func Not(operand Operand) Expression {
	e := Empty()
	e.AppendLiteral("!(")
	switch v := operand.(type) {
	case literalOperand:
		e.AppendLiteral(string(v))
	case streamOperand:
		e.AppendStream(stream.Stream(v))
	case exprOperand:
		e.AppendExpression(Expression(v))
	}
	e.AppendLiteral(")")
	return e
}

// If builds the short-circuit conditional `if cond then thenExpr else
// elseExpr` matching the target language's conditional form.
func If(cond, thenExpr, elseExpr Operand) Expression {
	e := Empty()
	e.AppendLiteral("if ")
	appendChainOperand(&e, cond)
	e.AppendLiteral(" then ")
	appendChainOperand(&e, thenExpr)
	e.AppendLiteral(" else ")
	appendChainOperand(&e, elseExpr)
	return e
}
