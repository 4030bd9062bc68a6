// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package parser

import (
	"strings"

	"github.com/ezrec/mipslang/expr"
	"github.com/ezrec/mipslang/source"
)

func numeral(s source.Span) (rest source.Span, op expr.Operand, err error) {
	rest, value, err := Unsigned(s)
	if err != nil {
		return s, nil, err
	}
	return rest, expr.Num(value), nil
}

func variable(s source.Span) (rest source.Span, op expr.Operand, err error) {
	rest, name, err := Ident(s)
	if err != nil {
		return s, nil, err
	}
	return rest, expr.Var(name), nil
}

func parenthesized(s source.Span) (rest source.Span, op expr.Operand, err error) {
	rest, err = char(s, '(')
	if err != nil {
		return s, nil, err
	}

	rest, op, err = Expr(rest)
	if err != nil {
		return s, nil, err
	}

	rest, err = char(rest, ')')
	if err != nil {
		return s, nil, err
	}

	return rest, op, nil
}

// AtomicExpr parses a numeral, a symbol name or a parenthesized
// expression, with optional blanks on either side.
func AtomicExpr(s source.Span) (rest source.Span, op expr.Operand, err error) {
	rest, op, err = alt[expr.Operand](space0(s), numeral, variable, parenthesized)
	if err != nil {
		return s, nil, err
	}
	return space0(rest), op, nil
}

func unary(s source.Span) (rest source.Span, op expr.Operand, err error) {
	mon, ok := expr.ParseMonOp(s.Peek())
	if !ok {
		return s, nil, expected(s, GRAMMAR_CHAR)
	}

	rest, x, err := AtomicExpr(s.Advance(1))
	if err != nil {
		return s, nil, err
	}

	return rest, expr.Apply(mon, x), nil
}

// UnaryExpr parses an atomic expression with an optional leading '+',
// '-' or '~'.
func UnaryExpr(s source.Span) (rest source.Span, op expr.Operand, err error) {
	rest, op, err = alt[expr.Operand](space0(s), unary, AtomicExpr)
	if err != nil {
		return s, nil, err
	}
	return
}

// fold parses operand, then zero or more of the operators in ops each
// followed by another operand, combining left to right. An operator whose
// right hand side does not parse is left unconsumed.
func fold(s source.Span, operand parseFunc[expr.Operand], ops string) (rest source.Span, op expr.Operand, err error) {
	rest, op, err = operand(s)
	if err != nil {
		return s, nil, err
	}

	for !rest.Empty() && strings.IndexByte(ops, rest.Peek()) >= 0 {
		bin, _ := expr.ParseBinOp(rest.Peek())

		after, rhs, err := operand(rest.Advance(1))
		if err != nil {
			if recoverable(err) {
				break
			}
			return s, nil, err
		}

		op = expr.Combine(op, bin, rhs)
		rest = after
	}

	return rest, op, nil
}

// MulExpr parses a chain of '*' and '/' operations.
func MulExpr(s source.Span) (rest source.Span, op expr.Operand, err error) {
	return fold(s, UnaryExpr, "*/")
}

// AddExpr parses a chain of '+' and '-' operations.
func AddExpr(s source.Span) (rest source.Span, op expr.Operand, err error) {
	return fold(s, MulExpr, "+-")
}

// BitAndExpr parses a chain of '&' operations.
func BitAndExpr(s source.Span) (rest source.Span, op expr.Operand, err error) {
	return fold(s, AddExpr, "&")
}

// BitOrExpr parses a chain of '|' operations.
func BitOrExpr(s source.Span) (rest source.Span, op expr.Operand, err error) {
	return fold(s, BitAndExpr, "|")
}

// Expr parses a complete operand expression.
func Expr(s source.Span) (rest source.Span, op expr.Operand, err error) {
	return BitOrExpr(s)
}

// Expression parses an operand expression into a Token.
func Expression(s source.Span) (rest source.Span, tok Token, err error) {
	rest, op, err := Expr(s)
	if err != nil {
		return s, tok, err
	}

	tok = Token{Position: rest, Kind: TOKEN_EXPRESSION, Operand: op}
	return
}

// FloatLiteral parses a double precision literal into a Token.
func FloatLiteral(s source.Span) (rest source.Span, tok Token, err error) {
	rest, value, err := Double(s)
	if err != nil {
		return s, tok, err
	}

	tok = Token{Position: rest, Kind: TOKEN_FLOAT, Float: value}
	return
}

// ParseExpression parses text that must be exactly one operand
// expression.
func ParseExpression(text string) (op expr.Operand, err error) {
	return Complete(text, Expr)
}

// Evaluate parses text as an operand expression and evaluates it,
// resolving symbol names with r.
func Evaluate(text string, r expr.Resolver) (value expr.Value, err error) {
	op, err := ParseExpression(text)
	if err != nil {
		return
	}
	return expr.EvalWith(op, r)
}
