package parser

import (
	"fmt"

	"github.com/ezrec/mipslang/arch"
	"github.com/ezrec/mipslang/expr"
	"github.com/ezrec/mipslang/source"
)

// TokenKind selects the value held by a Token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_REGISTER       = TokenKind(0) // register
	TOKEN_FLOAT_REGISTER = TokenKind(1) // float register
	TOKEN_EXPRESSION     = TokenKind(2) // expression
	TOKEN_FLOAT          = TokenKind(3) // float
)

// Token is a successfully parsed operand.
type Token struct {
	Position source.Span // Input following the match.
	Kind     TokenKind

	Reg     arch.Reg     // TOKEN_REGISTER
	FpReg   arch.FpReg   // TOKEN_FLOAT_REGISTER
	Operand expr.Operand // TOKEN_EXPRESSION
	Float   float64      // TOKEN_FLOAT
}

func (tok Token) String() string {
	var value any
	switch tok.Kind {
	case TOKEN_REGISTER:
		value = tok.Reg
	case TOKEN_FLOAT_REGISTER:
		value = tok.FpReg
	case TOKEN_EXPRESSION:
		value = tok.Operand
	case TOKEN_FLOAT:
		value = tok.Float
	}
	return fmt.Sprintf("%v %v @%v", tok.Kind, value, tok.Position.Position)
}
