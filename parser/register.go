// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package parser

import (
	"github.com/ezrec/mipslang/arch"
	"github.com/ezrec/mipslang/source"
)

// Register parses a general purpose register, by number ($29) or by
// alias ($sp). Any failure is reported as KIND_INVALID_REGISTER at s.
func Register(s source.Span) (rest source.Span, tok Token, err error) {
	reg, size, ok := arch.MatchReg(s.Fragment)
	if !ok {
		return s, tok, reclassify(expected(s, GRAMMAR_TAG), s, KIND_INVALID_REGISTER)
	}

	rest = s.Advance(size)
	tok = Token{Position: rest, Kind: TOKEN_REGISTER, Reg: reg}
	return
}

// FpRegister parses a floating point register, $f0 through $f31. Any
// failure is reported as KIND_INVALID_REGISTER at s.
func FpRegister(s source.Span) (rest source.Span, tok Token, err error) {
	reg, size, ok := arch.MatchFpReg(s.Fragment)
	if !ok {
		return s, tok, reclassify(expected(s, GRAMMAR_TAG), s, KIND_INVALID_REGISTER)
	}

	rest = s.Advance(size)
	tok = Token{Position: rest, Kind: TOKEN_FLOAT_REGISTER, FpReg: reg}
	return
}

// Complete runs parse over all of text. Unconsumed input is an error at
// the first byte left over.
func Complete[T any](text string, parse func(source.Span) (source.Span, T, error)) (value T, err error) {
	rest, value, err := parse(source.New(text))
	if err != nil {
		return
	}

	if !rest.Empty() {
		var zero T
		return zero, expected(rest, GRAMMAR_EOF)
	}

	return
}

// ParseRegister parses text that must be exactly one general purpose
// register.
func ParseRegister(text string) (reg arch.Reg, err error) {
	tok, err := Complete(text, Register)
	if err != nil {
		return
	}
	return tok.Reg, nil
}

// ParseFpRegister parses text that must be exactly one floating point
// register.
func ParseFpRegister(text string) (reg arch.FpReg, err error) {
	tok, err := Complete(text, FpRegister)
	if err != nil {
		return
	}
	return tok.FpReg, nil
}
