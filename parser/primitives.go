// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package parser

import (
	"strconv"

	"github.com/ezrec/mipslang/source"
)

// radix numeral forms
type radix struct {
	prefixes []string
	digit    func(byte) bool
	base     int
	grammar  Grammar // Missing digits.
	kind     Kind    // Conversion failure.
}

var (
	binaryRadix = radix{
		prefixes: []string{"0b", "0B"},
		digit:    isBinDigit,
		base:     2,
		grammar:  GRAMMAR_BIN_DIGIT,
		kind:     KIND_INVALID_BINARY_STRING,
	}
	hexRadix = radix{
		prefixes: []string{"0x", "0X"},
		digit:    isHexDigit,
		base:     16,
		grammar:  GRAMMAR_HEX_DIGIT,
		kind:     KIND_INVALID_HEX_STRING,
	}
)

// numeral parses a prefixed numeral. Each digit may be followed by any
// number of '_' separators, which are dropped before conversion.
func (rdx radix) numeral(s source.Span) (rest source.Span, value uint32, err error) {
	body, err := tag(s, rdx.prefixes...)
	if err != nil {
		return s, 0, err
	}

	var digits []byte
	n := 0
	for n < body.Len() && rdx.digit(body.Fragment[n]) {
		digits = append(digits, body.Fragment[n])
		n++
		for n < body.Len() && body.Fragment[n] == '_' {
			n++
		}
	}

	if len(digits) == 0 {
		return s, 0, failure(body, KIND_DEFAULT, rdx.grammar)
	}

	v64, perr := strconv.ParseUint(string(digits), rdx.base, 32)
	if perr != nil {
		return s, 0, failure(s, rdx.kind, GRAMMAR_NONE)
	}

	return body.Advance(n), uint32(v64), nil
}

// Binary parses a 0b prefixed binary numeral, ie 0b1010_0101.
func Binary(s source.Span) (rest source.Span, value uint32, err error) {
	return binaryRadix.numeral(s)
}

// Hexadecimal parses a 0x prefixed hexadecimal numeral, ie 0xdead_beef.
func Hexadecimal(s source.Span) (rest source.Span, value uint32, err error) {
	return hexRadix.numeral(s)
}

// Decimal parses an unprefixed decimal numeral.
func Decimal(s source.Span) (rest source.Span, value uint32, err error) {
	digits, rest := takeWhile(s, isDigit)
	if len(digits) == 0 {
		return s, 0, expected(s, GRAMMAR_DIGIT)
	}

	v64, perr := strconv.ParseUint(digits, 10, 32)
	if perr != nil {
		return s, 0, failure(s, KIND_DEFAULT, GRAMMAR_MAP_RES)
	}

	return rest, uint32(v64), nil
}

// charValue is the byte of a character literal as a number.
func charValue(s source.Span) (rest source.Span, value uint32, err error) {
	rest, c, err := Char(s)
	if err != nil {
		return s, 0, err
	}
	return rest, uint32(c), nil
}

// Unsigned parses any unsigned literal: hexadecimal, binary, a character
// literal or decimal.
func Unsigned(s source.Span) (rest source.Span, value uint32, err error) {
	return alt[uint32](s, Hexadecimal, Binary, charValue, Decimal)
}

// Int parses a signed integer literal: any run of '+' and '-' signs
// followed by an unsigned literal. The result wraps to 32 bits.
func Int(s source.Span) (rest source.Span, value int32, err error) {
	negative := false
	rest = s
	for !rest.Empty() && (rest.Peek() == '-' || rest.Peek() == '+') {
		if rest.Peek() == '-' {
			negative = !negative
		}
		rest = rest.Advance(1)
	}

	rest, u32, err := Unsigned(rest)
	if err != nil {
		return s, 0, err
	}

	if negative {
		u32 = -u32
	}

	return rest, int32(u32), nil
}

// floatText recognizes a decimal floating point literal: an optional
// sign, digits with an optional fraction, and an optional exponent.
func floatText(s source.Span) (text string, rest source.Span, err error) {
	rest = s
	if c := rest.Peek(); c == '+' || c == '-' {
		rest = rest.Advance(1)
	}

	whole, rest := takeWhile(rest, isDigit)
	var fraction string
	if rest.Peek() == '.' {
		fraction, rest = takeWhile(rest.Advance(1), isDigit)
	}
	if len(whole) == 0 && len(fraction) == 0 {
		return "", s, expected(s, GRAMMAR_FLOAT)
	}

	if c := rest.Peek(); c == 'e' || c == 'E' {
		exp := rest.Advance(1)
		if c := exp.Peek(); c == '+' || c == '-' {
			exp = exp.Advance(1)
		}
		digits, after := takeWhile(exp, isDigit)
		if len(digits) > 0 {
			rest = after
		}
	}

	return s.Split(rest), rest, nil
}

func parseFloat(s source.Span, bits int) (rest source.Span, value float64, err error) {
	text, rest, err := floatText(s)
	if err != nil {
		return s, 0, err
	}

	value, perr := strconv.ParseFloat(text, bits)
	if perr != nil {
		return s, 0, failure(s, KIND_DEFAULT, GRAMMAR_MAP_RES)
	}

	return rest, value, nil
}

// Float parses a single precision floating point literal, ie -2E-10.
func Float(s source.Span) (rest source.Span, value float32, err error) {
	rest, v64, err := parseFloat(s, 32)
	return rest, float32(v64), err
}

// Double parses a double precision floating point literal.
func Double(s source.Span) (rest source.Span, value float64, err error) {
	return parseFloat(s, 64)
}

// escape decodes the escape sequence following a backslash, returning the
// byte and the length of the sequence.
func escape(text string) (c byte, size int, ok bool) {
	if len(text) == 0 {
		return
	}

	switch text[0] {
	case '\\', '"', '\'':
		return text[0], 1, true
	case 'n':
		return '\n', 1, true
	case 'r':
		return '\r', 1, true
	case 't':
		return '\t', 1, true
	case '0':
		return 0, 1, true
	case 'x':
		n := 1
		for n < len(text) && n < 3 && isHexDigit(text[n]) {
			n++
		}
		if n == 1 {
			return
		}
		v, err := strconv.ParseUint(text[1:n], 16, 8)
		if err != nil {
			return
		}
		return byte(v), n, true
	}

	return
}

// escaped decodes a literal body up to the closing delim. The opening
// delimiter has already been consumed. A raw newline or the end of input
// before the closing delimiter ends the parse, as does a bad escape.
func escaped(s source.Span, delim byte) (rest source.Span, decoded []byte, rawASCII bool, err error) {
	rawASCII = true
	text := s.Fragment
	n := 0
	for n < len(text) {
		c := text[n]
		switch {
		case c == delim:
			if n == 0 {
				return s, nil, rawASCII, failure(s, KIND_DEFAULT, GRAMMAR_ESCAPED)
			}
			return s.Advance(n + 1), decoded, rawASCII, nil
		case c == '\n':
			return s, nil, rawASCII, failure(s.Advance(n), KIND_DEFAULT, GRAMMAR_CHAR)
		case c == '\\':
			value, size, ok := escape(text[n+1:])
			if !ok {
				return s, nil, rawASCII, failure(s.Advance(n), KIND_INVALID_CHARACTER_ESCAPE, GRAMMAR_NONE)
			}
			decoded = append(decoded, value)
			n += 1 + size
		default:
			if c >= 0x80 {
				rawASCII = false
			}
			decoded = append(decoded, c)
			n++
		}
	}

	return s, nil, rawASCII, failure(s.Advance(n), KIND_DEFAULT, GRAMMAR_CHAR)
}

// Char parses a character literal, ie 'a' or '\n', into its byte.
func Char(s source.Span) (rest source.Span, value byte, err error) {
	body, err := char(s, '\'')
	if err != nil {
		return s, 0, err
	}

	rest, decoded, rawASCII, err := escaped(body, '\'')
	if err != nil {
		return s, 0, err
	}

	if !rawASCII || len(decoded) != 1 {
		return s, 0, expected(s, GRAMMAR_VERIFY)
	}

	return rest, decoded[0], nil
}

// String parses a string literal into its bytes. The result is always
// NUL terminated.
func String(s source.Span) (rest source.Span, value []byte, err error) {
	if s.HasPrefix(`""`) {
		return s.Advance(2), []byte{0}, nil
	}

	body, err := char(s, '"')
	if err != nil {
		return s, nil, err
	}

	rest, decoded, _, err := escaped(body, '"')
	if err != nil {
		return s, nil, err
	}

	for _, c := range decoded {
		if c >= 0x80 {
			return s, nil, expected(s, GRAMMAR_VERIFY)
		}
	}

	return rest, append(decoded, 0), nil
}
