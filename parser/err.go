package parser

import (
	"errors"

	"github.com/ezrec/mipslang/source"
	"github.com/ezrec/mipslang/translate"
)

var f = translate.From

// Kind classifies a parse failure.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_DEFAULT                  = Kind(0) // default
	KIND_INVALID_BINARY_STRING    = Kind(1) // invalid binary string
	KIND_INVALID_HEX_STRING       = Kind(2) // invalid hex string
	KIND_INVALID_REGISTER         = Kind(3) // invalid register
	KIND_UNRECOGNIZED_INSTRUCTION = Kind(4) // unrecognized instruction
	KIND_INVALID_CHARACTER_ESCAPE = Kind(5) // invalid character escape
)

// Grammar is the low level expectation that failed for a KIND_DEFAULT error.
type Grammar int

//go:generate go tool stringer -linecomment -type=Grammar
const (
	GRAMMAR_NONE      = Grammar(0)  // none
	GRAMMAR_TAG       = Grammar(1)  // tag
	GRAMMAR_CHAR      = Grammar(2)  // char
	GRAMMAR_DIGIT     = Grammar(3)  // digit
	GRAMMAR_HEX_DIGIT = Grammar(4)  // hex digit
	GRAMMAR_BIN_DIGIT = Grammar(5)  // binary digit
	GRAMMAR_ALPHA     = Grammar(6)  // alpha
	GRAMMAR_MAP_RES   = Grammar(7)  // map res
	GRAMMAR_VERIFY    = Grammar(8)  // verify
	GRAMMAR_ESCAPED   = Grammar(9)  // escaped
	GRAMMAR_FLOAT     = Grammar(10) // float
	GRAMMAR_EOF       = Grammar(11) // eof
)

var (
	// Parse errors, one per Kind.
	ErrSyntax                  = errors.New(f("syntax error"))
	ErrInvalidBinaryString     = errors.New(f("invalid binary string"))
	ErrInvalidHexString        = errors.New(f("invalid hex string"))
	ErrInvalidRegister         = errors.New(f("invalid register"))
	ErrUnrecognizedInstruction = errors.New(f("unrecognized instruction"))
	ErrInvalidCharacterEscape  = errors.New(f("invalid character escape"))
)

var kindErr = map[Kind]error{
	KIND_DEFAULT:                  ErrSyntax,
	KIND_INVALID_BINARY_STRING:    ErrInvalidBinaryString,
	KIND_INVALID_HEX_STRING:       ErrInvalidHexString,
	KIND_INVALID_REGISTER:         ErrInvalidRegister,
	KIND_UNRECOGNIZED_INSTRUCTION: ErrUnrecognizedInstruction,
	KIND_INVALID_CHARACTER_ESCAPE: ErrInvalidCharacterEscape,
}

// Error is a parse failure at a location in the source.
type Error struct {
	Kind    Kind
	Grammar Grammar     // Failed expectation, for KIND_DEFAULT.
	Span    source.Span // Input at the point of failure.
	Failure bool        // If set, alternatives must not be tried.
}

func (err *Error) Error() string {
	if err.Kind == KIND_DEFAULT {
		return f("%v: expected %v", err.Span.Position, err.Grammar)
	}
	return f("%v: %v", err.Span.Position, err.Kind)
}

// Unwrap returns the sentinel error of the Kind.
func (err *Error) Unwrap() error {
	return kindErr[err.Kind]
}

// WithKind returns a copy of the error reclassified as kind. The low
// level cause is dropped; the location is kept.
func (err *Error) WithKind(kind Kind) *Error {
	changed := *err
	changed.Kind = kind
	changed.Grammar = GRAMMAR_NONE
	return &changed
}

// expected is a recoverable failure to match grammar at s.
func expected(s source.Span, grammar Grammar) error {
	return &Error{Kind: KIND_DEFAULT, Grammar: grammar, Span: s}
}

// failure is a failure at s that ends the parse.
func failure(s source.Span, kind Kind, grammar Grammar) error {
	return &Error{Kind: kind, Grammar: grammar, Span: s, Failure: true}
}

// asError returns err as a parse *Error, if it is one.
func asError(err error) (pe *Error) {
	errors.As(err, &pe)
	return
}

// recoverable is true if another alternative may be tried after err.
func recoverable(err error) bool {
	pe := asError(err)
	return pe != nil && !pe.Failure
}

// reclassify rewrites a parse error as kind, failing at s.
func reclassify(err error, s source.Span, kind Kind) error {
	pe := asError(err)
	if pe == nil {
		return err
	}
	pe = pe.WithKind(kind)
	pe.Span = s
	return pe
}

// moreSpecific picks between the failures of two alternatives. A
// classified failure beats a KIND_DEFAULT one, then the failure that got
// further into the input wins.
func moreSpecific(a, b *Error) *Error {
	switch {
	case a == nil:
		return b
	case a.Kind != KIND_DEFAULT && b.Kind == KIND_DEFAULT:
		return a
	case a.Kind == KIND_DEFAULT && b.Kind != KIND_DEFAULT:
		return b
	case a.Span.Offset > b.Span.Offset:
		return a
	}
	return b
}
