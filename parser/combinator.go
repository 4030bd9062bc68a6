package parser

import (
	"strings"

	"github.com/ezrec/mipslang/source"
)

// parseFunc is the shape of every parser: on success the remaining input
// and a value, on failure an error and the untouched input.
type parseFunc[T any] func(s source.Span) (rest source.Span, value T, err error)

// alt returns the result of the first parser to succeed. A failure that
// is not recoverable stops the search.
func alt[T any](s source.Span, parsers ...parseFunc[T]) (rest source.Span, value T, err error) {
	var best *Error
	for _, parse := range parsers {
		rest, value, err = parse(s)
		if err == nil {
			return
		}
		if !recoverable(err) {
			var zero T
			return s, zero, err
		}
		best = moreSpecific(best, asError(err))
	}

	var zero T
	if best == nil {
		return s, zero, expected(s, GRAMMAR_NONE)
	}
	return s, zero, best
}

// isSpace matches the blanks allowed around operands.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isBinDigit(c byte) bool {
	return c == '0' || c == '1'
}

// space0 skips zero or more blanks.
func space0(s source.Span) source.Span {
	_, rest := takeWhile(s, isSpace)
	return rest
}

// takeWhile splits off the longest prefix of s made of bytes matching pred.
func takeWhile(s source.Span, pred func(byte) bool) (matched string, rest source.Span) {
	n := 0
	for n < s.Len() && pred(s.Fragment[n]) {
		n++
	}
	return s.Take(n), s.Advance(n)
}

// char matches the single byte c.
func char(s source.Span, c byte) (rest source.Span, err error) {
	if s.Empty() || s.Fragment[0] != c {
		return s, expected(s, GRAMMAR_CHAR)
	}
	return s.Advance(1), nil
}

// tag matches the first of tags that prefixes s.
func tag(s source.Span, tags ...string) (rest source.Span, err error) {
	for _, t := range tags {
		if strings.HasPrefix(s.Fragment, t) {
			return s.Advance(len(t)), nil
		}
	}
	return s, expected(s, GRAMMAR_TAG)
}
