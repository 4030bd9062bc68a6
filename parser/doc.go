// Package parser recognizes MIPS instruction operands: registers,
// literals and operand expressions.
//
// Every parser takes a source.Span and returns the Span that follows the
// match along with the parsed value. On error the input Span is returned
// unchanged and the error is an *Error that locates the failure. An
// *Error with Failure set must not be recovered from by trying another
// alternative; any other *Error means 'no match here'.
package parser
