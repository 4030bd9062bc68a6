// Package source provides positioned views over assembly source text.
package source

import (
	"fmt"
	"strings"
)

// Position is a location in source text.
type Position struct {
	Offset int // Byte offset from the start of the text.
	Line   int // 1-based line number.
	Column int // 1-based byte column within the line.
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// Span is an immutable view of the text that remains from some position
// onwards. Parsers advance by deriving new Spans; the original is never
// modified.
type Span struct {
	Fragment string // Text from this position to the end of input.
	Position
}

// New returns a Span over the complete text.
func New(text string) Span {
	return Span{
		Fragment: text,
		Position: Position{Offset: 0, Line: 1, Column: 1},
	}
}

// Len returns the number of bytes remaining.
func (s Span) Len() int {
	return len(s.Fragment)
}

// Empty is true if no text remains.
func (s Span) Empty() bool {
	return len(s.Fragment) == 0
}

// HasPrefix is true if the remaining text starts with prefix.
func (s Span) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.Fragment, prefix)
}

// Peek returns the next byte, or 0 if the Span is empty.
func (s Span) Peek() byte {
	if len(s.Fragment) == 0 {
		return 0
	}
	return s.Fragment[0]
}

// Take returns the next n bytes of text.
func (s Span) Take(n int) string {
	return s.Fragment[:n]
}

// Advance returns the Span that follows the next n bytes.
func (s Span) Advance(n int) Span {
	if n > len(s.Fragment) {
		panic(fmt.Sprintf("source: advance %d past end of %d byte span", n, len(s.Fragment)))
	}

	consumed := s.Fragment[:n]
	next := Span{
		Fragment: s.Fragment[n:],
		Position: s.Position,
	}
	next.Offset += n

	lines := strings.Count(consumed, "\n")
	if lines == 0 {
		next.Column += n
		return next
	}

	next.Line += lines
	next.Column = n - strings.LastIndexByte(consumed, '\n')
	return next
}

// Split returns the text between s and the later Span rest.
func (s Span) Split(rest Span) string {
	return s.Fragment[:rest.Offset-s.Offset]
}

// Before is true if s starts earlier in the text than other.
func (s Span) Before(other Span) bool {
	return s.Offset < other.Offset
}

func (s Span) String() string {
	return fmt.Sprintf("%v %q", s.Position, s.Fragment)
}
