package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpanNew(t *testing.T) {
	assert := assert.New(t)

	s := New("li $t0, 1")
	assert.Equal(Position{Offset: 0, Line: 1, Column: 1}, s.Position)
	assert.Equal(9, s.Len())
	assert.False(s.Empty())
	assert.True(s.HasPrefix("li"))
	assert.Equal(byte('l'), s.Peek())
	assert.Equal("li", s.Take(2))
}

func TestSpanAdvance(t *testing.T) {
	assert := assert.New(t)

	s := New("ab\ncd\nef")

	tests := []struct {
		name     string
		advance  int
		expected Position
		rest     string
	}{
		{"none", 0, Position{0, 1, 1}, "ab\ncd\nef"},
		{"same line", 2, Position{2, 1, 3}, "\ncd\nef"},
		{"past newline", 3, Position{3, 2, 1}, "cd\nef"},
		{"mid line two", 4, Position{4, 2, 2}, "d\nef"},
		{"two newlines", 7, Position{7, 3, 2}, "f"},
		{"end", 8, Position{8, 3, 3}, ""},
	}

	for _, test := range tests {
		next := s.Advance(test.advance)
		assert.Equal(test.expected, next.Position, test.name)
		assert.Equal(test.rest, next.Fragment, test.name)
	}

	// Advancing in steps gives the same answer as a single advance.
	step := s
	for range 7 {
		step = step.Advance(1)
	}
	assert.Equal(s.Advance(7), step)

	// The original is untouched.
	assert.Equal(Position{0, 1, 1}, s.Position)
}

func TestSpanAdvancePastEnd(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { New("ab").Advance(3) })
}

func TestSpanSplit(t *testing.T) {
	assert := assert.New(t)

	s := New("0x10 + 2")
	rest := s.Advance(4)
	assert.Equal("0x10", s.Split(rest))
	assert.True(s.Before(rest))
	assert.False(rest.Before(s))
	assert.Equal(byte(0), rest.Advance(rest.Len()).Peek())
}

func TestPositionString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("3:7", Position{Offset: 20, Line: 3, Column: 7}.String())
	assert.Equal(`1:1 "x"`, New("x").String())
}
