package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mipslang/source"
)

func TestErrorWithKind(t *testing.T) {
	assert := assert.New(t)

	s := source.New("$99").Advance(1)
	orig := &Error{Kind: KIND_DEFAULT, Grammar: GRAMMAR_DIGIT, Span: s, Failure: true}

	changed := orig.WithKind(KIND_INVALID_REGISTER)
	assert.Equal(KIND_INVALID_REGISTER, changed.Kind)
	assert.Equal(GRAMMAR_NONE, changed.Grammar)
	assert.Equal(s, changed.Span)
	assert.True(changed.Failure)

	assert.Equal(KIND_DEFAULT, orig.Kind)
	assert.Equal(GRAMMAR_DIGIT, orig.Grammar)

	assert.True(errors.Is(changed, ErrInvalidRegister))
	assert.True(errors.Is(orig, ErrSyntax))
	assert.Equal("1:2: expected digit", orig.Error())
	assert.Equal("1:2: invalid register", changed.Error())
}

func TestMoreSpecific(t *testing.T) {
	assert := assert.New(t)

	s := source.New("abc")
	near := &Error{Kind: KIND_DEFAULT, Span: s}
	far := &Error{Kind: KIND_DEFAULT, Span: s.Advance(2)}
	kind := &Error{Kind: KIND_INVALID_HEX_STRING, Span: s}

	assert.Equal(near, moreSpecific(nil, near))
	assert.Equal(far, moreSpecific(near, far))
	assert.Equal(far, moreSpecific(far, near))
	assert.Equal(kind, moreSpecific(far, kind))
	assert.Equal(kind, moreSpecific(kind, far))
}

func TestTokenString(t *testing.T) {
	assert := assert.New(t)

	_, tok, err := Register(source.New("$sp"))
	assert.NoError(err)
	assert.Equal("register $29 @1:4", tok.String())
}
