package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mipslang/arch"
	"github.com/ezrec/mipslang/source"
)

func TestRegisterSpellings(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for name, reg := range arch.RegSpellings() {
		rest, tok, err := Register(source.New(name))
		if !assert.NoError(err, name) {
			continue
		}
		assert.Equal(TOKEN_REGISTER, tok.Kind, name)
		assert.Equal(reg, tok.Reg, name)
		assert.True(rest.Empty(), name)
		assert.Equal(len(name), tok.Position.Offset, name)
		count++
	}
	assert.Equal(64, count)

	count = 0
	for name, reg := range arch.FpRegSpellings() {
		rest, tok, err := FpRegister(source.New(name))
		if !assert.NoError(err, name) {
			continue
		}
		assert.Equal(TOKEN_FLOAT_REGISTER, tok.Kind, name)
		assert.Equal(reg, tok.FpReg, name)
		assert.True(rest.Empty(), name)
		count++
	}
	assert.Equal(32, count)
}

func TestRegisterPrefix(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		text  string
		index uint32
		rest  string
	}{
		{"$1,$2", 1, ",$2"},
		{"$10", 10, ""},
		{"$t0)", 8, ")"},
		{"$31 ", 31, " "},
		{"$ra", 31, ""},
	}

	for _, test := range tests {
		rest, tok, err := Register(source.New(test.text))
		if !assert.NoError(err, test.text) {
			continue
		}
		assert.Equal(test.index, tok.Reg.Index(), test.text)
		assert.Equal(test.rest, rest.Fragment, test.text)
	}
}

func TestRegisterInvalid(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{"$32", "$f0", "$spx", "sp", "", "$", "$t10"} {
		rest, _, err := Register(source.New(text))
		perr := parseError(t, err)
		assert.Equal(KIND_INVALID_REGISTER, perr.Kind, text)
		assert.Equal(0, perr.Span.Offset, text)
		assert.Equal(text, rest.Fragment, text)
		assert.True(errors.Is(err, ErrInvalidRegister), text)
	}

	for _, text := range []string{"$f32", "$1", "$f", "f1", "$f1a"} {
		_, _, err := FpRegister(source.New(text))
		perr := parseError(t, err)
		assert.Equal(KIND_INVALID_REGISTER, perr.Kind, text)
		assert.Equal(0, perr.Span.Offset, text)
	}
}

func TestRegisterOffset(t *testing.T) {
	assert := assert.New(t)

	s := source.New("add $2, $99").Advance(8)
	_, _, err := Register(s)
	perr := parseError(t, err)
	assert.Equal(8, perr.Span.Offset)
	assert.Equal(9, perr.Span.Column)
	assert.Equal("1:9: invalid register", perr.Error())
}

func TestParseRegister(t *testing.T) {
	assert := assert.New(t)

	for n := range uint32(arch.NUM_REGISTERS) {
		reg := arch.NewReg(n)

		parsed, err := ParseRegister(reg.String())
		assert.NoError(err)
		assert.Equal(reg, parsed)

		parsed, err = ParseRegister(reg.Alias())
		assert.NoError(err)
		assert.Equal(reg, parsed)

		fp := arch.NewFpReg(n)
		fparsed, err := ParseFpRegister(fp.String())
		assert.NoError(err)
		assert.Equal(fp, fparsed)
	}

	_, err := ParseRegister("$sp x")
	perr := parseError(t, err)
	assert.Equal(GRAMMAR_EOF, perr.Grammar)
	assert.Equal(3, perr.Span.Offset)
}
