package parser

import (
	"github.com/ezrec/mipslang/arch"
	"github.com/ezrec/mipslang/source"
)

func isNameStart(c byte) bool {
	return arch.IsNameByte(c) && !isDigit(c)
}

// Ident parses a symbol name: a letter, '_', '.' or '$' followed by any
// name bytes. Register spellings are not symbol names.
func Ident(s source.Span) (rest source.Span, name string, err error) {
	if s.Empty() || !isNameStart(s.Peek()) {
		return s, "", expected(s, GRAMMAR_ALPHA)
	}

	name, rest = takeWhile(s, arch.IsNameByte)
	if arch.IsRegisterName(name) {
		return s, "", expected(s, GRAMMAR_VERIFY)
	}

	return rest, name, nil
}
