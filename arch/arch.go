// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package arch

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/mipslang/internal"
)

const (
	NUM_REGISTERS = 32 // General purpose and floating point register count.
)

// Reg is a general purpose register.
type Reg uint32

// NewReg returns the general purpose register idx.
// It panics if idx is not a register index.
func NewReg(idx uint32) Reg {
	if idx >= NUM_REGISTERS {
		panic(fmt.Sprintf("register number %d is too large", idx))
	}
	return Reg(idx)
}

// Index returns the register number.
func (r Reg) Index() uint32 {
	return uint32(r)
}

// String returns the numeric spelling, ie "$29".
func (r Reg) String() string {
	return fmt.Sprintf("$%d", uint32(r))
}

// Alias returns the calling convention spelling, ie "$sp".
func (r Reg) Alias() string {
	return "$" + regAlias[r]
}

// FpReg is a floating point register.
type FpReg uint32

// NewFpReg returns the floating point register idx.
// It panics if idx is not a register index.
func NewFpReg(idx uint32) FpReg {
	if idx >= NUM_REGISTERS {
		panic(fmt.Sprintf("float register number %d is too large", idx))
	}
	return FpReg(idx)
}

// Index returns the register number.
func (r FpReg) Index() uint32 {
	return uint32(r)
}

// String returns the register spelling, ie "$f12".
func (r FpReg) String() string {
	return fmt.Sprintf("$f%d", uint32(r))
}

var regAlias = [NUM_REGISTERS]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// regNumeric yields "$0" through "$31".
func regNumeric(yield func(string, Reg) bool) {
	for n := range uint32(NUM_REGISTERS) {
		reg := NewReg(n)
		if !yield(reg.String(), reg) {
			return
		}
	}
}

// regAliases yields "$zero" through "$ra".
func regAliases(yield func(string, Reg) bool) {
	for n := range uint32(NUM_REGISTERS) {
		reg := NewReg(n)
		if !yield(reg.Alias(), reg) {
			return
		}
	}
}

// RegSpellings yields every spelling of every general purpose register.
func RegSpellings() iter.Seq2[string, Reg] {
	return internal.IterSeq2Concat[string, Reg](regNumeric, regAliases)
}

// FpRegSpellings yields every spelling of every floating point register.
func FpRegSpellings() iter.Seq2[string, FpReg] {
	return func(yield func(string, FpReg) bool) {
		for n := range uint32(NUM_REGISTERS) {
			reg := NewFpReg(n)
			if !yield(reg.String(), reg) {
				return
			}
		}
	}
}

// longestFirst orders spellings so that no spelling is tried after one
// of its own prefixes.
func longestFirst[T any](a, b internal.Pair[string, T]) int {
	if n := len(b.Key) - len(a.Key); n != 0 {
		return n
	}
	return strings.Compare(a.Key, b.Key)
}

var (
	regTable   = internal.CollectPairs(RegSpellings(), longestFirst[Reg])
	fpRegTable = internal.CollectPairs(FpRegSpellings(), longestFirst[FpReg])
)

// IsNameByte is true for bytes that may continue a register spelling or
// a symbol name.
func IsNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '$' || c == '.':
		return true
	}
	return false
}

// match finds the first table entry that is a prefix of text and ends at
// a name boundary.
func match[T any](table []internal.Pair[string, T], text string) (value T, size int, ok bool) {
	for _, entry := range table {
		if !strings.HasPrefix(text, entry.Key) {
			continue
		}
		if len(text) > len(entry.Key) && IsNameByte(text[len(entry.Key)]) {
			continue
		}
		return entry.Value, len(entry.Key), true
	}
	return
}

// MatchReg recognizes a general purpose register spelling at the start
// of text, returning the register and the number of bytes it spans.
func MatchReg(text string) (reg Reg, size int, ok bool) {
	return match(regTable, text)
}

// MatchFpReg recognizes a floating point register spelling at the start
// of text, returning the register and the number of bytes it spans.
func MatchFpReg(text string) (reg FpReg, size int, ok bool) {
	return match(fpRegTable, text)
}

// IsRegisterName is true if name is exactly a register spelling.
func IsRegisterName(name string) bool {
	if _, size, ok := MatchReg(name); ok && size == len(name) {
		return true
	}
	if _, size, ok := MatchFpReg(name); ok && size == len(name) {
		return true
	}
	return false
}
