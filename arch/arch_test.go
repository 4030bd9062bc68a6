package arch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReg(t *testing.T) {
	assert := assert.New(t)

	for n := range uint32(NUM_REGISTERS) {
		assert.Equal(n, NewReg(n).Index())
		assert.Equal(n, NewFpReg(n).Index())
	}

	assert.Panics(func() { NewReg(32) })
	assert.Panics(func() { NewFpReg(32) })
}

func TestRegSpelling(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("$0", NewReg(0).String())
	assert.Equal("$zero", NewReg(0).Alias())
	assert.Equal("$29", NewReg(29).String())
	assert.Equal("$sp", NewReg(29).Alias())
	assert.Equal("$ra", NewReg(31).Alias())
	assert.Equal("$f31", NewFpReg(31).String())

	count := 0
	for name, reg := range RegSpellings() {
		assert.True(name == reg.String() || name == reg.Alias(), name)
		count++
	}
	assert.Equal(2*NUM_REGISTERS, count)

	count = 0
	for name, reg := range FpRegSpellings() {
		assert.Equal(fmt.Sprintf("$f%d", reg.Index()), name)
		count++
	}
	assert.Equal(NUM_REGISTERS, count)
}

func TestMatchReg(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		text  string
		reg   Reg
		size  int
		found bool
	}{
		{"$1", 1, 2, true},
		{"$10", 10, 3, true},
		{"$31", 31, 3, true},
		{"$1,$2", 1, 2, true},
		{"$sp)", 29, 3, true},
		{"$t9 ", 25, 3, true},
		{"$32", 0, 0, false},
		{"$100", 0, 0, false},
		{"$f0", 0, 0, false},
		{"$zeros", 0, 0, false},
		{"zero", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, test := range tests {
		reg, size, ok := MatchReg(test.text)
		assert.Equal(test.found, ok, test.text)
		assert.Equal(test.reg, reg, test.text)
		assert.Equal(test.size, size, test.text)
	}
}

func TestMatchFpReg(t *testing.T) {
	assert := assert.New(t)

	reg, size, ok := MatchFpReg("$f12, $f2")
	assert.True(ok)
	assert.Equal(FpReg(12), reg)
	assert.Equal(4, size)

	_, _, ok = MatchFpReg("$f32")
	assert.False(ok)

	_, _, ok = MatchFpReg("$fp")
	assert.False(ok)
}

func TestIsRegisterName(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsRegisterName("$s0"))
	assert.True(IsRegisterName("$f3"))
	assert.True(IsRegisterName("$17"))
	assert.False(IsRegisterName("$s0x"))
	assert.False(IsRegisterName("_$$"))
	assert.False(IsRegisterName("s0"))
}
