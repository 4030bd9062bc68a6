package parser

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mipslang/source"
)

// separate inserts a '_' after each digit of text whose bit is set in mask.
func separate(text string, mask uint64) string {
	var sb strings.Builder
	for n := range len(text) {
		sb.WriteByte(text[n])
		if mask&(1<<(n%64)) != 0 {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

func FuzzNumeral(f *testing.F) {
	f.Add(uint32(0), uint64(0))
	f.Add(uint32(1), uint64(1))
	f.Add(uint32(0xdeadbeef), uint64(0x5555))
	f.Add(uint32(0xffffffff), uint64(0xffffffffffffffff))

	f.Fuzz(func(t *testing.T, n uint32, mask uint64) {
		assert := assert.New(t)

		hex := "0x" + separate(strconv.FormatUint(uint64(n), 16), mask)
		rest, value, err := Hexadecimal(source.New(hex))
		assert.NoError(err, hex)
		assert.Equal(n, value, hex)
		assert.True(rest.Empty(), hex)

		bin := "0b" + separate(strconv.FormatUint(uint64(n), 2), mask)
		rest, value, err = Binary(source.New(bin))
		assert.NoError(err, bin)
		assert.Equal(n, value, bin)
		assert.True(rest.Empty(), bin)

		dec := strconv.FormatUint(uint64(n), 10)
		_, value, err = Unsigned(source.New(dec))
		assert.NoError(err, dec)
		assert.Equal(n, value, dec)

		wide := uint64(1)<<32 | uint64(n)
		_, _, err = Hexadecimal(source.New("0x" + strconv.FormatUint(wide, 16)))
		assert.ErrorIs(err, ErrInvalidHexString)
		_, _, err = Binary(source.New("0b" + strconv.FormatUint(wide, 2)))
		assert.ErrorIs(err, ErrInvalidBinaryString)
	})
}
