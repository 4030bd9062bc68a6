package symbols

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mipslang/expr"
)

func TestDefine(t *testing.T) {
	assert := assert.New(t)

	tbl := NewTable()
	assert.NoError(tbl.Define("base", 0x1000))
	assert.NoError(tbl.Define(".L0", 4))
	assert.NoError(tbl.Define("_$$", 1))

	value, err := tbl.Resolve("base")
	assert.NoError(err)
	assert.Equal(uint32(0x1000), value)

	_, err = tbl.Resolve("missing")
	assert.Equal(expr.ErrUndefined("missing"), err)

	for _, name := range []string{"", "0ab", "$t0", "$f1", "a b", "a+b"} {
		err = tbl.Define(name, 1)
		assert.Equal(ErrSymbolName(name), err, name)
	}

	assert.Equal(3, tbl.Len())
	assert.Equal([]string{".L0", "_$$", "base"}, slices.Collect(tbl.Names()))
}

func TestZeroTable(t *testing.T) {
	assert := assert.New(t)

	var tbl Table
	_, ok := tbl.Lookup("x")
	assert.False(ok)
	assert.NoError(tbl.Define("x", 7))

	value, ok := tbl.Lookup("x")
	assert.True(ok)
	assert.Equal(uint32(7), value)
}

func TestDefineExpr(t *testing.T) {
	assert := assert.New(t)

	tbl := NewTable()
	assert.NoError(tbl.Define("abc", 123))

	value, err := tbl.DefineExpr("triple", "abc + abc + abc")
	assert.NoError(err)
	assert.Equal(uint32(369), value)

	value, err = tbl.DefineExpr("neg", "-triple")
	assert.NoError(err)
	assert.Equal(uint32(0xfffffe8f), value)

	_, err = tbl.DefineExpr("bad", "nope * 2")
	assert.Equal(expr.ErrUndefined("nope"), err)

	_, err = tbl.DefineExpr("bad", "1 / 0")
	assert.True(errors.Is(err, expr.ErrDivideByZero))

	_, ok := tbl.Lookup("bad")
	assert.False(ok)
}

func TestLoadStarlark(t *testing.T) {
	assert := assert.New(t)

	tbl := NewTable()
	assert.NoError(tbl.Define("base", 0x1000))

	script := `
KB = 1024
top = base + 4 * KB
neg = -1
low = -0x80000000
offset = expr("base + 0x10")
greeting = "ignored"

def helper():
    return 1
`
	assert.NoError(tbl.LoadStarlark("layout.star", script))

	expected := map[string]uint32{
		"base":   0x1000,
		"KB":     1024,
		"top":    0x2000,
		"neg":    0xffffffff,
		"low":    0x80000000,
		"offset": 0x1010,
	}
	for name, value := range expected {
		got, err := tbl.Resolve(name)
		assert.NoError(err, name)
		assert.Equal(value, got, name)
	}

	_, ok := tbl.Lookup("greeting")
	assert.False(ok)
	_, ok = tbl.Lookup("helper")
	assert.False(ok)
}

func TestLoadStarlarkErrors(t *testing.T) {
	assert := assert.New(t)

	tbl := NewTable()

	tests := []struct {
		script string
		cause  error
	}{
		{"ok = 1\nhuge = 1 << 40\n", ErrSymbolRange("huge")},
		{"ok = 1\nlow = -0x80000001\n", ErrSymbolRange("low")},
		{"ok = 1\nbad = expr(\"1 / 0\")\n", expr.ErrDivideByZero},
		{"ok = 1\nbad = expr(\"nope\")\n", expr.ErrUndefined("nope")},
	}

	for _, test := range tests {
		err := tbl.LoadStarlark("test.star", test.script)
		var load *ErrLoad
		if assert.ErrorAs(err, &load, test.script) {
			assert.Equal("test.star", load.Filename)
		}
		assert.ErrorIs(err, test.cause, test.script)
	}

	err := tbl.LoadStarlark("syntax.star", "x = = 1\n")
	var load *ErrLoad
	assert.ErrorAs(err, &load)

	assert.Equal(0, tbl.Len())
}

func TestConcurrentResolve(t *testing.T) {
	assert := assert.New(t)

	tbl := NewTable()
	assert.NoError(tbl.Define("x", 1))

	var wg sync.WaitGroup
	for n := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if n%2 == 0 {
				_ = tbl.Define("x", uint32(n))
				return
			}
			_, _ = tbl.Evaluate("x + 1")
		}()
	}
	wg.Wait()

	_, ok := tbl.Lookup("x")
	assert.True(ok)
}
