// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package symbols holds the values of the names used in operand
// expressions.
package symbols

import (
	"iter"
	"log"
	"maps"
	"slices"
	"sync"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mipslang/expr"
	"github.com/ezrec/mipslang/parser"
	"github.com/ezrec/mipslang/source"
)

// Table maps symbol names to 32-bit values. It is safe for concurrent use.
type Table struct {
	Verbose bool // If set, logs every definition.

	mutex  sync.RWMutex
	values map[string]uint32
}

var _ expr.Resolver = (*Table)(nil)

// NewTable returns an empty symbol table.
func NewTable() *Table {
	return &Table{values: map[string]uint32{}}
}

// validName is true if name parses as exactly one symbol name.
func validName(name string) bool {
	rest, _, err := parser.Ident(source.New(name))
	return err == nil && rest.Empty()
}

// Define sets or replaces the value of a symbol.
func (tbl *Table) Define(name string, value uint32) (err error) {
	if !validName(name) {
		err = ErrSymbolName(name)
		return
	}

	tbl.mutex.Lock()
	defer tbl.mutex.Unlock()

	if tbl.values == nil {
		tbl.values = map[string]uint32{}
	}
	tbl.values[name] = value

	if tbl.Verbose {
		log.Printf("symbols: %v = %#x", name, value)
	}

	return
}

// DefineExpr evaluates text as an operand expression against the table,
// and defines name as the result.
func (tbl *Table) DefineExpr(name string, text string) (value uint32, err error) {
	v, err := parser.Evaluate(text, tbl)
	if err != nil {
		return
	}

	value = v.Unsigned()
	err = tbl.Define(name, value)
	return
}

// Lookup returns the value of a symbol, if defined.
func (tbl *Table) Lookup(name string) (value uint32, ok bool) {
	tbl.mutex.RLock()
	defer tbl.mutex.RUnlock()

	value, ok = tbl.values[name]
	return
}

// Resolve returns the value of a symbol, or expr.ErrUndefined.
func (tbl *Table) Resolve(name string) (value uint32, err error) {
	value, ok := tbl.Lookup(name)
	if !ok {
		err = expr.ErrUndefined(name)
	}
	return
}

// Len returns the number of defined symbols.
func (tbl *Table) Len() int {
	tbl.mutex.RLock()
	defer tbl.mutex.RUnlock()

	return len(tbl.values)
}

// Names iterates over the defined symbol names in sorted order.
func (tbl *Table) Names() iter.Seq[string] {
	tbl.mutex.RLock()
	names := slices.Sorted(maps.Keys(tbl.values))
	tbl.mutex.RUnlock()

	return slices.Values(names)
}

// Evaluate parses and evaluates text against the table.
func (tbl *Table) Evaluate(text string) (value expr.Value, err error) {
	return parser.Evaluate(text, tbl)
}

// builtinExpr is the `expr(text)` script builtin, which evaluates an
// operand expression against the table.
func (tbl *Table) builtinExpr(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &text)
	if err != nil {
		return nil, err
	}

	value, err := tbl.Evaluate(text)
	if err != nil {
		return nil, err
	}

	return starlark.MakeUint64(uint64(value.Unsigned())), nil
}

// LoadStarlark runs a Starlark symbol script. The defined symbols are
// visible to the script as globals, along with the `expr(text)` builtin.
// Every integer global the script leaves behind becomes a symbol; other
// globals are ignored. Negative integers down to -2^31 are stored as
// their two's complement bits.
//
// If src is nil the script is read from filename. Either all of the
// script's symbols are defined, or none are.
func (tbl *Table) LoadStarlark(filename string, src any) (err error) {
	predeclared := starlark.StringDict{
		"expr": starlark.NewBuiltin("expr", tbl.builtinExpr),
	}

	tbl.mutex.RLock()
	for name, value := range tbl.values {
		predeclared[name] = starlark.MakeUint64(uint64(value))
	}
	tbl.mutex.RUnlock()

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}

	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		err = &ErrLoad{Filename: filename, Err: err}
		return
	}

	defines := map[string]uint32{}
	for _, name := range globals.Keys() {
		st_int, ok := globals[name].(starlark.Int)
		if !ok {
			if tbl.Verbose {
				log.Printf("symbols: %v: ignoring %v %v", filename, globals[name].Type(), name)
			}
			continue
		}

		st_int64, ok := st_int.Int64()
		if !ok || st_int64 > 0xffffffff || st_int64 < -0x80000000 {
			err = &ErrLoad{Filename: filename, Err: ErrSymbolRange(name)}
			return
		}

		if !validName(name) {
			err = &ErrLoad{Filename: filename, Err: ErrSymbolName(name)}
			return
		}

		defines[name] = uint32(st_int64)
	}

	for _, name := range slices.Sorted(maps.Keys(defines)) {
		err = tbl.Define(name, defines[name])
		if err != nil {
			return
		}
	}

	return
}
