package symbols

import (
	"github.com/ezrec/mipslang/translate"
)

var f = translate.From

// ErrSymbolName is returned when a name cannot be used as a symbol.
type ErrSymbolName string

func (err ErrSymbolName) Error() string {
	return f("invalid symbol name '%v'", string(err))
}

// ErrSymbolRange is returned when a script integer does not fit in 32 bits.
type ErrSymbolRange string

func (err ErrSymbolRange) Error() string {
	return f("symbol '%v' out of 32-bit range", string(err))
}

// ErrLoad is returned when a symbol script fails.
type ErrLoad struct {
	Filename string
	Err      error
}

func (err *ErrLoad) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}
