package expr

import (
	"errors"

	"github.com/ezrec/mipslang/translate"
)

var f = translate.From

var (
	// Evaluation errors
	ErrDivideByZero   = errors.New(f("division by zero"))
	ErrOperandInvalid = errors.New(f("operand invalid"))
)

// ErrUndefined is returned when a symbol has no value.
type ErrUndefined string

func (err ErrUndefined) Error() string {
	return f("symbol '%v' undefined", string(err))
}
