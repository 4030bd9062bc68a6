package server

import (
	"errors"

	"github.com/ezrec/mipslang/translate"
)

var f = translate.From

// JSON-RPC error codes for failed requests.
const (
	CODE_SYNTAX     = int64(-32001) // The text did not parse.
	CODE_EVALUATION = int64(-32002) // The text parsed, but could not be evaluated.
)

var (
	ErrLiteralKind = errors.New(f("unknown literal kind"))
)

// ErrMethod is returned for an unknown request method.
type ErrMethod string

func (err ErrMethod) Error() string {
	return f("method '%v' not found", string(err))
}
