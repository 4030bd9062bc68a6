// Package expr implements operand expression trees and their evaluation.
//
// An Operand is built by the parser, or directly with Combine and the
// operator helpers. Operators of the same precedence tier chain into one
// flat Expr; a change of tier nests a new Expr. Evaluation is deferred
// until symbol values are known and uses 32-bit wrapping arithmetic.
package expr
