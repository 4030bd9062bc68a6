package expr

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Operand is a node of an operand expression tree.
//
// It is one of Var, Num, Unary or Expr. Operands are never modified
// after construction; Combine and the operator helpers build new trees.
type Operand interface {
	// String returns a canonical form that parses back to an equal tree.
	String() string

	operand()
}

// Var is a symbol reference, resolved at evaluation time.
type Var string

// Num is a 32-bit value with wrapping arithmetic.
type Num uint32

// Unary applies a unary operator to an operand.
type Unary struct {
	Op MonOp
	X  Operand
}

// Operation is the right hand side of a binary operation. In `1 + 2 - 3`,
// `+ 2` and `- 3` are the operations applied to `1`.
type Operation struct {
	Op BinOp
	X  Operand
}

// Expr is a chain of binary operations sharing one precedence tier,
// applied left to right to First.
type Expr struct {
	First Operand
	Rest  []Operation
}

func (Var) operand()   {}
func (Num) operand()   {}
func (Unary) operand() {}
func (Expr) operand()  {}

func (v Var) String() string {
	return string(v)
}

func (n Num) String() string {
	return strconv.FormatUint(uint64(n), 10)
}

func (u Unary) String() string {
	if _, nested := u.X.(Unary); nested {
		return u.Op.String() + "(" + u.X.String() + ")"
	}
	return u.Op.String() + u.X.String()
}

func (e Expr) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(e.First.String())
	for _, oper := range e.Rest {
		sb.WriteString(oper.Op.String())
		sb.WriteString(oper.X.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Variable returns a symbol reference operand.
func Variable(name string) Operand {
	return Var(name)
}

// Unsigned returns a constant operand.
func Unsigned(value uint32) Operand {
	return Num(value)
}

// Int returns a constant operand holding the two's complement bits of value.
func Int(value int32) Operand {
	return Num(uint32(value))
}

// Combine joins lhs and rhs with op. If lhs is an Expr whose operations
// are on op's tier, the result extends that chain instead of nesting a
// new level, so `a + b + c` is one three term Expr.
func Combine(lhs Operand, op BinOp, rhs Operand) Operand {
	if expr, ok := lhs.(Expr); ok && len(expr.Rest) > 0 &&
		SamePrecedence(expr.Rest[len(expr.Rest)-1].Op, op) {
		return Expr{
			First: expr.First,
			Rest:  slices.Concat(expr.Rest, []Operation{{Op: op, X: rhs}}),
		}
	}

	return Expr{
		First: lhs,
		Rest:  []Operation{{Op: op, X: rhs}},
	}
}

func Add(lhs, rhs Operand) Operand { return Combine(lhs, OP_PLUS, rhs) }
func Sub(lhs, rhs Operand) Operand { return Combine(lhs, OP_MINUS, rhs) }
func Mul(lhs, rhs Operand) Operand { return Combine(lhs, OP_TIMES, rhs) }
func Div(lhs, rhs Operand) Operand { return Combine(lhs, OP_DIVIDE, rhs) }
func And(lhs, rhs Operand) Operand { return Combine(lhs, OP_AND, rhs) }
func Or(lhs, rhs Operand) Operand  { return Combine(lhs, OP_OR, rhs) }

// Apply returns op applied to x.
func Apply(op MonOp, x Operand) Operand {
	return Unary{Op: op, X: x}
}

func Pos(x Operand) Operand { return Apply(MON_POS, x) }
func Neg(x Operand) Operand { return Apply(MON_NEG, x) }
func Not(x Operand) Operand { return Apply(MON_NOT, x) }

// Variables yields each distinct symbol name referenced by op, in order
// of first appearance.
func Variables(op Operand) iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := map[string]bool{}
		var walk func(op Operand) bool
		walk = func(op Operand) bool {
			switch op := op.(type) {
			case Var:
				name := string(op)
				if seen[name] {
					return true
				}
				seen[name] = true
				return yield(name)
			case Unary:
				return walk(op.X)
			case Expr:
				if !walk(op.First) {
					return false
				}
				for _, oper := range op.Rest {
					if !walk(oper.X) {
						return false
					}
				}
			}
			return true
		}
		walk(op)
	}
}
