package expr

// Value is the 32-bit result of an evaluation.
type Value uint32

// Unsigned returns the value as an unsigned integer.
func (v Value) Unsigned() uint32 {
	return uint32(v)
}

// Signed returns the two's complement reading of the value.
func (v Value) Signed() int32 {
	return int32(v)
}

// Resolver supplies the values of symbols.
type Resolver interface {
	Resolve(name string) (value uint32, err error)
}

// ResolverFunc adapts a function to a Resolver.
type ResolverFunc func(name string) (uint32, error)

func (rf ResolverFunc) Resolve(name string) (uint32, error) {
	return rf(name)
}

// Map is a fixed symbol table.
type Map map[string]uint32

func (m Map) Resolve(name string) (value uint32, err error) {
	value, ok := m[name]
	if !ok {
		err = ErrUndefined(name)
	}
	return
}

// Eval computes the value of op, looking up symbols with resolve.
func Eval(op Operand, resolve func(name string) (uint32, error)) (Value, error) {
	return EvalWith(op, ResolverFunc(resolve))
}

// EvalWith computes the value of op, looking up symbols with r.
//
// Addition, subtraction and the bitwise operators work on the unsigned
// bits. Multiplication and division read both sides as signed, and
// division truncates toward zero.
func EvalWith(op Operand, r Resolver) (value Value, err error) {
	switch op := op.(type) {
	case Var:
		var v uint32
		v, err = r.Resolve(string(op))
		value = Value(v)
	case Num:
		value = Value(op)
	case Unary:
		value, err = EvalWith(op.X, r)
		if err != nil {
			return
		}
		switch op.Op {
		case MON_POS:
		case MON_NEG:
			value = -value
		case MON_NOT:
			value = ^value
		default:
			err = ErrOperandInvalid
		}
	case Expr:
		value, err = EvalWith(op.First, r)
		if err != nil {
			return
		}
		for _, oper := range op.Rest {
			var rhs Value
			rhs, err = EvalWith(oper.X, r)
			if err != nil {
				return
			}
			value, err = apply(value, oper.Op, rhs)
			if err != nil {
				return
			}
		}
	default:
		err = ErrOperandInvalid
	}

	return
}

// apply performs a single binary operation.
func apply(lhs Value, op BinOp, rhs Value) (value Value, err error) {
	switch op {
	case OP_PLUS:
		value = lhs + rhs
	case OP_MINUS:
		value = lhs - rhs
	case OP_AND:
		value = lhs & rhs
	case OP_OR:
		value = lhs | rhs
	case OP_TIMES:
		value = Value(uint32(lhs.Signed() * rhs.Signed()))
	case OP_DIVIDE:
		if rhs == 0 {
			err = ErrDivideByZero
			return
		}
		value = Value(uint32(lhs.Signed() / rhs.Signed()))
	default:
		err = ErrOperandInvalid
	}
	return
}
