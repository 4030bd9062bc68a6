package expr

import (
	"strconv"
)

// MonOp is a unary operator.
type MonOp int

//go:generate go tool stringer -linecomment -type=MonOp
const (
	MON_POS = MonOp(0) // +
	MON_NEG = MonOp(1) // -
	MON_NOT = MonOp(2) // ~
)

// ParseMonOp returns the unary operator spelled by c.
func ParseMonOp(c byte) (op MonOp, ok bool) {
	switch c {
	case '+':
		return MON_POS, true
	case '-':
		return MON_NEG, true
	case '~':
		return MON_NOT, true
	}
	return
}

// BinOp is a binary operator.
//
// The bits above the low byte hold the precedence tier, so at most 256
// operators may share a tier. Lower tiers bind tighter.
type BinOp int

const (
	OP_TIMES  = BinOp(0x000) // *
	OP_DIVIDE = BinOp(0x001) // /

	OP_PLUS  = BinOp(0x100) // +
	OP_MINUS = BinOp(0x101) // -

	OP_AND = BinOp(0x200) // &

	OP_OR = BinOp(0x400) // |
)

const precedenceMask = ^BinOp(0xff)

// Tier returns the precedence tier of the operator.
func (op BinOp) Tier() int {
	return int(op&precedenceMask) >> 8
}

// SamePrecedence is true if a and b chain without a new tree level.
func SamePrecedence(a, b BinOp) bool {
	return a&precedenceMask == b&precedenceMask
}

// ParseBinOp returns the binary operator spelled by c.
func ParseBinOp(c byte) (op BinOp, ok bool) {
	switch c {
	case '*':
		return OP_TIMES, true
	case '/':
		return OP_DIVIDE, true
	case '+':
		return OP_PLUS, true
	case '-':
		return OP_MINUS, true
	case '&':
		return OP_AND, true
	case '|':
		return OP_OR, true
	}
	return
}

func (op BinOp) String() string {
	switch op {
	case OP_TIMES:
		return "*"
	case OP_DIVIDE:
		return "/"
	case OP_PLUS:
		return "+"
	case OP_MINUS:
		return "-"
	case OP_AND:
		return "&"
	case OP_OR:
		return "|"
	}
	return "BinOp(" + strconv.Itoa(int(op)) + ")"
}
