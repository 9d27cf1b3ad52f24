package ast

// UnaryOp is a prefix operator of a Unary expression.
type UnaryOp string

const (
	OpTypeof UnaryOp = "typeof"
	OpVoid   UnaryOp = "void"
	OpDelete UnaryOp = "delete"
	OpNot    UnaryOp = "!"
	OpBitNot UnaryOp = "~"
	OpPlus   UnaryOp = "+"
	OpMinus  UnaryOp = "-"
)

// IsWord reports whether the operator is a keyword that must be separated
// from its operand by a space.
func (op UnaryOp) IsWord() bool {
	switch op {
	case OpTypeof, OpVoid, OpDelete:
		return true
	}
	return false
}

// BinaryOp is the operator of a Binary expression. Logical operators
// (&&, ||, ??) are binary operators too.
type BinaryOp string

const (
	OpEq         BinaryOp = "=="
	OpNotEq      BinaryOp = "!="
	OpStrictEq   BinaryOp = "==="
	OpStrictNeq  BinaryOp = "!=="
	OpLt         BinaryOp = "<"
	OpLtEq       BinaryOp = "<="
	OpGt         BinaryOp = ">"
	OpGtEq       BinaryOp = ">="
	OpShl        BinaryOp = "<<"
	OpShr        BinaryOp = ">>"
	OpUShr       BinaryOp = ">>>"
	OpAdd        BinaryOp = "+"
	OpSub        BinaryOp = "-"
	OpMul        BinaryOp = "*"
	OpDiv        BinaryOp = "/"
	OpMod        BinaryOp = "%"
	OpExp        BinaryOp = "**"
	OpBitOr      BinaryOp = "|"
	OpBitXor     BinaryOp = "^"
	OpBitAnd     BinaryOp = "&"
	OpIn         BinaryOp = "in"
	OpInstanceOf BinaryOp = "instanceof"
	OpLogicalOr  BinaryOp = "||"
	OpLogicalAnd BinaryOp = "&&"
	OpNullish    BinaryOp = "??"
)

// IsEquality reports whether op is one of ==, !=, === or !==.
func (op BinaryOp) IsEquality() bool {
	switch op {
	case OpEq, OpNotEq, OpStrictEq, OpStrictNeq:
		return true
	}
	return false
}

// IsWord reports whether the operator is a keyword (in, instanceof).
func (op BinaryOp) IsWord() bool {
	return op == OpIn || op == OpInstanceOf
}

// validBinaryOps lists every operator the tree can represent.
var validBinaryOps = map[BinaryOp]bool{
	OpEq: true, OpNotEq: true, OpStrictEq: true, OpStrictNeq: true,
	OpLt: true, OpLtEq: true, OpGt: true, OpGtEq: true,
	OpShl: true, OpShr: true, OpUShr: true,
	OpAdd: true, OpSub: true, OpMul: true, OpDiv: true, OpMod: true, OpExp: true,
	OpBitOr: true, OpBitXor: true, OpBitAnd: true,
	OpIn: true, OpInstanceOf: true,
	OpLogicalOr: true, OpLogicalAnd: true, OpNullish: true,
}

// IsValid reports whether op is a known binary operator.
func (op BinaryOp) IsValid() bool {
	return validBinaryOps[op]
}

// IsValid reports whether op is a known unary operator.
func (op UnaryOp) IsValid() bool {
	switch op {
	case OpTypeof, OpVoid, OpDelete, OpNot, OpBitNot, OpPlus, OpMinus:
		return true
	}
	return false
}
