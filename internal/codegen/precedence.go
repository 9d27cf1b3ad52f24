package codegen

import "github.com/roach88/jscompat/internal/ast"

// Expression precedence levels, lowest binding first.
const (
	precLowest = iota
	precComma
	precAssign // also yield and arrow functions
	precConditional
	precNullish
	precLogicalOr
	precLogicalAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precCompare
	precShift
	precAdd
	precMultiply
	precExponent
	precPrefix
	precPostfix
	precNew
	precCall
	precMember
	precPrimary
)

var binaryPrec = map[ast.BinaryOp]int{
	ast.OpNullish:    precNullish,
	ast.OpLogicalOr:  precLogicalOr,
	ast.OpLogicalAnd: precLogicalAnd,
	ast.OpBitOr:      precBitOr,
	ast.OpBitXor:     precBitXor,
	ast.OpBitAnd:     precBitAnd,
	ast.OpEq:         precEquality,
	ast.OpNotEq:      precEquality,
	ast.OpStrictEq:   precEquality,
	ast.OpStrictNeq:  precEquality,
	ast.OpLt:         precCompare,
	ast.OpLtEq:       precCompare,
	ast.OpGt:         precCompare,
	ast.OpGtEq:       precCompare,
	ast.OpIn:         precCompare,
	ast.OpInstanceOf: precCompare,
	ast.OpShl:        precShift,
	ast.OpShr:        precShift,
	ast.OpUShr:       precShift,
	ast.OpAdd:        precAdd,
	ast.OpSub:        precAdd,
	ast.OpMul:        precMultiply,
	ast.OpDiv:        precMultiply,
	ast.OpMod:        precMultiply,
	ast.OpExp:        precExponent,
}

// precedence returns the binding strength of e as printed.
func precedence(e ast.Expr) int {
	switch n := e.(type) {
	case *ast.Seq:
		return precComma
	case *ast.Assign, *ast.Arrow, *ast.Yield, *ast.AssignPat:
		return precAssign
	case *ast.Cond:
		return precConditional
	case *ast.Binary:
		return binaryPrec[n.Op]
	case *ast.Unary, *ast.Await:
		return precPrefix
	case *ast.Update:
		if n.Prefix {
			return precPrefix
		}
		return precPostfix
	case *ast.New:
		return precNew
	case *ast.Call, *ast.TaggedTemplate:
		return precCall
	case *ast.Member:
		return precMember
	default:
		return precPrimary
	}
}
