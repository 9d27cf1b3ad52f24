package codegen

import (
	"fmt"
	"strings"

	"github.com/roach88/jscompat/internal/ast"
)

// expr prints e, parenthesized if it binds looser than minPrec.
func (p *printer) expr(e ast.Expr, minPrec int) {
	if precedence(e) < minPrec {
		p.write("(")
		p.exprInner(e)
		p.write(")")
		return
	}
	p.exprInner(e)
}

func (p *printer) exprInner(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Ident:
		p.write(n.Name)
	case *ast.Str:
		if n.Raw != "" {
			p.write(n.Raw)
		} else {
			p.write(quote(n.Value))
		}
	case *ast.Num:
		p.write(n.Raw)
	case *ast.Bool:
		if n.Value {
			p.write("true")
		} else {
			p.write("false")
		}
	case *ast.Null:
		p.write("null")
	case *ast.This:
		p.write("this")
	case *ast.Super:
		p.write("super")
	case *ast.Regex:
		p.write("/" + n.Pattern + "/" + n.Flags)
	case *ast.Template:
		p.write("`")
		for i, q := range n.Quasis {
			p.write(q)
			if i < len(n.Exprs) {
				p.write("${")
				p.expr(n.Exprs[i], precLowest)
				p.write("}")
			}
		}
		p.write("`")
	case *ast.TaggedTemplate:
		p.expr(n.Tag, precCall)
		p.exprInner(n.Quasi)
	case *ast.MetaProp:
		p.write(n.Meta + "." + n.Prop)
	case *ast.Array:
		p.elems(n.Elems)
	case *ast.Object:
		p.props(n.Props)
	case *ast.ArrayPat:
		p.elems(n.Elems)
	case *ast.ObjectPat:
		p.props(n.Props)
	case *ast.AssignPat:
		p.expr(n.Target, precPostfix)
		p.write(" = ")
		p.expr(n.Default, precAssign)
	case *ast.RestPat:
		p.write("...")
		p.expr(n.Arg, precAssign)
	case *ast.Class:
		p.class(n)
	case *ast.Fn:
		p.fn(n)
	case *ast.Arrow:
		p.arrow(n)
	case *ast.Unary:
		p.write(string(n.Op))
		if n.Op.IsWord() || startsWithSign(n.Op, n.Arg) {
			p.write(" ")
		}
		p.expr(n.Arg, precPrefix)
	case *ast.Update:
		if n.Prefix {
			p.write(n.Op)
			p.expr(n.Arg, precPrefix)
		} else {
			p.expr(n.Arg, precPostfix)
			p.write(n.Op)
		}
	case *ast.Binary:
		p.binary(n)
	case *ast.Assign:
		p.expr(n.Left, precPostfix)
		p.write(" " + n.Op + " ")
		p.expr(n.Right, precAssign)
	case *ast.Cond:
		p.expr(n.Test, precNullish)
		p.write(" ? ")
		p.expr(n.Cons, precAssign)
		p.write(" : ")
		p.expr(n.Alt, precAssign)
	case *ast.Call:
		p.expr(n.Callee, precCall)
		if n.Optional {
			p.write("?.")
		}
		p.args(n.Args)
	case *ast.New:
		p.write("new ")
		p.expr(n.Callee, precMember)
		p.args(n.Args)
	case *ast.Member:
		p.member(n)
	case *ast.Seq:
		for i, x := range n.Exprs {
			if i > 0 {
				p.write(", ")
			}
			p.expr(x, precAssign)
		}
	case *ast.Paren:
		p.write("(")
		p.expr(n.Expr, precLowest)
		p.write(")")
	case *ast.Spread:
		p.write("...")
		p.expr(n.Arg, precAssign)
	case *ast.Await:
		p.write("await ")
		p.expr(n.Arg, precPrefix)
	case *ast.Yield:
		p.write("yield")
		if n.Delegate {
			p.write("*")
		}
		if n.Arg != nil {
			p.write(" ")
			p.expr(n.Arg, precAssign)
		}
	default:
		panic(fmt.Sprintf("codegen: unhandled expression %T", e))
	}
}

func (p *printer) binary(n *ast.Binary) {
	prec := binaryPrec[n.Op]
	leftMin, rightMin := prec, prec+1
	if n.Op == ast.OpExp {
		// right-associative, and a unary operand must be parenthesized
		leftMin, rightMin = precPostfix, prec
	}

	p.operand(n.Left, leftMin, n.Op)
	p.write(" " + string(n.Op) + " ")
	p.operand(n.Right, rightMin, n.Op)
}

// operand prints one side of a binary expression. `??` cannot be mixed with
// `||` or `&&` without parentheses.
func (p *printer) operand(e ast.Expr, minPrec int, parent ast.BinaryOp) {
	if child, ok := e.(*ast.Binary); ok && mixesNullish(parent, child.Op) {
		p.write("(")
		p.exprInner(e)
		p.write(")")
		return
	}
	p.expr(e, minPrec)
}

func mixesNullish(a, b ast.BinaryOp) bool {
	logical := func(op ast.BinaryOp) bool { return op == ast.OpLogicalOr || op == ast.OpLogicalAnd }
	return (a == ast.OpNullish && logical(b)) || (logical(a) && b == ast.OpNullish)
}

// startsWithSign reports whether printing arg directly after op would fuse
// into `++`, `--`, `+ +` ambiguity, e.g. `-(-x)` or `+(++x)`.
func startsWithSign(op ast.UnaryOp, arg ast.Expr) bool {
	if op != ast.OpPlus && op != ast.OpMinus {
		return false
	}
	switch a := arg.(type) {
	case *ast.Unary:
		return a.Op == op
	case *ast.Update:
		return a.Prefix && strings.HasPrefix(a.Op, string(op))
	}
	return false
}

func (p *printer) member(n *ast.Member) {
	if _, isNum := n.Object.(*ast.Num); isNum && !n.Computed {
		p.write("(")
		p.exprInner(n.Object)
		p.write(")")
	} else {
		p.expr(n.Object, precCall)
	}

	if n.Computed {
		if n.Optional {
			p.write("?.")
		}
		p.write("[")
		p.expr(n.Property, precLowest)
		p.write("]")
		return
	}
	if n.Optional {
		p.write("?.")
	} else {
		p.write(".")
	}
	p.exprInner(n.Property)
}

func (p *printer) args(args []ast.Expr) {
	p.write("(")
	for i, a := range args {
		if i > 0 {
			p.write(", ")
		}
		p.listItem(a)
	}
	p.write(")")
}

// listItem prints an element of an argument or array list.
func (p *printer) listItem(e ast.Expr) {
	p.expr(e, precAssign)
}

// elems prints an array literal or array pattern. A trailing hole needs an
// extra comma.
func (p *printer) elems(list []ast.Expr) {
	p.write("[")
	for i, elem := range list {
		if i > 0 {
			p.write(", ")
		}
		if elem != nil {
			p.listItem(elem)
		}
	}
	if len(list) > 0 && list[len(list)-1] == nil {
		p.write(",")
	}
	p.write("]")
}

// props prints an object literal or object pattern.
func (p *printer) props(list []ast.Prop) {
	if len(list) == 0 {
		p.write("{}")
		return
	}
	p.write("{ ")
	for i, prop := range list {
		if i > 0 {
			p.write(", ")
		}
		switch {
		case prop.Spread:
			p.write("...")
			p.expr(prop.Value, precAssign)
		case prop.Method != "":
			p.method(prop.Method, prop.Key, prop.Computed, prop.Value.(*ast.Fn))
		case prop.Shorthand && sameIdent(prop.Key, prop.Value):
			p.exprInner(prop.Key)
		case prop.Shorthand && isDefaulted(prop.Key, prop.Value):
			p.exprInner(prop.Value)
		default:
			p.key(prop.Key, prop.Computed)
			p.write(": ")
			p.expr(prop.Value, precAssign)
		}
	}
	p.write(" }")
}

func (p *printer) key(key ast.Expr, computed bool) {
	if computed {
		p.write("[")
		p.expr(key, precAssign)
		p.write("]")
		return
	}
	p.exprInner(key)
}

// isDefaulted reports whether value is `key = default` in a shorthand
// pattern property.
func isDefaulted(key, value ast.Expr) bool {
	a, ok := value.(*ast.AssignPat)
	return ok && sameIdent(key, a.Target)
}

// method prints a method, getter or setter of a class body or object
// literal, without any static prefix.
func (p *printer) method(kind ast.MemberKind, key ast.Expr, computed bool, fn *ast.Fn) {
	if fn.Async {
		p.write("async ")
	}
	switch kind {
	case ast.MemberGet:
		p.write("get ")
	case ast.MemberSet:
		p.write("set ")
	}
	if fn.Generator {
		p.write("*")
	}
	p.key(key, computed)
	p.params(fn.Params)
	p.write(" ")
	p.block(fn.Body)
}

func (p *printer) class(n *ast.Class) {
	p.write("class")
	if n.Name != "" {
		p.write(" " + n.Name)
	}
	if n.Super != nil {
		p.write(" extends ")
		p.expr(n.Super, precCall)
	}
	p.write(" ")
	if len(n.Members) == 0 {
		p.write("{}")
		return
	}
	p.write("{\n")
	p.indent++
	for _, m := range n.Members {
		p.writeIndent()
		if m.Static {
			p.write("static ")
		}
		switch m.Kind {
		case ast.MemberField:
			p.key(m.Key, m.Computed)
			if m.Value != nil {
				p.write(" = ")
				p.expr(m.Value, precAssign)
			}
			p.write(";")
		case ast.MemberStaticBlock:
			p.block(m.Body)
		default:
			p.method(m.Kind, m.Key, m.Computed, m.Value.(*ast.Fn))
		}
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func sameIdent(a, b ast.Expr) bool {
	x, ok1 := a.(*ast.Ident)
	y, ok2 := b.(*ast.Ident)
	return ok1 && ok2 && x.Name == y.Name
}

func (p *printer) fn(n *ast.Fn) {
	if n.Async {
		p.write("async ")
	}
	p.write("function")
	if n.Generator {
		p.write("*")
	}
	if n.Name != "" {
		p.write(" " + n.Name)
	}
	p.params(n.Params)
	p.write(" ")
	p.block(n.Body)
}

func (p *printer) arrow(n *ast.Arrow) {
	if n.Async {
		p.write("async ")
	}
	p.params(n.Params)
	p.write(" => ")
	if n.Expr == nil {
		p.block(n.Body)
		return
	}
	if _, isObj := n.Expr.(*ast.Object); isObj {
		p.write("(")
		p.exprInner(n.Expr)
		p.write(")")
		return
	}
	p.expr(n.Expr, precAssign)
}

func (p *printer) params(params []ast.Param) {
	p.write("(")
	for i, param := range params {
		if i > 0 {
			p.write(", ")
		}
		if param.Rest {
			p.write("...")
		}
		if param.Pattern != nil {
			p.expr(param.Pattern, precAssign)
		} else {
			p.write(param.Name)
		}
		if param.Default != nil {
			p.write(" = ")
			p.expr(param.Default, precAssign)
		}
	}
	p.write(")")
}
