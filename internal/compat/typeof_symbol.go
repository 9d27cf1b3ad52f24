package compat

import (
	"strings"

	"github.com/roach88/jscompat/internal/ast"
)

// PassTypeOfSymbol is the registry name of the TypeOfSymbol pass.
const PassTypeOfSymbol = "typeof-symbol"

// HelperTypeOf is the helper category requested for rewritten call sites.
const HelperTypeOf = "typeof"

// nonSymbolTags are the typeof results that a Symbol polyfill can never
// change. `"symbol"` is deliberately absent.
var nonSymbolTags = map[string]bool{
	"undefined": true,
	"object":    true,
	"boolean":   true,
	"number":    true,
	"string":    true,
	"function":  true,
}

// TypeOfSymbol rewrites `typeof x` into `_typeof(x)` so that polyfilled
// Symbols report "symbol".
//
// In:
//
//	typeof Symbol() === "symbol";
//
// Out:
//
//	_typeof(Symbol()) === "symbol";
//
// Comparisons of a typeof against one of the six non-symbol tags, in either
// operand order, are left untouched.
type TypeOfSymbol struct {
	helpers HelperRequester
}

// NewTypeOfSymbol returns the pass. h supplies the `_typeof` reference.
func NewTypeOfSymbol(h HelperRequester) *TypeOfSymbol {
	return &TypeOfSymbol{helpers: h}
}

// Name implements Pass.
func (p *TypeOfSymbol) Name() string { return PassTypeOfSymbol }

// FoldModule implements Pass. The helper's own definition is left alone
// when the module already carries it: a function declaration or variable
// named like the helper (`_typeof`, `_typeof2`, ...) is never entered.
func (p *TypeOfSymbol) FoldModule(m *ast.Module) *ast.Module {
	f := p.folder()
	f.skip = helperInits(m, f.helper)
	return ast.FoldModule(m, f.fold)
}

// FoldExpr transforms a single expression tree.
func (p *TypeOfSymbol) FoldExpr(e ast.Expr) ast.Expr {
	return p.folder().fold(e)
}

func (p *TypeOfSymbol) folder() *typeofFolder {
	return &typeofFolder{helpers: p.helpers, helper: p.helpers.Name(HelperTypeOf)}
}

type typeofFolder struct {
	helpers HelperRequester
	helper  string
	skip    map[ast.Expr]bool // initializers of helper-named variables
}

func (f *typeofFolder) fold(e ast.Expr) ast.Expr {
	// fast path
	if !containsTypeof(e) || f.skip[e] {
		return e
	}
	if fn, ok := e.(*ast.Fn); ok && isHelperBinding(fn.Name, f.helper) {
		return e
	}

	if bin, ok := e.(*ast.Binary); ok {
		// The comparison rule decides whether the operands are visited at all.
		return f.foldBinary(bin)
	}

	e = ast.FoldChildren(e, f.fold)

	if u, ok := e.(*ast.Unary); ok && u.Op == ast.OpTypeof {
		return &ast.Call{
			Span:   u.Span,
			Callee: f.helpers.Ref(u.Span, HelperTypeOf),
			Args:   []ast.Expr{u.Arg},
		}
	}
	return e
}

// foldBinary leaves `typeof x OP "tag"` and `"tag" OP typeof x` alone for
// equality operators and non-symbol tags. Only the immediate operands are
// inspected, before any of them is transformed.
func (f *typeofFolder) foldBinary(b *ast.Binary) ast.Expr {
	if b.Op.IsEquality() {
		if isTypeof(b.Left) && isNonSymbolLiteral(b.Right) {
			return b
		}
		if isTypeof(b.Right) && isNonSymbolLiteral(b.Left) {
			return b
		}
	}
	return ast.FoldChildren(b, f.fold)
}

// helperInits collects the initializers of variables named like the
// helper, e.g. `var _typeof = function (obj) {...}`.
func helperInits(m *ast.Module, helper string) map[ast.Expr]bool {
	skip := make(map[ast.Expr]bool)
	ast.Inspect(m, func(n ast.Node) bool {
		if decl, ok := n.(*ast.VarDecl); ok {
			for _, d := range decl.Decls {
				if d.Init != nil && isHelperBinding(d.Name, helper) {
					skip[d.Init] = true
				}
			}
		}
		return true
	})
	return skip
}

// isHelperBinding reports whether name is helper or a numbered variant of
// it. Numbered variants come from earlier runs over modules that already
// bound the plain name.
func isHelperBinding(name, helper string) bool {
	base := strings.TrimRight(helper, "0123456789")
	suffix, ok := strings.CutPrefix(name, base)
	return ok && name != "" && strings.Trim(suffix, "0123456789") == ""
}

func isTypeof(e ast.Expr) bool {
	u, ok := e.(*ast.Unary)
	return ok && u.Op == ast.OpTypeof
}

// isNonSymbolLiteral matches string literals by exact, case-sensitive value.
func isNonSymbolLiteral(e ast.Expr) bool {
	s, ok := e.(*ast.Str)
	return ok && nonSymbolTags[s.Value]
}

// containsTypeof reports whether any typeof operator occurs in e, including
// inside nested function bodies.
func containsTypeof(e ast.Expr) bool {
	found := false
	ast.Inspect(e, func(n ast.Node) bool {
		if found {
			return false
		}
		if u, ok := n.(*ast.Unary); ok && u.Op == ast.OpTypeof {
			found = true
			return false
		}
		return true
	})
	return found
}
