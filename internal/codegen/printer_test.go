package codegen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/jscompat/internal/ast"
	"github.com/roach88/jscompat/internal/parser"
)

// Each source is already in printed form, so parse then print is the identity.
func TestPrint_RoundTrip(t *testing.T) {
	sources := []string{
		"typeof window !== 'undefined';\n",
		"_typeof(x) === \"symbol\";\n",
		"var a = 1, b;\n",
		"let x = a ? b : c;\n",
		"const n = 0x1F;\n",
		"function f(a, b = 1, ...rest) {\n  return a + b;\n}\n",
		"if (a) {\n  b();\n} else {\n  c();\n}\n",
		"if (a) b();\nelse c();\n",
		"for (var i = 0; i < n; i++) {}\n",
		"for (;;) {}\n",
		"while (x) x--;\n",
		"try {\n  f();\n} catch (e) {\n  g(e);\n} finally {\n  h();\n}\n",
		"x = { a: 1, b, [c]: 2, ...d };\n",
		"f(...args, `a${b}c`);\n",
		"const g = async (a) => {\n  await a;\n};\n",
		"const h = (x) => ({ x });\n",
		"function* gen() {\n  yield* other();\n}\n",
		"a = -(-b);\n",
		"(function() {\n  return typeof x;\n})();\n",
		"x = /ab+c/gi.test(s);\n",
		"(1).toString();\n",
		"a ?? (b || c);\n",
		"delete a[b], void 0;\n",
		"o.p = [1, , 2];\n",
		"throw new Error(\"boom\");\n",
		"switch (x) {\n  case 1:\n    f();\n    break;\n  default:\n    g();\n}\n",
		"switch (x) {}\n",
		"do {\n  x--;\n} while (x);\n",
		"for (const k in o) {}\n",
		"for (x of xs) f(x);\n",
		"async function f() {\n  for await (const v of s) {}\n}\n",
		"outer: for (;;) {\n  break outer;\n}\n",
		"class A extends B {\n  static #count = 0;\n  x;\n  constructor(a) {\n    super(a);\n  }\n  get size() {\n    return 1;\n  }\n  static {\n    init();\n  }\n  async *items() {}\n}\n",
		"const C = class {};\n",
		"debugger;\n",
		"import d, { a, b as c } from \"m\";\n",
		"import * as ns from \"m\";\n",
		"import \"side-effect\";\n",
		"export const a = 1;\n",
		"export default function f() {}\n",
		"export { a, b as c };\n",
		"export { x } from \"m\";\n",
		"export * from \"m\";\n",
		"const { a, b: [c, , ...d], e = 1, ...f } = o;\n",
		"[a, b] = [b, a];\n",
		"({ a } = o);\n",
		"function f({ a, b }, [c] = []) {}\n",
		"try {} catch ({ message }) {}\n",
		"x = tag`a${b}c`;\n",
		"function F() {\n  return new.target;\n}\n",
		"o = { m(a) {}, async *n() {}, set v(x) {} };\n",
	}

	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			m, err := parser.Parse(context.Background(), "rt.js", []byte(src))
			require.NoError(t, err)
			assert.Equal(t, src, Print(m))
		})
	}
}

func TestPrint_Empty(t *testing.T) {
	assert.Equal(t, "", Print(&ast.Module{}))
}

func TestPrint_Import(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{
		&ast.Import{Default: "_typeof", Source: "@jscompat/helpers/_typeof"},
		&ast.ExprStmt{Expr: &ast.Ident{Name: "x"}},
	}}
	assert.Equal(t, "import _typeof from \"@jscompat/helpers/_typeof\";\nx;\n", Print(m))
}

func TestPrint_StatementParens(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"object", &ast.Object{}, "({});\n"},
		{"function call", &ast.Call{Callee: &ast.Fn{}}, "(function() {}());\n"},
		{"object member", &ast.Member{Object: &ast.Object{}, Property: id("a")}, "({}.a);\n"},
		{"identifier", id("a"), "a;\n"},
		{"class expression", &ast.Class{}, "(class {});\n"},
		{"object pattern assignment", &ast.Assign{Op: "=", Left: &ast.ObjectPat{Props: []ast.Prop{{Key: id("a"), Value: id("a"), Shorthand: true}}}, Right: id("o")}, "({ a } = o);\n"},
		{"tagged template on function", &ast.TaggedTemplate{Tag: &ast.Fn{}, Quasi: &ast.Template{Quasis: []string{""}}}, "(function() {}``);\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &ast.Module{Body: []ast.Stmt{&ast.ExprStmt{Expr: tt.expr}}}
			assert.Equal(t, tt.want, Print(m))
		})
	}
}

func TestPrintExpr_Precedence(t *testing.T) {
	a, b, c := id("a"), id("b"), id("c")

	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{
			"right nested same precedence",
			bin(ast.OpAdd, a, bin(ast.OpAdd, b, c)),
			"a + (b + c)",
		},
		{
			"left nested same precedence",
			bin(ast.OpAdd, bin(ast.OpAdd, a, b), c),
			"a + b + c",
		},
		{
			"lower precedence operand",
			bin(ast.OpMul, bin(ast.OpAdd, a, b), c),
			"(a + b) * c",
		},
		{
			"typeof of binary",
			&ast.Unary{Op: ast.OpTypeof, Arg: bin(ast.OpAdd, a, b)},
			"typeof (a + b)",
		},
		{
			"typeof of typeof",
			&ast.Unary{Op: ast.OpTypeof, Arg: &ast.Unary{Op: ast.OpTypeof, Arg: a}},
			"typeof typeof a",
		},
		{
			"helper call comparison",
			bin(ast.OpStrictEq, &ast.Call{Callee: id("_typeof"), Args: []ast.Expr{a}}, &ast.Str{Value: "symbol"}),
			`_typeof(a) === "symbol"`,
		},
		{
			"nullish with logical",
			bin(ast.OpNullish, bin(ast.OpLogicalOr, a, b), c),
			"(a || b) ?? c",
		},
		{
			"exponent with unary base",
			bin(ast.OpExp, &ast.Unary{Op: ast.OpMinus, Arg: a}, b),
			"(-a) ** b",
		},
		{
			"exponent right associative",
			bin(ast.OpExp, a, bin(ast.OpExp, b, c)),
			"a ** b ** c",
		},
		{
			"double minus",
			&ast.Unary{Op: ast.OpMinus, Arg: &ast.Unary{Op: ast.OpMinus, Arg: a}},
			"- -a",
		},
		{
			"number member",
			&ast.Member{Object: &ast.Num{Raw: "1"}, Property: id("toString")},
			"(1).toString",
		},
		{
			"arrow returning object",
			&ast.Arrow{Expr: &ast.Object{}},
			"() => ({})",
		},
		{
			"conditional test",
			&ast.Cond{Test: &ast.Cond{Test: a, Cons: b, Alt: c}, Cons: b, Alt: c},
			"(a ? b : c) ? b : c",
		},
		{
			"sequence argument",
			&ast.Call{Callee: id("f"), Args: []ast.Expr{&ast.Seq{Exprs: []ast.Expr{a, b}}}},
			"f((a, b))",
		},
		{
			"new member",
			&ast.Member{Object: &ast.New{Callee: id("F")}, Property: id("x")},
			"(new F()).x",
		},
		{
			"new of call",
			&ast.New{Callee: &ast.Call{Callee: id("f")}},
			"new (f())()",
		},
		{
			"optional chain",
			&ast.Call{Callee: &ast.Member{Object: a, Property: id("b"), Optional: true}, Optional: true},
			"a?.b?.()",
		},
		{
			"trailing hole",
			&ast.Array{Elems: []ast.Expr{a, nil}},
			"[a, ,]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrintExpr(tt.expr))
		})
	}
}

func TestPrintExpr_SynthesizedString(t *testing.T) {
	assert.Equal(t, `"a\"b"`, PrintExpr(&ast.Str{Value: `a"b`}))
	assert.Equal(t, `'raw'`, PrintExpr(&ast.Str{Value: "raw", Raw: `'raw'`}))
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", `""`},
		{"symbol", `"symbol"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"a\nb\tc", `"a\nb\tc"`},
		{"\x01", `"\x01"`},
		{"\u2028", `"\u2028"`},
		{"\u00e9", "\"\u00e9\""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, quote(tt.in))
		})
	}
}

func id(name string) *ast.Ident {
	return &ast.Ident{Name: name}
}

func bin(op ast.BinaryOp, left, right ast.Expr) *ast.Binary {
	return &ast.Binary{Op: op, Left: left, Right: right}
}
