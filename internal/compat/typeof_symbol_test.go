package compat

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/jscompat/internal/ast"
	"github.com/roach88/jscompat/internal/codegen"
	"github.com/roach88/jscompat/internal/parser"
)

// recorder is a HelperRequester that counts requests per category.
type recorder struct {
	refs  map[string]int
	spans []ast.Span
}

func newRecorder() *recorder { return &recorder{refs: map[string]int{}} }

func (r *recorder) Name(category string) string { return "_" + category }

func (r *recorder) Ref(span ast.Span, category string) ast.Expr {
	r.refs[category]++
	r.spans = append(r.spans, span)
	return &ast.Ident{Span: span, Name: "_" + category}
}

func parseModule(t *testing.T, src string) *ast.Module {
	t.Helper()
	m, err := parser.Parse(context.Background(), "test.js", []byte(src))
	require.NoError(t, err)
	return m
}

func transform(t *testing.T, src string) (string, *recorder) {
	t.Helper()
	rec := newRecorder()
	out := NewTypeOfSymbol(rec).FoldModule(parseModule(t, src))
	return codegen.Print(out), rec
}

func TestTypeOfSymbol_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		rewrites int
	}{
		{"protected literal on the right", `typeof window !== 'undefined';`, `typeof window !== 'undefined';`, 0},
		{"protected literal on the left", `'undefined' !== typeof window;`, `'undefined' !== typeof window;`, 0},
		{"symbol is not protected", `typeof Symbol() === "symbol";`, `_typeof(Symbol()) === "symbol";`, 1},
		{"standalone", `typeof x;`, `_typeof(x);`, 1},
		{"protected number", `typeof x === "number";`, `typeof x === "number";`, 0},
		{"near miss", `typeof x === "symbol2";`, `_typeof(x) === "symbol2";`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, rec := transform(t, tt.input)
			assert.Equal(t, tt.expected+"\n", out)
			assert.Equal(t, tt.rewrites, rec.refs[HelperTypeOf])
		})
	}
}

func TestTypeOfSymbol_EveryOperatorAndTag(t *testing.T) {
	ops := []string{"==", "!=", "===", "!=="}
	tags := []string{"undefined", "object", "boolean", "number", "string", "function"}

	for _, op := range ops {
		for _, tag := range tags {
			left := fmt.Sprintf("typeof x %s %q;", op, tag)
			right := fmt.Sprintf("%q %s typeof x;", tag, op)
			for _, src := range []string{left, right} {
				t.Run(src, func(t *testing.T) {
					out, rec := transform(t, src)
					assert.Equal(t, src+"\n", out)
					assert.Zero(t, rec.refs[HelperTypeOf])
				})
			}
		}
	}
}

func TestTypeOfSymbol_RewrittenComparisons(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// "symbol" is excluded from the protected set.
		{`typeof x == "symbol";`, `_typeof(x) == "symbol";`},
		{`"symbol" === typeof x;`, `"symbol" === _typeof(x);`},
		// Matching is exact and case-sensitive.
		{`typeof x === "Number";`, `_typeof(x) === "Number";`},
		{`typeof x === " number";`, `_typeof(x) === " number";`},
		{`typeof x === "";`, `_typeof(x) === "";`},
		// Only equality operators trigger the exclusion.
		{`typeof x < "number";`, `_typeof(x) < "number";`},
		{`typeof x + "number";`, `_typeof(x) + "number";`},
		{`typeof x || "number";`, `_typeof(x) || "number";`},
		// Only raw immediate operands are considered.
		{`typeof x === ("number");`, `_typeof(x) === ("number");`},
		{`(typeof x) === "number";`, `(_typeof(x)) === "number";`},
		{`typeof x === typeof y;`, `_typeof(x) === _typeof(y);`},
		{`typeof x === y;`, `_typeof(x) === y;`},
		{"typeof x === `number`;", "_typeof(x) === `number`;"},
		// Non-string literals never match.
		{`typeof x === 1;`, `_typeof(x) === 1;`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out, rec := transform(t, tt.input)
			assert.Equal(t, tt.expected+"\n", out)
			assert.NotZero(t, rec.refs[HelperTypeOf])
		})
	}
}

func TestTypeOfSymbol_ProtectedComparisonIsNotEntered(t *testing.T) {
	// The whole comparison is returned as-is, so the typeof nested in the
	// operand of the protected typeof stays too.
	out, rec := transform(t, `typeof (typeof x) === "string";`)
	assert.Equal(t, "typeof (typeof x) === \"string\";\n", out)
	assert.Zero(t, rec.refs[HelperTypeOf])
}

func TestTypeOfSymbol_NestedContexts(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		rewrites int
	}{
		{"nested typeof", `typeof typeof x;`, `_typeof(_typeof(x));`, 2},
		{"call argument", `f(typeof a, typeof b);`, `f(_typeof(a), _typeof(b));`, 2},
		{"inside protected comparison sibling",
			`typeof a === "object" && typeof b;`,
			`typeof a === "object" && _typeof(b);`, 1},
		{"conditional", `var t = c ? typeof a : "none";`, `var t = c ? _typeof(a) : "none";`, 1},
		{"arrow body", `var f = (v) => typeof v;`, `var f = (v) => _typeof(v);`, 1},
		{"default parameter", `function f(a = typeof b) {}`, `function f(a = _typeof(b)) {}`, 1},
		{"object value", `var o = { k: typeof v };`, `var o = { k: _typeof(v) };`, 1},
		{"computed member", `o[typeof k];`, `o[_typeof(k)];`, 1},
		{"template", "`${typeof v}`;", "`${_typeof(v)}`;", 1},
		{"complex operand compared to literal",
			`typeof x + "" === "string";`,
			`_typeof(x) + "" === "string";`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, rec := transform(t, tt.input)
			assert.Equal(t, tt.expected+"\n", out)
			assert.Equal(t, tt.rewrites, rec.refs[HelperTypeOf])
		})
	}
}

func TestTypeOfSymbol_FunctionBodies(t *testing.T) {
	src := `function check(v) {
  if (typeof v === "object") {
    return typeof v.key;
  }
  try {
    throw typeof v;
  } catch (e) {
    while (typeof e !== "string") {}
  }
}
`
	expected := `function check(v) {
  if (typeof v === "object") {
    return _typeof(v.key);
  }
  try {
    throw _typeof(v);
  } catch (e) {
    while (typeof e !== "string") {}
  }
}
`
	out, rec := transform(t, src)
	assert.Equal(t, expected, out)
	assert.Equal(t, 2, rec.refs[HelperTypeOf])
}

func TestTypeOfSymbol_NoTypeofIsIdentity(t *testing.T) {
	m := parseModule(t, "var a = f(b, c) + 1;\nif (a) { g(); }\n")
	rec := newRecorder()

	out := NewTypeOfSymbol(rec).FoldModule(m)

	assert.Equal(t, ast.Encode(m), ast.Encode(out))
	assert.Empty(t, rec.refs)
}

func TestTypeOfSymbol_FoldExprReturnsSameNodeWithoutTypeof(t *testing.T) {
	e := &ast.Binary{Op: ast.OpAdd, Left: &ast.Ident{Name: "a"}, Right: &ast.Num{Raw: "1"}}

	assert.Same(t, e, NewTypeOfSymbol(newRecorder()).FoldExpr(e))
}

func TestTypeOfSymbol_CallInheritsSpan(t *testing.T) {
	span := ast.Span{Lo: 4, Hi: 12}
	e := &ast.Unary{Span: span, Op: ast.OpTypeof, Arg: &ast.Ident{Span: ast.Span{Lo: 11, Hi: 12}, Name: "x"}}
	rec := newRecorder()

	out := NewTypeOfSymbol(rec).FoldExpr(e)

	call, ok := out.(*ast.Call)
	require.True(t, ok, "got %T", out)
	assert.Equal(t, span, call.Span)
	assert.Equal(t, span, call.Callee.Pos())
	assert.Equal(t, []ast.Span{span}, rec.spans)
	require.Len(t, call.Args, 1)
	assert.Same(t, e.Arg, call.Args[0])
}

func TestTypeOfSymbol_DoesNotMutateInput(t *testing.T) {
	m := parseModule(t, "var t = typeof x;\n")
	before := ast.Encode(m)

	NewTypeOfSymbol(newRecorder()).FoldModule(m)

	assert.Equal(t, before, ast.Encode(m))
}

func TestTypeOfSymbol_Idempotent(t *testing.T) {
	once, _ := transform(t, "typeof x === \"symbol\";\n")

	twice, rec := transform(t, once)
	assert.Equal(t, once, twice)
	assert.Zero(t, rec.refs[HelperTypeOf])
}

func TestContainsTypeof(t *testing.T) {
	assert.True(t, containsTypeof(&ast.Unary{Op: ast.OpTypeof, Arg: &ast.Ident{Name: "x"}}))
	assert.False(t, containsTypeof(&ast.Unary{Op: ast.OpVoid, Arg: &ast.Ident{Name: "x"}}))
	assert.True(t, containsTypeof(&ast.Fn{Body: []ast.Stmt{
		&ast.Return{Arg: &ast.Unary{Op: ast.OpTypeof, Arg: &ast.Ident{Name: "x"}}},
	}}))
	assert.False(t, containsTypeof(&ast.Str{Value: "typeof"}))
}

func TestTypeOfSymbol_HelperDefinitionIsNotEntered(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"function declaration", "function _typeof(obj) {\n  return typeof obj;\n}\n"},
		{"numbered declaration", "function _typeof2(obj) {\n  return typeof obj;\n}\n"},
		{"variable", "var _typeof = function(obj) {\n  return typeof obj;\n};\n"},
		{"named function expression", "var check = function _typeof(obj) {\n  return typeof obj;\n};\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, rec := transform(t, tt.input)
			assert.Equal(t, tt.input, out)
			assert.Zero(t, rec.refs[HelperTypeOf])
		})
	}
}

func TestTypeOfSymbol_SimilarNamesAreRewritten(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"function typeofx(v) {\n  return typeof v;\n}\n", "function typeofx(v) {\n  return _typeof(v);\n}\n"},
		{"var _typeofv = typeof v;\n", "var _typeofv = _typeof(v);\n"},
		{"var t = typeof _typeof;\n", "var t = _typeof(_typeof);\n"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out, rec := transform(t, tt.input)
			assert.Equal(t, tt.expected, out)
			assert.Equal(t, 1, rec.refs[HelperTypeOf])
		})
	}
}

func TestTypeOfSymbol_HelperSkipLeavesRestOfModule(t *testing.T) {
	src := "function _typeof(obj) {\n  return typeof obj;\n}\nvar t = typeof x;\n"
	expected := "function _typeof(obj) {\n  return typeof obj;\n}\nvar t = _typeof(x);\n"

	out, rec := transform(t, src)
	assert.Equal(t, expected, out)
	assert.Equal(t, 1, rec.refs[HelperTypeOf])
}

func TestTypeOfSymbol_ModernSyntax(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		rewrites int
	}{
		{"switch discriminant",
			"switch (typeof x) {\n  case \"symbol\":\n    f();\n}\n",
			"switch (_typeof(x)) {\n  case \"symbol\":\n    f();\n}\n", 1},
		{"switch case body",
			"switch (k) {\n  case 1:\n    t = typeof x;\n  default:\n    t = typeof y === \"string\";\n}\n",
			"switch (k) {\n  case 1:\n    t = _typeof(x);\n  default:\n    t = typeof y === \"string\";\n}\n", 1},
		{"class method",
			"class A {\n  m(v) {\n    return typeof v;\n  }\n}\n",
			"class A {\n  m(v) {\n    return _typeof(v);\n  }\n}\n", 1},
		{"class field",
			"class A {\n  static t = typeof x;\n}\n",
			"class A {\n  static t = _typeof(x);\n}\n", 1},
		{"destructuring default",
			"var { a = typeof x } = o;\n",
			"var { a = _typeof(x) } = o;\n", 1},
		{"parameter pattern default",
			"function f([a = typeof x]) {}\n",
			"function f([a = _typeof(x)]) {}\n", 1},
		{"tagged template substitution",
			"tag`${typeof x}`;\n",
			"tag`${_typeof(x)}`;\n", 1},
		{"for of right",
			"for (const k of typeof x) {}\n",
			"for (const k of _typeof(x)) {}\n", 1},
		{"do while test",
			"do {} while (typeof x);\n",
			"do {} while (_typeof(x));\n", 1},
		{"labeled body",
			"outer: while (typeof x !== \"undefined\") {}\n",
			"outer: while (typeof x !== \"undefined\") {}\n", 0},
		{"export default",
			"export default typeof x;\n",
			"export default _typeof(x);\n", 1},
		{"object getter",
			"var o = { get t() {\n  return typeof x;\n} };\n",
			"var o = { get t() {\n  return _typeof(x);\n} };\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, rec := transform(t, tt.input)
			assert.Equal(t, tt.expected, out)
			assert.Equal(t, tt.rewrites, rec.refs[HelperTypeOf])
		})
	}
}

func TestIsHelperBinding(t *testing.T) {
	assert.True(t, isHelperBinding("_typeof", "_typeof"))
	assert.True(t, isHelperBinding("_typeof2", "_typeof"))
	assert.True(t, isHelperBinding("_typeof", "_typeof3"))
	assert.False(t, isHelperBinding("_typeofx", "_typeof"))
	assert.False(t, isHelperBinding("typeof", "_typeof"))
	assert.False(t, isHelperBinding("", "_typeof"))
}
