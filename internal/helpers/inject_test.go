package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/jscompat/internal/ast"
)

func testModule() *ast.Module {
	return &ast.Module{
		Span: ast.Span{Lo: 0, Hi: 2},
		Body: []ast.Stmt{&ast.ExprStmt{Expr: &ast.Ident{Name: "x"}}},
	}
}

func TestInject_EmptySet(t *testing.T) {
	m := testModule()
	out, err := Inject(context.Background(), m, NewSet(), Options{Mode: ModeInline})
	require.NoError(t, err)
	assert.Same(t, m, out)
}

func TestInject_Inline(t *testing.T) {
	m := testModule()
	set := NewSet()
	set.Ref(ast.DummySpan, "typeof")
	set.Ref(ast.DummySpan, "typeof")

	out, err := Inject(context.Background(), m, set, Options{Mode: ModeInline})
	require.NoError(t, err)
	require.Len(t, out.Body, 2, "helper defined once regardless of use count")

	decl, ok := out.Body[0].(*ast.FnDecl)
	require.True(t, ok, "got %T", out.Body[0])
	assert.Equal(t, "_typeof", decl.Fn.Name)
	assert.Same(t, m.Body[0], out.Body[1])
	assert.Equal(t, m.Span, out.Span)

	assert.Len(t, m.Body, 1, "input module untouched")
}

func TestInject_DefaultModeIsInline(t *testing.T) {
	set := NewSet()
	set.Ref(ast.DummySpan, "typeof")

	out, err := Inject(context.Background(), testModule(), set, Options{})
	require.NoError(t, err)
	_, ok := out.Body[0].(*ast.FnDecl)
	assert.True(t, ok)
}

func TestInject_Import(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"default source", "", "@jscompat/helpers/_typeof"},
		{"custom source", "runtime/helpers", "runtime/helpers/_typeof"},
		{"trailing slash", "runtime/helpers/", "runtime/helpers/_typeof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewSet()
			set.Ref(ast.DummySpan, "typeof")

			out, err := Inject(context.Background(), testModule(), set, Options{Mode: ModeImport, Source: tt.source})
			require.NoError(t, err)
			require.Len(t, out.Body, 2)
			assert.Equal(t, &ast.Import{Default: "_typeof", Source: tt.want}, out.Body[0])
		})
	}
}

func TestInject_UnknownMode(t *testing.T) {
	set := NewSet()
	set.Ref(ast.DummySpan, "typeof")

	_, err := Inject(context.Background(), testModule(), set, Options{Mode: "bundle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown helper mode "bundle"`)
}

func TestInject_AfterDirectives(t *testing.T) {
	directive := func(raw string) ast.Stmt {
		return &ast.ExprStmt{Expr: &ast.Str{Value: raw[1 : len(raw)-1], Raw: raw}}
	}
	m := &ast.Module{Body: []ast.Stmt{
		directive(`"use strict"`),
		directive(`'use asm'`),
		&ast.ExprStmt{Expr: &ast.Ident{Name: "x"}},
	}}
	set := NewSet()
	set.Ref(ast.DummySpan, "typeof")

	out, err := Inject(context.Background(), m, set, Options{Mode: ModeImport})
	require.NoError(t, err)

	require.Len(t, out.Body, 4)
	assert.Same(t, m.Body[0], out.Body[0])
	assert.Same(t, m.Body[1], out.Body[1])
	assert.IsType(t, &ast.Import{}, out.Body[2])
	assert.Same(t, m.Body[2], out.Body[3])
}

func TestDirectiveCount(t *testing.T) {
	str := &ast.Str{Value: "use strict", Raw: `"use strict"`}
	tests := []struct {
		name string
		body []ast.Stmt
		want int
	}{
		{"empty", nil, 0},
		{"only directive", []ast.Stmt{&ast.ExprStmt{Expr: str}}, 1},
		{"parenthesized string", []ast.Stmt{&ast.ExprStmt{Expr: &ast.Paren{Expr: str}}}, 0},
		{"synthesized string", []ast.Stmt{&ast.ExprStmt{Expr: &ast.Str{Value: "use strict"}}}, 0},
		{"directive after code", []ast.Stmt{&ast.Empty{}, &ast.ExprStmt{Expr: str}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DirectiveCount(&ast.Module{Body: tt.body}))
		})
	}
}

func TestInject_FreshNameRenamesDefinition(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{
		&ast.VarDecl{Kind: "var", Decls: []ast.Declarator{{Name: "_typeof", Init: &ast.Num{Raw: "5"}}}},
	}}
	set := NewSetFor(m)
	set.Ref(ast.DummySpan, "typeof")

	out, err := Inject(context.Background(), m, set, Options{Mode: ModeInline})
	require.NoError(t, err)

	decl, ok := out.Body[0].(*ast.FnDecl)
	require.True(t, ok, "got %T", out.Body[0])
	assert.Equal(t, "_typeof2", decl.Fn.Name)

	def, err := catalog["typeof"].Definition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "_typeof", def[0].(*ast.FnDecl).Fn.Name, "shared definition untouched")
}

func TestInject_FreshNameImport(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{&ast.ExprStmt{Expr: &ast.Ident{Name: "_typeof"}}}}
	set := NewSetFor(m)
	set.Ref(ast.DummySpan, "typeof")

	out, err := Inject(context.Background(), m, set, Options{Mode: ModeImport})
	require.NoError(t, err)
	assert.Equal(t, &ast.Import{Default: "_typeof2", Source: "@jscompat/helpers/_typeof"}, out.Body[0])
}
