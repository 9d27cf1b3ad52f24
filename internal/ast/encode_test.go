package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode_Unary(t *testing.T) {
	e := &Unary{Span: Span{Lo: 0, Hi: 8}, Op: OpTypeof, Arg: &Ident{Span: Span{Lo: 7, Hi: 8}, Name: "x"}}

	assert.Equal(t, map[string]any{
		"type": "Unary",
		"span": []any{int64(0), int64(8)},
		"op":   "typeof",
		"arg": map[string]any{
			"type": "Ident",
			"span": []any{int64(7), int64(8)},
			"name": "x",
		},
	}, Encode(e))
}

func TestEncode_OmitsAbsentOptionals(t *testing.T) {
	m := Encode(&Return{})
	_, hasArg := m["arg"]
	assert.False(t, hasArg)

	m = Encode(&Str{Value: "v"})
	_, hasRaw := m["raw"]
	assert.False(t, hasRaw)
}

func TestEncode_Holes(t *testing.T) {
	m := Encode(&Array{Elems: []Expr{nil}})
	assert.Equal(t, []any{map[string]any{"type": "Hole"}}, m["elems"])
}

func TestEncode_StructurallyEqualTreesEncodeEqually(t *testing.T) {
	build := func() *Module {
		return &Module{Body: []Stmt{&ExprStmt{Expr: &Call{Callee: id("f"), Args: []Expr{&Num{Raw: "1"}}}}}}
	}
	assert.Equal(t, Encode(build()), Encode(build()))
}

func TestSpan(t *testing.T) {
	assert.True(t, DummySpan.IsDummy())
	assert.False(t, Span{Lo: 1, Hi: 2}.IsDummy())
	assert.Equal(t, "3..9", Span{Lo: 3, Hi: 9}.String())
}

func TestEncode_Switch(t *testing.T) {
	s := &Switch{
		Span: Span{Lo: 0, Hi: 30},
		Disc: &Ident{Span: Span{Lo: 8, Hi: 9}, Name: "x"},
		Cases: []SwitchCase{
			{Span: Span{Lo: 12, Hi: 28}},
		},
	}

	m := Encode(s)

	assert.Equal(t, "Switch", m["type"])
	assert.Equal(t, []any{map[string]any{
		"span": []any{int64(12), int64(28)},
		"body": []any{},
	}}, m["cases"])
}

func TestEncode_PropMethodOnlyWhenSet(t *testing.T) {
	obj := Encode(&Object{Props: []Prop{
		{Key: id("a"), Value: id("b")},
		{Key: id("m"), Value: &Fn{}, Method: MemberGet},
	}})

	props := obj["props"].([]any)
	_, plain := props[0].(map[string]any)["method"]
	assert.False(t, plain)
	assert.Equal(t, "get", props[1].(map[string]any)["method"])
}
