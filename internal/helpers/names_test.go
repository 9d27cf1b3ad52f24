package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/jscompat/internal/ast"
	"github.com/roach88/jscompat/internal/parser"
)

func TestNames(t *testing.T) {
	src := `import def, { a as b } from "m";
import * as ns from "n";
var v = 1;
function f(p, q = 2, ...r) {}
class C {}
try {} catch (e) {}
var g = (ap) => ap;
o.prop;
`
	m, err := parser.Parse(context.Background(), "names.js", []byte(src))
	require.NoError(t, err)

	names := Names(m)

	for _, want := range []string{"def", "b", "ns", "v", "f", "p", "q", "r", "C", "e", "g", "ap", "o", "prop"} {
		assert.True(t, names[want], want)
	}
	assert.False(t, names["a"], "imported name is not a local binding")
}

func TestSet_NameAvoidsModuleBindings(t *testing.T) {
	tests := []struct {
		name     string
		reserved []string
		want     string
	}{
		{"free", nil, "_typeof"},
		{"taken", []string{"_typeof"}, "_typeof2"},
		{"numbered taken too", []string{"_typeof", "_typeof2", "_typeof3"}, "_typeof4"},
		{"unrelated", []string{"typeof", "_typeof_"}, "_typeof"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &ast.Module{}
			for _, name := range tt.reserved {
				m.Body = append(m.Body, &ast.ExprStmt{Expr: &ast.Ident{Name: name}})
			}
			s := NewSetFor(m)

			assert.Equal(t, tt.want, s.Name("typeof"))
			assert.Equal(t, &ast.Ident{Name: tt.want}, s.Ref(ast.DummySpan, "typeof"))
		})
	}
}

func TestSet_NameIsStable(t *testing.T) {
	s := NewSet()
	assert.Equal(t, s.Name("typeof"), s.Name("typeof"))
	assert.Zero(t, s.Count(), "naming is not a use")
}
