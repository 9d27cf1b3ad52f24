package helpers

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/jscompat/internal/ast"
)

func TestLookup(t *testing.T) {
	h, ok := Lookup("typeof")
	require.True(t, ok)
	assert.Equal(t, "_typeof", h.Name)
	assert.Equal(t, "typeof", h.Category)
	assert.NotEmpty(t, h.Summary)

	_, ok = Lookup("classCallCheck")
	assert.False(t, ok)
}

func TestAll_Sorted(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Category, all[i].Category)
	}
}

func TestHelper_Source(t *testing.T) {
	h, _ := Lookup("typeof")
	src, err := h.Source()
	require.NoError(t, err)
	assert.Contains(t, src, "function _typeof(obj)")
	assert.Contains(t, src, `"symbol"`)
	assert.Contains(t, src, "Symbol.prototype")
}

func TestHelper_SourceMissing(t *testing.T) {
	_, err := Helper{Category: "missing", Name: "_missing"}.Source()
	assert.Error(t, err)
}

func TestHelper_Definition(t *testing.T) {
	h, _ := Lookup("typeof")
	def, err := h.Definition(context.Background())
	require.NoError(t, err)
	require.Len(t, def, 1)

	decl, ok := def[0].(*ast.FnDecl)
	require.True(t, ok, "got %T", def[0])
	assert.Equal(t, "_typeof", decl.Fn.Name)
	require.Len(t, decl.Fn.Params, 1)
	assert.Equal(t, "obj", decl.Fn.Params[0].Name)

	again, err := h.Definition(context.Background())
	require.NoError(t, err)
	assert.Same(t, def[0], again[0], "parsed definition is cached")
}

func TestSet_Ref(t *testing.T) {
	s := NewSet()
	span := ast.Span{Lo: 3, Hi: 9}

	ref := s.Ref(span, "typeof")
	assert.Equal(t, &ast.Ident{Span: span, Name: "_typeof"}, ref)

	s.Ref(ast.DummySpan, "typeof")
	assert.Equal(t, 2, s.Uses("typeof"))
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, []string{"typeof"}, s.Used())
}

func TestSet_Empty(t *testing.T) {
	s := NewSet()
	assert.Empty(t, s.Used())
	assert.Zero(t, s.Count())
	assert.Zero(t, s.Uses("typeof"))
}

func TestSet_RefUnknownPanics(t *testing.T) {
	s := NewSet()
	assert.PanicsWithValue(t, `helpers: unknown helper category "nope"`, func() {
		s.Ref(ast.DummySpan, "nope")
	})
}

func TestSet_Concurrent(t *testing.T) {
	s := NewSet()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				s.Ref(ast.DummySpan, "typeof")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 160, s.Count())
}
