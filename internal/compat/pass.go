// Package compat holds the compatibility passes that rewrite modern
// JavaScript constructs into forms older runtimes evaluate correctly.
//
// Passes are pure tree-to-tree functions. The only state they touch is the
// HelperRequester handed to them, which belongs to the helper injection
// subsystem.
package compat

import (
	"fmt"
	"sort"

	"github.com/roach88/jscompat/internal/ast"
)

// Revision identifies the output of the registered passes. It changes
// whenever a pass rewrites the same input differently.
const Revision = 2

// Pass is one rewrite over a whole module.
type Pass interface {
	Name() string
	FoldModule(m *ast.Module) *ast.Module
}

// HelperRequester hands out references to shared runtime helpers. The
// implementation records which helpers a module uses so each is defined once.
type HelperRequester interface {
	Ref(span ast.Span, category string) ast.Expr
	// Name returns the binding Ref will use for category, without
	// recording a use.
	Name(category string) string
}

// Constructor builds a pass bound to a module's helper requester.
type Constructor func(h HelperRequester) Pass

var registry = map[string]Constructor{
	PassTypeOfSymbol: func(h HelperRequester) Pass { return NewTypeOfSymbol(h) },
}

// New builds the registered pass called name.
func New(name string, h HelperRequester) (Pass, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown pass %q: must be one of %v", name, Names())
	}
	return ctor(h), nil
}

// Names returns the registered pass names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
