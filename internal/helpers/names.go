package helpers

import "github.com/roach88/jscompat/internal/ast"

// Names returns every identifier m declares or references, including
// function, class, parameter, catch and import bindings. Property names of
// non-computed member accesses are included too; over-reserving only costs
// a numbered helper name.
func Names(m *ast.Module) map[string]bool {
	names := make(map[string]bool)
	addParams := func(params []ast.Param) {
		for _, p := range params {
			if p.Name != "" {
				names[p.Name] = true
			}
		}
	}

	ast.Inspect(m, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Ident:
			names[n.Name] = true
		case *ast.Fn:
			if n.Name != "" {
				names[n.Name] = true
			}
			addParams(n.Params)
		case *ast.Arrow:
			addParams(n.Params)
		case *ast.Class:
			if n.Name != "" {
				names[n.Name] = true
			}
		case *ast.VarDecl:
			for _, d := range n.Decls {
				if d.Name != "" {
					names[d.Name] = true
				}
			}
		case *ast.Try:
			if n.Param != "" {
				names[n.Param] = true
			}
		case *ast.Import:
			if n.Default != "" {
				names[n.Default] = true
			}
			if n.Namespace != "" {
				names[n.Namespace] = true
			}
			for _, spec := range n.Named {
				names[spec.Local] = true
			}
		}
		return true
	})
	return names
}
