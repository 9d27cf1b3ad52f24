package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/roach88/jscompat/internal/ast"
)

// class lowers both class declarations and class expressions.
func (c *converter) class(n *sitter.Node) (*ast.Class, error) {
	class := &ast.Class{Span: span(n)}
	if name := n.ChildByFieldName("name"); name != nil {
		class.Name = c.text(name)
	}

	for _, child := range named(n) {
		switch child.Type() {
		case "decorator":
			return nil, c.unsupported(child, "decorator")
		case "class_heritage":
			super, err := c.firstExpr(child)
			if err != nil {
				return nil, err
			}
			class.Super = super
		}
	}

	for _, child := range named(n.ChildByFieldName("body")) {
		m := ast.ClassMember{Span: span(child), Static: hasToken(child, "static")}
		switch child.Type() {
		case "method_definition":
			kind, static, key, computed, fn, err := c.method(child)
			if err != nil {
				return nil, err
			}
			m.Kind, m.Key, m.Computed, m.Value = kind, key, computed, fn
			m.Static = m.Static || static

		case "field_definition":
			key, computed, err := c.propKey(child.ChildByFieldName("property"))
			if err != nil {
				return nil, err
			}
			m.Kind, m.Key, m.Computed = ast.MemberField, key, computed
			if value := child.ChildByFieldName("value"); value != nil {
				m.Value, err = c.expr(value)
				if err != nil {
					return nil, err
				}
			}

		case "class_static_block":
			block, err := c.block(child.ChildByFieldName("body"))
			if err != nil {
				return nil, err
			}
			m.Kind, m.Static, m.Body = ast.MemberStaticBlock, true, block.Body

		default:
			return nil, c.unsupported(child, "class member "+child.Type())
		}
		class.Members = append(class.Members, m)
	}
	return class, nil
}

// method lowers a method_definition of a class body or object literal.
// The grammar folds `static get` into a single token.
func (c *converter) method(n *sitter.Node) (kind ast.MemberKind, static bool, key ast.Expr, computed bool, fn *ast.Fn, err error) {
	for _, child := range named(n) {
		if child.Type() == "decorator" {
			return "", false, nil, false, nil, c.unsupported(child, "decorator")
		}
	}

	kind = ast.MemberMethod
	switch {
	case hasToken(n, "get"):
		kind = ast.MemberGet
	case hasToken(n, "set"):
		kind = ast.MemberSet
	case hasToken(n, "static get"):
		kind, static = ast.MemberGet, true
	}

	key, computed, err = c.propKey(n.ChildByFieldName("name"))
	if err != nil {
		return "", false, nil, false, nil, err
	}

	fn = &ast.Fn{
		Span:      span(n),
		Async:     hasToken(n, "async"),
		Generator: hasToken(n, "*"),
	}
	fn.Params, err = c.params(n.ChildByFieldName("parameters"))
	if err != nil {
		return "", false, nil, false, nil, err
	}
	body, err := c.block(n.ChildByFieldName("body"))
	if err != nil {
		return "", false, nil, false, nil, err
	}
	fn.Body = body.Body
	return kind, static, key, computed, fn, nil
}

func (c *converter) source(n *sitter.Node) string {
	if src := n.ChildByFieldName("source"); src != nil {
		return unquote(c.text(src))
	}
	return ""
}

func (c *converter) importStmt(n *sitter.Node) (ast.Stmt, error) {
	s := &ast.Import{Span: span(n), Source: c.source(n)}

	for _, clause := range named(n) {
		if clause.Type() != "import_clause" {
			continue
		}
		for _, child := range named(clause) {
			switch child.Type() {
			case "identifier":
				s.Default = c.text(child)
			case "namespace_import":
				inner := named(child)
				if len(inner) != 1 {
					return nil, c.unsupported(child, "namespace import")
				}
				s.Namespace = c.text(inner[0])
			case "named_imports":
				for _, spec := range named(child) {
					if spec.Type() != "import_specifier" {
						continue
					}
					imported := c.text(spec.ChildByFieldName("name"))
					local := imported
					if alias := spec.ChildByFieldName("alias"); alias != nil {
						local = c.text(alias)
					}
					s.Named = append(s.Named, ast.ImportSpec{Span: span(spec), Imported: imported, Local: local})
				}
			default:
				return nil, c.unsupported(child, "import "+child.Type())
			}
		}
	}
	return s, nil
}

func (c *converter) exportStmt(n *sitter.Node) (ast.Stmt, error) {
	s := &ast.Export{
		Span:    span(n),
		Default: hasToken(n, "default"),
		Source:  c.source(n),
	}

	if decl := n.ChildByFieldName("declaration"); decl != nil {
		stmt, err := c.stmt(decl)
		if err != nil {
			return nil, err
		}
		s.Decl = stmt
		return s, nil
	}
	if value := n.ChildByFieldName("value"); value != nil {
		e, err := c.expr(value)
		if err != nil {
			return nil, err
		}
		s.Expr = e
		return s, nil
	}

	s.All = hasToken(n, "*")
	for _, child := range named(n) {
		switch child.Type() {
		case "namespace_export":
			inner := named(child)
			if len(inner) != 1 {
				return nil, c.unsupported(child, "namespace export")
			}
			s.All = true
			s.Namespace = c.text(inner[0])
		case "export_clause":
			s.Specs = []ast.ExportSpec{}
			for _, spec := range named(child) {
				if spec.Type() != "export_specifier" {
					continue
				}
				local := c.text(spec.ChildByFieldName("name"))
				exported := local
				if alias := spec.ChildByFieldName("alias"); alias != nil {
					exported = c.text(alias)
				}
				s.Specs = append(s.Specs, ast.ExportSpec{Span: span(spec), Local: local, Exported: exported})
			}
		}
	}
	return s, nil
}
