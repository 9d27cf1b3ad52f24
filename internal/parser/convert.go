package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/roach88/jscompat/internal/ast"
)

// converter lowers tree-sitter nodes for one source file.
type converter struct {
	file string
	src  []byte
}

func (c *converter) unsupported(n *sitter.Node, kind string) error {
	return &UnsupportedError{File: c.file, Pos: position(n), Kind: kind}
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

// named returns the named children of n, skipping comments.
func named(n *sitter.Node) []*sitter.Node {
	var out []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "comment" {
			continue
		}
		out = append(out, child)
	}
	return out
}

// hasToken reports whether n has a direct anonymous child of the given type.
func hasToken(n *sitter.Node, tok string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.IsNamed() && child.Type() == tok {
			return true
		}
	}
	return false
}

func (c *converter) stmts(n *sitter.Node) ([]ast.Stmt, error) {
	children := named(n)
	out := make([]ast.Stmt, 0, len(children))
	for _, child := range children {
		s, err := c.stmt(child)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (c *converter) stmt(n *sitter.Node) (ast.Stmt, error) {
	switch n.Type() {
	case "expression_statement":
		e, err := c.firstExpr(n)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Span: span(n), Expr: e}, nil

	case "lexical_declaration", "variable_declaration":
		return c.varDecl(n)

	case "function_declaration", "generator_function_declaration":
		fn, err := c.fn(n)
		if err != nil {
			return nil, err
		}
		return &ast.FnDecl{Span: span(n), Fn: fn}, nil

	case "return_statement":
		ret := &ast.Return{Span: span(n)}
		if children := named(n); len(children) > 0 {
			arg, err := c.expr(children[0])
			if err != nil {
				return nil, err
			}
			ret.Arg = arg
		}
		return ret, nil

	case "if_statement":
		return c.ifStmt(n)

	case "statement_block":
		return c.block(n)

	case "while_statement":
		test, err := c.condition(n.ChildByFieldName("condition"))
		if err != nil {
			return nil, err
		}
		body, err := c.stmt(n.ChildByFieldName("body"))
		if err != nil {
			return nil, err
		}
		return &ast.While{Span: span(n), Test: test, Body: body}, nil

	case "for_statement":
		return c.forStmt(n)

	case "throw_statement":
		arg, err := c.firstExpr(n)
		if err != nil {
			return nil, err
		}
		return &ast.Throw{Span: span(n), Arg: arg}, nil

	case "try_statement":
		return c.tryStmt(n)

	case "break_statement":
		s := &ast.Break{Span: span(n)}
		if label := n.ChildByFieldName("label"); label != nil {
			s.Label = c.text(label)
		}
		return s, nil

	case "continue_statement":
		s := &ast.Continue{Span: span(n)}
		if label := n.ChildByFieldName("label"); label != nil {
			s.Label = c.text(label)
		}
		return s, nil

	case "empty_statement":
		return &ast.Empty{Span: span(n)}, nil

	case "do_statement":
		body, err := c.stmt(n.ChildByFieldName("body"))
		if err != nil {
			return nil, err
		}
		test, err := c.condition(n.ChildByFieldName("condition"))
		if err != nil {
			return nil, err
		}
		return &ast.DoWhile{Span: span(n), Body: body, Test: test}, nil

	case "for_in_statement":
		return c.forInStmt(n)

	case "switch_statement":
		return c.switchStmt(n)

	case "labeled_statement":
		body, err := c.stmt(n.ChildByFieldName("body"))
		if err != nil {
			return nil, err
		}
		return &ast.Labeled{Span: span(n), Label: c.text(n.ChildByFieldName("label")), Body: body}, nil

	case "class_declaration":
		class, err := c.class(n)
		if err != nil {
			return nil, err
		}
		return &ast.ClassDecl{Span: span(n), Class: class}, nil

	case "debugger_statement":
		return &ast.Debugger{Span: span(n)}, nil

	case "import_statement":
		return c.importStmt(n)

	case "export_statement":
		return c.exportStmt(n)

	default:
		return nil, c.unsupported(n, n.Type())
	}
}

func (c *converter) firstExpr(n *sitter.Node) (ast.Expr, error) {
	children := named(n)
	if len(children) == 0 {
		return nil, c.unsupported(n, "empty "+n.Type())
	}
	return c.expr(children[0])
}

// condition unwraps the parenthesized_expression around if/while tests.
func (c *converter) condition(n *sitter.Node) (ast.Expr, error) {
	if n.Type() == "parenthesized_expression" {
		return c.firstExpr(n)
	}
	return c.expr(n)
}

func (c *converter) varDecl(n *sitter.Node) (ast.Stmt, error) {
	decl := &ast.VarDecl{Span: span(n), Kind: n.Child(0).Type()}
	for _, child := range named(n) {
		if child.Type() != "variable_declarator" {
			continue
		}
		d := ast.Declarator{Span: span(child)}
		name := child.ChildByFieldName("name")
		if name.Type() == "identifier" {
			d.Name = c.text(name)
		} else {
			target, err := c.pattern(name)
			if err != nil {
				return nil, err
			}
			d.Pattern = target
		}
		if value := child.ChildByFieldName("value"); value != nil {
			init, err := c.expr(value)
			if err != nil {
				return nil, err
			}
			d.Init = init
		}
		decl.Decls = append(decl.Decls, d)
	}
	return decl, nil
}

func (c *converter) ifStmt(n *sitter.Node) (ast.Stmt, error) {
	test, err := c.condition(n.ChildByFieldName("condition"))
	if err != nil {
		return nil, err
	}
	cons, err := c.stmt(n.ChildByFieldName("consequence"))
	if err != nil {
		return nil, err
	}
	s := &ast.If{Span: span(n), Test: test, Cons: cons}
	if alt := n.ChildByFieldName("alternative"); alt != nil {
		// else_clause wraps the statement
		if alt.Type() == "else_clause" {
			children := named(alt)
			if len(children) == 0 {
				return nil, c.unsupported(alt, "empty else clause")
			}
			alt = children[0]
		}
		s.Alt, err = c.stmt(alt)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (c *converter) block(n *sitter.Node) (*ast.Block, error) {
	body, err := c.stmts(n)
	if err != nil {
		return nil, err
	}
	return &ast.Block{Span: span(n), Body: body}, nil
}

func (c *converter) forStmt(n *sitter.Node) (ast.Stmt, error) {
	s := &ast.For{Span: span(n)}

	if init := n.ChildByFieldName("initializer"); init != nil {
		switch init.Type() {
		case "lexical_declaration", "variable_declaration", "expression_statement":
			stmt, err := c.stmt(init)
			if err != nil {
				return nil, err
			}
			s.Init = stmt
		case "empty_statement":
		default:
			e, err := c.expr(init)
			if err != nil {
				return nil, err
			}
			s.Init = &ast.ExprStmt{Span: span(init), Expr: e}
		}
	}

	if cond := n.ChildByFieldName("condition"); cond != nil {
		switch cond.Type() {
		case "expression_statement":
			e, err := c.firstExpr(cond)
			if err != nil {
				return nil, err
			}
			s.Test = e
		case "empty_statement":
		default:
			e, err := c.expr(cond)
			if err != nil {
				return nil, err
			}
			s.Test = e
		}
	}

	if inc := n.ChildByFieldName("increment"); inc != nil {
		e, err := c.expr(inc)
		if err != nil {
			return nil, err
		}
		s.Update = e
	}

	body, err := c.stmt(n.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	s.Body = body
	return s, nil
}

func (c *converter) tryStmt(n *sitter.Node) (ast.Stmt, error) {
	block, err := c.block(n.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	s := &ast.Try{Span: span(n), Block: block}

	if handler := n.ChildByFieldName("handler"); handler != nil {
		if param := handler.ChildByFieldName("parameter"); param != nil {
			if param.Type() == "identifier" {
				s.Param = c.text(param)
			} else {
				s.ParamPattern, err = c.pattern(param)
				if err != nil {
					return nil, err
				}
			}
		}
		s.Handler, err = c.block(handler.ChildByFieldName("body"))
		if err != nil {
			return nil, err
		}
	}

	if finalizer := n.ChildByFieldName("finalizer"); finalizer != nil {
		s.Finalizer, err = c.block(finalizer.ChildByFieldName("body"))
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// forInStmt handles both for-in and for-of. The declaration keyword, the
// operator and await are anonymous tokens of the statement itself.
func (c *converter) forInStmt(n *sitter.Node) (ast.Stmt, error) {
	s := &ast.ForIn{
		Span:  span(n),
		Of:    hasToken(n, "of"),
		Await: hasToken(n, "await"),
	}
	for _, kind := range []string{"var", "let", "const"} {
		if hasToken(n, kind) {
			s.Kind = kind
			break
		}
	}

	left, err := c.pattern(n.ChildByFieldName("left"))
	if err != nil {
		return nil, err
	}
	s.Left = left
	s.Right, err = c.expr(n.ChildByFieldName("right"))
	if err != nil {
		return nil, err
	}
	s.Body, err = c.stmt(n.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (c *converter) switchStmt(n *sitter.Node) (ast.Stmt, error) {
	disc, err := c.condition(n.ChildByFieldName("value"))
	if err != nil {
		return nil, err
	}
	s := &ast.Switch{Span: span(n), Disc: disc}

	for _, child := range named(n.ChildByFieldName("body")) {
		sc := ast.SwitchCase{Span: span(child)}
		body := named(child)
		switch child.Type() {
		case "switch_case":
			// case value comes first, then the statements
			if len(body) == 0 {
				return nil, c.unsupported(child, "empty switch case")
			}
			sc.Test, err = c.expr(body[0])
			if err != nil {
				return nil, err
			}
			body = body[1:]
		case "switch_default":
		default:
			return nil, c.unsupported(child, child.Type())
		}
		for _, b := range body {
			stmt, err := c.stmt(b)
			if err != nil {
				return nil, err
			}
			sc.Body = append(sc.Body, stmt)
		}
		s.Cases = append(s.Cases, sc)
	}
	return s, nil
}
