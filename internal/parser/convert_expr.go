package parser

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/roach88/jscompat/internal/ast"
)

func (c *converter) expr(n *sitter.Node) (ast.Expr, error) {
	if n == nil {
		return nil, &UnsupportedError{File: c.file, Pos: Position{Line: 1, Column: 1}, Kind: "missing expression"}
	}

	switch n.Type() {
	case "identifier", "undefined", "private_property_identifier", "import":
		return &ast.Ident{Span: span(n), Name: c.text(n)}, nil
	case "this":
		return &ast.This{Span: span(n)}, nil
	case "super":
		return &ast.Super{Span: span(n)}, nil
	case "true":
		return &ast.Bool{Span: span(n), Value: true}, nil
	case "false":
		return &ast.Bool{Span: span(n), Value: false}, nil
	case "null":
		return &ast.Null{Span: span(n)}, nil
	case "number":
		return &ast.Num{Span: span(n), Raw: c.text(n)}, nil
	case "string":
		raw := c.text(n)
		return &ast.Str{Span: span(n), Value: unquote(raw), Raw: raw}, nil
	case "regex":
		r := &ast.Regex{Span: span(n)}
		if pattern := n.ChildByFieldName("pattern"); pattern != nil {
			r.Pattern = c.text(pattern)
		}
		if flags := n.ChildByFieldName("flags"); flags != nil {
			r.Flags = c.text(flags)
		}
		return r, nil
	case "template_string":
		return c.template(n)
	case "parenthesized_expression":
		inner, err := c.firstExpr(n)
		if err != nil {
			return nil, err
		}
		return &ast.Paren{Span: span(n), Expr: inner}, nil
	case "unary_expression":
		return c.unary(n)
	case "update_expression":
		return c.update(n)
	case "binary_expression":
		return c.binary(n)
	case "assignment_expression", "augmented_assignment_expression":
		return c.assign(n)
	case "ternary_expression":
		return c.ternary(n)
	case "call_expression":
		return c.call(n)
	case "new_expression":
		return c.newExpr(n)
	case "member_expression":
		return c.member(n)
	case "subscript_expression":
		return c.subscript(n)
	case "sequence_expression":
		var exprs []ast.Expr
		if err := c.flattenSequence(n, &exprs); err != nil {
			return nil, err
		}
		return &ast.Seq{Span: span(n), Exprs: exprs}, nil
	case "array":
		return c.array(n)
	case "object":
		return c.object(n)
	case "spread_element":
		arg, err := c.firstExpr(n)
		if err != nil {
			return nil, err
		}
		return &ast.Spread{Span: span(n), Arg: arg}, nil
	case "function", "function_expression", "generator_function":
		return c.fn(n)
	case "class":
		return c.class(n)
	case "meta_property":
		meta, prop, _ := strings.Cut(c.text(n), ".")
		return &ast.MetaProp{Span: span(n), Meta: meta, Prop: prop}, nil
	case "array_pattern", "object_pattern", "assignment_pattern", "rest_pattern":
		return c.pattern(n)
	case "arrow_function":
		return c.arrow(n)
	case "await_expression":
		arg, err := c.firstExpr(n)
		if err != nil {
			return nil, err
		}
		return &ast.Await{Span: span(n), Arg: arg}, nil
	case "yield_expression":
		y := &ast.Yield{Span: span(n), Delegate: hasToken(n, "*")}
		if children := named(n); len(children) > 0 {
			arg, err := c.expr(children[0])
			if err != nil {
				return nil, err
			}
			y.Arg = arg
		}
		return y, nil
	default:
		return nil, c.unsupported(n, n.Type())
	}
}

func (c *converter) unary(n *sitter.Node) (ast.Expr, error) {
	op := ast.UnaryOp(n.ChildByFieldName("operator").Type())
	if !op.IsValid() {
		return nil, c.unsupported(n, "unary operator "+string(op))
	}
	arg, err := c.expr(n.ChildByFieldName("argument"))
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Span: span(n), Op: op, Arg: arg}, nil
}

func (c *converter) update(n *sitter.Node) (ast.Expr, error) {
	op := n.ChildByFieldName("operator").Type()
	arg, err := c.expr(n.ChildByFieldName("argument"))
	if err != nil {
		return nil, err
	}
	return &ast.Update{Span: span(n), Op: op, Prefix: n.Child(0).Type() == op, Arg: arg}, nil
}

func (c *converter) binary(n *sitter.Node) (ast.Expr, error) {
	op := ast.BinaryOp(n.ChildByFieldName("operator").Type())
	if !op.IsValid() {
		return nil, c.unsupported(n, "binary operator "+string(op))
	}
	left, err := c.expr(n.ChildByFieldName("left"))
	if err != nil {
		return nil, err
	}
	right, err := c.expr(n.ChildByFieldName("right"))
	if err != nil {
		return nil, err
	}
	return &ast.Binary{Span: span(n), Op: op, Left: left, Right: right}, nil
}

func (c *converter) assign(n *sitter.Node) (ast.Expr, error) {
	op := "="
	if opNode := n.ChildByFieldName("operator"); opNode != nil {
		op = opNode.Type()
	}
	left, err := c.expr(n.ChildByFieldName("left"))
	if err != nil {
		return nil, err
	}
	right, err := c.expr(n.ChildByFieldName("right"))
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Span: span(n), Op: op, Left: left, Right: right}, nil
}

func (c *converter) ternary(n *sitter.Node) (ast.Expr, error) {
	test, err := c.expr(n.ChildByFieldName("condition"))
	if err != nil {
		return nil, err
	}
	cons, err := c.expr(n.ChildByFieldName("consequence"))
	if err != nil {
		return nil, err
	}
	alt, err := c.expr(n.ChildByFieldName("alternative"))
	if err != nil {
		return nil, err
	}
	return &ast.Cond{Span: span(n), Test: test, Cons: cons, Alt: alt}, nil
}

func (c *converter) call(n *sitter.Node) (ast.Expr, error) {
	callee, err := c.expr(n.ChildByFieldName("function"))
	if err != nil {
		return nil, err
	}
	argsNode := n.ChildByFieldName("arguments")
	if argsNode.Type() == "template_string" {
		quasi, err := c.template(argsNode)
		if err != nil {
			return nil, err
		}
		return &ast.TaggedTemplate{Span: span(n), Tag: callee, Quasi: quasi}, nil
	}
	args, err := c.exprList(argsNode)
	if err != nil {
		return nil, err
	}
	return &ast.Call{
		Span:     span(n),
		Callee:   callee,
		Args:     args,
		Optional: n.ChildByFieldName("optional_chain") != nil,
	}, nil
}

func (c *converter) newExpr(n *sitter.Node) (ast.Expr, error) {
	callee, err := c.expr(n.ChildByFieldName("constructor"))
	if err != nil {
		return nil, err
	}
	e := &ast.New{Span: span(n), Callee: callee}
	if argsNode := n.ChildByFieldName("arguments"); argsNode != nil {
		e.Args, err = c.exprList(argsNode)
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (c *converter) member(n *sitter.Node) (ast.Expr, error) {
	obj, err := c.expr(n.ChildByFieldName("object"))
	if err != nil {
		return nil, err
	}
	prop := n.ChildByFieldName("property")
	return &ast.Member{
		Span:     span(n),
		Object:   obj,
		Property: &ast.Ident{Span: span(prop), Name: c.text(prop)},
		Optional: n.ChildByFieldName("optional_chain") != nil,
	}, nil
}

func (c *converter) subscript(n *sitter.Node) (ast.Expr, error) {
	obj, err := c.expr(n.ChildByFieldName("object"))
	if err != nil {
		return nil, err
	}
	index, err := c.expr(n.ChildByFieldName("index"))
	if err != nil {
		return nil, err
	}
	return &ast.Member{
		Span:     span(n),
		Object:   obj,
		Property: index,
		Computed: true,
		Optional: n.ChildByFieldName("optional_chain") != nil,
	}, nil
}

// flattenSequence collects a left- or right-nested sequence_expression into
// a single list.
func (c *converter) flattenSequence(n *sitter.Node, out *[]ast.Expr) error {
	for _, child := range named(n) {
		if child.Type() == "sequence_expression" {
			if err := c.flattenSequence(child, out); err != nil {
				return err
			}
			continue
		}
		e, err := c.expr(child)
		if err != nil {
			return err
		}
		*out = append(*out, e)
	}
	return nil
}

func (c *converter) exprList(n *sitter.Node) ([]ast.Expr, error) {
	children := named(n)
	out := make([]ast.Expr, 0, len(children))
	for _, child := range children {
		e, err := c.expr(child)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (c *converter) array(n *sitter.Node) (ast.Expr, error) {
	elems, err := c.elements(n, c.expr)
	if err != nil {
		return nil, err
	}
	return &ast.Array{Span: span(n), Elems: elems}, nil
}

// elements tracks commas to recover holes, which tree-sitter does not
// represent as nodes.
func (c *converter) elements(n *sitter.Node, conv func(*sitter.Node) (ast.Expr, error)) ([]ast.Expr, error) {
	var elems []ast.Expr
	expecting := true
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch {
		case child.Type() == "comment":
			continue
		case !child.IsNamed() && child.Type() == ",":
			if expecting {
				elems = append(elems, nil)
			}
			expecting = true
		case child.IsNamed():
			e, err := conv(child)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			expecting = false
		}
	}
	return elems, nil
}

func (c *converter) object(n *sitter.Node) (ast.Expr, error) {
	obj := &ast.Object{Span: span(n)}
	for _, child := range named(n) {
		switch child.Type() {
		case "pair":
			key, computed, err := c.propKey(child.ChildByFieldName("key"))
			if err != nil {
				return nil, err
			}
			value, err := c.expr(child.ChildByFieldName("value"))
			if err != nil {
				return nil, err
			}
			obj.Props = append(obj.Props, ast.Prop{Span: span(child), Key: key, Value: value, Computed: computed})
		case "shorthand_property_identifier":
			id := &ast.Ident{Span: span(child), Name: c.text(child)}
			obj.Props = append(obj.Props, ast.Prop{Span: span(child), Key: id, Value: id, Shorthand: true})
		case "spread_element":
			arg, err := c.firstExpr(child)
			if err != nil {
				return nil, err
			}
			obj.Props = append(obj.Props, ast.Prop{Span: span(child), Value: arg, Spread: true})
		case "method_definition":
			kind, _, key, computed, fn, err := c.method(child)
			if err != nil {
				return nil, err
			}
			obj.Props = append(obj.Props, ast.Prop{Span: span(child), Key: key, Value: fn, Computed: computed, Method: kind})
		default:
			return nil, c.unsupported(child, "object "+child.Type())
		}
	}
	return obj, nil
}

func (c *converter) propKey(n *sitter.Node) (ast.Expr, bool, error) {
	switch n.Type() {
	case "property_identifier", "private_property_identifier":
		return &ast.Ident{Span: span(n), Name: c.text(n)}, false, nil
	case "computed_property_name":
		e, err := c.firstExpr(n)
		return e, true, err
	case "string", "number":
		e, err := c.expr(n)
		return e, false, err
	default:
		return nil, false, c.unsupported(n, "property key "+n.Type())
	}
}

func (c *converter) template(n *sitter.Node) (*ast.Template, error) {
	t := &ast.Template{Span: span(n)}
	start := n.StartByte() + 1 // skip the opening backtick
	for _, child := range named(n) {
		if child.Type() != "template_substitution" {
			continue
		}
		t.Quasis = append(t.Quasis, string(c.src[start:child.StartByte()]))
		e, err := c.firstExpr(child)
		if err != nil {
			return nil, err
		}
		t.Exprs = append(t.Exprs, e)
		start = child.EndByte()
	}
	t.Quasis = append(t.Quasis, string(c.src[start:n.EndByte()-1]))
	return t, nil
}

func (c *converter) fn(n *sitter.Node) (*ast.Fn, error) {
	fn := &ast.Fn{
		Span:      span(n),
		Async:     hasToken(n, "async"),
		Generator: hasToken(n, "*"),
	}
	if name := n.ChildByFieldName("name"); name != nil {
		fn.Name = c.text(name)
	}
	params, err := c.params(n.ChildByFieldName("parameters"))
	if err != nil {
		return nil, err
	}
	fn.Params = params
	body, err := c.block(n.ChildByFieldName("body"))
	if err != nil {
		return nil, err
	}
	fn.Body = body.Body
	return fn, nil
}

func (c *converter) arrow(n *sitter.Node) (ast.Expr, error) {
	a := &ast.Arrow{Span: span(n), Async: hasToken(n, "async")}
	if single := n.ChildByFieldName("parameter"); single != nil {
		a.Params = []ast.Param{{Span: span(single), Name: c.text(single)}}
	} else {
		params, err := c.params(n.ChildByFieldName("parameters"))
		if err != nil {
			return nil, err
		}
		a.Params = params
	}

	body := n.ChildByFieldName("body")
	if body.Type() == "statement_block" {
		block, err := c.block(body)
		if err != nil {
			return nil, err
		}
		a.Body = block.Body
		return a, nil
	}
	e, err := c.expr(body)
	if err != nil {
		return nil, err
	}
	a.Expr = e
	return a, nil
}

func (c *converter) params(n *sitter.Node) ([]ast.Param, error) {
	if n == nil {
		return nil, nil
	}
	var out []ast.Param
	for _, child := range named(n) {
		p := ast.Param{Span: span(child)}
		target := child
		switch child.Type() {
		case "assignment_pattern":
			target = child.ChildByFieldName("left")
			def, err := c.expr(child.ChildByFieldName("right"))
			if err != nil {
				return nil, err
			}
			p.Default = def
		case "rest_pattern":
			inner := named(child)
			if len(inner) != 1 {
				return nil, c.unsupported(child, "rest parameter")
			}
			target = inner[0]
			p.Rest = true
		}

		if target.Type() == "identifier" {
			p.Name = c.text(target)
		} else {
			pat, err := c.pattern(target)
			if err != nil {
				return nil, err
			}
			p.Pattern = pat
		}
		out = append(out, p)
	}
	return out, nil
}
