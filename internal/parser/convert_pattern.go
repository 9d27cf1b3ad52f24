package parser

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/roach88/jscompat/internal/ast"
)

// pattern lowers a binding or assignment target. Plain identifiers and
// member expressions are valid targets too.
func (c *converter) pattern(n *sitter.Node) (ast.Expr, error) {
	if n == nil {
		return nil, &UnsupportedError{File: c.file, Pos: Position{Line: 1, Column: 1}, Kind: "missing pattern"}
	}

	switch n.Type() {
	case "identifier", "undefined", "shorthand_property_identifier_pattern":
		return &ast.Ident{Span: span(n), Name: c.text(n)}, nil
	case "member_expression", "subscript_expression", "parenthesized_expression":
		return c.expr(n)
	case "array_pattern":
		elems, err := c.elements(n, c.pattern)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayPat{Span: span(n), Elems: elems}, nil
	case "object_pattern":
		return c.objectPattern(n)
	case "assignment_pattern":
		target, err := c.pattern(n.ChildByFieldName("left"))
		if err != nil {
			return nil, err
		}
		def, err := c.expr(n.ChildByFieldName("right"))
		if err != nil {
			return nil, err
		}
		return &ast.AssignPat{Span: span(n), Target: target, Default: def}, nil
	case "rest_pattern":
		inner := named(n)
		if len(inner) != 1 {
			return nil, c.unsupported(n, "rest pattern")
		}
		arg, err := c.pattern(inner[0])
		if err != nil {
			return nil, err
		}
		return &ast.RestPat{Span: span(n), Arg: arg}, nil
	default:
		return nil, c.unsupported(n, "pattern "+n.Type())
	}
}

func (c *converter) objectPattern(n *sitter.Node) (ast.Expr, error) {
	pat := &ast.ObjectPat{Span: span(n)}
	for _, child := range named(n) {
		switch child.Type() {
		case "shorthand_property_identifier_pattern":
			id := &ast.Ident{Span: span(child), Name: c.text(child)}
			pat.Props = append(pat.Props, ast.Prop{Span: span(child), Key: id, Value: id, Shorthand: true})

		case "object_assignment_pattern":
			left := child.ChildByFieldName("left")
			if left.Type() != "shorthand_property_identifier_pattern" {
				return nil, c.unsupported(left, "object pattern default on "+left.Type())
			}
			id := &ast.Ident{Span: span(left), Name: c.text(left)}
			def, err := c.expr(child.ChildByFieldName("right"))
			if err != nil {
				return nil, err
			}
			pat.Props = append(pat.Props, ast.Prop{
				Span:      span(child),
				Key:       id,
				Value:     &ast.AssignPat{Span: span(child), Target: id, Default: def},
				Shorthand: true,
			})

		case "pair_pattern":
			key, computed, err := c.propKey(child.ChildByFieldName("key"))
			if err != nil {
				return nil, err
			}
			value, err := c.pattern(child.ChildByFieldName("value"))
			if err != nil {
				return nil, err
			}
			pat.Props = append(pat.Props, ast.Prop{Span: span(child), Key: key, Value: value, Computed: computed})

		case "rest_pattern":
			rest, err := c.pattern(child)
			if err != nil {
				return nil, err
			}
			pat.Props = append(pat.Props, ast.Prop{Span: span(child), Value: rest.(*ast.RestPat).Arg, Spread: true})

		default:
			return nil, c.unsupported(child, "object pattern "+child.Type())
		}
	}
	return pat, nil
}
